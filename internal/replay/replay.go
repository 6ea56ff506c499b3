// Package replay records rounds as per-tick command streams and re-runs them
// headlessly. Recordings are msgpack-encoded and identified by a UUID that is
// also stored with the round's ranking.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/swallow/internal/config"
	"github.com/vovakirdan/swallow/internal/core"
)

// FormatVersion is bumped whenever the recording layout changes.
const FormatVersion = 1

// Ext is the file extension of saved recordings.
const Ext = ".swr"

// ErrVersion is returned for recordings written by an incompatible build.
var ErrVersion = errors.New("replay: unsupported recording version")

// Recording is everything needed to reproduce a round.
type Recording struct {
	Version    int          `msgpack:"version"`
	ID         string       `msgpack:"id"`
	Level      config.Level `msgpack:"level"` // After difficulty scaling
	Difficulty string       `msgpack:"difficulty"`
	Seed       int64        `msgpack:"seed"`
	Username   string       `msgpack:"username"`
	Commands   []byte       `msgpack:"commands"` // One core.Action per tick
	Score      int          `msgpack:"score"`
	Won        bool         `msgpack:"won"`
	RecordedAt time.Time    `msgpack:"recorded_at"`
}

// Ticks returns the number of recorded ticks.
func (r *Recording) Ticks() int {
	return len(r.Commands)
}

// Recorder accumulates the commands of one round.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording with a fresh round ID.
func NewRecorder(level config.Level, difficulty, username string, seed int64) *Recorder {
	return &Recorder{rec: Recording{
		Version:    FormatVersion,
		ID:         uuid.NewString(),
		Level:      level,
		Difficulty: difficulty,
		Seed:       seed,
		Username:   username,
	}}
}

// ID returns the round ID.
func (r *Recorder) ID() string {
	return r.rec.ID
}

// Record appends the command of one tick.
func (r *Recorder) Record(a core.Action) {
	r.rec.Commands = append(r.rec.Commands, byte(a))
}

// Finish stamps the round outcome and returns the recording.
func (r *Recorder) Finish(score int, won bool) *Recording {
	r.rec.Score = score
	r.rec.Won = won
	r.rec.RecordedAt = time.Now().UTC().Truncate(time.Second)
	rec := r.rec
	rec.Commands = append([]byte(nil), r.rec.Commands...)
	return &rec
}

// Encode writes rec to w.
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a recording from r.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w %d", ErrVersion, rec.Version)
	}
	return &rec, nil
}

// Save writes rec into dir as <level>-<id>.swr and returns the path.
func Save(dir string, rec *Recording) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("replay: cannot create directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, rec.Level.Name+"-"+rec.ID+Ext)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("replay: create %s: %w", path, err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("replay: close %s: %w", path, err)
	}
	return path, nil
}

// Load reads a recording file.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
