package swallow

import (
	"fmt"

	"github.com/vovakirdan/swallow/internal/config"
	"github.com/vovakirdan/swallow/internal/core"
)

// Direction is a cardinal heading.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Sprites holds one row-major sprite per facing, indexed by Direction.
type Sprites [4]string

// Entity is the shared movable part of every board occupant.
// Position is the top-left corner of a W x H footprint.
type Entity struct {
	X, Y   int
	DX, DY int
	Speed  int
	W, H   int
	Facing Direction
	Color  core.Color
}

// Bounds returns the current footprint.
func (e *Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Next returns the footprint after one move at the current velocity.
func (e *Entity) Next() core.Rect {
	return e.Bounds().Translate(e.DX, e.DY)
}

// Head points the entity along d at the given speed.
func (e *Entity) Head(d Direction, speed int) {
	e.Speed = speed
	e.Facing = d
	e.DX, e.DY = 0, 0
	switch d {
	case DirUp:
		e.DY = -speed
	case DirDown:
		e.DY = speed
	case DirLeft:
		e.DX = -speed
	case DirRight:
		e.DX = speed
	}
}

// faceVelocity sets Facing from the dominant velocity axis.
// Ties go to the horizontal axis; a standstill keeps the old facing.
func (e *Entity) faceVelocity() {
	if e.DX == 0 && e.DY == 0 {
		return
	}
	e.Facing = facingFor(e.DX, e.DY)
}

func facingFor(dx, dy int) Direction {
	if core.Abs(dx) >= core.Abs(dy) {
		if dx < 0 {
			return DirLeft
		}
		return DirRight
	}
	if dy < 0 {
		return DirUp
	}
	return DirDown
}

func (e *Entity) ent() *Entity { return e }

// Body is anything that occupies grid cells and appears on the canvas.
type Body interface {
	Bounds() core.Rect
	Tag() Tag
	Sprite(cat Catalog) string
	Tint() core.Color
	ent() *Entity
}

// Template is a hunter kind, resolved from level configuration.
type Template struct {
	Name    string
	W, H    int
	Bounces int
	Speed   int
	Damage  int
	Color   core.Color
	Sprites Sprites
}

// Catalog is the list of hunter kinds a level spawns from.
type Catalog []Template

// NewCatalog converts configured hunters into templates.
func NewCatalog(hunters []config.HunterConfig) Catalog {
	cat := make(Catalog, 0, len(hunters))
	for _, h := range hunters {
		cat = append(cat, Template{
			Name:    h.Name,
			W:       h.Width,
			H:       h.Height,
			Bounces: h.Bounces,
			Speed:   h.Speed,
			Damage:  h.Damage,
			Color:   h.ColorValue(),
			Sprites: Sprites{h.Sprites.Up, h.Sprites.Down, h.Sprites.Left, h.Sprites.Right},
		})
	}
	return cat
}

// Swallow constants.
const (
	swallowHP    = 100
	swallowSize  = 3
	swallowSpeed = 1
	flapTicks    = 5
)

var (
	swallowGlide = Sprites{
		DirUp:    ` ^ /o\.Y.`,
		DirDown:  `_w_\o/ v `,
		DirLeft:  ` /.<o= \.`,
		DirRight: `.\ =o>./ `,
	}
	swallowFlap = Sprites{
		DirUp:    ` ^ ^o^.Y.`,
		DirDown:  `_w_vov v `,
		DirLeft:  ` --<o= --`,
		DirRight: `-- =o>-- `,
	}
)

// Swallow is the player-controlled bird.
type Swallow struct {
	Entity
	HP int

	flap      bool
	flapTimer int
}

func newSwallow(cols, rows int) *Swallow {
	s := &Swallow{
		Entity: Entity{
			X: cols / 2,
			Y: rows / 2,
			W: swallowSize,
			H: swallowSize,
		},
		HP: swallowHP,
	}
	s.Head(DirRight, swallowSpeed)
	s.recolor()
	return s
}

func (s *Swallow) Tag() Tag { return TagSwallow }

func (s *Swallow) Sprite(Catalog) string {
	if s.flap {
		return swallowFlap[s.Facing]
	}
	return swallowGlide[s.Facing]
}

func (s *Swallow) Tint() core.Color { return s.Color }

// animate flips the wing frame every few ticks.
func (s *Swallow) animate() {
	s.flapTimer++
	if s.flapTimer >= flapTicks {
		s.flapTimer = 0
		s.flap = !s.flap
	}
}

// hurt subtracts damage from HP, never going below zero.
func (s *Swallow) hurt(damage int) {
	s.HP = max(s.HP-damage, 0)
	s.recolor()
}

// recolor tints the swallow by remaining health.
func (s *Swallow) recolor() {
	switch {
	case s.HP >= 80:
		s.Color = core.ColorGreen5
	case s.HP >= 60:
		s.Color = core.ColorCyan3
	case s.HP >= 40:
		s.Color = core.ColorPurple5
	case s.HP >= 20:
		s.Color = core.ColorRed3
	default:
		s.Color = core.ColorRed5
	}
}

// AIState is a hunter's behavior phase.
type AIState uint8

const (
	StateIdle AIState = iota
	StatePaused
	StateDashing
)

// String returns the state name.
func (s AIState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePaused:
		return "paused"
	case StateDashing:
		return "dashing"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Hunter is an enemy that bounces around the board and dashes at the swallow.
type Hunter struct {
	Entity
	Kind      int // Index into the level catalog
	Bounces   int
	Damage    int
	BaseSpeed int
	State     AIState
	Timer     int // Ticks left in the pause
	Cooldown  int // Ticks until the next dash may start
}

func (h *Hunter) Tag() Tag { return TagHunter }

func (h *Hunter) Sprite(cat Catalog) string {
	if h.Kind < 0 || h.Kind >= len(cat) {
		return ""
	}
	return cat[h.Kind].Sprites[h.Facing]
}

func (h *Hunter) Tint() core.Color { return h.Color }

// Star is a 1x1 collectible falling from the top of the board.
type Star struct {
	Entity
}

func (s *Star) Tag() Tag { return TagStar }

func (s *Star) Sprite(Catalog) string { return "*" }

func (s *Star) Tint() core.Color { return s.Color }
