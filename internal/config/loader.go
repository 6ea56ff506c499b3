package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LevelInfo describes a level available for play.
type LevelInfo struct {
	Name   string
	Number int
	Source string // "embedded", "user" or "local"
}

// LoadLevel loads a level by name and validates it.
// Search order: customPath -> ~/.swallow/levels/<name>.yaml -> ./levels/<name>.yaml
// -> embedded level -> built-in default.
func LoadLevel(name, customPath string) (Level, error) {
	if name == "" {
		name = DefaultLevelName
	}

	// A custom path must load; it was asked for explicitly
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Level{}, fmt.Errorf("config: read level %s: %w", customPath, err)
		}
		lvl, err := ParseLevel(data, strings.TrimSuffix(filepath.Base(customPath), filepath.Ext(customPath)))
		if err != nil {
			return Level{}, fmt.Errorf("config: parse level %s: %w", customPath, err)
		}
		return lvl, lvl.Validate()
	}

	for _, p := range []string{userLevelPath(name), localLevelPath(name)} {
		if p == "" {
			continue
		}
		if data, err := os.ReadFile(p); err == nil {
			if lvl, err := ParseLevel(data, name); err == nil {
				return lvl, lvl.Validate()
			}
		}
	}

	if data := embeddedYAML(name); data != nil {
		lvl, err := ParseLevel(data, name)
		if err != nil {
			return Level{}, fmt.Errorf("config: parse embedded level %s: %w", name, err)
		}
		return lvl, lvl.Validate()
	}

	if name == DefaultLevelName {
		return DefaultLevel(), nil
	}
	return Level{}, fmt.Errorf("config: unknown level %q", name)
}

// ParseLevel decodes YAML on top of the built-in defaults, so a level file
// only needs the keys it changes.
func ParseLevel(data []byte, fallbackName string) (Level, error) {
	lvl := DefaultLevel()
	lvl.Name = ""
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Level{}, err
	}
	if lvl.Name == "" {
		lvl.Name = fallbackName
	}
	lvl.normalize()
	return lvl, nil
}

// ListLevels returns every level that LoadLevel can find by name, sorted by
// level number and then name. User and local files shadow embedded ones.
func ListLevels() []LevelInfo {
	found := make(map[string]LevelInfo)
	for _, name := range embeddedNames() {
		info := LevelInfo{Name: name, Source: "embedded"}
		if lvl, err := ParseLevel(embeddedYAML(name), name); err == nil {
			info.Number = lvl.Number
		}
		found[name] = info
	}
	scanLevelDir(found, localLevelDir(), "local")
	scanLevelDir(found, userLevelDir(), "user")

	out := make([]LevelInfo, 0, len(found))
	for _, info := range found {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Number != out[j].Number {
			return out[i].Number < out[j].Number
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func scanLevelDir(found map[string]LevelInfo, dir, source string) {
	if dir == "" {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".yaml")
		if !ok || e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		lvl, err := ParseLevel(data, name)
		if err != nil {
			continue
		}
		found[name] = LevelInfo{Name: name, Number: lvl.Number, Source: source}
	}
}

// userLevelDir returns ~/.swallow/levels, or empty if home is unavailable.
func userLevelDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swallow", "levels")
}

func localLevelDir() string {
	return "levels"
}

func userLevelPath(name string) string {
	dir := userLevelDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name+".yaml")
}

func localLevelPath(name string) string {
	return filepath.Join(localLevelDir(), name+".yaml")
}
