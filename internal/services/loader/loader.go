// Package loader reads level definitions and turns them into tasks.
//
// Levels are YAML documents listing tasks in play order. Built-in levels are
// embedded in the binary; any other level can be loaded from disk.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/riordanpawley/questlog/internal/domain"
	"github.com/riordanpawley/questlog/internal/levels"
)

// Level is a parsed level definition
type Level struct {
	Name  string    `yaml:"name"`
	Next  string    `yaml:"next,omitempty"` // Level that follows this one
	Tasks []TaskDef `yaml:"tasks"`
}

// TaskDef describes one task in a level file
type TaskDef struct {
	ID          int               `yaml:"id"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Reminder    bool              `yaml:"reminder"`
	Time        time.Duration     `yaml:"time"`
	Infinite    bool              `yaml:"infinite"`
	Audio       *domain.AudioClip `yaml:"audio,omitempty"`
}

// TaskAdder receives the tasks of an applied level
type TaskAdder interface {
	AddTask(task *domain.Task)
}

// Parse decodes and validates a level. source names the level in errors.
func Parse(source string, data []byte) (*Level, error) {
	var level Level
	if err := yaml.Unmarshal(data, &level); err != nil {
		return nil, &domain.LevelError{
			Level: source,
			Err:   fmt.Errorf("%w: %w", domain.ErrInvalidLevel, err),
		}
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	return &level, nil
}

// LoadFile reads a level from disk
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	return Parse(path, data)
}

// LoadBuiltin reads an embedded level by name
func LoadBuiltin(name string) (*Level, error) {
	data, err := fs.ReadFile(levels.FS, name+".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.LevelError{
				Level:   name,
				Message: "no such built-in level",
				Err:     domain.ErrNotFound,
			}
		}
		return nil, fmt.Errorf("failed to read built-in level %s: %w", name, err)
	}
	return Parse(name, data)
}

// Load resolves ref as a file path when it looks like one, otherwise as a
// built-in level name
func Load(ref string) (*Level, error) {
	ext := filepath.Ext(ref)
	if ext == ".yaml" || ext == ".yml" || strings.ContainsRune(ref, filepath.Separator) {
		return LoadFile(ref)
	}
	return LoadBuiltin(ref)
}

// Builtins lists the embedded level names in sorted order
func Builtins() []string {
	matches, err := fs.Glob(levels.FS, "*.yaml")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Validate checks the level for structural problems
func (l *Level) Validate() error {
	invalid := func(format string, args ...any) error {
		return &domain.LevelError{
			Level:   l.Name,
			Message: fmt.Sprintf(format, args...),
			Err:     domain.ErrInvalidLevel,
		}
	}

	if strings.TrimSpace(l.Name) == "" {
		return invalid("missing name")
	}
	if len(l.Tasks) == 0 {
		return invalid("no tasks")
	}

	seen := make(map[int]bool, len(l.Tasks))
	for _, t := range l.Tasks {
		if seen[t.ID] {
			return invalid("duplicate task id %d", t.ID)
		}
		seen[t.ID] = true

		if strings.TrimSpace(t.Title) == "" {
			return invalid("task %d has no title", t.ID)
		}
		if t.Time < 0 {
			return invalid("task %d has negative time", t.ID)
		}
		if t.Audio != nil && t.Audio.Length < 0 {
			return invalid("task %d audio has negative length", t.ID)
		}
	}
	return nil
}

// Tasks builds fresh tasks for the level. Deadlines of timed tasks are scaled
// by multiplier.
func (l *Level) Tasks(multiplier float64) []*domain.Task {
	if multiplier <= 0 {
		multiplier = 1
	}

	out := make([]*domain.Task, 0, len(l.Tasks))
	for _, def := range l.Tasks {
		var opts []domain.TaskOption
		switch {
		case def.Infinite:
			opts = append(opts, domain.WithInfiniteTime())
		case def.Reminder:
			opts = append(opts, domain.WithReminder(scale(def.Time, multiplier)))
		}
		if def.Audio != nil {
			opts = append(opts, domain.WithAudio(*def.Audio))
		}
		out = append(out, domain.NewTask(def.ID, def.Title, def.Description, opts...))
	}
	return out
}

// Apply adds the level's tasks to dst in file order
func Apply(dst TaskAdder, level *Level, multiplier float64) {
	for _, t := range level.Tasks(multiplier) {
		dst.AddTask(t)
	}
}

func scale(d time.Duration, multiplier float64) time.Duration {
	return time.Duration(float64(d) * multiplier)
}
