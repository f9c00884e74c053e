// Package filter derives the visible subset of tasks for the selected view.
package filter

import (
	"fmt"
	"strings"

	"taskmgr/internal/storage"
)

type Mode int

const (
	All Mode = iota
	Active
	Completed
)

// Default is the view selected at startup.
const Default = Active

func Modes() []Mode {
	return []Mode{All, Active, Completed}
}

func (m Mode) String() string {
	switch m {
	case All:
		return "All Tasks"
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Key is the lowercase name used in config files.
func (m Mode) Key() string {
	switch m {
	case All:
		return "all"
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return ""
	}
}

// Next cycles All -> Active -> Completed -> All.
func (m Mode) Next() Mode {
	return (m + 1) % Mode(len(Modes()))
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "all tasks":
		return All, nil
	case "active":
		return Active, nil
	case "completed":
		return Completed, nil
	}
	return Default, fmt.Errorf("unknown view %q (want all, active or completed)", s)
}

// Filter owns the current view mode.
type Filter struct {
	mode Mode
}

func New(mode Mode) *Filter {
	return &Filter{mode: mode}
}

func (f *Filter) SetMode(m Mode) {
	f.mode = m
}

func (f *Filter) Mode() Mode {
	return f.mode
}

// Visible returns the tasks matching the current mode in their original order.
func (f *Filter) Visible(all []storage.Task) []storage.Task {
	return Apply(f.mode, all)
}

// Apply filters without sorting. The result is never nil.
func Apply(mode Mode, all []storage.Task) []storage.Task {
	out := make([]storage.Task, 0, len(all))
	for _, t := range all {
		if matches(mode, t) {
			out = append(out, t)
		}
	}
	return out
}

func matches(mode Mode, t storage.Task) bool {
	switch mode {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	default:
		return true
	}
}

type Counts struct {
	All       int
	Active    int
	Completed int
}

func (c Counts) Of(m Mode) int {
	switch m {
	case Active:
		return c.Active
	case Completed:
		return c.Completed
	default:
		return c.All
	}
}

func Count(all []storage.Task) Counts {
	c := Counts{All: len(all)}
	for _, t := range all {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}
