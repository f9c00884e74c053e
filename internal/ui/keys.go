package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"taskmgr/internal/config"
)

type keyMap struct {
	Quit          key.Binding
	Add           key.Binding
	Up            key.Binding
	Down          key.Binding
	Toggle        key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
	NextField     key.Binding
	PrevField     key.Binding
	ViewAll       key.Binding
	ViewActive    key.Binding
	ViewCompleted key.Binding
	CycleView     key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:          key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),
		Add:           key.NewBinding(key.WithKeys(k.Add), key.WithHelp(k.Add, "add")),
		Up:            key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(k.Up+"/↑", "up")),
		Down:          key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(k.Down+"/↓", "down")),
		Toggle:        key.NewBinding(key.WithKeys(k.Toggle), key.WithHelp(keyLabel(k.Toggle), "toggle")),
		Confirm:       key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "add task")),
		Cancel:        key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "back")),
		NextField:     key.NewBinding(key.WithKeys(k.NextField), key.WithHelp(k.NextField, "next field")),
		PrevField:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		ViewAll:       key.NewBinding(key.WithKeys(k.ViewAll), key.WithHelp(k.ViewAll, "all")),
		ViewActive:    key.NewBinding(key.WithKeys(k.ViewActive), key.WithHelp(k.ViewActive, "active")),
		ViewCompleted: key.NewBinding(key.WithKeys(k.ViewCompleted), key.WithHelp(k.ViewCompleted, "completed")),
		CycleView:     key.NewBinding(key.WithKeys(k.CycleView), key.WithHelp(k.CycleView, "cycle view")),
	}
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// listHelp and formHelp satisfy help.KeyMap for the two focus states.
type listHelp struct{ keyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Up, h.Down, h.Toggle, h.Add, h.ViewAll, h.ViewActive, h.ViewCompleted, h.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Up, h.Down, h.Toggle},
		{h.Add, h.ViewAll, h.ViewActive, h.ViewCompleted, h.CycleView},
		{h.Quit},
	}
}

type formHelp struct{ keyMap }

func (h formHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Confirm, h.NextField, h.PrevField, h.Cancel}
}

func (h formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
