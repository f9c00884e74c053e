package ui

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskmgr/internal/config"
	"taskmgr/internal/filter"
	"taskmgr/internal/storage"
)

const dateLayout = "2006-01-02"

type focus int

const (
	focusList focus = iota
	focusName
	focusDue
)

// AddTaskMsg, ToggleTaskMsg and SetViewMsg are the user intents the model
// applies to the store and filter. Key presses are translated into them,
// and they may also be sent from outside with Program.Send.
type AddTaskMsg struct {
	Name string
	Due  string
}

type ToggleTaskMsg struct {
	ID int
}

type SetViewMsg struct {
	Mode filter.Mode
}

type level int

const (
	levelInfo level = iota
	levelSuccess
	levelWarn
	levelError
)

type notice struct {
	text  string
	level level
}

type Model struct {
	store  *storage.Store
	view   *filter.Filter
	keys   keyMap
	help   help.Model
	name   textinput.Model
	due    textinput.Model
	focus  focus
	cursor int
	notice notice
	now    func() time.Time
	logger *log.Logger
}

type Option func(*Model)

// WithClock replaces time.Now for the due date prefill.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

func New(store *storage.Store, view *filter.Filter, cfg config.Config, opts ...Option) Model {
	m := Model{
		store:  store,
		view:   view,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		focus:  focusList,
		now:    time.Now,
		logger: log.New(io.Discard, "", 0),
		notice: notice{text: "Press 'a' to add a task, space to toggle, 1/2/3 to switch views."},
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.name = textinput.New()
	m.name.Placeholder = "Add a new task..."
	m.name.CharLimit = 256
	m.name.Width = 40

	m.due = textinput.New()
	m.due.Placeholder = "Due date"
	m.due.CharLimit = 64
	m.due.Width = 20
	m.due.SetValue(m.today())

	return m
}

func Run(store *storage.Store, view *filter.Filter, cfg config.Config, logger *log.Logger) error {
	m := New(store, view, cfg, WithLogger(logger))
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if w := msg.Width - sidebarWidth - 10; w > 10 {
			m.name.Width = w
		}
	case AddTaskMsg:
		return m.addTask(msg)
	case ToggleTaskMsg:
		return m.toggleTask(msg)
	case SetViewMsg:
		m.view.SetMode(msg.Mode)
		m.cursor = 0
		m.logger.Printf("view set to %s", msg.Mode)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(visible))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(visible))
	case key.Matches(msg, m.keys.Toggle):
		if len(visible) == 0 {
			m.notice = notice{text: "No task selected"}
			return m, nil
		}
		// Bind the id of the task under the cursor, not the cursor.
		return m.Update(ToggleTaskMsg{ID: visible[m.cursor].ID})
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.NextField):
		return m.setFocus(focusName)
	case key.Matches(msg, m.keys.ViewAll):
		return m.Update(SetViewMsg{Mode: filter.All})
	case key.Matches(msg, m.keys.ViewActive):
		return m.Update(SetViewMsg{Mode: filter.Active})
	case key.Matches(msg, m.keys.ViewCompleted):
		return m.Update(SetViewMsg{Mode: filter.Completed})
	case key.Matches(msg, m.keys.CycleView):
		return m.Update(SetViewMsg{Mode: m.view.Mode().Next()})
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.notice = notice{text: "Cancelled"}
		return m.setFocus(focusList)
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		if m.focus == focusName {
			return m.setFocus(focusDue)
		}
		return m.setFocus(focusName)
	case key.Matches(msg, m.keys.Confirm):
		return m.Update(AddTaskMsg{Name: m.name.Value(), Due: m.due.Value()})
	}

	var cmd tea.Cmd
	if m.focus == focusDue {
		m.due, cmd = m.due.Update(msg)
	} else {
		m.name, cmd = m.name.Update(msg)
	}
	return m, cmd
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.name.Blur()
	m.due.Blur()
	switch f {
	case focusName:
		return m, m.name.Focus()
	case focusDue:
		return m, m.due.Focus()
	}
	return m, nil
}

func (m Model) addTask(msg AddTaskMsg) (tea.Model, tea.Cmd) {
	t, err := m.store.Add(msg.Name, msg.Due)
	if err != nil {
		m.logger.Printf("add failed: %v", err)
		m.notice = notice{text: "Please enter a task description.", level: levelError}
		return m, nil
	}
	m.logger.Printf("added task id=%d name=%q due=%q", t.ID, t.Name, t.Due)
	m.notice = notice{text: "Task Added!", level: levelSuccess}
	m.name.SetValue("")
	m.due.SetValue(m.today())

	visible := m.visible()
	for i, v := range visible {
		if v.ID == t.ID {
			m.cursor = i
		}
	}
	m.cursor = clampCursor(m.cursor, len(visible))
	return m.setFocus(focusList)
}

func (m Model) toggleTask(msg ToggleTaskMsg) (tea.Model, tea.Cmd) {
	t, err := m.store.Toggle(msg.ID)
	if err != nil {
		m.logger.Printf("toggle failed: %v", err)
		m.notice = notice{text: fmt.Sprintf("Task #%d not found", msg.ID), level: levelError}
		return m, nil
	}
	m.logger.Printf("toggled task id=%d completed=%t", t.ID, t.Completed)
	if t.Completed {
		m.notice = notice{text: fmt.Sprintf("Task '%s' Completed", t.Name), level: levelSuccess}
	} else {
		m.notice = notice{text: fmt.Sprintf("Task '%s' Reopened", t.Name), level: levelWarn}
	}
	m.cursor = clampCursor(m.cursor, len(m.visible()))
	return m, nil
}

func (m Model) visible() []storage.Task {
	return m.view.Visible(m.store.All())
}

func (m Model) today() string {
	return m.now().Format(dateLayout)
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
