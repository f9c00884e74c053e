package ui

import (
	"bytes"
	"log"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmgr/internal/config"
	"taskmgr/internal/filter"
	"taskmgr/internal/storage"
)

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T, seed []storage.Task, mode filter.Mode) (Model, *storage.Store, *bytes.Buffer) {
	t.Helper()
	store := storage.New(seed)
	var logs bytes.Buffer
	m := New(store, filter.New(mode), config.Default(),
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(log.New(&logs, "", 0)),
	)
	return m, store, &logs
}

func applyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "unexpected model type %T", next)
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func visibleNames(m Model) []string {
	var out []string
	for _, t := range m.visible() {
		out = append(out, t.Name)
	}
	return out
}

func abc() []storage.Task {
	return []storage.Task{
		{ID: 1, Name: "A", Due: "today"},
		{ID: 2, Name: "B", Due: "today"},
		{ID: 3, Name: "C", Due: "today", Completed: true},
	}
}

func TestModel_ScenarioThroughKeys(t *testing.T) {
	m, _, _ := newTestModel(t, abc(), filter.All)

	m = applyMsg(t, m, runes("2"))
	assert.Equal(t, filter.Active, m.view.Mode())
	assert.Equal(t, []string{"A", "B"}, visibleNames(m))

	m = applyMsg(t, m, spaceKey)
	assert.Equal(t, []string{"B"}, visibleNames(m))
	assert.Equal(t, "Task 'A' Completed", m.notice.text)
	assert.Equal(t, levelSuccess, m.notice.level)

	m = applyMsg(t, m, runes("3"))
	assert.Equal(t, []string{"A", "C"}, visibleNames(m))
}

func TestModel_ToggleUsesTaskUnderCursor(t *testing.T) {
	m, store, _ := newTestModel(t, abc(), filter.All)

	m = applyMsg(t, m, downKey)
	m = applyMsg(t, m, spaceKey)

	all := store.All()
	assert.False(t, all[0].Completed)
	assert.True(t, all[1].Completed)

	m = applyMsg(t, m, runes("j"))
	m = applyMsg(t, m, spaceKey)
	assert.False(t, store.All()[2].Completed)
	assert.Equal(t, "Task 'C' Reopened", m.notice.text)
	assert.Equal(t, levelWarn, m.notice.level)
}

func TestModel_ToggleUnknownIDReportsError(t *testing.T) {
	m, store, logs := newTestModel(t, abc(), filter.All)
	before := store.All()

	m = applyMsg(t, m, ToggleTaskMsg{ID: 99})
	assert.Equal(t, levelError, m.notice.level)
	assert.Contains(t, m.notice.text, "#99")
	assert.Equal(t, before, store.All())
	assert.Contains(t, logs.String(), "toggle failed")
}

func TestModel_AddThroughForm(t *testing.T) {
	m, store, logs := newTestModel(t, storage.Seed(), filter.Active)

	m = applyMsg(t, m, runes("a"))
	require.Equal(t, focusName, m.focus)
	m = applyMsg(t, m, runes("Buy milk"))
	m = applyMsg(t, m, tabKey)
	require.Equal(t, focusDue, m.focus)
	assert.Equal(t, "2026-10-18", m.due.Value())
	m = applyMsg(t, m, enterKey)

	all := store.All()
	require.Len(t, all, 4)
	added := all[3]
	assert.Equal(t, 4, added.ID)
	assert.Equal(t, "Buy milk", added.Name)
	assert.Equal(t, "2026-10-18", added.Due)

	assert.Equal(t, "Task Added!", m.notice.text)
	assert.Equal(t, focusList, m.focus)
	assert.Equal(t, "", m.name.Value())
	assert.Equal(t, "2026-10-18", m.due.Value())
	assert.Equal(t, "Buy milk", m.visible()[m.cursor].Name)
	assert.Contains(t, logs.String(), "added task id=4")
}

func TestModel_AddWithClearedDueUsesSentinel(t *testing.T) {
	m, store, _ := newTestModel(t, nil, filter.All)

	m = applyMsg(t, m, AddTaskMsg{Name: "Buy milk", Due: "  "})
	assert.Equal(t, "Task Added!", m.notice.text)
	require.Len(t, store.All(), 1)
	assert.Equal(t, storage.NoDueDate, store.All()[0].Due)
}

func TestModel_AddEmptyNameWarns(t *testing.T) {
	m, store, _ := newTestModel(t, storage.Seed(), filter.Active)

	m = applyMsg(t, m, runes("a"))
	m = applyMsg(t, m, runes("   "))
	m = applyMsg(t, m, enterKey)

	assert.Equal(t, 3, store.Count())
	assert.Equal(t, "Please enter a task description.", m.notice.text)
	assert.Equal(t, levelError, m.notice.level)
	assert.Equal(t, focusName, m.focus)
}

func TestModel_FormKeysDoNotTriggerListActions(t *testing.T) {
	m, store, _ := newTestModel(t, storage.Seed(), filter.Active)

	m = applyMsg(t, m, runes("a"))
	m = applyMsg(t, m, runes("q"))
	m = applyMsg(t, m, runes("3"))
	assert.Equal(t, "q3", m.name.Value())
	assert.Equal(t, filter.Active, m.view.Mode())

	m = applyMsg(t, m, escKey)
	assert.Equal(t, focusList, m.focus)
	assert.Equal(t, 3, store.Count())
}

func TestModel_QuitFromList(t *testing.T) {
	m, _, _ := newTestModel(t, nil, filter.All)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_CycleViewResetsCursor(t *testing.T) {
	m, _, _ := newTestModel(t, storage.Seed(), filter.All)
	m = applyMsg(t, m, downKey)
	m = applyMsg(t, m, downKey)
	require.Equal(t, 2, m.cursor)

	m = applyMsg(t, m, runes("v"))
	assert.Equal(t, filter.Active, m.view.Mode())
	assert.Equal(t, 0, m.cursor)
}

func TestModel_CursorClampsAfterToggleEmptiesView(t *testing.T) {
	m, _, _ := newTestModel(t, abc(), filter.Active)
	m = applyMsg(t, m, downKey)
	m = applyMsg(t, m, spaceKey)
	assert.Equal(t, 0, m.cursor)
	m = applyMsg(t, m, spaceKey)
	assert.Empty(t, m.visible())

	m = applyMsg(t, m, spaceKey)
	assert.Equal(t, "No task selected", m.notice.text)
}

func TestView_ShowsCountsAndCards(t *testing.T) {
	m, _, _ := newTestModel(t, storage.Seed(), filter.Active)
	out := m.View()

	assert.Contains(t, out, "Task Manager")
	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, "3 tasks")
	assert.Contains(t, out, "2 tasks")
	assert.Contains(t, out, "Finish Project Proposal")
	assert.Contains(t, out, "Tomorrow 10 AM")
	assert.NotContains(t, out, "Call Mom")
}

func TestView_EmptyState(t *testing.T) {
	m, _, _ := newTestModel(t, abc()[:2], filter.Completed)
	out := m.View()
	assert.Contains(t, out, "No tasks found in this view.")
	assert.Contains(t, out, "0 tasks")
}
