package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskmgr/internal/filter"
	"taskmgr/internal/storage"
)

const sidebarWidth = 22

var (
	colorSidebar   = lipgloss.Color("#34495e")
	colorTeal      = lipgloss.Color("#1abc9c")
	colorGreen     = lipgloss.Color("#2ecc71")
	colorOrange    = lipgloss.Color("#e67e22")
	colorRed       = lipgloss.Color("#e74c3c")
	colorWhite     = lipgloss.Color("#ffffff")
	tagColors      = map[string]lipgloss.Color{"teal": colorTeal, "green": colorGreen}
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorSidebar).Padding(0, 1)
	sidebarStyle   = lipgloss.NewStyle().Width(sidebarWidth).Padding(1, 1).Background(colorSidebar).Foreground(colorWhite)
	navStyle       = lipgloss.NewStyle().Padding(0, 1)
	navActiveStyle = navStyle.Bold(true).Background(colorTeal).Foreground(colorWhite)
	mutedStyle     = lipgloss.NewStyle().Faint(true)
	dashboardStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	mainStyle      = lipgloss.NewStyle().PaddingLeft(2)
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).PaddingLeft(1).MarginBottom(1)
	nameStyle      = lipgloss.NewStyle().Bold(true)
)

func (m Model) View() string {
	all := m.store.All()
	visible := m.view.Visible(all)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(all),
		mainStyle.Render(m.renderMain(visible)),
	)

	var b strings.Builder
	b.WriteString(headerStyle.Render("Task Manager"))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderNotice())
	b.WriteString("\n")
	if m.focus == focusList {
		b.WriteString(m.help.View(listHelp{m.keys}))
	} else {
		b.WriteString(m.help.View(formHelp{m.keys}))
	}
	return b.String()
}

func (m Model) renderSidebar(all []storage.Task) string {
	counts := filter.Count(all)
	current := m.view.Mode()

	lines := make([]string, 0, len(filter.Modes())+2)
	for _, mode := range filter.Modes() {
		label := fmt.Sprintf("%s %s (%d)", modeIcon(mode), mode, counts.Of(mode))
		if mode == current {
			lines = append(lines, navActiveStyle.Render(label))
		} else {
			lines = append(lines, navStyle.Render(label))
		}
	}
	lines = append(lines, "", mutedStyle.Render(taskCount(len(all))))
	return sidebarStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderMain(visible []storage.Task) string {
	var b strings.Builder
	b.WriteString(dashboardStyle.Render("Dashboard"))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	b.WriteString("Due: ")
	b.WriteString(m.due.View())
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s · %s\n\n", m.view.Mode(), taskCount(len(visible))))

	if len(visible) == 0 {
		b.WriteString(mutedStyle.Italic(true).Render("No tasks found in this view."))
		return b.String()
	}
	for i, t := range visible {
		selected := m.focus == focusList && i == m.cursor
		b.WriteString(renderCard(t, selected))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCard(t storage.Task, selected bool) string {
	icon := lipgloss.NewStyle().Foreground(colorTeal).Render("○")
	name := nameStyle
	if t.Completed {
		icon = lipgloss.NewStyle().Foreground(colorGreen).Render("✔")
		name = name.Strikethrough(true).Faint(true)
	}
	cursor := " "
	if selected {
		cursor = ">"
	}
	content := fmt.Sprintf("%s %s\n  %s", icon, name.Render(t.Name), mutedStyle.Render(t.Due))
	card := cardStyle.BorderForeground(tagColors[t.ColorTag()]).Render(content)
	return lipgloss.JoinHorizontal(lipgloss.Top, cursor+" ", card)
}

func (m Model) renderNotice() string {
	style := lipgloss.NewStyle()
	switch m.notice.level {
	case levelSuccess:
		style = style.Foreground(colorGreen).Bold(true)
	case levelWarn:
		style = style.Foreground(colorOrange).Bold(true)
	case levelError:
		style = style.Foreground(colorRed).Bold(true)
	}
	return style.Render(m.notice.text)
}

func modeIcon(mode filter.Mode) string {
	switch mode {
	case filter.Active:
		return "○"
	case filter.Completed:
		return "✔"
	default:
		return "☰"
	}
}

func taskCount(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
