package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	tuicomp "github.com/alexisbeaulieu97/coachmark/internal/tui/components"
	"github.com/alexisbeaulieu97/coachmark/internal/ui/components"
	"github.com/alexisbeaulieu97/coachmark/pkg/coachmark"
)

// View renders the mail screen and passes it through the overlay.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := max(m.width, sidebarWidth+24)
	height := max(m.height, 12)
	reg := m.overlay.Registry()

	header := m.headerView(reg, width)
	status := m.statusView(reg, width)
	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(status)

	sidebar := m.sidebarView(reg, bodyHeight)
	inbox := m.inboxView(reg, width-lipgloss.Width(sidebar), bodyHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, inbox)

	frame := lipgloss.JoinVertical(lipgloss.Left, header, body, status)
	return m.overlay.View(frame)
}

// mark registers content under the tour mark for target, if any.
func (m Model) mark(reg *coachmark.Registry, target, content string) string {
	mark, ok := m.tour.MarkFor(target)
	if !ok {
		return content
	}
	return reg.Mark(mark.Order, content, mark.HighlightOptions()...)
}

func (m Model) headerView(reg *coachmark.Registry, width int) string {
	title := titleStyle.Render("✉ Mailbox")
	search := m.mark(reg, TargetSearch, searchStyle.Render("⌕ search mail…"))
	sync := mutedStyle.Render(m.spinner.View() + " syncing ")

	gap := width - lipgloss.Width(title) - lipgloss.Width(search) - lipgloss.Width(sync)
	left := max(gap/2, 1)
	right := max(gap-left, 1)
	line := title + strings.Repeat(" ", left) + search + strings.Repeat(" ", right) + sync

	divider := components.HorizontalDivider().
		WithStyle(lipgloss.NewStyle().Foreground(borderColor)).
		ViewWithContext(components.DefaultContext().WithMaxWidth(width))
	return lipgloss.JoinVertical(lipgloss.Left, line, divider)
}

func (m Model) sidebarView(reg *coachmark.Registry, height int) string {
	compose := m.mark(reg, TargetCompose,
		components.NewButton("+ Compose").WithStyle(composeStyle).View())

	rows := make([]string, 0, len(m.folders))
	for i, f := range m.folders {
		style := folderStyle
		if i == 0 {
			style = activeFolderStyle
		}
		row := style.Render(f.name)
		if f.unread > 0 {
			badge := components.MutedBadge(fmt.Sprint(f.unread))
			if i == 0 {
				badge = components.AccentBadge(fmt.Sprint(f.unread))
			}
			row = lipgloss.JoinHorizontal(lipgloss.Top, row, " ", badge.View())
		}
		rows = append(rows, row)
	}
	folders := m.mark(reg, TargetFolders, lipgloss.JoinVertical(lipgloss.Left, rows...))

	content := lipgloss.JoinVertical(lipgloss.Left, " "+compose, "", folders)
	return boxStyle.
		Width(sidebarWidth).
		Height(max(height-2, 1)).
		Render(content)
}

func (m Model) inboxView(reg *coachmark.Registry, width, height int) string {
	inner := max(width-2, 10)

	rows := make([]string, 0, len(m.messages))
	for i, msg := range m.messages {
		marker := " "
		if msg.Unread {
			marker = unreadStyle.Render("●")
		}
		from := lipgloss.NewStyle().Width(9).Render(msg.From)
		received := lipgloss.NewStyle().Width(6).Align(lipgloss.Right).Render(msg.Received)
		subjectWidth := max(inner-lipgloss.Width(from)-lipgloss.Width(received)-6, 1)
		subject := lipgloss.NewStyle().Width(subjectWidth).MaxWidth(subjectWidth).Render(msg.Subject)

		style := rowStyle
		if i == m.cursor {
			style = selectedRowStyle
		}
		rows = append(rows, style.Render(marker+" "+from+subject+received))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if m.tourDone {
		stops := tuicomp.NewStopList(m.titles, m.visited)
		summary := tuicomp.NewSummary(tuicomp.SummaryData{
			Name:     m.tour.Name,
			Total:    len(m.titles),
			Visited:  stops.Visited(),
			Finished: true,
			Skipped:  m.skipped,
			Stops:    stops,
		}).View()
		if summary != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, content, summaryStyle.Render(summary))
		}
	}

	box := boxStyle.
		Width(inner).
		Height(max(height-2, 1)).
		MaxHeight(max(height, 3)).
		Render(content)
	return m.mark(reg, TargetInbox, box)
}

func (m Model) statusView(reg *coachmark.Registry, width int) string {
	var left, right string
	if m.overlay.Active() {
		left = tuicomp.NewProgress(reg.Len()).View(m.overlay.State().CurrentIndex)
		right = m.overlay.HelpView()
		if m.events != nil {
			right = m.help.ShortHelpView([]key.Binding{m.keys.EventNext, m.keys.EventBack, m.keys.EventSkip})
		}
	} else {
		left = "all mail synced"
		right = m.help.View(m.keys)
	}

	line := left + "   " + right
	return m.mark(reg, TargetStatus, statusStyle.Width(width).MaxWidth(width).Render(line))
}
