package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/service"
	"github.com/charmbracelet/lipgloss"
)

const boardColumnWidth = 28

// FormatTicketList renders a project's tickets as a table.
func FormatTicketList(tickets []*domain.Ticket) string {
	if len(tickets) == 0 {
		return RenderBox("Tickets", Dim("No tickets yet."))
	}

	headers := []string{"ID", "TITLE", "COLUMN", "URGENCY", "ASSIGNEE", "REQS"}
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []string{
			TruncID(t.ID),
			Bold(t.Title),
			ColumnPill(t.Column),
			UrgencyBadge(t.Urgency),
			Optional(t.Assignee),
			requirementTally(t),
		})
	}
	return RenderBox("Tickets", RenderTable(headers, rows))
}

func requirementTally(t *domain.Ticket) string {
	if len(t.Requirements) == 0 {
		return Dim("--")
	}
	return fmt.Sprintf("%d/%d", t.CompletedRequirements(), len(t.Requirements))
}

// FormatTicketDetail renders a ticket with its requirement checklist.
func FormatTicketDetail(t *domain.Ticket) string {
	lines := []string{
		StyleHeader.Render(t.Title),
		"",
		Dim("ID         ") + t.ID,
		Dim("Project    ") + t.ProjectID,
		Dim("Column     ") + ColumnPill(t.Column),
		Dim("Impact     ") + ImpactBadge(t.ImpactArea),
		Dim("Urgency    ") + UrgencyBadge(t.Urgency),
		Dim("Assignee   ") + Optional(t.Assignee),
		Dim("Request    ") + Optional(t.IntakeRequestID),
		Dim("Updated    ") + Timestamp(t.UpdatedAt),
	}
	if t.BusinessContext != "" {
		lines = append(lines, "", Header("Business context"), t.BusinessContext)
	}

	lines = append(lines, "", Header("Requirements"))
	if len(t.Requirements) == 0 {
		lines = append(lines, Dim("none"))
	}
	for _, r := range t.Requirements {
		lines = append(lines, requirementLine(r))
	}
	if n := len(t.Requirements); n > 0 {
		lines = append(lines, "", Progress(t.CompletedRequirements(), n))
	}
	return RenderBox("Ticket", strings.Join(lines, "\n"))
}

func requirementLine(r domain.Requirement) string {
	if r.Completed {
		return fmt.Sprintf("%s %s %s", StyleGreen.Render("[x]"), Dim(r.ID), StyleDim.Strikethrough(true).Render(r.Text))
	}
	return fmt.Sprintf("%s %s %s", StyleFg.Render("[ ]"), Dim(r.ID), r.Text)
}

// FormatBoard renders the four board columns side by side.
func FormatBoard(b *service.Board) string {
	panels := make([]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		panels = append(panels, boardPanel(col))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	return StyleHeader.Render(b.Project.Name) + "\n\n" + board
}

func boardPanel(col service.BoardColumn) string {
	title := fmt.Sprintf("%s %s", ColumnPill(col.Column), Dim(fmt.Sprintf("(%d)", len(col.Tickets))))

	cards := []string{title, ""}
	if len(col.Tickets) == 0 {
		cards = append(cards, Dim("empty"))
	}
	for _, t := range col.Tickets {
		cards = append(cards, boardCard(t))
	}

	return lipgloss.NewStyle().
		Width(boardColumnWidth).
		MarginRight(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Render(strings.Join(cards, "\n"))
}

func boardCard(t *domain.Ticket) string {
	meta := []string{TruncID(t.ID), UrgencyBadge(t.Urgency)}
	if t.Assignee != nil {
		meta = append(meta, StyleBlue.Render("@"+*t.Assignee))
	}
	if len(t.Requirements) > 0 {
		meta = append(meta, Dim(requirementTally(t)))
	}
	return Bold(t.Title) + "\n" + strings.Join(meta, " ") + "\n"
}
