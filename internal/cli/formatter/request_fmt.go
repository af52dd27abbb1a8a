package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatRequestList renders the intake queue inside a bordered box.
func FormatRequestList(reqs []*domain.IntakeRequest) string {
	if len(reqs) == 0 {
		return RenderBox("Intake requests", Dim("No requests yet."))
	}

	headers := []string{"ID", "TITLE", "IMPACT", "URGENCY", "STATUS", "REQUESTER", "UPDATED"}
	rows := make([][]string, 0, len(reqs))
	for _, r := range reqs {
		rows = append(rows, []string{
			TruncID(r.ID),
			Bold(r.Title),
			ImpactBadge(r.ImpactArea),
			UrgencyBadge(r.Urgency),
			StatusPill(r.Status),
			r.RequesterName,
			Dim(RelativeTime(r.UpdatedAt)),
		})
	}
	return RenderBox("Intake requests", RenderTable(headers, rows))
}

// FormatStatusCounts renders a single-line tally in status order.
func FormatStatusCounts(counts map[domain.RequestStatus]int) string {
	parts := make([]string, 0, len(domain.RequestStatuses))
	for _, s := range domain.RequestStatuses {
		parts = append(parts, fmt.Sprintf("%s %d", StatusPill(s), counts[s]))
	}
	return strings.Join(parts, Dim("  ·  "))
}

// FormatRequestDetail renders one request with its triage state. When the
// request has been converted, ticket is the linked ticket.
func FormatRequestDetail(r *domain.IntakeRequest, ticket *domain.Ticket) string {
	label := StyleDim.Width(12)
	line := func(k, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(k), v)
	}

	lines := []string{
		StyleHeader.Render(r.Title),
		"",
		line("ID", r.ID),
		line("Status", StatusPill(r.Status)),
		line("Impact", ImpactBadge(r.ImpactArea)),
		line("Urgency", UrgencyBadge(r.Urgency)),
		line("Requester", r.RequesterName),
		line("Created", Timestamp(r.CreatedAt)),
		line("Updated", Timestamp(r.UpdatedAt)),
	}
	if r.ReviewNote != nil {
		lines = append(lines, line("Note", *r.ReviewNote))
	}
	if ticket != nil {
		lines = append(lines, line("Ticket", fmt.Sprintf("%s %s", ticket.ID, ColumnPill(ticket.Column))))
	}
	lines = append(lines, "", Header("Business context"), r.BusinessContext)

	return RenderBox("Intake request", strings.Join(lines, "\n"))
}
