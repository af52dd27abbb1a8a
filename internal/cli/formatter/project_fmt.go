package formatter

import (
	"strings"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/repository"
)

func archivedPill(archived bool) string {
	if archived {
		return StyleDim.Render("✖ Archived")
	}
	return StyleGreen.Render("● Active")
}

// FormatProjectList renders projects with their ticket progress.
func FormatProjectList(projects []repository.ProjectSummary) string {
	if len(projects) == 0 {
		return RenderBox("Projects", Dim("No projects yet."))
	}

	headers := []string{"ID", "NAME", "STATUS", "TICKETS", "CREATED"}
	rows := make([][]string, 0, len(projects))
	for _, s := range projects {
		rows = append(rows, []string{
			TruncID(s.Project.ID),
			Bold(s.Project.Name),
			archivedPill(s.Project.Archived),
			Progress(s.Counts.Done, s.Counts.Total),
			Dim(RelativeTime(s.Project.CreatedAt)),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectDetail renders a project card with its done/total counts.
func FormatProjectDetail(p *domain.Project, counts domain.TicketCounts) string {
	lines := []string{
		StyleHeader.Render(p.Name),
		"",
		Dim("ID       ") + p.ID,
		Dim("Status   ") + archivedPill(p.Archived),
		Dim("Created  ") + Timestamp(p.CreatedAt),
		Dim("Tickets  ") + Progress(counts.Done, counts.Total),
	}
	if p.Description != nil {
		lines = append(lines, "", *p.Description)
	}
	return RenderBox("Project", strings.Join(lines, "\n"))
}
