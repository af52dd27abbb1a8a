package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/repository"
	"github.com/alexanderramin/intake/internal/service"
	"github.com/alexanderramin/intake/internal/testutil"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRelativeTimeFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3 hours ago"},
		{"days ago", now.Add(-48 * time.Hour), "2 days ago"},
		{"future", now.Add(time.Hour), "1 hour from now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTimeFrom(tt.input, now))
		})
	}
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "NAME"},
		[][]string{{Bold("a"), "first"}, {"long-id", Dim("second")}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "ID       NAME", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "a        first", lines[2])
	assert.Equal(t, "long-id  second", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestStatusPill_CoversEveryStatus(t *testing.T) {
	for _, s := range domain.RequestStatuses {
		assert.NotEmpty(t, stripANSI(StatusPill(s)), s)
	}
	assert.Contains(t, stripANSI(StatusPill(domain.StatusUnderReview)), "Under review")
}

func TestProgress(t *testing.T) {
	assert.Equal(t, "--", stripANSI(Progress(0, 0)))
	assert.Contains(t, stripANSI(Progress(1, 2)), "1/2")
	assert.Contains(t, stripANSI(Progress(3, 3)), "██████████ 3/3")
}

func TestFormatRequestList(t *testing.T) {
	a := testutil.NewTestRequest("Dark mode", testutil.WithUrgency(domain.UrgencyCritical))
	b := testutil.NewTestRequest("Export CSV", testutil.WithStatus(domain.StatusRejected))

	out := stripANSI(FormatRequestList([]*domain.IntakeRequest{a, b}))

	assert.Contains(t, out, "INTAKE REQUESTS")
	assert.Contains(t, out, "Dark mode")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "Rejected")
	assert.Contains(t, out, a.ID[:8])
}

func TestFormatRequestList_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatRequestList(nil)), "No requests yet.")
}

func TestFormatStatusCounts_ListsEveryStatus(t *testing.T) {
	out := stripANSI(FormatStatusCounts(map[domain.RequestStatus]int{domain.StatusNew: 4}))

	assert.Contains(t, out, "New 4")
	assert.Contains(t, out, "Rejected 0")
}

func TestFormatRequestDetail_ShowsNoteAndTicket(t *testing.T) {
	req := testutil.NewTestRequest("SSO", testutil.WithStatus(domain.StatusAccepted), testutil.WithReviewNote("ship in Q3"))
	ticket := testutil.NewTestTicket("p1", "SSO", testutil.WithIntakeRequest(req.ID))

	out := stripANSI(FormatRequestDetail(req, ticket))

	assert.Contains(t, out, "ship in Q3")
	assert.Contains(t, out, ticket.ID)
	assert.Contains(t, out, "BUSINESS CONTEXT")
}

func TestFormatProjectList_ShowsCounts(t *testing.T) {
	p := testutil.NewTestProject("Platform")
	out := stripANSI(FormatProjectList([]repository.ProjectSummary{
		{Project: *p, Counts: domain.TicketCounts{Total: 4, Done: 1}},
	}))

	assert.Contains(t, out, "Platform")
	assert.Contains(t, out, "1/4")
	assert.Contains(t, out, "Active")
}

func TestFormatProjectDetail_Archived(t *testing.T) {
	p := testutil.NewTestProject("Legacy", testutil.WithArchived(), testutil.WithDescription("old stuff"))

	out := stripANSI(FormatProjectDetail(p, domain.TicketCounts{}))

	assert.Contains(t, out, "Archived")
	assert.Contains(t, out, "old stuff")
}

func TestFormatTicketDetail_RequirementChecklist(t *testing.T) {
	ticket := testutil.NewTestTicket("p1", "Billing", testutil.WithRequirements("Invoices", "Refunds"))
	ticket.Requirements[0].Completed = true

	out := stripANSI(FormatTicketDetail(ticket))

	assert.Contains(t, out, "[x] "+ticket.Requirements[0].ID+" Invoices")
	assert.Contains(t, out, "[ ] "+ticket.Requirements[1].ID+" Refunds")
	assert.Contains(t, out, "1/2")
}

func TestFormatBoard_RendersAllColumns(t *testing.T) {
	p := testutil.NewTestProject("Platform")
	doing := testutil.NewTestTicket(p.ID, "Wire API", testutil.WithColumn(domain.ColumnInProgress), testutil.WithAssignee("ana"))
	board := &service.Board{Project: p}
	for _, c := range domain.Columns {
		col := service.BoardColumn{Column: c}
		if c == domain.ColumnInProgress {
			col.Tickets = []*domain.Ticket{doing}
		}
		board.Columns = append(board.Columns, col)
	}

	out := stripANSI(FormatBoard(board))

	for _, c := range domain.Columns {
		assert.Contains(t, out, ColumnLabel(c))
	}
	assert.Contains(t, out, "Wire API")
	assert.Contains(t, out, "@ana")
}
