package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTicketFixture(t *testing.T) (testServices, *domain.Project) {
	t.Helper()
	svc := newTestServices(t, testutil.NewTestDB(t))
	p, err := svc.projects.Create(context.Background(), "Board", "")
	require.NoError(t, err)
	return svc, p
}

func TestTicketService_Create_AdHocDefaults(t *testing.T) {
	svc, p := newTicketFixture(t)
	ctx := context.Background()

	tk, err := svc.tickets.Create(ctx, p.ID, "  Fix login  ", "")
	require.NoError(t, err)
	assert.Equal(t, "Fix login", tk.Title)
	assert.Equal(t, "", tk.BusinessContext)
	assert.Equal(t, domain.ImpactOther, tk.ImpactArea)
	assert.Equal(t, domain.UrgencyMedium, tk.Urgency)
	assert.Equal(t, domain.ColumnBacklog, tk.Column)
	assert.Nil(t, tk.IntakeRequestID)
	assert.Empty(t, tk.Requirements)

	stored, err := svc.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, tk.ID, stored.ID)
	assert.NotNil(t, stored.Requirements)
}

func TestTicketService_Create_Errors(t *testing.T) {
	svc, p := newTicketFixture(t)
	ctx := context.Background()

	_, err := svc.tickets.Create(ctx, p.ID, "   ", "ctx")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.tickets.Create(ctx, "missing", "Orphan", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	tickets, err := svc.tickets.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestTicketService_Move_AnyColumnToAny(t *testing.T) {
	svc, p := newTicketFixture(t)
	ctx := context.Background()

	tk, err := svc.tickets.Create(ctx, p.ID, "Roam", "")
	require.NoError(t, err)

	// Jump straight to done, then back to backlog: adjacency is not enforced.
	path := []domain.Column{domain.ColumnDone, domain.ColumnBacklog, domain.ColumnInReview, domain.ColumnInProgress}
	prev := tk.UpdatedAt
	for _, c := range path {
		moved, err := svc.tickets.Move(ctx, tk.ID, c)
		require.NoError(t, err)
		assert.Equal(t, c, moved.Column)
		assert.True(t, moved.UpdatedAt.After(prev))
		prev = moved.UpdatedAt
	}

	_, err = svc.tickets.Move(ctx, tk.ID, domain.Column("blocked"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.tickets.Move(ctx, "missing", domain.ColumnDone)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTicketService_Assign(t *testing.T) {
	svc, p := newTicketFixture(t)
	ctx := context.Background()

	tk, err := svc.tickets.Create(ctx, p.ID, "Owned", "")
	require.NoError(t, err)

	tk, err = svc.tickets.Assign(ctx, tk.ID, " priya ")
	require.NoError(t, err)
	require.NotNil(t, tk.Assignee)
	assert.Equal(t, "priya", *tk.Assignee)

	tk, err = svc.tickets.Assign(ctx, tk.ID, "")
	require.NoError(t, err)
	assert.Nil(t, tk.Assignee)

	stored, err := svc.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Assignee)
}

func TestTicketService_Requirements_AddRemoveRoundTrip(t *testing.T) {
	svc, p := newTicketFixture(t)
	ctx := context.Background()

	tk, err := svc.tickets.Create(ctx, p.ID, "Checklist", "")
	require.NoError(t, err)
	tk, err = svc.tickets.AddRequirement(ctx, tk.ID, "First")
	require.NoError(t, err)
	tk, err = svc.tickets.AddRequirement(ctx, tk.ID, "Second")
	require.NoError(t, err)
	before := tk.Requirements

	tk, err = svc.tickets.AddRequirement(ctx, tk.ID, "Temporary")
	require.NoError(t, err)
	require.Len(t, tk.Requirements, 3)
	added := tk.Requirements[2]
	assert.Equal(t, "Temporary", added.Text)
	assert.False(t, added.Completed)
	assert.Contains(t, added.ID, "r-")

	tk, err = svc.tickets.RemoveRequirement(ctx, tk.ID, added.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(before, tk.Requirements); diff != "" {
		t.Errorf("requirements after add/remove mismatch (-want +got):\n%s", diff)
	}

	stored, err := svc.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(before, stored.Requirements); diff != "" {
		t.Errorf("stored requirements mismatch (-want +got):\n%s", diff)
	}
}

func TestTicketService_Requirements_ToggleTwiceRestores(t *testing.T) {
	svc, p := newTicketFixture(t)
	ctx := context.Background()

	tk, err := svc.tickets.Create(ctx, p.ID, "Toggle", "")
	require.NoError(t, err)
	tk, err = svc.tickets.AddRequirement(ctx, tk.ID, "Ship it")
	require.NoError(t, err)
	rid := tk.Requirements[0].ID

	tk, err = svc.tickets.ToggleRequirement(ctx, tk.ID, rid)
	require.NoError(t, err)
	assert.True(t, tk.Requirements[0].Completed)

	tk, err = svc.tickets.ToggleRequirement(ctx, tk.ID, rid)
	require.NoError(t, err)
	assert.False(t, tk.Requirements[0].Completed)
}

func TestTicketService_Requirements_Validation(t *testing.T) {
	svc, p := newTicketFixture(t)
	ctx := context.Background()

	tk, err := svc.tickets.Create(ctx, p.ID, "Strict", "")
	require.NoError(t, err)

	_, err = svc.tickets.AddRequirement(ctx, tk.ID, "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.tickets.AddRequirement(ctx, "missing", "text")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTicketService_Requirements_UnknownIDLeavesTicketUntouched(t *testing.T) {
	svc, p := newTicketFixture(t)
	ctx := context.Background()

	tk, err := svc.tickets.Create(ctx, p.ID, "Stable", "")
	require.NoError(t, err)
	tk, err = svc.tickets.AddRequirement(ctx, tk.ID, "Only one")
	require.NoError(t, err)

	_, err = svc.tickets.ToggleRequirement(ctx, tk.ID, "r-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.tickets.RemoveRequirement(ctx, tk.ID, "r-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored, err := svc.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.True(t, tk.UpdatedAt.Equal(stored.UpdatedAt))
	if diff := cmp.Diff(tk.Requirements, stored.Requirements); diff != "" {
		t.Errorf("requirements changed (-want +got):\n%s", diff)
	}
}

func TestTicketService_Mutation_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	setup := newTestServices(t, database)

	p, err := setup.projects.Create(ctx, "Rollback", "")
	require.NoError(t, err)
	tk, err := setup.tickets.Create(ctx, p.ID, "Fragile", "")
	require.NoError(t, err)
	tk, err = setup.tickets.AddRequirement(ctx, tk.ID, "keep me")
	require.NoError(t, err)
	tk, err = setup.tickets.AddRequirement(ctx, tk.ID, "and me")
	require.NoError(t, err)

	// Exec 1 updates the row, exec 2 clears requirements, exec 3 reinserts the
	// first one. Failing there would drop the whole list without a transaction.
	boom := errors.New("disk full")
	failing := newTestServicesWithUoW(t, database, &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: boom})

	_, err = failing.tickets.AddRequirement(ctx, tk.ID, "never stored")
	require.ErrorIs(t, err, boom)
	_, err = failing.tickets.Move(ctx, tk.ID, domain.ColumnDone)
	require.ErrorIs(t, err, boom)

	stored, err := setup.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ColumnBacklog, stored.Column)
	assert.True(t, tk.UpdatedAt.Equal(stored.UpdatedAt))
	if diff := cmp.Diff(tk.Requirements, stored.Requirements); diff != "" {
		t.Errorf("requirements after failed write (-want +got):\n%s", diff)
	}
}

func TestTicketService_Board_GroupsByColumn(t *testing.T) {
	svc, p := newTicketFixture(t)
	ctx := context.Background()

	a, err := svc.tickets.Create(ctx, p.ID, "A", "")
	require.NoError(t, err)
	b, err := svc.tickets.Create(ctx, p.ID, "B", "")
	require.NoError(t, err)
	c, err := svc.tickets.Create(ctx, p.ID, "C", "")
	require.NoError(t, err)
	_, err = svc.tickets.Move(ctx, b.ID, domain.ColumnDone)
	require.NoError(t, err)

	board, err := svc.tickets.Board(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, board.Project.ID)
	require.Len(t, board.Columns, 4)

	got := map[domain.Column][]string{}
	for i, col := range board.Columns {
		assert.Equal(t, domain.Columns[i], col.Column)
		assert.NotNil(t, col.Tickets)
		for _, tk := range col.Tickets {
			got[col.Column] = append(got[col.Column], tk.ID)
		}
	}
	assert.Equal(t, []string{a.ID, c.ID}, got[domain.ColumnBacklog])
	assert.Equal(t, []string{b.ID}, got[domain.ColumnDone])
	assert.Empty(t, got[domain.ColumnInProgress])

	_, err = svc.tickets.Board(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
