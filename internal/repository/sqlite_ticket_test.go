package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTicketRepos(t *testing.T) (*SQLiteTicketRepo, *domain.Project) {
	t.Helper()
	db := testutil.NewTestDB(t)
	proj := testutil.NewTestProject("Board")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(context.Background(), proj))
	return NewSQLiteTicketRepo(db), proj
}

func TestTicketRepo_CreateAndGetByID(t *testing.T) {
	repo, proj := setupTicketRepos(t)
	ctx := context.Background()

	tk := testutil.NewTestTicket(proj.ID, "Wire SSO",
		testutil.WithAssignee("dana"),
		testutil.WithRequirements("SAML metadata", "Group mapping"),
	)
	tk.Requirements[1].Completed = true
	require.NoError(t, repo.Create(ctx, tk))

	fetched, err := repo.GetByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ProjectID)
	assert.Equal(t, "Wire SSO", fetched.Title)
	assert.Equal(t, domain.ColumnBacklog, fetched.Column)
	assert.Nil(t, fetched.IntakeRequestID)
	require.NotNil(t, fetched.Assignee)
	assert.Equal(t, "dana", *fetched.Assignee)
	assert.Equal(t, tk.Requirements, fetched.Requirements)
}

func TestTicketRepo_GetByID_NoRequirementsIsEmptySlice(t *testing.T) {
	repo, proj := setupTicketRepos(t)
	ctx := context.Background()

	tk := testutil.NewTestTicket(proj.ID, "Bare")
	require.NoError(t, repo.Create(ctx, tk))

	fetched, err := repo.GetByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetched.Requirements)
	assert.Empty(t, fetched.Requirements)
}

func TestTicketRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := setupTicketRepos(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTicketRepo_Create_UnknownProjectFails(t *testing.T) {
	repo, _ := setupTicketRepos(t)

	err := repo.Create(context.Background(), testutil.NewTestTicket("no-such-project", "Orphan"))
	assert.Error(t, err)
}

func TestTicketRepo_GetByIntakeRequest(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := testutil.NewTestProject("Board")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))
	req := testutil.NewTestRequest("Linked", testutil.WithStatus(domain.StatusAccepted))
	require.NoError(t, NewSQLiteRequestRepo(db).Create(ctx, req))
	repo := NewSQLiteTicketRepo(db)

	_, err := repo.GetByIntakeRequest(ctx, req.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	tk := testutil.NewTestTicket(proj.ID, "Linked", testutil.WithIntakeRequest(req.ID))
	require.NoError(t, repo.Create(ctx, tk))

	fetched, err := repo.GetByIntakeRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, tk.ID, fetched.ID)
	require.NotNil(t, fetched.IntakeRequestID)
	assert.Equal(t, req.ID, *fetched.IntakeRequestID)
}

func TestTicketRepo_Create_SecondTicketForRequestIsDuplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := testutil.NewTestProject("Board")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))
	req := testutil.NewTestRequest("Once", testutil.WithStatus(domain.StatusAccepted))
	require.NoError(t, NewSQLiteRequestRepo(db).Create(ctx, req))
	repo := NewSQLiteTicketRepo(db)

	require.NoError(t, repo.Create(ctx, testutil.NewTestTicket(proj.ID, "One", testutil.WithIntakeRequest(req.ID))))
	err := repo.Create(ctx, testutil.NewTestTicket(proj.ID, "Two", testutil.WithIntakeRequest(req.ID)))
	assert.ErrorIs(t, err, ErrDuplicate)

	tickets, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}

func TestTicketRepo_ListByProject_InsertionOrder(t *testing.T) {
	repo, proj := setupTicketRepos(t)
	ctx := context.Background()

	titles := []string{"Alpha", "Bravo", "Charlie"}
	for i, title := range titles {
		tk := testutil.NewTestTicket(proj.ID, title, testutil.WithRequirements("req for "+title))
		// Later tickets get earlier timestamps; order must still follow insertion.
		tk.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, tk))
	}

	tickets, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	for i, tk := range tickets {
		assert.Equal(t, titles[i], tk.Title)
		require.Len(t, tk.Requirements, 1)
		assert.Equal(t, "req for "+titles[i], tk.Requirements[0].Text)
	}
}

func TestTicketRepo_ListByProject_Empty(t *testing.T) {
	repo, proj := setupTicketRepos(t)

	tickets, err := repo.ListByProject(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestTicketRepo_CountByProject(t *testing.T) {
	repo, proj := setupTicketRepos(t)
	ctx := context.Background()

	counts, err := repo.CountByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketCounts{}, counts)

	require.NoError(t, repo.Create(ctx, testutil.NewTestTicket(proj.ID, "A", testutil.WithColumn(domain.ColumnDone))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTicket(proj.ID, "B", testutil.WithColumn(domain.ColumnInProgress))))

	counts, err = repo.CountByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketCounts{Total: 2, Done: 1}, counts)
}

func TestTicketRepo_Update_ReplacesRequirementsInOrder(t *testing.T) {
	repo, proj := setupTicketRepos(t)
	ctx := context.Background()

	tk := testutil.NewTestTicket(proj.ID, "Checklist", testutil.WithRequirements("one", "two", "three"))
	require.NoError(t, repo.Create(ctx, tk))

	now := tk.UpdatedAt.Add(time.Minute)
	require.NoError(t, tk.RemoveRequirement(tk.Requirements[1].ID, now))
	require.NoError(t, tk.ToggleRequirement(tk.Requirements[0].ID, now))
	_, err := tk.AddRequirement(domain.RequirementID("new"), "four", now)
	require.NoError(t, err)
	require.NoError(t, tk.MoveTo(domain.ColumnInReview, now))
	tk.AssignTo("lee", now)
	require.NoError(t, repo.Update(ctx, tk))

	fetched, err := repo.GetByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ColumnInReview, fetched.Column)
	require.NotNil(t, fetched.Assignee)
	assert.Equal(t, "lee", *fetched.Assignee)
	assert.True(t, now.Equal(fetched.UpdatedAt))
	require.Len(t, fetched.Requirements, 3)
	assert.Equal(t, "one", fetched.Requirements[0].Text)
	assert.True(t, fetched.Requirements[0].Completed)
	assert.Equal(t, "three", fetched.Requirements[1].Text)
	assert.Equal(t, "four", fetched.Requirements[2].Text)
	assert.Equal(t, "r-new", fetched.Requirements[2].ID)
}

func TestTicketRepo_Update_ClearsAssignee(t *testing.T) {
	repo, proj := setupTicketRepos(t)
	ctx := context.Background()

	tk := testutil.NewTestTicket(proj.ID, "Owned", testutil.WithAssignee("kim"))
	require.NoError(t, repo.Create(ctx, tk))

	tk.AssignTo("  ", tk.UpdatedAt.Add(time.Second))
	require.NoError(t, repo.Update(ctx, tk))

	fetched, err := repo.GetByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Assignee)
}

func TestTicketRepo_Update_NotFound(t *testing.T) {
	repo, proj := setupTicketRepos(t)

	err := repo.Update(context.Background(), testutil.NewTestTicket(proj.ID, "Ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}
