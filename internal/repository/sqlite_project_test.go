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

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Platform", testutil.WithDescription("Core services"))
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "Platform", fetched.Name)
	require.NotNil(t, fetched.Description)
	assert.Equal(t, "Core services", *fetched.Description)
	assert.False(t, fetched.Archived)
	assert.True(t, proj.CreatedAt.Equal(fetched.CreatedAt))
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "not found")
}

func TestProjectRepo_List_NewestFirst_IncludesArchived(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	p1 := testutil.NewTestProject("First", testutil.WithProjectCreatedAt(base))
	p2 := testutil.NewTestProject("Second", testutil.WithProjectCreatedAt(base.Add(time.Hour)), testutil.WithArchived())
	require.NoError(t, repo.Create(ctx, p1))
	require.NoError(t, repo.Create(ctx, p2))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Name)
	assert.True(t, list[0].Archived)
	assert.Equal(t, "First", list[1].Name)
}

func TestProjectRepo_ToggleArchived(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Flip")
	require.NoError(t, repo.Create(ctx, proj))

	require.NoError(t, repo.ToggleArchived(ctx, proj.ID))
	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Archived)

	require.NoError(t, repo.ToggleArchived(ctx, proj.ID))
	fetched, err = repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Archived)
}

func TestProjectRepo_ToggleArchived_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	err := repo.ToggleArchived(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_ListWithCounts(t *testing.T) {
	db := testutil.NewTestDB(t)
	projRepo := NewSQLiteProjectRepo(db)
	ticketRepo := NewSQLiteTicketRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	busy := testutil.NewTestProject("Busy", testutil.WithProjectCreatedAt(base.Add(time.Hour)))
	empty := testutil.NewTestProject("Empty", testutil.WithProjectCreatedAt(base))
	require.NoError(t, projRepo.Create(ctx, busy))
	require.NoError(t, projRepo.Create(ctx, empty))

	require.NoError(t, ticketRepo.Create(ctx, testutil.NewTestTicket(busy.ID, "A")))
	require.NoError(t, ticketRepo.Create(ctx, testutil.NewTestTicket(busy.ID, "B", testutil.WithColumn(domain.ColumnDone))))
	require.NoError(t, ticketRepo.Create(ctx, testutil.NewTestTicket(busy.ID, "C", testutil.WithColumn(domain.ColumnInReview))))

	summaries, err := projRepo.ListWithCounts(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Busy", summaries[0].Project.Name)
	assert.Equal(t, domain.TicketCounts{Total: 3, Done: 1}, summaries[0].Counts)
	assert.Equal(t, "Empty", summaries[1].Project.Name)
	assert.Equal(t, domain.TicketCounts{}, summaries[1].Counts)
}
