package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func TestUseCaseObserver_ReceivesSuccessAndFailure(t *testing.T) {
	rec := &recordingObserver{}
	svc := newTestServices(t, testutil.NewTestDB(t), WithObserver(rec))
	ctx := context.Background()

	req, err := svc.requests.Create(ctx, darkMode())
	require.NoError(t, err)
	_, err = svc.requests.Triage(ctx, "missing", domain.ActionAccept, "")
	require.Error(t, err)

	require.Len(t, rec.events, 2)
	assert.Equal(t, "submit-request", rec.events[0].Name)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, req.ID, rec.events[0].Fields["request_id"])

	assert.Equal(t, "triage-request", rec.events[1].Name)
	assert.False(t, rec.events[1].Success)
	assert.ErrorIs(t, rec.events[1].Err, domain.ErrNotFound)
}

func TestLogUseCaseObserver_WritesZapEntries(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewLogUseCaseObserver(zap.New(core))
	svc := newTestServices(t, testutil.NewTestDB(t), WithObserver(obs))
	ctx := context.Background()

	p, err := svc.projects.Create(ctx, "Logged", "")
	require.NoError(t, err)
	_, err = svc.tickets.Move(ctx, "missing", domain.ColumnDone)
	require.Error(t, err)

	entries := logs.FilterMessage("service_use_case").All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "create-project", first["use_case"])
	assert.Equal(t, p.ID, first["project_id"])
	assert.Equal(t, true, first["success"])

	second := entries[1].ContextMap()
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "move-ticket", second["use_case"])
	assert.Contains(t, second["error"], "not found")
}

func TestLogUseCaseObserver_LevelByErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want zapcore.Level
	}{
		{"success", nil, zapcore.InfoLevel},
		{"validation", &domain.ValidationError{Field: "title", Message: "is required"}, zapcore.WarnLevel},
		{"not found", domain.NotFound("ticket", "t1"), zapcore.WarnLevel},
		{"not eligible", fmt.Errorf("intake request %q is new: %w", "r1", domain.ErrNotEligible), zapcore.WarnLevel},
		{"internal", errors.New("disk full"), zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			obs := NewLogUseCaseObserver(zap.New(core))

			obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "convert-request", Success: tt.err == nil, Err: tt.err})

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.want, entries[0].Level)
		})
	}
}

func TestConversion_NotEligibleLogsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := newTestServices(t, testutil.NewTestDB(t), WithObserver(NewLogUseCaseObserver(zap.New(core))))
	ctx := context.Background()

	req, err := svc.requests.Create(ctx, darkMode())
	require.NoError(t, err)
	p, err := svc.projects.Create(ctx, "Target", "")
	require.NoError(t, err)

	_, err = svc.conversions.ConvertToTicket(ctx, p.ID, req.ID)
	require.ErrorIs(t, err, domain.ErrNotEligible)

	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestNewLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
