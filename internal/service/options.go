package service

import (
	"time"

	"github.com/google/uuid"
)

// Option customises a service. The defaults are UTC wall time, random UUIDs
// and no use-case observer.
type Option func(*settings)

type settings struct {
	now      func() time.Time
	newID    func() string
	observer UseCaseObserver
}

// WithClock replaces the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDs replaces the id generator for entities and requirements.
func WithIDs(newID func() string) Option {
	return func(s *settings) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithObserver reports mutating use cases to obs.
func WithObserver(obs UseCaseObserver) Option {
	return func(s *settings) {
		if obs != nil {
			s.observer = obs
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.New().String() },
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
