package domain

import (
	"strings"
	"time"
)

type Project struct {
	ID          string
	Name        string
	Description *string
	Archived    bool
	CreatedAt   time.Time
}

// TicketCounts summarises a project's board.
type TicketCounts struct {
	Total int
	Done  int
}

// NewProject validates name and returns an unarchived project. A blank
// description is stored as absent.
func NewProject(id, name, description string, now time.Time) (*Project, error) {
	n, err := RequireText("name", name)
	if err != nil {
		return nil, err
	}
	p := &Project{ID: id, Name: n, CreatedAt: now}
	if d := strings.TrimSpace(description); d != "" {
		p.Description = &d
	}
	return p, nil
}

// DisplayID returns the id truncated to 8 characters for tables.
func (p *Project) DisplayID() string {
	return shortID(p.ID)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
