package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/intake/internal/domain"
)

// resolvePrefix matches input against ids: exact match first, then a
// unique case-insensitive prefix. Tables show truncated ids, so users
// usually type the first few characters.
func resolvePrefix(kind, input string, ids []string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	lower := strings.ToLower(input)
	for _, id := range ids {
		if strings.HasPrefix(strings.ToLower(id), lower) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", domain.NotFound(kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveRequestID(ctx context.Context, app *App, input string) (string, error) {
	reqs, err := app.Requests.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	return resolvePrefix("intake request", input, ids)
}

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return resolvePrefix("project", input, ids)
}

// resolveTicketID tries an exact lookup before scanning every project's
// tickets for a prefix match.
func resolveTicketID(ctx context.Context, app *App, input string) (string, error) {
	if t, err := app.Tickets.Get(ctx, strings.TrimSpace(input)); err == nil {
		return t.ID, nil
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}
	var ids []string
	for _, p := range projects {
		tickets, err := app.Tickets.ListByProject(ctx, p.ID)
		if err != nil {
			return "", err
		}
		for _, t := range tickets {
			ids = append(ids, t.ID)
		}
	}
	return resolvePrefix("ticket", input, ids)
}
