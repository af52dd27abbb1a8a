package seed

import (
	"fmt"
	"time"

	"github.com/alexanderramin/intake/internal/domain"
)

// Validate checks a dataset and returns all errors found. References between
// entries are resolved by id within the dataset only.
func Validate(ds *Dataset) []error {
	var errs []error

	requestIDs := make(map[string]bool, len(ds.Requests))
	for i, r := range ds.Requests {
		prefix := fmt.Sprintf("requests[%d]", i)
		errs = append(errs, checkID(prefix, r.ID, requestIDs)...)
		errs = append(errs, checkText(prefix, "title", r.Title)...)
		errs = append(errs, checkText(prefix, "business_context", r.BusinessContext)...)
		errs = append(errs, checkText(prefix, "requester_name", r.RequesterName)...)
		if _, err := domain.ParseImpactArea(r.ImpactArea); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
		if _, err := domain.ParseUrgency(r.Urgency); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
		if _, err := domain.ParseRequestStatus(r.Status); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
		errs = append(errs, checkTimes(prefix, r.CreatedAt, r.UpdatedAt)...)
	}

	projectIDs := make(map[string]bool, len(ds.Projects))
	for i, p := range ds.Projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		errs = append(errs, checkID(prefix, p.ID, projectIDs)...)
		errs = append(errs, checkText(prefix, "name", p.Name)...)
		if p.CreatedAt.IsZero() {
			errs = append(errs, fmt.Errorf("%s: created_at is required", prefix))
		}
	}

	ticketIDs := make(map[string]bool, len(ds.Tickets))
	linked := make(map[string]string)
	for i, t := range ds.Tickets {
		prefix := fmt.Sprintf("tickets[%d]", i)
		errs = append(errs, checkID(prefix, t.ID, ticketIDs)...)
		if !projectIDs[t.ProjectID] {
			errs = append(errs, fmt.Errorf("%s: project_id %q not in dataset", prefix, t.ProjectID))
		}
		if t.IntakeRequestID != nil {
			rid := *t.IntakeRequestID
			if !requestIDs[rid] {
				errs = append(errs, fmt.Errorf("%s: intake_request_id %q not in dataset", prefix, rid))
			}
			if other, ok := linked[rid]; ok {
				errs = append(errs, fmt.Errorf("%s: request %q already has ticket %q", prefix, rid, other))
			}
			linked[rid] = t.ID
		} else {
			errs = append(errs, checkText(prefix, "title", t.Title)...)
		}
		if t.Column != "" {
			if _, err := domain.ParseColumn(t.Column); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
			}
		}
		if t.ImpactArea != "" {
			if _, err := domain.ParseImpactArea(t.ImpactArea); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
			}
		}
		if t.Urgency != "" {
			if _, err := domain.ParseUrgency(t.Urgency); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
			}
		}
		reqIDs := make(map[string]bool, len(t.Requirements))
		for j, r := range t.Requirements {
			rp := fmt.Sprintf("%s.requirements[%d]", prefix, j)
			errs = append(errs, checkID(rp, r.ID, reqIDs)...)
			errs = append(errs, checkText(rp, "text", r.Text)...)
		}
		errs = append(errs, checkTimes(prefix, t.CreatedAt, t.UpdatedAt)...)
	}

	return errs
}

func checkID(prefix, id string, seen map[string]bool) []error {
	if id == "" {
		return []error{fmt.Errorf("%s: id is required", prefix)}
	}
	if seen[id] {
		return []error{fmt.Errorf("%s: duplicate id %q", prefix, id)}
	}
	seen[id] = true
	return nil
}

func checkText(prefix, field, value string) []error {
	if _, err := domain.RequireText(field, value); err != nil {
		return []error{fmt.Errorf("%s: %w", prefix, err)}
	}
	return nil
}

// checkTimes requires created_at. A missing updated_at defaults to created_at
// on conversion; a present one may not precede it.
func checkTimes(prefix string, created, updated time.Time) []error {
	if created.IsZero() {
		return []error{fmt.Errorf("%s: created_at is required", prefix)}
	}
	if !updated.IsZero() && updated.Before(created) {
		return []error{fmt.Errorf("%s: updated_at precedes created_at", prefix)}
	}
	return nil
}
