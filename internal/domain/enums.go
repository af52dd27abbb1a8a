package domain

type RequestStatus string

const (
	StatusNew         RequestStatus = "new"
	StatusUnderReview RequestStatus = "under_review"
	StatusAccepted    RequestStatus = "accepted"
	StatusDeferred    RequestStatus = "deferred"
	StatusRejected    RequestStatus = "rejected"
)

// RequestStatuses lists every request status in dashboard order.
var RequestStatuses = []RequestStatus{
	StatusNew, StatusUnderReview, StatusAccepted, StatusDeferred, StatusRejected,
}

type ImpactArea string

const (
	ImpactProduct     ImpactArea = "product"
	ImpactEngineering ImpactArea = "engineering"
	ImpactOperations  ImpactArea = "operations"
	ImpactDesign      ImpactArea = "design"
	ImpactOther       ImpactArea = "other"
)

var ImpactAreas = []ImpactArea{
	ImpactProduct, ImpactEngineering, ImpactOperations, ImpactDesign, ImpactOther,
}

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

var Urgencies = []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}

// Column is a ticket's position on a project board.
type Column string

const (
	ColumnBacklog    Column = "backlog"
	ColumnInProgress Column = "in_progress"
	ColumnInReview   Column = "in_review"
	ColumnDone       Column = "done"
)

// Columns lists the board columns left to right.
var Columns = []Column{ColumnBacklog, ColumnInProgress, ColumnInReview, ColumnDone}

type TriageAction string

const (
	ActionAccept  TriageAction = "accept"
	ActionDefer   TriageAction = "defer"
	ActionReject  TriageAction = "reject"
	ActionClarify TriageAction = "clarify"
)

var TriageActions = []TriageAction{ActionAccept, ActionDefer, ActionReject, ActionClarify}

// triageOutcomes is the fixed action -> status table. External callers depend
// on it; changing an entry is a breaking change.
var triageOutcomes = map[TriageAction]RequestStatus{
	ActionAccept:  StatusAccepted,
	ActionDefer:   StatusDeferred,
	ActionReject:  StatusRejected,
	ActionClarify: StatusUnderReview,
}

// TriageOutcome returns the status a triage action leads to.
func TriageOutcome(a TriageAction) (RequestStatus, bool) {
	s, ok := triageOutcomes[a]
	return s, ok
}

func (s RequestStatus) Valid() bool { return contains(RequestStatuses, s) }
func (a ImpactArea) Valid() bool    { return contains(ImpactAreas, a) }
func (u Urgency) Valid() bool       { return contains(Urgencies, u) }
func (c Column) Valid() bool        { return contains(Columns, c) }
func (a TriageAction) Valid() bool  { return contains(TriageActions, a) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ParseRequestStatus validates s against the fixed status set.
func ParseRequestStatus(s string) (RequestStatus, error) {
	v := RequestStatus(s)
	if !v.Valid() {
		return "", invalidEnum("status", s, RequestStatuses)
	}
	return v, nil
}

// ParseImpactArea validates s against the fixed impact area set.
func ParseImpactArea(s string) (ImpactArea, error) {
	v := ImpactArea(s)
	if !v.Valid() {
		return "", invalidEnum("impactArea", s, ImpactAreas)
	}
	return v, nil
}

// ParseUrgency validates s against the fixed urgency set.
func ParseUrgency(s string) (Urgency, error) {
	v := Urgency(s)
	if !v.Valid() {
		return "", invalidEnum("urgency", s, Urgencies)
	}
	return v, nil
}

// ParseColumn validates s against the four board columns.
func ParseColumn(s string) (Column, error) {
	v := Column(s)
	if !v.Valid() {
		return "", invalidEnum("column", s, Columns)
	}
	return v, nil
}

// ParseTriageAction validates s against the four triage actions.
func ParseTriageAction(s string) (TriageAction, error) {
	v := TriageAction(s)
	if !v.Valid() {
		return "", invalidEnum("action", s, TriageActions)
	}
	return v, nil
}
