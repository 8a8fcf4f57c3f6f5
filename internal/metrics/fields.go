package metrics

// Attribute keys shared by every instrument so dashboards can join series.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrEndpoint = "endpoint"
	AttrReason   = "reason"
	AttrOutcome  = "outcome"
)

// Outcome values.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeComplete = "complete"
	OutcomePartial  = "partial"
)

func errorOutcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

// buildOutcome marks a dashboard as partial when any league was left out.
func buildOutcome(excluded int) string {
	if excluded > 0 {
		return OutcomePartial
	}
	return OutcomeComplete
}
