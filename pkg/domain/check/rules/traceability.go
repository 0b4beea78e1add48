package rules

import (
	"strings"

	"github.com/felixgeelhaar/speclint/pkg/domain/check"
	"github.com/felixgeelhaar/speclint/pkg/domain/spec"
)

const (
	traceabilityPoints = 25
	tracePenalty       = 5
)

var (
	drivingMarkers  = []string{"HTTP:", "UI:"}
	outboundMarkers = []string{"Event:", "Persistence:", "Email:", "API:"}
)

// TraceabilityRule requires scope to describe a complete in -> domain -> out slice.
type TraceabilityRule struct{}

// ID is the name used in the checks configuration.
func (r *TraceabilityRule) ID() string {
	return "traceability"
}

// MaxPoints is the most this rule can contribute to a score.
func (r *TraceabilityRule) MaxPoints() int {
	return traceabilityPoints
}

// Run scores 0 when a scope member is empty, and deducts points when no
// driving input or external output is tagged.
func (r *TraceabilityRule) Run(doc *spec.Document) check.Result {
	scope := doc.Scope()

	var missing []string
	if len(scope.In) == 0 {
		missing = append(missing, "scope.in")
	}
	if len(scope.Domain) == 0 {
		missing = append(missing, "scope.domain")
	}
	if len(scope.Out) == 0 {
		missing = append(missing, "scope.out")
	}
	if len(missing) > 0 {
		res := check.Result{
			Messages: []string{check.LevelError.Sprintf("Missing %s (-%dpts)", strings.Join(missing, ", "), traceabilityPoints)},
		}
		for _, m := range missing {
			res.Hints = append(res.Hints, m+": "+spec.SectionHint(m))
		}
		return res
	}

	res := check.Result{Points: traceabilityPoints}
	if !anyContains(scope.In, drivingMarkers) {
		res.Points -= tracePenalty
		res.Messages = append(res.Messages, check.LevelWarning.Sprintf("No driving input (UI/API) found (-%dpts)", tracePenalty))
		res.Hints = append(res.Hints, "Add at least one 'UI:' or 'HTTP:' entry in scope.in.")
	}
	if !anyContains(scope.Out, outboundMarkers) {
		res.Points -= tracePenalty
		res.Messages = append(res.Messages, check.LevelWarning.Sprintf("No external output found (-%dpts)", tracePenalty))
		res.Hints = append(res.Hints, "Add an 'Event:', 'Persistence:', 'Email:' or 'API:' entry in scope.out.")
	}
	if len(res.Messages) == 0 {
		res.Messages = append(res.Messages, check.LevelOK.Sprintf("Vertical trace OK"))
	}
	res.Points = max(0, res.Points)
	return res
}

func anyContains(entries, markers []string) bool {
	for _, e := range entries {
		for _, m := range markers {
			if strings.Contains(e, m) {
				return true
			}
		}
	}
	return false
}
