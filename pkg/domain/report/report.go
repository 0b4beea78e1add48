package report

import (
	"encoding/json"
	"math"
)

// Failure identifies why a document was short-circuited to zero.
type Failure string

// Failure kinds. FailureNone means every check ran.
const (
	FailureNone   Failure = ""
	FailureParse  Failure = "parse"
	FailureSchema Failure = "schema"
)

// MaxScore is the upper bound of any document score.
const MaxScore = 100

// CheckScore records the points one check awarded.
type CheckScore struct {
	Check  string `json:"check"`
	Points int    `json:"points"`
	Max    int    `json:"max"`
}

// Report is the aggregated lint result for a single document.
type Report struct {
	Document string       `json:"document"`
	Path     string       `json:"path"`
	Score    int          `json:"score"`
	Failure  Failure      `json:"failure,omitempty"`
	Checks   []CheckScore `json:"checks,omitempty"`
	Messages []string     `json:"messages"`
	Hints    []string     `json:"hints"`
}

// Badge returns the qualitative label for the report's score.
func (r *Report) Badge() string {
	return Badge(float64(r.Score))
}

// MarshalJSON adds the badge to the encoded report.
func (r *Report) MarshalJSON() ([]byte, error) {
	type plain Report
	return json.Marshal(struct {
		*plain
		Badge string `json:"badge"`
	}{(*plain)(r), r.Badge()})
}

// Badge maps a score onto its qualitative label.
func Badge(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 50:
		return "Needs Work"
	default:
		return "Incomplete"
	}
}

// Summary aggregates the reports of one batch run.
type Summary struct {
	RunID     string    `json:"run_id"`
	Directory string    `json:"directory"`
	Reports   []*Report `json:"documents"`
	Mean      float64   `json:"mean"`
	Threshold float64   `json:"threshold"`
}

// NewSummary computes the mean score of the given reports.
func NewSummary(runID, dir string, threshold float64, reports []*Report) *Summary {
	if reports == nil {
		reports = []*Report{}
	}
	return &Summary{
		RunID:     runID,
		Directory: dir,
		Reports:   reports,
		Mean:      Mean(reports),
		Threshold: threshold,
	}
}

// Passed reports whether the mean meets the threshold.
func (s *Summary) Passed() bool {
	return s.Mean >= s.Threshold
}

// Badge returns the qualitative label of the mean score.
func (s *Summary) Badge() string {
	return Badge(s.Mean)
}

// MarshalJSON adds the badge and pass verdict to the encoded summary.
func (s *Summary) MarshalJSON() ([]byte, error) {
	type plain Summary
	return json.Marshal(struct {
		*plain
		Badge  string `json:"badge"`
		Passed bool   `json:"passed"`
	}{(*plain)(s), s.Badge(), s.Passed()})
}

// Mean is the arithmetic mean of the scores rounded to one decimal, or 0 when empty.
func Mean(reports []*Report) float64 {
	if len(reports) == 0 {
		return 0
	}
	total := 0
	for _, r := range reports {
		total += r.Score
	}
	return math.Round(float64(total)/float64(len(reports))*10) / 10
}
