package rules_test

import (
	"strings"
	"testing"

	"github.com/felixgeelhaar/speclint/pkg/domain/check/rules"
)

func TestStructuralRule_Run(t *testing.T) {
	rule := &rules.StructuralRule{}

	tests := []struct {
		name       string
		src        string
		wantPoints int
		wantMsgs   int
	}{
		{
			name:       "Complete",
			src:        "id: a\nobjective: b\ncontext: c\ncontracts: {}\nscope: {}\nscenarios: []\ndeliverables: []\npacks: []\n",
			wantPoints: 40,
			wantMsgs:   1,
		},
		{
			name:       "One Missing",
			src:        "id: a\nobjective: b\ncontext: c\ncontracts: {}\nscope: {}\nscenarios: []\ndeliverables: []\n",
			wantPoints: 30,
			wantMsgs:   1,
		},
		{
			name:       "Two Missing",
			src:        "id: a\nobjective: b\ncontext: c\ncontracts: {}\nscope: {}\nscenarios: []\n",
			wantPoints: 20,
			wantMsgs:   2,
		},
		{
			name:       "Three Missing",
			src:        "id: a\nobjective: b\ncontracts: {}\nscope: {}\nscenarios: []\n",
			wantPoints: 10,
			wantMsgs:   3,
		},
		{
			name:       "Four Missing Floors At Zero",
			src:        "id: a\nobjective: b\ncontext: c\ncontracts: {}\n",
			wantPoints: 0,
			wantMsgs:   4,
		},
		{
			name:       "All Missing",
			src:        "unrelated: true\n",
			wantPoints: 0,
			wantMsgs:   8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := rule.Run(mustParse(t, tt.src))
			if res.Points != tt.wantPoints {
				t.Errorf("points = %d, want %d", res.Points, tt.wantPoints)
			}
			if len(res.Messages) != tt.wantMsgs {
				t.Errorf("got %d messages, want %d: %v", len(res.Messages), tt.wantMsgs, res.Messages)
			}
			if tt.wantPoints != 40 && len(res.Hints) != len(res.Messages) {
				t.Errorf("expected one hint per missing section, got %d hints", len(res.Hints))
			}
		})
	}
}

func TestStructuralRule_HintKeyedBySection(t *testing.T) {
	res := (&rules.StructuralRule{}).Run(mustParse(t, "id: a\n"))
	if !strings.HasPrefix(res.Hints[0], "objective: ") {
		t.Errorf("unexpected first hint %q", res.Hints[0])
	}
	if !strings.Contains(res.Messages[len(res.Messages)-1], "Missing section: packs (-10pts)") {
		t.Errorf("unexpected last message %q", res.Messages[len(res.Messages)-1])
	}
}
