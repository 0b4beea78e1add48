package spec

var sectionHints = map[string]string{
	"id":           "Add a unique 'id' (e.g., context.feature.v1).",
	"objective":    "Describe the intent in one sentence.",
	"context":      "Specify the bounded context (e.g., users, orders).",
	"contracts":    "Add 'contracts' referencing OpenAPI/AsyncAPI or schema paths.",
	"scope":        "Include a 'scope' section defining domain, in, and out elements.",
	"scope.domain": "Define at least one Entity or UseCase.",
	"scope.in":     "Add an entry point (e.g., UI route or HTTP endpoint).",
	"scope.out":    "Add an outcome (e.g., Event, Email, Persistence).",
	"scenarios":    "Define at least one Given/When/Then scenario.",
	"deliverables": "List expected outputs (domain entities, ports, adapters, tests).",
	"packs":        "Include at least one rule pack ID (e.g., domain.purity).",
}

// SectionHint returns the remediation suggestion for a section key, or "" when none is known.
func SectionHint(section string) string {
	return sectionHints[section]
}
