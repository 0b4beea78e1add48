package spec_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/felixgeelhaar/speclint/pkg/domain/spec"
)

const orderSpec = `
id: orders.create.v1
objective: Let a customer place an order.
context: orders
contracts:
  http: contracts/openapi.yaml#/paths/~1orders
  events:
    - contracts/asyncapi.yaml
    - contracts/order-created.json
scope:
  domain: [Order, PlaceOrder]
  in: ["HTTP: POST /orders"]
  out: ["Event: OrderCreated", "Persistence: orders table"]
scenarios:
  - given: a cart
    when: POST /orders
    then: OrderCreated
deliverables: [entity, port, adapter]
packs: [domain.purity]
`

func TestParse_TopLevelDocument(t *testing.T) {
	doc, err := spec.Parse("orders.spec.yaml", []byte(orderSpec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if missing := doc.Missing(); len(missing) != 0 {
		t.Errorf("expected no missing sections, got %v", missing)
	}

	scope := doc.Scope()
	if !reflect.DeepEqual(scope.In, []string{"HTTP: POST /orders"}) {
		t.Errorf("unexpected scope.in: %v", scope.In)
	}
	if len(scope.Domain) != 2 || len(scope.Out) != 2 {
		t.Errorf("unexpected scope: %+v", scope)
	}

	refs := doc.Contracts()
	want := []spec.Reference{
		{Group: "http", Path: "contracts/openapi.yaml#/paths/~1orders"},
		{Group: "events", Path: "contracts/asyncapi.yaml"},
		{Group: "events", Path: "contracts/order-created.json"},
	}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("contracts = %v, want %v", refs, want)
	}

	if packs := doc.Packs(); !reflect.DeepEqual(packs, []string{"domain.purity"}) {
		t.Errorf("unexpected packs: %v", packs)
	}
}

func TestParse_Envelope(t *testing.T) {
	doc, err := spec.Parse("wrapped.spec.yaml", []byte("spec:\n  id: a\n  objective: b\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !doc.Has("id") || !doc.Has("objective") {
		t.Fatal("expected sections to be read from the envelope")
	}
	if doc.Has(spec.EnvelopeKey) {
		t.Error("envelope key should not count as a section")
	}
	raw, ok := doc.Raw().(map[string]any)
	if !ok || raw["spec"] == nil {
		t.Errorf("raw document should keep the envelope, got %#v", doc.Raw())
	}
}

func TestParse_EnvelopeNotMapping(t *testing.T) {
	doc, err := spec.Parse("bad.spec.yaml", []byte("spec: nope\nid: x\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := len(doc.Missing()); got != len(spec.RequiredSections) {
		t.Errorf("expected every section missing, got %d", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Malformed", "id: [unterminated\n"},
		{"Empty", ""},
		{"Scalar Root", "just a string\n"},
		{"Sequence Root", "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := spec.Parse("x.spec.yaml", []byte(tt.data))
			var perr *spec.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if perr.Document != "x.spec.yaml" {
				t.Errorf("unexpected document name %q", perr.Document)
			}
		})
	}
}

func TestScope_FalsyMembers(t *testing.T) {
	doc, err := spec.Parse("s.yaml", []byte("scope:\n  in: []\n  domain: ''\n  out:\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	scope := doc.Scope()
	if len(scope.In) != 0 || len(scope.Domain) != 0 || len(scope.Out) != 0 {
		t.Errorf("expected all members empty, got %+v", scope)
	}
}

func TestPacks_SingleScalar(t *testing.T) {
	doc, err := spec.Parse("s.yaml", []byte("packs: domain.purity\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if packs := doc.Packs(); !reflect.DeepEqual(packs, []string{"domain.purity"}) {
		t.Errorf("unexpected packs: %v", packs)
	}
}

func TestHas_NullSection(t *testing.T) {
	doc, err := spec.Parse("s.yaml", []byte("id:\ncontracts: ~\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !doc.Has("id") || !doc.Has("contracts") {
		t.Error("null-valued sections are still present")
	}
	if doc.Contracts() != nil {
		t.Error("null contracts should yield no references")
	}
}

func TestScenarios_DefaultsToEmptyList(t *testing.T) {
	doc, err := spec.Parse("s.yaml", []byte("id: x\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	list, ok := doc.Scenarios().([]any)
	if !ok || len(list) != 0 {
		t.Errorf("expected empty list, got %#v", doc.Scenarios())
	}
}

func TestNormalize_NonStringKeys(t *testing.T) {
	in := map[string]any{
		"codes": map[any]any{200: "ok", true: []any{map[any]any{"x": 1}}},
	}
	out := spec.Normalize(in).(map[string]any)
	codes := out["codes"].(map[string]any)
	if codes["200"] != "ok" {
		t.Errorf("expected stringified int key, got %#v", codes)
	}
	nested := codes["true"].([]any)[0].(map[string]any)
	if nested["x"] != 1 {
		t.Errorf("expected nested map normalized, got %#v", nested)
	}
}

func TestSectionHint(t *testing.T) {
	if spec.SectionHint("packs") == "" {
		t.Error("expected a hint for packs")
	}
	if spec.SectionHint("unknown") != "" {
		t.Error("expected empty hint for unknown section")
	}
}
