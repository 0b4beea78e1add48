// Package testutil builds throwaway repositories for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Schema is a small structural contract: an object with a string id.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id"],
  "properties": {
    "id": {"type": "string"},
    "scenarios": {"type": "array"}
  }
}`

// ConformantSpec passes every check against a Workspace.
const ConformantSpec = `id: orders.create.v1
objective: Let a customer place an order.
context: orders
contracts:
  http: contracts/openapi.yaml#/paths/~1orders
  events:
    - contracts/asyncapi.yaml
scope:
  domain: [Order, PlaceOrder]
  in: ["HTTP: POST /orders"]
  out: ["Event: OrderCreated", "Persistence: orders"]
scenarios:
  - given: an empty cart
    when: POST /orders
    then: OrderCreated is published and stored in orders
deliverables: [entity, port, adapter]
packs: [domain.purity]
`

// MissingDeliverablesSpec is ConformantSpec without deliverables and packs.
const MissingDeliverablesSpec = `id: orders.cancel.v1
objective: Let a customer cancel an order.
context: orders
contracts:
  http: contracts/openapi.yaml
scope:
  domain: [Order]
  in: ["HTTP: DELETE /orders"]
  out: ["Event: OrderCancelled"]
scenarios:
  - when: DELETE /orders
    then: OrderCancelled
`

// WeakSpec scores 60: context is missing, neither reference resolves and five
// labels are not mentioned by any scenario.
const WeakSpec = `id: orders.ship.v1
objective: Ship an order.
contracts:
  http: contracts/missing.yaml
scope:
  domain: [Shipment]
  in: ["UI: ship button", "HTTP: POST /ship", "HTTP: GET /labels"]
  out: ["Event: Shipped", "Email: receipt"]
scenarios:
  - given: an order
deliverables: [adapter]
packs: [domain.unknown]
`

// Workspace is a temporary repository root with a schema, a rule pack and
// the contracts ConformantSpec references.
type Workspace struct {
	Root string
	Dir  string
}

// NewWorkspace creates the repository layout under t.TempDir.
// Documents are written to a specs directory below the root.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	root := t.TempDir()
	ws := &Workspace{Root: root, Dir: filepath.Join(root, "specs")}

	ws.Write(t, "rules/schemas/spec.schema.json", Schema)
	ws.Write(t, "rules/packs/domain.purity.yaml", "rules: []\n")
	ws.Write(t, "contracts/openapi.yaml", "openapi: 3.1.0\n")
	ws.Write(t, "contracts/asyncapi.yaml", "asyncapi: 3.0.0\n")
	if err := os.MkdirAll(ws.Dir, 0700); err != nil {
		t.Fatalf("mkdir specs: %v", err)
	}
	return ws
}

// Write creates a file relative to the root, making parent directories as needed.
func (w *Workspace) Write(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(w.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	return path
}

// AddSpec writes a document into the specs directory and returns its path.
func (w *Workspace) AddSpec(t *testing.T, name, content string) string {
	t.Helper()
	return w.Write(t, filepath.Join("specs", name), content)
}

// SchemaPath is the absolute path of the workspace schema.
func (w *Workspace) SchemaPath() string {
	return filepath.Join(w.Root, "rules", "schemas", "spec.schema.json")
}
