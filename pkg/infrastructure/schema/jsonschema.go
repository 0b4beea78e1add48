// Package schema validates specification documents against a JSON Schema.
package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/speclint/pkg/domain/spec"
)

// DefaultPath is the conventional schema location relative to the repository root.
const DefaultPath = "rules/schemas/spec.schema.json"

// Validator checks documents against a compiled JSON Schema.
type Validator struct {
	name   string
	schema *gojsonschema.Schema
}

// Load reads and compiles a schema file. JSON and YAML syntax are both accepted.
func Load(path string) (*Validator, error) {
	// #nosec G304 -- schema path comes from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	var definition any
	if err := yaml.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", path, err)
	}
	if definition == nil {
		return nil, fmt.Errorf("parse schema %s: schema is empty", path)
	}

	return New(filepath.Base(path), definition)
}

// New compiles an already decoded schema definition.
func New(name string, definition any) (*Validator, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(spec.Normalize(definition)))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Validator{name: name, schema: compiled}, nil
}

// Name is the schema file name used in remediation hints.
func (v *Validator) Name() string {
	return v.name
}

// Validate returns a *spec.SchemaError describing every violation, or nil.
func (v *Validator) Validate(doc *spec.Document) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(doc.Raw()))
	if err != nil {
		return &spec.SchemaError{Schema: v.name, Detail: err.Error()}
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	sort.Strings(issues)
	return &spec.SchemaError{Schema: v.name, Detail: strings.Join(issues, "; ")}
}
