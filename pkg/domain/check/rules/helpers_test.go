package rules_test

import (
	"testing"

	"github.com/felixgeelhaar/speclint/pkg/domain/spec"
)

func mustParse(t *testing.T, src string) *spec.Document {
	t.Helper()
	doc, err := spec.Parse("test.spec.yaml", []byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

type fakeFiles map[string]bool

func (f fakeFiles) Exists(path string) bool {
	return f[path]
}
