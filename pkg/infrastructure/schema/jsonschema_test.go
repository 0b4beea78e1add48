package schema_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/speclint/pkg/domain/spec"
	"github.com/felixgeelhaar/speclint/pkg/infrastructure/schema"
)

const specSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id"],
  "properties": {
    "id": { "type": "string" },
    "packs": { "type": "array", "items": { "type": "string" } }
  }
}`

func parse(t *testing.T, src string) *spec.Document {
	t.Helper()
	doc, err := spec.Parse("doc.spec.yaml", []byte(src))
	require.NoError(t, err)
	return doc
}

func TestValidator_Validate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(specSchema), 0600))

	v, err := schema.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "spec.schema.json", v.Name())

	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"Valid", "id: orders.v1\npacks: [domain.purity]\n", false},
		{"Missing Required", "objective: x\n", true},
		{"Wrong Type", "id: 42\n", true},
		{"Wrong Item Type", "id: a\npacks: [1, 2]\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(parse(t, tt.src))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var serr *spec.SchemaError
			require.True(t, errors.As(err, &serr), "expected *SchemaError, got %v", err)
			assert.Equal(t, "spec.schema.json", serr.Schema)
			assert.NotEmpty(t, serr.Detail)
		})
	}
}

func TestLoad_YAMLSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: object\nrequired: [id]\n"), 0600))

	v, err := schema.Load(path)
	require.NoError(t, err)
	assert.Error(t, v.Validate(parse(t, "objective: x\n")))
	assert.NoError(t, v.Validate(parse(t, "id: x\n")))
}

func TestLoad_Failures(t *testing.T) {
	dir := t.TempDir()

	_, err := schema.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{ not: [valid"), 0600))
	_, err = schema.Load(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0600))
	_, err = schema.Load(empty)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"type": 12}`), 0600))
	_, err = schema.Load(invalid)
	assert.Error(t, err)
}
