package spec

import "fmt"

// ParseError reports a document whose bytes are not a well-formed specification.
type ParseError struct {
	Document string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.Document, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports a well-formed document that violates the structural contract.
type SchemaError struct {
	Schema string
	Detail string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema validation failed: %s", e.Detail)
}

// Validator checks a document against a structural contract.
type Validator interface {
	Validate(doc *Document) error
}
