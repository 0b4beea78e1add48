package spec

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvelopeKey wraps the document body when a file nests it under `spec:`.
const EnvelopeKey = "spec"

// RequiredSections lists the top-level sections every specification must declare,
// in the order they are reported.
var RequiredSections = []string{
	"id",
	"objective",
	"context",
	"contracts",
	"scope",
	"scenarios",
	"deliverables",
	"packs",
}

// Document is a parsed specification file.
// The body keeps the YAML node tree so mappings are visited in document order.
type Document struct {
	Name string
	raw  any
	body *yaml.Node
}

// Reference is a single path cited under contracts.
type Reference struct {
	Group string
	Path  string
}

// Scope is the vertical slice a specification declares.
type Scope struct {
	In     []string
	Domain []string
	Out    []string
}

// Parse decodes raw YAML bytes into a Document.
// Any failure is returned as a *ParseError.
func Parse(name string, data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Document: name, Err: err}
	}

	node := resolve(&root)
	if node == nil || node.Kind == 0 {
		return nil, &ParseError{Document: name, Err: errors.New("document is empty")}
	}
	if node.Kind != yaml.MappingNode {
		return nil, &ParseError{Document: name, Err: fmt.Errorf("document root must be a mapping, got %s", kindName(node.Kind))}
	}

	var raw any
	if err := node.Decode(&raw); err != nil {
		return nil, &ParseError{Document: name, Err: err}
	}

	body := node
	if env := lookup(node, EnvelopeKey); env != nil {
		if env.Kind == yaml.MappingNode {
			body = env
		} else {
			body = &yaml.Node{Kind: yaml.MappingNode}
		}
	}

	return &Document{Name: name, raw: Normalize(raw), body: body}, nil
}

// Raw returns the whole decoded file, including any envelope, as plain
// maps, slices and scalars.
func (d *Document) Raw() any {
	return d.raw
}

// Has reports whether a top-level section key is present, even when its value is null.
func (d *Document) Has(section string) bool {
	return lookup(d.body, section) != nil
}

// Missing returns the required sections absent from the document, in report order.
func (d *Document) Missing() []string {
	var missing []string
	for _, s := range RequiredSections {
		if !d.Has(s) {
			missing = append(missing, s)
		}
	}
	return missing
}

// Scope returns the scope entries. Absent or malformed members are empty.
func (d *Document) Scope() Scope {
	scope := lookup(d.body, "scope")
	if scope == nil || scope.Kind != yaml.MappingNode {
		return Scope{}
	}
	return Scope{
		In:     entries(lookup(scope, "in")),
		Domain: entries(lookup(scope, "domain")),
		Out:    entries(lookup(scope, "out")),
	}
}

// Contracts returns every contract path in document order.
// A group value may be a single path or a list of paths. Non-string scalars
// such as `version: 3` are metadata and are ignored, as are other shapes.
func (d *Document) Contracts() []Reference {
	contracts := lookup(d.body, "contracts")
	if contracts == nil || contracts.Kind != yaml.MappingNode {
		return nil
	}

	var refs []Reference
	for i := 0; i+1 < len(contracts.Content); i += 2 {
		group := contracts.Content[i].Value
		value := resolve(contracts.Content[i+1])
		if value == nil {
			continue
		}
		switch value.Kind {
		case yaml.ScalarNode:
			if isString(value) {
				refs = append(refs, Reference{Group: group, Path: value.Value})
			}
		case yaml.SequenceNode:
			for _, item := range value.Content {
				item = resolve(item)
				if item != nil && item.Kind == yaml.ScalarNode && isString(item) {
					refs = append(refs, Reference{Group: group, Path: item.Value})
				}
			}
		}
	}
	return refs
}

// Packs returns the rule pack identifiers. A single scalar is treated as one pack.
func (d *Document) Packs() []string {
	packs := lookup(d.body, "packs")
	if packs == nil {
		return nil
	}
	switch packs.Kind {
	case yaml.ScalarNode:
		if isNull(packs) || packs.Value == "" {
			return nil
		}
		return []string{packs.Value}
	case yaml.SequenceNode:
		var ids []string
		for _, item := range packs.Content {
			item = resolve(item)
			if item != nil && item.Kind == yaml.ScalarNode && !isNull(item) {
				ids = append(ids, item.Value)
			}
		}
		return ids
	}
	return nil
}

// Scenarios returns the decoded scenarios section, or an empty list when absent.
func (d *Document) Scenarios() any {
	n := lookup(d.body, "scenarios")
	if n == nil {
		return []any{}
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return []any{}
	}
	return Normalize(v)
}

// Normalize converts decoded YAML into JSON-compatible values: every mapping
// becomes map[string]any regardless of its key types.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = Normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Normalize(val)
		}
		return out
	default:
		return v
	}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			if v := resolve(mapping.Content[i+1]); v != nil {
				return v
			}
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}
		}
	}
	return nil
}

// entries flattens a scope member into its labels. An empty or falsy value yields none.
func entries(n *yaml.Node) []string {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
		if falsy(n) {
			return nil
		}
		return []string{n.Value}
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			out = append(out, text(resolve(item)))
		}
		return out
	case yaml.MappingNode:
		out := make([]string, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			out = append(out, n.Content[i].Value)
		}
		return out
	}
	return nil
}

func text(n *yaml.Node) string {
	if n == nil {
		return ""
	}
	if n.Kind == yaml.ScalarNode {
		if isNull(n) {
			return ""
		}
		return n.Value
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return ""
	}
	return string(bytes.TrimSpace(out))
}

func isString(n *yaml.Node) bool {
	return n.ShortTag() == "!!str"
}

func isNull(n *yaml.Node) bool {
	return n.ShortTag() == "!!null"
}

func falsy(n *yaml.Node) bool {
	switch n.ShortTag() {
	case "!!null":
		return true
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		return err == nil && !b
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		return err == nil && f == 0
	}
	return n.Value == ""
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.MappingNode:
		return "mapping"
	}
	return "unknown"
}
