package types

import "fmt"

// ValidationError reports a malformed node or edge record. It identifies the
// offending record by kind and position so callers can surface a precise
// message without inspecting the input themselves.
type ValidationError struct {
	Record string // "node" or "edge"
	Index  int
	Field  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %d: missing required field %q", e.Record, e.Index, e.Field)
}

// Validate checks that every node and edge record carries its required
// fields. It returns the first problem found, or nil. Duplicate identifiers
// and edges referencing undeclared nodes are not errors.
func (p *Pipeline) Validate() error {
	for i, n := range p.Nodes {
		if n.ID == "" {
			return &ValidationError{Record: "node", Index: i, Field: "id"}
		}
		if n.Type == "" {
			return &ValidationError{Record: "node", Index: i, Field: "type"}
		}
	}
	for i, e := range p.Edges {
		if e.Source == "" {
			return &ValidationError{Record: "edge", Index: i, Field: "source"}
		}
		if e.Target == "" {
			return &ValidationError{Record: "edge", Index: i, Field: "target"}
		}
	}
	return nil
}
