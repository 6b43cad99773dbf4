// Package validation implements the schema layer and business rule checks of
// the submission pipeline. Validation is pure: it never mutates the entity
// under inspection and always returns a Result value listing every violation
// found, so a single correction pass can fix a submission.
package validation

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

// String returns the string representation of an ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// Error kinds.
const (
	// ErrorKindNone means validation passed.
	ErrorKindNone ErrorKind = ""
	// ErrorKindInvalidSchema is a structural failure: missing or unknown
	// fields, out-of-range values, wrong shapes.
	ErrorKindInvalidSchema ErrorKind = "invalid_schema"
	// ErrorKindBusinessRule is a semantic failure a structurally valid
	// entity can still have.
	ErrorKindBusinessRule ErrorKind = "business_rule_violation"
	// ErrorKindInvariant is a contract breach by a caller or collaborator.
	ErrorKindInvariant ErrorKind = "invariant_violation"
	// ErrorKindAmbiguous marks a decision requiring external resolution.
	ErrorKindAmbiguous ErrorKind = "ambiguous"
)

// Conflict describes one violated constraint: the field path it concerns and
// a human-readable message. Warnings are surfaced but do not fail validation.
type Conflict struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
	Warning bool   `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// String returns a short description of the conflict.
func (c Conflict) String() string {
	if c.Warning {
		return fmt.Sprintf("%s: %s (warning)", c.Field, c.Message)
	}
	return fmt.Sprintf("%s: %s", c.Field, c.Message)
}

// Result is the outcome of a validation pass. It is a returned value, never
// control flow: validators collect every conflict instead of stopping at the
// first one.
type Result struct {
	Kind      ErrorKind  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Conflicts []Conflict `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`

	// failKind is the kind stamped onto the result by the first hard
	// conflict. A passing result keeps Kind == ErrorKindNone.
	failKind ErrorKind
}

// NewResult returns an empty, passing result for the given failure kind.
// The kind only takes effect once a hard conflict is added.
func NewResult(kind ErrorKind) *Result {
	return &Result{failKind: kind}
}

// Add records a hard conflict.
func (r *Result) Add(field, message string) {
	if r.Kind == ErrorKindNone {
		r.Kind = r.failKind
	}
	r.Conflicts = append(r.Conflicts, Conflict{Field: field, Message: message})
}

// Addf records a hard conflict with a formatted message.
func (r *Result) Addf(field, format string, args ...any) {
	r.Add(field, fmt.Sprintf(format, args...))
}

// Warn records a warning conflict. Warnings are reported but do not make the
// result invalid.
func (r *Result) Warn(field, message string) {
	r.Conflicts = append(r.Conflicts, Conflict{Field: field, Message: message, Warning: true})
}

// Valid reports whether the result contains no hard conflicts.
func (r *Result) Valid() bool {
	for _, c := range r.Conflicts {
		if !c.Warning {
			return false
		}
	}
	return true
}

// Merge appends another result's conflicts, prefixing their field paths.
func (r *Result) Merge(prefix string, other *Result) {
	if other == nil {
		return
	}
	for _, c := range other.Conflicts {
		field := c.Field
		if prefix != "" {
			field = prefix + "." + field
		}
		r.Conflicts = append(r.Conflicts, Conflict{Field: field, Message: c.Message, Warning: c.Warning})
	}
	if !other.Valid() && r.Kind == ErrorKindNone {
		r.Kind = other.Kind
	}
}

// String returns a one-line summary of the result.
func (r *Result) String() string {
	if r.Valid() {
		if len(r.Conflicts) > 0 {
			return fmt.Sprintf("valid (%d warnings)", len(r.Conflicts))
		}
		return "valid"
	}

	msgs := make([]string, 0, len(r.Conflicts))
	for _, c := range r.Conflicts {
		msgs = append(msgs, c.String())
	}
	return fmt.Sprintf("%s: %s", r.Kind, strings.Join(msgs, "; "))
}
