// Package registry defines the storage collaborator consumed by the
// submission pipeline and provides an in-memory implementation. The core
// never accesses storage directly: it fetches candidate sets before
// resolution and commits records after a submission fully resolves.
package registry

import (
	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/fretmap/fretmap/pkg/guitars"
)

// Candidate is an existing registry record offered to the resolver for
// matching against an incoming entity of the same kind.
type Candidate struct {
	// ID is the registry record id.
	ID string

	// Entity is the stored entity value.
	Entity guitars.Entity
}

// Record is a committed registry entry.
type Record struct {
	ID        string             `json:"id" yaml:"id"`
	Kind      guitars.EntityKind `json:"kind" yaml:"kind"`
	ParentID  string             `json:"parent_id,omitempty" yaml:"parent_id,omitempty"` // Resolved parent record id (manufacturer for models, model for instruments)
	Entity    guitars.Entity     `json:"entity" yaml:"entity"`
	CreatedAt utc.Time           `json:"created_at" yaml:"created_at"`
	UpdatedAt utc.Time           `json:"updated_at" yaml:"updated_at"`
}

// View provides read access to candidate sets.
type View interface {
	// Candidates returns the records of the given kind eligible for
	// matching. A non-empty hint restricts the set to records under that
	// parent id (models of one manufacturer, instruments of one model).
	Candidates(kind guitars.EntityKind, hint string) ([]Candidate, error)
}

// Committer persists resolution outcomes.
type Committer interface {
	// Commit upserts an entity. An empty resolvedID creates a new record
	// with a fresh id; a non-empty one updates (or creates) the record
	// under that id. Returns the record id.
	Commit(kind guitars.EntityKind, e guitars.Entity, parentID, resolvedID string) (string, error)
}

// Registry combines candidate reads and record commits.
type Registry interface {
	View
	Committer
}

// NewID returns a fresh registry record id.
func NewID() string {
	return uuid.NewString()
}
