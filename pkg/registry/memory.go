package registry

import (
	"sort"
	"sync"

	"github.com/agentstation/utc"

	"github.com/fretmap/fretmap/pkg/errors"
	"github.com/fretmap/fretmap/pkg/guitars"
)

// Option configures a Memory registry.
type Option func(*Memory) error

// WithReadOnly makes the registry reject commits.
func WithReadOnly(readOnly bool) Option {
	return func(m *Memory) error {
		m.readOnly = readOnly
		return nil
	}
}

// WithSeed preloads a record, generating an id when seeded with an empty one.
func WithSeed(kind guitars.EntityKind, id, parentID string, e guitars.Entity) Option {
	return func(m *Memory) error {
		if e == nil {
			return errors.NewInvariantError("registry", "seed entity is nil")
		}
		byID, ok := m.records[kind]
		if !ok {
			return errors.NewInvariantError("registry", "seed kind "+kind.String()+" is not stored")
		}
		if id == "" {
			id = NewID()
		}
		now := utc.Now()
		byID[id] = &Record{
			ID:        id,
			Kind:      kind,
			ParentID:  parentID,
			Entity:    e,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	}
}

// Memory is an in-memory Registry. Safe for concurrent use; candidate reads
// return snapshots so callers never observe later commits through them.
type Memory struct {
	mu       sync.RWMutex
	readOnly bool
	records  map[guitars.EntityKind]map[string]*Record
}

// NewMemory creates an in-memory registry.
func NewMemory(opts ...Option) (*Memory, error) {
	m := &Memory{
		records: make(map[guitars.EntityKind]map[string]*Record),
	}
	for _, kind := range []guitars.EntityKind{
		guitars.KindManufacturer,
		guitars.KindModel,
		guitars.KindIndividualGuitar,
		guitars.KindSpecifications,
		guitars.KindFinish,
		guitars.KindSourceAttribution,
	} {
		m.records[kind] = make(map[string]*Record)
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Candidates returns the records of the given kind, restricted to a parent
// id when hint is non-empty, ordered by record id.
func (m *Memory) Candidates(kind guitars.EntityKind, hint string) ([]Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byID, ok := m.records[kind]
	if !ok {
		return nil, errors.NewResourceError("fetch", kind.String(), "", errors.ErrNotFound)
	}

	candidates := make([]Candidate, 0, len(byID))
	for _, rec := range byID {
		if hint != "" && rec.ParentID != hint {
			continue
		}
		candidates = append(candidates, Candidate{ID: rec.ID, Entity: rec.Entity})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})
	return candidates, nil
}

// Commit upserts a record. A non-empty resolvedID that already exists updates
// in place, bumping UpdatedAt and keeping CreatedAt; specifications and
// finishes reach this branch when a model is resubmitted.
func (m *Memory) Commit(kind guitars.EntityKind, e guitars.Entity, parentID, resolvedID string) (string, error) {
	if e == nil {
		return "", errors.NewInvariantError("registry", "commit entity is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readOnly {
		return "", errors.ErrReadOnly
	}

	byID, ok := m.records[kind]
	if !ok {
		return "", errors.NewResourceError("commit", kind.String(), resolvedID, errors.ErrNotFound)
	}

	now := utc.Now()
	id := resolvedID
	if id == "" {
		id = NewID()
	}

	if existing, ok := byID[id]; ok {
		existing.Entity = e
		existing.UpdatedAt = now
		if parentID != "" {
			existing.ParentID = parentID
		}
		return id, nil
	}

	byID[id] = &Record{
		ID:        id,
		Kind:      kind,
		ParentID:  parentID,
		Entity:    e,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

// Get returns a record by kind and id.
func (m *Memory) Get(kind guitars.EntityKind, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if rec, ok := m.records[kind][id]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, errors.NewNotFoundError(kind.String(), id)
}

// Len returns the number of records of a kind.
func (m *Memory) Len(kind guitars.EntityKind) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records[kind])
}
