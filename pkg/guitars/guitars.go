// Package guitars defines the entity types accepted by the fretmap registry:
// manufacturers, models, individual instruments, specifications, finishes,
// and source attributions, along with the submission envelopes that carry
// them. Entities are plain immutable values; validation never mutates them.
package guitars

// EntityKind identifies the kind of a registry entity for compile-time safety.
type EntityKind string

// String returns the string representation of an EntityKind.
func (k EntityKind) String() string {
	return string(k)
}

// Entity kinds.
const (
	KindManufacturer      EntityKind = "manufacturer"
	KindModel             EntityKind = "model"
	KindIndividualGuitar  EntityKind = "individual_guitar"
	KindSpecifications    EntityKind = "specifications"
	KindFinish            EntityKind = "finish"
	KindSourceAttribution EntityKind = "source_attribution"
)

// Entity is implemented by every registry entity type.
type Entity interface {
	// Kind returns the entity kind
	Kind() EntityKind
}
