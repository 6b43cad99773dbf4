package guitars

import (
	"fmt"

	"github.com/fretmap/fretmap/pkg/normalize"
)

// Identity keys are canonical comparison keys, never display values. Two
// entities with equal identity keys describe the same real-world thing.

// IdentityKey returns the manufacturer's identity key: its normalized name.
func (m Manufacturer) IdentityKey() string {
	return normalize.Name(m.Name)
}

// IdentityKey returns the model's identity key under a resolved
// manufacturer: (manufacturer id, normalized name, year-or-unknown).
func (m Model) IdentityKey(manufacturerID string) string {
	year := "unknown"
	if m.Year != nil {
		year = fmt.Sprintf("%d", *m.Year)
	}
	return fmt.Sprintf("%s|%s|%s", manufacturerID, normalize.Name(m.Name), year)
}

// IdentityKey returns the individual guitar's identity key under a resolved
// model: (model id, normalized serial number). An instrument without a
// serial number has no automatic identity and the key is empty.
func (g IndividualGuitar) IdentityKey(modelID string) string {
	if g.SerialNumber == nil {
		return ""
	}
	serial := normalize.Serial(*g.SerialNumber)
	if serial == "" {
		return ""
	}
	return fmt.Sprintf("%s|%s", modelID, serial)
}
