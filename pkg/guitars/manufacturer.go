package guitars

// Manufacturer represents a guitar manufacturer.
type Manufacturer struct {
	Name        string             `json:"name" yaml:"name"`                                   // Official company name (required, 1-100 chars)
	Country     *string            `json:"country,omitempty" yaml:"country,omitempty"`         // Country of headquarters (max 50 chars)
	FoundedYear *int               `json:"founded_year,omitempty" yaml:"founded_year,omitempty"` // Year the company was established
	Website     *string            `json:"website,omitempty" yaml:"website,omitempty"`         // Current company website URL
	Status      ManufacturerStatus `json:"status,omitempty" yaml:"status,omitempty"`           // Operational status (defaults to active)
	Notes       *string            `json:"notes,omitempty" yaml:"notes,omitempty"`             // Additional historical or contextual information
}

// Kind returns the entity kind.
func (Manufacturer) Kind() EntityKind {
	return KindManufacturer
}
