package guitars

// IndividualGuitar represents a single physical instrument.
type IndividualGuitar struct {
	SerialNumber      *string           `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`             // Unique serial number, strongly identifying when present (max 50 chars)
	SignificanceLevel SignificanceLevel `json:"significance_level,omitempty" yaml:"significance_level,omitempty"`   // Historical significance level (defaults to notable)
	SignificanceNotes *string           `json:"significance_notes,omitempty" yaml:"significance_notes,omitempty"`   // Explanation of significance
	YearEstimate      *string           `json:"year_estimate,omitempty" yaml:"year_estimate,omitempty"`             // Year estimate like "circa 1959" (max 50 chars)
	ProductionDate    *string           `json:"production_date,omitempty" yaml:"production_date,omitempty"`         // Specific production date if known (YYYY-MM-DD)
	ProductionNumber  *int              `json:"production_number,omitempty" yaml:"production_number,omitempty"`     // Production sequence number if known
	EstimatedValue    *float64          `json:"current_estimated_value,omitempty" yaml:"current_estimated_value,omitempty"` // Current market value estimate
	ConditionRating   *ConditionRating  `json:"condition_rating,omitempty" yaml:"condition_rating,omitempty"`       // Current condition rating
	Modifications     *string           `json:"modifications,omitempty" yaml:"modifications,omitempty"`             // Description of any modifications
	ProvenanceNotes   *string           `json:"provenance_notes,omitempty" yaml:"provenance_notes,omitempty"`       // History of ownership and usage
	Description       *string           `json:"description,omitempty" yaml:"description,omitempty"`                 // General description when model info is incomplete
	Photos            []Photo           `json:"photos,omitempty" yaml:"photos,omitempty"`                           // Photos of the instrument
}

// Kind returns the entity kind.
func (IndividualGuitar) Kind() EntityKind {
	return KindIndividualGuitar
}

// Photo represents a photo of an instrument.
type Photo struct {
	FilePath    string  `json:"file_path" yaml:"file_path"`                         // Path to the image file (required)
	PhotoType   string  `json:"photo_type" yaml:"photo_type"`                       // Photo type, e.g. "primary", "gallery", "serial_number"
	Description *string `json:"description,omitempty" yaml:"description,omitempty"` // Description of the photo
	IsPrimary   bool    `json:"is_primary,omitempty" yaml:"is_primary,omitempty"`   // Whether this is the primary image
}
