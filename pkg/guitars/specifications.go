package guitars

// Specifications holds the technical specifications of a model or an
// individual instrument. Specifications are validated structurally but never
// deduplicated on their own; they ride along with their parent's identity.
type Specifications struct {
	BodyWood         *string  `json:"body_wood,omitempty" yaml:"body_wood,omitempty"`                     // Primary wood used for the body (max 50 chars)
	NeckWood         *string  `json:"neck_wood,omitempty" yaml:"neck_wood,omitempty"`                     // Primary wood used for the neck (max 50 chars)
	FingerboardWood  *string  `json:"fingerboard_wood,omitempty" yaml:"fingerboard_wood,omitempty"`       // Wood used for the fingerboard (max 50 chars)
	ScaleLength      *float64 `json:"scale_length_inches,omitempty" yaml:"scale_length_inches,omitempty"` // Scale length in inches (20-30)
	NumFrets         *int     `json:"num_frets,omitempty" yaml:"num_frets,omitempty"`                     // Number of frets (12-36)
	NutWidth         *float64 `json:"nut_width_inches,omitempty" yaml:"nut_width_inches,omitempty"`       // Nut width in inches (1.0-2.5)
	NeckProfile      *string  `json:"neck_profile,omitempty" yaml:"neck_profile,omitempty"`               // Neck shape profile (max 50 chars)
	BridgeType       *string  `json:"bridge_type,omitempty" yaml:"bridge_type,omitempty"`                 // Type of bridge (max 50 chars)
	PickupConfig     *string  `json:"pickup_configuration,omitempty" yaml:"pickup_configuration,omitempty"` // Pickup styles, brand, and arrangement (max 150 chars)
	Electronics      *string  `json:"electronics_description,omitempty" yaml:"electronics_description,omitempty"` // Description of electronics and controls
	Weight           *float64 `json:"weight_lbs,omitempty" yaml:"weight_lbs,omitempty"`                   // Weight in pounds (1-20)
	CaseIncluded     *bool    `json:"case_included,omitempty" yaml:"case_included,omitempty"`             // Whether a case was included
	CaseType         *string  `json:"case_type,omitempty" yaml:"case_type,omitempty"`                     // Type of case if included (max 50 chars)
}

// Kind returns the entity kind.
func (Specifications) Kind() EntityKind {
	return KindSpecifications
}

// Finish describes the cosmetic finish of a model or individual instrument.
// Like Specifications, it rides along with its parent's identity decision.
type Finish struct {
	BodyFinish     *string `json:"body_finish,omitempty" yaml:"body_finish,omitempty"`         // Finish of the body, e.g. "Nitrocellulose Cherry Sunburst"
	HardwareFinish *string `json:"hardware_finish,omitempty" yaml:"hardware_finish,omitempty"` // Finish of the hardware (max 50 chars)
	Color          *string `json:"color,omitempty" yaml:"color,omitempty"`                     // Primary color name (max 50 chars)
	FinishType     *string `json:"finish_type,omitempty" yaml:"finish_type,omitempty"`         // Finish material, e.g. "nitro", "poly" (max 50 chars)
}

// Kind returns the entity kind.
func (Finish) Kind() EntityKind {
	return KindFinish
}
