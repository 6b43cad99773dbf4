package guitars

// GuitarSubmission is one complete record graph submitted to the registry:
// exactly one manufacturer, one model, zero or one individual guitar, one
// source attribution, and optional specifications and finish.
//
// Invariants checked before resolution: Model.ManufacturerName must
// textually correspond to Manufacturer.Name, and the individual guitar, if
// present, implicitly belongs to the submission's model.
type GuitarSubmission struct {
	Manufacturer      Manufacturer      `json:"manufacturer" yaml:"manufacturer"`
	Model             Model             `json:"model" yaml:"model"`
	IndividualGuitar  *IndividualGuitar `json:"individual_guitar,omitempty" yaml:"individual_guitar,omitempty"`
	SourceAttribution SourceAttribution `json:"source_attribution" yaml:"source_attribution"`
	Specifications    *Specifications   `json:"specifications,omitempty" yaml:"specifications,omitempty"`
	Finish            *Finish           `json:"finish,omitempty" yaml:"finish,omitempty"`
}

// BatchSubmission is an ordered sequence of guitar submissions. Order is
// preserved in the output report, and later items may resolve against
// entities created by earlier items in the same batch.
type BatchSubmission struct {
	Submissions []GuitarSubmission `json:"submissions" yaml:"submissions"`
}
