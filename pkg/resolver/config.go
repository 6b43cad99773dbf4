package resolver

// Thresholds are the tunable scoring bounds for one entity kind. Scores are
// similarity values in [0,1].
type Thresholds struct {
	// Match is the high-confidence threshold: a best score at or above it,
	// clear of every other candidate by Margin, resolves as Matched.
	Match float64 `json:"match" yaml:"match"`

	// Margin is the ambiguity band: candidates within Margin of the best
	// score are considered tied and surface as Ambiguous.
	Margin float64 `json:"margin" yaml:"margin"`

	// Create is the low-confidence threshold: a best score below it
	// resolves as Created. Scores between Create and Match are the
	// uncertain middle band and resolve as Ambiguous.
	Create float64 `json:"create" yaml:"create"`

	// YearBonus is added when both entities carry an equal year field.
	YearBonus float64 `json:"year_bonus" yaml:"year_bonus"`

	// CountryBonus is added when both entities carry an equal country
	// (manufacturers only).
	CountryBonus float64 `json:"country_bonus" yaml:"country_bonus"`
}

// Config carries per-kind thresholds so registries can tune strictness
// independently: manufacturer names tolerate more fuzziness than serial
// numbers, which essentially require an exact match.
type Config struct {
	Manufacturer     Thresholds `json:"manufacturer" yaml:"manufacturer"`
	Model            Thresholds `json:"model" yaml:"model"`
	IndividualGuitar Thresholds `json:"individual_guitar" yaml:"individual_guitar"`
}

// DefaultConfig returns the default resolver thresholds.
func DefaultConfig() Config {
	return Config{
		Manufacturer: Thresholds{
			Match:        0.90,
			Margin:       0.05,
			Create:       0.70,
			YearBonus:    0.05,
			CountryBonus: 0.03,
		},
		Model: Thresholds{
			Match:     0.92,
			Margin:    0.04,
			Create:    0.75,
			YearBonus: 0.05,
		},
		IndividualGuitar: Thresholds{
			Match:  0.95,
			Margin: 0.02,
			Create: 0.90,
		},
	}
}
