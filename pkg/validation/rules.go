package validation

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/agentstation/utc"

	"github.com/fretmap/fretmap/pkg/guitars"
)

// RuleConfig carries the tunable bounds for business rule checks. It is an
// explicit value passed at construction time so deployments can adjust
// strictness without recompiling.
type RuleConfig struct {
	// MinNameLength is the minimum name length after trimming whitespace.
	MinNameLength int `json:"min_name_length" yaml:"min_name_length"`

	// MinFoundedYear is the earliest plausible manufacturer founding year.
	MinFoundedYear int `json:"min_founded_year" yaml:"min_founded_year"`

	// MaxFoundedYear is the latest acceptable founding year, normally the
	// current year. Founding years in the future are a violation.
	MaxFoundedYear int `json:"max_founded_year" yaml:"max_founded_year"`

	// MaxModelYear is the latest acceptable model introduction year.
	// Announced-but-unreleased models may sit one year ahead.
	MaxModelYear int `json:"max_model_year" yaml:"max_model_year"`

	// SerialMinLength and SerialMaxLength bound the cleaned serial number
	// (separators stripped).
	SerialMinLength int `json:"serial_min_length" yaml:"serial_min_length"`
	SerialMaxLength int `json:"serial_max_length" yaml:"serial_max_length"`

	// RequireSerialForHistoric hard-fails a historic-significance
	// instrument without a serial number. When false the combination is
	// surfaced as a warning only.
	RequireSerialForHistoric bool `json:"require_serial_for_historic" yaml:"require_serial_for_historic"`
}

// DefaultRuleConfig returns the default business rule bounds.
func DefaultRuleConfig() RuleConfig {
	year := utc.Now().Year()
	return RuleConfig{
		MinNameLength:            2,
		MinFoundedYear:           1800,
		MaxFoundedYear:           year,
		MaxModelYear:             year + 1,
		SerialMinLength:          3,
		SerialMaxLength:          20,
		RequireSerialForHistoric: false,
	}
}

// Rules applies business rule checks that the schema layer cannot express
// structurally. Validation is idempotent: re-running against the same entity
// value yields the same result, with no hidden state.
type Rules struct {
	cfg RuleConfig
}

// NewRules creates a rule validator with the given configuration.
func NewRules(cfg RuleConfig) *Rules {
	return &Rules{cfg: cfg}
}

// Config returns the configuration the validator was built with.
func (r *Rules) Config() RuleConfig {
	return r.cfg
}

// Validate applies the business rules for the entity's kind. Every violated
// rule is reported.
func (r *Rules) Validate(e guitars.Entity) *Result {
	result := NewResult(ErrorKindBusinessRule)
	if e == nil {
		result.Add("", "entity is nil")
		return result
	}

	switch v := e.(type) {
	case guitars.Manufacturer:
		r.manufacturer(result, v)
	case guitars.Model:
		r.model(result, v)
	case guitars.IndividualGuitar:
		r.individualGuitar(result, v)
	case guitars.SourceAttribution:
		r.sourceAttribution(result, v)
	case guitars.Specifications, guitars.Finish:
		// Structural checks only; no business rules of their own.
	default:
		result.Addf("", "no business rules registered for kind %q", e.Kind())
	}
	return result
}

// ValidateSubmission applies business rules to every entity in a submission.
func (r *Rules) ValidateSubmission(sub *guitars.GuitarSubmission) *Result {
	result := NewResult(ErrorKindBusinessRule)
	if sub == nil {
		result.Add("", "submission is nil")
		return result
	}

	result.Merge("manufacturer", r.Validate(sub.Manufacturer))
	result.Merge("model", r.Validate(sub.Model))
	result.Merge("source_attribution", r.Validate(sub.SourceAttribution))
	if sub.IndividualGuitar != nil {
		result.Merge("individual_guitar", r.Validate(*sub.IndividualGuitar))
	}
	return result
}

func (r *Rules) manufacturer(result *Result, m guitars.Manufacturer) {
	r.checkName(result, "name", m.Name)

	if m.FoundedYear != nil {
		year := *m.FoundedYear
		if year < r.cfg.MinFoundedYear {
			result.Addf("founded_year", "before plausible lower bound %d, got %d", r.cfg.MinFoundedYear, year)
		}
		if year > r.cfg.MaxFoundedYear {
			result.Addf("founded_year", "must not be in the future, got %d", year)
		}
	}

	if m.Website != nil && *m.Website != "" {
		if !strings.HasPrefix(*m.Website, "http://") && !strings.HasPrefix(*m.Website, "https://") {
			result.Addf("website", "must be an http(s) URL, got %q", *m.Website)
		}
	}
}

func (r *Rules) model(result *Result, m guitars.Model) {
	r.checkName(result, "name", m.Name)

	if m.Year != nil && *m.Year > r.cfg.MaxModelYear {
		result.Addf("year", "must not be later than %d, got %d", r.cfg.MaxModelYear, *m.Year)
	}
	if m.Currency != "" && !validCurrencyCode(m.Currency) {
		result.Addf("currency", "must be a 3-letter uppercase ISO code, got %q", m.Currency)
	}
}

func (r *Rules) individualGuitar(result *Result, g guitars.IndividualGuitar) {
	if g.SerialNumber != nil && *g.SerialNumber != "" {
		if !r.validSerialFormat(*g.SerialNumber) {
			result.Addf("serial_number", "invalid format %q: expected %d-%d alphanumeric characters after separator stripping",
				*g.SerialNumber, r.cfg.SerialMinLength, r.cfg.SerialMaxLength)
		}
	}

	// Historic instruments should carry a serial number; policy decides
	// whether that is mandatory or advisory.
	if g.SignificanceLevel == guitars.SignificanceHistoric {
		hasSerial := g.SerialNumber != nil && strings.TrimSpace(*g.SerialNumber) != ""
		if !hasSerial {
			if r.cfg.RequireSerialForHistoric {
				result.Add("serial_number", "required for historic significance level")
			} else {
				result.Warn("serial_number", "historic significance level without a serial number")
			}
		}
	}

	checkDate(result, "production_date", g.ProductionDate)
}

func (r *Rules) sourceAttribution(result *Result, a guitars.SourceAttribution) {
	r.checkName(result, "source_name", a.SourceName)

	if a.URL != nil && *a.URL != "" {
		if !strings.HasPrefix(*a.URL, "http://") && !strings.HasPrefix(*a.URL, "https://") {
			result.Addf("url", "must be an http(s) URL, got %q", *a.URL)
		}
	}
	checkDate(result, "publication_date", a.PublicationDate)
}

func (r *Rules) checkName(result *Result, field, name string) {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) < r.cfg.MinNameLength {
		result.Addf(field, "must be at least %d characters after trimming, got %q", r.cfg.MinNameLength, name)
	}
}

// validSerialFormat checks a serial number the way registrars record them:
// separators stripped, the remainder must be alphanumeric and within the
// configured length bounds.
func (r *Rules) validSerialFormat(serial string) bool {
	var cleaned strings.Builder
	for _, c := range serial {
		switch c {
		case '-', ' ', '.':
			continue
		default:
			cleaned.WriteRune(c)
		}
	}

	s := cleaned.String()
	if n := utf8.RuneCountInString(s); n < r.cfg.SerialMinLength || n > r.cfg.SerialMaxLength {
		return false
	}
	for _, c := range s {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

// validCurrencyCode checks for a 3-letter uppercase ISO currency code.
func validCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func checkDate(result *Result, field string, value *string) {
	if value == nil || *value == "" {
		return
	}
	if _, err := time.Parse("2006-01-02", *value); err != nil {
		result.Addf(field, "must be a YYYY-MM-DD date, got %q", *value)
	}
}
