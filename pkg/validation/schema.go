package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/fretmap/fretmap/pkg/guitars"
	"github.com/fretmap/fretmap/pkg/normalize"
)

// Declared length and range limits for the closed entity schemas.
const (
	maxNameLen        = 100
	maxModelNameLen   = 150
	maxCountryLen     = 50
	maxSerialLen      = 50
	maxShortTextLen   = 50
	maxPickupLen      = 150
	maxURLLen         = 500
	maxISBNLen        = 20
	minModelYear      = 1900
	maxModelYear      = 2100
	minScaleLength    = 20.0
	maxScaleLength    = 30.0
	minFrets          = 12
	maxFrets          = 36
	minNutWidth       = 1.0
	maxNutWidth       = 2.5
	minWeight         = 1.0
	maxWeight         = 20.0
	minReliability    = 1
	maxReliability    = 10
)

// ShapeFunc validates the structural shape of one entity kind.
type ShapeFunc func(e guitars.Entity) *Result

// Schema validates entity shapes: required fields, declared string lengths,
// and numeric ranges. One validator is registered per entity kind; there is
// no reflection. Unknown-field rejection happens at decode time (strict
// decoding in pkg/guitars).
type Schema struct {
	validators map[guitars.EntityKind]ShapeFunc
}

// NewSchema creates a schema with validators registered for every kind.
func NewSchema() *Schema {
	s := &Schema{validators: make(map[guitars.EntityKind]ShapeFunc)}
	s.validators[guitars.KindManufacturer] = shapeManufacturer
	s.validators[guitars.KindModel] = shapeModel
	s.validators[guitars.KindIndividualGuitar] = shapeIndividualGuitar
	s.validators[guitars.KindSpecifications] = shapeSpecifications
	s.validators[guitars.KindFinish] = shapeFinish
	s.validators[guitars.KindSourceAttribution] = shapeSourceAttribution
	return s
}

// Validate checks the structural shape of an entity. Every violating field
// is reported, not just the first.
func (s *Schema) Validate(e guitars.Entity) *Result {
	result := NewResult(ErrorKindInvalidSchema)
	if e == nil {
		result.Add("", "entity is nil")
		return result
	}

	validator, ok := s.validators[e.Kind()]
	if !ok {
		result.Addf("", "no shape validator registered for kind %q", e.Kind())
		return result
	}
	return validator(e)
}

// ValidateSubmission checks a whole submission's shape: each contained
// entity plus the cross-entity composition invariants.
func (s *Schema) ValidateSubmission(sub *guitars.GuitarSubmission) *Result {
	result := NewResult(ErrorKindInvalidSchema)
	if sub == nil {
		result.Add("", "submission is nil")
		return result
	}

	result.Merge("manufacturer", s.Validate(sub.Manufacturer))
	result.Merge("model", s.Validate(sub.Model))
	result.Merge("source_attribution", s.Validate(sub.SourceAttribution))
	if sub.IndividualGuitar != nil {
		result.Merge("individual_guitar", s.Validate(*sub.IndividualGuitar))
	}
	if sub.Specifications != nil {
		result.Merge("specifications", s.Validate(*sub.Specifications))
	}
	if sub.Finish != nil {
		result.Merge("finish", s.Validate(*sub.Finish))
	}

	// The model must name the submission's manufacturer. Compared on
	// normalized keys so display-level variation does not trip it.
	if sub.Model.ManufacturerName != "" && sub.Manufacturer.Name != "" {
		if normalize.Name(sub.Model.ManufacturerName) != normalize.Name(sub.Manufacturer.Name) {
			result.Addf("model.manufacturer_name",
				"%q does not correspond to submission manufacturer %q",
				sub.Model.ManufacturerName, sub.Manufacturer.Name)
		}
	}

	return result
}

// ValidateBatch checks the batch envelope shape.
func (s *Schema) ValidateBatch(batch *guitars.BatchSubmission) *Result {
	result := NewResult(ErrorKindInvalidSchema)
	if batch == nil {
		result.Add("", "batch is nil")
		return result
	}
	if len(batch.Submissions) == 0 {
		result.Add("submissions", "must contain at least one submission")
	}
	return result
}

func shapeManufacturer(e guitars.Entity) *Result {
	m := e.(guitars.Manufacturer)
	result := NewResult(ErrorKindInvalidSchema)

	requireString(result, "name", m.Name, maxNameLen)
	optionalString(result, "country", m.Country, maxCountryLen)
	optionalString(result, "website", m.Website, maxURLLen)
	if m.FoundedYear != nil && (*m.FoundedYear < 1000 || *m.FoundedYear > 9999) {
		result.Addf("founded_year", "must be a 4-digit year, got %d", *m.FoundedYear)
	}
	if m.Status != "" && !m.Status.Valid() {
		result.Addf("status", "unknown status %q", m.Status)
	}
	return result
}

func shapeModel(e guitars.Entity) *Result {
	m := e.(guitars.Model)
	result := NewResult(ErrorKindInvalidSchema)

	requireString(result, "manufacturer_name", m.ManufacturerName, maxNameLen)
	requireString(result, "name", m.Name, maxModelNameLen)
	if m.Year != nil && (*m.Year < minModelYear || *m.Year > maxModelYear) {
		result.Addf("year", "must be between %d and %d, got %d", minModelYear, maxModelYear, *m.Year)
	}
	if m.ProductionType != "" && !m.ProductionType.Valid() {
		result.Addf("production_type", "unknown production type %q", m.ProductionType)
	}
	if m.EstimatedQuantity != nil && *m.EstimatedQuantity < 1 {
		result.Addf("estimated_production_quantity", "must be at least 1, got %d", *m.EstimatedQuantity)
	}
	if m.MSRPOriginal != nil && *m.MSRPOriginal < 0 {
		result.Add("msrp_original", "must not be negative")
	}
	if utf8.RuneCountInString(m.Currency) > 3 {
		result.Addf("currency", "must be at most 3 characters, got %q", m.Currency)
	}
	return result
}

func shapeIndividualGuitar(e guitars.Entity) *Result {
	g := e.(guitars.IndividualGuitar)
	result := NewResult(ErrorKindInvalidSchema)

	optionalString(result, "serial_number", g.SerialNumber, maxSerialLen)
	optionalString(result, "year_estimate", g.YearEstimate, maxShortTextLen)
	if g.SignificanceLevel != "" && !g.SignificanceLevel.Valid() {
		result.Addf("significance_level", "unknown significance level %q", g.SignificanceLevel)
	}
	if g.ConditionRating != nil && !g.ConditionRating.Valid() {
		result.Addf("condition_rating", "unknown condition rating %q", *g.ConditionRating)
	}
	if g.ProductionNumber != nil && *g.ProductionNumber < 1 {
		result.Addf("production_number", "must be at least 1, got %d", *g.ProductionNumber)
	}
	if g.EstimatedValue != nil && *g.EstimatedValue < 0 {
		result.Add("current_estimated_value", "must not be negative")
	}
	for i, photo := range g.Photos {
		if strings.TrimSpace(photo.FilePath) == "" {
			result.Addf("photos", "photo %d: file_path is required", i)
		}
		if strings.TrimSpace(photo.PhotoType) == "" {
			result.Addf("photos", "photo %d: photo_type is required", i)
		}
	}
	return result
}

func shapeSpecifications(e guitars.Entity) *Result {
	sp := e.(guitars.Specifications)
	result := NewResult(ErrorKindInvalidSchema)

	optionalString(result, "body_wood", sp.BodyWood, maxShortTextLen)
	optionalString(result, "neck_wood", sp.NeckWood, maxShortTextLen)
	optionalString(result, "fingerboard_wood", sp.FingerboardWood, maxShortTextLen)
	optionalString(result, "neck_profile", sp.NeckProfile, maxShortTextLen)
	optionalString(result, "bridge_type", sp.BridgeType, maxShortTextLen)
	optionalString(result, "pickup_configuration", sp.PickupConfig, maxPickupLen)
	optionalString(result, "case_type", sp.CaseType, maxShortTextLen)

	rangeFloat(result, "scale_length_inches", sp.ScaleLength, minScaleLength, maxScaleLength)
	rangeFloat(result, "nut_width_inches", sp.NutWidth, minNutWidth, maxNutWidth)
	rangeFloat(result, "weight_lbs", sp.Weight, minWeight, maxWeight)
	if sp.NumFrets != nil && (*sp.NumFrets < minFrets || *sp.NumFrets > maxFrets) {
		result.Addf("num_frets", "must be between %d and %d, got %d", minFrets, maxFrets, *sp.NumFrets)
	}
	return result
}

func shapeFinish(e guitars.Entity) *Result {
	f := e.(guitars.Finish)
	result := NewResult(ErrorKindInvalidSchema)

	optionalString(result, "hardware_finish", f.HardwareFinish, maxShortTextLen)
	optionalString(result, "color", f.Color, maxShortTextLen)
	optionalString(result, "finish_type", f.FinishType, maxShortTextLen)
	return result
}

func shapeSourceAttribution(e guitars.Entity) *Result {
	a := e.(guitars.SourceAttribution)
	result := NewResult(ErrorKindInvalidSchema)

	requireString(result, "source_name", a.SourceName, maxNameLen)
	optionalString(result, "url", a.URL, maxURLLen)
	optionalString(result, "isbn", a.ISBN, maxISBNLen)
	if a.SourceType != nil && !a.SourceType.Valid() {
		result.Addf("source_type", "unknown source type %q", *a.SourceType)
	}
	if a.ReliabilityScore != nil && (*a.ReliabilityScore < minReliability || *a.ReliabilityScore > maxReliability) {
		result.Addf("reliability_score", "must be between %d and %d, got %d",
			minReliability, maxReliability, *a.ReliabilityScore)
	}
	return result
}

// Length limits count characters, not bytes, so accented and non-Latin
// names are measured the way a person would count them.
func requireString(result *Result, field, value string, maxLen int) {
	if value == "" {
		result.Add(field, "is required")
		return
	}
	if n := utf8.RuneCountInString(value); n > maxLen {
		result.Addf(field, "must be at most %d characters, got %d", maxLen, n)
	}
}

func optionalString(result *Result, field string, value *string, maxLen int) {
	if value == nil {
		return
	}
	if n := utf8.RuneCountInString(*value); n > maxLen {
		result.Addf(field, "must be at most %d characters, got %d", maxLen, n)
	}
}

func rangeFloat(result *Result, field string, value *float64, minVal, maxVal float64) {
	if value != nil && (*value < minVal || *value > maxVal) {
		result.Addf(field, "must be between %g and %g, got %g", minVal, maxVal, *value)
	}
}
