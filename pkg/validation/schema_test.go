package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretmap/fretmap/internal/utils/ptr"
	"github.com/fretmap/fretmap/pkg/guitars"
	"github.com/fretmap/fretmap/pkg/validation"
)

func validSubmission() *guitars.GuitarSubmission {
	return &guitars.GuitarSubmission{
		Manufacturer: guitars.Manufacturer{
			Name:    "Fender Musical Instruments",
			Country: ptr.To("USA"),
		},
		Model: guitars.Model{
			ManufacturerName: "Fender Musical Instruments",
			Name:             "Stratocaster",
			Year:             ptr.To(1965),
		},
		SourceAttribution: guitars.SourceAttribution{
			SourceName: "Test",
		},
	}
}

func TestSchemaValidManufacturer(t *testing.T) {
	schema := validation.NewSchema()
	result := schema.Validate(guitars.Manufacturer{
		Name:        "Gibson",
		Country:     ptr.To("USA"),
		FoundedYear: ptr.To(1902),
		Status:      guitars.ManufacturerStatusActive,
	})
	assert.True(t, result.Valid())
	assert.Empty(t, result.Conflicts)
}

func TestSchemaCollectsEveryViolation(t *testing.T) {
	schema := validation.NewSchema()
	result := schema.Validate(guitars.Manufacturer{
		Name:        strings.Repeat("x", 101),
		Country:     ptr.To(strings.Repeat("y", 51)),
		FoundedYear: ptr.To(190),
		Status:      guitars.ManufacturerStatus("bankrupt"),
	})
	require.False(t, result.Valid())
	assert.Equal(t, validation.ErrorKindInvalidSchema, result.Kind)
	// All four violations reported in one pass, not just the first.
	assert.Len(t, result.Conflicts, 4)
}

func TestSchemaLengthLimitsCountCharacters(t *testing.T) {
	schema := validation.NewSchema()

	// 60 characters but 120 bytes; must pass the 100-character limit.
	result := schema.Validate(guitars.Manufacturer{Name: strings.Repeat("é", 60)})
	assert.True(t, result.Valid(), "unexpected conflicts: %v", result.Conflicts)

	result = schema.Validate(guitars.Manufacturer{Name: strings.Repeat("é", 101)})
	assert.False(t, result.Valid())
}

func TestSchemaRequiredFields(t *testing.T) {
	schema := validation.NewSchema()

	result := schema.Validate(guitars.Manufacturer{})
	require.False(t, result.Valid())
	assert.Equal(t, "name", result.Conflicts[0].Field)

	result = schema.Validate(guitars.Model{})
	require.False(t, result.Valid())
	fields := conflictFields(result)
	assert.Contains(t, fields, "manufacturer_name")
	assert.Contains(t, fields, "name")

	result = schema.Validate(guitars.SourceAttribution{})
	require.False(t, result.Valid())
	assert.Equal(t, "source_name", result.Conflicts[0].Field)
}

func TestSchemaSpecificationsRanges(t *testing.T) {
	schema := validation.NewSchema()
	result := schema.Validate(guitars.Specifications{
		ScaleLength: ptr.To(35.0),
		NumFrets:    ptr.To(40),
		NutWidth:    ptr.To(0.5),
		Weight:      ptr.To(25.0),
	})
	require.False(t, result.Valid())
	assert.Len(t, result.Conflicts, 4)

	result = schema.Validate(guitars.Specifications{
		ScaleLength: ptr.To(25.5),
		NumFrets:    ptr.To(22),
		BodyWood:    ptr.To("alder"),
	})
	assert.True(t, result.Valid())
}

func TestSchemaPhotoShape(t *testing.T) {
	schema := validation.NewSchema()
	result := schema.Validate(guitars.IndividualGuitar{
		Photos: []guitars.Photo{
			{FilePath: "front.jpg", PhotoType: "primary"},
			{FilePath: "", PhotoType: ""},
		},
	})
	require.False(t, result.Valid())
	assert.Len(t, result.Conflicts, 2)
}

func TestValidateSubmission(t *testing.T) {
	schema := validation.NewSchema()

	t.Run("valid", func(t *testing.T) {
		result := schema.ValidateSubmission(validSubmission())
		assert.True(t, result.Valid(), "unexpected conflicts: %v", result.Conflicts)
	})

	t.Run("manufacturer name mismatch", func(t *testing.T) {
		sub := validSubmission()
		sub.Model.ManufacturerName = "Gibson"
		result := schema.ValidateSubmission(sub)
		require.False(t, result.Valid())
		assert.Contains(t, conflictFields(result), "model.manufacturer_name")
	})

	t.Run("display variation still corresponds", func(t *testing.T) {
		sub := validSubmission()
		sub.Model.ManufacturerName = "Fender Musical Instruments Corp."
		sub.Manufacturer.Name = "Fender Musical Instruments Corporation"
		result := schema.ValidateSubmission(sub)
		assert.True(t, result.Valid())
	})

	t.Run("nested violations are prefixed", func(t *testing.T) {
		sub := validSubmission()
		sub.Manufacturer.Name = ""
		result := schema.ValidateSubmission(sub)
		require.False(t, result.Valid())
		assert.Contains(t, conflictFields(result), "manufacturer.name")
	})
}

func TestValidateBatch(t *testing.T) {
	schema := validation.NewSchema()

	result := schema.ValidateBatch(&guitars.BatchSubmission{})
	assert.False(t, result.Valid())

	result = schema.ValidateBatch(&guitars.BatchSubmission{
		Submissions: []guitars.GuitarSubmission{*validSubmission()},
	})
	assert.True(t, result.Valid())
}

func conflictFields(r *validation.Result) []string {
	fields := make([]string, 0, len(r.Conflicts))
	for _, c := range r.Conflicts {
		fields = append(fields, c.Field)
	}
	return fields
}
