package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fretmap/fretmap/pkg/validation"
)

func TestResultKindSetOnFirstHardConflict(t *testing.T) {
	result := validation.NewResult(validation.ErrorKindBusinessRule)
	assert.Equal(t, validation.ErrorKindNone, result.Kind)
	assert.True(t, result.Valid())

	result.Warn("field", "advisory only")
	assert.Equal(t, validation.ErrorKindNone, result.Kind)
	assert.True(t, result.Valid())

	result.Add("field", "hard failure")
	assert.Equal(t, validation.ErrorKindBusinessRule, result.Kind)
	assert.False(t, result.Valid())
}

func TestResultMergeAdoptsFailingKind(t *testing.T) {
	passing := validation.NewResult(validation.ErrorKindInvalidSchema)

	ruleFailure := validation.NewResult(validation.ErrorKindBusinessRule)
	ruleFailure.Add("founded_year", "must not be in the future, got 2999")

	passing.Merge("manufacturer", ruleFailure)
	assert.Equal(t, validation.ErrorKindBusinessRule, passing.Kind)
	assert.False(t, passing.Valid())
	assert.Equal(t, "manufacturer.founded_year", passing.Conflicts[0].Field)
}

func TestResultMergePassingKeepsKindNone(t *testing.T) {
	passing := validation.NewResult(validation.ErrorKindInvalidSchema)

	warnings := validation.NewResult(validation.ErrorKindBusinessRule)
	warnings.Warn("serial_number", "historic significance level without a serial number")

	passing.Merge("individual_guitar", warnings)
	assert.Equal(t, validation.ErrorKindNone, passing.Kind)
	assert.True(t, passing.Valid())
	assert.Len(t, passing.Conflicts, 1)
}
