package submit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretmap/fretmap/internal/utils/ptr"
	"github.com/fretmap/fretmap/pkg/errors"
	"github.com/fretmap/fretmap/pkg/guitars"
	"github.com/fretmap/fretmap/pkg/registry"
	"github.com/fretmap/fretmap/pkg/submit"
	"github.com/fretmap/fretmap/pkg/validation"
)

// corruptCandidateRegistry hands the resolver a duplicate-id candidate set on
// the first read, then behaves normally.
type corruptCandidateRegistry struct {
	*registry.Memory
	calls int
}

func (c *corruptCandidateRegistry) Candidates(kind guitars.EntityKind, hint string) ([]registry.Candidate, error) {
	c.calls++
	if c.calls == 1 {
		return []registry.Candidate{
			{ID: "dup", Entity: guitars.Manufacturer{Name: "Gibson"}},
			{ID: "dup", Entity: guitars.Manufacturer{Name: "Fender"}},
		}, nil
	}
	return c.Memory.Candidates(kind, hint)
}

func fenderSubmission() guitars.GuitarSubmission {
	return guitars.GuitarSubmission{
		Manufacturer: guitars.Manufacturer{
			Name:        "Fender Musical Instruments",
			Country:     ptr.To("USA"),
			FoundedYear: ptr.To(1946),
			Status:      guitars.ManufacturerStatusActive,
		},
		Model: guitars.Model{
			ManufacturerName: "Fender Musical Instruments",
			Name:             "Stratocaster",
			Year:             ptr.To(1965),
			ProductionType:   guitars.ProductionTypeMass,
			Currency:         "USD",
		},
		IndividualGuitar: &guitars.IndividualGuitar{
			SerialNumber:      ptr.To("L77632"),
			SignificanceLevel: guitars.SignificanceNotable,
		},
		SourceAttribution: guitars.SourceAttribution{
			SourceName: "Fender 1965 Catalog",
			SourceType: ptr.To(guitars.SourceTypeManufacturerCatalog),
		},
	}
}

func newProcessor(t *testing.T) (*submit.Processor, *registry.Memory) {
	t.Helper()
	reg, err := registry.NewMemory()
	require.NoError(t, err)
	p, err := submit.NewProcessor(reg)
	require.NoError(t, err)
	return p, reg
}

func TestProcessCommitsFullSubmission(t *testing.T) {
	p, reg := newProcessor(t)
	sub := fenderSubmission()

	report, err := p.Process(context.Background(), &sub)
	require.NoError(t, err)
	require.Equal(t, submit.StatusCommitted, report.Status)
	require.Len(t, report.Entities, 4)

	for _, e := range report.Entities {
		assert.NotEmpty(t, e.RecordID, "entity %s should have a record id", e.Kind)
	}

	assert.Equal(t, 1, reg.Len(guitars.KindManufacturer))
	assert.Equal(t, 1, reg.Len(guitars.KindModel))
	assert.Equal(t, 1, reg.Len(guitars.KindIndividualGuitar))
	assert.Equal(t, 1, reg.Len(guitars.KindSourceAttribution))

	// Children carry their resolved parent id.
	mfr := report.Entity(guitars.KindManufacturer)
	model := report.Entity(guitars.KindModel)
	require.NotNil(t, mfr)
	require.NotNil(t, model)

	modelRec, err := reg.Get(guitars.KindModel, model.RecordID)
	require.NoError(t, err)
	assert.Equal(t, mfr.RecordID, modelRec.ParentID)
}

func TestProcessSchemaRejectionWritesNothing(t *testing.T) {
	p, reg := newProcessor(t)

	sub := fenderSubmission()
	sub.Manufacturer.Name = ""

	report, err := p.Process(context.Background(), &sub)
	require.NoError(t, err)
	assert.Equal(t, submit.StatusRejected, report.Status)
	assert.False(t, report.Validation.Valid())
	assert.Equal(t, validation.ErrorKindInvalidSchema, report.Validation.Kind)
	assert.Empty(t, report.Entities)
	assert.Equal(t, 0, reg.Len(guitars.KindManufacturer))
}

func TestProcessBusinessRuleRejection(t *testing.T) {
	p, reg := newProcessor(t)

	sub := fenderSubmission()
	sub.Manufacturer.FoundedYear = ptr.To(2999)

	report, err := p.Process(context.Background(), &sub)
	require.NoError(t, err)
	assert.Equal(t, submit.StatusRejected, report.Status)
	assert.Equal(t, validation.ErrorKindBusinessRule, report.Validation.Kind)
	assert.Equal(t, 0, reg.Len(guitars.KindManufacturer))
}

func TestProcessCommitsSpecificationsAndFinish(t *testing.T) {
	p, reg := newProcessor(t)

	sub := fenderSubmission()
	sub.Specifications = &guitars.Specifications{
		BodyWood:    ptr.To("Alder"),
		ScaleLength: ptr.To(25.5),
		NumFrets:    ptr.To(21),
	}
	sub.Finish = &guitars.Finish{
		BodyFinish: ptr.To("Nitrocellulose Sunburst"),
		Color:      ptr.To("Sunburst"),
	}

	report, err := p.Process(context.Background(), &sub)
	require.NoError(t, err)
	require.Equal(t, submit.StatusCommitted, report.Status)
	require.Len(t, report.Entities, 6)

	model := report.Entity(guitars.KindModel)
	specs := report.Entity(guitars.KindSpecifications)
	finish := report.Entity(guitars.KindFinish)
	require.NotNil(t, model)
	require.NotNil(t, specs)
	require.NotNil(t, finish)

	// Specifications and finish live under the model's record id.
	assert.Equal(t, model.RecordID, specs.RecordID)
	assert.Equal(t, model.RecordID, finish.RecordID)

	specsRec, err := reg.Get(guitars.KindSpecifications, specs.RecordID)
	require.NoError(t, err)
	assert.Equal(t, model.RecordID, specsRec.ParentID)
	assert.Equal(t, "Alder", *specsRec.Entity.(guitars.Specifications).BodyWood)

	// Resubmitting the model updates them in place instead of duplicating.
	again := sub
	again.Specifications = &guitars.Specifications{
		BodyWood: ptr.To("Ash"),
	}
	_, err = p.Process(context.Background(), &again)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len(guitars.KindSpecifications))
	assert.Equal(t, 1, reg.Len(guitars.KindFinish))

	updated, err := reg.Get(guitars.KindSpecifications, specs.RecordID)
	require.NoError(t, err)
	assert.Equal(t, "Ash", *updated.Entity.(guitars.Specifications).BodyWood)
}

func TestProcessAmbiguityWritesNothing(t *testing.T) {
	reg, err := registry.NewMemory(
		registry.WithSeed(guitars.KindManufacturer, "mfr-1", "", guitars.Manufacturer{Name: "Gibson Guitar Corp."}),
		registry.WithSeed(guitars.KindManufacturer, "mfr-2", "", guitars.Manufacturer{Name: "Gibson Guitar Corporation"}),
	)
	require.NoError(t, err)
	p, err := submit.NewProcessor(reg)
	require.NoError(t, err)

	sub := fenderSubmission()
	sub.Manufacturer = guitars.Manufacturer{Name: "Gibson Guitar Corp"}
	sub.Model.ManufacturerName = "Gibson Guitar Corp"

	report, err := p.Process(context.Background(), &sub)
	require.NoError(t, err)
	require.Equal(t, submit.StatusAmbiguous, report.Status)

	mfr := report.Entity(guitars.KindManufacturer)
	require.NotNil(t, mfr)
	assert.Len(t, mfr.Outcome.Candidates, 2)

	// No partial writes: the ambiguous manufacturer blocked the whole graph.
	assert.Equal(t, 2, reg.Len(guitars.KindManufacturer))
	assert.Equal(t, 0, reg.Len(guitars.KindModel))
	assert.Equal(t, 0, reg.Len(guitars.KindSourceAttribution))
}

func TestProcessResubmissionMatches(t *testing.T) {
	p, reg := newProcessor(t)
	sub := fenderSubmission()

	first, err := p.Process(context.Background(), &sub)
	require.NoError(t, err)
	require.Equal(t, submit.StatusCommitted, first.Status)

	again := fenderSubmission()
	second, err := p.Process(context.Background(), &again)
	require.NoError(t, err)
	require.Equal(t, submit.StatusCommitted, second.Status)

	// Same graph resolves to the same records instead of duplicating them.
	for _, kind := range []guitars.EntityKind{guitars.KindManufacturer, guitars.KindModel, guitars.KindIndividualGuitar} {
		firstEntity := first.Entity(kind)
		secondEntity := second.Entity(kind)
		require.NotNil(t, firstEntity, kind)
		require.NotNil(t, secondEntity, kind)
		assert.Equal(t, firstEntity.RecordID, secondEntity.RecordID, kind)
		assert.Equal(t, 1, reg.Len(kind), kind)
	}

	// Attributions are append-only: the resubmission adds a second one.
	assert.Equal(t, 2, reg.Len(guitars.KindSourceAttribution))
}

func TestProcessHistoricWithoutSerialWarns(t *testing.T) {
	p, _ := newProcessor(t)

	sub := fenderSubmission()
	sub.IndividualGuitar = &guitars.IndividualGuitar{
		SignificanceLevel: guitars.SignificanceHistoric,
		Description:       ptr.To("1950s prototype, serial plate missing"),
	}

	report, err := p.Process(context.Background(), &sub)
	require.NoError(t, err)
	assert.Equal(t, submit.StatusCommitted, report.Status)
	assert.NotEmpty(t, report.Warnings())

	guitar := report.Entity(guitars.KindIndividualGuitar)
	require.NotNil(t, guitar)
	assert.NotEmpty(t, guitar.Outcome.Reason)
}

func TestProcessBatchInBatchConsistency(t *testing.T) {
	p, reg := newProcessor(t)

	second := fenderSubmission()
	second.Model = guitars.Model{
		ManufacturerName: "Fender Musical Instruments",
		Name:             "Telecaster",
		Year:             ptr.To(1952),
		ProductionType:   guitars.ProductionTypeMass,
	}
	second.IndividualGuitar = nil

	batch := &guitars.BatchSubmission{
		Submissions: []guitars.GuitarSubmission{fenderSubmission(), second},
	}

	report, err := p.ProcessBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, report.Reports, 2)
	assert.Equal(t, submit.BatchStats{Total: 2, Committed: 2}, report.Stats)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))

	// The second submission matched the manufacturer the first one created.
	firstMfr := report.Reports[0].Entity(guitars.KindManufacturer)
	secondMfr := report.Reports[1].Entity(guitars.KindManufacturer)
	assert.Equal(t, firstMfr.RecordID, secondMfr.RecordID)
	assert.Equal(t, 1, reg.Len(guitars.KindManufacturer))
	assert.Equal(t, 2, reg.Len(guitars.KindModel))
}

func TestProcessBatchSiblingIsolation(t *testing.T) {
	p, _ := newProcessor(t)

	bad := fenderSubmission()
	bad.Model.Name = ""

	batch := &guitars.BatchSubmission{
		Submissions: []guitars.GuitarSubmission{bad, fenderSubmission()},
	}

	report, err := p.ProcessBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, report.Reports, 2)
	assert.Equal(t, submit.StatusRejected, report.Reports[0].Status)
	assert.Equal(t, submit.StatusCommitted, report.Reports[1].Status)
	assert.Equal(t, submit.BatchStats{Total: 2, Committed: 1, Rejected: 1}, report.Stats)
}

func TestProcessBatchOrderPreserved(t *testing.T) {
	p, _ := newProcessor(t)

	batch := &guitars.BatchSubmission{
		Submissions: []guitars.GuitarSubmission{fenderSubmission(), fenderSubmission(), fenderSubmission()},
	}

	report, err := p.ProcessBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, report.Reports, 3)
	for i, r := range report.Reports {
		assert.Equal(t, i, r.Index)
	}
}

func TestProcessBatchEmpty(t *testing.T) {
	p, _ := newProcessor(t)

	_, err := p.ProcessBatch(context.Background(), &guitars.BatchSubmission{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestProcessBatchCancellation(t *testing.T) {
	p, _ := newProcessor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := &guitars.BatchSubmission{
		Submissions: []guitars.GuitarSubmission{fenderSubmission()},
	}

	report, err := p.ProcessBatch(ctx, batch)
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
	require.NotNil(t, report)
	assert.Empty(t, report.Reports)
}

func TestProcessBatchFatalErrorConfinedToSubmission(t *testing.T) {
	mem, err := registry.NewMemory()
	require.NoError(t, err)
	reg := &corruptCandidateRegistry{Memory: mem}
	p, err := submit.NewProcessor(reg)
	require.NoError(t, err)

	batch := &guitars.BatchSubmission{
		Submissions: []guitars.GuitarSubmission{fenderSubmission(), fenderSubmission()},
	}

	report, err := p.ProcessBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, report.Reports, 2)

	assert.Equal(t, submit.StatusFailed, report.Reports[0].Status)
	assert.Contains(t, report.Reports[0].Reason, "duplicate candidate id")

	// The sibling still processed and committed.
	assert.Equal(t, submit.StatusCommitted, report.Reports[1].Status)
	assert.Equal(t, submit.BatchStats{Total: 2, Committed: 1, Failed: 1}, report.Stats)
	assert.Equal(t, 1, mem.Len(guitars.KindManufacturer))
}

func TestNewProcessorNilRegistry(t *testing.T) {
	_, err := submit.NewProcessor(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvariantViolation(err))
}
