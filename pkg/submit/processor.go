// Package submit orchestrates the submission pipeline: schema validation,
// business rules, entity resolution, and registry commits, in that order.
// A submission commits all of its entities or none of them; a batch isolates
// its submissions so one bad record never blocks its siblings.
package submit

import (
	"context"
	"fmt"

	"github.com/agentstation/utc"

	"github.com/fretmap/fretmap/pkg/errors"
	"github.com/fretmap/fretmap/pkg/guitars"
	"github.com/fretmap/fretmap/pkg/logging"
	"github.com/fretmap/fretmap/pkg/registry"
	"github.com/fretmap/fretmap/pkg/resolver"
	"github.com/fretmap/fretmap/pkg/validation"
)

// Processor runs submissions through the pipeline against a registry.
type Processor struct {
	reg      registry.Registry
	schema   *validation.Schema
	rules    *validation.Rules
	resolver *resolver.Resolver
}

// Option configures a Processor.
type Option func(*Processor)

// WithRules overrides the default business rule validator.
func WithRules(r *validation.Rules) Option {
	return func(p *Processor) {
		p.rules = r
	}
}

// WithResolver overrides the default resolver.
func WithResolver(r *resolver.Resolver) Option {
	return func(p *Processor) {
		p.resolver = r
	}
}

// NewProcessor creates a processor bound to a registry.
func NewProcessor(reg registry.Registry, opts ...Option) (*Processor, error) {
	if reg == nil {
		return nil, errors.NewInvariantError("submit", "registry is nil")
	}

	p := &Processor{
		reg:      reg,
		schema:   validation.NewSchema(),
		rules:    validation.NewRules(validation.DefaultRuleConfig()),
		resolver: resolver.New(resolver.DefaultConfig()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// stagedCommit is a registry write held back until the whole submission has
// resolved. reportIdx points at the entity report to update with the
// committed record id.
type stagedCommit struct {
	kind      guitars.EntityKind
	entity    guitars.Entity
	parentID  string
	id        string
	reportIdx int
}

// Process runs one submission through the pipeline. The returned report
// carries the terminal status; a non-nil error means the pipeline itself
// broke (a contract violation or registry failure), not that the submission
// was refused.
func (p *Processor) Process(ctx context.Context, sub *guitars.GuitarSubmission) (*SubmissionReport, error) {
	return p.process(ctx, 0, sub)
}

func (p *Processor) process(ctx context.Context, index int, sub *guitars.GuitarSubmission) (*SubmissionReport, error) {
	log := logging.Ctx(ctx)
	report := &SubmissionReport{Index: index}

	// Stage 1: structural shape. Nothing downstream runs against a
	// malformed submission.
	result := p.schema.ValidateSubmission(sub)
	report.Validation = result
	if !result.Valid() {
		report.Status = StatusRejected
		report.Reason = "schema validation failed"
		log.Debug().Int("conflicts", len(result.Conflicts)).Msg("submission rejected by schema")
		return report, nil
	}

	// Stage 2: business rules. Warnings pass through to the report;
	// hard conflicts reject.
	ruleResult := p.rules.ValidateSubmission(sub)
	result.Merge("", ruleResult)
	if !ruleResult.Valid() {
		report.Status = StatusRejected
		report.Reason = "business rule validation failed"
		log.Debug().Int("conflicts", len(ruleResult.Conflicts)).Msg("submission rejected by business rules")
		return report, nil
	}

	// Stage 3: resolution, parent before child. Commits are staged so a
	// downstream ambiguity leaves the registry untouched.
	var staged []stagedCommit

	mfrID, done, err := p.resolveEntity(report, &staged, sub.Manufacturer, guitars.KindManufacturer, "")
	if err != nil || done {
		return report, err
	}

	modelID, done, err := p.resolveEntity(report, &staged, sub.Model, guitars.KindModel, mfrID)
	if err != nil || done {
		return report, err
	}

	if sub.IndividualGuitar != nil {
		_, done, err = p.resolveEntity(report, &staged, *sub.IndividualGuitar, guitars.KindIndividualGuitar, modelID)
		if err != nil || done {
			return report, err
		}
	}

	// Specifications and finish carry no identity of their own: they ride
	// with the model's identity decision, upserted under the model's record
	// id so a resubmission updates in place instead of duplicating.
	if sub.Specifications != nil {
		report.Entities = append(report.Entities, EntityReport{
			Kind:    guitars.KindSpecifications,
			Outcome: resolver.Created(),
		})
		staged = append(staged, stagedCommit{
			kind:      guitars.KindSpecifications,
			entity:    *sub.Specifications,
			parentID:  modelID,
			id:        modelID,
			reportIdx: len(report.Entities) - 1,
		})
	}
	if sub.Finish != nil {
		report.Entities = append(report.Entities, EntityReport{
			Kind:    guitars.KindFinish,
			Outcome: resolver.Created(),
		})
		staged = append(staged, stagedCommit{
			kind:      guitars.KindFinish,
			entity:    *sub.Finish,
			parentID:  modelID,
			id:        modelID,
			reportIdx: len(report.Entities) - 1,
		})
	}

	// Attributions are append-only provenance: every submission records its
	// source as a fresh entry under the model, never deduplicated.
	report.Entities = append(report.Entities, EntityReport{
		Kind:    guitars.KindSourceAttribution,
		Outcome: resolver.Created(),
	})
	staged = append(staged, stagedCommit{
		kind:      guitars.KindSourceAttribution,
		entity:    sub.SourceAttribution,
		parentID:  modelID,
		reportIdx: len(report.Entities) - 1,
	})

	// Stage 4: commit. Every entity resolved, so the staged writes land
	// together.
	for _, s := range staged {
		id, err := p.reg.Commit(s.kind, s.entity, s.parentID, s.id)
		if err != nil {
			return report, errors.WrapResource("commit", s.kind.String(), s.id, err)
		}
		report.Entities[s.reportIdx].RecordID = id
	}

	report.Status = StatusCommitted
	log.Info().
		Str("manufacturer", mfrID).
		Str("model", modelID).
		Int("commits", len(staged)).
		Msg("submission committed")
	return report, nil
}

// resolveEntity resolves one entity against the registry and records the
// outcome. It returns the record id the entity's children should use as
// their parent, and done=true when the outcome terminates the submission.
func (p *Processor) resolveEntity(report *SubmissionReport, staged *[]stagedCommit, e guitars.Entity, kind guitars.EntityKind, parentID string) (string, bool, error) {
	candidates, err := p.reg.Candidates(kind, parentID)
	if err != nil {
		return "", false, errors.WrapResource("candidates", kind.String(), "", err)
	}

	outcome, err := p.resolver.Resolve(e, parentID, candidates)
	if err != nil {
		return "", false, err
	}

	report.Entities = append(report.Entities, EntityReport{Kind: kind, Outcome: outcome})
	entry := &report.Entities[len(report.Entities)-1]

	switch outcome.Decision {
	case resolver.DecisionMatched:
		entry.RecordID = outcome.ExistingID
		return outcome.ExistingID, false, nil

	case resolver.DecisionCreated:
		// The id is allocated up front so children can reference their
		// parent before anything is written.
		id := registry.NewID()
		*staged = append(*staged, stagedCommit{
			kind:      kind,
			entity:    e,
			parentID:  parentID,
			id:        id,
			reportIdx: len(report.Entities) - 1,
		})
		return id, false, nil

	case resolver.DecisionAmbiguous:
		report.Status = StatusAmbiguous
		report.Reason = fmt.Sprintf("%s resolution is ambiguous: %s", kind, outcome)
		return "", true, nil

	default:
		report.Status = StatusRejected
		report.Reason = fmt.Sprintf("%s resolution rejected: %s", kind, outcome.Reason)
		return "", true, nil
	}
}

// ProcessBatch runs every submission in order. Each submission commits (or
// fails) independently, and commits are visible to the submissions that
// follow, so a batch can introduce a manufacturer once and reuse it.
// Cancellation is honored at submission boundaries: submissions already
// processed stay committed.
func (p *Processor) ProcessBatch(ctx context.Context, batch *guitars.BatchSubmission) (*BatchReport, error) {
	if result := p.schema.ValidateBatch(batch); !result.Valid() {
		return nil, errors.NewValidationError("batch", nil, result.String())
	}

	log := logging.Ctx(ctx)
	report := &BatchReport{StartedAt: utc.Now()}

	for i := range batch.Submissions {
		if ctx.Err() != nil {
			report.FinishedAt = utc.Now()
			report.tally()
			return report, fmt.Errorf("batch canceled after %d of %d submissions: %w",
				i, len(batch.Submissions), errors.ErrCanceled)
		}

		subCtx := logging.WithSubmission(ctx, i)
		subReport, err := p.process(subCtx, i, &batch.Submissions[i])
		if subReport == nil {
			subReport = &SubmissionReport{Index: i}
		}
		if err != nil {
			// A fatal error, like a corrupt candidate set from the
			// registry, is confined to this submission. Siblings still
			// process.
			subReport.Status = StatusFailed
			subReport.Reason = err.Error()
			logging.Ctx(subCtx).Error().Err(err).Msg("submission failed")
		}
		report.Reports = append(report.Reports, *subReport)
	}

	report.FinishedAt = utc.Now()
	report.tally()
	log.Info().
		Int("total", report.Stats.Total).
		Int("committed", report.Stats.Committed).
		Int("rejected", report.Stats.Rejected).
		Int("ambiguous", report.Stats.Ambiguous).
		Int("failed", report.Stats.Failed).
		Msg("batch processed")
	return report, nil
}
