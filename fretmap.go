// Package fretmap is the public entry point to the guitar registry
// submission pipeline. A Fretmap wraps a registry with validation,
// resolution, and commit orchestration, and exposes event hooks for
// observing submission outcomes.
package fretmap

import (
	"context"
	"fmt"

	"github.com/fretmap/fretmap/pkg/guitars"
	"github.com/fretmap/fretmap/pkg/logging"
	"github.com/fretmap/fretmap/pkg/registry"
	"github.com/fretmap/fretmap/pkg/resolver"
	"github.com/fretmap/fretmap/pkg/submit"
	"github.com/fretmap/fretmap/pkg/validation"
)

// Fretmap processes guitar submissions against a registry.
type Fretmap interface {
	// Submit runs one submission through the full pipeline.
	Submit(ctx context.Context, sub *guitars.GuitarSubmission) (*submit.SubmissionReport, error)

	// SubmitBatch runs a batch of submissions in order.
	SubmitBatch(ctx context.Context, batch *guitars.BatchSubmission) (*submit.BatchReport, error)

	// Validate checks a submission without touching the registry.
	Validate(sub *guitars.GuitarSubmission) *validation.Result

	// Resolve previews how an entity would resolve, without committing.
	Resolve(e guitars.Entity, parentID string) (*resolver.Outcome, error)

	// Registry returns the underlying registry.
	Registry() registry.Registry

	// OnCommitted registers a callback for committed submissions.
	OnCommitted(CommittedHook)

	// OnRefused registers a callback for rejected or ambiguous submissions.
	OnRefused(RefusedHook)
}

// fretmap is the internal implementation of the Fretmap interface
type fretmap struct {
	config    *config
	reg       registry.Registry
	processor *submit.Processor
	schema    *validation.Schema
	rules     *validation.Rules
	resolver  *resolver.Resolver
	hooks     *hooks
}

// New creates a new Fretmap instance with the given options. Without a
// WithRegistry option an empty in-memory registry is used.
func New(opts ...Option) (Fretmap, error) {
	fm := &fretmap{
		config: defaultConfig(),
		schema: validation.NewSchema(),
		hooks:  newHooks(),
	}

	if err := fm.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	fm.reg = fm.config.registry
	if fm.reg == nil {
		reg, err := registry.NewMemory()
		if err != nil {
			return nil, fmt.Errorf("creating memory registry: %w", err)
		}
		fm.reg = reg
	}

	fm.rules = validation.NewRules(fm.config.ruleConfig)
	fm.resolver = resolver.New(fm.config.resolverConfig)

	processor, err := submit.NewProcessor(fm.reg,
		submit.WithRules(fm.rules),
		submit.WithResolver(fm.resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("creating processor: %w", err)
	}
	fm.processor = processor

	return fm, nil
}

func (f *fretmap) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(f.config); err != nil {
			return err
		}
	}
	return nil
}

// Submit runs one submission through the full pipeline.
func (f *fretmap) Submit(ctx context.Context, sub *guitars.GuitarSubmission) (*submit.SubmissionReport, error) {
	report, err := f.processor.Process(f.logCtx(ctx), sub)
	if err != nil {
		return report, err
	}
	f.hooks.fire(report)
	return report, nil
}

// SubmitBatch runs a batch of submissions in order.
func (f *fretmap) SubmitBatch(ctx context.Context, batch *guitars.BatchSubmission) (*submit.BatchReport, error) {
	report, err := f.processor.ProcessBatch(f.logCtx(ctx), batch)
	if report != nil {
		for i := range report.Reports {
			f.hooks.fire(&report.Reports[i])
		}
	}
	return report, err
}

// Validate checks a submission's shape and business rules without touching
// the registry.
func (f *fretmap) Validate(sub *guitars.GuitarSubmission) *validation.Result {
	result := f.schema.ValidateSubmission(sub)
	if !result.Valid() {
		return result
	}
	result.Merge("", f.rules.ValidateSubmission(sub))
	return result
}

// Resolve previews how an entity would resolve against the current registry
// state, without committing anything.
func (f *fretmap) Resolve(e guitars.Entity, parentID string) (*resolver.Outcome, error) {
	candidates, err := f.reg.Candidates(e.Kind(), parentID)
	if err != nil {
		return nil, err
	}
	return f.resolver.Resolve(e, parentID, candidates)
}

// Registry returns the underlying registry.
func (f *fretmap) Registry() registry.Registry {
	return f.reg
}

// OnCommitted registers a callback for committed submissions.
func (f *fretmap) OnCommitted(hook CommittedHook) {
	f.hooks.onCommitted(hook)
}

// OnRefused registers a callback for rejected or ambiguous submissions.
func (f *fretmap) OnRefused(hook RefusedHook) {
	f.hooks.onRefused(hook)
}

func (f *fretmap) logCtx(ctx context.Context) context.Context {
	if f.config.logger != nil {
		return logging.WithLogger(ctx, f.config.logger)
	}
	return ctx
}
