// Package resolver decides whether an incoming, validated entity matches an
// existing registry record, is ambiguous, or is genuinely new. It never
// silently picks a match when two real-world entities could plausibly be
// confused: ambiguity is surfaced, not guessed.
package resolver

import (
	"github.com/fretmap/fretmap/pkg/errors"
	"github.com/fretmap/fretmap/pkg/guitars"
	"github.com/fretmap/fretmap/pkg/match"
	"github.com/fretmap/fretmap/pkg/normalize"
	"github.com/fretmap/fretmap/pkg/registry"
)

// Resolver scores incoming entities against candidate sets. It is stateless
// between calls: resolving the same entity against the same candidates
// always yields the same outcome.
type Resolver struct {
	cfg Config
}

// New creates a resolver with the given threshold configuration.
func New(cfg Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Config returns the configuration the resolver was built with.
func (r *Resolver) Config() Config {
	return r.cfg
}

// Resolve dispatches on the entity kind. The parentID is the resolved parent
// record id: manufacturer id for models, model id for individual guitars,
// unused for manufacturers.
func (r *Resolver) Resolve(e guitars.Entity, parentID string, candidates []registry.Candidate) (*Outcome, error) {
	switch v := e.(type) {
	case guitars.Manufacturer:
		return r.ResolveManufacturer(v, candidates)
	case guitars.Model:
		return r.ResolveModel(v, parentID, candidates)
	case guitars.IndividualGuitar:
		return r.ResolveIndividualGuitar(v, parentID, candidates)
	default:
		return nil, errors.NewInvariantError("resolver",
			"entity kind "+e.Kind().String()+" has no identity and cannot be resolved")
	}
}

// ResolveManufacturer resolves a manufacturer against existing manufacturer
// records.
func (r *Resolver) ResolveManufacturer(m guitars.Manufacturer, candidates []registry.Candidate) (*Outcome, error) {
	if err := checkCandidates(candidates); err != nil {
		return nil, err
	}

	key := m.IdentityKey()
	if key == "" {
		return Rejected("manufacturer name normalizes to an empty identity key"), nil
	}

	th := r.cfg.Manufacturer
	scored := make(match.CandidateList, 0, len(candidates))
	for _, cand := range candidates {
		existing, ok := cand.Entity.(guitars.Manufacturer)
		if !ok {
			return nil, errors.NewInvariantError("resolver",
				"manufacturer candidate "+cand.ID+" holds a "+cand.Entity.Kind().String())
		}

		candKey := existing.IdentityKey()
		if candKey == key {
			scored = append(scored, match.Candidate{ID: cand.ID, Score: 1.0, Exact: true})
			continue
		}

		score := match.Similarity(key, candKey)
		if m.FoundedYear != nil && existing.FoundedYear != nil && *m.FoundedYear == *existing.FoundedYear {
			score += th.YearBonus
		}
		if m.Country != nil && existing.Country != nil &&
			normalize.Name(*m.Country) == normalize.Name(*existing.Country) {
			score += th.CountryBonus
		}
		scored = append(scored, match.Candidate{ID: cand.ID, Score: clamp(score)})
	}

	return decide(scored, th), nil
}

// ResolveModel resolves a model under its resolved manufacturer. The
// candidate set must already be restricted to that manufacturer's models.
func (r *Resolver) ResolveModel(m guitars.Model, manufacturerID string, candidates []registry.Candidate) (*Outcome, error) {
	if err := checkCandidates(candidates); err != nil {
		return nil, err
	}

	name := normalize.Name(m.Name)
	if name == "" {
		return Rejected("model name normalizes to an empty identity key"), nil
	}
	key := m.IdentityKey(manufacturerID)

	th := r.cfg.Model
	scored := make(match.CandidateList, 0, len(candidates))
	for _, cand := range candidates {
		existing, ok := cand.Entity.(guitars.Model)
		if !ok {
			return nil, errors.NewInvariantError("resolver",
				"model candidate "+cand.ID+" holds a "+cand.Entity.Kind().String())
		}

		if existing.IdentityKey(manufacturerID) == key {
			scored = append(scored, match.Candidate{ID: cand.ID, Score: 1.0, Exact: true})
			continue
		}

		score := match.Similarity(name, normalize.Name(existing.Name))
		if m.Year != nil && existing.Year != nil && *m.Year == *existing.Year {
			score += th.YearBonus
		}
		scored = append(scored, match.Candidate{ID: cand.ID, Score: clamp(score)})
	}

	return decide(scored, th), nil
}

// ResolveIndividualGuitar resolves an instrument under its resolved model.
// Instruments without a serial number carry no automatic identity and always
// resolve as Created.
func (r *Resolver) ResolveIndividualGuitar(g guitars.IndividualGuitar, modelID string, candidates []registry.Candidate) (*Outcome, error) {
	if err := checkCandidates(candidates); err != nil {
		return nil, err
	}

	key := g.IdentityKey(modelID)
	if key == "" {
		return CreatedBecause("no serial number, no automatic identity"), nil
	}
	serial := normalize.Serial(*g.SerialNumber)

	th := r.cfg.IndividualGuitar
	scored := make(match.CandidateList, 0, len(candidates))
	for _, cand := range candidates {
		existing, ok := cand.Entity.(guitars.IndividualGuitar)
		if !ok {
			return nil, errors.NewInvariantError("resolver",
				"individual guitar candidate "+cand.ID+" holds a "+cand.Entity.Kind().String())
		}

		candKey := existing.IdentityKey(modelID)
		if candKey == "" {
			// Serial-less records are not matchable.
			continue
		}
		if candKey == key {
			scored = append(scored, match.Candidate{ID: cand.ID, Score: 1.0, Exact: true})
			continue
		}
		scored = append(scored, match.Candidate{
			ID:    cand.ID,
			Score: match.Similarity(serial, normalize.Serial(*existing.SerialNumber)),
		})
	}

	return decide(scored, th), nil
}

// decide applies the exact-match-first, then near-match fallback strategy.
func decide(scored match.CandidateList, th Thresholds) *Outcome {
	exact := scored.Exact()
	if len(exact) == 1 {
		return Matched(exact[0].ID, 1.0)
	}
	if len(exact) > 1 {
		// Multiple records share the incoming identity key. Picking one
		// silently risks merging distinct real-world entities.
		return Ambiguous(toScores(exact))
	}

	scored.Sort()
	best := scored.Best()
	if best == nil || best.Score < th.Create {
		return Created()
	}

	if best.Score >= th.Match && !scored.IsAmbiguous(th.Margin) {
		return Matched(best.ID, best.Score)
	}

	// Either multiple candidates tied within the margin, or the best score
	// fell into the uncertain middle band.
	near := scored.WithinMargin(th.Margin)
	return Ambiguous(toScores(near))
}

// checkCandidates fails fast on a corrupt candidate set. Tolerating
// duplicate ids here risks registry corruption downstream.
func checkCandidates(candidates []registry.Candidate) error {
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c.Entity == nil {
			return errors.NewInvariantError("resolver", "candidate "+c.ID+" has a nil entity")
		}
		if _, dup := seen[c.ID]; dup {
			return errors.NewInvariantError("resolver", "duplicate candidate id "+c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

func toScores(list match.CandidateList) []CandidateScore {
	out := make([]CandidateScore, 0, len(list))
	for _, c := range list {
		out = append(out, CandidateScore{ID: c.ID, Confidence: c.Score})
	}
	return out
}

func clamp(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	if score < 0 {
		return 0
	}
	return score
}
