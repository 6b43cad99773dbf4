package resolver

import (
	"fmt"
	"strings"
)

// Decision is the resolver's verdict on an incoming entity.
type Decision string

// String returns the string representation of a Decision.
func (d Decision) String() string {
	return string(d)
}

// Decisions.
const (
	// DecisionMatched means the entity refers to an existing record.
	DecisionMatched Decision = "matched"
	// DecisionCreated means the entity is genuinely new.
	DecisionCreated Decision = "created"
	// DecisionAmbiguous means multiple records could plausibly match and
	// the decision needs manual review.
	DecisionAmbiguous Decision = "ambiguous"
	// DecisionRejected means the entity cannot be resolved at all.
	DecisionRejected Decision = "rejected"
)

// CandidateScore pairs a candidate record id with its match confidence.
type CandidateScore struct {
	ID         string  `json:"id" yaml:"id"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Outcome is the resolver's tagged result: exactly one of Matched, Created,
// Ambiguous, or Rejected, with the fields relevant to that decision.
type Outcome struct {
	Decision   Decision         `json:"decision" yaml:"decision"`
	ExistingID string           `json:"existing_id,omitempty" yaml:"existing_id,omitempty"`  // Set for Matched
	Confidence float64          `json:"confidence,omitempty" yaml:"confidence,omitempty"`    // Match certainty in [0,1]
	Candidates []CandidateScore `json:"candidates,omitempty" yaml:"candidates,omitempty"`    // Near-tied candidates for Ambiguous
	Reason     string           `json:"reason,omitempty" yaml:"reason,omitempty"`            // Set for Rejected and Created-without-identity
}

// Matched builds a matched outcome against an existing record.
func Matched(existingID string, confidence float64) *Outcome {
	return &Outcome{Decision: DecisionMatched, ExistingID: existingID, Confidence: confidence}
}

// Created builds a brand-new-identity outcome.
func Created() *Outcome {
	return &Outcome{Decision: DecisionCreated}
}

// CreatedBecause builds a Created outcome with an explanatory reason.
func CreatedBecause(reason string) *Outcome {
	return &Outcome{Decision: DecisionCreated, Reason: reason}
}

// Ambiguous builds an outcome surfacing the near-tied candidates.
func Ambiguous(candidates []CandidateScore) *Outcome {
	return &Outcome{Decision: DecisionAmbiguous, Candidates: candidates}
}

// Rejected builds a rejection with the given reason.
func Rejected(reason string) *Outcome {
	return &Outcome{Decision: DecisionRejected, Reason: reason}
}

// String returns a one-line summary of the outcome.
func (o *Outcome) String() string {
	switch o.Decision {
	case DecisionMatched:
		return fmt.Sprintf("matched %s (confidence %.2f)", o.ExistingID, o.Confidence)
	case DecisionAmbiguous:
		ids := make([]string, 0, len(o.Candidates))
		for _, c := range o.Candidates {
			ids = append(ids, fmt.Sprintf("%s (%.2f)", c.ID, c.Confidence))
		}
		return fmt.Sprintf("ambiguous between %s", strings.Join(ids, ", "))
	case DecisionRejected:
		return fmt.Sprintf("rejected: %s", o.Reason)
	default:
		if o.Reason != "" {
			return fmt.Sprintf("created: %s", o.Reason)
		}
		return "created"
	}
}
