package submit

import (
	"github.com/agentstation/utc"

	"github.com/fretmap/fretmap/pkg/guitars"
	"github.com/fretmap/fretmap/pkg/resolver"
	"github.com/fretmap/fretmap/pkg/validation"
)

// Status is the terminal state of one processed submission.
type Status string

// String returns the string representation of a Status.
func (s Status) String() string {
	return string(s)
}

// Submission statuses.
const (
	// StatusCommitted means every entity resolved and the submission was
	// written to the registry.
	StatusCommitted Status = "committed"
	// StatusRejected means validation or resolution refused the submission.
	// Nothing was written.
	StatusRejected Status = "rejected"
	// StatusAmbiguous means at least one entity could not be resolved
	// without manual review. Nothing was written.
	StatusAmbiguous Status = "ambiguous"
	// StatusFailed means the pipeline itself broke on this submission,
	// for example a collaborator handing the resolver a corrupt candidate
	// set. The failure is confined to this submission.
	StatusFailed Status = "failed"
)

// EntityReport records how one entity of a submission resolved.
type EntityReport struct {
	Kind       guitars.EntityKind `json:"kind" yaml:"kind"`
	Outcome    *resolver.Outcome  `json:"outcome" yaml:"outcome"`
	RecordID   string             `json:"record_id,omitempty" yaml:"record_id,omitempty"` // Registry id once committed
}

// SubmissionReport is the full account of one submission's trip through the
// pipeline: validation results, per-entity resolution, and the final status.
type SubmissionReport struct {
	Index      int                `json:"index" yaml:"index"`
	Status     Status             `json:"status" yaml:"status"`
	Validation *validation.Result `json:"validation,omitempty" yaml:"validation,omitempty"`
	Entities   []EntityReport     `json:"entities,omitempty" yaml:"entities,omitempty"`
	Reason     string             `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Warnings returns the non-fatal validation conflicts of the submission.
func (r *SubmissionReport) Warnings() []validation.Conflict {
	if r.Validation == nil {
		return nil
	}
	var warnings []validation.Conflict
	for _, c := range r.Validation.Conflicts {
		if c.Warning {
			warnings = append(warnings, c)
		}
	}
	return warnings
}

// Entity returns the report for the given entity kind, or nil.
func (r *SubmissionReport) Entity(kind guitars.EntityKind) *EntityReport {
	for i := range r.Entities {
		if r.Entities[i].Kind == kind {
			return &r.Entities[i]
		}
	}
	return nil
}

// BatchStats aggregates the terminal statuses of a batch.
type BatchStats struct {
	Total     int `json:"total" yaml:"total"`
	Committed int `json:"committed" yaml:"committed"`
	Rejected  int `json:"rejected" yaml:"rejected"`
	Ambiguous int `json:"ambiguous" yaml:"ambiguous"`
	Failed    int `json:"failed" yaml:"failed"`
}

// BatchReport is the ordered result of processing a batch: one report per
// submission, in input order, plus aggregate statistics.
type BatchReport struct {
	StartedAt  utc.Time           `json:"started_at" yaml:"started_at"`
	FinishedAt utc.Time           `json:"finished_at" yaml:"finished_at"`
	Reports    []SubmissionReport `json:"reports" yaml:"reports"`
	Stats      BatchStats         `json:"stats" yaml:"stats"`
}

func (b *BatchReport) tally() {
	b.Stats = BatchStats{Total: len(b.Reports)}
	for _, r := range b.Reports {
		switch r.Status {
		case StatusCommitted:
			b.Stats.Committed++
		case StatusAmbiguous:
			b.Stats.Ambiguous++
		case StatusFailed:
			b.Stats.Failed++
		default:
			b.Stats.Rejected++
		}
	}
}
