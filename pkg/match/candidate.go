package match

import "sort"

// Candidate is one existing registry entity scored against an incoming one.
type Candidate struct {
	// ID is the existing registry record id.
	ID string

	// Score is the combined similarity score in [0,1].
	Score float64

	// Exact marks an exact normalized-key match.
	Exact bool
}

// CandidateList is a scored candidate set with ranking helpers.
type CandidateList []Candidate

// Sort orders candidates by score descending, breaking ties by id so equal
// inputs always rank identically.
func (c CandidateList) Sort() {
	sort.Slice(c, func(i, j int) bool {
		if c[i].Score != c[j].Score {
			return c[i].Score > c[j].Score
		}
		return c[i].ID < c[j].ID
	})
}

// Best returns the top-ranked candidate, or nil if the list is empty.
// The list must already be sorted.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// Exact returns the candidates whose normalized keys matched exactly.
func (c CandidateList) Exact() CandidateList {
	var out CandidateList
	for _, cand := range c {
		if cand.Exact {
			out = append(out, cand)
		}
	}
	return out
}

// WithinMargin returns all candidates whose score is within margin of the
// best score. The list must already be sorted; the best candidate is always
// included.
func (c CandidateList) WithinMargin(margin float64) CandidateList {
	if len(c) == 0 {
		return nil
	}
	best := c[0].Score

	var out CandidateList
	for _, cand := range c {
		if best-cand.Score <= margin {
			out = append(out, cand)
		}
	}
	return out
}

// IsAmbiguous reports whether the top two candidates are within margin of
// each other. The list must already be sorted.
func (c CandidateList) IsAmbiguous(margin float64) bool {
	if len(c) < 2 {
		return false
	}
	return c[0].Score-c[1].Score <= margin
}
