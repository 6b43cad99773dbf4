package fretmap

import (
	"sync"

	"github.com/fretmap/fretmap/pkg/submit"
)

// CommittedHook is called after a submission commits to the registry.
type CommittedHook func(*submit.SubmissionReport)

// RefusedHook is called when a submission ends rejected or ambiguous.
type RefusedHook func(*submit.SubmissionReport)

// hooks manages event callbacks for submission outcomes
type hooks struct {
	mu        sync.RWMutex
	committed []CommittedHook
	refused   []RefusedHook
}

func newHooks() *hooks {
	return &hooks{}
}

func (h *hooks) onCommitted(hook CommittedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.committed = append(h.committed, hook)
}

func (h *hooks) onRefused(hook RefusedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refused = append(h.refused, hook)
}

// fire dispatches the report to the hooks matching its status.
func (h *hooks) fire(report *submit.SubmissionReport) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if report.Status == submit.StatusCommitted {
		for _, hook := range h.committed {
			hook(report)
		}
		return
	}
	for _, hook := range h.refused {
		hook(report)
	}
}
