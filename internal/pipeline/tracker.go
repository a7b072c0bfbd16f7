package pipeline

import (
	"fmt"
	"slices"
	"sync"

	"github.com/jonathan/site-generator/internal/pipeline/steps"
)

// runTracker records the stages one run has completed. The design and copy branches
// update it concurrently.
type runTracker struct {
	mu        sync.Mutex
	completed map[string]bool
}

func newRunTracker() *runTracker {
	return &runTracker{completed: make(map[string]bool, len(steps.StepRegistry))}
}

// begin returns an error unless stage is available: not yet run and every dependency complete
func (t *runTracker) begin(stage string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if slices.Contains(steps.GetAvailableSteps(t.completed), stage) {
		return nil
	}
	if err := steps.ValidateDependencies(t.completed, stage); err != nil {
		return err
	}
	return fmt.Errorf("stage %s already ran", stage)
}

func (t *runTracker) complete(stage string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed[stage] = true
}

// blocked lists the stages that can no longer run without the missing ones
func (t *runTracker) blocked() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return steps.GetBlockedSteps(t.completed)
}
