package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-generator/internal/pipeline/steps"
)

func TestRunTracker_CanonicalOrder(t *testing.T) {
	tracker := newRunTracker()
	for _, stage := range steps.CanonicalOrder {
		require.NoError(t, tracker.begin(stage), stage)
		tracker.complete(stage)
	}
	assert.Empty(t, tracker.blocked())
}

func TestRunTracker_RejectsStageBeforeDependencies(t *testing.T) {
	tracker := newRunTracker()
	tracker.complete(steps.ValidateProfile)
	tracker.complete(steps.AnalyzeBusiness)
	tracker.complete(steps.GenerateStructure)
	tracker.complete(steps.CreateDesignSystem)

	err := tracker.begin(steps.BuildDocument)

	var depErr *steps.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, []string{steps.GenerateContent}, depErr.MissingDependencies)
}

func TestRunTracker_RejectsRepeatedStage(t *testing.T) {
	tracker := newRunTracker()
	require.NoError(t, tracker.begin(steps.ValidateProfile))
	tracker.complete(steps.ValidateProfile)

	assert.EqualError(t, tracker.begin(steps.ValidateProfile), "stage validate_profile already ran")
}

func TestRunTracker_UnknownStage(t *testing.T) {
	assert.EqualError(t, newRunTracker().begin("publish"), "unknown step: publish")
}

func TestRunTracker_Blocked(t *testing.T) {
	tracker := newRunTracker()
	tracker.complete(steps.ValidateProfile)
	tracker.complete(steps.AnalyzeBusiness)
	tracker.complete(steps.GenerateStructure)

	assert.Equal(t, []string{
		steps.BuildDocument,
		steps.MergeStylesheet,
		steps.RenderStylesheet,
	}, tracker.blocked())
}

func TestRunStage_UnavailableStageIsStageError(t *testing.T) {
	o := newTestOrchestrator(t, Options{})
	called := false

	_, err := runStage(o, "run-1", newRunTracker(), steps.BuildDocument, func() (string, error) {
		called = true
		return "", nil
	})

	assert.False(t, called)
	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, steps.BuildDocument, stageErr.Stage)
	var depErr *steps.DependencyError
	assert.ErrorAs(t, err, &depErr)
}
