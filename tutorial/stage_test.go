package tutorial

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageNamesRoundTrip(t *testing.T) {
	for _, stage := range Stages() {
		parsed, err := ParseStage(stage.String())
		require.NoError(t, err)
		assert.Equal(t, stage, parsed)
	}
}

func TestStagesAreOrdered(t *testing.T) {
	stages := Stages()
	require.Len(t, stages, len(stageNames))
	assert.Equal(t, StageInstance, stages[0])
	assert.Equal(t, StageComplete, stages[len(stages)-1])

	for i := 1; i < len(stages); i++ {
		assert.Less(t, stages[i-1], stages[i])
	}
}

func TestParseStageUnknown(t *testing.T) {
	_, err := ParseStage("triangle")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStage))
	assert.Contains(t, err.Error(), `"triangle"`)
}

func TestStageStringUnknown(t *testing.T) {
	assert.Equal(t, "unknown", Stage(99).String())
	assert.Equal(t, "swapchain", StageSwapchain.String())
}

func stepNames(steps []initStep) []string {
	var names []string
	for _, step := range steps {
		names = append(names, step.Name)
	}
	return names
}

func TestPlannedSteps(t *testing.T) {
	testCases := []struct {
		stage    Stage
		expected []string
	}{
		{
			stage:    StageInstance,
			expected: []string{"createInstance"},
		},
		{
			stage:    StageLogicalDevice,
			expected: []string{"createInstance", "setupDebugMessenger", "pickPhysicalDevice", "createLogicalDevice"},
		},
		{
			stage: StageSurface,
			expected: []string{
				"createInstance", "setupDebugMessenger", "createSurface",
				"pickPhysicalDevice", "createLogicalDevice",
			},
		},
		{
			stage: StageGraphicsPipeline,
			expected: []string{
				"createInstance", "setupDebugMessenger", "createSurface",
				"pickPhysicalDevice", "createLogicalDevice", "createSwapchain",
				"createImageViews", "createShaderModules", "createPipelineLayout",
				"createRenderPass", "createPipelineCache", "createGraphicsPipeline",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.stage.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, stepNames(plannedSteps(tc.stage)))
		})
	}
}

func TestPlannedStepsCompleteCoversEveryStep(t *testing.T) {
	app := &Application{}
	funcs := app.stepFuncs()

	steps := plannedSteps(StageComplete)
	assert.Len(t, steps, len(initOrder))
	for _, step := range steps {
		assert.Contains(t, funcs, step.Name)
	}
}
