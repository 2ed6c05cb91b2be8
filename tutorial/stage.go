package tutorial

import (
	"github.com/cockroachdb/errors"
)

// Stage identifies how far through the tutorial an Application initializes.
// Stages are ordered: every stage implies all of the stages before it.
type Stage int

const (
	StageInstance Stage = iota
	StageValidationLayers
	StagePhysicalDevice
	StageLogicalDevice
	StageSurface
	StageSwapchain
	StageImageViews
	StageShaderModules
	StageFixedFunctions
	StageRenderPass
	StageGraphicsPipeline
	StageFramebuffers
)

// StageComplete is the furthest stage the tutorial reaches.
const StageComplete = StageFramebuffers

var ErrUnknownStage = errors.New("unknown stage")

var stageNames = map[Stage]string{
	StageInstance:         "instance",
	StageValidationLayers: "validation_layers",
	StagePhysicalDevice:   "physical_device",
	StageLogicalDevice:    "logical_device",
	StageSurface:          "surface",
	StageSwapchain:        "swapchain",
	StageImageViews:       "image_views",
	StageShaderModules:    "shader_modules",
	StageFixedFunctions:   "fixed_functions",
	StageRenderPass:       "render_pass",
	StageGraphicsPipeline: "graphics_pipeline",
	StageFramebuffers:     "framebuffers",
}

func (s Stage) String() string {
	name, ok := stageNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

// Stages returns every stage in initialization order.
func Stages() []Stage {
	stages := make([]Stage, 0, len(stageNames))
	for s := StageInstance; s <= StageComplete; s++ {
		stages = append(stages, s)
	}
	return stages
}

func ParseStage(name string) (Stage, error) {
	for stage, stageName := range stageNames {
		if stageName == name {
			return stage, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownStage, "parse stage %q", name)
}
