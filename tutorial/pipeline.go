package tutorial

import (
	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func (app *Application) createGraphicsPipeline() error {
	vertStage := core1_0.PipelineShaderStageCreateInfo{
		Stage:  core1_0.StageVertex,
		Module: app.vertShader,
		Name:   "main",
	}

	fragStage := core1_0.PipelineShaderStageCreateInfo{
		Stage:  core1_0.StageFragment,
		Module: app.fragShader,
		Name:   "main",
	}

	fixed := newFixedFunctions(app.swapchainExtent)

	var pipelineCache *core1_0.PipelineCache
	if app.pipelineCache.Initialized() {
		pipelineCache = &app.pipelineCache
	}

	start := hrtime.Now()
	pipelines, _, err := app.deviceDriver.CreateGraphicsPipelines(pipelineCache, nil,
		core1_0.GraphicsPipelineCreateInfo{
			Stages: []core1_0.PipelineShaderStageCreateInfo{
				vertStage,
				fragStage,
			},
			VertexInputState:   fixed.VertexInput,
			InputAssemblyState: fixed.InputAssembly,
			ViewportState:      fixed.Viewport,
			RasterizationState: fixed.Rasterization,
			MultisampleState:   fixed.Multisample,
			ColorBlendState:    fixed.ColorBlend,
			Layout:             app.pipelineLayout,
			RenderPass:         app.renderPass,
			Subpass:            0,
			BasePipelineIndex:  -1,
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to create graphics pipeline")
	}
	app.graphicsPipeline = pipelines[0]

	app.logger.Info("Created graphics pipeline", "elapsed", hrtime.Now()-start, "cached", pipelineCache != nil)

	// The pipeline keeps its own copy of the shader code.
	app.destroyShaderModules()
	return nil
}
