package tutorial

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// Application walks the Vulkan initialization chain up to a target stage and
// keeps every object it creates so cleanup can unwind them in reverse.
type Application struct {
	config Config
	stage  Stage
	logger *slog.Logger

	window *sdl.Window

	globalDriver   core1_0.GlobalDriver
	instanceDriver core1_0.CoreInstanceDriver
	deviceDriver   core1_0.CoreDeviceDriver

	debugDriver      ext_debug_utils.ExtensionDriver
	debugMessenger   ext_debug_utils.DebugUtilsMessenger
	surfaceExtension khr_surface.ExtensionDriver
	surface          khr_surface.Surface

	availableLayers     []string
	availableExtensions []string

	physicalDevice        core1_0.PhysicalDevice
	physicalDeviceSurvey  *deviceSurvey
	physicalDeviceSurveys []*deviceSurvey
	queueFamilies         QueueFamilyIndices

	graphicsQueue core1_0.Queue
	presentQueue  core1_0.Queue

	swapchainExtension    khr_swapchain.ExtensionDriver
	swapchain             khr_swapchain.Swapchain
	swapchainImages       []core1_0.Image
	swapchainImageFormat  core1_0.Format
	swapchainExtent       core1_0.Extent2D
	swapchainImageViews   []core1_0.ImageView
	swapchainFramebuffers []core1_0.Framebuffer

	vertShader core1_0.ShaderModule
	fragShader core1_0.ShaderModule

	renderPass       core1_0.RenderPass
	pipelineLayout   core1_0.PipelineLayout
	pipelineCache    core1_0.PipelineCache
	graphicsPipeline core1_0.Pipeline
}

func NewApplication(opts Options) (*Application, error) {
	err := opts.Config.Validate()
	if err != nil {
		return nil, err
	}

	logger, err := opts.Config.NewLogger()
	if err != nil {
		return nil, err
	}

	return &Application{
		config: opts.Config,
		stage:  opts.Stage,
		logger: logger,
	}, nil
}

func (app *Application) Run() error {
	defer app.cleanup()

	err := app.initWindow()
	if err != nil {
		return err
	}

	err = app.initVulkan()
	if err != nil {
		return err
	}

	return app.mainLoop()
}

func (app *Application) initWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "initialize SDL")
	}
	app.logger.Info("Initialized SDL")

	window, err := sdl.CreateWindow(app.config.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(app.config.Width), int32(app.config.Height), sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	app.window = window

	app.globalDriver, err = core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return errors.Wrap(err, "load vulkan")
	}

	return nil
}

type initStep struct {
	Stage Stage
	Name  string
}

// initOrder lists every step in the order it runs. The surface comes before
// device selection because present support is part of picking a device.
var initOrder = []initStep{
	{StageInstance, "createInstance"},
	{StageValidationLayers, "setupDebugMessenger"},
	{StageSurface, "createSurface"},
	{StagePhysicalDevice, "pickPhysicalDevice"},
	{StageLogicalDevice, "createLogicalDevice"},
	{StageSwapchain, "createSwapchain"},
	{StageImageViews, "createImageViews"},
	{StageShaderModules, "createShaderModules"},
	{StageFixedFunctions, "createPipelineLayout"},
	{StageRenderPass, "createRenderPass"},
	{StageGraphicsPipeline, "createPipelineCache"},
	{StageGraphicsPipeline, "createGraphicsPipeline"},
	{StageFramebuffers, "createFramebuffers"},
}

// plannedSteps returns the steps needed to reach target, in run order.
func plannedSteps(target Stage) []initStep {
	var steps []initStep
	for _, step := range initOrder {
		if step.Stage <= target {
			steps = append(steps, step)
		}
	}

	return steps
}

func (app *Application) stepFuncs() map[string]func() error {
	return map[string]func() error{
		"createInstance":         app.createInstance,
		"setupDebugMessenger":    app.setupDebugMessenger,
		"createSurface":          app.createSurface,
		"pickPhysicalDevice":     app.pickPhysicalDevice,
		"createLogicalDevice":    app.createLogicalDevice,
		"createSwapchain":        app.createSwapchain,
		"createImageViews":       app.createImageViews,
		"createShaderModules":    app.createShaderModules,
		"createPipelineLayout":   app.createPipelineLayout,
		"createRenderPass":       app.createRenderPass,
		"createPipelineCache":    app.createPipelineCache,
		"createGraphicsPipeline": app.createGraphicsPipeline,
		"createFramebuffers":     app.createFramebuffers,
	}
}

func (app *Application) initVulkan() error {
	funcs := app.stepFuncs()
	start := hrtime.Now()

	for _, step := range plannedSteps(app.stage) {
		stepStart := hrtime.Now()
		err := funcs[step.Name]()
		if err != nil {
			return errors.Wrapf(err, "%s", step.Name)
		}
		app.logger.Debug("Finished init step", "step", step.Name, "stage", step.Stage, "elapsed", hrtime.Now()-stepStart)
	}

	app.logger.Info("Initialized Vulkan", "stage", app.stage, "elapsed", hrtime.Now()-start)
	return nil
}

func (app *Application) mainLoop() error {
	if app.config.ExitAfterInit {
		app.logger.Info("Exiting after init")
		return nil
	}

	app.logger.Info("Entering main loop")
	for {
		event := sdl.WaitEvent()
		switch event.(type) {
		case *sdl.QuitEvent:
			app.logger.Info("Exiting gracefully")
			return nil
		}
	}
}

func (app *Application) validationEnabled() bool {
	return app.config.EnableValidation && app.stage >= StageValidationLayers
}

func (app *Application) surfaceEnabled() bool {
	return app.stage >= StageSurface
}

func (app *Application) cleanup() {
	for _, framebuffer := range app.swapchainFramebuffers {
		app.deviceDriver.DestroyFramebuffer(framebuffer, nil)
	}
	app.swapchainFramebuffers = nil

	if app.graphicsPipeline.Initialized() {
		app.deviceDriver.DestroyPipeline(app.graphicsPipeline, nil)
	}

	if app.pipelineCache.Initialized() {
		err := app.savePipelineCache()
		if err != nil {
			app.logger.Warn("Failed to save pipeline cache", "error", err)
		}
		app.deviceDriver.DestroyPipelineCache(app.pipelineCache, nil)
	}

	if app.renderPass.Initialized() {
		app.deviceDriver.DestroyRenderPass(app.renderPass, nil)
	}

	if app.pipelineLayout.Initialized() {
		app.deviceDriver.DestroyPipelineLayout(app.pipelineLayout, nil)
	}

	app.destroyShaderModules()

	for _, imageView := range app.swapchainImageViews {
		app.deviceDriver.DestroyImageView(imageView, nil)
	}
	app.swapchainImageViews = nil

	if app.swapchain.Initialized() {
		app.swapchainExtension.DestroySwapchain(app.swapchain, nil)
	}

	if app.deviceDriver != nil {
		app.deviceDriver.DestroyDevice(nil)
	}

	if app.debugMessenger.Initialized() {
		app.debugDriver.DestroyDebugUtilsMessenger(app.debugMessenger, nil)
	}

	if app.surface.Initialized() {
		app.surfaceExtension.DestroySurface(app.surface, nil)
	}

	if app.instanceDriver != nil {
		app.instanceDriver.DestroyInstance(nil)
	}

	if app.window != nil {
		app.window.Destroy()
	}
	sdl.Quit()
}
