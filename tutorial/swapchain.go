package tutorial

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

var ErrNoSurfaceFormats = errors.New("surface reports no formats")

type SwapChainSupportDetails struct {
	Capabilities *khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

func (app *Application) querySwapChainSupport(device core1_0.PhysicalDevice) (SwapChainSupportDetails, error) {
	var details SwapChainSupportDetails
	var err error

	details.Capabilities, _, err = app.surfaceExtension.GetPhysicalDeviceSurfaceCapabilities(app.surface, device)
	if err != nil {
		return details, err
	}

	details.Formats, _, err = app.surfaceExtension.GetPhysicalDeviceSurfaceFormats(app.surface, device)
	if err != nil {
		return details, err
	}

	details.PresentModes, _, err = app.surfaceExtension.GetPhysicalDeviceSurfacePresentModes(app.surface, device)
	return details, err
}

// chooseSwapSurfaceFormat takes the first format the surface offers.
func chooseSwapSurfaceFormat(availableFormats []khr_surface.SurfaceFormat) (khr_surface.SurfaceFormat, error) {
	if len(availableFormats) == 0 {
		return khr_surface.SurfaceFormat{}, ErrNoSurfaceFormats
	}

	return availableFormats[0], nil
}

// chooseSwapPresentMode returns FIFO, which every implementation supports,
// unless mailbox is preferred and available.
func chooseSwapPresentMode(availablePresentModes []khr_surface.PresentMode, preferMailbox bool) khr_surface.PresentMode {
	if preferMailbox {
		for _, presentMode := range availablePresentModes {
			if presentMode == khr_surface.PresentModeMailbox {
				return presentMode
			}
		}
	}

	return khr_surface.PresentModeFIFO
}

// chooseSwapExtent uses the surface's current extent unless its width is the
// 0xFFFFFFFF marker, in which case the drawable size is clamped to the limits.
func chooseSwapExtent(capabilities *khr_surface.SurfaceCapabilities, width, height int) core1_0.Extent2D {
	if uint32(capabilities.CurrentExtent.Width) != math.MaxUint32 {
		return capabilities.CurrentExtent
	}

	width = min(max(width, capabilities.MinImageExtent.Width), capabilities.MaxImageExtent.Width)
	height = min(max(height, capabilities.MinImageExtent.Height), capabilities.MaxImageExtent.Height)

	return core1_0.Extent2D{Width: width, Height: height}
}

// swapImageCount asks for one image more than the minimum. A MaxImageCount
// of zero means there is no upper bound.
func swapImageCount(capabilities *khr_surface.SurfaceCapabilities) int {
	imageCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && capabilities.MaxImageCount < imageCount {
		imageCount = capabilities.MaxImageCount
	}

	return imageCount
}

func swapSharingMode(indices QueueFamilyIndices) (core1_0.SharingMode, []int) {
	families := indices.Unique()
	if len(families) > 1 {
		return core1_0.SharingModeConcurrent, families
	}

	return core1_0.SharingModeExclusive, nil
}

func (app *Application) createSwapchain() error {
	app.swapchainExtension = khr_swapchain.CreateExtensionDriverFromCoreDriver(app.deviceDriver)

	swapchainSupport, err := app.querySwapChainSupport(app.physicalDevice)
	if err != nil {
		return errors.Wrap(err, "query swapchain support")
	}

	surfaceFormat, err := chooseSwapSurfaceFormat(swapchainSupport.Formats)
	if err != nil {
		return err
	}

	presentMode := chooseSwapPresentMode(swapchainSupport.PresentModes, app.config.PreferMailbox)
	drawableWidth, drawableHeight := app.window.VulkanGetDrawableSize()
	extent := chooseSwapExtent(swapchainSupport.Capabilities, int(drawableWidth), int(drawableHeight))
	imageCount := swapImageCount(swapchainSupport.Capabilities)
	sharingMode, queueFamilyIndices := swapSharingMode(app.queueFamilies)

	swapchain, _, err := app.swapchainExtension.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface: app.surface,

		MinImageCount:    imageCount,
		ImageFormat:      surfaceFormat.Format,
		ImageColorSpace:  surfaceFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: queueFamilyIndices,

		PreTransform:   swapchainSupport.Capabilities.CurrentTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    presentMode,
		Clipped:        true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create swap chain")
	}
	app.swapchain = swapchain
	app.swapchainImageFormat = surfaceFormat.Format
	app.swapchainExtent = extent

	app.swapchainImages, _, err = app.swapchainExtension.GetSwapchainImages(app.swapchain)
	if err != nil {
		return errors.Wrap(err, "get swap chain images")
	}

	app.logger.Info("Created swap chain",
		"images", len(app.swapchainImages),
		"format", surfaceFormat.Format,
		"present_mode", presentMode,
		"width", extent.Width,
		"height", extent.Height,
	)
	return nil
}
