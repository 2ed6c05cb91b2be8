package tutorial

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
)

// deviceExtensionNames lists the extensions to enable on the logical device.
// The portability subset must be enabled whenever the device advertises it.
func deviceExtensionNames(available map[string]struct{}, withSwapchain bool) []string {
	var extensionNames []string
	if withSwapchain {
		extensionNames = append(extensionNames, deviceExtensions...)
	}

	_, supported := available[khr_portability_subset.ExtensionName]
	if supported {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	return extensionNames
}

func (app *Application) createLogicalDevice() error {
	indices := app.queueFamilies
	if indices.GraphicsFamily == nil {
		return errors.New("no graphics queue family selected")
	}

	var queueFamilyOptions []core1_0.DeviceQueueCreateInfo
	queuePriority := float32(1.0)
	for _, queueFamily := range indices.Unique() {
		queueFamilyOptions = append(queueFamilyOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueFamily,
			QueuePriorities:  []float32{queuePriority},
		})
	}

	device, _, err := app.instanceDriver.CreateDevice(app.physicalDevice, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueFamilyOptions,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: deviceExtensionNames(app.physicalDeviceSurvey.Extensions, app.surfaceEnabled()),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create logical device")
	}

	app.deviceDriver, err = app.instanceDriver.BuildDeviceDriver(device)
	if err != nil {
		return errors.Wrap(err, "failed to load device commands")
	}

	app.graphicsQueue = app.deviceDriver.GetQueue(*indices.GraphicsFamily, 0)
	if indices.PresentFamily != nil {
		app.presentQueue = app.deviceDriver.GetQueue(*indices.PresentFamily, 0)
	}

	app.logger.Info("Created logical device", "queue_families", indices.Unique())
	return nil
}
