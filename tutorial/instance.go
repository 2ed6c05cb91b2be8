package tutorial

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
)

func (app *Application) createInstance() error {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    app.config.ApplicationName,
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         app.config.EngineName,
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_0,
	}

	// Add extensions
	sdlExtensions := app.window.VulkanGetInstanceExtensions()
	app.logger.Info("Enumerating extensions SDL needs from Vulkan:")
	for i, ext := range sdlExtensions {
		app.logger.Info("  required_extensions", "index", i, "name", ext)
	}

	extensions, _, err := app.globalDriver.AvailableExtensions()
	if err != nil {
		return errors.Wrap(err, "enumerate instance extensions")
	}

	err = checkExtensionSupport(extensions, sdlExtensions)
	if err != nil {
		return errors.Wrap(err, "cannot initialize sdl")
	}
	instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, sdlExtensions...)

	if app.validationEnabled() {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext_debug_utils.ExtensionName)
	}

	_, enumerationSupported := extensions[khr_portability_enumeration.ExtensionName]
	if enumerationSupported {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	app.availableExtensions = sortedNames(extensions)

	// Add layers
	layers, _, err := app.globalDriver.AvailableLayers()
	if err != nil {
		return errors.Wrap(err, "enumerate instance layers")
	}
	app.availableLayers = sortedNames(layers)

	if app.validationEnabled() {
		app.logger.Info("Enumerating available Vulkan layers:")
		for i, layer := range app.availableLayers {
			app.logger.Info("  available_layers", "index", i, "name", layer)
		}

		err = checkLayerSupport(layers, app.config.ValidationLayers)
		if err != nil {
			return err
		}
		instanceOptions.EnabledLayerNames = append(instanceOptions.EnabledLayerNames, app.config.ValidationLayers...)

		// Add debug messenger
		debugOptions, err := app.debugMessengerOptions()
		if err != nil {
			return err
		}
		instanceOptions.Next = debugOptions
	}

	instance, _, err := app.globalDriver.CreateInstance(nil, instanceOptions)
	if err != nil {
		return errors.Wrap(err, "failed to create Vulkan instance")
	}

	app.instanceDriver, err = app.globalDriver.BuildInstanceDriver(instance)
	if err != nil {
		return errors.Wrap(err, "failed to load instance commands")
	}

	app.logger.Info("Created Vulkan instance")
	return nil
}
