package tutorial

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoPhysicalDevices = errors.New("failed to find GPUs that support Vulkan")
	ErrNoSuitableDevice  = errors.New("failed to find a suitable GPU")
)

var deviceExtensions = []string{khr_swapchain.ExtensionName}

// deviceSurvey is everything device selection needs to know about one
// physical device, gathered up front so selection itself is plain logic.
type deviceSurvey struct {
	Index         int
	Name          string
	Type          string
	APIVersion    string
	DriverVersion string
	VendorID      uint32
	DeviceID      uint32
	CacheUUID     uuid.UUID

	QueueFlags     []core1_0.QueueFlags
	PresentSupport []bool
	Extensions     map[string]struct{}

	// Swapchain is nil when there is no surface to query against.
	Swapchain *SwapChainSupportDetails
}

type deviceRequirements struct {
	Surface    bool
	Extensions []string
}

// unsuitableReason explains why the device can't be used, or returns "" when
// it can.
func (s *deviceSurvey) unsuitableReason(req deviceRequirements) string {
	indices := findQueueFamilies(s.QueueFlags, s.PresentSupport)
	if indices.GraphicsFamily == nil {
		return "no graphics queue family"
	}

	if !req.Surface {
		return ""
	}

	if indices.PresentFamily == nil {
		return "no queue family can present to the surface"
	}

	missing := missingNames(s.Extensions, req.Extensions)
	if len(missing) > 0 {
		return "missing device extensions " + strings.Join(missing, ", ")
	}

	if s.Swapchain == nil || len(s.Swapchain.Formats) == 0 || len(s.Swapchain.PresentModes) == 0 {
		return "inadequate swapchain support"
	}

	return ""
}

// selectPhysicalDevice returns the index of the device to use: forced when it
// is non-negative, otherwise the first suitable device in enumeration order.
func selectPhysicalDevice(surveys []*deviceSurvey, req deviceRequirements, forced int) (int, error) {
	if len(surveys) == 0 {
		return 0, ErrNoPhysicalDevices
	}

	if forced >= 0 {
		if forced >= len(surveys) {
			return 0, errors.Wrapf(ErrNoSuitableDevice, "physical device index %d out of range, %d devices found", forced, len(surveys))
		}

		reason := surveys[forced].unsuitableReason(req)
		if reason != "" {
			return 0, errors.Wrapf(ErrNoSuitableDevice, "device %d (%s): %s", forced, surveys[forced].Name, reason)
		}
		return forced, nil
	}

	var reasons []string
	for idx, survey := range surveys {
		reason := survey.unsuitableReason(req)
		if reason == "" {
			return idx, nil
		}
		reasons = append(reasons, fmt.Sprintf("device %d (%s): %s", idx, survey.Name, reason))
	}

	return 0, errors.Wrap(ErrNoSuitableDevice, strings.Join(reasons, "; "))
}

func newDeviceSurvey(index int, properties *core1_0.PhysicalDeviceProperties) *deviceSurvey {
	return &deviceSurvey{
		Index:         index,
		Name:          properties.DriverName,
		Type:          properties.DriverType.String(),
		APIVersion:    properties.APIVersion.String(),
		DriverVersion: properties.DriverVersion.String(),
		VendorID:      properties.VendorID,
		DeviceID:      properties.DeviceID,
		CacheUUID:     properties.PipelineCacheUUID,
		Extensions:    make(map[string]struct{}),
	}
}

func (app *Application) surveyPhysicalDevice(device core1_0.PhysicalDevice, index int) (*deviceSurvey, error) {
	properties, err := app.instanceDriver.GetPhysicalDeviceProperties(device)
	if err != nil {
		return nil, errors.Wrapf(err, "get properties of device %d", index)
	}

	survey := newDeviceSurvey(index, properties)

	for _, queueFamily := range app.instanceDriver.GetPhysicalDeviceQueueFamilyProperties(device) {
		survey.QueueFlags = append(survey.QueueFlags, queueFamily.QueueFlags)
	}

	extensions, _, err := app.instanceDriver.EnumerateDeviceExtensionProperties(device)
	if err != nil {
		return nil, errors.Wrapf(err, "enumerate extensions of device %d", index)
	}
	for name := range extensions {
		survey.Extensions[name] = struct{}{}
	}

	if !app.surface.Initialized() {
		return survey, nil
	}

	for queueFamilyIdx := range survey.QueueFlags {
		supported, _, err := app.surfaceExtension.GetPhysicalDeviceSurfaceSupport(app.surface, device, queueFamilyIdx)
		if err != nil {
			return nil, errors.Wrapf(err, "query present support of device %d family %d", index, queueFamilyIdx)
		}
		survey.PresentSupport = append(survey.PresentSupport, supported)
	}

	if len(missingNames(survey.Extensions, deviceExtensions)) == 0 {
		details, err := app.querySwapChainSupport(device)
		if err != nil {
			return nil, errors.Wrapf(err, "query swapchain support of device %d", index)
		}
		survey.Swapchain = &details
	}

	return survey, nil
}

// surveyPhysicalDevices queries every device concurrently. Physical device
// queries need no external synchronization.
func (app *Application) surveyPhysicalDevices(ctx context.Context, devices []core1_0.PhysicalDevice) ([]*deviceSurvey, error) {
	surveys := make([]*deviceSurvey, len(devices))
	group, ctx := errgroup.WithContext(ctx)

	for idx, device := range devices {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			survey, err := app.surveyPhysicalDevice(device, idx)
			if err != nil {
				return err
			}
			surveys[idx] = survey
			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return surveys, nil
}

func (app *Application) pickPhysicalDevice() error {
	physicalDevices, _, err := app.instanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return errors.Wrap(err, "enumerate physical devices")
	}

	if len(physicalDevices) == 0 {
		return ErrNoPhysicalDevices
	}

	surveys, err := app.surveyPhysicalDevices(context.Background(), physicalDevices)
	if err != nil {
		return err
	}
	app.physicalDeviceSurveys = surveys

	app.logger.Info("Enumerating found physical devices:")
	for _, survey := range surveys {
		app.logger.Info(fmt.Sprintf("Device %d: %s", survey.Index, survey.Name), "type", survey.Type, "api", survey.APIVersion)
	}

	index, err := selectPhysicalDevice(surveys, deviceRequirements{
		Surface:    app.surface.Initialized(),
		Extensions: deviceExtensions,
	}, app.config.PhysicalDeviceIndex)
	if err != nil {
		return err
	}

	app.physicalDevice = physicalDevices[index]
	app.physicalDeviceSurvey = surveys[index]
	app.queueFamilies = findQueueFamilies(surveys[index].QueueFlags, surveys[index].PresentSupport)
	app.logger.Info("Picked physical device", "index", index, "name", surveys[index].Name)

	return nil
}
