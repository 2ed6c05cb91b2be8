package tutorial

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func TestApplicationReport(t *testing.T) {
	first := goodSurvey("Integrated GPU")
	first.Index = 0
	first.Extensions["VK_KHR_maintenance1"] = struct{}{}
	second := goodSurvey("Discrete GPU")
	second.Index = 1
	second.CacheUUID = testCacheUUID

	app := &Application{
		availableLayers:       []string{"VK_LAYER_KHRONOS_validation"},
		availableExtensions:   []string{"VK_EXT_debug_utils", "VK_KHR_surface"},
		physicalDeviceSurveys: []*deviceSurvey{first, second},
		physicalDeviceSurvey:  second,
	}

	report := app.Report()
	require.Len(t, report.Devices, 2)
	assert.Equal(t, 1, report.Selected)
	assert.Equal(t, []string{"VK_KHR_maintenance1", "VK_KHR_swapchain"}, report.Devices[0].Extensions)
	assert.Equal(t, testCacheUUID.String(), report.Devices[1].CacheUUID)
}

func TestApplicationReportWithoutSuitableDevice(t *testing.T) {
	computeOnly := goodSurvey("Compute Accelerator")
	computeOnly.Index = 0
	computeOnly.QueueFlags = []core1_0.QueueFlags{core1_0.QueueCompute}
	noSwapchain := goodSurvey("Headless GPU")
	noSwapchain.Index = 1
	noSwapchain.Extensions = map[string]struct{}{}

	surveys := []*deviceSurvey{computeOnly, noSwapchain}
	_, err := selectPhysicalDevice(surveys, surfaceRequirements, -1)
	require.True(t, errors.Is(err, ErrNoSuitableDevice))

	app := &Application{
		availableExtensions:   []string{"VK_KHR_surface"},
		physicalDeviceSurveys: surveys,
	}

	report := app.Report()
	assert.Equal(t, -1, report.Selected)
	require.Len(t, report.Devices, 2)

	rendered := report.Render()
	assert.Contains(t, rendered, "Compute Accelerator")
	assert.Contains(t, rendered, "Headless GPU")
	assert.Contains(t, rendered, "DEVICE 1")
	assert.NotContains(t, rendered, "(selected)")
}

func TestReportRender(t *testing.T) {
	report := Report{
		Layers:     []string{"VK_LAYER_KHRONOS_validation"},
		Extensions: []string{"VK_KHR_surface"},
		Devices: []DeviceReport{
			{
				Name:       "Test GPU",
				VendorID:   0x10de,
				Extensions: []string{"VK_KHR_swapchain"},
			},
		},
		Selected: 0,
	}

	rendered := report.Render()
	for _, expected := range []string{
		"VULKAN INSTANCE AND DEVICES",
		"INSTANCE LAYERS",
		"VK_LAYER_KHRONOS_validation",
		"VK_KHR_surface",
		"DEVICE 0 (selected)",
		"Test GPU",
		"0x10de",
		"VK_KHR_swapchain",
	} {
		assert.Contains(t, rendered, expected)
	}
}

func TestReportRenderEmpty(t *testing.T) {
	rendered := Report{Selected: -1}.Render()
	assert.Contains(t, rendered, "INSTANCE EXTENSIONS")
	assert.Equal(t, 2, strings.Count(rendered, "none"))
	assert.NotContains(t, rendered, "DEVICE 0")
}
