package tutorial

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

func TestChooseSwapSurfaceFormatTakesFirst(t *testing.T) {
	formats := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatR8G8B8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	format, err := chooseSwapSurfaceFormat(formats)
	require.NoError(t, err)
	assert.Equal(t, formats[0], format)
}

func TestChooseSwapSurfaceFormatEmpty(t *testing.T) {
	_, err := chooseSwapSurfaceFormat(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSurfaceFormats))
}

func TestChooseSwapPresentMode(t *testing.T) {
	both := []khr_surface.PresentMode{khr_surface.PresentModeFIFO, khr_surface.PresentModeMailbox}
	fifoOnly := []khr_surface.PresentMode{khr_surface.PresentModeFIFO}

	assert.Equal(t, khr_surface.PresentModeFIFO, chooseSwapPresentMode(both, false))
	assert.Equal(t, khr_surface.PresentModeMailbox, chooseSwapPresentMode(both, true))
	assert.Equal(t, khr_surface.PresentModeFIFO, chooseSwapPresentMode(fifoOnly, true))
	assert.Equal(t, khr_surface.PresentModeFIFO, chooseSwapPresentMode(nil, true))
}

func extentCapabilities(current core1_0.Extent2D) *khr_surface.SurfaceCapabilities {
	return &khr_surface.SurfaceCapabilities{
		CurrentExtent:  current,
		MinImageExtent: core1_0.Extent2D{Width: 100, Height: 100},
		MaxImageExtent: core1_0.Extent2D{Width: 1000, Height: 700},
	}
}

// undefinedExtent is what the surface reports when the window manager lets
// the swapchain pick its size: both dimensions read back as 0xFFFFFFFF.
var undefinedExtent = core1_0.Extent2D{Width: int(uint32(math.MaxUint32)), Height: int(uint32(math.MaxUint32))}

func TestChooseSwapExtent(t *testing.T) {
	testCases := []struct {
		name          string
		current       core1_0.Extent2D
		width, height int
		expected      core1_0.Extent2D
	}{
		{
			name:     "current extent wins",
			current:  core1_0.Extent2D{Width: 640, Height: 480},
			width:    800,
			height:   600,
			expected: core1_0.Extent2D{Width: 640, Height: 480},
		},
		{
			name:     "undefined uses drawable size",
			current:  undefinedExtent,
			width:    800,
			height:   600,
			expected: core1_0.Extent2D{Width: 800, Height: 600},
		},
		{
			name:     "clamped to max",
			current:  undefinedExtent,
			width:    4000,
			height:   3000,
			expected: core1_0.Extent2D{Width: 1000, Height: 700},
		},
		{
			name:     "zero current extent is kept",
			current:  core1_0.Extent2D{Width: 0, Height: 0},
			width:    800,
			height:   600,
			expected: core1_0.Extent2D{Width: 0, Height: 0},
		},
		{
			name:     "clamped to min",
			current:  undefinedExtent,
			width:    10,
			height:   0,
			expected: core1_0.Extent2D{Width: 100, Height: 100},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, chooseSwapExtent(extentCapabilities(tc.current), tc.width, tc.height))
		})
	}
}

func TestSwapImageCount(t *testing.T) {
	assert.Equal(t, 3, swapImageCount(&khr_surface.SurfaceCapabilities{MinImageCount: 2, MaxImageCount: 0}))
	assert.Equal(t, 3, swapImageCount(&khr_surface.SurfaceCapabilities{MinImageCount: 2, MaxImageCount: 8}))
	assert.Equal(t, 2, swapImageCount(&khr_surface.SurfaceCapabilities{MinImageCount: 2, MaxImageCount: 2}))
}

func TestSwapSharingMode(t *testing.T) {
	zero, one := 0, 1

	mode, families := swapSharingMode(QueueFamilyIndices{GraphicsFamily: &zero, PresentFamily: &zero})
	assert.Equal(t, core1_0.SharingModeExclusive, mode)
	assert.Empty(t, families)

	mode, families = swapSharingMode(QueueFamilyIndices{GraphicsFamily: &zero, PresentFamily: &one})
	assert.Equal(t, core1_0.SharingModeConcurrent, mode)
	assert.Equal(t, []int{0, 1}, families)
}
