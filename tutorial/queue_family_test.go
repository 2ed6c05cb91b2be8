package tutorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func TestFindQueueFamilies(t *testing.T) {
	testCases := []struct {
		name     string
		flags    []core1_0.QueueFlags
		present  []bool
		graphics *int
		presents *int
	}{
		{
			name:     "one family does everything",
			flags:    []core1_0.QueueFlags{core1_0.QueueGraphics | core1_0.QueueCompute},
			present:  []bool{true},
			graphics: ptr(0),
			presents: ptr(0),
		},
		{
			name:     "split families",
			flags:    []core1_0.QueueFlags{core1_0.QueueCompute, core1_0.QueueGraphics, core1_0.QueueTransfer},
			present:  []bool{false, false, true},
			graphics: ptr(1),
			presents: ptr(2),
		},
		{
			name:     "first match wins",
			flags:    []core1_0.QueueFlags{core1_0.QueueGraphics, core1_0.QueueGraphics},
			present:  []bool{false, true},
			graphics: ptr(0),
			presents: ptr(1),
		},
		{
			name:     "no surface",
			flags:    []core1_0.QueueFlags{core1_0.QueueTransfer, core1_0.QueueGraphics},
			present:  nil,
			graphics: ptr(1),
		},
		{
			name:  "no graphics",
			flags: []core1_0.QueueFlags{core1_0.QueueCompute},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			indices := findQueueFamilies(tc.flags, tc.present)
			assert.Equal(t, tc.graphics, indices.GraphicsFamily)
			assert.Equal(t, tc.presents, indices.PresentFamily)
			assert.Equal(t, tc.graphics != nil && tc.presents != nil, indices.IsComplete())
		})
	}
}

func TestQueueFamilyIndicesUnique(t *testing.T) {
	assert.Empty(t, (&QueueFamilyIndices{}).Unique())
	assert.Equal(t, []int{2}, (&QueueFamilyIndices{GraphicsFamily: ptr(2)}).Unique())
	assert.Equal(t, []int{2}, (&QueueFamilyIndices{GraphicsFamily: ptr(2), PresentFamily: ptr(2)}).Unique())
	assert.Equal(t, []int{2, 0}, (&QueueFamilyIndices{GraphicsFamily: ptr(2), PresentFamily: ptr(0)}).Unique())
}

func TestDeviceExtensionNames(t *testing.T) {
	plain := map[string]struct{}{"VK_KHR_swapchain": {}}
	portable := map[string]struct{}{"VK_KHR_swapchain": {}, "VK_KHR_portability_subset": {}}

	assert.Empty(t, deviceExtensionNames(plain, false))
	assert.Equal(t, []string{"VK_KHR_swapchain"}, deviceExtensionNames(plain, true))

	names := deviceExtensionNames(portable, true)
	require.Len(t, names, 2)
	assert.Equal(t, []string{"VK_KHR_swapchain", "VK_KHR_portability_subset"}, names)
	assert.Equal(t, []string{"VK_KHR_portability_subset"}, deviceExtensionNames(portable, false))
}

func ptr(v int) *int {
	return &v
}
