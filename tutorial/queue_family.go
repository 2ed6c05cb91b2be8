package tutorial

import (
	"github.com/vkngwrapper/core/v3/core1_0"
)

type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

func (i *QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// Unique returns the graphics family followed by the present family when it
// differs. Families that were never found are left out.
func (i *QueueFamilyIndices) Unique() []int {
	var families []int
	if i.GraphicsFamily != nil {
		families = append(families, *i.GraphicsFamily)
	}
	if i.PresentFamily != nil && (i.GraphicsFamily == nil || *i.PresentFamily != *i.GraphicsFamily) {
		families = append(families, *i.PresentFamily)
	}

	return families
}

// findQueueFamilies picks the first family with graphics support and the
// first with present support. presentSupport may be nil when there is no
// surface yet; the present family then stays unset.
func findQueueFamilies(familyFlags []core1_0.QueueFlags, presentSupport []bool) QueueFamilyIndices {
	indices := QueueFamilyIndices{}

	for queueFamilyIdx, flags := range familyFlags {
		if indices.GraphicsFamily == nil && (flags&core1_0.QueueGraphics) != 0 {
			indices.GraphicsFamily = new(int)
			*indices.GraphicsFamily = queueFamilyIdx
		}

		if indices.PresentFamily == nil && queueFamilyIdx < len(presentSupport) && presentSupport[queueFamilyIdx] {
			indices.PresentFamily = new(int)
			*indices.PresentFamily = queueFamilyIdx
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices
}
