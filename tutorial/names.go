package tutorial

import (
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrMissingLayers     = errors.New("requested vulkan layers are not available")
	ErrMissingExtensions = errors.New("requested vulkan extensions are not available")
)

// missingNames returns every requested name absent from available, in
// request order.
func missingNames[T any](available map[string]T, requested []string) []string {
	var missing []string
	for _, name := range requested {
		_, ok := available[name]
		if !ok {
			missing = append(missing, name)
		}
	}

	return missing
}

func sortedNames[T any](available map[string]T) []string {
	return slices.Sorted(maps.Keys(available))
}

func checkLayerSupport[T any](available map[string]T, requested []string) error {
	missing := missingNames(available, requested)
	if len(missing) > 0 {
		return errors.Wrapf(ErrMissingLayers, "missing %s - install the LunarG Vulkan SDK", strings.Join(missing, ", "))
	}

	return nil
}

func checkExtensionSupport[T any](available map[string]T, requested []string) error {
	missing := missingNames(available, requested)
	if len(missing) > 0 {
		return errors.Wrapf(ErrMissingExtensions, "missing %s", strings.Join(missing, ", "))
	}

	return nil
}
