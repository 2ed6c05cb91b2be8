package tutorial

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func (app *Application) createImageViews() error {
	for idx, image := range app.swapchainImages {
		view, _, err := app.deviceDriver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			Image:    image,
			ViewType: core1_0.ImageViewType2D,
			Format:   app.swapchainImageFormat,
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		})
		if err != nil {
			return errors.Wrapf(err, "failed to create image view %d", idx)
		}

		app.swapchainImageViews = append(app.swapchainImageViews, view)
	}

	app.logger.Info("Created image views", "count", len(app.swapchainImageViews))
	return nil
}
