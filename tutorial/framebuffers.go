package tutorial

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func (app *Application) createFramebuffers() error {
	for idx, imageView := range app.swapchainImageViews {
		framebuffer, _, err := app.deviceDriver.CreateFramebuffer(nil, core1_0.FramebufferCreateInfo{
			RenderPass: app.renderPass,
			Layers:     1,
			Attachments: []core1_0.ImageView{
				imageView,
			},
			Width:  app.swapchainExtent.Width,
			Height: app.swapchainExtent.Height,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to create framebuffer %d", idx)
		}

		app.swapchainFramebuffers = append(app.swapchainFramebuffers, framebuffer)
	}

	app.logger.Info("Created framebuffers", "count", len(app.swapchainFramebuffers))
	return nil
}
