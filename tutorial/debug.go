package tutorial

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

func (app *Application) debugMessengerOptions() (ext_debug_utils.DebugUtilsMessengerCreateInfo, error) {
	severities, err := app.config.MessageSeverities()
	if err != nil {
		return ext_debug_utils.DebugUtilsMessengerCreateInfo{}, err
	}

	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: severities,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    app.logDebug,
	}, nil
}

func (app *Application) setupDebugMessenger() error {
	if !app.validationEnabled() {
		return nil
	}

	options, err := app.debugMessengerOptions()
	if err != nil {
		return err
	}

	app.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(app.instanceDriver)
	app.debugMessenger, _, err = app.debugDriver.CreateDebugUtilsMessenger(nil, options)
	if err != nil {
		return errors.Wrap(err, "create debug messenger")
	}

	return nil
}

// severityLevel maps the most severe bit set in severity onto a log level.
func severityLevel(severity ext_debug_utils.DebugUtilsMessageSeverityFlags) slog.Level {
	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		return slog.LevelError
	case severity&ext_debug_utils.SeverityWarning != 0:
		return slog.LevelWarn
	case severity&ext_debug_utils.SeverityInfo != 0:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func (app *Application) logDebug(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	app.logger.Log(context.Background(), severityLevel(severity), data.Message, "type", msgType, "severity", severity)
	return false
}
