package tutorial

import (
	"bytes"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything a snapshot can tune without recompiling. The zero
// value is not useful; start from DefaultConfig.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	ApplicationName string `toml:"application_name"`
	EngineName      string `toml:"engine_name"`

	EnableValidation bool     `toml:"enable_validation"`
	ValidationLayers []string `toml:"validation_layers"`
	DebugSeverities  []string `toml:"debug_severities"`

	// PhysicalDeviceIndex forces a device by enumeration index; -1 picks the
	// first suitable one.
	PhysicalDeviceIndex int  `toml:"physical_device_index"`
	PreferMailbox       bool `toml:"prefer_mailbox"`

	// PipelineCachePath is where pipeline cache data is loaded from and saved
	// to. Empty disables the on-disk cache.
	PipelineCachePath string `toml:"pipeline_cache_path"`

	LogLevel      string `toml:"log_level"`
	ExitAfterInit bool   `toml:"exit_after_init"`
}

func DefaultConfig() Config {
	return Config{
		Title:               "Explore Vulkan",
		Width:               DefaultWidth,
		Height:              DefaultHeight,
		ApplicationName:     "Explore Vulkan",
		EngineName:          "Best Engine",
		EnableValidation:    true,
		ValidationLayers:    []string{"VK_LAYER_KHRONOS_validation"},
		DebugSeverities:     []string{"error", "warning"},
		PhysicalDeviceIndex: -1,
		LogLevel:            "info",
	}
}

// LoadConfigFile reads a TOML file over the top of cfg. Keys the file does not
// mention keep their current values; unknown keys are rejected.
func LoadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}

	return errors.Wrapf(decodeConfig(data, cfg), "load config %s", path)
}

func decodeConfig(data []byte, cfg *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	err := decoder.Decode(cfg)
	if err != nil {
		return errors.Mark(err, ErrInvalidConfig)
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "window size %dx%d", c.Width, c.Height)
	}

	if c.EnableValidation && len(c.ValidationLayers) == 0 {
		return errors.Wrap(ErrInvalidConfig, "validation enabled without any validation layers")
	}

	if c.EnableValidation && len(c.DebugSeverities) == 0 {
		return errors.Wrap(ErrInvalidConfig, "validation enabled without any debug severities")
	}

	if c.PhysicalDeviceIndex < -1 {
		return errors.Wrapf(ErrInvalidConfig, "physical device index %d", c.PhysicalDeviceIndex)
	}

	_, err := c.SlogLevel()
	if err != nil {
		return err
	}

	_, err = c.MessageSeverities()
	return err
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidConfig, "log level %q", c.LogLevel)
	}

	return level, nil
}

// MessageSeverities translates DebugSeverities into the debug messenger's
// severity mask.
func (c *Config) MessageSeverities() (ext_debug_utils.DebugUtilsMessageSeverityFlags, error) {
	var severities ext_debug_utils.DebugUtilsMessageSeverityFlags

	for _, name := range c.DebugSeverities {
		switch strings.ToLower(name) {
		case "verbose":
			severities |= ext_debug_utils.SeverityVerbose
		case "info":
			severities |= ext_debug_utils.SeverityInfo
		case "warning":
			severities |= ext_debug_utils.SeverityWarning
		case "error":
			severities |= ext_debug_utils.SeverityError
		default:
			return 0, errors.Wrapf(ErrInvalidConfig, "debug severity %q", name)
		}
	}

	return severities, nil
}

func (c *Config) NewLogger() (*slog.Logger, error) {
	level, err := c.SlogLevel()
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})), nil
}
