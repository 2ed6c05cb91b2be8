package tutorial

import (
	"encoding/binary"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/vkngwrapper/core/v3/core1_0"
)

const (
	pipelineCacheHeaderSize       = 32
	pipelineCacheHeaderVersionOne = 1
)

var ErrStalePipelineCache = errors.New("pipeline cache does not match this device")

type pipelineCacheHeader struct {
	Length    uint32
	Version   uint32
	VendorID  uint32
	DeviceID  uint32
	CacheUUID uuid.UUID
}

func parsePipelineCacheHeader(data []byte) (pipelineCacheHeader, error) {
	var header pipelineCacheHeader
	if len(data) < pipelineCacheHeaderSize {
		return header, errors.Wrapf(ErrStalePipelineCache, "%d bytes is too short for a header", len(data))
	}

	header.Length = binary.LittleEndian.Uint32(data[0:4])
	header.Version = binary.LittleEndian.Uint32(data[4:8])
	header.VendorID = binary.LittleEndian.Uint32(data[8:12])
	header.DeviceID = binary.LittleEndian.Uint32(data[12:16])

	var err error
	header.CacheUUID, err = uuid.FromBytes(data[16:32])
	if err != nil {
		return header, errors.Mark(errors.Wrap(err, "read cache uuid"), ErrStalePipelineCache)
	}

	return header, nil
}

// check reports why cache data with this header can't be fed to the device
// described by survey.
func (h pipelineCacheHeader) check(survey *deviceSurvey) error {
	switch {
	case h.Length != pipelineCacheHeaderSize:
		return errors.Wrapf(ErrStalePipelineCache, "header length %d", h.Length)
	case h.Version != pipelineCacheHeaderVersionOne:
		return errors.Wrapf(ErrStalePipelineCache, "header version %d", h.Version)
	case h.VendorID != survey.VendorID:
		return errors.Wrapf(ErrStalePipelineCache, "vendor %#x, device has %#x", h.VendorID, survey.VendorID)
	case h.DeviceID != survey.DeviceID:
		return errors.Wrapf(ErrStalePipelineCache, "device %#x, device has %#x", h.DeviceID, survey.DeviceID)
	case h.CacheUUID != survey.CacheUUID:
		return errors.Wrapf(ErrStalePipelineCache, "cache uuid %s, device has %s", h.CacheUUID, survey.CacheUUID)
	}

	return nil
}

// loadPipelineCacheData returns the cached data at path when it was written
// by the same device and driver. Anything else is deleted so the next save
// starts clean. A missing file is not an error.
func loadPipelineCacheData(path string, survey *deviceSurvey, logger *slog.Logger) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("No pipeline cache found", "path", path)
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "read pipeline cache %s", path)
	}

	header, err := parsePipelineCacheHeader(data)
	if err == nil {
		err = header.check(survey)
	}
	if err != nil {
		logger.Warn("Deleting stale pipeline cache", "path", path, "reason", err)
		removeErr := os.Remove(path)
		if removeErr != nil {
			logger.Warn("Failed to delete stale pipeline cache", "path", path, "error", removeErr)
		}
		return nil, nil
	}

	logger.Info("Loaded pipeline cache", "path", path, "bytes", len(data))
	return data, nil
}

func (app *Application) createPipelineCache() error {
	path := app.config.PipelineCachePath
	if path == "" {
		return nil
	}

	initialData, err := loadPipelineCacheData(path, app.physicalDeviceSurvey, app.logger)
	if err != nil {
		return err
	}

	app.pipelineCache, _, err = app.deviceDriver.CreatePipelineCache(nil, core1_0.PipelineCacheCreateInfo{
		InitialData: initialData,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create pipeline cache")
	}

	return nil
}

func (app *Application) savePipelineCache() error {
	path := app.config.PipelineCachePath
	if path == "" {
		return nil
	}

	data, _, err := app.deviceDriver.GetPipelineCacheData(app.pipelineCache)
	if err != nil {
		return errors.Wrap(err, "get pipeline cache data")
	}

	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return errors.Wrapf(err, "write pipeline cache %s", path)
	}

	app.logger.Info("Saved pipeline cache", "path", path, "bytes", len(data))
	return nil
}
