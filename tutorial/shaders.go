package tutorial

import (
	"embed"
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

//go:embed shaders
var fileSystem embed.FS

const spirvMagic uint32 = 0x07230203

var ErrInvalidSpirv = errors.New("invalid SPIR-V bytecode")

// bytesToBytecode reinterprets little-endian SPIR-V as the word slice
// vkCreateShaderModule expects.
func bytesToBytecode(b []byte) ([]uint32, error) {
	if len(b) == 0 || len(b)%4 != 0 {
		return nil, errors.Wrapf(ErrInvalidSpirv, "length %d is not a positive multiple of 4", len(b))
	}

	byteCode := make([]uint32, len(b)/4)
	for i := range byteCode {
		byteCode[i] = binary.LittleEndian.Uint32(b[i*4:])
	}

	if byteCode[0] != spirvMagic {
		return nil, errors.Wrapf(ErrInvalidSpirv, "bad magic number %#08x", byteCode[0])
	}

	return byteCode, nil
}

func loadShaderCode(name string) ([]uint32, error) {
	shaderBytes, err := fileSystem.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "read shader %s", name)
	}

	code, err := bytesToBytecode(shaderBytes)
	if err != nil {
		return nil, errors.Wrapf(err, "shader %s", name)
	}

	return code, nil
}

func (app *Application) createShaderModule(name string) (core1_0.ShaderModule, error) {
	code, err := loadShaderCode(name)
	if err != nil {
		return core1_0.ShaderModule{}, err
	}

	shaderModule, _, err := app.deviceDriver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: code,
	})
	if err != nil {
		return core1_0.ShaderModule{}, errors.Wrapf(err, "failed to create shader module %s", name)
	}

	app.logger.Debug("Created shader module", "name", name, "words", len(code))
	return shaderModule, nil
}

func (app *Application) createShaderModules() error {
	var err error
	app.vertShader, err = app.createShaderModule("shaders/vert.spv")
	if err != nil {
		return err
	}

	app.fragShader, err = app.createShaderModule("shaders/frag.spv")
	if err != nil {
		return err
	}

	app.logger.Info("Created shader modules")
	return nil
}

// destroyShaderModules releases the modules once nothing else needs them.
// Safe to call more than once.
func (app *Application) destroyShaderModules() {
	if app.fragShader.Initialized() {
		app.deviceDriver.DestroyShaderModule(app.fragShader, nil)
		app.fragShader = core1_0.ShaderModule{}
	}

	if app.vertShader.Initialized() {
		app.deviceDriver.DestroyShaderModule(app.vertShader, nil)
		app.vertShader = core1_0.ShaderModule{}
	}
}
