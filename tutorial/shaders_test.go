package tutorial

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToBytecode(t *testing.T) {
	code, err := bytesToBytecode([]byte{0x03, 0x02, 0x23, 0x07, 0x00, 0x00, 0x01, 0x00})
	require.NoError(t, err)
	assert.Equal(t, []uint32{spirvMagic, 0x00010000}, code)
}

func TestBytesToBytecodeRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"unaligned", []byte{0x03, 0x02, 0x23, 0x07, 0x00}},
		{"big endian magic", []byte{0x07, 0x23, 0x02, 0x03}},
		{"not spirv", []byte("#version 450")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bytesToBytecode(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSpirv))
		})
	}
}

func TestEmbeddedShaders(t *testing.T) {
	for _, name := range []string{"shaders/vert.spv", "shaders/frag.spv"} {
		t.Run(name, func(t *testing.T) {
			code, err := loadShaderCode(name)
			require.NoError(t, err)
			require.Greater(t, len(code), 5)

			assert.Equal(t, spirvMagic, code[0])
			// Word 3 is the id bound, which is always past every id in use.
			assert.NotZero(t, code[3])
		})
	}
}

func TestLoadShaderCodeMissing(t *testing.T) {
	_, err := loadShaderCode("shaders/geom.spv")
	assert.Error(t, err)
}
