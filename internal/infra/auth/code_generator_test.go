package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Generate(t *testing.T) {
	gen := NewCodeGenerator()

	for _, length := range []int{4, 6, 8} {
		code, err := gen.Generate(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "non-digit %q in %s", r, code)
		}
	}
}

func TestCodeGenerator_InvalidLength(t *testing.T) {
	_, err := NewCodeGenerator().Generate(0)
	assert.Error(t, err)
}
