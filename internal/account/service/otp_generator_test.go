package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtpGeneratorRange(t *testing.T) {
	generator := NewOtpGenerator()

	for i := 0; i < 1000; i++ {
		code, err := generator.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestOtpGeneratorNotConstant(t *testing.T) {
	generator := NewOtpGenerator()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := generator.Generate()
		require.NoError(t, err)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1)
}
