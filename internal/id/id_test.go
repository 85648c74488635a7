package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Uniqueness(t *testing.T) {
	ids := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		id, err := Generate("test")
		require.NoError(t, err)
		assert.False(t, ids[id], "ID should be unique: %s", id)
		ids[id] = true
	}

	assert.Len(t, ids, count)
}

func TestGenerate_Format(t *testing.T) {
	id, err := Generate("hh")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "hh-"))
	// NanoID default is 21 characters
	nanoidPart := strings.TrimPrefix(id, "hh-")
	assert.Len(t, nanoidPart, 21)

	for _, char := range nanoidPart {
		assert.True(t,
			(char >= 'A' && char <= 'Z') ||
				(char >= 'a' && char <= 'z') ||
				(char >= '0' && char <= '9') ||
				char == '_' || char == '-',
			"Character %c should be URL-safe", char)
	}
}

func TestNewHousehold(t *testing.T) {
	id, err := NewHousehold()
	require.NoError(t, err)
	assert.True(t, IsHousehold(id), id)
}

func TestIsHousehold(t *testing.T) {
	assert.True(t, IsHousehold("hh-V1StGXR8_Z5jdHi6B-myT"))
	assert.False(t, IsHousehold("hh-short"))
	assert.False(t, IsHousehold("lib-V1StGXR8_Z5jdHi6B-myT"))
	assert.False(t, IsHousehold(""))
}

func BenchmarkNewHousehold(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = NewHousehold()
	}
}
