package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool(uint64(1)))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("1"))
	assert.False(t, ToBool(false))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(nil))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "work", ToString("work"))
	assert.Equal(t, "work", ToString([]byte("work")))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "", ToString(nil))
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 42, ToInt(42))
	assert.Equal(t, 42, ToInt(uint64(42)))
	assert.Equal(t, 42, ToInt("42"))
	assert.Equal(t, 42, ToInt(42.9))
	assert.Equal(t, 0, ToInt(nil))
}
