package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		t.Setenv("TEST_STRING_VAR", "value")
		assert.Equal(t, "value", GetEnv("TEST_STRING_VAR", "fallback"))
	})

	t.Run("unset falls back", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnv("TEST_STRING_MISSING", "fallback"))
	})

	t.Run("empty counts as unset", func(t *testing.T) {
		t.Setenv("TEST_STRING_EMPTY", "")
		assert.Equal(t, "fallback", GetEnv("TEST_STRING_EMPTY", "fallback"))
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT_VAR", "42")
	assert.Equal(t, 42, GetEnvInt("TEST_INT_VAR", 7))
	assert.Equal(t, 7, GetEnvInt("TEST_INT_MISSING", 7))

	t.Setenv("TEST_INT_BAD", "forty-two")
	assert.Equal(t, 7, GetEnvInt("TEST_INT_BAD", 7))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR_VAR", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DUR_VAR", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("TEST_DUR_MISSING", time.Second))

	t.Setenv("TEST_DUR_BAD", "soon")
	assert.Equal(t, time.Second, GetEnvDuration("TEST_DUR_BAD", time.Second))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "true")
	assert.True(t, GetEnvBool("TEST_BOOL_VAR", false))

	t.Setenv("TEST_BOOL_ZERO", "0")
	assert.False(t, GetEnvBool("TEST_BOOL_ZERO", true))

	assert.True(t, GetEnvBool("TEST_BOOL_MISSING", true))

	t.Setenv("TEST_BOOL_BAD", "yep")
	assert.False(t, GetEnvBool("TEST_BOOL_BAD", false))
}
