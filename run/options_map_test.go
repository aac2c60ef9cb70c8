package run

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromMap_AllKeys(t *testing.T) {
	opts, err := OptionsFromMap(map[string]any{
		"description":                 "building the thing",
		"success":                     []any{0, 3},
		"flush_before_subprocess":     false,
		"max_output_size":             4096,
		"retry":                       2,
		"retry_initial_sleep_seconds": 1.5,
		"retry_backoff":               3.0,
		"env_overrides":               map[string]any{"FOO": "bar"},
		"cwd":                         "/tmp",
		"encoding":                    "latin1",
		"errors":                      "ignore",
	})
	require.NoError(t, err)

	assert.Equal(t, "building the thing", opts.Description)
	assert.True(t, opts.Success.Contains(0))
	assert.True(t, opts.Success.Contains(3))
	assert.False(t, opts.Success.Contains(1))
	assert.True(t, opts.DisableFlush)
	assert.Equal(t, 4096, opts.MaxOutputSize)
	assert.Equal(t, 2, opts.Retries)
	assert.Equal(t, 1500*time.Millisecond, opts.RetryInitialSleep)
	assert.Equal(t, 3.0, opts.RetryBackoff)
	assert.Equal(t, map[string]string{"FOO": "bar"}, opts.EnvOverrides)
	assert.Equal(t, "/tmp", opts.Dir)
	assert.Equal(t, "latin1", opts.Encoding)
	assert.Equal(t, "ignore", opts.EncodingErrors)
}

func TestOptionsFromMap_Empty(t *testing.T) {
	opts, err := OptionsFromMap(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, Options{}, opts)
}

func TestOptionsFromMap_UnknownKey(t *testing.T) {
	_, err := OptionsFromMap(map[string]any{"timeout": 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOptions)
	assert.Contains(t, err.Error(), "timeout")
}

func TestOptionsFromMap_WrongType(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]any
	}{
		{"description not string", map[string]any{"description": 7}},
		{"retry not integer", map[string]any{"retry": "twice"}},
		{"retry fractional", map[string]any{"retry": 1.5}},
		{"flush not bool", map[string]any{"flush_before_subprocess": "yes"}},
		{"success bad string", map[string]any{"success": "all"}},
		{"success bad element", map[string]any{"success": []any{0, "x"}}},
		{"env values not strings", map[string]any{"env_overrides": map[string]any{"A": 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OptionsFromMap(tt.m)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestOptionsFromMap_SuccessAny(t *testing.T) {
	opts, err := OptionsFromMap(map[string]any{"success": "any"})
	require.NoError(t, err)
	assert.True(t, opts.Success.Contains(170))
}

func TestOptionsFromMap_IntegralFloat(t *testing.T) {
	// JSON decoding yields float64 for every number.
	opts, err := OptionsFromMap(map[string]any{"retry": float64(3), "max_output_size": float64(100)})
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Retries)
	assert.Equal(t, 100, opts.MaxOutputSize)
}

func TestOptionsFromMap_ValidatesResult(t *testing.T) {
	_, err := OptionsFromMap(map[string]any{"max_output_size": -5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestForceOptions(t *testing.T) {
	out, err := ForceOptions(
		map[string]any{"retry": 2},
		map[string]any{"success": "any"},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, out["retry"])
	assert.Equal(t, "any", out["success"])
}

func TestForceOptions_Conflict(t *testing.T) {
	_, err := ForceOptions(
		map[string]any{"success": []any{0}},
		map[string]any{"success": "any"},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOptions)
	assert.Contains(t, err.Error(), "success")
}

func TestFillDefaults(t *testing.T) {
	out := FillDefaults(
		map[string]any{"retry": 5},
		map[string]any{"retry": 1, "retry_backoff": 3.0},
	)
	// Caller-supplied values win; missing keys come from defaults.
	assert.Equal(t, 5, out["retry"])
	assert.Equal(t, 3.0, out["retry_backoff"])
}
