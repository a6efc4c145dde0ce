package pasquans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_CloneIsDeep(t *testing.T) {
	original := Options{
		"tolerance": 1e-9,
		"nested":    map[string]any{"retries": 3},
		"tags":      []any{"fast", "gpu"},
		"weights":   []float64{0.25, 0.75},
	}
	clone := original.Clone()

	clone["tolerance"] = 1.0
	clone["nested"].(map[string]any)["retries"] = 99
	clone["tags"].([]any)[0] = "slow"
	clone["weights"].([]float64)[0] = 0.0

	assert.Equal(t, 1e-9, original["tolerance"])
	assert.Equal(t, 3, original["nested"].(map[string]any)["retries"])
	assert.Equal(t, "fast", original["tags"].([]any)[0])
	assert.Equal(t, 0.25, original["weights"].([]float64)[0])
}

func TestOptions_CloneNil(t *testing.T) {
	var opts Options
	assert.Nil(t, opts.Clone())
}

func TestOptions_CloneNestedOptions(t *testing.T) {
	original := Options{"inner": Options{"key": "value"}}
	clone := original.Clone()
	clone["inner"].(Options)["key"] = "mutated"
	assert.Equal(t, "value", original["inner"].(Options)["key"])
}

func TestOptions_Getters(t *testing.T) {
	opts := Options{
		"unit":    "MHz",
		"shots":   100,
		"scale":   2.5,
		"enabled": true,
	}

	assert.Equal(t, "MHz", opts.GetString("unit", "Hz"))
	assert.Equal(t, "Hz", opts.GetString("missing", "Hz"))
	assert.Equal(t, "Hz", opts.GetString("shots", "Hz"), "wrong type falls back to the default")

	assert.Equal(t, 100.0, opts.GetFloat("shots", 0), "ints arrive from YAML and still read as floats")
	assert.Equal(t, 2.5, opts.GetFloat("scale", 0))
	assert.Equal(t, 7.0, opts.GetFloat("missing", 7))

	assert.True(t, opts.GetBool("enabled", false))
	assert.False(t, opts.GetBool("missing", false))

	var nilOpts Options
	assert.Equal(t, "Hz", nilOpts.GetString("unit", "Hz"), "getters are nil-safe")
}
