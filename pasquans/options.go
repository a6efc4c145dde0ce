package pasquans

// Options carries free-form backend configuration: the knobs a backend
// accepts beyond the physical inputs, e.g. working units or numeric
// tolerances. Keys and value types are backend-defined.
type Options map[string]any

// Clone deep-copies the options so a backend can capture them at
// construction without sharing storage with the caller. Nested maps and
// slices are copied; other values are assumed immutable.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case Options:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []float64:
		return append([]float64(nil), t...)
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// GetString returns the string under key, or def when the key is absent
// or holds a non-string.
func (o Options) GetString(key, def string) string {
	if v, ok := o[key].(string); ok {
		return v
	}
	return def
}

// GetFloat returns the number under key, or def when the key is absent
// or holds a non-number. YAML decodes whole numbers as int, so both
// arrive here.
func (o Options) GetFloat(key string, def float64) float64 {
	switch v := o[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

// GetBool returns the bool under key, or def when the key is absent or
// holds a non-bool.
func (o Options) GetBool(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return def
}
