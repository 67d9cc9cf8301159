package tools

import (
	"encoding/json"
	"math"

	"github.com/bnema/maxential-thinking/internal/domain"
)

// arguments is the loosely typed input of a tool call. Absent keys and JSON null
// decode to zero values; a present value of the wrong JSON type is a validation error.
type arguments map[string]any

func (a arguments) string(name string) (string, error) {
	raw, ok := a.lookup(name)
	if !ok {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", domain.Validationf("invalid %s: must be a string", name)
	}
	return value, nil
}

func (a arguments) bool(name string) (bool, error) {
	raw, ok := a.lookup(name)
	if !ok {
		return false, nil
	}
	value, ok := raw.(bool)
	if !ok {
		return false, domain.Validationf("invalid %s: must be a boolean", name)
	}
	return value, nil
}

func (a arguments) int(name string) (int, error) {
	raw, ok := a.lookup(name)
	if !ok {
		return 0, nil
	}

	var value float64
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		value = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, domain.Validationf("invalid %s: must be an integer", name)
		}
		value = parsed
	default:
		return 0, domain.Validationf("invalid %s: must be an integer", name)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, domain.Validationf("invalid %s: must be an integer", name)
	}
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0, domain.Validationf("invalid %s: out of range", name)
	}
	return int(value), nil
}

func (a arguments) strings(name string) ([]string, error) {
	raw, ok := a.lookup(name)
	if !ok {
		return nil, nil
	}

	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, domain.Validationf("invalid %s: must be an array of strings", name)
			}
			values = append(values, s)
		}
		return values, nil
	default:
		return nil, domain.Validationf("invalid %s: must be an array of strings", name)
	}
}

func (a arguments) lookup(name string) (any, bool) {
	raw, ok := a[name]
	if !ok || raw == nil {
		return nil, false
	}
	return raw, true
}
