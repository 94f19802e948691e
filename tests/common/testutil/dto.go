//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into its JSON object form and applies the
// mutations, so tests can send bodies the typed DTO cannot express.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value, or drops the key when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Nested applies mutations to the object under key, creating it if absent.
func Nested(key string, muts ...func(map[string]any)) func(m map[string]any) {
	return func(m map[string]any) {
		inner, ok := m[key].(map[string]any)
		if !ok {
			inner = map[string]any{}
		}
		for _, f := range muts {
			f(inner)
		}
		m[key] = inner
	}
}
