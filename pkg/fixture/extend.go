// Package fixture holds helpers for composing fixture parameters.
package fixture

import (
	"maps"

	"torment.dev/pkg/torment/internal/calllog"
)

// Extend returns a new map holding base's entries updated with extension's.
// Neither argument is modified.
func Extend[M ~map[K]V, K comparable, V any](base, extension M) M {
	merged, _ := calllog.Run("Extend", []any{len(base), len(extension)}, func() (M, error) {
		out := make(M, len(base)+len(extension))
		maps.Copy(out, base)
		maps.Copy(out, extension)

		return out, nil
	})

	return merged
}
