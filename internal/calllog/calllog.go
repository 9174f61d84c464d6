// Package calllog wraps function calls with start, stop and failure log lines.
package calllog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Run calls fn between a "starting" and a "stopping" info line. A failing
// call is also logged at error level. fn's results are returned unchanged.
func Run[T any](name string, args []any, fn func() (T, error)) (T, error) {
	call := format(name, args)

	slog.Info("starting", "call", call)
	defer slog.Info("stopping", "call", call)

	result, err := fn()
	if err != nil {
		slog.Error("exception", "call", call, "error", err)
	}

	return result, err
}

// Do is Run for calls without a result.
func Do(name string, args []any, fn func() error) error {
	_, err := Run(name, args, func() (struct{}, error) {
		return struct{}{}, fn()
	})

	return err
}

func format(name string, args []any) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}

	return name + "(" + strings.Join(parts, ", ") + ")"
}
