// Package controller provides output adapters for displaying discovery results.
package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"torment.dev/pkg/torment/pkg/loader"
)

// Output formats accepted by NewUI.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// UI defines the interface for displaying discovered modules.
// Implementations can use different output methods (table, yaml).
type UI interface {
	DisplayModules(ctx context.Context, modules []loader.Module, err error) error
}

// NewUI returns the UI for the given output format.
func NewUI(cmd *cobra.Command, format string) (UI, error) {
	switch format {
	case "", FormatTable:
		return NewSimpleUI(cmd), nil
	case FormatYAML:
		return NewYAMLUI(cmd), nil
	}

	return nil, fmt.Errorf("unsupported output format %q", format)
}
