package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"torment.dev/pkg/torment/pkg/loader"
)

// SimpleUI implements UI using cobra Command's output and a plain table.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayModules prints the discovered modules or the discovery error.
func (s *SimpleUI) DisplayModules(ctx context.Context, modules []loader.Module, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("discovery error: %v\n", err)
		return err
	}

	if len(modules) == 0 {
		s.printf("no modules found\n")
		return nil
	}

	s.printf("\n%s", renderModuleTable(modules))

	return nil
}

func renderModuleTable(modules []loader.Module) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, module := range modules {
		table.Append([]string{string(module.ID), string(module.Path)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Modules %d", len(modules)), ""})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
