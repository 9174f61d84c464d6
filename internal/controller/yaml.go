package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"torment.dev/pkg/torment/pkg/loader"
)

type moduleDocument struct {
	Module string `yaml:"module"`
	Path   string `yaml:"path"`
}

// YAMLUI writes discovered modules as a YAML sequence.
type YAMLUI struct {
	cmd *cobra.Command
}

// NewYAMLUI creates a new YAMLUI.
func NewYAMLUI(cmd *cobra.Command) *YAMLUI {
	return &YAMLUI{cmd: cmd}
}

// DisplayModules encodes modules to the command output.
func (y *YAMLUI) DisplayModules(ctx context.Context, modules []loader.Module, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		return err
	}

	docs := make([]moduleDocument, 0, len(modules))
	for _, module := range modules {
		docs = append(docs, moduleDocument{Module: string(module.ID), Path: string(module.Path)})
	}

	encoder := yaml.NewEncoder(y.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(docs); err != nil {
		return fmt.Errorf("encode modules: %w", err)
	}

	return encoder.Close()
}
