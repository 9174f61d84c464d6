package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"torment.dev/pkg/torment/internal/controller"
	m "torment.dev/pkg/torment/internal/model"
	"torment.dev/pkg/torment/pkg/loader"
)

var listBaseFlag string
var listSortFlag string
var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [directory]",
		Short: "List discovered module identifiers",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			directory := "."
			if len(args) == 1 {
				directory = args[0]
			}

			info, err := fsAdapter.FileInfo(ctx, m.Path(directory))
			if err != nil {
				return fmt.Errorf("read directory %s: %w", directory, err)
			}

			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", directory)
			}

			opts, err := discoveryOptions()
			if err != nil {
				return err
			}

			ui, err := controller.NewUI(cmd, viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			modules, err := discoverer.Discover(ctx, viper.GetString(baseConfigKey), directory, opts...)

			return ui.DisplayModules(ctx, modules, err)
		},
	}

	configureListFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func configureListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&listBaseFlag, baseFlagName, "b", viper.GetString(baseConfigKey), "module name prefix for discovered identifiers")
	bindFlagToConfig(cmd.Flags().Lookup(baseFlagName), baseConfigKey)

	cmd.Flags().StringVar(&listSortFlag, sortFlagName, viper.GetString(sortConfigKey), "identifier order: name or depth")
	bindFlagToConfig(cmd.Flags().Lookup(sortFlagName), sortConfigKey)

	cmd.Flags().StringVarP(&listFormatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format: table or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)
}

func discoveryOptions() ([]loader.Option, error) {
	opts := []loader.Option{
		loader.WithExtension(viper.GetString(extensionConfigKey)),
		loader.WithPackageMarker(viper.GetString(markerConfigKey)),
	}

	switch order := viper.GetString(sortConfigKey); order {
	case "", sortByName:
	case sortByDepth:
		opts = append(opts, loader.WithSort(loader.ByDepth))
	default:
		return nil, fmt.Errorf("unsupported sort order %q", order)
	}

	return opts, nil
}
