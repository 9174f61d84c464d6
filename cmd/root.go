// Package cmd provides the root command and CLI setup for torment.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"torment.dev/pkg/torment/internal/adapter"
	"torment.dev/pkg/torment/pkg/loader"
	"torment.dev/pkg/torment/pkg/registry"
)

var fsAdapter adapter.SourceFSAdapter
var discoverer *loader.Loader

// verboseFlag switches logging to debug level.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	discoverer = loader.New(fsAdapter, registry.Default)
}

const rootLongDescription = `Torment discovers fixture modules in a directory tree and shows the
dotted module identifiers they register under.

Every .go file maps to an identifier built from the module base name and its
path below the directory; doc.go stands for its directory.`

const listLongDescription = `List the module identifiers discovered under a directory (default: .).

Identifiers are sorted by name, or by depth with --sort depth.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "torment",
		Short: "Fixture module discovery tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
