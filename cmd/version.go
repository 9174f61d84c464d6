package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the torment build version and the Go version it was built with.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersions(debug.ReadBuildInfo())

			cmd.Println("torment version\t", version)
			cmd.Println("go version\t", goVersion)
		},
	}
}

// buildVersions extracts the module and toolchain versions from build info.
func buildVersions(info *debug.BuildInfo, ok bool) (string, string) {
	if !ok || info == nil {
		return unknownVersion, unknownVersion
	}

	version := info.Main.Version
	if version == "" {
		version = unknownVersion
	}

	return version, info.GoVersion
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
