package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var (
	// Version is injected at build time with -ldflags.
	Version = "dev"
	// BuildDate is injected at build time with -ldflags.
	BuildDate = ""
)

const (
	appName  = "nlogwire"
	appShort = "nlogwire assembles and inspects logging pipelines from a YAML configuration"

	configFlagName      = "config"
	configShortFlagName = "c"
	configFlagUsage     = "path of the logging configuration file"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	configPath string
}

func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.configPath, configFlagName, configShortFlagName, "logging.yaml", configFlagUsage)
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// rootCmd constructs the root command with its subcommands.
func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags.addFlags(cmd)
	cmd.AddCommand(
		describeCmd(flags),
		emitCmd(flags),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the " + appName + " version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

func versionString(version, buildDate, runtimeVersion string) string {
	out := version
	if buildDate != "" {
		out += " (" + buildDate + ")"
	}
	return out + ", Go Version: " + runtimeVersion
}
