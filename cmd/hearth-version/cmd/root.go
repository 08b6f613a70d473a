package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/hearth-version/internal/config"
	"github.com/oshokin/hearth-version/internal/logger"
	"github.com/oshokin/hearth-version/internal/service/macros"
	"github.com/oshokin/hearth-version/internal/version"
)

var (
	// rootCmd prints the documentation version.
	rootCmd = &cobra.Command{
		Use:   "hearth-version",
		Short: "Print the version shown in the Hearth documentation.",
		Long: `Resolve the version string displayed in the generated documentation.

The version comes from "git describe --tags" in the working tree. When that
fails, extra.local.tag from the site configuration is used, and when that is
missing too the literal "hearth_version" is printed. Describe output that is
past a tag gets a -SNAPSHOT suffix.

Settings can also be provided as HEARTH_CONFIG, HEARTH_DIR and HEARTH_LOG_LEVEL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, "")
		},
	}

	// renderCmd expands a template file with the hearth_version function.
	renderCmd = &cobra.Command{
		Use:   "render <template>",
		Short: "Render a text/template file with the hearth_version function.",
		Long: `Render a Go text/template file to standard output.

The resolved version is available as {{ hearth_version }}.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}
)

// Execute runs the hearth-version CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, templatePath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	settings, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	if level, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		logger.SetLevel(level)
	}

	return macros.Run(ctx, &macros.Options{
		Settings:     settings,
		TemplatePath: templatePath,
		Output:       cmd.OutOrStdout(),
	})
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", config.DefaultDocumentFilename, "path to the site configuration (mkdocs.yml)")
	flags.StringP("dir", "C", "", "directory to run git in")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(renderCmd)
}
