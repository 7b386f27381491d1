// Package cli implements the latent command-line interface.
//
// The CLI exists to demonstrate and debug computation graphs: the demo
// command builds a small pipeline, evaluates it, mutates a dependency to
// show selective invalidation, and can export the dependency graph as DOT,
// SVG, or JSON.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. User defaults (export format, color) can
// be set in ~/.config/latent/config.toml.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/latent/pkg/buildinfo"
)

// Execute runs the latent CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)
	cfg := Config{Format: "svg"}

	root := &cobra.Command{
		Use:          "latent",
		Short:        "Latent evaluates lazy computation graphs",
		Long:         `Latent builds computations as graphs of deferred calls, materializes values on demand, and reuses cached results of unaffected nodes when the graph is mutated.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))

			path := configPath
			explicit := path != ""
			if !explicit {
				path = defaultConfigPath()
			}
			loaded, err := loadConfig(path, explicit)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/latent/config.toml)")

	root.AddCommand(newDemoCmd(&cfg))

	return root.ExecuteContext(ctx)
}
