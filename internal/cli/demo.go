package cli

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/latent/pkg/graph"
	"github.com/matzehuels/latent/pkg/latent"
	"github.com/matzehuels/latent/pkg/render/nodelink"
)

// newDemoCmd creates the demo command: build a small computation graph,
// evaluate it, mutate a dependency, and optionally export the graph.
func newDemoCmd(cfg *Config) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Evaluate a sample computation graph",
		Long: `Evaluate the sample pipeline add(multiply(2,3), power(4,5)).

The demo computes the graph twice to show memoization, then updates the
arguments of multiply and recomputes to show selective invalidation: only
the stale branch re-executes, power's cached value is reused.

With --output, the dependency graph is exported as DOT, SVG, or JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = cfg.Format
			}
			if err := validateFormat(format); err != nil {
				return err
			}
			return runDemo(cmd, output, format, !cfg.NoColor)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "export the dependency graph to this file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "export format: dot, svg, json (default from config, svg)")

	return cmd
}

func validateFormat(format string) error {
	switch format {
	case "dot", "svg", "json":
		return nil
	}
	return fmt.Errorf("unknown format %q (expected dot, svg, or json)", format)
}

func runDemo(cmd *cobra.Command, output, format string, color bool) error {
	logger := loggerFromContext(cmd.Context())

	add := latent.Wrap("add", func(args []any, _ latent.Kwargs) (any, error) {
		return args[0].(int) + args[1].(int), nil
	})
	multiply := latent.Wrap("multiply", func(args []any, _ latent.Kwargs) (any, error) {
		return args[0].(int) * args[1].(int), nil
	})
	power := latent.Wrap("power", func(args []any, _ latent.Kwargs) (any, error) {
		return int(math.Pow(float64(args[0].(int)), float64(args[1].(int)))), nil
	})

	mul := multiply.New(2, 3)
	result := add.New(mul, power.New(4, 5))

	p := newProgress(logger)
	v, err := result.Compute()
	if err != nil {
		return err
	}
	p.done("Computed add(multiply(2,3), power(4,5))")
	printResult(cmd, "first compute", v, "", color)

	p = newProgress(logger)
	v, err = result.Compute()
	if err != nil {
		return err
	}
	p.done("Computed again")
	printResult(cmd, "second compute", v, "cache hit", color)

	logger.Debug("updating multiply arguments", "args", "(3, 3)")
	mul.UpdateArgs(3, 3)

	p = newProgress(logger)
	v, err = result.Compute()
	if err != nil {
		return err
	}
	p.done("Recomputed after update")
	printResult(cmd, "after update", v, "power cache reused", color)

	if output == "" {
		return nil
	}
	return exportGraph(result, output, format, logger.Debugf)
}

func printResult(cmd *cobra.Command, stage string, v any, note string, color bool) {
	value := fmt.Sprintf("%v", v)
	if color {
		value = styleValue.Render(value)
		stage = styleDim.Render(stage)
		if note != "" {
			note = styleSuccess.Render(" [" + note + "]")
		}
	} else if note != "" {
		note = " [" + note + "]"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s%s\n", stage, value, note)
}

func exportGraph(root *latent.Node, output, format string, debugf func(string, ...any)) error {
	g, err := root.DependencyGraph()
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}

	switch format {
	case "json":
		if err := graph.WriteGraphFile(g, output); err != nil {
			return err
		}
	case "dot":
		dot := nodelink.ToDOT(g, nodelink.Options{})
		if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
	case "svg":
		dot := nodelink.ToDOT(g, nodelink.Options{})
		svg, err := nodelink.RenderSVG(dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, svg, 0644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
	}
	debugf("exported %s graph to %s", format, output)
	return nil
}
