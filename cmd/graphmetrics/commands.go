package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphmetrics/internal/config"
	"github.com/katalvlaran/graphmetrics/internal/report"
	"github.com/katalvlaran/graphmetrics/paths"
)

// cli carries the flag values and output streams shared by every subcommand.
type cli struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger

	configPath string
	verbose    bool
	jsonOutput bool

	allPaths bool
	maxPaths int
	maxHops  int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "graphmetrics",
		Short: "Centrality, distance and clustering measures for small graphs",
		Long: `graphmetrics builds an immutable graph from a list of connection pairs
and reports closeness, eccentricity, betweenness and eigenvector centrality,
clustering coefficients, the average shortest path length and the degree
distribution.

Without --config the built-in twelve-vertex coursework graph is used.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if c.verbose {
				level = slog.LevelDebug
			}
			c.logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "YAML file with connections and queries")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging on stderr")
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(c.reportCmd(), c.pathCmd())

	return root
}

func (c *cli) reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Compute every measure for the configured graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}
			r, err := report.Build(cmd.Context(), cfg, c.logger)
			if err != nil {
				c.logger.Error("report failed", "err", err)
				return err
			}
			if c.jsonOutput {
				return report.WriteJSON(c.stdout, r)
			}

			return report.WriteText(c.stdout, r)
		},
	}
}

func (c *cli) pathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print the shortest path between two vertices",
		Long: `Print the fewest-hop path between two vertices and its length.

With --all every simple path is listed as well. Enumeration is exponential,
so it stops after --max-paths paths (0 disables the cap).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}
			g := cfg.Graph()
			pr, err := report.Path(g, args[0], args[1], c.allPaths,
				paths.WithMaxPaths(c.maxPaths),
				paths.WithMaxHops(c.maxHops),
				paths.WithContext(cmd.Context()),
			)
			if err != nil {
				return err
			}
			if pr.Truncated {
				c.logger.Warn("path listing truncated", "max_paths", c.maxPaths)
			}
			if c.jsonOutput {
				return report.WriteJSON(c.stdout, pr)
			}

			return report.WritePath(c.stdout, pr)
		},
	}
	cmd.Flags().BoolVarP(&c.allPaths, "all", "a", false, "also list every simple path")
	cmd.Flags().IntVar(&c.maxPaths, "max-paths", paths.DefaultMaxPaths, "stop after this many simple paths (0 = no limit)")
	cmd.Flags().IntVar(&c.maxHops, "max-hops", 0, "ignore simple paths longer than this many edges (0 = no limit)")

	return cmd
}

func (c *cli) load() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	source := c.configPath
	if source == "" {
		source = "built-in coursework graph"
	}
	c.logger.Debug("config loaded", "source", source, "connections", len(cfg.Connections), "directed", cfg.Directed)

	return cfg, nil
}
