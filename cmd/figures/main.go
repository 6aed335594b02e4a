package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/storozhukBM/figures/internal/catalog"
	"github.com/storozhukBM/figures/lib/figure"
	"github.com/storozhukBM/figures/lib/seq"
)

type app struct {
	verbose    bool
	configPath string
	kindName   string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:           "figures",
		Short:         "Polygon figures stored in a growable sequence",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the sample figures, then remove the first one and print them again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.demo(cmd.OutOrStdout())
		},
	}

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Build figures from a yaml catalog and print them",
		Example: `  figures load --config figures.yaml

figures.yaml:
  figures:
    - kind: rhombus
      vertices: [[0, 1], [1, 0], [0, -1], [-1, 0]]
    - kind: hexagon
      center: [0, 0]
      radius: 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.OutOrStdout())
		},
	}
	loadCmd.Flags().StringVarP(&a.configPath, "config", "c", "", "path to the yaml catalog")
	_ = loadCmd.MarkFlagRequired("config")

	readCmd := &cobra.Command{
		Use:   "read",
		Short: "Read vertices of one figure from stdin and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.read(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	readCmd.Flags().StringVarP(&a.kindName, "kind", "k", "rhombus", "figure kind: rhombus, pentagon or hexagon")

	rootCmd.AddCommand(demoCmd, loadCmd, readCmd)
	return rootCmd
}

func (a *app) demo(w io.Writer) error {
	out := bufio.NewWriter(w)
	figures := catalog.Demo()
	a.logger.Debug("demo figures are created", zap.Stringer("stats", figures.Stats()))
	if reportErr := catalog.Report(out, figures); reportErr != nil {
		return reportErr
	}

	rhombi := seq.New[*figure.Rhombus[float64]]()
	rhombi.Push(figure.NewRhombus(
		figure.Pt(0.0, 2.0), figure.Pt(2.0, 0.0), figure.Pt(0.0, -2.0), figure.Pt(-2.0, 0.0),
	))
	fmt.Fprintln(out, "\n=== Rhombus Array ===")
	for _, r := range rhombi.All() {
		fmt.Fprintf(out, "Figure: %v\n", r)
		fmt.Fprintf(out, "Geometric center: %v\n", r.Center())
		fmt.Fprintf(out, "Area: %s\n", figure.FormatArea(r.Area()))
	}

	fmt.Fprintln(out, "\n=== After removing first figure ===")
	if eraseErr := figures.Erase(0); eraseErr != nil {
		return eraseErr
	}
	if printErr := figure.PrintAll[float64](out, figures); printErr != nil {
		return printErr
	}
	fmt.Fprintf(out, "Total area after removal: %s\n", figure.FormatArea(figure.TotalArea(figures)))
	return out.Flush()
}

func (a *app) load(w io.Writer) error {
	c, loadErr := catalog.LoadFile(a.configPath)
	if loadErr != nil {
		return loadErr
	}
	a.logger.Debug("catalog is loaded", zap.String("path", a.configPath), zap.Int("entries", len(c.Figures)))
	figures, buildErr := c.Build(a.logger)
	if buildErr != nil {
		return buildErr
	}
	return catalog.Report(w, figures)
}

func (a *app) read(r io.Reader, w io.Writer) error {
	kind, kindErr := figure.ParseKind(a.kindName)
	if kindErr != nil {
		return kindErr
	}
	f, newErr := figure.New[float64](kind)
	if newErr != nil {
		return newErr
	}
	fmt.Fprintf(w, "Enter %d points for %s (x y for each point):\n", kind.VertexCount(), kind)
	if parseErr := f.Parse(bufio.NewReader(r)); parseErr != nil {
		return parseErr
	}
	a.logger.Debug("figure is parsed", zap.Stringer("kind", kind))
	_, writeErr := fmt.Fprintf(
		w, "You entered: %v\nGeometric center: %v\nArea: %s\n",
		f, f.Center(), figure.FormatArea(f.Area()),
	)
	return writeErr
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
