// Command lextet enumerates normal 3-pseudomanifold triangulations by
// isomorph-free lexicographic backtracking (§1-§6).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mobius-tri/lextet/config"
	"github.com/mobius-tri/lextet/search"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printArgError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose     bool
		irreducible bool
		res, mod    int
		manifest    string
	)

	cmd := &cobra.Command{
		Use:           "lextet [-v] [-i] [-r RES -m MOD] NV",
		Short:         "Enumerate normal 3-pseudomanifold triangulations",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			if !verbose {
				logger = slog.New(slog.NewTextHandler(io.Discard, nil))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if manifest != "" {
				return runManifest(ctx, manifest, logger)
			}

			if len(args) != 1 {
				return fmt.Errorf("%w: exactly one NV argument is required (or use --manifest)", config.ErrArgument)
			}
			nv, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: NV must be an integer: %v", config.ErrArgument, err)
			}

			spec := config.RunSpec{NV: nv, Res: res, Mod: mod, Irreducible: irreducible}
			if mod == 0 {
				spec.Mod = 1
			}
			if err := spec.Validate(); err != nil {
				return err
			}

			opts := append(spec.Options(), search.WithVerbose(logger))
			summary, err := search.Run(ctx, nv, opts...)
			if err != nil {
				return err
			}
			logger.Info("run complete",
				"nv", nv, "triangulations", summary.Triangulations,
				"rootDegrees", summary.RootDegreesRun)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose summary to standard error")
	cmd.Flags().BoolVarP(&irreducible, "irreducible", "i", false, "only irreducible triangulations")
	cmd.Flags().IntVarP(&res, "res", "r", 0, "residue class for work splitting")
	cmd.Flags().IntVarP(&mod, "mod", "m", 1, "modulus for work splitting")
	cmd.Flags().StringVar(&manifest, "manifest", "", "YAML batch manifest of runs")

	return cmd
}

func runManifest(ctx context.Context, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading manifest: %v", config.ErrArgument, err)
	}
	m, err := config.ParseManifest(data)
	if err != nil {
		return err
	}
	for _, run := range m.Runs {
		opts := append(run.Options(), search.WithVerbose(logger))
		summary, err := search.Run(ctx, run.NV, opts...)
		if err != nil {
			return err
		}
		logger.Info("manifest run complete", "nv", run.NV, "triangulations", summary.Triangulations)
	}
	return nil
}

// printArgError renders an argument error in §7's stderr-message form.
func printArgError(err error) {
	if errors.Is(err, config.ErrArgument) {
		fmt.Fprintln(os.Stderr, "lextet:", err)
		return
	}
	fmt.Fprintln(os.Stderr, "lextet: internal error:", err)
}
