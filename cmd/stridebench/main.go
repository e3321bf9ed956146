// Command stridebench compares row-major and column-major traversal times of
// a flat integer matrix and prints one table per test case.
//
// Usage:
//
//	stridebench --size 2048
//	stridebench --row 4096 --col 512 --iterations 4
//	stridebench --row 8192            # --col falls back to 1000
//	stridebench --size 1024 --misalign 0 -v
//
// Exit status is 0 on success and 1 on any configuration error, with a
// one-line "Error: ..." diagnostic on stderr.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/katalvlaran/stridebench/bench"
	"github.com/katalvlaran/stridebench/config"
	"github.com/katalvlaran/stridebench/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

type flags struct {
	size, row, col int
	iterations     int
	misalign       int
	verbose        bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "stridebench",
		Short:         "Compare row-major and column-major traversal of a flat integer matrix",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd.Flags(), f, stdout, newLogger(stderr, f.verbose))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrInvalidFlag, err)
	})

	fs := cmd.Flags()
	fs.IntVar(&f.size, "size", 0, "set both dimensions to `N` (exclusive with --row/--col)")
	fs.IntVar(&f.row, "row", 0, "number of rows `N`")
	fs.IntVar(&f.col, "col", 0, "number of columns `N`")
	fs.IntVar(&f.iterations, "iterations", config.DefaultIterations, "full passes per traversal")
	fs.IntVar(&f.misalign, "misalign", config.DefaultMisalign, "padding elements for the misaligned case (0 disables it)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log per-case details to stderr")

	return cmd
}

// newLogger writes one diagnostic line per log call to w.
func newLogger(w io.Writer, verbose bool) logr.Logger {
	v := 0
	if verbose {
		v = 1
	}

	return funcr.New(func(prefix, args string) {
		fmt.Fprintln(w, "stridebench:", args)
	}, funcr.Options{Verbosity: v})
}

// request maps parsed flags to a config.Request; only flags the operator
// actually passed become non-nil dimensions.
func request(fs *pflag.FlagSet, f flags) config.Request {
	req := config.Request{Iterations: f.iterations, Misalign: f.misalign}
	if fs.Changed("size") {
		req.Size = &f.size
	}
	if fs.Changed("row") {
		req.Row = &f.row
	}
	if fs.Changed("col") {
		req.Col = &f.col
	}

	return req
}

func execute(fs *pflag.FlagSet, f flags, stdout io.Writer, log logr.Logger) error {
	cfg, err := config.NewResolver(log).Resolve(request(fs, f))
	if err != nil {
		return err
	}
	results, err := bench.NewRunner(bench.WithLogger(log)).RunAll(bench.Suite(cfg.Spec, cfg.Iterations, cfg.Misalign))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return report.Write(stdout, results...)
}
