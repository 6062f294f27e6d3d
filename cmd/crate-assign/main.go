// crate-assign reads a crate and a box from stdin and prints the box
// orientation that packs the most boxes, found as an assignment problem.
//
// Input is whitespace-separated decimal integers: n, then n crate edges,
// then n box edges. Output (text format):
//
//	Assignment j0 j1 … j(n-1)
//	Boxes <hex count>
//
// Nothing is written to stdout unless the whole solve succeeds.
//
// Input range: box counts are ordered through float64 logarithms, so two
// different counts beyond about 2^50 (crate edges 2^60 and 2^60+1 with a
// unit box, for instance) may be indistinguishable. Such input is rejected
// with exit status 1 rather than solved approximately. Use crate-search for
// it; that command multiplies counts exactly.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/cratefit/costmatrix"
	"github.com/katalvlaran/cratefit/internal/cli"
	"github.com/katalvlaran/cratefit/munkres"
	"github.com/katalvlaran/cratefit/packing"
	"github.com/katalvlaran/cratefit/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := cli.NewFlags("crate-assign", stderr).Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return cli.ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "crate-assign: %v\n", err)
		return cli.ExitCode(err)
	}
	level, _ := cli.ParseLevel(cfg.LogLevel) // validated by Parse
	logger := cli.NewLogger(stderr, level).With("command", "crate-assign")

	var out bytes.Buffer
	if err = assign(stdin, &out, cfg, logger); err != nil {
		fmt.Fprintf(stderr, "crate-assign: %v\n", err)
		return cli.ExitCode(err)
	}
	if _, err = out.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "crate-assign: writing output: %v\n", err)
		return cli.ExitFailure
	}

	return cli.ExitOK
}

// assign runs the full pipeline and renders the result into out.
func assign(stdin io.Reader, out io.Writer, cfg cli.Config, logger *slog.Logger) error {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	in, err := packing.ReadInput(stdin, 1)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	counts, err := packing.Counts(in.Crate, in.Box)
	if err != nil {
		return err
	}

	m, err := costmatrix.Build(counts, costmatrix.WithMaxDoublings(cfg.MaxDoublings))
	if err != nil {
		return fmt.Errorf("building cost matrix: %w", err)
	}
	logger.Debug("cost matrix built", "n", m.N(), "doublings", m.Doublings())

	res, err := munkres.SolveMatrix(m,
		munkres.WithObjective(munkres.Maximize),
		munkres.WithTrace(func(from, to munkres.Step) {
			logger.Debug("munkres transition", "from", from.String(), "to", to.String())
		}),
	)
	if err != nil {
		return fmt.Errorf("solving assignment: %w", err)
	}

	rep, err := report.New(counts, res.Assignment)
	if err != nil {
		return err
	}
	logger.Debug("assignment solved",
		"transitions", res.Transitions,
		"boxes", humanize.BigComma(rep.Boxes.BigInt()),
	)

	return report.Encode(out, rep, format, cfg.Label)
}
