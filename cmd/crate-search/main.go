// crate-search reads a crate and a box from stdin and searches every
// orientation of the box by branch and bound. Each time a packing beats all
// earlier ones it is printed, so the last record is the optimum:
//
//	Boxes <hex count>
//
// Input is the same as crate-assign's, with at least two dimensions.
// Structured formats emit one document per record (YAML documents are
// separated by "---").
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/cratefit/internal/cli"
	"github.com/katalvlaran/cratefit/packing"
	"github.com/katalvlaran/cratefit/report"
	"github.com/katalvlaran/cratefit/search"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := cli.NewFlags("crate-search", stderr).Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return cli.ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "crate-search: %v\n", err)
		return cli.ExitCode(err)
	}
	level, _ := cli.ParseLevel(cfg.LogLevel) // validated by Parse
	logger := cli.NewLogger(stderr, level).With("command", "crate-search")

	if err = searchInput(stdin, stdout, cfg, logger); err != nil {
		fmt.Fprintf(stderr, "crate-search: %v\n", err)
		return cli.ExitCode(err)
	}

	return cli.ExitOK
}

// searchInput streams every improving packing to out. A box that fits in no
// orientation prints nothing and is not an error.
func searchInput(stdin io.Reader, out io.Writer, cfg cli.Config, logger *slog.Logger) error {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	in, err := packing.ReadInput(stdin, search.MinDimensions)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var records int
	best, err := search.Run(in.Crate, in.Box, func(p search.Packing) error {
		records++
		logger.Debug("improved packing",
			"record", records,
			"boxes", humanize.BigComma(p.Boxes.BigInt()),
			"volume", humanize.BigComma(p.Volume.BigInt()),
		)
		return writeRecord(out, p, format, cfg.Label)
	})
	if errors.Is(err, search.ErrNoFit) {
		logger.Info("box fits in no orientation")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debug("search finished", "records", records, "assignment", best.Assignment)

	return nil
}

// writeRecord prints one packing. The text format keeps only the count line.
func writeRecord(w io.Writer, p search.Packing, format report.Format, label string) error {
	if label == "" {
		label = report.DefaultLabel
	}
	switch format {
	case report.FormatText:
		_, err := fmt.Fprintf(w, "%s %s\n", label, p.Boxes)
		return err
	case report.FormatYAML:
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return err
		}
	}

	return report.Encode(w, &report.Result{Assignment: p.Assignment, Boxes: p.Boxes}, format, label)
}
