package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// ErrUsage reports bad command-line arguments.
var ErrUsage = errors.New("cli: usage")

// Flags are the options common to every command.
type Flags struct {
	set          *pflag.FlagSet
	configPath   string
	format       string
	label        string
	logLevel     string
	maxDoublings int
}

// NewFlags registers the common flags on a fresh flag set named name.
// Usage and parse errors are written to stderr.
func NewFlags(name string, stderr io.Writer) *Flags {
	f := &Flags{set: pflag.NewFlagSet(name, pflag.ContinueOnError)}
	f.set.SetOutput(stderr)
	def := DefaultConfig()
	f.set.StringVar(&f.configPath, "config", "", "config file (YAML, or JSON with comments); defaults to $"+ConfigEnv)
	f.set.StringVar(&f.format, "format", def.Format, "output format: text, json, yaml or cbor")
	f.set.StringVar(&f.label, "label", def.Label, "label of the box count line")
	f.set.StringVar(&f.logLevel, "log-level", def.LogLevel, "log level: debug, info, warn or error")
	f.set.IntVar(&f.maxDoublings, "max-doublings", def.MaxDoublings, "limit on cost normalisation doublings")

	return f
}

// FlagSet exposes the underlying set so commands can add their own flags.
func (f *Flags) FlagSet() *pflag.FlagSet { return f.set }

// Parse parses args and resolves the effective Config: defaults, then the
// config file, then explicitly set flags. pflag.ErrHelp is returned as is.
func (f *Flags) Parse(args []string) (Config, error) {
	if err := f.set.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if f.set.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected argument %q", ErrUsage, f.set.Arg(0))
	}

	cfg := DefaultConfig()
	path := f.configPath
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path != "" {
		var err error
		if cfg, err = LoadFile(path, cfg); err != nil {
			return Config{}, err
		}
	}

	if f.set.Changed("format") {
		cfg.Format = f.format
	}
	if f.set.Changed("label") {
		cfg.Label = f.label
	}
	if f.set.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.set.Changed("max-doublings") {
		cfg.MaxDoublings = f.maxDoublings
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
