package cli

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"
)

// Options holds the command-line settings. Empty strings mean "not given";
// the config file value then applies.
type Options struct {
	Config      string `short:"c" long:"config" description:"Path to YAML settings file (default: tsconv.yaml if present)"`
	BaseTime    string `short:"b" long:"base" description:"Base time timestamps count from, e.g. 1970-01-01T00:00:00"`
	Format      string `short:"f" long:"format" description:"Timestamp number format {dec, hex}"`
	Mode        string `short:"m" long:"mode" description:"Conversion direction {toDate, toTimestamp}"`
	Interactive bool   `short:"i" long:"interactive" description:"Start the interactive shell even when inputs are given"`
	Verbose     bool   `short:"v" long:"verbose" description:"Print the effective settings before converting"`

	// Inputs are the positional arguments to convert.
	Inputs []string `no-flag:"true"`
}

// ConfigPath returns the explicit config path or fallback.
func (o Options) ConfigPath(fallback string) string {
	if o.Config != "" {
		return o.Config
	}
	return fallback
}

// ParseArgs parses command-line arguments without the program name.
//
// It accepts short and long flags; everything that is not a flag, and
// everything after "--", becomes an input. Requesting help returns an error
// for which IsHelp reports true, carrying the usage text.
func ParseArgs(argv []string) (Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "tsconv"
	parser.Usage = "[OPTIONS] [INPUT...]"
	rest, err := parser.ParseArgs(argv)
	if err != nil {
		return Options{}, err
	}
	opts.Inputs = rest
	return opts, nil
}

// IsHelp reports whether err is a help request from ParseArgs.
func IsHelp(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr) && ferr.Type == flags.ErrHelp
}

// Exit terminates the process with the given exit code.
func Exit(code int) {
	os.Exit(code)
}
