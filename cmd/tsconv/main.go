package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"tsconv/internal/cli"
	"tsconv/internal/config"
	"tsconv/internal/convert"
	"tsconv/internal/session"
)

var (
	newLogger       = func() loggerAPI { return cli.Logger{} }
	loadConfigFn    = config.Load
	stdinIsTerminal = func() bool { return cli.IsTerminal(os.Stdin) }
	exitFn          = cli.Exit
)

type loggerAPI interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Failure(msg string)
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func execute(args []string, logger loggerAPI, cfgLoader func(path string) (config.Config, error), in io.Reader, out io.Writer) int {
	opts, err := cli.ParseArgs(args)
	if err != nil {
		if cli.IsHelp(err) {
			fmt.Fprintln(out, err.Error())
			return 0
		}
		logger.Error(formatError(err))
		return 1
	}
	cfg, err := resolveConfig(opts, cfgLoader)
	if err != nil {
		logger.Error(formatError(err))
		return 1
	}
	cfg, err = applyFlags(cfg, opts)
	if err != nil {
		logger.Error(formatError(err))
		return 1
	}
	if opts.Verbose {
		logger.Info("Settings:\n" + dumper.Sdump(cfg))
	}
	conv, err := cfg.Converter()
	if err != nil {
		logger.Error(formatError(err))
		return 1
	}

	inputs := opts.Inputs
	if len(inputs) == 0 {
		inputs = cfg.Conversions
	}
	state := cfg.State()
	code := 0
	if len(inputs) > 0 {
		code = convertAll(inputs, state, conv, logger, out)
		if !opts.Interactive {
			return code
		}
	}

	shell := session.NewShell(conv, state, stdinIsTerminal())
	if _, err := shell.Run(in, out); err != nil {
		logger.Error(formatError(fmt.Errorf("read input: %w", err)))
		return 1
	}
	return code
}

// resolveConfig loads the named config file. A missing default file yields
// the built-in defaults; a missing explicit file is an error.
func resolveConfig(opts cli.Options, cfgLoader func(path string) (config.Config, error)) (config.Config, error) {
	cfgPath, err := filepath.Abs(opts.ConfigPath(config.DefaultPath))
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := cfgLoader(cfgPath)
	if err != nil {
		if opts.Config == "" && errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides config values with those given on the command line.
func applyFlags(cfg config.Config, opts cli.Options) (config.Config, error) {
	if opts.BaseTime != "" {
		cfg.BaseTime = opts.BaseTime
	}
	if opts.Format != "" {
		f, err := convert.ParseNumberFormat(opts.Format)
		if err != nil {
			return cfg, err
		}
		cfg.Format = f
	}
	if opts.Mode != "" {
		m, err := session.ParseMode(opts.Mode)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = m
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// convertAll converts every input in order. Results go to out; failures are
// logged and make the exit code 2.
func convertAll(inputs []string, state session.State, conv session.Converter, logger loggerAPI, out io.Writer) int {
	failed := 0
	for _, input := range inputs {
		next, err := state.WithInput(input).Convert(conv)
		if err != nil {
			failed++
			logger.Failure(input + " -> " + next.Result)
			continue
		}
		fmt.Fprintf(out, "%s -> %s\n", input, next.Result)
	}
	if failed > 0 {
		logger.Warn(fmt.Sprintf("Completed. success=%d failed=%d", len(inputs)-failed, failed))
		return 2
	}
	return 0
}

func main() {
	logger := newLogger()
	exitCode := execute(os.Args[1:], logger, loadConfigFn, os.Stdin, os.Stdout)
	exitFn(exitCode)
}

func formatError(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
