package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tsconv/internal/convert"
)

const helpText = `commands:
  <input>             convert input in the current direction
  convert <input>     same as above
  toggle | switch     swap conversion direction
  format [dec|hex]    show or set the number format
  base [TIME|reset]   show, set or reset the base time
  show                print the current settings
  help                print this help
  quit | exit         leave`

// Shell drives a State from text commands, one per line.
type Shell struct {
	conv   Converter
	state  State
	prompt bool
}

// NewShell returns a Shell starting at state. When prompt is set a "> "
// prompt is written before every line is read.
func NewShell(conv Converter, state State, prompt bool) *Shell {
	return &Shell{conv: conv, state: state, prompt: prompt}
}

// State returns the current session state.
func (sh *Shell) State() State {
	return sh.state
}

// Run reads commands from in until EOF or quit and writes replies to out.
// It returns the final state and any read error.
func (sh *Shell) Run(in io.Reader, out io.Writer) (State, error) {
	fmt.Fprintf(out, "mode: %s (%s)\n", sh.state.Mode, sh.state.Mode.Title())
	sc := bufio.NewScanner(in)
	for {
		if sh.prompt {
			fmt.Fprint(out, "> ")
		}
		if !sc.Scan() {
			break
		}
		reply, quit := sh.Exec(sc.Text())
		if reply != "" {
			fmt.Fprintln(out, reply)
		}
		if quit {
			return sh.state, nil
		}
	}
	if sh.prompt {
		fmt.Fprintln(out)
	}
	return sh.state, sc.Err()
}

// Exec applies one command line and returns the text to show. quit reports
// whether the session should end.
func (sh *Shell) Exec(line string) (reply string, quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	cmd, arg := splitCommand(line)
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return "", true
	case "help", "?":
		return helpText, false
	case "show":
		return sh.describe(), false
	case "toggle", "switch":
		sh.state = sh.state.Toggle()
		return fmt.Sprintf("mode: %s (%s)", sh.state.Mode, sh.state.Mode.Title()), false
	case "format":
		if arg == "" {
			return "format: " + sh.state.Format.String(), false
		}
		f, err := convert.ParseNumberFormat(arg)
		if err != nil {
			return err.Error(), false
		}
		sh.state = sh.state.WithFormat(f)
		return "format: " + f.String(), false
	case "base":
		switch {
		case arg == "":
		case strings.EqualFold(arg, "reset"):
			sh.state = sh.state.ResetBaseTime()
		default:
			sh.state = sh.state.WithBaseTime(arg)
		}
		return "base: " + sh.state.BaseTime, false
	case "convert":
		return sh.convert(arg), false
	}
	return sh.convert(line), false
}

func (sh *Shell) convert(input string) string {
	sh.state = sh.state.WithInput(input)
	sh.state, _ = sh.state.Convert(sh.conv)
	return sh.state.Result
}

func (sh *Shell) describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mode:   %s (%s)\n", sh.state.Mode, sh.state.Mode.Title())
	fmt.Fprintf(&b, "format: %s (%s)\n", sh.state.Format, sh.state.Format.Short())
	fmt.Fprintf(&b, "base:   %s\n", sh.state.BaseTime)
	fmt.Fprintf(&b, "input:  %s\n", sh.state.Input())
	fmt.Fprintf(&b, "result: %s", sh.state.Result)
	return b.String()
}

func splitCommand(line string) (cmd, arg string) {
	cmd, arg, _ = strings.Cut(line, " ")
	return cmd, strings.TrimSpace(arg)
}
