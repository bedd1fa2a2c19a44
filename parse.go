package optparse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// autoCompleteEnv switches Parse into shell completion mode.
const autoCompleteEnv = "OPTPARSE_AUTO_COMPLETE"

// Parse parses os.Args and returns the left-over parameters. On a parse
// error it invokes the matching error printer and exits with status 1. The
// automatic help and version options print their output and exit with
// status 0.
func (p *Parser) Parse() []string {
	if os.Getenv(autoCompleteEnv) != "" {
		p.autoComplete()
	}
	left, err := p.ParseArgs(os.Args)
	if err != nil {
		p.report(err)
		osExit(1)
	}
	if hp := p.helpParser(); hp != nil {
		hp.PrintHelp()
		osExit(0)
	}
	if vp := p.versionParser(); vp != nil {
		vp.PrintVersion()
		osExit(0)
	}
	return left
}

// ParseArgs parses an explicit argument slice, where args[0] is the program
// name, and returns the left-over parameters. Unlike Parse it never prints
// or exits, so it suits library use and tests. A Parser is intended to parse
// a single argument list; option values accumulate across calls.
func (p *Parser) ParseArgs(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, errors.New("optparse: empty argument list")
	}
	prog := filepath.Base(args[0])
	p.addBuiltins()
	p.reset()

	var left []string
	i := 1
	for i < len(args) {
		arg := args[i]
		i++
		switch {
		case arg == "--":
			left = append(left, args[i:]...)
			i = len(args)
		case strings.HasPrefix(arg, "--"):
			n, err := p.parseLong(prog, arg, args[i:])
			if err != nil {
				return nil, err
			}
			i += n
		case strings.HasPrefix(arg, "-") && arg != "-":
			n, err := p.parseShort(prog, arg, args[i:])
			if err != nil {
				return nil, err
			}
			i += n
		default:
			if len(left) == 0 {
				if sub, ok := p.subByName[arg]; ok {
					return p.dispatch(prog, sub, arg, args[i:])
				}
			}
			left = append(left, arg)
		}
		if p.helpWanted || p.versionWanted {
			// Validation is pointless; the caller is about to print
			// help or version output and exit.
			return left, nil
		}
	}
	return left, p.finish(prog)
}

// reset clears per-parse state so ParseArgs is restartable.
func (p *Parser) reset() {
	p.helpWanted = false
	p.versionWanted = false
	p.active = ""
	for _, opt := range p.options {
		opt.seen = false
	}
}

// dispatch hands the remaining arguments to a subcommand parser.
func (p *Parser) dispatch(prog string, sub *Parser, name string, rest []string) ([]string, error) {
	p.active = name
	// The program name is only known now; qualify the default usage line
	// with it unless the program set its own.
	if sub.Usage == sub.defaultUsage {
		sub.Usage = fmt.Sprintf("Usage: %s %s [options]", prog, name)
		sub.defaultUsage = sub.Usage
	}
	subArgs := append([]string{prog + " " + name}, rest...)
	left, err := sub.ParseArgs(subArgs)
	if err != nil {
		return nil, err
	}
	if sub.HelpRequested() || sub.VersionRequested() {
		return left, nil
	}
	if err := p.finish(prog); err != nil {
		return nil, err
	}
	return left, nil
}

// parseLong handles "--flag", "--flag=value" and "--flag value". It returns
// how many of the following arguments were consumed.
func (p *Parser) parseLong(prog, arg string, rest []string) (int, error) {
	name, val, hasVal := strings.Cut(arg, "=")
	opt := p.byFlag[name]
	if opt == nil {
		return 0, &NoSuchOptionError{Prog: prog, Flag: name}
	}
	opt.seen = true
	switch opt {
	case p.helpOpt:
		p.helpWanted = true
		return 0, nil
	case p.versionOpt:
		p.versionWanted = true
		return 0, nil
	}
	if opt.isBool {
		if !hasVal {
			val = "true"
		}
		if err := opt.value.Set(val); err != nil {
			return 0, &BadValueError{Prog: prog, Flag: name, Value: val, Err: err}
		}
		return 0, nil
	}
	consumed := 0
	if !hasVal {
		if len(rest) == 0 {
			return 0, &ArgRequiredError{Prog: prog, Flag: name}
		}
		val = rest[0]
		consumed = 1
	}
	if err := opt.value.Set(val); err != nil {
		return 0, &BadValueError{Prog: prog, Flag: name, Value: val, Err: err}
	}
	return consumed, nil
}

// parseShort handles "-f", "-f value", "-fvalue" and grouped bool flags
// like "-pq". It returns how many of the following arguments were consumed.
func (p *Parser) parseShort(prog, arg string, rest []string) (int, error) {
	body := arg[1:]
	for j := 0; j < len(body); j++ {
		flag := "-" + string(body[j])
		opt := p.byFlag[flag]
		if opt == nil {
			return 0, &NoSuchOptionError{Prog: prog, Flag: flag}
		}
		opt.seen = true
		switch opt {
		case p.helpOpt:
			p.helpWanted = true
			return 0, nil
		case p.versionOpt:
			p.versionWanted = true
			return 0, nil
		}
		if opt.isBool {
			_ = opt.value.Set("true")
			continue
		}
		// A valued option swallows the rest of the token, or the next
		// argument when the token is exhausted.
		if val := body[j+1:]; val != "" {
			if err := opt.value.Set(val); err != nil {
				return 0, &BadValueError{Prog: prog, Flag: flag, Value: val, Err: err}
			}
			return 0, nil
		}
		if len(rest) == 0 {
			return 0, &ArgRequiredError{Prog: prog, Flag: flag}
		}
		if err := opt.value.Set(rest[0]); err != nil {
			return 0, &BadValueError{Prog: prog, Flag: flag, Value: rest[0], Err: err}
		}
		return 1, nil
	}
	return 0, nil
}

// finish applies config file defaults and enforces required options once
// the argument list is exhausted.
func (p *Parser) finish(prog string) error {
	for _, opt := range p.options {
		if opt.isConfig && opt.seen {
			if err := p.applyConfig(opt.value.String()); err != nil {
				return err
			}
		}
	}
	for _, opt := range p.options {
		if opt.required && !opt.seen {
			return &RequiredError{Prog: prog, Flag: opt.longFlag()}
		}
	}
	return nil
}

// report routes a ParseArgs error to the matching error printer.
func (p *Parser) report(err error) {
	var (
		noSuch *NoSuchOptionError
		argReq *ArgRequiredError
		reqd   *RequiredError
	)
	switch {
	case errors.As(err, &noSuch):
		p.ErrNoSuchOption(noSuch.Prog, noSuch.Flag)
	case errors.As(err, &argReq):
		p.ErrArgRequired(argReq.Prog, argReq.Flag)
	case errors.As(err, &reqd):
		p.ErrRequired(reqd.Prog, reqd.Flag)
	default:
		fmt.Fprintln(os.Stderr, err)
	}
}
