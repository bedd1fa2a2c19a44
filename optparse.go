// Package optparse provides support for handling command line options.
//
// Declare the options your program takes and optparse handles the rest:
// parsing, type conversion, usage and help generation, version output,
// required-option enforcement, subcommands, config file defaults and shell
// auto-completion.
//
// Initialise a parser with the usage and version info for your program:
//
//	opts := optparse.New("Usage: jsonprint [options] <files>", "jsonprint 0.1")
//
// Then add the options you want it to handle by specifying the flags and a
// brief info string for the specific option type:
//
//	indent := opts.Int([]string{"-i", "--indent"}, "number of spaces to use for indentation")
//	output := opts.String([]string{"-o", "--output"}, "the path to write the output to")
//	pretty := opts.Bool([]string{"-p", "--pretty"}, "pretty-print the generated output")
//
// Invoke the parsing machinery with Parse. It returns any left-over
// parameters as a string slice:
//
//	files := opts.Parse()
//
// Dereference the option pointers to get the parsed values:
//
//	fmt.Printf("Writing to the file: %s\n", *output)
//
//	if *pretty {
//		// pretty-print the output ...
//	}
//
// The builtin option types correspond to Go's basic types and can be one of
// bool, int, int64, string, uint or uint64. They default to the zero value
// for their type. Override the default by passing an extra argument when
// registering the option:
//
//	indent := opts.Int([]string{"-i", "--indent"}, "number of spaces to use for indentation", 4)
//
// Mark an option as required by calling Required before registering it:
//
//	output := opts.Required().String([]string{"-o", "--output"}, "the path to write the output to")
//
// To be user-friendly, -h/--help and -v/--version options are added
// automatically when you call Parse. These use the usage, version and option
// info strings to generate helpful output:
//
//	$ jsonprint --help
//	Usage: jsonprint [options] <files>
//
//	  -h, --help       show this help message and exit
//	  -v, --version    show program's version number and exit
//
// This follows established practice for command line tools. When serving
// non-English locales you might want to disable it and handle the options
// yourself with PrintHelp and PrintVersion:
//
//	help := opts.Bool([]string{"-h", "--hilfe"}, "diese hilfe anzeigen und beenden")
//
//	opts.AddHelp = false
//	opts.Parse()
//
//	if *help {
//		opts.PrintHelp()
//		os.Exit(0)
//	}
//
// Override the default parsing of os.Args by calling ParseArgs with an
// explicit slice:
//
//	files, err := opts.ParseArgs([]string{"jsonprint", "items.json"})
//
// Following convention, all arguments after a standalone "--" parameter are
// returned without being parsed as options:
//
//	files, err := opts.ParseArgs([]string{"jsonprint", "items.json", "--", "--pretty"})
//
// Custom option types are supported by implementing the Value interface and
// registering it with Option. For example, to aggregate repeated --server
// values into a slice:
//
//	type servers []string
//
//	func (s *servers) Set(arg string) error {
//		if arg == "" {
//			return errors.New("server value cannot be empty")
//		}
//		*s = append(*s, arg)
//		return nil
//	}
//
//	func (s *servers) String() string { return strings.Join(*s, ",") }
//
//	var upstream servers
//	opts.Option([]string{"-s", "--server"}, "address of upstream server", &upstream)
package optparse

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// osExit is swapped for os.Exit so Parse can terminate the process.
var osExit = os.Exit

// ErrPrinter reports a parse failure for the named program. The second
// argument identifies the flag involved.
type ErrPrinter func(prog, arg string)

// Value is the interface implemented by custom option types. Set is called
// once for each occurrence of the option on the command line (or once with
// the config file value). String reports the current value for display.
type Value interface {
	Set(arg string) error
	String() string
}

// option is a single registered option.
type option struct {
	flags    []string
	info     string
	value    Value
	required bool
	isBool   bool
	isConfig bool
	seen     bool
}

// longFlag returns the last long flag, falling back to the last flag.
func (o *option) longFlag() string {
	for i := len(o.flags) - 1; i >= 0; i-- {
		if strings.HasPrefix(o.flags[i], "--") {
			return o.flags[i]
		}
	}
	return o.flags[len(o.flags)-1]
}

// metavar derives the argument placeholder shown in help output.
func (o *option) metavar() string {
	long := o.longFlag()
	if !strings.HasPrefix(long, "--") {
		return "VALUE"
	}
	name := strings.TrimPrefix(long, "--")
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// Parser holds the registered options for a command line program and drives
// parsing. The zero value is not usable; construct one with New.
type Parser struct {
	// Usage is the full usage line, e.g. "Usage: jsonprint [options] <files>".
	Usage string

	// Version is printed verbatim by the --version option, e.g. "jsonprint 0.1".
	Version string

	// AddHelp controls the automatic -h/--help option.
	AddHelp bool

	// AddVersion controls the automatic -v/--version option.
	AddVersion bool

	// Error printers invoked by Parse before exiting. Replace them to
	// customise or localise the messages.
	ErrArgRequired  ErrPrinter
	ErrNoSuchOption ErrPrinter
	ErrRequired     ErrPrinter

	// CompletionGlob, when non-empty, makes shell completion offer files
	// matching the pattern for positional arguments, e.g. "**/*.json".
	CompletionGlob string

	// Out is where help, version and completion output is written.
	Out io.Writer

	name string // subcommand name, empty at the top level
	info string // subcommand description for help listings

	// defaultUsage tracks the generated usage line so dispatch can tell
	// whether the program overrode Usage.
	defaultUsage string

	options      []*option
	byFlag       map[string]*option
	subs         []*Parser
	subByName    map[string]*Parser
	nextRequired bool

	builtinsAdded bool
	helpOpt       *option
	versionOpt    *option
	helpWanted    bool
	versionWanted bool
	active        string
}

// New returns a Parser for a program with the given usage line and version
// string. The automatic version option is only enabled when version is
// non-empty.
func New(usage, version string) *Parser {
	return &Parser{
		Usage:           usage,
		Version:         version,
		AddHelp:         true,
		AddVersion:      version != "",
		ErrArgRequired:  defaultArgRequired,
		ErrNoSuchOption: defaultNoSuchOption,
		ErrRequired:     defaultRequired,
		Out:             os.Stdout,
		byFlag:          make(map[string]*option),
		subByName:       make(map[string]*Parser),
	}
}

func defaultArgRequired(prog, arg string) {
	fmt.Fprintf(os.Stderr, "%s: error: %s option requires an argument\n", prog, arg)
}

func defaultNoSuchOption(prog, arg string) {
	fmt.Fprintf(os.Stderr, "%s: error: no such option: %s\n", prog, arg)
}

func defaultRequired(prog, arg string) {
	fmt.Fprintf(os.Stderr, "%s: error: required: %s\n", prog, arg)
}

// Required marks the next registered option as required. It returns the
// parser so it can be chained:
//
//	output := opts.Required().String([]string{"-o", "--output"}, "output path")
func (p *Parser) Required() *Parser {
	p.nextRequired = true
	return p
}

// Option registers an option backed by a custom Value implementation.
func (p *Parser) Option(flags []string, info string, value Value) {
	p.addOption(flags, info, value, false)
}

// Bool registers a bool option. The option takes no argument on the command
// line; its presence sets the value to true.
func (p *Parser) Bool(flags []string, info string, dflt ...bool) *bool {
	v := new(bool)
	if len(dflt) > 0 {
		*v = dflt[0]
	}
	p.addOption(flags, info, (*boolValue)(v), true)
	return v
}

// Int registers an int option.
func (p *Parser) Int(flags []string, info string, dflt ...int) *int {
	v := new(int)
	if len(dflt) > 0 {
		*v = dflt[0]
	}
	p.addOption(flags, info, (*intValue)(v), false)
	return v
}

// Int64 registers an int64 option.
func (p *Parser) Int64(flags []string, info string, dflt ...int64) *int64 {
	v := new(int64)
	if len(dflt) > 0 {
		*v = dflt[0]
	}
	p.addOption(flags, info, (*int64Value)(v), false)
	return v
}

// String registers a string option.
func (p *Parser) String(flags []string, info string, dflt ...string) *string {
	v := new(string)
	if len(dflt) > 0 {
		*v = dflt[0]
	}
	p.addOption(flags, info, (*stringValue)(v), false)
	return v
}

// Uint registers a uint option.
func (p *Parser) Uint(flags []string, info string, dflt ...uint) *uint {
	v := new(uint)
	if len(dflt) > 0 {
		*v = dflt[0]
	}
	p.addOption(flags, info, (*uintValue)(v), false)
	return v
}

// Uint64 registers a uint64 option.
func (p *Parser) Uint64(flags []string, info string, dflt ...uint64) *uint64 {
	v := new(uint64)
	if len(dflt) > 0 {
		*v = dflt[0]
	}
	p.addOption(flags, info, (*uint64Value)(v), false)
	return v
}

// addOption validates the flags and appends the option. Flag mistakes are
// programmer errors at declaration time, so they panic.
func (p *Parser) addOption(flags []string, info string, value Value, isBool bool) *option {
	if len(flags) == 0 {
		panic("optparse: option registered with no flags")
	}
	for _, f := range flags {
		if !validFlag(f) {
			panic(fmt.Sprintf("optparse: invalid flag %q", f))
		}
		if _, dup := p.byFlag[f]; dup {
			panic(fmt.Sprintf("optparse: flag %q registered twice", f))
		}
	}
	opt := &option{
		flags:    flags,
		info:     info,
		value:    value,
		isBool:   isBool,
		required: p.nextRequired,
	}
	p.nextRequired = false
	p.options = append(p.options, opt)
	for _, f := range flags {
		p.byFlag[f] = opt
	}
	return opt
}

// validFlag accepts "-x" short flags and "--long" flags.
func validFlag(f string) bool {
	if strings.HasPrefix(f, "--") {
		return len(f) > 2
	}
	if strings.HasPrefix(f, "-") {
		return len(f) == 2 && f != "--"
	}
	return false
}

// addBuiltins registers the automatic help and version options. They are
// prepended so they lead the help listing. Flags already claimed by the
// program are left alone.
func (p *Parser) addBuiltins() {
	if p.builtinsAdded {
		return
	}
	p.builtinsAdded = true

	var builtins []*option
	if p.AddHelp {
		if opt := p.addBuiltin("-h", "--help", "show this help message and exit"); opt != nil {
			p.helpOpt = opt
			builtins = append(builtins, opt)
		}
	}
	if p.AddVersion {
		if opt := p.addBuiltin("-v", "--version", "show program's version number and exit"); opt != nil {
			p.versionOpt = opt
			builtins = append(builtins, opt)
		}
	}
	if len(builtins) > 0 {
		p.options = append(builtins, p.options...)
	}
}

func (p *Parser) addBuiltin(short, long, info string) *option {
	var flags []string
	for _, f := range []string{short, long} {
		if _, claimed := p.byFlag[f]; !claimed {
			flags = append(flags, f)
		}
	}
	if len(flags) == 0 {
		return nil
	}
	opt := &option{flags: flags, info: info, value: (*boolValue)(new(bool)), isBool: true}
	for _, f := range flags {
		p.byFlag[f] = opt
	}
	return opt
}

// HelpRequested reports whether the automatic help option was seen during
// the last parse, here or in the dispatched subcommand.
func (p *Parser) HelpRequested() bool {
	return p.helpParser() != nil
}

// VersionRequested reports whether the automatic version option was seen
// during the last parse, here or in the dispatched subcommand.
func (p *Parser) VersionRequested() bool {
	return p.versionParser() != nil
}

func (p *Parser) helpParser() *Parser {
	if p.helpWanted {
		return p
	}
	if p.active != "" {
		return p.subByName[p.active].helpParser()
	}
	return nil
}

func (p *Parser) versionParser() *Parser {
	if p.versionWanted {
		return p
	}
	if p.active != "" {
		return p.subByName[p.active].versionParser()
	}
	return nil
}
