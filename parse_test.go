package optparse

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_LongOptions(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		indent int
		output string
		left   []string
	}{
		{
			name:   "separate value",
			args:   []string{"test", "--indent", "4", "a.json"},
			indent: 4,
			left:   []string{"a.json"},
		},
		{
			name:   "equals value",
			args:   []string{"test", "--indent=8"},
			indent: 8,
		},
		{
			name:   "hex value",
			args:   []string{"test", "--indent", "0x10"},
			indent: 16,
		},
		{
			name:   "string option",
			args:   []string{"test", "--output", "out.json", "a.json", "b.json"},
			output: "out.json",
			left:   []string{"a.json", "b.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := New("Usage: test [options]", "test 0.1")
			indent := opts.Int([]string{"-i", "--indent"}, "indentation")
			output := opts.String([]string{"-o", "--output"}, "output path")

			left, err := opts.ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.indent, *indent)
			assert.Equal(t, tt.output, *output)
			assert.Equal(t, tt.left, left)
		})
	}
}

func TestParseArgs_ShortOptions(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		indent int
		pretty bool
		quiet  bool
	}{
		{
			name:   "separate value",
			args:   []string{"test", "-i", "4"},
			indent: 4,
		},
		{
			name:   "attached value",
			args:   []string{"test", "-i4"},
			indent: 4,
		},
		{
			name:   "single bool",
			args:   []string{"test", "-p"},
			pretty: true,
		},
		{
			name:   "grouped bools",
			args:   []string{"test", "-pq"},
			pretty: true,
			quiet:  true,
		},
		{
			name:   "grouped bools with trailing value",
			args:   []string{"test", "-pi8"},
			pretty: true,
			indent: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := New("Usage: test [options]", "test 0.1")
			indent := opts.Int([]string{"-i", "--indent"}, "indentation")
			pretty := opts.Bool([]string{"-p", "--pretty"}, "pretty-print")
			quiet := opts.Bool([]string{"-q", "--quiet"}, "suppress output")

			_, err := opts.ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.indent, *indent)
			assert.Equal(t, tt.pretty, *pretty)
			assert.Equal(t, tt.quiet, *quiet)
		})
	}
}

func TestParseArgs_DoubleDashTerminator(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")
	pretty := opts.Bool([]string{"-p", "--pretty"}, "pretty-print")

	left, err := opts.ParseArgs([]string{"test", "items.json", "--", "--pretty", "-x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"items.json", "--pretty", "-x"}, left)
	assert.False(t, *pretty, "--pretty after -- must not be parsed as an option")
}

func TestParseArgs_SingleDashIsPositional(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")

	left, err := opts.ParseArgs([]string{"test", "-"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-"}, left)
}

func TestParseArgs_NoSuchOption(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")

	_, err := opts.ParseArgs([]string{"test", "--bogus"})
	require.Error(t, err)
	assert.True(t, IsNoSuchOption(err))
	assert.EqualError(t, err, "test: error: no such option: --bogus")

	_, err = opts.ParseArgs([]string{"test", "-z"})
	require.Error(t, err)
	assert.True(t, IsNoSuchOption(err))
	assert.EqualError(t, err, "test: error: no such option: -z")
}

func TestParseArgs_ArgRequired(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")
	opts.String([]string{"-o", "--output"}, "output path")

	_, err := opts.ParseArgs([]string{"test", "--output"})
	require.Error(t, err)
	assert.True(t, IsArgRequired(err))
	assert.EqualError(t, err, "test: error: --output option requires an argument")

	_, err = opts.ParseArgs([]string{"test", "-o"})
	require.Error(t, err)
	assert.True(t, IsArgRequired(err))
}

func TestParseArgs_RequiredOption(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")
	output := opts.Required().String([]string{"-o", "--output"}, "output path")

	_, err := opts.ParseArgs([]string{"test", "a.json"})
	require.Error(t, err)
	assert.True(t, IsRequired(err))
	assert.EqualError(t, err, "test: error: required: --output")

	_, err = opts.ParseArgs([]string{"test", "-o", "out.json"})
	require.NoError(t, err)
	assert.Equal(t, "out.json", *output)
}

func TestParseArgs_BadValue(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")
	opts.Int([]string{"-i", "--indent"}, "indentation")

	_, err := opts.ParseArgs([]string{"test", "--indent", "abc"})
	require.Error(t, err)

	var bad *BadValueError
	require.True(t, errors.As(err, &bad))
	assert.Equal(t, "--indent", bad.Flag)
	assert.Equal(t, "abc", bad.Value)
	assert.Contains(t, err.Error(), `invalid value "abc" for --indent`)
}

func TestParseArgs_ProgFromPath(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")

	_, err := opts.ParseArgs([]string{"/usr/local/bin/test", "--bogus"})
	require.Error(t, err)
	assert.EqualError(t, err, "test: error: no such option: --bogus")
}

func TestParseArgs_EmptyArgs(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")

	_, err := opts.ParseArgs(nil)
	assert.Error(t, err)
}

func TestParseArgs_HelpShortCircuits(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")
	opts.Required().String([]string{"-o", "--output"}, "output path")

	// Neither the unknown option nor the missing required option matter
	// once help is requested.
	_, err := opts.ParseArgs([]string{"test", "--help", "--bogus"})
	require.NoError(t, err)
	assert.True(t, opts.HelpRequested())
	assert.False(t, opts.VersionRequested())
}

func TestParseArgs_VersionShortCircuits(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")
	opts.Required().String([]string{"-o", "--output"}, "output path")

	_, err := opts.ParseArgs([]string{"test", "-v"})
	require.NoError(t, err)
	assert.True(t, opts.VersionRequested())
}

func TestParseArgs_BuiltinFlagsYieldToProgram(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")
	verbose := opts.Bool([]string{"-v", "--verbose"}, "enable debug logging")

	_, err := opts.ParseArgs([]string{"test", "-v"})
	require.NoError(t, err)
	assert.True(t, *verbose)
	assert.False(t, opts.VersionRequested())

	// The long form is still available for the builtin.
	_, err = opts.ParseArgs([]string{"test", "--version"})
	require.NoError(t, err)
	assert.True(t, opts.VersionRequested())
}

func TestParseArgs_DisabledBuiltins(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")
	opts.AddHelp = false
	opts.AddVersion = false

	_, err := opts.ParseArgs([]string{"test", "--help"})
	require.Error(t, err)
	assert.True(t, IsNoSuchOption(err))
}

func TestParseArgs_ManualHelpOption(t *testing.T) {
	// The localised-help pattern from the package docs.
	opts := New("Usage: test [options]", "test 0.1")
	opts.AddHelp = false
	help := opts.Bool([]string{"-h", "--hilfe"}, "diese hilfe anzeigen und beenden")

	_, err := opts.ParseArgs([]string{"test", "-h"})
	require.NoError(t, err)
	assert.True(t, *help)
	assert.False(t, opts.HelpRequested())
}

func TestParse_ErrorPrinterRoutingAndExit(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		register func(p *Parser)
		wantKind string
		wantArg  string
	}{
		{
			name:     "no such option",
			args:     []string{"test", "--bogus"},
			wantKind: "no-such-option",
			wantArg:  "--bogus",
		},
		{
			name:     "arg required",
			args:     []string{"test", "--output"},
			register: func(p *Parser) { p.String([]string{"-o", "--output"}, "output path") },
			wantKind: "arg-required",
			wantArg:  "--output",
		},
		{
			name:     "required missing",
			args:     []string{"test"},
			register: func(p *Parser) { p.Required().String([]string{"-o", "--output"}, "output path") },
			wantKind: "required",
			wantArg:  "--output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origExit, origArgs := osExit, os.Args
			t.Cleanup(func() {
				osExit = origExit
				os.Args = origArgs
			})

			exitCode := -1
			osExit = func(code int) {
				if exitCode == -1 {
					exitCode = code
				}
			}
			os.Args = tt.args

			opts := New("Usage: test [options]", "test 0.1")
			if tt.register != nil {
				tt.register(opts)
			}

			var gotKind, gotProg, gotArg string
			record := func(kind string) ErrPrinter {
				return func(prog, arg string) {
					gotKind, gotProg, gotArg = kind, prog, arg
				}
			}
			opts.ErrNoSuchOption = record("no-such-option")
			opts.ErrArgRequired = record("arg-required")
			opts.ErrRequired = record("required")

			opts.Parse()

			assert.Equal(t, tt.wantKind, gotKind)
			assert.Equal(t, "test", gotProg)
			assert.Equal(t, tt.wantArg, gotArg)
			assert.Equal(t, 1, exitCode)
		})
	}
}

func TestParseArgs_ResetBetweenParses(t *testing.T) {
	opts := New("Usage: test [options]", "test 0.1")
	opts.Required().String([]string{"-o", "--output"}, "output path")

	_, err := opts.ParseArgs([]string{"test", "-o", "out.json"})
	require.NoError(t, err)

	// The earlier -o must not satisfy the requirement for a fresh parse.
	_, err = opts.ParseArgs([]string{"test"})
	require.Error(t, err)
	assert.True(t, IsRequired(err))
}
