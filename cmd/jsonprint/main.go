// Package main implements jsonprint, a small tool that validates and
// re-encodes JSON files. It doubles as the living example for the optparse
// library, exercising typed options, config file defaults and file
// completion.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/rustylang/optparse"
)

const version = "0.3.0"

func main() {
	opts := optparse.New("Usage: jsonprint [options] <files>", "jsonprint "+version)

	indent := opts.Int([]string{"-i", "--indent"}, "number of spaces to use for indentation", 2)
	output := opts.String([]string{"-o", "--output"}, "the path to write the output to")
	pretty := opts.Bool([]string{"-p", "--pretty"}, "pretty-print the generated output")
	verbose := opts.Bool([]string{"--verbose"}, "enable debug logging")
	script := opts.Bool([]string{"--completion-script"}, "print the bash completion setup and exit")
	opts.ConfigFile([]string{"-c", "--config"}, "path to a YAML config file")
	opts.CompletionGlob = "**/*.json"

	files := opts.Parse()

	if *script {
		optparse.PrintCompletionScript(os.Stdout, "jsonprint")
		os.Exit(0)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(files) == 0 {
		opts.PrintUsage()
		os.Exit(1)
	}

	if err := run(files, *indent, *output, *pretty); err != nil {
		fmt.Fprintf(os.Stderr, "jsonprint: error: %v\n", err)
		os.Exit(1)
	}
}

func run(files []string, indent int, output string, pretty bool) (err error) {
	if indent < 0 {
		return fmt.Errorf("indent must be non-negative, got %d", indent)
	}
	out := os.Stdout
	color := false
	if output != "" {
		f, cerr := os.Create(output)
		if cerr != nil {
			return fmt.Errorf("create output file: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output file: %w", cerr)
			}
		}()
		out = f
	} else {
		color = pretty && isTerminal(os.Stdout)
	}

	pr := newPrinter(out, indent, pretty, color)
	for _, path := range files {
		slog.Debug("printing file", "path", path)
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return fmt.Errorf("read %s: %w", path, rerr)
		}
		var v any
		if jerr := json.Unmarshal(data, &v); jerr != nil {
			return fmt.Errorf("parse %s: %w", path, jerr)
		}
		if perr := pr.print(v); perr != nil {
			return fmt.Errorf("write %s: %w", path, perr)
		}
	}
	return nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
