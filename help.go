package optparse

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// helpGap is the minimum spacing between the flag column and the info column.
const helpGap = 4

// PrintHelp writes the usage line followed by the option listing, and the
// subcommand listing when subcommands are registered, to p.Out.
func (p *Parser) PrintHelp() {
	p.writeHelp(p.Out)
}

// PrintVersion writes the version string to p.Out.
func (p *Parser) PrintVersion() {
	fmt.Fprintln(p.Out, p.Version)
}

// PrintUsage writes just the usage line to p.Out.
func (p *Parser) PrintUsage() {
	fmt.Fprintln(p.Out, p.Usage)
}

func (p *Parser) writeHelp(w io.Writer) {
	p.addBuiltins()

	fmt.Fprintln(w, p.Usage)
	fmt.Fprintln(w)

	var rows [][2]string
	for _, opt := range p.options {
		flags := strings.Join(opt.flags, ", ")
		if !opt.isBool {
			flags += " " + opt.metavar()
		}
		rows = append(rows, [2]string{flags, opt.info})
	}
	writeAligned(w, rows)

	if len(p.subs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")
		rows = rows[:0]
		for _, sub := range p.subs {
			rows = append(rows, [2]string{sub.name, sub.info})
		}
		writeAligned(w, rows)
	}
}

// writeAligned prints two-column rows with the second column aligned. Widths
// are display widths, not byte lengths, so info columns line up even when
// flags or names contain wide runes.
func writeAligned(w io.Writer, rows [][2]string) {
	width := 0
	for _, row := range rows {
		if n := runewidth.StringWidth(row[0]); n > width {
			width = n
		}
	}
	for _, row := range rows {
		pad := width - runewidth.StringWidth(row[0]) + helpGap
		fmt.Fprintf(w, "  %s%s%s\n", row[0], strings.Repeat(" ", pad), row[1])
	}
}
