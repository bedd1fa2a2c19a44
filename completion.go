package optparse

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/shlex"
)

// Shell auto-completion uses the bash `complete -C` protocol: bash invokes
// the program with OPTPARSE_AUTO_COMPLETE set and the partial command line
// in COMP_LINE/COMP_POINT, and reads candidates from stdout, one per line.

// PrintCompletionScript writes the bash stanza that registers prog for
// auto-completion. Meant for an install step or a hidden option:
//
//	eval "$(jsonprint --completion-script)"
func PrintCompletionScript(w io.Writer, prog string) {
	fmt.Fprintf(w, "complete -o default -C 'env %s=1 %s' %s\n", autoCompleteEnv, prog, prog)
}

// autoComplete prints candidates for the word under the cursor and exits.
func (p *Parser) autoComplete() {
	line := os.Getenv("COMP_LINE")
	point := len(line)
	if s := os.Getenv("COMP_POINT"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= len(line) {
			point = n
		}
	}
	words, cword := splitCommandLine(line[:point])
	for _, c := range p.complete(words, cword) {
		fmt.Fprintln(p.Out, c)
	}
	osExit(0)
}

// splitCommandLine shell-splits the line up to the cursor and returns the
// words along with the index of the word being completed. A trailing space
// means the cursor sits on a fresh empty word.
func splitCommandLine(line string) ([]string, int) {
	words, err := shlex.Split(line)
	if err != nil {
		// Unbalanced quotes mid-edit; degrade to whitespace splitting.
		words = strings.Fields(line)
	}
	if line == "" || strings.HasSuffix(line, " ") {
		words = append(words, "")
	}
	if len(words) == 0 {
		words = []string{""}
	}
	return words, len(words) - 1
}

// complete computes sorted candidates for words[cword]. words[0] is the
// program name. It is a pure function over its inputs apart from file
// globbing, which reads the working directory.
func (p *Parser) complete(words []string, cword int) []string {
	p.addBuiltins()

	// Delegate to a subcommand named by an earlier word. Words that look
	// like flags are skipped; an option's argument can be mistaken for a
	// positional here, which at worst completes against the wrong parser.
	// An earlier positional also means the first-positional slot is gone,
	// so subcommand names are no longer candidates.
	positionalSeen := false
	for i := 1; i < cword; i++ {
		w := words[i]
		if strings.HasPrefix(w, "-") {
			continue
		}
		if sub, ok := p.subByName[w]; ok {
			subWords := append([]string{words[0] + " " + w}, words[i+1:]...)
			return sub.complete(subWords, cword-i)
		}
		positionalSeen = true
		break
	}

	cur := ""
	if cword < len(words) {
		cur = words[cword]
	}

	var out []string
	if strings.HasPrefix(cur, "-") {
		for _, opt := range p.options {
			for _, f := range opt.flags {
				if strings.HasPrefix(f, cur) {
					out = append(out, f)
				}
			}
		}
	} else {
		if !positionalSeen {
			for name := range p.subByName {
				if strings.HasPrefix(name, cur) {
					out = append(out, name)
				}
			}
		}
		if p.CompletionGlob != "" {
			matches, err := doublestar.Glob(os.DirFS("."), p.CompletionGlob)
			if err == nil {
				for _, m := range matches {
					if strings.HasPrefix(m, cur) {
						out = append(out, m)
					}
				}
			}
		}
	}
	sort.Strings(out)
	return out
}
