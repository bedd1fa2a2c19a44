package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mitchellh/colorstring"
)

// printer re-encodes decoded JSON values. In pretty mode it indents nested
// structures and, when color is enabled, highlights keys and value types.
// Object keys are emitted in sorted order so output is deterministic.
type printer struct {
	w      io.Writer
	indent string
	pretty bool
	color  bool
	err    error
}

func newPrinter(w io.Writer, indent int, pretty, color bool) *printer {
	return &printer{
		w:      w,
		indent: strings.Repeat(" ", indent),
		pretty: pretty,
		color:  color,
	}
}

// print writes a single JSON document followed by a newline. The first
// write error sticks and is returned.
func (p *printer) print(v any) error {
	p.value(v, 0)
	p.raw("\n")
	return p.err
}

func (p *printer) value(v any, depth int) {
	switch v := v.(type) {
	case nil:
		p.token("null", "magenta")
	case bool:
		p.token(scalar(v), "magenta")
	case float64:
		p.token(scalar(v), "yellow")
	case string:
		p.token(scalar(v), "green")
	case []any:
		p.array(v, depth)
	case map[string]any:
		p.object(v, depth)
	default:
		// json.Unmarshal into any never produces other types.
		p.token(scalar(v), "")
	}
}

func (p *printer) array(items []any, depth int) {
	if len(items) == 0 {
		p.raw("[]")
		return
	}
	p.raw("[")
	for i, item := range items {
		if i > 0 {
			p.raw(",")
		}
		p.newline(depth + 1)
		p.value(item, depth+1)
	}
	p.newline(depth)
	p.raw("]")
}

func (p *printer) object(obj map[string]any, depth int) {
	if len(obj) == 0 {
		p.raw("{}")
		return
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p.raw("{")
	for i, k := range keys {
		if i > 0 {
			p.raw(",")
		}
		p.newline(depth + 1)
		p.token(scalar(k), "cyan")
		p.raw(":")
		if p.pretty {
			p.raw(" ")
		}
		p.value(obj[k], depth+1)
	}
	p.newline(depth)
	p.raw("}")
}

// newline is a no-op in compact mode.
func (p *printer) newline(depth int) {
	if !p.pretty {
		return
	}
	p.raw("\n" + strings.Repeat(p.indent, depth))
}

func (p *printer) token(s, color string) {
	if p.color && color != "" {
		s = colorstring.Color("[" + color + "]" + s + "[reset]")
	}
	p.raw(s)
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// scalar renders a scalar with encoding/json semantics, so strings are
// escaped and numbers keep their shortest round-trip form.
func scalar(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
