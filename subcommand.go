package optparse

import (
	"fmt"
	"strings"
)

// Subcommand registers a nested parser dispatched when the first positional
// argument matches name. The returned parser takes options of its own:
//
//	serve := opts.Subcommand("serve", "run the upstream server")
//	port := serve.Uint([]string{"-p", "--port"}, "port to listen on", 8080)
//
// Arguments after the subcommand name belong to the subcommand; its
// left-over parameters become the return value of the top-level parse.
func (p *Parser) Subcommand(name, info string) *Parser {
	if name == "" || strings.HasPrefix(name, "-") {
		panic(fmt.Sprintf("optparse: invalid subcommand name %q", name))
	}
	if _, dup := p.subByName[name]; dup {
		panic(fmt.Sprintf("optparse: subcommand %q registered twice", name))
	}
	sub := New(fmt.Sprintf("Usage: %s [options]", name), p.Version)
	sub.defaultUsage = sub.Usage
	sub.AddHelp = p.AddHelp
	sub.AddVersion = p.AddVersion
	sub.name = name
	sub.info = info
	p.subs = append(p.subs, sub)
	p.subByName[name] = sub
	return sub
}

// Active returns the name of the subcommand dispatched by the last parse,
// or the empty string when none was.
func (p *Parser) Active() string {
	return p.active
}
