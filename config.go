package optparse

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ConfigFile registers an option naming a YAML file of option defaults:
//
//	opts.ConfigFile([]string{"-c", "--config"}, "path to a YAML config file")
//
// The file is a flat mapping of long flag names (without the leading
// dashes) to values:
//
//	indent: 4
//	pretty: true
//	output: out.json
//
// File values are applied through each option's Value, so they get the same
// type checking as command line arguments, and they satisfy required
// options. Options given explicitly on the command line win regardless of
// argument order.
func (p *Parser) ConfigFile(flags []string, info string) {
	opt := p.addOption(flags, info, (*stringValue)(new(string)), false)
	opt.isConfig = true
}

// applyConfig loads path and applies its values to unseen options.
func (p *Parser) applyConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &ConfigError{Path: path, Err: fmt.Errorf("parse: %w", err)}
	}

	// Deterministic application and error order.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		opt := p.byFlag["--"+key]
		if opt == nil && len(key) == 1 {
			opt = p.byFlag["-"+key]
		}
		if opt == nil {
			return &ConfigError{Path: path, Err: fmt.Errorf("no such option: %s", key)}
		}
		if opt.seen || opt.isConfig {
			continue
		}
		val, err := scalarString(raw[key])
		if err != nil {
			return &ConfigError{Path: path, Err: fmt.Errorf("%s: %w", key, err)}
		}
		if err := opt.value.Set(val); err != nil {
			return &ConfigError{Path: path, Err: fmt.Errorf("%s: %w", key, err)}
		}
		opt.seen = true
	}
	return nil
}

// scalarString renders a YAML scalar as the string form fed to Value.Set.
func scalarString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("expected a scalar value, got %T", v)
	}
}
