package optparse

import (
	"errors"
	"fmt"
)

// Error types returned by ParseArgs. Parse maps them onto the parser's
// error printers before exiting.

// NoSuchOptionError reports an unrecognised flag.
type NoSuchOptionError struct {
	Prog string
	Flag string
}

func (e *NoSuchOptionError) Error() string {
	return fmt.Sprintf("%s: error: no such option: %s", e.Prog, e.Flag)
}

// ArgRequiredError reports a valued option with no argument.
type ArgRequiredError struct {
	Prog string
	Flag string
}

func (e *ArgRequiredError) Error() string {
	return fmt.Sprintf("%s: error: %s option requires an argument", e.Prog, e.Flag)
}

// RequiredError reports a required option that was never provided.
type RequiredError struct {
	Prog string
	Flag string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("%s: error: required: %s", e.Prog, e.Flag)
}

// BadValueError reports an argument that failed type conversion.
type BadValueError struct {
	Prog  string
	Flag  string
	Value string
	Err   error
}

func (e *BadValueError) Error() string {
	return fmt.Sprintf("%s: error: invalid value %q for %s: %v", e.Prog, e.Value, e.Flag, e.Err)
}

func (e *BadValueError) Unwrap() error {
	return e.Err
}

// ConfigError reports a problem with a config file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsNoSuchOption returns true if the error reports an unrecognised flag.
func IsNoSuchOption(err error) bool {
	var e *NoSuchOptionError
	return errors.As(err, &e)
}

// IsArgRequired returns true if the error reports a missing option argument.
func IsArgRequired(err error) bool {
	var e *ArgRequiredError
	return errors.As(err, &e)
}

// IsRequired returns true if the error reports a missing required option.
func IsRequired(err error) bool {
	var e *RequiredError
	return errors.As(err, &e)
}
