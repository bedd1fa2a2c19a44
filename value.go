package optparse

import (
	"fmt"
	"strconv"
)

// Builtin Value implementations for the basic option types. Numeric values
// accept the same syntax as strconv with base 0, so hex and octal literals
// work.

type boolValue bool

func (b *boolValue) Set(arg string) error {
	v, err := strconv.ParseBool(arg)
	if err != nil {
		return fmt.Errorf("expected a boolean, got %q", arg)
	}
	*b = boolValue(v)
	return nil
}

func (b *boolValue) String() string {
	return strconv.FormatBool(bool(*b))
}

type intValue int

func (i *intValue) Set(arg string) error {
	v, err := strconv.ParseInt(arg, 0, strconv.IntSize)
	if err != nil {
		return fmt.Errorf("expected an integer, got %q", arg)
	}
	*i = intValue(v)
	return nil
}

func (i *intValue) String() string {
	return strconv.Itoa(int(*i))
}

type int64Value int64

func (i *int64Value) Set(arg string) error {
	v, err := strconv.ParseInt(arg, 0, 64)
	if err != nil {
		return fmt.Errorf("expected an integer, got %q", arg)
	}
	*i = int64Value(v)
	return nil
}

func (i *int64Value) String() string {
	return strconv.FormatInt(int64(*i), 10)
}

type stringValue string

func (s *stringValue) Set(arg string) error {
	*s = stringValue(arg)
	return nil
}

func (s *stringValue) String() string {
	return string(*s)
}

type uintValue uint

func (u *uintValue) Set(arg string) error {
	v, err := strconv.ParseUint(arg, 0, strconv.IntSize)
	if err != nil {
		return fmt.Errorf("expected an unsigned integer, got %q", arg)
	}
	*u = uintValue(v)
	return nil
}

func (u *uintValue) String() string {
	return strconv.FormatUint(uint64(*u), 10)
}

type uint64Value uint64

func (u *uint64Value) Set(arg string) error {
	v, err := strconv.ParseUint(arg, 0, 64)
	if err != nil {
		return fmt.Errorf("expected an unsigned integer, got %q", arg)
	}
	*u = uint64Value(v)
	return nil
}

func (u *uint64Value) String() string {
	return strconv.FormatUint(uint64(*u), 10)
}
