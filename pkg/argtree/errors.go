// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import "fmt"

// SchemaError reports schema construction misuse: duplicate varnames,
// a second unlimited Argument, or mutation after freeze. Builder methods
// panic with a *SchemaError the moment the rule is violated; it is a
// programmer error, not input.
type SchemaError struct {
	Node string // schema node name
	Msg  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema %q: %s", e.Node, e.Msg)
}

// MissingValueError is returned when the token stream ends right after an
// Option's flag, leaving it without a value.
type MissingValueError struct {
	Flag string // spelling as it appeared, e.g. "--output"
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing value for option %s", e.Flag)
}

// UnexpectedArgError is returned for a positional token with no Argument
// slot, no matching subcommand, and no unlimited capture to absorb it.
type UnexpectedArgError struct {
	Arg string
}

func (e *UnexpectedArgError) Error() string {
	return fmt.Sprintf("Unexpected argument: %s", e.Arg)
}

// MissingArgError is returned when a tail-anchored Argument with no
// default cannot be satisfied from the unclaimed remainder.
type MissingArgError struct {
	Name string // argument name
}

func (e *MissingArgError) Error() string {
	return fmt.Sprintf("missing required argument %q", e.Name)
}
