// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import "strings"

// NargsUnlimited marks a positional Argument that captures all remaining
// unclaimed tokens.
const NargsUnlimited = -1

type componentKind int

const (
	kindFlag componentKind = iota
	kindOption
	kindArgument
)

// component is one declared schema element: a boolean Flag, a
// value-taking Option, or a positional Argument.
type component struct {
	kind    componentKind
	short   string // flag spelling including dashes, e.g. "-v"
	long    string // flag spelling including dashes, e.g. "--verbose"
	name    string // argument name, no dashes
	help    string
	def     string
	nargs   int
	varname string
}

// varname normalizes a component spelling into the identifier its parsed
// value is stored under: leading dashes stripped, internal dashes replaced
// with underscores, leading/trailing underscores trimmed.
func varname(s string) string {
	s = strings.TrimLeft(s, "-")
	s = strings.ReplaceAll(s, "-", "_")
	return strings.Trim(s, "_")
}

func (c *component) isFlagLike() bool {
	return c.kind == kindFlag || c.kind == kindOption
}

// spelling returns the comma-joined short/long form used in the Options
// help block, e.g. "-o, --output".
func (c *component) spelling() string {
	switch {
	case c.short != "" && c.long != "":
		return c.short + ", " + c.long
	case c.long != "":
		return c.long
	default:
		return c.short
	}
}

// placeholder returns the usage-line rendering of an Argument.
func (c *component) placeholder() string {
	name := strings.ToUpper(c.name)
	switch {
	case c.nargs == NargsUnlimited:
		return "[" + name + " ...]"
	case c.nargs > 1:
		parts := make([]string, c.nargs)
		for i := range parts {
			parts[i] = name
		}
		return strings.Join(parts, " ")
	case c.def != "":
		return "[" + name + "]"
	default:
		return name
	}
}
