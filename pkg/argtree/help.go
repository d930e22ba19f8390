// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"fmt"
	"strings"
)

// Help column widths. These are part of the observable contract: the same
// schema always renders byte-identical text.
const (
	optionCol  = 26
	commandCol = 16
)

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// renderHelp is a pure function of the schema node. It is evaluated once
// at freeze time.
func renderHelp(s *Schema) string {
	var b strings.Builder

	b.WriteString(s.name)
	b.WriteString("\n\n")

	b.WriteString("Usage: ")
	b.WriteString(s.name)
	hasOptions := false
	var args []*component
	for _, c := range s.parts {
		if c.isFlagLike() {
			hasOptions = true
		} else {
			args = append(args, c)
		}
	}
	if hasOptions {
		b.WriteString(" [options]")
	}
	for _, c := range args {
		b.WriteString(" ")
		b.WriteString(c.placeholder())
	}
	if len(s.children) > 0 {
		b.WriteString(" COMMAND")
	}
	b.WriteString("\n")

	if len(s.children) > 0 {
		b.WriteString("\nCommands:\n")
		for _, child := range s.children {
			fmt.Fprintf(&b, "  %-*s%s\n", commandCol, child.name, firstLine(child.help))
		}
	}

	if len(args) > 0 {
		b.WriteString("\nArguments:\n")
		for _, c := range args {
			fmt.Fprintf(&b, "  %-*s%s\n", commandCol, c.placeholder(), withDefault(c.help, c.def))
		}
	}

	if hasOptions {
		b.WriteString("\nOptions:\n")
		for _, c := range s.parts {
			if !c.isFlagLike() {
				continue
			}
			help := c.help
			if c.kind == kindOption {
				help = withDefault(help, c.def)
			}
			spelling := c.spelling()
			if len(spelling) > optionCol {
				// Spelling overflows the column; wrap the help text to
				// the next line at the same indent.
				fmt.Fprintf(&b, "  %s\n  %*s%s\n", spelling, optionCol, "", help)
			} else {
				fmt.Fprintf(&b, "  %-*s%s\n", optionCol, spelling, help)
			}
		}
	}

	return b.String()
}

func withDefault(help, def string) string {
	if def == "" {
		return help
	}
	if help == "" {
		return fmt.Sprintf("(default: %s)", def)
	}
	return fmt.Sprintf("%s (default: %s)", help, def)
}
