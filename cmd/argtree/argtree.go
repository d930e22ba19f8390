// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argtree loads an argument schema from a YAML document and
// exercises it: render its help text, or parse a token stream against it
// and dump the result tree.
//
//	argtree -s schema.yaml [--run] [--help-only] -- <argv...>
//
// Everything before the literal "--" belongs to argtree itself (parsed
// with the same library); everything after it is forwarded verbatim to
// the loaded schema, so flag-like tokens reach the target parser
// untouched.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/yeetrun/argtree/pkg/argtree"
	"golang.org/x/term"
)

var stderrIsTTY = term.IsTerminal(int(os.Stderr.Fd()))

func errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if stderrIsTTY {
		msg = color.RedString("%s", msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}

func warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if stderrIsTTY {
		msg = color.YellowString("%s", msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}

func selfSchema() *argtree.Schema {
	s := argtree.NewSchema("argtree", "Inspect and exercise YAML-declared argument schemas")
	s.Option("-s", "--schema", "Path to the schema document", "schema.yaml")
	s.Flag("", "--run", "Execute deferred actions after a successful parse")
	s.Flag("", "--help-only", "Render the schema's help text and exit")
	return s
}

// splitArgv separates argtree's own arguments from the token stream
// destined for the loaded schema. The tail after the first literal "--"
// is forwarded verbatim.
func splitArgv(args []string) (head, tail []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		errorf("Error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	self := argtree.New(selfSchema(), argtree.WithWarnFunc(warnf))
	if len(args) == 0 {
		fmt.Fprint(stdout, self.Help())
		return nil
	}

	head, tail := splitArgv(args)
	res, err := self.Parse(head)
	if err != nil {
		return err
	}

	target, err := argtree.LoadYAMLFile(res.String("schema"))
	if err != nil {
		return err
	}
	p := argtree.New(target, argtree.WithWarnFunc(warnf))

	if res.Bool("help_only") {
		fmt.Fprint(stdout, p.Help())
		return nil
	}

	var parsed *argtree.Result
	if res.Bool("run") {
		parsed, err = p.ParseAndRun(ctx, tail)
	} else {
		parsed, err = p.Parse(tail)
	}
	if err != nil {
		return err
	}
	dump(stdout, parsed, 0)
	return nil
}

// dump prints a result tree, one node per block, subcommands indented.
func dump(w io.Writer, r *argtree.Result, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s:\n", indent, r.Name())

	values := r.Values()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s  %s = %v\n", indent, name, values[name])
	}

	if sub := r.Sub(); sub != nil {
		dump(w, sub, depth+1)
	}
}
