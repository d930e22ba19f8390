// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argtree is a schema-driven command-line argument parser with
// automatic help generation.
//
// A tool declares a tree of flags, options, positional arguments and
// subcommands once; the engine turns a flat token stream (typically
// os.Args[1:]) into a structured result plus an optional queue of deferred
// actions. The library follows these principles:
//   - One immutable Schema tree, built up front and reused across parses
//   - A single forward scan over the tokens, recursing into subcommands
//   - Raw string capture only; type coercion is the caller's concern
//   - Deterministic help text derived from the same schema
//
// # Basic Usage
//
//	s := argtree.NewSchema("cp", "copy things around")
//	s.Flag("-v", "--verbose", "Enable verbose output")
//	s.Option("-m", "--mode", "Transfer mode", "fast")
//	s.Argument("src", 1, "Source path", "")
//	s.Argument("rest", argtree.NargsUnlimited, "Extra paths", "")
//
//	p := argtree.New(s)
//	res, err := p.Parse(os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Bool("verbose"), res.String("src"), res.Strings("rest"))
//
// # Subcommands
//
// Subcommands nest arbitrarily. The configure closure receives the child
// node; there is no global builder state:
//
//	s.Subcommand("run", "Run a service", func(c *argtree.Schema) {
//	    c.Flag("-f", "--force", "Skip confirmation")
//	    c.Defer(func(ctx context.Context, r *argtree.Result) error {
//	        return startService(ctx, r.Bool("force"))
//	    })
//	})
//
// Deferred actions registered on visited nodes run in registration order,
// exactly once, when the caller uses Run or ParseAndRun. Parse alone never
// executes them.
//
// # Token grammar
//
// A token is flag-like iff its first character is '-'. "--opt=value" is
// rewritten in place to the two tokens "--opt" "value", so both spellings
// behave identically. An option always consumes exactly the next token as
// its value, regardless of that token's shape. Unknown flags produce a
// non-fatal diagnostic and scanning continues.
//
// # Positional arguments
//
// Fixed-size arguments fill their slots in declaration order. A single
// argument per node may declare NargsUnlimited; it greedily collects every
// positional token not claimed by a fixed slot or a subcommand name.
// Fixed arguments declared after the unlimited one are anchored to the
// tail of the input: they take their values from the end of the unclaimed
// remainder, last-declared first, leaving the leftmost remainder for the
// unlimited argument.
package argtree
