// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"context"
	"fmt"
	"os"
	"slices"
)

// WarnFunc is the function signature of a printf function used for
// non-fatal diagnostics.
type WarnFunc func(format string, args ...any)

// Parser wraps a frozen root Schema and exposes the parse/run/help entry
// points. It owns no per-parse state and may be shared freely.
type Parser struct {
	root  *Schema
	warnf WarnFunc
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithWarnFunc routes non-fatal diagnostics (unknown flags) to f instead
// of stderr.
func WithWarnFunc(f WarnFunc) ParserOption {
	return func(p *Parser) { p.warnf = f }
}

// New freezes root and returns a Parser around it. Help text is computed
// here, once.
func New(root *Schema, opts ...ParserOption) *Parser {
	root.Freeze()
	p := &Parser{
		root: root,
		warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse consumes tokens against the root schema and returns the result
// tree. Deferred actions are queued but not executed.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	res, _, err := p.parse(tokens)
	return res, err
}

// ParseAndRun parses tokens and, on success, executes the deferred-action
// queue in registration order, exactly once.
func (p *Parser) ParseAndRun(ctx context.Context, tokens []string) (*Result, error) {
	res, queue, err := p.parse(tokens)
	if err != nil {
		return nil, err
	}
	for _, q := range queue {
		if err := q.fn(ctx, q.res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Run is ParseAndRun discarding the result.
func (p *Parser) Run(ctx context.Context, tokens []string) error {
	_, err := p.ParseAndRun(ctx, tokens)
	return err
}

// ParseArgs parses the process's own argument vector.
func (p *Parser) ParseArgs() (*Result, error) {
	return p.Parse(os.Args[1:])
}

// RunArgs runs against the process's own argument vector.
func (p *Parser) RunArgs(ctx context.Context) error {
	return p.Run(ctx, os.Args[1:])
}

// Help returns the root schema's usage text, precomputed at freeze time.
func (p *Parser) Help() string { return p.root.Help() }

func (p *Parser) parse(tokens []string) (*Result, []queuedAction, error) {
	st := &parseState{tokens: slices.Clone(tokens)}
	res, err := p.root.parse(st)
	if err != nil {
		return nil, nil, err
	}
	res.warnings = st.warnings
	for _, w := range st.warnings {
		p.warnf("%s", w)
	}
	return res, st.queue, nil
}
