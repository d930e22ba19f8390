// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import "context"

// Action is a deferred closure registered on a schema node. It receives
// the node's parsed result when the queue is executed under also-run
// semantics.
type Action func(ctx context.Context, r *Result) error

// Schema describes one parser or subcommand: its components, children and
// deferred actions. Build it with NewSchema and the chainable builder
// methods, then freeze it (the Parser facade freezes implicitly). A frozen
// Schema is immutable and safe to share across concurrent Parse calls.
type Schema struct {
	name     string
	help     string
	parts    []*component
	children []*Schema
	parent   *Schema
	actions  []Action

	frozen bool

	// computed at freeze
	flagIndex  map[string]*component
	childIndex map[string]*Schema
	slots      []*component // fixed-argument slot owners, before the unlimited argument
	unlimited  *component
	trailing   []*component // fixed arguments declared after the unlimited one
	helpText   string
}

// NewSchema starts a root schema node.
func NewSchema(name, help string) *Schema {
	if name == "" {
		panic(&SchemaError{Node: name, Msg: "empty schema name"})
	}
	return &Schema{name: name, help: help}
}

// Name returns the node's display name.
func (s *Schema) Name() string { return s.name }

// SetHelp replaces the node's help text.
func (s *Schema) SetHelp(text string) *Schema {
	s.mutable()
	s.help = text
	return s
}

// Flag declares a boolean presence switch. Either spelling may be empty,
// not both.
func (s *Schema) Flag(short, long, help string) *Schema {
	s.add(&component{kind: kindFlag, short: short, long: long, help: help})
	return s
}

// Option declares a flag that takes exactly one following value. def
// pre-seeds the result when the option is absent; an empty def means no
// default.
func (s *Schema) Option(short, long, help, def string) *Schema {
	s.add(&component{kind: kindOption, short: short, long: long, help: help, def: def})
	return s
}

// Argument declares a positional argument. nargs is a fixed positive
// count, or NargsUnlimited to consume all remaining unclaimed tokens. At
// most one Argument per node may be unlimited.
func (s *Schema) Argument(name string, nargs int, help, def string) *Schema {
	if nargs == 0 || nargs < NargsUnlimited {
		panic(&SchemaError{Node: s.name, Msg: "argument nargs must be positive or NargsUnlimited"})
	}
	s.add(&component{kind: kindArgument, name: name, nargs: nargs, help: help, def: def})
	return s
}

// Subcommand appends a child node and hands it to configure. It returns
// the child so callers can hold on to it; configure may be nil.
func (s *Schema) Subcommand(name, help string, configure func(*Schema)) *Schema {
	s.mutable()
	if name == "" {
		panic(&SchemaError{Node: s.name, Msg: "empty subcommand name"})
	}
	for _, c := range s.children {
		if c.name == name {
			panic(&SchemaError{Node: s.name, Msg: "duplicate subcommand " + name})
		}
	}
	child := &Schema{name: name, help: help, parent: s}
	s.children = append(s.children, child)
	if configure != nil {
		configure(child)
	}
	return child
}

// Defer registers a deferred action for this node. Actions of every node
// visited during a parse are queued in registration order and executed
// only by the top-level caller under also-run semantics.
func (s *Schema) Defer(fn Action) *Schema {
	s.mutable()
	if fn == nil {
		panic(&SchemaError{Node: s.name, Msg: "nil deferred action"})
	}
	s.actions = append(s.actions, fn)
	return s
}

func (s *Schema) mutable() {
	if s.frozen {
		panic(&SchemaError{Node: s.name, Msg: "schema is frozen"})
	}
}

func (s *Schema) add(c *component) {
	s.mutable()
	if c.isFlagLike() {
		if c.short == "" && c.long == "" {
			panic(&SchemaError{Node: s.name, Msg: "flag needs a short or long spelling"})
		}
		if c.long != "" {
			c.varname = varname(c.long)
		} else {
			c.varname = varname(c.short)
		}
	} else {
		if c.name == "" {
			panic(&SchemaError{Node: s.name, Msg: "empty argument name"})
		}
		c.varname = varname(c.name)
	}
	if c.varname == "" {
		panic(&SchemaError{Node: s.name, Msg: "component normalizes to an empty varname"})
	}
	for _, prev := range s.parts {
		if prev.varname == c.varname {
			panic(&SchemaError{Node: s.name, Msg: "duplicate varname " + c.varname})
		}
	}
	if c.kind == kindArgument && c.nargs == NargsUnlimited {
		for _, prev := range s.parts {
			if prev.kind == kindArgument && prev.nargs == NargsUnlimited {
				panic(&SchemaError{Node: s.name, Msg: "second unlimited argument " + c.name})
			}
		}
	}
	s.parts = append(s.parts, c)
}

// Freeze validates the tree, builds the lookup tables and precomputes the
// help text. Freezing twice is a no-op. After Freeze the builder methods
// panic.
func (s *Schema) Freeze() *Schema {
	if s.frozen {
		return s
	}
	s.flagIndex = make(map[string]*component)
	s.childIndex = make(map[string]*Schema, len(s.children))
	for _, c := range s.parts {
		switch {
		case c.isFlagLike():
			for _, sp := range []string{c.short, c.long} {
				if sp == "" {
					continue
				}
				if _, dup := s.flagIndex[sp]; dup {
					panic(&SchemaError{Node: s.name, Msg: "duplicate flag spelling " + sp})
				}
				s.flagIndex[sp] = c
			}
		case c.nargs == NargsUnlimited:
			s.unlimited = c
		case s.unlimited != nil:
			s.trailing = append(s.trailing, c)
		default:
			for i := 0; i < c.nargs; i++ {
				s.slots = append(s.slots, c)
			}
		}
	}
	for _, child := range s.children {
		s.childIndex[child.name] = child
		child.Freeze()
	}
	s.helpText = renderHelp(s)
	s.frozen = true
	return s
}

// minArgsBeforeCommand is the number of positional slots owned by
// fixed-size Arguments declared before the unlimited Argument (or before
// subcommand dispatch when there is none).
func (s *Schema) minArgsBeforeCommand() int { return len(s.slots) }

// Help returns the node's usage text. The schema must be frozen.
func (s *Schema) Help() string {
	if !s.frozen {
		panic(&SchemaError{Node: s.name, Msg: "help requested before freeze"})
	}
	return s.helpText
}
