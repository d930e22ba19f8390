// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"fmt"
	"slices"
	"strings"
)

// parseState is the mutable cursor of one root parse call. Subcommand
// recursion receives the same state by pointer; it is never shared across
// concurrent calls and is discarded when parsing finishes.
type parseState struct {
	tokens    []string
	cursor    int
	npos      int      // positional tokens consumed, shared across the subcommand chain
	unclaimed []string // tokens pending tail resolution
	flushed   bool
	queue     []queuedAction
	warnings  []string
}

// queuedAction binds a deferred action to the result of the node that
// registered it.
type queuedAction struct {
	fn  Action
	res *Result
}

func (st *parseState) warnf(format string, args ...any) {
	st.warnings = append(st.warnings, fmt.Sprintf(format, args...))
}

func isFlagToken(tok string) bool {
	return tok != "" && tok[0] == '-'
}

// splitEq splits "--opt=value" into its flag and value parts. The '=' must
// appear after the flag marker.
func splitEq(tok string) (flag, val string, ok bool) {
	body := strings.TrimLeft(tok, "-")
	idx := strings.Index(body, "=")
	if idx < 0 {
		return "", "", false
	}
	marker := len(tok) - len(body)
	return tok[:marker+idx], tok[marker+idx+1:], true
}

// parse consumes tokens against this node, starting at the state's
// cursor. It recurses into a dispatched subcommand and returns the node's
// result record.
func (s *Schema) parse(st *parseState) (*Result, error) {
	res := newResult(s)
	for _, c := range s.parts {
		res.seed(c)
	}
	for _, fn := range s.actions {
		st.queue = append(st.queue, queuedAction{fn: fn, res: res})
	}

	base := st.npos

	for st.cursor < len(st.tokens) {
		tok := st.tokens[st.cursor]

		if isFlagToken(tok) {
			if flag, val, ok := splitEq(tok); ok {
				// Rewrite the stream so --opt=value and --opt value are
				// handled identically downstream.
				rest := slices.Clone(st.tokens[st.cursor+1:])
				st.tokens = append(st.tokens[:st.cursor], flag, val)
				st.tokens = append(st.tokens, rest...)
				tok = flag
			}
			c, ok := s.flagIndex[tok]
			if !ok {
				st.warnf("unknown flag: %s", tok)
				st.cursor++
				continue
			}
			switch c.kind {
			case kindFlag:
				res.setBool(c.varname, true)
			case kindOption:
				// The next token is the value, whatever its shape.
				if st.cursor+1 >= len(st.tokens) {
					return nil, &MissingValueError{Flag: tok}
				}
				st.cursor++
				res.setString(c.varname, st.tokens[st.cursor])
			}
			st.cursor++
			continue
		}

		// Positional token. Slot positions are relative to the count at
		// node entry; the counter itself spans the whole chain.
		pos := st.npos - base
		switch {
		case pos < s.minArgsBeforeCommand():
			c := s.slots[pos]
			if c.nargs > 1 {
				res.appendList(c.varname, tok)
			} else {
				res.setString(c.varname, tok)
			}
			st.npos++
			st.cursor++

		case len(s.children) > 0 && s.childIndex[tok] != nil:
			child := s.childIndex[tok]
			st.cursor++
			sub, err := child.parse(st)
			if err != nil {
				return nil, err
			}
			sub.parent = res
			res.sub = sub

		case s.unlimited != nil:
			st.unclaimed = append(st.unclaimed, tok)
			st.npos++
			st.cursor++

		default:
			return nil, &UnexpectedArgError{Arg: tok}
		}
	}

	// Tail resolution happens once, in the deepest node that declares an
	// unlimited argument. Tokens only enter the unclaimed buffer in such
	// a node.
	if s.unlimited != nil && !st.flushed {
		st.flushed = true
		if err := s.flush(st, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// flush resolves components declared after the unlimited argument from
// the tail of the unclaimed buffer, last-declared first, then hands the
// remainder to the unlimited argument.
func (s *Schema) flush(st *parseState, res *Result) error {
	for i := len(s.trailing) - 1; i >= 0; i-- {
		c := s.trailing[i]
		if len(st.unclaimed) < c.nargs {
			if c.def != "" {
				continue // seeded default stands
			}
			return &MissingArgError{Name: c.name}
		}
		vals := st.unclaimed[len(st.unclaimed)-c.nargs:]
		st.unclaimed = st.unclaimed[:len(st.unclaimed)-c.nargs]
		if c.nargs == 1 {
			res.setString(c.varname, vals[0])
		} else {
			res.setList(c.varname, slices.Clone(vals))
		}
	}
	if len(st.unclaimed) > 0 || s.unlimited.def == "" {
		res.setList(s.unlimited.varname, slices.Clone(st.unclaimed))
	}
	st.unclaimed = st.unclaimed[:0]
	return nil
}
