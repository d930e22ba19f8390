// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

type valueKind int

const (
	boolValue valueKind = iota
	stringValue
	listValue
)

// value is the tagged union stored under a varname: bool for a Flag,
// string for an Option or a fixed nargs=1 Argument, string list otherwise.
type value struct {
	kind valueKind
	b    bool
	s    string
	list []string
}

// Result holds the parsed values of one schema node, keyed by varname.
// When the node dispatched a subcommand, Sub returns the child's result;
// a subcommand's result links back to its parent. A Result is immutable
// once its node's parse call completes.
type Result struct {
	schema   *Schema
	parent   *Result
	sub      *Result
	values   map[string]value
	explicit map[string]bool
	warnings []string // root result only
}

func newResult(s *Schema) *Result {
	return &Result{
		schema:   s,
		values:   make(map[string]value, len(s.parts)),
		explicit: make(map[string]bool),
	}
}

// Name returns the schema node name this result belongs to.
func (r *Result) Name() string { return r.schema.name }

// Parent returns the enclosing command's result, or nil at the root.
func (r *Result) Parent() *Result { return r.parent }

// Sub returns the dispatched subcommand's result, or nil.
func (r *Result) Sub() *Result { return r.sub }

// Command returns the name of the dispatched subcommand, or "".
func (r *Result) Command() string {
	if r.sub == nil {
		return ""
	}
	return r.sub.schema.name
}

// Has reports whether the varname was set explicitly by the token stream,
// as opposed to holding a default or zero value.
func (r *Result) Has(name string) bool { return r.explicit[name] }

// Bool returns a Flag's value. False unless the flag appeared.
func (r *Result) Bool(name string) bool { return r.values[name].b }

// String returns an Option's or nargs=1 Argument's value.
func (r *Result) String(name string) string { return r.values[name].s }

// Strings returns a list-valued Argument's value.
func (r *Result) Strings(name string) []string { return r.values[name].list }

// Warnings returns the non-fatal diagnostics collected during the parse.
// Only the root result carries them.
func (r *Result) Warnings() []string { return r.warnings }

// Values returns a copy of the record as varname to bool, string or
// []string, for callers that want to walk a result generically.
func (r *Result) Values() map[string]any {
	out := make(map[string]any, len(r.values))
	for name, v := range r.values {
		switch v.kind {
		case boolValue:
			out[name] = v.b
		case stringValue:
			out[name] = v.s
		case listValue:
			out[name] = append([]string(nil), v.list...)
		}
	}
	return out
}

func (r *Result) setBool(name string, b bool) {
	r.values[name] = value{kind: boolValue, b: b}
	r.explicit[name] = true
}

func (r *Result) setString(name, s string) {
	r.values[name] = value{kind: stringValue, s: s}
	r.explicit[name] = true
}

func (r *Result) setList(name string, list []string) {
	r.values[name] = value{kind: listValue, list: list}
	r.explicit[name] = true
}

// appendList grows a multi-token slot. The first explicit token replaces
// any seeded default.
func (r *Result) appendList(name, tok string) {
	if !r.explicit[name] {
		r.setList(name, []string{tok})
		return
	}
	v := r.values[name]
	v.list = append(v.list, tok)
	r.values[name] = v
}

func (r *Result) seed(c *component) {
	switch {
	case c.kind == kindFlag:
		r.values[c.varname] = value{kind: boolValue}
	case c.def == "":
		// nothing to seed
	case c.kind == kindOption || c.nargs == 1:
		r.values[c.varname] = value{kind: stringValue, s: c.def}
	default:
		r.values[c.varname] = value{kind: listValue, list: []string{c.def}}
	}
}
