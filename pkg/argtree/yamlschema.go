// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlSchema mirrors the on-disk schema document. Argument order within
// each list is preserved; arguments always sort after flags and options
// in a node's component sequence.
type yamlSchema struct {
	Name      string          `yaml:"name"`
	Help      string          `yaml:"help"`
	Flags     []yamlComponent `yaml:"flags"`
	Options   []yamlComponent `yaml:"options"`
	Arguments []yamlComponent `yaml:"arguments"`
	Commands  []yamlSchema    `yaml:"commands"`
}

type yamlComponent struct {
	Short   string `yaml:"short"`
	Long    string `yaml:"long"`
	Name    string `yaml:"name"`
	Nargs   int    `yaml:"nargs"` // 0 means 1; -1 means unlimited
	Help    string `yaml:"help"`
	Default string `yaml:"default"`
}

// LoadYAML builds a Schema tree from a YAML document. Unlike the builder
// methods, schema-rule violations in a document are data errors and are
// returned, not panicked.
func LoadYAML(data []byte) (s *Schema, err error) {
	var doc yamlSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("schema document has no name")
	}
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SchemaError)
			if !ok {
				panic(r)
			}
			s, err = nil, se
		}
	}()
	s = NewSchema(doc.Name, doc.Help)
	applyYAML(s, doc)
	return s, nil
}

// LoadYAMLFile is LoadYAML over a file path.
func LoadYAMLFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return LoadYAML(data)
}

func applyYAML(s *Schema, doc yamlSchema) {
	for _, f := range doc.Flags {
		s.Flag(f.Short, f.Long, f.Help)
	}
	for _, o := range doc.Options {
		s.Option(o.Short, o.Long, o.Help, o.Default)
	}
	for _, a := range doc.Arguments {
		nargs := a.Nargs
		if nargs == 0 {
			nargs = 1
		}
		s.Argument(a.Name, nargs, a.Help, a.Default)
	}
	for _, c := range doc.Commands {
		child := c
		s.Subcommand(child.Name, child.Help, func(sub *Schema) {
			applyYAML(sub, child)
		})
	}
}
