// Package variant implements the runtime half of the engine: instances
// pairing a discriminant with a single live payload, construction and
// access by storage-tree descent, and generic dispatch over the live
// alternative.
package variant

import (
	"vartree/altset"
	"vartree/layout"
	"vartree/shape"
)

// Schema is the build-time product for one alternative set: the validated
// set, its balanced storage tree, and its footprint. It is immutable after
// construction and shared by every instance it creates.
type Schema struct {
	set  *altset.Set
	tree *shape.Tree
	fp   layout.Footprint
}

// NewSchema validates the alternatives and builds the schema for the
// default target.
func NewSchema(alts []altset.Alternative) (*Schema, error) {
	return NewSchemaFor(alts, layout.X86_64LinuxGNU())
}

// NewSchemaFor builds a schema with the footprint computed for target.
func NewSchemaFor(alts []altset.Alternative, target layout.Target) (*Schema, error) {
	set, err := altset.New(alts)
	if err != nil {
		return nil, err
	}
	tree, err := shape.Build(set.Len())
	if err != nil {
		return nil, err
	}
	fp, err := layout.New(target).Footprint(set)
	if err != nil {
		return nil, err
	}
	return &Schema{set: set, tree: tree, fp: fp}, nil
}

// Len returns the number of alternatives.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return s.set.Len()
}

// Set returns the validated alternative set.
func (s *Schema) Set() *altset.Set {
	if s == nil {
		return nil
	}
	return s.set
}

// Tree returns the storage tree shape.
func (s *Schema) Tree() *shape.Tree {
	if s == nil {
		return nil
	}
	return s.tree
}

// Footprint returns the byte-level layout computed at build time.
func (s *Schema) Footprint() layout.Footprint {
	if s == nil {
		return layout.Footprint{Align: 1}
	}
	return s.fp
}
