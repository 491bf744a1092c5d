// Package schema holds the attribute contract of every resource document.
//
// A Registry maps a definition name to its declared field set. It is built
// once at startup, either from the compiled-in table (Default) or from an
// OpenAPI document (LoadOpenAPI), and is read-only afterwards, so a single
// Registry may be shared by any number of goroutines.
package schema

import (
	"fmt"
	"slices"
)

// Definition is the declared shape of one schema definition.
type Definition struct {
	Name string `json:"name" yaml:"name"`

	// Type is the resource type enumerated under data.type. Empty for plain
	// object definitions such as GradePointAverage.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Collection reports whether data is an array of resources.
	Collection bool `json:"collection" yaml:"collection"`

	// Properties are the top-level property names of the definition.
	Properties []string `json:"properties" yaml:"properties"`

	// Attributes are the attribute names of one resource: data.attributes for
	// a single resource, data.items.attributes for a collection.
	Attributes []string `json:"attributes,omitempty" yaml:"attributes,omitempty"`

	// Nested maps an array-valued attribute to the field names of its items.
	Nested map[string][]string `json:"nested,omitempty" yaml:"nested,omitempty"`
}

// Registry is a read-only lookup of definitions by name.
type Registry struct {
	defs  map[string]*Definition
	order []string
}

// NewRegistry builds a Registry. Definition names must be unique and non-empty.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]*Definition, len(defs))}
	for i := range defs {
		d := defs[i]
		if d.Name == "" {
			return nil, fmt.Errorf("schema: definition %d has no name", i)
		}
		if _, dup := r.defs[d.Name]; dup {
			return nil, fmt.Errorf("schema: duplicate definition %q", d.Name)
		}
		r.defs[d.Name] = &d
		r.order = append(r.order, d.Name)
	}
	return r, nil
}

// Names returns the definition names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Definition returns the named definition.
func (r *Registry) Definition(name string) (*Definition, error) {
	d, ok := r.defs[name]
	if !ok {
		return nil, &SchemaNotFoundError{Definition: name}
	}
	return d, nil
}

// FieldsOf returns the top-level property names of a flat definition.
func (r *Registry) FieldsOf(name string) ([]string, error) {
	d, err := r.Definition(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(d.Properties), nil
}

// ItemFieldsOf returns the attribute names of one element of a collection
// definition's data array.
func (r *Registry) ItemFieldsOf(name string) ([]string, error) {
	d, err := r.Definition(name)
	if err != nil {
		return nil, err
	}
	if !d.Collection {
		return nil, fmt.Errorf("schema: definition %q is not a collection", name)
	}
	return slices.Clone(d.Attributes), nil
}

// NestedFieldsOf returns the field names of one element of the array-valued
// attribute field.
func (r *Registry) NestedFieldsOf(name, field string) ([]string, error) {
	d, err := r.Definition(name)
	if err != nil {
		return nil, err
	}
	fields, ok := d.Nested[field]
	if !ok {
		return nil, &NestedFieldNotFoundError{Definition: name, Field: field}
	}
	return slices.Clone(fields), nil
}

// AttributesOf returns the attribute names of one resource of the definition,
// whether it is single or a collection.
func (r *Registry) AttributesOf(name string) ([]string, error) {
	d, err := r.Definition(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(d.Attributes), nil
}

// TypeOf returns the resource type declared by the definition.
func (r *Registry) TypeOf(name string) (string, error) {
	d, err := r.Definition(name)
	if err != nil {
		return "", err
	}
	if d.Type == "" {
		return "", fmt.Errorf("schema: definition %q declares no resource type", name)
	}
	return d.Type, nil
}

// Require checks that every named definition exists and declares a resource type.
// Meant to run once at startup.
func (r *Registry) Require(names ...string) error {
	for _, n := range names {
		if _, err := r.TypeOf(n); err != nil {
			return err
		}
	}
	return nil
}
