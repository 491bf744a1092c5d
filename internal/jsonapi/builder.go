package jsonapi

import (
	"fmt"
	"net/url"
	"strings"

	"students/internal/schema"
)

// QueryParam is one query-string pair echoed into the self link.
type QueryParam struct {
	Key   string
	Value string
}

// Entry is one member of a collection: its composite id and attributes.
type Entry struct {
	ID         string
	Attributes Attributes
}

// Builder wraps attribute sets into resource documents. It is resource-type
// agnostic: the type name and the attribute contract come from the Registry.
type Builder struct {
	registry *schema.Registry
	basePath string
}

// NewBuilder creates a Builder whose self links start with basePath,
// e.g. "/v1/students".
func NewBuilder(registry *schema.Registry, basePath string) *Builder {
	return &Builder{registry: registry, basePath: strings.TrimRight(basePath, "/")}
}

// Registry returns the schema registry the builder validates against.
func (b *Builder) Registry() *schema.Registry {
	return b.registry
}

// SelfLink returns basePath/subjectID/resourcePath, followed by the query
// parameters in the order given when there are any.
func (b *Builder) SelfLink(subjectID, resourcePath string, params []QueryParam) string {
	link := b.basePath + "/" + subjectID + "/" + resourcePath
	if len(params) == 0 {
		return link
	}
	pairs := make([]string, len(params))
	for i, p := range params {
		pairs[i] = url.QueryEscape(p.Key) + "=" + url.QueryEscape(p.Value)
	}
	return link + "?" + strings.Join(pairs, "&")
}

// Single builds a document holding one resource identified by subjectID.
func (b *Builder) Single(subjectID, definition, resourcePath string, params []QueryParam, attrs Attributes) (*Document, error) {
	typ, err := b.registry.TypeOf(definition)
	if err != nil {
		return nil, err
	}
	if err := b.check(definition, attrs); err != nil {
		return nil, err
	}
	self := b.SelfLink(subjectID, resourcePath, params)
	return &Document{
		Data: &Resource{
			ID:         subjectID,
			Type:       typ,
			Links:      Links{Self: nil},
			Attributes: attrs,
		},
		Links: Links{Self: &self},
	}, nil
}

// Collection builds a document whose data is one resource per entry, in order.
// Entry ids are taken as given.
func (b *Builder) Collection(subjectID, definition, resourcePath string, params []QueryParam, entries []Entry) (*Document, error) {
	typ, err := b.registry.TypeOf(definition)
	if err != nil {
		return nil, err
	}
	data := make([]Resource, 0, len(entries))
	for _, e := range entries {
		if err := b.check(definition, e.Attributes); err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		data = append(data, Resource{
			ID:         e.ID,
			Type:       typ,
			Links:      Links{Self: nil},
			Attributes: e.Attributes,
		})
	}
	self := b.SelfLink(subjectID, resourcePath, params)
	return &Document{Data: data, Links: Links{Self: &self}}, nil
}

// check verifies the attribute keys, and the keys of every element of each
// nested array attribute, against the registry.
func (b *Builder) check(definition string, attrs Attributes) error {
	def, err := b.registry.Definition(definition)
	if err != nil {
		return err
	}
	if err := schema.CheckKeys(definition, "", def.Attributes, attrs.Keys()); err != nil {
		return err
	}
	for field, declared := range def.Nested {
		items, ok := attrs[field].([]Attributes)
		if !ok {
			return fmt.Errorf("attribute %s.%s: expected []Attributes, got %T", definition, field, attrs[field])
		}
		for _, item := range items {
			if err := schema.CheckKeys(definition, field, declared, item.Keys()); err != nil {
				return err
			}
		}
	}
	return nil
}
