package schema

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadOpenAPI reads the definitions of an OpenAPI document and derives a
// Registry from them. Both Swagger 2 (definitions) and OpenAPI 3
// (components.schemas) layouts are accepted. Property order is kept as declared.
func LoadOpenAPI(r io.Reader) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode openapi: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, errors.New("decode openapi: empty document")
	}
	root := doc.Content[0]

	defsNode, prefix := mapGet(root, "definitions"), "#/definitions/"
	if defsNode == nil {
		defsNode, prefix = mapGet(mapGet(root, "components"), "schemas"), "#/components/schemas/"
	}
	if defsNode == nil || defsNode.Kind != yaml.MappingNode {
		return nil, errors.New("openapi: no definitions found")
	}

	l := &openapiLoader{defs: defsNode, refPrefix: prefix}
	var defs []Definition
	for i := 0; i+1 < len(defsNode.Content); i += 2 {
		name := defsNode.Content[i].Value
		d, err := l.definition(name, defsNode.Content[i+1])
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return NewRegistry(defs...)
}

type openapiLoader struct {
	defs      *yaml.Node
	refPrefix string
}

func (l *openapiLoader) definition(name string, node *yaml.Node) (Definition, error) {
	node, err := l.resolve(node)
	if err != nil {
		return Definition{}, fmt.Errorf("definition %s: %w", name, err)
	}
	d := Definition{Name: name}
	props := mapGet(node, "properties")
	d.Properties = mapKeys(props)

	data, err := l.resolve(mapGet(props, "data"))
	if err != nil {
		return Definition{}, fmt.Errorf("definition %s: data: %w", name, err)
	}
	if data == nil {
		return d, nil
	}

	item := data
	if items := mapGet(data, "items"); items != nil || scalar(mapGet(data, "type")) == "array" {
		d.Collection = true
		if item, err = l.resolve(items); err != nil {
			return Definition{}, fmt.Errorf("definition %s: data.items: %w", name, err)
		}
	}
	itemProps := mapGet(item, "properties")

	if enum := mapGet(mapGet(itemProps, "type"), "enum"); enum != nil && len(enum.Content) > 0 {
		d.Type = enum.Content[0].Value
	}

	attrs, err := l.resolve(mapGet(itemProps, "attributes"))
	if err != nil {
		return Definition{}, fmt.Errorf("definition %s: attributes: %w", name, err)
	}
	attrProps := mapGet(attrs, "properties")
	d.Attributes = mapKeys(attrProps)

	for i := 0; attrProps != nil && i+1 < len(attrProps.Content); i += 2 {
		field := attrProps.Content[i].Value
		attr, err := l.resolve(attrProps.Content[i+1])
		if err != nil {
			return Definition{}, fmt.Errorf("definition %s: %s: %w", name, field, err)
		}
		if scalar(mapGet(attr, "type")) != "array" {
			continue
		}
		items, err := l.resolve(mapGet(attr, "items"))
		if err != nil {
			return Definition{}, fmt.Errorf("definition %s: %s.items: %w", name, field, err)
		}
		// arrays of scalars carry no nested field set
		if fields := mapKeys(mapGet(items, "properties")); fields != nil {
			if d.Nested == nil {
				d.Nested = make(map[string][]string)
			}
			d.Nested[field] = fields
		}
	}
	return d, nil
}

// resolve follows $ref chains to local definitions. An absent node resolves
// to nil without error; callers treat nil as "not declared".
func (l *openapiLoader) resolve(node *yaml.Node) (*yaml.Node, error) {
	if node == nil {
		return nil, nil
	}
	for depth := 0; ; depth++ {
		ref := scalar(mapGet(node, "$ref"))
		if ref == "" {
			return node, nil
		}
		if depth > 16 {
			return nil, fmt.Errorf("$ref cycle at %q", ref)
		}
		if !strings.HasPrefix(ref, l.refPrefix) {
			return nil, fmt.Errorf("unsupported $ref %q", ref)
		}
		target := mapGet(l.defs, strings.TrimPrefix(ref, l.refPrefix))
		if target == nil {
			return nil, &SchemaNotFoundError{Definition: strings.TrimPrefix(ref, l.refPrefix)}
		}
		node = target
	}
}

// mapGet returns the value of key in a mapping node, or nil.
func mapGet(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// mapKeys returns the keys of a mapping node in document order.
func mapKeys(node *yaml.Node) []string {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return keys
}

func scalar(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}
	return node.Value
}
