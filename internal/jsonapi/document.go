// Package jsonapi builds the JSON:API envelopes returned for student resources.
package jsonapi

// Links holds a self link. A nil Self encodes as null.
type Links struct {
	Self *string `json:"self"`
}

// Attributes is the attribute set of one resource, or of one element of an
// array-valued attribute.
type Attributes map[string]any

// Keys returns the attribute names in no particular order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	return keys
}

// Resource is one entry of a document's data.
type Resource struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Links      Links      `json:"links"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// Document is a resource document. Data holds a *Resource for a single
// resource and a []Resource for a collection.
type Document struct {
	Data  any   `json:"data"`
	Links Links `json:"links"`
}

// Resource returns the single resource of the document, or nil for a collection.
func (d *Document) Resource() *Resource {
	r, _ := d.Data.(*Resource)
	return r
}

// Resources returns the entries of a collection document, or nil for a single resource.
func (d *Document) Resources() []Resource {
	rs, _ := d.Data.([]Resource)
	return rs
}

// SelfLink returns the top-level self link, "" when unset.
func (d *Document) SelfLink() string {
	if d.Links.Self == nil {
		return ""
	}
	return *d.Links.Self
}

// ErrorObject is a JSON:API error.
type ErrorObject struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// ErrorDocument is the body returned for failed requests.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}
