package schema

import (
	"fmt"
	"slices"
	"strings"
)

// SchemaNotFoundError reports a definition name absent from the Registry.
// It signals a configuration defect, not a bad request.
type SchemaNotFoundError struct {
	Definition string
}

func (e *SchemaNotFoundError) Error() string {
	return fmt.Sprintf("schema: definition %q not found", e.Definition)
}

// NestedFieldNotFoundError reports an array attribute the definition does not declare.
type NestedFieldNotFoundError struct {
	Definition string
	Field      string
}

func (e *NestedFieldNotFoundError) Error() string {
	return fmt.Sprintf("schema: definition %q has no nested field %q", e.Definition, e.Field)
}

// AttributeMismatchError reports an attribute set whose keys differ from the
// declared field set.
type AttributeMismatchError struct {
	Definition string
	Field      string // nested array attribute, empty for the resource itself
	Missing    []string
	Extra      []string
}

func (e *AttributeMismatchError) Error() string {
	where := e.Definition
	if e.Field != "" {
		where += "." + e.Field + "[]"
	}
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "extra "+strings.Join(e.Extra, ", "))
	}
	return fmt.Sprintf("schema: attributes of %s do not match: %s", where, strings.Join(parts, "; "))
}

// CheckKeys compares a produced key set against the declared fields.
// Returns an *AttributeMismatchError naming missing and extra keys, or nil.
func CheckKeys(definition, field string, declared, got []string) error {
	var missing, extra []string
	for _, d := range declared {
		if !slices.Contains(got, d) {
			missing = append(missing, d)
		}
	}
	for _, g := range got {
		if !slices.Contains(declared, g) {
			extra = append(extra, g)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	slices.Sort(missing)
	slices.Sort(extra)
	return &AttributeMismatchError{Definition: definition, Field: field, Missing: missing, Extra: extra}
}
