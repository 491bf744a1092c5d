package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(
		Definition{Name: "fakeItem", Properties: []string{"a", "b"}},
		Definition{
			Name:       "fakeSingleResult",
			Type:       "fakeType",
			Properties: []string{"links", "data"},
			Attributes: []string{"fakeAttribute1", "fakeAttribute2", "fakeAttribute3"},
			Nested:     map[string][]string{"fakeAttribute3": {"x", "y"}},
		},
		Definition{
			Name:       "fakePluralResult",
			Type:       "fakeType",
			Collection: true,
			Properties: []string{"links", "data"},
			Attributes: []string{"fakeAttribute1"},
		},
	)
	require.NoError(t, err)
	return r
}

func TestRegistry_FieldsOf(t *testing.T) {
	r := fakeRegistry(t)

	fields, err := r.FieldsOf("fakeItem")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, fields)

	items, err := r.ItemFieldsOf("fakePluralResult")
	require.NoError(t, err)
	assert.Equal(t, []string{"fakeAttribute1"}, items)

	nested, err := r.NestedFieldsOf("fakeSingleResult", "fakeAttribute3")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, nested)
}

func TestRegistry_ItemFieldsOf_NotCollection(t *testing.T) {
	r := fakeRegistry(t)
	_, err := r.ItemFieldsOf("fakeSingleResult")
	require.Error(t, err)
}

func TestRegistry_NestedFieldNotFound(t *testing.T) {
	r := fakeRegistry(t)
	_, err := r.NestedFieldsOf("fakeSingleResult", "fakeAttribute1")

	var nf *NestedFieldNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "fakeAttribute1", nf.Field)
}

func TestRegistry_SchemaNotFound(t *testing.T) {
	r := fakeRegistry(t)

	lookups := map[string]func() error{
		"FieldsOf":       func() error { _, err := r.FieldsOf("nope"); return err },
		"ItemFieldsOf":   func() error { _, err := r.ItemFieldsOf("nope"); return err },
		"NestedFieldsOf": func() error { _, err := r.NestedFieldsOf("nope", "x"); return err },
		"AttributesOf":   func() error { _, err := r.AttributesOf("nope"); return err },
		"TypeOf":         func() error { _, err := r.TypeOf("nope"); return err },
	}
	for name, lookup := range lookups {
		t.Run(name, func(t *testing.T) {
			var nf *SchemaNotFoundError
			require.True(t, errors.As(lookup(), &nf))
			assert.Equal(t, "nope", nf.Definition)
		})
	}
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	r := fakeRegistry(t)
	fields, err := r.AttributesOf("fakeSingleResult")
	require.NoError(t, err)
	fields[0] = "mutated"

	again, err := r.AttributesOf("fakeSingleResult")
	require.NoError(t, err)
	assert.Equal(t, "fakeAttribute1", again[0])
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(Definition{Name: "a"}, Definition{Name: "a"})
	require.Error(t, err)

	_, err = NewRegistry(Definition{})
	require.Error(t, err)
}

func TestRegistry_Require(t *testing.T) {
	r := fakeRegistry(t)
	require.NoError(t, r.Require("fakeSingleResult", "fakePluralResult"))
	// plain object definitions have no resource type
	require.Error(t, r.Require("fakeItem"))
	require.Error(t, r.Require("missing"))
}

func TestCheckKeys(t *testing.T) {
	require.NoError(t, CheckKeys("d", "", []string{"a", "b"}, []string{"b", "a"}))

	err := CheckKeys("d", "items", []string{"a", "b"}, []string{"a", "c"})
	var mm *AttributeMismatchError
	require.True(t, errors.As(err, &mm))
	assert.Equal(t, []string{"b"}, mm.Missing)
	assert.Equal(t, []string{"c"}, mm.Extra)
	assert.Equal(t, "items", mm.Field)
	assert.Contains(t, err.Error(), "d.items[]")
}

func TestDefault_DeclaresEveryResource(t *testing.T) {
	r := Default()
	names := []string{
		"GradePointAverageResult", "AccountBalanceResult", "AccountTransactionsResult",
		"AcademicStatusResult", "ClassificationResult", "GradesResult",
		"ClassScheduleResult", "HoldsResult", "WorkStudyResult", "DualEnrollmentResult",
	}
	require.NoError(t, r.Require(names...))

	typ, err := r.TypeOf("GradePointAverageResult")
	require.NoError(t, err)
	assert.Equal(t, "gpa", typ)

	gpa, err := r.FieldsOf("GradePointAverage")
	require.NoError(t, err)
	nested, err := r.NestedFieldsOf("GradePointAverageResult", "gpaLevels")
	require.NoError(t, err)
	assert.Equal(t, gpa, nested)
}
