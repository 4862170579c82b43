package ir

import (
	"sort"

	"github.com/blimu-dev/graphql-sdk-gen/pkg/introspection"
)

// Category is the rendering category of a named type. The numeric order is
// the emission priority.
type Category int

const (
	CategoryScalar Category = iota
	CategoryInput
	CategoryObject
	CategoryEnum
)

// Categories lists every category in classification and emission order.
var Categories = []Category{CategoryScalar, CategoryInput, CategoryObject, CategoryEnum}

func (c Category) String() string {
	switch c {
	case CategoryScalar:
		return "scalar"
	case CategoryInput:
		return "input"
	case CategoryObject:
		return "object"
	case CategoryEnum:
		return "enum"
	}
	return "unknown"
}

// BuiltinScalars are the scalars every target represents natively.
var BuiltinScalars = map[string]struct{}{
	"ID":       {},
	"Int":      {},
	"String":   {},
	"Float":    {},
	"Boolean":  {},
	"Date":     {},
	"DateTime": {},
	"Time":     {},
	"Decimal":  {},
}

// IsBuiltinScalar reports whether name is in the builtin scalar table.
func IsBuiltinScalar(name string) bool {
	_, ok := BuiltinScalars[name]
	return ok
}

// IsCustomScalar reports whether the reference, once unwrapped, names a
// scalar outside the builtin table. Unknown kinds count as scalars.
func IsCustomScalar(ref *introspection.TypeRef) bool {
	n := ref.Unwrap()
	if n == nil {
		return false
	}
	return (n.Kind == introspection.KindScalar || n.Kind == "") && !IsBuiltinScalar(n.Name)
}

// IDMap maps an opaque id scalar to the object type it identifies. It is
// read-only once built.
type IDMap struct {
	m map[string]string
}

// NewIDMap copies entries into a new map.
func NewIDMap(entries map[string]string) IDMap {
	m := make(map[string]string, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return IDMap{m: m}
}

// Lookup returns the object type identified by scalar.
func (m IDMap) Lookup(scalar string) (string, bool) {
	obj, ok := m.m[scalar]
	return obj, ok
}

// Len returns the number of entries.
func (m IDMap) Len() int {
	return len(m.m)
}

// Scalars returns the mapped scalar names in ascending order.
func (m IDMap) Scalars() []string {
	out := make([]string, 0, len(m.m))
	for k := range m.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IDCollision records an id scalar claimed by more than one object type.
type IDCollision struct {
	Scalar   string
	Previous string
	Winner   string
}

// TypeGroup holds the types of one category, sorted by name.
type TypeGroup struct {
	Category Category
	Types    []*introspection.Type
}

// IR is the language-agnostic view of a schema handed to generators.
type IR struct {
	Schema       *introspection.Schema
	QueryType    string
	IDMap        IDMap
	Groups       []TypeGroup
	IDCollisions []IDCollision

	types map[string]*introspection.Type
}

// Type looks a named type up in the schema registry.
func (in IR) Type(name string) *introspection.Type {
	return in.types[name]
}
