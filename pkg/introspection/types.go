// Package introspection models a GraphQL schema in the shape returned by the
// standard introspection query. It is the input of every generator.
package introspection

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind is the introspection __TypeKind of a named type or a wrapper.
type Kind string

const (
	KindScalar      Kind = "SCALAR"
	KindObject      Kind = "OBJECT"
	KindInterface   Kind = "INTERFACE"
	KindUnion       Kind = "UNION"
	KindEnum        Kind = "ENUM"
	KindInputObject Kind = "INPUT_OBJECT"
	KindList        Kind = "LIST"
	KindNonNull     Kind = "NON_NULL"
)

// ErrMalformedTypeRef is returned when a type reference breaks the
// NON_NULL/LIST wrapping rules.
var ErrMalformedTypeRef = errors.New("malformed type reference")

// TypeRef is a reference to a named type, possibly wrapped in NON_NULL and
// LIST modifiers. Named references carry Name; wrappers carry OfType.
type TypeRef struct {
	Kind   Kind     `json:"kind"`
	Name   string   `json:"name,omitempty"`
	OfType *TypeRef `json:"ofType,omitempty"`
}

// Named builds a reference to a named type.
func Named(kind Kind, name string) *TypeRef {
	return &TypeRef{Kind: kind, Name: name}
}

// NonNullOf wraps ref in a NON_NULL modifier.
func NonNullOf(ref *TypeRef) *TypeRef {
	return &TypeRef{Kind: KindNonNull, OfType: ref}
}

// ListOf wraps ref in a LIST modifier.
func ListOf(ref *TypeRef) *TypeRef {
	return &TypeRef{Kind: KindList, OfType: ref}
}

// IsWrapping reports whether the reference is a NON_NULL or LIST modifier.
func (r *TypeRef) IsWrapping() bool {
	return r.Kind == KindNonNull || r.Kind == KindList
}

// IsNonNull reports whether the outermost modifier is NON_NULL.
func (r *TypeRef) IsNonNull() bool {
	return r.Kind == KindNonNull
}

// IsList reports whether the outermost modifier is LIST.
func (r *TypeRef) IsList() bool {
	return r.Kind == KindList
}

// Unwrap strips every modifier and returns the named reference.
func (r *TypeRef) Unwrap() *TypeRef {
	t := r
	for t != nil && t.IsWrapping() {
		t = t.OfType
	}
	return t
}

// IsLeaf reports whether the unwrapped named type is a scalar or an enum.
// References whose kind is unknown are treated as scalars.
func (r *TypeRef) IsLeaf() bool {
	n := r.Unwrap()
	if n == nil {
		return false
	}
	switch n.Kind {
	case KindScalar, KindEnum, "":
		return true
	}
	return false
}

// Validate checks the wrapping discipline of the whole chain.
func (r *TypeRef) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: missing type", ErrMalformedTypeRef)
	}
	switch r.Kind {
	case KindNonNull:
		if r.OfType == nil {
			return fmt.Errorf("%w: NON_NULL without inner type", ErrMalformedTypeRef)
		}
		if r.OfType.IsNonNull() {
			return fmt.Errorf("%w: NON_NULL wraps NON_NULL", ErrMalformedTypeRef)
		}
		return r.OfType.Validate()
	case KindList:
		if r.OfType == nil {
			return fmt.Errorf("%w: LIST without inner type", ErrMalformedTypeRef)
		}
		return r.OfType.Validate()
	}
	if r.Name == "" {
		return fmt.Errorf("%w: named %s reference without a name", ErrMalformedTypeRef, r.Kind)
	}
	return nil
}

// String renders the reference in SDL notation, e.g. [String!]!.
func (r *TypeRef) String() string {
	if r == nil {
		return "<nil>"
	}
	switch r.Kind {
	case KindNonNull:
		return r.OfType.String() + "!"
	case KindList:
		return "[" + r.OfType.String() + "]"
	}
	return r.Name
}

// InputValue is an input object field or a field argument.
type InputValue struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        *TypeRef `json:"type"`
	// DefaultValue is the raw GraphQL literal, nil when no default is declared.
	DefaultValue *string `json:"defaultValue,omitempty"`
}

// Field is an object or interface field.
type Field struct {
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	Args              []*InputValue `json:"args"`
	Type              *TypeRef      `json:"type"`
	IsDeprecated      bool          `json:"isDeprecated"`
	DeprecationReason string        `json:"deprecationReason,omitempty"`
}

// EnumValue is a single value of an enum type.
type EnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	IsDeprecated      bool   `json:"isDeprecated"`
	DeprecationReason string `json:"deprecationReason,omitempty"`
}

// Type is a named schema type.
type Type struct {
	Kind        Kind          `json:"kind"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Fields      []*Field      `json:"fields,omitempty"`
	InputFields []*InputValue `json:"inputFields,omitempty"`
	EnumValues  []*EnumValue  `json:"enumValues,omitempty"`
}

// Field returns the field named name, or nil.
func (t *Type) Field(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// IsIntrospection reports whether the type name carries the reserved "__" prefix.
func (t *Type) IsIntrospection() bool {
	return strings.HasPrefix(t.Name, "__")
}

// RootType names a schema root operation type.
type RootType struct {
	Name string `json:"name"`
}

// Schema is the flat registry of named types plus the root operation types.
type Schema struct {
	QueryType        *RootType `json:"queryType"`
	MutationType     *RootType `json:"mutationType,omitempty"`
	SubscriptionType *RootType `json:"subscriptionType,omitempty"`
	Types            []*Type   `json:"types"`
}

// QueryTypeName returns the name of the query root, "Query" when unset.
func (s *Schema) QueryTypeName() string {
	if s.QueryType != nil && s.QueryType.Name != "" {
		return s.QueryType.Name
	}
	return "Query"
}

// TypeMap indexes the registry by name.
func (s *Schema) TypeMap() map[string]*Type {
	m := make(map[string]*Type, len(s.Types))
	for _, t := range s.Types {
		m[t.Name] = t
	}
	return m
}

// SortedTypes returns the registry ordered by type name.
func (s *Schema) SortedTypes() []*Type {
	types := make([]*Type, len(s.Types))
	copy(types, s.Types)
	sort.SliceStable(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types
}

// Validate checks what generation relies on: a query root that exists and
// well-formed type references on every field, argument and input field.
func (s *Schema) Validate() error {
	types := s.TypeMap()
	if _, ok := types[s.QueryTypeName()]; !ok {
		return fmt.Errorf("query root type %q not found in schema", s.QueryTypeName())
	}
	for _, t := range s.Types {
		if t.Name == "" {
			return errors.New("schema contains a type without a name")
		}
		for _, f := range t.Fields {
			if err := f.Type.Validate(); err != nil {
				return fmt.Errorf("%s.%s: %w", t.Name, f.Name, err)
			}
			for _, a := range f.Args {
				if err := a.Type.Validate(); err != nil {
					return fmt.Errorf("%s.%s(%s): %w", t.Name, f.Name, a.Name, err)
				}
			}
		}
		for _, f := range t.InputFields {
			if err := f.Type.Validate(); err != nil {
				return fmt.Errorf("%s.%s: %w", t.Name, f.Name, err)
			}
		}
	}
	return nil
}
