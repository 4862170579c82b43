package ir

import (
	"fmt"

	"github.com/blimu-dev/graphql-sdk-gen/pkg/introspection"
)

// Build validates the schema, builds the id map and groups the renderable
// types by category.
func Build(schema *introspection.Schema) (IR, error) {
	if schema == nil {
		return IR{}, fmt.Errorf("nil schema")
	}
	if err := schema.Validate(); err != nil {
		return IR{}, fmt.Errorf("invalid schema: %w", err)
	}

	ids, collisions := BuildIDMap(schema)

	byCategory := make(map[Category][]*introspection.Type)
	for _, t := range schema.SortedTypes() {
		c, ok := Classify(t)
		if !ok {
			continue
		}
		byCategory[c] = append(byCategory[c], t)
	}

	groups := make([]TypeGroup, 0, len(Categories))
	for _, c := range Categories {
		if len(byCategory[c]) == 0 {
			continue
		}
		groups = append(groups, TypeGroup{Category: c, Types: byCategory[c]})
	}

	return IR{
		Schema:       schema,
		QueryType:    schema.QueryTypeName(),
		IDMap:        ids,
		Groups:       groups,
		IDCollisions: collisions,
		types:        schema.TypeMap(),
	}, nil
}

// BuildIDMap maps every custom scalar used as the type of an object field
// named "id" to that object. Types are visited in name order and the last
// object wins; overwrites are reported as collisions.
func BuildIDMap(schema *introspection.Schema) (IDMap, []IDCollision) {
	entries := map[string]string{}
	var collisions []IDCollision
	for _, t := range schema.SortedTypes() {
		if t.Kind != introspection.KindObject {
			continue
		}
		for _, f := range t.Fields {
			if f.Name != "id" || f.Type == nil {
				continue
			}
			if !IsCustomScalar(f.Type) {
				continue
			}
			scalar := f.Type.Unwrap().Name
			if prev, ok := entries[scalar]; ok && prev != t.Name {
				collisions = append(collisions, IDCollision{Scalar: scalar, Previous: prev, Winner: t.Name})
			}
			entries[scalar] = t.Name
		}
	}
	return NewIDMap(entries), collisions
}

// Classify assigns a type to the first matching category: custom scalar,
// input object, object, enum. Introspection types, builtin scalars,
// interfaces and unions are not rendered.
func Classify(t *introspection.Type) (Category, bool) {
	if t.IsIntrospection() {
		return 0, false
	}
	switch {
	case t.Kind == introspection.KindScalar && !IsBuiltinScalar(t.Name):
		return CategoryScalar, true
	case t.Kind == introspection.KindInputObject:
		return CategoryInput, true
	case t.Kind == introspection.KindObject:
		return CategoryObject, true
	case t.Kind == introspection.KindEnum:
		return CategoryEnum, true
	}
	return 0, false
}
