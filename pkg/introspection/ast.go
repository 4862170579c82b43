package introspection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// defaultDeprecationReason mirrors the default of the built-in @deprecated directive.
const defaultDeprecationReason = "No longer supported"

// FromAST converts a schema parsed from SDL into the introspection model.
// Types are ordered by name so the result does not depend on map iteration.
func FromAST(s *ast.Schema) *Schema {
	out := &Schema{}
	if s.Query != nil {
		out.QueryType = &RootType{Name: s.Query.Name}
	}
	if s.Mutation != nil {
		out.MutationType = &RootType{Name: s.Mutation.Name}
	}
	if s.Subscription != nil {
		out.SubscriptionType = &RootType{Name: s.Subscription.Name}
	}

	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := s.Types[name]
		t := &Type{
			Kind:        Kind(def.Kind),
			Name:        def.Name,
			Description: def.Description,
		}
		switch def.Kind {
		case ast.Object, ast.Interface:
			for _, f := range def.Fields {
				t.Fields = append(t.Fields, fieldFromAST(s, f))
			}
		case ast.InputObject:
			for _, f := range def.Fields {
				t.InputFields = append(t.InputFields, &InputValue{
					Name:         f.Name,
					Description:  f.Description,
					Type:         typeRefFromAST(s, f.Type),
					DefaultValue: literal(f.DefaultValue),
				})
			}
		case ast.Enum:
			for _, v := range def.EnumValues {
				reason, deprecated := deprecation(v.Directives)
				t.EnumValues = append(t.EnumValues, &EnumValue{
					Name:              v.Name,
					Description:       v.Description,
					IsDeprecated:      deprecated,
					DeprecationReason: reason,
				})
			}
		}
		out.Types = append(out.Types, t)
	}
	return out
}

func fieldFromAST(s *ast.Schema, f *ast.FieldDefinition) *Field {
	reason, deprecated := deprecation(f.Directives)
	field := &Field{
		Name:              f.Name,
		Description:       f.Description,
		Type:              typeRefFromAST(s, f.Type),
		IsDeprecated:      deprecated,
		DeprecationReason: reason,
	}
	for _, a := range f.Arguments {
		field.Args = append(field.Args, &InputValue{
			Name:         a.Name,
			Description:  a.Description,
			Type:         typeRefFromAST(s, a.Type),
			DefaultValue: literal(a.DefaultValue),
		})
	}
	return field
}

// typeRefFromAST turns gqlparser's flag-based NonNull into explicit wrappers.
// Names missing from the registry are referenced as scalars.
func typeRefFromAST(s *ast.Schema, t *ast.Type) *TypeRef {
	var ref *TypeRef
	if t.Elem != nil {
		ref = ListOf(typeRefFromAST(s, t.Elem))
	} else {
		kind := KindScalar
		if def, ok := s.Types[t.NamedType]; ok {
			kind = Kind(def.Kind)
		}
		ref = Named(kind, t.NamedType)
	}
	if t.NonNull {
		ref = NonNullOf(ref)
	}
	return ref
}

// literal prints a default value the way an introspection endpoint reports
// it, as GraphQL source text.
func literal(v *ast.Value) *string {
	if v == nil {
		return nil
	}
	s := printValue(v)
	return &s
}

func printValue(v *ast.Value) string {
	switch v.Kind {
	case ast.StringValue, ast.BlockValue:
		return quoteString(v.Raw)
	case ast.Variable:
		return "$" + v.Raw
	case ast.ListValue:
		items := make([]string, 0, len(v.Children))
		for _, c := range v.Children {
			items = append(items, printValue(c.Value))
		}
		return "[" + strings.Join(items, ", ") + "]"
	case ast.ObjectValue:
		fields := make([]string, 0, len(v.Children))
		for _, c := range v.Children {
			fields = append(fields, c.Name+": "+printValue(c.Value))
		}
		return "{" + strings.Join(fields, ", ") + "}"
	default:
		return v.Raw
	}
}

// quoteString writes s as a GraphQL string literal. Control characters
// without a short escape are written as \uXXXX.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func deprecation(directives ast.DirectiveList) (string, bool) {
	d := directives.ForName("deprecated")
	if d == nil {
		return "", false
	}
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		return arg.Value.Raw, true
	}
	return defaultDeprecationReason, true
}
