package python

import (
	"github.com/blimu-dev/graphql-sdk-gen/pkg/introspection"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/ir"
)

// builtinScalars maps the builtin scalar table to Python types.
var builtinScalars = map[string]string{
	"ID":       "str",
	"Int":      "int",
	"String":   "str",
	"Float":    "float",
	"Boolean":  "bool",
	"Date":     "date",
	"DateTime": "datetime",
	"Time":     "time",
	"Decimal":  "Decimal",
}

// typeFormatter turns type references into Python type expressions for one
// generation run.
type typeFormatter struct {
	ids ir.IDMap
	// rootType is rendered as clientName wherever an object name is emitted.
	rootType   string
	clientName string
}

// withoutIDs returns a formatter that never substitutes id scalars.
func (f typeFormatter) withoutIDs() typeFormatter {
	f.ids = ir.IDMap{}
	return f
}

func (f typeFormatter) objectName(name string) string {
	if name == f.rootType && f.clientName != "" {
		return f.clientName
	}
	return name
}

// inputType formats a reference used by an input field or an argument.
// NON_NULL makes it required, otherwise the expression becomes "T | None".
func (f typeFormatter) inputType(ref *introspection.TypeRef) (string, error) {
	if err := ref.Validate(); err != nil {
		return "", err
	}
	return f.formatInput(ref), nil
}

func (f typeFormatter) formatInput(ref *introspection.TypeRef) string {
	optional := true
	if ref.IsNonNull() {
		optional = false
		ref = ref.OfType
	}

	var expr string
	switch {
	case ref.IsList():
		expr = "list[" + f.formatInput(ref.OfType) + "]"
	case ir.IsCustomScalar(ref):
		expr = ref.Name
		if obj, ok := f.ids.Lookup(ref.Name); ok {
			expr = f.objectName(obj)
		}
	case ref.Kind == introspection.KindScalar || ref.Kind == "":
		expr = ref.Name
		if py, ok := builtinScalars[ref.Name]; ok {
			expr = py
		}
	default:
		expr = ref.Name
	}

	if optional {
		return expr + " | None"
	}
	return expr
}

// outputType formats the return type of an object field. Leaves keep their
// nullability and list-ness. Anything else is a chain handle and renders as
// the bare object name.
func (f typeFormatter) outputType(ref *introspection.TypeRef) (string, error) {
	if err := ref.Validate(); err != nil {
		return "", err
	}
	if ref.IsLeaf() {
		return f.withoutIDs().formatInput(ref), nil
	}
	return f.objectName(ref.Unwrap().Name), nil
}
