package python

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// pyLiteral converts a GraphQL value literal, as reported in an
// introspection defaultValue, to a Python expression. mutable is set for
// lists and input objects.
func pyLiteral(raw string) (expr string, mutable bool, err error) {
	v, err := parseValue(raw)
	if err != nil {
		return "", false, err
	}
	expr, err = formatValue(v)
	if err != nil {
		return "", false, fmt.Errorf("default value %s: %w", raw, err)
	}
	return expr, v.Kind == ast.ListValue || v.Kind == ast.ObjectValue, nil
}

// parseValue parses a lone value literal by embedding it as an argument of
// a one-field query.
func parseValue(raw string) (*ast.Value, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "defaultValue", Input: "{f(v: " + raw + ")}"})
	if err != nil {
		return nil, fmt.Errorf("parse default value %s: %w", raw, err)
	}
	if len(doc.Operations) != 1 || len(doc.Operations[0].SelectionSet) != 1 {
		return nil, fmt.Errorf("parse default value %s: unexpected document", raw)
	}
	field, ok := doc.Operations[0].SelectionSet[0].(*ast.Field)
	if !ok || len(field.Arguments) != 1 {
		return nil, fmt.Errorf("parse default value %s: unexpected document", raw)
	}
	return field.Arguments[0].Value, nil
}

func formatValue(v *ast.Value) (string, error) {
	switch v.Kind {
	case ast.IntValue, ast.FloatValue:
		return v.Raw, nil
	case ast.StringValue, ast.BlockValue, ast.EnumValue:
		return strconv.Quote(v.Raw), nil
	case ast.BooleanValue:
		if v.Raw == "true" {
			return "True", nil
		}
		return "False", nil
	case ast.NullValue:
		return "None", nil
	case ast.ListValue:
		items := make([]string, 0, len(v.Children))
		for _, c := range v.Children {
			item, err := formatValue(c.Value)
			if err != nil {
				return "", err
			}
			items = append(items, item)
		}
		return "[" + strings.Join(items, ", ") + "]", nil
	case ast.ObjectValue:
		items := make([]string, 0, len(v.Children))
		for _, c := range v.Children {
			item, err := formatValue(c.Value)
			if err != nil {
				return "", err
			}
			items = append(items, strconv.Quote(c.Name)+": "+item)
		}
		return "{" + strings.Join(items, ", ") + "}", nil
	case ast.Variable:
		return "", errors.New("variables are not allowed in default values")
	}
	return "", fmt.Errorf("unsupported value kind %d", v.Kind)
}
