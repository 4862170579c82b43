package python

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blimu-dev/graphql-sdk-gen/pkg/introspection"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/ir"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/utils"
)

const idFieldNote = "Note\n----\nThis is lazily evaluated, no operation is actually run."

// inputField is an input object field or an object field argument.
type inputField struct {
	wireName    string
	name        string
	typ         string
	quoted      bool
	description string

	hasDefault bool
	// defaultValue is a Python expression, valid when hasDefault is set.
	defaultValue string
	mutable      bool
}

func newInputField(v *introspection.InputValue, types typeFormatter) (*inputField, error) {
	// an "id" input is the identity itself, not a reference to an object
	if v.Name == "id" {
		types = types.withoutIDs()
	}
	typ, err := types.inputType(v.Type)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.Name, err)
	}

	f := &inputField{
		wireName:    v.Name,
		name:        utils.FormatName(v.Name),
		typ:         typ,
		quoted:      ir.IsCustomScalar(v.Type),
		description: v.Description,
	}
	switch {
	case v.DefaultValue != nil:
		lit, mutable, err := pyLiteral(*v.DefaultValue)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.Name, err)
		}
		f.hasDefault, f.defaultValue, f.mutable = true, lit, mutable
	case !v.Type.IsNonNull():
		f.hasDefault, f.defaultValue = true, "None"
	}
	return f, nil
}

// newInputFields builds the models for values, required ones first. The
// sort is stable so declaration order holds within each group.
func newInputFields(values []*introspection.InputValue, types typeFormatter) ([]*inputField, error) {
	fields := make([]*inputField, 0, len(values))
	for _, v := range values {
		f, err := newInputField(v, types)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return !fields[i].hasDefault && fields[j].hasDefault
	})
	return fields, nil
}

func (f *inputField) annotation() string {
	if f.quoted {
		return `"` + f.typ + `"`
	}
	return f.typ
}

// param renders the field as a function parameter.
func (f *inputField) param() string {
	out := f.name + ": " + f.annotation()
	if f.hasDefault {
		out += " = " + f.defaultValue
	}
	return out
}

// attribute renders the field as a dataclass attribute followed by its
// docstring.
func (f *inputField) attribute() string {
	out := f.name + ": " + f.annotation()
	switch {
	case f.hasDefault && f.mutable:
		out += " = dataclasses.field(default_factory=lambda: " + f.defaultValue + ")"
	case f.hasDefault:
		out += " = " + f.defaultValue
	}
	if desc := wrap(f.description, docWidth); desc != "" {
		out += "\n" + doc(desc)
	}
	return out
}

// arg renders the runtime Arg entry passed to _select.
func (f *inputField) arg() string {
	params := []string{`"` + f.wireName + `"`, f.name}
	if f.hasDefault {
		params = append(params, f.defaultValue)
	}
	return "Arg(" + strings.Join(params, ", ") + "),"
}

// docEntry renders the field for a Parameters section.
func (f *inputField) docEntry() string {
	entry := f.name + ":"
	if desc := wrapIndented(f.description, docWidth); desc != "" {
		entry += "\n" + desc
	}
	return entry
}

// objectField is an object field rendered as a method.
type objectField struct {
	wireName string
	name     string
	args     []*inputField
	isLeaf   bool
	typ      string
	sync     bool

	description string
	deprecation string
	// returns describes the named return type of a leaf.
	returns string
}

func newObjectField(f *introspection.Field, types typeFormatter, in ir.IR, sync bool) (*objectField, error) {
	args, err := newInputFields(f.Args, types)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	typ, err := types.outputType(f.Type)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}

	of := &objectField{
		wireName:    f.Name,
		name:        utils.FormatName(f.Name),
		args:        args,
		isLeaf:      f.Type.IsLeaf(),
		typ:         typ,
		sync:        sync,
		description: f.Description,
	}
	if f.IsDeprecated || f.DeprecationReason != "" {
		of.deprecation = f.DeprecationReason
	}
	if of.isLeaf {
		if named := in.Type(f.Type.Unwrap().Name); named != nil {
			of.returns = named.Description
		}
	}
	return of, nil
}

func (f *objectField) signature() string {
	params := []string{"self"}
	for _, a := range f.args {
		params = append(params, a.param())
	}
	sig := "def " + f.name + "(" + strings.Join(params, ", ") + ")"
	ret := f.typ
	switch {
	case !f.isLeaf:
		// the handle class may be declared further down
		ret = `"` + ret + `"`
	case !f.sync:
		sig = "async " + sig
	}
	return sig + " -> " + ret
}

func (f *objectField) docstring() string {
	var sections docSections
	sections.add(wrap(f.description, docWidth))
	if f.deprecation != "" {
		sections.add(deprecationNote(f.deprecation))
	}
	if f.wireName == "id" {
		sections.add(idFieldNote)
	}
	if f.hasArgDocs() {
		lines := []string{"Parameters", "----------"}
		for _, a := range f.args {
			lines = append(lines, a.docEntry())
		}
		sections.add(lines...)
	}
	if f.isLeaf && strings.TrimSpace(f.returns) != "" {
		sections.add("Returns", "-------", f.typ, wrapIndented(f.returns, docWidth))
	}
	return sections.String()
}

func (f *objectField) hasArgDocs() bool {
	for _, a := range f.args {
		if strings.TrimSpace(a.description) != "" {
			return true
		}
	}
	return false
}

func (f *objectField) body() string {
	var lines []string
	if d := f.docstring(); d != "" {
		lines = append(lines, doc(d))
	}

	if len(f.args) == 0 {
		lines = append(lines, "_args: list[Arg] = []")
	} else {
		lines = append(lines, "_args = [")
		for _, a := range f.args {
			lines = append(lines, indent(a.arg()))
		}
		lines = append(lines, "]")
	}

	lines = append(lines, fmt.Sprintf("_ctx = self._select(%q, _args)", f.wireName))

	switch {
	case !f.isLeaf:
		lines = append(lines, "return "+f.typ+"(_ctx)")
	case f.sync:
		lines = append(lines, "return _ctx.execute_sync("+f.typ+")")
	default:
		lines = append(lines, "return await _ctx.execute("+f.typ+")")
	}
	return strings.Join(lines, "\n")
}

// method renders the full method definition.
func (f *objectField) method() string {
	return f.signature() + ":\n" + indent(f.body())
}
