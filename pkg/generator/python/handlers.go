package python

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/blimu-dev/graphql-sdk-gen/pkg/introspection"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/ir"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/utils"
)

// handler renders the types of one category. Every category has exactly
// one handler; see renderer.handler.
type handler interface {
	render(t *introspection.Type) (string, error)
}

// renderer carries the state shared by the handlers of one run.
type renderer struct {
	in    ir.IR
	opts  Options
	types typeFormatter
	tmpl  *template.Template
}

func newRenderer(in ir.IR, opts Options, tmpl *template.Template) *renderer {
	return &renderer{
		in:   in,
		opts: opts,
		types: typeFormatter{
			ids:        in.IDMap,
			rootType:   in.QueryType,
			clientName: opts.ClientName,
		},
		tmpl: tmpl,
	}
}

func (r *renderer) handler(c ir.Category) (handler, error) {
	switch c {
	case ir.CategoryScalar:
		return scalarHandler{r}, nil
	case ir.CategoryInput:
		return inputHandler{r}, nil
	case ir.CategoryObject:
		return objectHandler{r}, nil
	case ir.CategoryEnum:
		return enumHandler{r}, nil
	}
	return nil, fmt.Errorf("no handler for category %s", c)
}

func (r *renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// classView is the template data of a block. Doc is the undecorated
// docstring text.
type classView struct {
	Name    string
	Base    string
	Doc     string
	Members []string
}

func typeDoc(t *introspection.Type) string {
	if desc := wrap(t.Description, docWidth); desc != "" {
		return doc(desc)
	}
	return ""
}

func members(docstring string, rest ...string) []string {
	var out []string
	if docstring != "" {
		out = append(out, docstring)
	}
	for _, m := range rest {
		if m != "" {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		out = append(out, "pass")
	}
	return out
}

type scalarHandler struct{ *renderer }

func (h scalarHandler) render(t *introspection.Type) (string, error) {
	return h.execute("scalar.py.gotmpl", classView{Name: t.Name, Doc: wrap(t.Description, docWidth)})
}

type inputHandler struct{ *renderer }

func (h inputHandler) render(t *introspection.Type) (string, error) {
	fields, err := newInputFields(t.InputFields, h.types)
	if err != nil {
		return "", err
	}
	attrs := make([]string, 0, len(fields))
	for _, f := range fields {
		attrs = append(attrs, f.attribute())
	}
	return h.execute("input.py.gotmpl", classView{
		Name:    t.Name,
		Members: members(typeDoc(t), strings.Join(attrs, "\n")),
	})
}

type objectHandler struct{ *renderer }

func (h objectHandler) render(t *introspection.Type) (string, error) {
	view := classView{Name: t.Name, Base: "Type"}
	if t.Name == h.in.QueryType {
		view.Name, view.Base = h.opts.ClientName, "Root"
	}

	methods := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		field, err := newObjectField(f, h.types, h.in, h.opts.Sync)
		if err != nil {
			return "", err
		}
		methods = append(methods, field.method())
	}
	view.Members = members(typeDoc(t), methods...)
	return h.execute("object.py.gotmpl", view)
}

type enumHandler struct{ *renderer }

func (h enumHandler) render(t *introspection.Type) (string, error) {
	values := make([]string, 0, len(t.EnumValues))
	for _, v := range t.EnumValues {
		name := v.Name
		if utils.IsPythonKeyword(name) {
			name += "_"
		}
		value := fmt.Sprintf("%s = %q", name, v.Name)

		var sections docSections
		sections.add(wrap(v.Description, docWidth))
		if v.IsDeprecated {
			sections.add(deprecationNote(v.DeprecationReason))
		}
		if d := sections.String(); d != "" {
			value += "\n" + doc(d)
		}
		values = append(values, value)
	}
	return h.execute("enum.py.gotmpl", classView{
		Name:    t.Name,
		Members: members(typeDoc(t), strings.Join(values, "\n")),
	})
}
