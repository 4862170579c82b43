package introspection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const sdl = `
"An OCI-compatible container."
type Container {
  id: ContainerID!
  from(address: String!): Container!
  stdout: String! @deprecated(reason: "Use ` + "`stdoutText`" + ` instead.")
  exitCode: Int @deprecated
}

scalar ContainerID

input BuildArg {
  name: String!
  value: String = "latest"
  tags: [String!] = ["a", "b"]
}

enum Platform {
  AMD64
  ARM64 @deprecated(reason: "gone")
}

type Query {
  container(id: ContainerID, platform: Platform = AMD64): Container!
}
`

func loadSDL(t *testing.T, input string) *Schema {
	t.Helper()
	parsed, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: input})
	require.NoError(t, err)
	return FromAST(parsed)
}

func TestFromAST(t *testing.T) {
	schema := loadSDL(t, sdl)
	require.NoError(t, schema.Validate())
	assert.Equal(t, "Query", schema.QueryTypeName())

	types := schema.TypeMap()

	container := types["Container"]
	require.NotNil(t, container)
	assert.Equal(t, KindObject, container.Kind)
	assert.Equal(t, "An OCI-compatible container.", container.Description)

	var names []string
	for _, f := range container.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"id", "from", "stdout", "exitCode"}, names, "fields keep declaration order")

	id := container.Field("id")
	assert.Equal(t, KindNonNull, id.Type.Kind)
	assert.Equal(t, KindScalar, id.Type.Unwrap().Kind)
	assert.Equal(t, "ContainerID", id.Type.Unwrap().Name)

	from := container.Field("from")
	require.Len(t, from.Args, 1)
	assert.Equal(t, "String!", from.Args[0].Type.String())
	assert.Nil(t, from.Args[0].DefaultValue)
	assert.Equal(t, KindObject, from.Type.Unwrap().Kind)

	stdout := container.Field("stdout")
	assert.True(t, stdout.IsDeprecated)
	assert.Equal(t, "Use `stdoutText` instead.", stdout.DeprecationReason)

	exitCode := container.Field("exitCode")
	assert.True(t, exitCode.IsDeprecated)
	assert.Equal(t, "No longer supported", exitCode.DeprecationReason)

	input := types["BuildArg"]
	require.NotNil(t, input)
	assert.Equal(t, KindInputObject, input.Kind)
	require.Len(t, input.InputFields, 3)
	require.NotNil(t, input.InputFields[1].DefaultValue)
	assert.Equal(t, `"latest"`, *input.InputFields[1].DefaultValue)
	require.NotNil(t, input.InputFields[2].DefaultValue)
	assert.Equal(t, `["a", "b"]`, *input.InputFields[2].DefaultValue)
	assert.Equal(t, "[String!]", input.InputFields[2].Type.String())

	platform := types["Platform"]
	require.NotNil(t, platform)
	assert.Equal(t, KindEnum, platform.Kind)
	require.Len(t, platform.EnumValues, 2)
	assert.True(t, platform.EnumValues[1].IsDeprecated)

	arg := types["Query"].Field("container").Args[1]
	assert.Equal(t, KindEnum, arg.Type.Kind)
	require.NotNil(t, arg.DefaultValue)
	assert.Equal(t, "AMD64", *arg.DefaultValue)
}

func TestFromASTIncludesIntrospectionTypes(t *testing.T) {
	schema := loadSDL(t, `type Query { ok: Boolean }`)

	types := schema.TypeMap()
	assert.Contains(t, types, "__Schema")
	assert.Contains(t, types, "String")

	sorted := schema.SortedTypes()
	for i := 1; i < len(sorted); i++ {
		assert.Less(t, sorted[i-1].Name, sorted[i].Name)
	}
}

func TestFromASTDefaultsAreGraphQLLiterals(t *testing.T) {
	tests := []struct {
		name     string
		def      string
		typ      string
		expected string
		raw      string
	}{
		{"bell", `"bell\u0007here"`, "String", `"bell\u0007here"`, "bell\x07here"},
		{"short escapes", `"a\"b\\c\nd\te\bf\fg\rh"`, "String", `"a\"b\\c\nd\te\bf\fg\rh"`, "a\"b\\c\nd\te\bf\fg\rh"},
		{"unicode", `"héllo ☃"`, "String", `"héllo ☃"`, "héllo ☃"},
		{"delete", `"x\u007Fy"`, "String", `"x\u007Fy"`, "x\x7fy"},
		{"block string", `"""say "hi" \ now"""`, "String", `"say \"hi\" \\ now"`, `say "hi" \ now`},
		{"list", `["a\u0001", "b"]`, "[String!]", `["a\u0001", "b"]`, ""},
		{"object", `{name: "x\u0002", tags: ["t"]}`, "Opts", `{name: "x\u0002", tags: ["t"]}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := loadSDL(t, `
input Opts { name: String, tags: [String!] }
type Query { echo(s: `+tt.typ+` = `+tt.def+`): String! }`)

			arg := schema.TypeMap()["Query"].Field("echo").Args[0]
			require.NotNil(t, arg.DefaultValue)
			assert.Equal(t, tt.expected, *arg.DefaultValue)

			doc, err := parser.ParseQuery(&ast.Source{Input: "{f(v: " + *arg.DefaultValue + ")}"})
			require.NoError(t, err)
			value := doc.Operations[0].SelectionSet[0].(*ast.Field).Arguments[0].Value
			if tt.raw != "" {
				assert.Equal(t, tt.raw, value.Raw)
			}
		})
	}
}
