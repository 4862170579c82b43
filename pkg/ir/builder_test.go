package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blimu-dev/graphql-sdk-gen/pkg/introspection"
)

func scalar(name string) *introspection.TypeRef {
	return introspection.Named(introspection.KindScalar, name)
}

func object(name string) *introspection.TypeRef {
	return introspection.Named(introspection.KindObject, name)
}

func nonNull(ref *introspection.TypeRef) *introspection.TypeRef {
	return introspection.NonNullOf(ref)
}

func containerSchema() *introspection.Schema {
	return &introspection.Schema{
		QueryType: &introspection.RootType{Name: "Query"},
		Types: []*introspection.Type{
			{Kind: introspection.KindObject, Name: "Query", Fields: []*introspection.Field{
				{Name: "container", Type: object("Container")},
			}},
			{Kind: introspection.KindObject, Name: "Container", Fields: []*introspection.Field{
				{Name: "id", Type: nonNull(scalar("ContainerID"))},
				{Name: "from", Type: nonNull(object("Container")), Args: []*introspection.InputValue{
					{Name: "address", Type: nonNull(scalar("String"))},
				}},
				{Name: "stdout", Type: nonNull(scalar("String"))},
			}},
			{Kind: introspection.KindScalar, Name: "ContainerID"},
			{Kind: introspection.KindScalar, Name: "String"},
			{Kind: introspection.KindInputObject, Name: "BuildArg", InputFields: []*introspection.InputValue{
				{Name: "name", Type: nonNull(scalar("String"))},
			}},
			{Kind: introspection.KindEnum, Name: "Platform", EnumValues: []*introspection.EnumValue{{Name: "AMD64"}}},
			{Kind: introspection.KindInterface, Name: "Node"},
			{Kind: introspection.KindUnion, Name: "Result"},
			{Kind: introspection.KindObject, Name: "__Type"},
			{Kind: introspection.KindEnum, Name: "__TypeKind"},
		},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		typ      *introspection.Type
		category Category
		ok       bool
	}{
		{&introspection.Type{Kind: introspection.KindScalar, Name: "ContainerID"}, CategoryScalar, true},
		{&introspection.Type{Kind: introspection.KindInputObject, Name: "BuildArg"}, CategoryInput, true},
		{&introspection.Type{Kind: introspection.KindObject, Name: "Container"}, CategoryObject, true},
		{&introspection.Type{Kind: introspection.KindEnum, Name: "Platform"}, CategoryEnum, true},
		{&introspection.Type{Kind: introspection.KindScalar, Name: "DateTime"}, 0, false},
		{&introspection.Type{Kind: introspection.KindScalar, Name: "String"}, 0, false},
		{&introspection.Type{Kind: introspection.KindInterface, Name: "Node"}, 0, false},
		{&introspection.Type{Kind: introspection.KindUnion, Name: "Result"}, 0, false},
		{&introspection.Type{Kind: introspection.KindObject, Name: "__Schema"}, 0, false},
		{&introspection.Type{Kind: introspection.KindScalar, Name: "__Custom"}, 0, false},
	}

	for _, tt := range tests {
		category, ok := Classify(tt.typ)
		if ok != tt.ok || category != tt.category {
			t.Errorf("Classify(%s) = %v, %v, expected %v, %v", tt.typ.Name, category, ok, tt.category, tt.ok)
		}
	}
}

func TestBuildIDMap(t *testing.T) {
	ids, collisions := BuildIDMap(containerSchema())

	assert.Empty(t, collisions)
	assert.Equal(t, 1, ids.Len())
	obj, ok := ids.Lookup("ContainerID")
	require.True(t, ok)
	assert.Equal(t, "Container", obj)

	_, ok = ids.Lookup("String")
	assert.False(t, ok)
}

func TestBuildIDMapIgnoresBuiltinAndNonIDFields(t *testing.T) {
	schema := &introspection.Schema{Types: []*introspection.Type{
		{Kind: introspection.KindObject, Name: "Query", Fields: []*introspection.Field{
			{Name: "id", Type: nonNull(scalar("ID"))},
			{Name: "ref", Type: scalar("RefID")},
			{Name: "ID", Type: scalar("UpperID")},
		}},
		{Kind: introspection.KindInputObject, Name: "Filter", InputFields: []*introspection.InputValue{
			{Name: "id", Type: scalar("FilterID")},
		}},
	}}

	ids, _ := BuildIDMap(schema)
	assert.Zero(t, ids.Len())
}

func TestBuildIDMapLastWriteWins(t *testing.T) {
	schema := &introspection.Schema{Types: []*introspection.Type{
		{Kind: introspection.KindObject, Name: "Zebra", Fields: []*introspection.Field{{Name: "id", Type: nonNull(scalar("SharedID"))}}},
		{Kind: introspection.KindObject, Name: "Apple", Fields: []*introspection.Field{{Name: "id", Type: nonNull(scalar("SharedID"))}}},
	}}

	ids, collisions := BuildIDMap(schema)

	obj, ok := ids.Lookup("SharedID")
	require.True(t, ok)
	assert.Equal(t, "Zebra", obj, "types are visited in name order")
	require.Len(t, collisions, 1)
	assert.Equal(t, IDCollision{Scalar: "SharedID", Previous: "Apple", Winner: "Zebra"}, collisions[0])
}

func TestBuild(t *testing.T) {
	in, err := Build(containerSchema())
	require.NoError(t, err)

	assert.Equal(t, "Query", in.QueryType)
	assert.NotNil(t, in.Type("Container"))
	assert.Nil(t, in.Type("Missing"))

	got := map[Category][]string{}
	var order []Category
	for _, g := range in.Groups {
		order = append(order, g.Category)
		for _, typ := range g.Types {
			got[g.Category] = append(got[g.Category], typ.Name)
		}
	}
	assert.Equal(t, []Category{CategoryScalar, CategoryInput, CategoryObject, CategoryEnum}, order)
	assert.Equal(t, []string{"ContainerID"}, got[CategoryScalar])
	assert.Equal(t, []string{"BuildArg"}, got[CategoryInput])
	assert.Equal(t, []string{"Container", "Query"}, got[CategoryObject])
	assert.Equal(t, []string{"Platform"}, got[CategoryEnum])
}

func TestBuildRejectsMalformedSchema(t *testing.T) {
	_, err := Build(nil)
	require.Error(t, err)

	schema := containerSchema()
	schema.Types[1].Fields[2].Type = nonNull(nonNull(scalar("String")))
	_, err = Build(schema)
	require.Error(t, err)
	assert.ErrorIs(t, err, introspection.ErrMalformedTypeRef)
}

func TestIDMapIsACopy(t *testing.T) {
	entries := map[string]string{"ContainerID": "Container"}
	ids := NewIDMap(entries)
	entries["ContainerID"] = "Other"
	entries["FileID"] = "File"

	obj, _ := ids.Lookup("ContainerID")
	assert.Equal(t, "Container", obj)
	assert.Equal(t, []string{"ContainerID"}, ids.Scalars())
}
