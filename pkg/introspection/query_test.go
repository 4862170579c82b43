package introspection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envelope = `{
  "data": {
    "__schema": {
      "queryType": {"name": "Query"},
      "mutationType": null,
      "subscriptionType": null,
      "types": [
        {
          "kind": "OBJECT",
          "name": "Query",
          "description": null,
          "fields": [
            {
              "name": "hello",
              "description": "Says hello.",
              "args": [
                {
                  "name": "name",
                  "description": null,
                  "type": {"kind": "SCALAR", "name": "String", "ofType": null},
                  "defaultValue": "\"world\""
                }
              ],
              "type": {"kind": "NON_NULL", "name": null, "ofType": {"kind": "SCALAR", "name": "String", "ofType": null}},
              "isDeprecated": false,
              "deprecationReason": null
            }
          ],
          "inputFields": null,
          "enumValues": null
        }
      ]
    }
  }
}`

func TestDecodeEnvelope(t *testing.T) {
	schema, err := Decode(strings.NewReader(envelope))
	require.NoError(t, err)

	assert.Equal(t, "Query", schema.QueryTypeName())
	assert.Nil(t, schema.MutationType)
	require.Len(t, schema.Types, 1)

	hello := schema.Types[0].Field("hello")
	require.NotNil(t, hello)
	assert.Equal(t, "Says hello.", hello.Description)
	assert.Equal(t, "String!", hello.Type.String())
	require.Len(t, hello.Args, 1)
	require.NotNil(t, hello.Args[0].DefaultValue)
	assert.Equal(t, `"world"`, *hello.Args[0].DefaultValue)
	require.NoError(t, schema.Validate())
}

func TestDecodeBare(t *testing.T) {
	schema, err := Decode(strings.NewReader(`{"__schema": {"queryType": {"name": "Root"}, "types": [{"kind": "OBJECT", "name": "Root"}]}}`))
	require.NoError(t, err)
	assert.Equal(t, "Root", schema.QueryTypeName())
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"errors": [{"message": "introspection disabled"}, {"message": "try again"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "introspection disabled; try again")

	var respErrs ResponseErrors
	assert.ErrorAs(t, err, &respErrs)

	_, err = Decode(strings.NewReader(`{"data": {}}`))
	assert.ErrorContains(t, err, "no __schema")

	_, err = Decode(strings.NewReader(`not json`))
	assert.ErrorContains(t, err, "decode introspection result")
}

func TestQueryRequestsEverythingGenerationNeeds(t *testing.T) {
	for _, want := range []string{"__schema", "queryType", "inputFields", "defaultValue", "deprecationReason", "includeDeprecated: true"} {
		assert.Contains(t, Query, want)
	}
}
