package introspection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Query is the introspection query sent to live endpoints. TypeRef nesting
// goes eight levels deep, enough for [[T!]!]! style references.
const Query = `query IntrospectionQuery {
  __schema {
    queryType { name }
    mutationType { name }
    subscriptionType { name }
    types {
      ...FullType
    }
  }
}

fragment FullType on __Type {
  kind
  name
  description
  fields(includeDeprecated: true) {
    name
    description
    args {
      ...InputValue
    }
    type {
      ...TypeRef
    }
    isDeprecated
    deprecationReason
  }
  inputFields {
    ...InputValue
  }
  enumValues(includeDeprecated: true) {
    name
    description
    isDeprecated
    deprecationReason
  }
}

fragment InputValue on __InputValue {
  name
  description
  type {
    ...TypeRef
  }
  defaultValue
}

fragment TypeRef on __Type {
  kind
  name
  ofType {
    kind
    name
    ofType {
      kind
      name
      ofType {
        kind
        name
        ofType {
          kind
          name
          ofType {
            kind
            name
            ofType {
              kind
              name
              ofType {
                kind
                name
              }
            }
          }
        }
      }
    }
  }
}
`

// Response is the body of an introspection response. Both the full GraphQL
// envelope ({"data": {"__schema": ...}}) and a bare {"__schema": ...} decode.
type Response struct {
	Data *struct {
		Schema *Schema `json:"__schema"`
	} `json:"data,omitempty"`
	Schema *Schema        `json:"__schema,omitempty"`
	Errors ResponseErrors `json:"errors,omitempty"`
}

// ResponseError is one entry of a GraphQL "errors" array.
type ResponseError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// ResponseErrors is the GraphQL "errors" array.
type ResponseErrors []ResponseError

func (e ResponseErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Message)
	}
	return strings.Join(msgs, "; ")
}

// Decode reads an introspection result and returns its schema.
func Decode(r io.Reader) (*Schema, error) {
	var resp Response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode introspection result: %w", err)
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("introspection failed: %w", resp.Errors)
	}
	schema := resp.Schema
	if resp.Data != nil && resp.Data.Schema != nil {
		schema = resp.Data.Schema
	}
	if schema == nil {
		return nil, errors.New("introspection result has no __schema")
	}
	return schema, nil
}
