package openapi_schema

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/vast-data/go-openstack-codegen/core"
)

// IsObject returns true if the given OpenAPI schema represents an object type
func IsObject(prop *openapi3.Schema) bool {
	return GetSchemaType(prop) == openapi3.TypeObject
}

// IsArray returns true if the given OpenAPI schema represents an array type
func IsArray(prop *openapi3.Schema) bool {
	return GetSchemaType(prop) == openapi3.TypeArray
}

// IsEmptySchema returns true if the schema is nil or carries no structural keywords
func IsEmptySchema(schema *openapi3.Schema) bool {
	if schema == nil {
		return true
	}
	return (schema.Type == nil || len(*schema.Type) == 0) &&
		len(schema.Properties) == 0 &&
		schema.Items == nil &&
		len(schema.AllOf) == 0 &&
		len(schema.OneOf) == 0 &&
		len(schema.AnyOf) == 0
}

// GetSchemaType returns the type string of the given OpenAPI schema
func GetSchemaType(s *openapi3.Schema) string {
	if s == nil || s.Type == nil || len(*s.Type) == 0 {
		return ""
	}
	return (*s.Type)[0]
}

// HasProperty reports whether schema declares the named property.
func HasProperty(schema *openapi3.Schema, name string) bool {
	if schema == nil {
		return false
	}
	_, ok := schema.Properties[name]
	return ok
}

// PropertyNames returns the property names of schema in lexical order.
func PropertyNames(schema *openapi3.Schema) []string {
	if schema == nil {
		return nil
	}
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SchemaValues dereferences a list of schema refs, skipping unresolved ones.
func SchemaValues(refs openapi3.SchemaRefs) []*openapi3.Schema {
	values := make([]*openapi3.Schema, 0, len(refs))
	for _, ref := range refs {
		if ref != nil && ref.Value != nil {
			values = append(values, ref.Value)
		}
	}
	return values
}

// OpenStackExtension returns the string value of field inside the
// "x-openstack" extension of schema, or "" when absent.
func OpenStackExtension(schema *openapi3.Schema, field string) string {
	if schema == nil {
		return ""
	}
	raw, ok := schema.Extensions[core.ExtensionOpenStack]
	if !ok {
		return ""
	}

	var ext map[string]any
	switch v := raw.(type) {
	case map[string]any:
		ext = v
	case json.RawMessage:
		if err := json.Unmarshal(v, &ext); err != nil {
			return ""
		}
	default:
		return ""
	}

	if value, ok := ext[field].(string); ok {
		return value
	}
	return ""
}

// FindResourceSchema locates the schema describing a single resource inside
// an operation response schema. The returned key is the name of the wrapping
// property when the resource sits under a single object-typed property.
// A nil schema with no error means nothing usable was found.
func FindResourceSchema(schema *openapi3.Schema) (*openapi3.Schema, string, error) {
	if schema == nil {
		return nil, "", nil
	}

	switch GetSchemaType(schema) {
	case "":
		if len(schema.AllOf) > 0 {
			return FindResourceSchema(mergeAllOf(schema.AllOf))
		}
		if len(schema.Properties) > 0 {
			return schema, "", nil
		}
		if IsEmptySchema(schema) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("schema without type is neither allOf nor object")

	case openapi3.TypeArray:
		if schema.Items == nil || schema.Items.Value == nil {
			return nil, "", nil
		}
		if IsObject(schema.Items.Value) {
			return schema.Items.Value, "", nil
		}
		return FindResourceSchema(schema.Items.Value)

	case openapi3.TypeObject:
		if len(schema.Properties) == 1 {
			for name, prop := range schema.Properties {
				if prop != nil && prop.Value != nil && IsObject(prop.Value) {
					return prop.Value, name, nil
				}
			}
		}
		return schema, "", nil
	}

	return nil, "", nil
}

func mergeAllOf(refs openapi3.SchemaRefs) *openapi3.Schema {
	merged := openapi3.NewObjectSchema()
	for _, part := range SchemaValues(refs) {
		for name, prop := range part.Properties {
			merged.Properties[name] = prop
		}
		merged.Required = append(merged.Required, part.Required...)
	}
	return merged
}
