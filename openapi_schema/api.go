package openapi_schema

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/vast-data/go-openstack-codegen/core"
)

// Operation is one (path, method) entry of a service document.
type Operation struct {
	Path     string
	Method   string // lower case
	PathItem *openapi3.PathItem
	Value    *openapi3.Operation
}

// Load reads an OpenAPI document from fs. Both OpenAPI 3.x and Swagger 2.0
// documents are accepted, in YAML or JSON; Swagger documents are converted
// to OpenAPI 3.
func Load(fs afero.Fs, path string) (*openapi3.T, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read openapi spec %s: %w", path, err)
	}
	doc, err := LoadFromData(data, path)
	if err != nil {
		return nil, fmt.Errorf("load openapi spec %s: %w", path, err)
	}
	return doc, nil
}

// LoadFromData parses raw document bytes. location is used to resolve
// relative external references and may be empty.
func LoadFromData(data []byte, location string) (*openapi3.T, error) {
	var probe struct {
		Swagger string `yaml:"swagger"`
		OpenAPI string `yaml:"openapi"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("sniff document version: %w", err)
	}
	if probe.Swagger != "" {
		return loadSwagger(data)
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	if location == "" {
		return loader.LoadFromData(data)
	}
	return loader.LoadFromDataWithPath(data, &url.URL{Path: filepath.ToSlash(location)})
}

func loadSwagger(data []byte) (*openapi3.T, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode swagger document: %w", err)
	}
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("re-encode swagger document: %w", err)
	}
	var schemaV2 openapi2.T
	if err := json.Unmarshal(asJSON, &schemaV2); err != nil {
		return nil, fmt.Errorf("parse swagger document: %w", err)
	}
	doc, err := openapi2conv.ToV3(&schemaV2)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to OpenAPI v3: %w", err)
	}
	return doc, nil
}

// SortedPaths returns the document paths in lexical order.
func SortedPaths(doc *openapi3.T) []string {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	paths := make([]string, 0, doc.Paths.Len())
	for path := range doc.Paths.Map() {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// PathOperations returns the operations of a path item in core.MethodOrder.
func PathOperations(path string, item *openapi3.PathItem) []Operation {
	if item == nil {
		return nil
	}
	var ops []Operation
	for _, method := range core.MethodOrder {
		op := item.GetOperation(strings.ToUpper(method))
		if op == nil {
			continue
		}
		ops = append(ops, Operation{Path: path, Method: method, PathItem: item, Value: op})
	}
	return ops
}

// AllOperations returns every operation of the document, paths sorted and
// methods in core.MethodOrder.
func AllOperations(doc *openapi3.T) []Operation {
	var ops []Operation
	for _, path := range SortedPaths(doc) {
		ops = append(ops, PathOperations(path, doc.Paths.Value(path))...)
	}
	return ops
}

// IndexOperations maps operationId to its operation. The first occurrence
// wins when an id is used twice.
func IndexOperations(doc *openapi3.T) map[string]Operation {
	index := make(map[string]Operation)
	for _, op := range AllOperations(doc) {
		if op.Value.OperationID == "" {
			continue
		}
		if _, exists := index[op.Value.OperationID]; !exists {
			index[op.Value.OperationID] = op
		}
	}
	return index
}

// SuccessStatusCodes returns the 2xx response codes of op in lexical order.
func SuccessStatusCodes(op *openapi3.Operation) []string {
	if op == nil || op.Responses == nil {
		return nil
	}
	var codes []string
	for code := range op.Responses.Map() {
		if strings.HasPrefix(code, "2") {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// ResponseJSONSchema returns the application/json schema of the response
// with the given status code.
func ResponseJSONSchema(op *openapi3.Operation, code string) *openapi3.Schema {
	if op == nil || op.Responses == nil {
		return nil
	}
	resp := op.Responses.Value(code)
	if resp == nil || resp.Value == nil {
		return nil
	}
	return mediaTypeSchema(resp.Value.Content)
}

// SuccessResponseSchema returns the JSON schema of the first 2xx response.
// Only the first 2xx response is considered, even if it carries no JSON body.
func SuccessResponseSchema(op *openapi3.Operation) *openapi3.Schema {
	codes := SuccessStatusCodes(op)
	if len(codes) == 0 {
		return nil
	}
	return ResponseJSONSchema(op, codes[0])
}

// HasJSONRequestBody reports whether op accepts an application/json body.
func HasJSONRequestBody(op *openapi3.Operation) bool {
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return false
	}
	// Content.Get falls back to wildcard media types, so look up the exact key.
	return op.RequestBody.Value.Content[core.ContentTypeJSON] != nil
}

// RequestJSONSchema returns the application/json request body schema of op.
func RequestJSONSchema(op *openapi3.Operation) *openapi3.Schema {
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	return mediaTypeSchema(op.RequestBody.Value.Content)
}

// QueryParameterNames returns the names of query parameters of op, including
// those declared on the path item.
func QueryParameterNames(item *openapi3.PathItem, op *openapi3.Operation) []string {
	var params openapi3.Parameters
	if item != nil {
		params = append(params, item.Parameters...)
	}
	if op != nil {
		params = append(params, op.Parameters...)
	}
	names := make([]string, 0, len(params))
	for _, paramRef := range params {
		if paramRef == nil || paramRef.Value == nil {
			continue
		}
		if strings.EqualFold(paramRef.Value.In, openapi3.ParameterInQuery) {
			names = append(names, paramRef.Value.Name)
		}
	}
	return names
}

func mediaTypeSchema(content openapi3.Content) *openapi3.Schema {
	media := content[core.ContentTypeJSON]
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}
