package core

import (
	"sort"
)

// Metadata is the root of the generated document.
// Keys of Resources are "<service_type>.<resource_name>".
type Metadata struct {
	Resources map[string]*ResourceModel `yaml:"resources"`
}

// ResourceModel groups the operations of one (service_type, resource_name).
type ResourceModel struct {
	APIVersion string `yaml:"api_version,omitempty"`
	SpecFile   string `yaml:"spec_file,omitempty"`
	// Operations is always written, even when empty: a resource whose
	// operations were all skipped still appears as "operations: {}".
	Operations map[string]*OperationModel `yaml:"operations"`
}

// OperationModel is one logical operation. Several of them may share a wire
// endpoint (action endpoints are split per action name).
type OperationModel struct {
	OperationID   string                            `yaml:"operation_id,omitempty"`
	OperationType string                            `yaml:"operation_type,omitempty"`
	Targets       map[string]*OperationTargetParams `yaml:"targets,omitempty"`
}

// OperationTargetParams carries the naming of one operation for one
// downstream generator. Zero values are not serialized.
type OperationTargetParams struct {
	ModuleName string `yaml:"module_name,omitempty"`
	SDKModPath string `yaml:"sdk_mod_path,omitempty"`
	SDKModName string `yaml:"sdk_mod_name,omitempty"`
	// OperationType is a rendering hint for the target (show, json, list_from_struct)
	OperationType        string `yaml:"operation_type,omitempty"`
	OperationName        string `yaml:"operation_name,omitempty"`
	ResponseKey          string `yaml:"response_key,omitempty"`
	ResponseListItemKey  string `yaml:"response_list_item_key,omitempty"`
	FindImplementedBySDK bool   `yaml:"find_implemented_by_sdk,omitempty"`
	NameField            string `yaml:"name_field,omitempty"`
	NameFilterSupported  bool   `yaml:"name_filter_supported,omitempty"`
	ListMod              string `yaml:"list_mod,omitempty"`
	CLIFullCommand       string `yaml:"cli_full_command,omitempty"`
}

// NewMetadata returns an empty document.
func NewMetadata() *Metadata {
	return &Metadata{Resources: make(map[string]*ResourceModel)}
}

// ResourceKey builds the document key of a resource.
func ResourceKey(serviceType, resourceName string) string {
	return serviceType + "." + resourceName
}

// EnsureResource returns the resource registered under key, creating it on
// first use.
func (m *Metadata) EnsureResource(key, apiVersion, specFile string) *ResourceModel {
	if res, ok := m.Resources[key]; ok {
		return res
	}
	res := &ResourceModel{
		APIVersion: apiVersion,
		SpecFile:   specFile,
		Operations: make(map[string]*OperationModel),
	}
	m.Resources[key] = res
	return res
}

// ResourceKeys returns resource keys in lexical order.
func (m *Metadata) ResourceKeys() []string {
	keys := make([]string, 0, len(m.Resources))
	for key := range m.Resources {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// OperationKeys returns operation keys in lexical order.
func (r *ResourceModel) OperationKeys() []string {
	keys := make([]string, 0, len(r.Operations))
	for key := range r.Operations {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Operation returns the operation registered under key, or nil.
func (r *ResourceModel) Operation(key string) *OperationModel {
	if r == nil {
		return nil
	}
	return r.Operations[key]
}

// NewOperationModel creates an operation with an empty target set.
func NewOperationModel(operationID, operationType string) *OperationModel {
	return &OperationModel{
		OperationID:   operationID,
		OperationType: operationType,
		Targets:       make(map[string]*OperationTargetParams),
	}
}

// Target returns params for the named target, or nil when the target is not
// generated for this operation.
func (o *OperationModel) Target(name string) *OperationTargetParams {
	if o == nil {
		return nil
	}
	return o.Targets[name]
}

// SetTarget attaches params for the named target; nil params are ignored.
func (o *OperationModel) SetTarget(name string, params *OperationTargetParams) {
	if params == nil {
		return
	}
	if o.Targets == nil {
		o.Targets = make(map[string]*OperationTargetParams)
	}
	o.Targets[name] = params
}

// DropTarget removes the named target.
func (o *OperationModel) DropTarget(name string) {
	delete(o.Targets, name)
}
