package metadata

import (
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	"github.com/vast-data/go-openstack-codegen/core"
	"github.com/vast-data/go-openstack-codegen/naming"
	"github.com/vast-data/go-openstack-codegen/openapi_schema"
)

// Resources addressed by name although their show response has no "name".
var nameExemptResources = map[string]bool{
	"floatingip": true,
}

// Operations that never take a name-or-id argument.
var findUnawareOperations = []string{core.KeyFind, core.KeyList, core.KeyCreate}

// finalizeResources runs the per-resource pass over a fully classified
// document: the plain list loses its CLI target when a detailed list exists,
// then a find operation is synthesized where possible.
func (b *Builder) finalizeResources(md *core.Metadata) {
	for _, key := range md.ResourceKeys() {
		res := md.Resources[key]
		list := res.Operation(core.KeyList)
		detailed := res.Operation(core.KeyListDetailed)
		if list != nil && detailed != nil {
			list.DropTarget(b.opts.Targets.CLI)
		}

		show := res.Operation(core.KeyShow)
		if show == nil || (list == nil && detailed == nil) {
			continue
		}
		listOp, listMod := list, core.KeyList
		if detailed != nil {
			listOp, listMod = detailed, core.KeyListDetailed
		}
		b.addFind(key, res, show, listOp, listMod)
	}
}

func (b *Builder) addFind(resourceKey string, res *core.ResourceModel, show, listOp *core.OperationModel, listMod string) {
	resourceName := strings.TrimPrefix(resourceKey, b.opts.ServiceType+".")
	log := b.logger.With(zap.String("resource", resourceName), zap.String("operation_id", show.OperationID))

	showWire, ok := b.index[show.OperationID]
	if !ok {
		log.Warn("find skipped", zap.Error(&core.ResponseSchemaError{OperationID: show.OperationID, Reason: "operation not found in document"}))
		return
	}
	schema := b.showResourceSchema(showWire, log)
	if schema == nil {
		log.Warn("find skipped, show response has no usable schema", zap.String("path", showWire.Path))
		return
	}
	if !openapi_schema.HasProperty(schema, "id") {
		log.Debug("find skipped, resource has no id")
		return
	}
	if !openapi_schema.HasProperty(schema, "name") && !nameExemptResources[resourceName] {
		log.Debug("find skipped, resource has no name")
		return
	}

	nameField := naming.NameFieldAlias(resourceKey)
	if nameField == "" {
		nameField = "name"
	}
	var nameFilterSupported bool
	if listWire, ok := b.index[listOp.OperationID]; ok {
		nameFilterSupported = slices.Contains(openapi_schema.QueryParameterNames(listWire.PathItem, listWire.Value), nameField)
	}

	find := core.NewOperationModel(listOp.OperationID, core.OperationTypeFind)
	find.SetTarget(b.opts.Targets.SDK, &core.OperationTargetParams{
		ModuleName:          "find",
		NameField:           nameField,
		NameFilterSupported: nameFilterSupported,
		SDKModPath:          strings.Join(naming.SDKModPath(b.opts.ServiceType, res.APIVersion, showWire.Path), "::"),
		ListMod:             listMod,
	})
	res.Operations[core.KeyFind] = find

	for key, op := range res.Operations {
		if slices.Contains(findUnawareOperations, key) {
			continue
		}
		if cli := op.Target(b.opts.Targets.CLI); cli != nil {
			cli.FindImplementedBySDK = true
		}
	}
}

// showResourceSchema returns the resource schema found in the 2xx JSON
// responses of a show operation. Later status codes take precedence.
func (b *Builder) showResourceSchema(wire openapi_schema.Operation, log *zap.Logger) *openapi3.Schema {
	var found *openapi3.Schema
	for _, code := range openapi_schema.SuccessStatusCodes(wire.Value) {
		response := openapi_schema.ResponseJSONSchema(wire.Value, code)
		if response == nil {
			continue
		}
		schema, _, err := openapi_schema.FindResourceSchema(response)
		if err != nil {
			log.Warn("cannot process show response",
				zap.String("status", code),
				zap.Error(&core.ResponseSchemaError{OperationID: wire.Value.OperationID, Reason: err.Error()}))
			continue
		}
		if schema != nil {
			found = schema
		}
	}
	return found
}
