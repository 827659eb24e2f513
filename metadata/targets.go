package metadata

import (
	"github.com/vast-data/go-openstack-codegen/core"
	"github.com/vast-data/go-openstack-codegen/naming"
)

// SDKTargetParams builds the SDK target of an operation. operationName and
// moduleName are only given for actions.
func SDKTargetParams(operationKey, operationName, moduleName string) *core.OperationTargetParams {
	params := &core.OperationTargetParams{OperationName: operationName}
	switch {
	case operationKey == core.KeyShow:
		params.ModuleName = "get"
	case operationKey == core.KeyListDetailed:
		params.ModuleName = core.KeyListDetailed
	case moduleName != "":
		params.ModuleName = moduleName
	default:
		params.ModuleName = naming.ModuleName(operationKey)
	}
	return params
}

// CLITargetParams builds the CLI target of an operation on resourceName.
func CLITargetParams(operationKey, operationName, moduleName, resourceName string) *core.OperationTargetParams {
	sdk := SDKTargetParams(operationKey, operationName, moduleName)
	params := &core.OperationTargetParams{
		SDKModName:    sdk.ModuleName,
		ModuleName:    moduleName,
		OperationName: operationName,
	}
	if params.ModuleName == "" {
		params.ModuleName = naming.ModuleName(operationKey)
	}
	if resourceName != "" {
		params.CLIFullCommand = naming.CLICommand(resourceName, params.ModuleName)
	}
	return params
}
