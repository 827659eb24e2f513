package metadata

import "github.com/vast-data/go-openstack-codegen/core"

var blockStorageResponseKeys = []responseKeyRule{
	{resource: "type", operations: []string{core.KeyList}, key: "volume_types"},
	{resource: "type", operations: []string{core.KeyCreate, core.KeyShow, core.KeyUpdate}, key: "volume_type"},
	{resource: "type/volume_type_access", key: "volume_type_access"},
	{resource: "os_volume_transfer", operations: []string{core.KeyList, core.KeyListDetailed}, key: "transfers"},
	{resource: "volume_transfer", operations: []string{core.KeyList, core.KeyListDetailed}, key: "transfers"},
	{resource: "os_volume_transfer", operations: []string{"accept", core.KeyCreate, core.KeyShow}, key: "transfer", cliOnly: true},
	{resource: "volume_transfer", operations: []string{"accept", core.KeyCreate, core.KeyShow}, key: "transfer", cliOnly: true},
}

var qosAssociationList = listRewrite{
	sdkOperation: "list",
	sdkModule:    "list",
	cliOperation: "list",
	cliModule:    "list",
	responseKey:  "qos_associations",
	command:      "qos-spec association list",
}

func postProcessBlockStorage(resourceName, operationName string, op *core.OperationModel, t core.TargetNames) {
	applyResponseKeys(blockStorageResponseKeys, resourceName, operationName, op, t)
	tagOnly(resourceName, operationName, op, t)

	if resourceName == "snapshot" {
		applyCommandRewrites([]commandRewrite{
			{match: onOperationContaining("snapshot", "update-snapshot-status"), from: "update-snapshot-status", to: "update-status"},
		}, resourceName, operationName, op, t)
	}

	switch {
	case resourceName == "availability_zone" && operationName == core.KeyGet:
		availabilityZoneList.apply(op, t)
	case resourceName == "qos_spec/association":
		qosAssociationList.apply(op, t)
	case resourceName == "limit" && operationName == core.KeyList:
		// Limits are a single object, not a list.
		setCLIOperationType(op, t, core.OperationTypeShow)
	}

	purgeOnly(operationName, op, t)
}
