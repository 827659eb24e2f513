package metadata

import "github.com/vast-data/go-openstack-codegen/core"

var computeResponseKeys = []responseKeyRule{
	{resource: "aggregate", operations: []string{"set-metadata", "add-host", "remove-host"}, key: "aggregate"},
	{resource: "server/instance_action", key: "instanceAction"},
	{resource: "server/instance_action", operations: []string{core.KeyList}, key: "instanceActions"},
	{resource: "server/topology", operations: []string{core.KeyList}, key: "nodes"},
	{resource: "server/volume_attachment", operations: []string{core.KeyList}, key: "volumeAttachments"},
	{resource: "server/volume_attachment", operations: []string{core.KeyCreate, core.KeyShow, core.KeyUpdate}, key: "volumeAttachment"},
	{resource: "limit", key: "limits"},
}

var computeCommandRewrites = []commandRewrite{
	{match: onOperationContaining("server", "migrate-live"), from: "migrate-live", to: "live-migrate"},
	{match: onResource("server/server_password"), from: "server-password", to: "password"},
	{match: onResource("server/server_password"), from: "get", to: "show"},
	{match: onResource("server/security_group"), from: "security-group list", to: "security-groups"},
	{match: onOperation("server/security_group", core.KeyGet), from: "get", to: "show"},
	{match: onOperation("flavor", "add-tenant-access"), from: "add-tenant-access", to: "access add"},
	{match: onOperation("flavor", "list-tenant-access"), from: "list-tenant-access", to: "access list"},
	{match: onOperation("flavor", "remove-tenant-access"), from: "remove-tenant-access", to: "access remove"},
}

func postProcessCompute(resourceName, operationName string, op *core.OperationModel, t core.TargetNames) {
	switch {
	case resourceName == "availability_zone" && operationName == core.KeyGet:
		availabilityZoneList.apply(op, t)
	case resourceName == "availability_zone" && operationName == core.KeyListDetailed:
		listRewrite{
			sdkOperation: "list_detail",
			sdkModule:    "list_detail",
			cliOperation: "list",
			cliModule:    "list_detail",
			responseKey:  "availabilityZoneInfo",
			command:      "availability-zone list-detail",
		}.apply(op, t)
	case resourceName == "keypair" && operationName == core.KeyList:
		if sdk := op.Target(t.SDK); sdk != nil {
			sdk.ResponseListItemKey = "keypair"
		}
	}

	applyResponseKeys(computeResponseKeys, resourceName, operationName, op, t)
	applyCommandRewrites(computeCommandRewrites, resourceName, operationName, op, t)

	if resourceName == "limit" {
		// Limits are a single object, not a list.
		setCLIOperationType(op, t, core.OperationTypeShow)
	}
	tagAndPurge(resourceName, operationName, op, t)
}
