package metadata

import "github.com/vast-data/go-openstack-codegen/core"

var networkCommandRewrites = []commandRewrite{
	{match: onResourcePrefix("floatingip"), from: "floatingip", to: "floating-ip"},
	{match: onOperationContaining("router", "external_gateways"), from: "external-gateways", to: "external-gateway"},
	{match: onOperationContaining("router", "extraroutes"), from: "extraroutes", to: "extraroute"},
	{match: onOperationContaining("address_group", "addresses"), from: "addresses", to: "address"},
}

func postProcessNetwork(resourceName, operationName string, op *core.OperationModel, t core.TargetNames) {
	applyCommandRewrites(networkCommandRewrites, resourceName, operationName, op, t)
	tagAndPurge(resourceName, operationName, op, t)
}
