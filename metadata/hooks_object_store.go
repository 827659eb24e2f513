package metadata

import "github.com/vast-data/go-openstack-codegen/core"

// CLI commands of the object storage triad, by resource and operation key.
// Listing an account lists its containers and listing a container its objects.
var objectStoreCommands = map[string]map[string]string{
	"account": {
		core.KeyGet: "container list",
		"head":      "account show",
	},
	"container": {
		core.KeyGet: "object list",
		"head":      "container show",
	},
	"object": {
		core.KeyGet: "object download",
		"head":      "object show",
		"put":       "object upload",
	},
}

func postProcessObjectStore(resourceName, operationName string, op *core.OperationModel, t core.TargetNames) {
	if command, ok := objectStoreCommands[resourceName][operationName]; ok {
		setCommand(op, t, command)
	}
}
