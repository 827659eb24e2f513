package metadata

import (
	"strings"

	"github.com/vast-data/go-openstack-codegen/core"
)

func postProcessImage(resourceName, operationName string, op *core.OperationModel, t core.TargetNames) {
	switch {
	case strings.HasPrefix(resourceName, "schema"):
		// Schemas are rendered as raw JSON.
		setCLIOperationType(op, t, "json")
		replaceCommand(op, t, "get", "show")
	case resourceName == "metadef/namespace" && operationName != core.KeyList:
		applyResponseKeys([]responseKeyRule{{resource: resourceName, key: "null"}}, resourceName, operationName, op, t)
	case resourceName == "metadef/namespace/property" && operationName == core.KeyList:
		setCLIOperationType(op, t, "list_from_struct")
		applyResponseKeys([]responseKeyRule{{resource: resourceName, key: "properties"}}, resourceName, operationName, op, t)
	case resourceName == "metadef/namespace/resource_type":
		applyResponseKeys([]responseKeyRule{{resource: resourceName, key: "resource_type_associations"}}, resourceName, operationName, op, t)
		replaceCommand(op, t, "resource-type", "resource-type-association")
	case resourceName == "image" && operationName == core.KeyPatch:
		replaceCommand(op, t, "patch", "set")
	case resourceName == "image/file":
		replaceCommand(op, t, "file ", "")
	}

	tagAndPurge(resourceName, operationName, op, t)
}
