package metadata

import (
	"strings"

	"github.com/vast-data/go-openstack-codegen/core"
)

var identityResponseKeys = []responseKeyRule{
	{resource: "role/imply", operations: []string{core.KeyList}, key: "role_inference"},
	{resource: "role_inference", operations: []string{core.KeyList}, key: "role_inferences"},
	{resource: "domain/config/group", key: "config"},
	{resource: "domain/config/group/option", key: "config"},
}

var identityCommandRewrites = []commandRewrite{
	{match: onResource("user/access_rule"), from: "user access-rule", to: "access-rule"},
	{match: onResource("user/application_credential"), from: "user application-credential", to: "application-credential"},
}

// Resources whose CLI command is replaced as a whole.
var identityCommands = map[string]string{
	"user/project": "user projects",
	"user/group":   "user groups",
}

func postProcessIdentity(resourceName, operationName string, op *core.OperationModel, t core.TargetNames) {
	applyResponseKeys(identityResponseKeys, resourceName, operationName, op, t)

	if strings.Contains(resourceName, "OS_FEDERATION") {
		replaceCommand(op, t, "OS-FEDERATION", "federation")
	} else if command, ok := identityCommands[resourceName]; ok {
		setCommand(op, t, command)
	}
	applyCommandRewrites(identityCommandRewrites, resourceName, operationName, op, t)

	tagAndPurge(resourceName, operationName, op, t)
}
