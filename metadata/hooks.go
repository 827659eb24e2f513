package metadata

import (
	"slices"
	"strings"

	"github.com/vast-data/go-openstack-codegen/core"
)

func init() {
	core.RegisterPostProcessor(core.ServiceCompute, postProcessCompute)
	core.RegisterPostProcessor(core.ServiceIdentity, postProcessIdentity)
	core.RegisterPostProcessor(core.ServiceImage, postProcessImage)
	core.RegisterPostProcessor(core.ServiceBlockStorage, postProcessBlockStorage)
	core.RegisterPostProcessor(core.ServiceVolume, postProcessBlockStorage)
	core.RegisterPostProcessor(core.ServiceNetwork, postProcessNetwork)
	core.RegisterPostProcessor(core.ServiceObjectStore, postProcessObjectStore)
}

// responseKeyRule sets the response key of matching operations.
type responseKeyRule struct {
	resource   string
	operations []string // empty matches every operation
	key        string
	cliOnly    bool
}

// applyResponseKeys runs every matching rule in order; the last match wins.
func applyResponseKeys(rules []responseKeyRule, resourceName, operationName string, op *core.OperationModel, t core.TargetNames) {
	for _, r := range rules {
		if r.resource != resourceName {
			continue
		}
		if len(r.operations) > 0 && !slices.Contains(r.operations, operationName) {
			continue
		}
		if !r.cliOnly {
			if sdk := op.Target(t.SDK); sdk != nil {
				sdk.ResponseKey = r.key
			}
		}
		if cli := op.Target(t.CLI); cli != nil {
			cli.ResponseKey = r.key
		}
	}
}

type operationMatcher func(resourceName, operationName string) bool

func onResource(name string) operationMatcher {
	return func(resourceName, _ string) bool { return resourceName == name }
}

func onResourcePrefix(prefix string) operationMatcher {
	return func(resourceName, _ string) bool { return strings.HasPrefix(resourceName, prefix) }
}

func onOperation(name string, operations ...string) operationMatcher {
	return func(resourceName, operationName string) bool {
		return resourceName == name && slices.Contains(operations, operationName)
	}
}

func onOperationContaining(name, fragment string) operationMatcher {
	return func(resourceName, operationName string) bool {
		return resourceName == name && strings.Contains(operationName, fragment)
	}
}

// commandRewrite replaces every occurrence of from in the CLI command.
type commandRewrite struct {
	match    operationMatcher
	from, to string
}

func applyCommandRewrites(rewrites []commandRewrite, resourceName, operationName string, op *core.OperationModel, t core.TargetNames) {
	for _, r := range rewrites {
		if r.match(resourceName, operationName) {
			replaceCommand(op, t, r.from, r.to)
		}
	}
}

func replaceCommand(op *core.OperationModel, t core.TargetNames, from, to string) {
	if cli := op.Target(t.CLI); cli != nil {
		cli.CLIFullCommand = strings.ReplaceAll(cli.CLIFullCommand, from, to)
	}
}

func setCommand(op *core.OperationModel, t core.TargetNames, command string) {
	if cli := op.Target(t.CLI); cli != nil {
		cli.CLIFullCommand = command
	}
}

func setCLIOperationType(op *core.OperationModel, t core.TargetNames, operationType string) {
	if cli := op.Target(t.CLI); cli != nil {
		cli.OperationType = operationType
	}
}

// listRewrite turns a non-list wire operation into a list on both targets.
type listRewrite struct {
	sdkOperation string
	sdkModule    string
	cliOperation string
	cliModule    string
	responseKey  string
	command      string
}

func (r listRewrite) apply(op *core.OperationModel, t core.TargetNames) {
	if sdk := op.Target(t.SDK); sdk != nil {
		sdk.OperationName = r.sdkOperation
		sdk.ModuleName = r.sdkModule
		sdk.ResponseKey = r.responseKey
	}
	if cli := op.Target(t.CLI); cli != nil {
		cli.OperationName = r.cliOperation
		cli.ModuleName = r.cliModule
		cli.SDKModName = r.sdkModule
		cli.ResponseKey = r.responseKey
		cli.CLIFullCommand = r.command
	}
}

var availabilityZoneList = listRewrite{
	sdkOperation: "list",
	sdkModule:    "list",
	cliOperation: "list",
	cliModule:    "list",
	responseKey:  "availabilityZoneInfo",
	command:      "availability-zone list",
}

// tagAndPurge holds the rewrites shared by most services: tag "update" adds
// a tag and tag "show" probes for one; delete_all is spelled "purge".
func tagAndPurge(resourceName, operationName string, op *core.OperationModel, t core.TargetNames) {
	tagOnly(resourceName, operationName, op, t)
	purgeOnly(operationName, op, t)
}

func tagOnly(resourceName, operationName string, op *core.OperationModel, t core.TargetNames) {
	if !strings.Contains(resourceName, "/tag") {
		return
	}
	switch operationName {
	case core.KeyUpdate:
		replaceCommand(op, t, "set", "add")
	case core.KeyShow:
		replaceCommand(op, t, "show", "check")
	}
}

func purgeOnly(operationName string, op *core.OperationModel, t core.TargetNames) {
	if operationName == core.KeyDeleteAll {
		replaceCommand(op, t, "delete-all", "purge")
	}
}
