// Package naming derives resource names, module names and command words
// from OpenStack API paths and operation keys.
package naming

import (
	"strings"
	"unicode"

	"github.com/vast-data/go-openstack-codegen/core"
)

// FQANAliases maps fully qualified attribute names to the alias they are
// known under. Only "name" aliases are consumed when building find operations.
var FQANAliases = map[string]string{
	"network.floatingip.floating_ip_address": "name",
}

// SplitName splits a name on "_", "-" and lower-to-upper case transitions.
// Empty parts produced by adjacent separators are kept.
func SplitName(name string) []string {
	var parts []string
	var current strings.Builder
	var prev rune
	for i, r := range name {
		switch {
		case r == '_' || r == '-':
			parts = append(parts, current.String())
			current.Reset()
		case i > 0 && unicode.IsUpper(r) && unicode.IsLower(prev):
			parts = append(parts, current.String())
			current.Reset()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	return append(parts, current.String())
}

// ToSnakeCase lower-cases the parts of name and joins them with "_".
func ToSnakeCase(name string) string {
	return joinLower(SplitName(name), "_")
}

// ToKebabCase lower-cases the parts of name and joins them with "-".
func ToKebabCase(name string) string {
	return joinLower(SplitName(name), "-")
}

func joinLower(parts []string, sep string) string {
	lowered := make([]string, len(parts))
	for i, part := range parts {
		lowered[i] = strings.ToLower(part)
	}
	return strings.Join(lowered, sep)
}

// ModuleName returns the code module name for an operation key or action name.
func ModuleName(name string) string {
	switch name {
	case core.KeyList, core.KeyListDetailed:
		return "list"
	case core.KeyGet:
		return "get"
	case core.KeyShow:
		return "show"
	case core.KeyCheck:
		return "head"
	case core.KeyUpdate:
		return "set"
	case core.KeyReplace:
		return "replace"
	case core.KeyDelete:
		return "delete"
	case core.KeyDeleteAll:
		return "delete_all"
	case core.KeyCreate:
		return "create"
	case core.KeyDefault:
		return "default"
	}
	return ToSnakeCase(name)
}

// CLIOperationName turns a module name into the trailing command word:
// an "os_" or "os-" prefix is dropped and underscores become hyphens.
func CLIOperationName(moduleName string) string {
	op := moduleName
	if strings.HasPrefix(op, "os_") || strings.HasPrefix(op, "os-") {
		op = op[3:]
	}
	return strings.ReplaceAll(op, "_", "-")
}

// CLICommand builds "<resource words> <operation word>" for a resource path
// such as "server/volume_attachment".
func CLICommand(resourceName, moduleName string) string {
	resource := strings.ReplaceAll(strings.Join(strings.Split(resourceName, "/"), " "), "_", "-")
	return resource + " " + CLIOperationName(moduleName)
}

// SDKModPath returns the SDK module path elements of a resource:
// service type, API version, then the lower-cased resource names.
func SDKModPath(serviceType, apiVersion, path string) []string {
	mod := []string{strings.ReplaceAll(serviceType, "-", "_"), apiVersion}
	for _, name := range ResourceNamesFromURL(path) {
		mod = append(mod, strings.ToLower(name))
	}
	return mod
}

// NameFieldAlias returns the attribute aliased to "name" for the resource key
// (e.g. "network.floatingip"), or "" when there is none.
func NameFieldAlias(resourceKey string) string {
	var field string
	for fqan, alias := range FQANAliases {
		if alias != "name" || !strings.HasPrefix(fqan, resourceKey) {
			continue
		}
		parts := strings.Split(fqan, ".")
		candidate := parts[len(parts)-1]
		if field == "" || candidate < field {
			field = candidate
		}
	}
	return field
}
