// Package metadata turns an OpenAPI service document into the per-resource
// operation metadata consumed by the SDK and CLI generators.
package metadata

import (
	"github.com/vast-data/go-openstack-codegen/core"
	"github.com/vast-data/go-openstack-codegen/naming"
)

// Exact path overrides, per service type. Object storage paths are made
// of placeholders only and identity domain config paths nest "default"
// under a literal "config" segment, so neither decomposes generically.
var resourceNameOverrides = map[string]map[string]string{
	core.ServiceObjectStore: {
		"/v1/{account}":                     "account",
		"/v1/{account}/{container}":         "container",
		"/v1/{account}/{object}":            "object",
		"/v1/{account}/{container}/{object}": "object",
	},
	core.ServiceIdentity: {
		"/v3/domains/{domain_id}/config":                  "domain/config",
		"/v3/domains/{domain_id}/config/{group}":          "domain/config/group",
		"/v3/domains/{domain_id}/config/{group}/{option}": "domain/config/group/option",
		"/v3/domains/config/default":                      "domain/config",
		"/v3/domains/config/{group}/default":              "domain/config/group",
		"/v3/domains/config/{group}/{option}/default":     "domain/config/group/option",
	},
}

// Deprecated compute APIs. Nothing is produced for these resources.
var deprecatedResources = map[string]map[string]bool{
	core.ServiceCompute: {
		"agent":                       true,
		"baremetal_node":              true,
		"cell":                        true,
		"cell/capacity":               true,
		"cell/info":                   true,
		"cell/sync_instance":          true,
		"certificate":                 true,
		"cloudpipe":                   true,
		"fping":                       true,
		"fixed_ip":                    true,
		"floating_ip_dns":             true,
		"floating_ip_dns/entry":       true,
		"floating_ip_pool":            true,
		"floating_ip_bulk":            true,
		"host":                        true,
		"host/reboot":                 true,
		"host/shutdown":               true,
		"host/startup":                true,
		"image":                       true,
		"image/metadata":              true,
		"network":                     true,
		"security_group_default_rule": true,
		"security_group_rule":         true,
		"security_group":              true,
		"server/console":              true,
		"server/virtual_interface":    true,
		"snapshot":                    true,
		"tenant_network":              true,
		"volume":                      true,
		"volumes_boot":                true,
	},
}

// ResolveResourceName returns the "/"-joined resource name of a path.
func ResolveResourceName(serviceType, path string) string {
	if name, ok := resourceNameOverrides[serviceType][path]; ok {
		return name
	}
	return naming.ResourceName(path)
}

// IsDeprecatedResource reports whether the resource is excluded entirely.
func IsDeprecatedResource(serviceType, resourceName string) bool {
	return deprecatedResources[serviceType][resourceName]
}
