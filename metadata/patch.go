package metadata

import (
	"strings"

	"github.com/vast-data/go-openstack-codegen/core"
)

const (
	patchRuleFederation    = "identity-federation"
	patchRuleDomainConfig  = "identity-domain-config-default"
	patchRuleObjectStorage = "object-store"
)

var patchRuleNames = []string{patchRuleFederation, patchRuleDomainConfig, patchRuleObjectStorage}

var federationResources = map[string]bool{
	"OS_FEDERATION/identity_provider":          true,
	"OS_FEDERATION/identity_provider/protocol": true,
	"OS_FEDERATION/mapping":                    true,
	"OS_FEDERATION/service_provider":           true,
}

var domainConfigResources = map[string]bool{
	"domain/config":              true,
	"domain/config/group":        true,
	"domain/config/group/option": true,
}

// Object storage verbs do not follow the generic CRUD convention.
var objectStoreKeys = map[string]map[string]string{
	"object": {
		"head":   "head",
		"get":    core.KeyGet,
		"delete": core.KeyDelete,
		"put":    "put",
		"post":   core.KeyUpdate,
	},
	"container": {
		"head":   "head",
		"get":    core.KeyGet,
		"delete": core.KeyDelete,
		"put":    core.KeyCreate,
		"post":   core.KeyUpdate,
	},
	"account": {
		"head":   "head",
		"get":    core.KeyGet,
		"delete": core.KeyDelete,
		"put":    core.KeyCreate,
		"post":   core.KeyUpdate,
	},
}

// patchOperationKey applies the service specific overrides that run after
// the cascade. patched is false when nothing applied.
func patchOperationKey(ctx *RouteContext, key string) (newKey, rule string, drop, patched bool) {
	switch ctx.ServiceType {
	case core.ServiceIdentity:
		if federationResources[ctx.ResourceName] {
			switch ctx.Method {
			case "put":
				return core.KeyCreate, patchRuleFederation, false, true
			case "patch":
				return core.KeyUpdate, patchRuleFederation, false, true
			}
		}
		if domainConfigResources[ctx.ResourceName] && strings.HasSuffix(ctx.Path, "/default") {
			switch ctx.Method {
			case "get":
				return core.KeyDefault, patchRuleDomainConfig, false, true
			case "head":
				return "", patchRuleDomainConfig, true, true
			}
		}

	case core.ServiceObjectStore:
		if keys, ok := objectStoreKeys[ctx.ResourceName]; ok {
			if k, ok := keys[ctx.Method]; ok {
				return k, patchRuleObjectStorage, false, true
			}
		}
	}
	return key, "", false, false
}
