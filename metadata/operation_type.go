package metadata

import (
	"slices"

	"github.com/vast-data/go-openstack-codegen/core"
)

var operationTypesByKey = map[string]string{
	core.KeyList:         core.OperationTypeList,
	core.KeyListDetailed: core.OperationTypeList,
	core.KeyGet:          core.OperationTypeGet,
	"stats":              core.OperationTypeGet,
	"status":             core.OperationTypeGet,
	core.KeyCheck:        core.OperationTypeGet,
	core.KeyShow:         core.OperationTypeShow,
	core.KeyUpdate:       core.OperationTypeSet,
	core.KeyReplace:      core.OperationTypeSet,
	core.KeyPatch:        core.OperationTypeSet,
	core.KeyDelete:       core.OperationTypeDelete,
	core.KeyDeleteAll:    core.OperationTypeDelete,
	core.KeyCreate:       core.OperationTypeCreate,
	core.KeyDefault:      core.OperationTypeShow,
	core.KeyDefaults:     core.OperationTypeShow,
	core.KeyDetails:      core.OperationTypeShow,
	core.KeyDownload:     core.OperationTypeDownload,
	core.KeyUpload:       core.OperationTypeUpload,
	// QoS (dis)associate calls are GETs without a body.
	"associate":        core.OperationTypeGet,
	"disassociate":     core.OperationTypeGet,
	"disassociate_all": core.OperationTypeGet,
}

// OperationTypeByKey maps an operation key to its coarse operation type.
// Unknown keys are actions.
func OperationTypeByKey(key string) string {
	if t, ok := operationTypesByKey[key]; ok {
		return t
	}
	return core.OperationTypeAction
}

type operationTypeOverride struct {
	services []string
	resource string
	keys     []string // empty matches every key
	opType   string
}

// Resources whose operation type differs from what the key implies.
var operationTypeOverrides = []operationTypeOverride{
	{
		services: []string{core.ServiceCompute, core.ServiceBlockStorage, core.ServiceVolume},
		resource: "availability_zone",
		keys:     []string{core.KeyGet, core.KeyListDetailed},
		opType:   core.OperationTypeList,
	},
	{
		services: []string{core.ServiceBlockStorage, core.ServiceVolume},
		resource: "qos_spec/association",
		opType:   core.OperationTypeList,
	},
	{
		services: []string{core.ServiceObjectStore},
		resource: "object",
		keys:     []string{core.KeyGet},
		opType:   core.OperationTypeDownload,
	},
	{
		services: []string{core.ServiceObjectStore},
		resource: "object",
		keys:     []string{"put"},
		opType:   core.OperationTypeUpload,
	},
}

// ResolveOperationType returns the operation type of key on a resource,
// taking the per-resource overrides into account.
func ResolveOperationType(serviceType, resourceName, key string) string {
	for _, o := range operationTypeOverrides {
		if o.resource != resourceName || !slices.Contains(o.services, serviceType) {
			continue
		}
		if len(o.keys) == 0 || slices.Contains(o.keys, key) {
			return o.opType
		}
	}
	return OperationTypeByKey(key)
}
