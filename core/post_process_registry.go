package core

// TargetNames names the SDK and CLI targets of a run.
type TargetNames struct {
	SDK string
	CLI string
}

// PostProcessFunc rewrites the synthesized target params of one operation.
// It must not change OperationModel.OperationType.
type PostProcessFunc func(resourceName, operationName string, op *OperationModel, targets TargetNames)

// PostProcessRegistry holds the post-processing hooks per service type.
// It is populated by init() functions of the service hook tables.
var PostProcessRegistry = map[string][]PostProcessFunc{
	// Key is service type (e.g., "compute")
	// Value is the ordered list of hooks
}

// RegisterPostProcessor appends a hook for the service type. Hooks run in
// registration order.
func RegisterPostProcessor(serviceType string, fn PostProcessFunc) {
	PostProcessRegistry[serviceType] = append(PostProcessRegistry[serviceType], fn)
}

// GetPostProcessors returns the hooks registered for a service type.
func GetPostProcessors(serviceType string) []PostProcessFunc {
	return PostProcessRegistry[serviceType]
}

// ApplyPostProcessors runs every hook of the service type over op.
func ApplyPostProcessors(serviceType, resourceName, operationName string, op *OperationModel, targets TargetNames) {
	for _, fn := range GetPostProcessors(serviceType) {
		fn(resourceName, operationName, op, targets)
	}
}
