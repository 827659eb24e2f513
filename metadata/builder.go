package metadata

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	"github.com/vast-data/go-openstack-codegen/core"
	"github.com/vast-data/go-openstack-codegen/naming"
	"github.com/vast-data/go-openstack-codegen/openapi_schema"
)

// Options configures a Builder.
type Options struct {
	ServiceType string
	// SpecFile is recorded as spec_file on every resource.
	SpecFile string
	Targets  core.TargetNames
	// OperationIDDenylist extends the built-in operation id denylist.
	OperationIDDenylist []string
	Logger              *zap.Logger
}

// Builder produces the metadata document of one service document.
// A Builder is single use and not safe for concurrent use.
type Builder struct {
	doc        *openapi3.T
	opts       Options
	logger     *zap.Logger
	classifier *Classifier
	paths      []string
	index      map[string]openapi_schema.Operation
}

// NewBuilder prepares a builder for doc.
func NewBuilder(doc *openapi3.T, opts Options) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Targets.SDK == "" {
		opts.Targets.SDK = core.DefaultSDKTarget
	}
	if opts.Targets.CLI == "" {
		opts.Targets.CLI = core.DefaultCLITarget
	}
	logger = logger.With(zap.String("service_type", opts.ServiceType))
	return &Builder{
		doc:        doc,
		opts:       opts,
		logger:     logger,
		classifier: NewClassifier(opts.ServiceType, opts.OperationIDDenylist, logger),
		paths:      openapi_schema.SortedPaths(doc),
		index:      openapi_schema.IndexOperations(doc),
	}
}

// RuleHits reports how many operations every classification rule decided.
func (b *Builder) RuleHits() []RuleHit {
	return b.classifier.RuleHits()
}

// Build classifies every operation of the document. Conflicting operation
// keys and malformed action bodies abort the build.
func (b *Builder) Build() (*core.Metadata, error) {
	md := core.NewMetadata()
	apiVersion := b.APIVersion()

	for _, path := range b.paths {
		resourceName := ResolveResourceName(b.opts.ServiceType, path)
		if IsDeprecatedResource(b.opts.ServiceType, resourceName) {
			b.logger.Debug("skipping deprecated resource", zap.String("path", path), zap.String("resource", resourceName))
			continue
		}
		res := md.EnsureResource(core.ResourceKey(b.opts.ServiceType, resourceName), apiVersion, b.opts.SpecFile)

		for _, wire := range openapi_schema.PathOperations(path, b.doc.Paths.Value(path)) {
			if err := b.addOperation(res, resourceName, wire); err != nil {
				return nil, err
			}
		}
	}

	b.finalizeResources(md)
	return md, nil
}

// APIVersion returns "v<major>" of the document info version.
func (b *Builder) APIVersion() string {
	var raw string
	if b.doc != nil && b.doc.Info != nil {
		raw = b.doc.Info.Version
	}
	v, err := core.APIVersion(raw)
	if err == nil {
		return v
	}
	fallback := "v" + strings.Split(raw, ".")[0]
	b.logger.Warn("cannot parse api version, using leading component",
		zap.String("version", raw), zap.String("api_version", fallback), zap.Error(err))
	return fallback
}

func (b *Builder) routeContext(resourceName string, wire openapi_schema.Operation) *RouteContext {
	return &RouteContext{
		ServiceType:    b.opts.ServiceType,
		ResourceName:   resourceName,
		Path:           wire.Path,
		Method:         wire.Method,
		OperationID:    wire.Value.OperationID,
		JSONRequest:    openapi_schema.HasJSONRequestBody(wire.Value),
		Response:       openapi_schema.SuccessResponseSchema(wire.Value),
		CollectionRoot: b.isCollectionRoot(wire.Path),
	}
}

func (b *Builder) isCollectionRoot(path string) bool {
	prefix := path + "/{"
	for _, p := range b.paths {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

func (b *Builder) addOperation(res *core.ResourceModel, resourceName string, wire openapi_schema.Operation) error {
	ctx := b.routeContext(resourceName, wire)
	log := b.logger.With(
		zap.String("path", ctx.Path),
		zap.String("method", ctx.Method),
		zap.String("operation_id", ctx.OperationID),
		zap.String("resource", resourceName),
	)

	decision := b.classifier.Classify(ctx)
	if decision.Drop {
		log.Debug("operation dropped", zap.String("rule", decision.Rule))
		return nil
	}
	if decision.Key == "" {
		log.Warn("operation skipped", zap.Error(&core.UnclassifiedOperationError{Path: ctx.Path, Method: ctx.Method}))
		return nil
	}

	if decision.Key == core.KeyAction && actionServices[b.opts.ServiceType] {
		return b.addActions(res, ctx, wire, log)
	}

	t := b.opts.Targets
	op := core.NewOperationModel(ctx.OperationID, ResolveOperationType(b.opts.ServiceType, resourceName, decision.Key))
	op.SetTarget(t.SDK, SDKTargetParams(decision.Key, "", ""))
	// HEAD probes have no CLI use in identity.
	if !(b.opts.ServiceType == core.ServiceIdentity && decision.Key == core.KeyCheck) {
		op.SetTarget(t.CLI, CLITargetParams(decision.Key, "", "", resourceName))
	}
	core.ApplyPostProcessors(b.opts.ServiceType, resourceName, decision.Key, op, t)

	return b.store(res, resourceName, decision.Key, op, ctx)
}

// addActions registers one operation per action of an /action endpoint.
func (b *Builder) addActions(res *core.ResourceModel, ctx *RouteContext, wire openapi_schema.Operation, log *zap.Logger) error {
	names, err := ActionNames(ctx.Path, openapi_schema.RequestJSONSchema(wire.Value))
	if err != nil {
		return fmt.Errorf("%s %s: %w", ctx.Method, ctx.Path, err)
	}

	t := b.opts.Targets
	for _, actionName := range names {
		if isSkippedAction(ctx.ResourceName, actionName) {
			log.Warn("skipping action duplicating a CRUD operation", zap.String("action", actionName))
			continue
		}
		operationName := naming.ToKebabCase(actionName)
		moduleName := naming.ModuleName(actionName)

		op := core.NewOperationModel(ctx.OperationID, core.OperationTypeAction)
		op.SetTarget(t.SDK, SDKTargetParams(core.KeyAction, actionName, moduleName))
		op.SetTarget(t.CLI, CLITargetParams(core.KeyAction, actionName, moduleName, ctx.ResourceName))
		core.ApplyPostProcessors(b.opts.ServiceType, ctx.ResourceName, operationName, op, t)

		if err := b.store(res, ctx.ResourceName, operationName, op, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) store(res *core.ResourceModel, resourceName, key string, op *core.OperationModel, ctx *RouteContext) error {
	if existing, ok := res.Operations[key]; ok {
		return &core.OperationConflictError{
			Resource:            resourceName,
			OperationKey:        key,
			OperationID:         op.OperationID,
			ExistingOperationID: existing.OperationID,
			Path:                ctx.Path,
			Method:              ctx.Method,
		}
	}
	res.Operations[key] = op
	return nil
}
