package openstack_codegen

import (
	"fmt"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/vast-data/go-openstack-codegen/core"
	"github.com/vast-data/go-openstack-codegen/metadata"
	"github.com/vast-data/go-openstack-codegen/openapi_schema"
)

var (
	inputFs  afero.Fs = afero.NewOsFs()
	outputFs afero.Fs = afero.NewOsFs()
)

const metadataFileSuffix = "_metadata.yaml"

// MetadataGenerator produces the metadata document of one service.
type MetadataGenerator struct {
	config  *GeneratorConfig
	builder *metadata.Builder
}

// Result describes a finished generation run.
type Result struct {
	Path        string
	Fingerprint string
	Metadata    *core.Metadata
}

// NewMetadataGenerator validates config and applies its defaults.
func NewMetadataGenerator(config *GeneratorConfig) (*MetadataGenerator, error) {
	if config == nil {
		return nil, fmt.Errorf("generator config cannot be nil")
	}
	if err := config.Validate(
		withServiceType,
		withSpecPath,
		withWorkDir("."),
		withTargets(core.DefaultSDKTarget, core.DefaultCLITarget),
		withLogger,
	); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	return &MetadataGenerator{config: config}, nil
}

// Config returns the validated configuration.
func (g *MetadataGenerator) Config() *GeneratorConfig {
	return g.config
}

// OutputPath returns <work_dir>/<service_type>_metadata.yaml.
func (g *MetadataGenerator) OutputPath() string {
	return filepath.Join(g.config.WorkDir, g.config.ServiceType+metadataFileSuffix)
}

// Generate loads the service document and classifies its operations.
// Nothing is written.
func (g *MetadataGenerator) Generate() (*core.Metadata, error) {
	doc, err := openapi_schema.Load(inputFs, g.config.OpenAPIYAMLSpec)
	if err != nil {
		return nil, fmt.Errorf("generate %s metadata: %w", g.config.ServiceType, err)
	}
	return g.GenerateFromDocument(doc)
}

// GenerateFromDocument classifies the operations of an already loaded document.
func (g *MetadataGenerator) GenerateFromDocument(doc *openapi3.T) (*core.Metadata, error) {
	g.builder = metadata.NewBuilder(doc, metadata.Options{
		ServiceType:         g.config.ServiceType,
		SpecFile:            g.config.OpenAPIYAMLSpec,
		Targets:             g.config.Targets(),
		OperationIDDenylist: g.config.OperationIDDenylist,
		Logger:              g.config.Logger,
	})
	md, err := g.builder.Build()
	if err != nil {
		return nil, fmt.Errorf("generate %s metadata: %w", g.config.ServiceType, err)
	}
	return md, nil
}

// Write serializes md to OutputPath, creating the work directory if needed.
func (g *MetadataGenerator) Write(md *core.Metadata) (string, error) {
	data, err := md.ToYAML()
	if err != nil {
		return "", err
	}
	if err := outputFs.MkdirAll(g.config.WorkDir, 0o755); err != nil {
		return "", fmt.Errorf("create work dir %s: %w", g.config.WorkDir, err)
	}
	path := g.OutputPath()
	if err := afero.WriteFile(outputFs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Run generates and writes the metadata document.
func (g *MetadataGenerator) Run() (*Result, error) {
	md, err := g.Generate()
	if err != nil {
		return nil, err
	}
	path, err := g.Write(md)
	if err != nil {
		return nil, err
	}
	fingerprint, err := md.Fingerprint()
	if err != nil {
		return nil, err
	}
	g.config.Logger.Info("metadata written",
		zap.String("service_type", g.config.ServiceType),
		zap.String("path", path),
		zap.Int("resources", len(md.Resources)),
		zap.Int("operations", md.CountOperations()),
		zap.String("fingerprint", fingerprint),
	)
	return &Result{Path: path, Fingerprint: fingerprint, Metadata: md}, nil
}

// RuleHits reports the classification rule counts of the last generation.
// It returns nil before the first Generate call.
func (g *MetadataGenerator) RuleHits() []metadata.RuleHit {
	if g.builder == nil {
		return nil
	}
	return g.builder.RuleHits()
}
