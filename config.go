package openstack_codegen

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/vast-data/go-openstack-codegen/core"
)

// GeneratorConfig represents the configuration of one metadata generation run.
type GeneratorConfig struct {
	ServiceType     string `yaml:"service_type"`      // Service type, e.g. "compute" or "block-storage".
	OpenAPIYAMLSpec string `yaml:"openapi_yaml_spec"` // Path of the service OpenAPI document.
	WorkDir         string `yaml:"work_dir"`          // Directory receiving <service_type>_metadata.yaml.
	SDKTarget       string `yaml:"sdk_target"`        // Name of the SDK target block. Defaults to "rust-sdk".
	CLITarget       string `yaml:"cli_target"`        // Name of the CLI target block. Defaults to "rust-cli".

	// OperationIDDenylist lists extra operation ids that produce nothing.
	OperationIDDenylist []string `yaml:"operation_id_denylist"`

	// Logger receives warnings and rule decisions. If nil, logging is disabled.
	Logger *zap.Logger `yaml:"-"`
}

// GeneratorConfigFunc defines a function that can modify or validate a GeneratorConfig.
type GeneratorConfigFunc func(*GeneratorConfig) error

// Validate applies the given GeneratorConfigFunc validators to the config.
// The first failing validator stops validation.
func (config *GeneratorConfig) Validate(validators ...GeneratorConfigFunc) error {
	for _, fn := range validators {
		if err := fn(config); err != nil {
			return err
		}
	}
	return nil
}

// Targets returns the configured target names.
func (config *GeneratorConfig) Targets() core.TargetNames {
	return core.TargetNames{SDK: config.SDKTarget, CLI: config.CLITarget}
}

// Merge copies every non-empty field of override into config.
func (config *GeneratorConfig) Merge(override *GeneratorConfig) {
	if override == nil {
		return
	}
	if override.ServiceType != "" {
		config.ServiceType = override.ServiceType
	}
	if override.OpenAPIYAMLSpec != "" {
		config.OpenAPIYAMLSpec = override.OpenAPIYAMLSpec
	}
	if override.WorkDir != "" {
		config.WorkDir = override.WorkDir
	}
	if override.SDKTarget != "" {
		config.SDKTarget = override.SDKTarget
	}
	if override.CLITarget != "" {
		config.CLITarget = override.CLITarget
	}
	config.OperationIDDenylist = append(config.OperationIDDenylist, override.OperationIDDenylist...)
	if override.Logger != nil {
		config.Logger = override.Logger
	}
}

// LoadGeneratorConfig reads a YAML config file.
func LoadGeneratorConfig(fs afero.Fs, path string) (*GeneratorConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	config := &GeneratorConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}

// withServiceType validates that the ServiceType field is not empty.
func withServiceType(config *GeneratorConfig) error {
	if config.ServiceType == "" {
		return errors.New("service type cannot be empty string")
	}
	return nil
}

// withSpecPath validates that the OpenAPI document path is set.
func withSpecPath(config *GeneratorConfig) error {
	if config.OpenAPIYAMLSpec == "" {
		return errors.New("openapi spec path cannot be empty string")
	}
	return nil
}

// withWorkDir returns a GeneratorConfigFunc that sets a default output
// directory if none is provided.
func withWorkDir(defaultDir string) GeneratorConfigFunc {
	return func(config *GeneratorConfig) error {
		if config.WorkDir == "" {
			config.WorkDir = defaultDir
		}
		return nil
	}
}

// withTargets returns a GeneratorConfigFunc that sets default target names.
func withTargets(sdk, cli string) GeneratorConfigFunc {
	return func(config *GeneratorConfig) error {
		if config.SDKTarget == "" {
			config.SDKTarget = sdk
		}
		if config.CLITarget == "" {
			config.CLITarget = cli
		}
		if config.SDKTarget == config.CLITarget {
			return fmt.Errorf("sdk and cli targets must differ, both are %q", config.SDKTarget)
		}
		return nil
	}
}

// withLogger installs a no-op logger when none is configured.
func withLogger(config *GeneratorConfig) error {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return nil
}
