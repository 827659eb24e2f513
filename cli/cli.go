// Package cli provides the command line interface of the metadata generator.
package cli

import (
	"fmt"
	"io"

	"github.com/bndr/gotabulate"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	codegen "github.com/vast-data/go-openstack-codegen"
	"github.com/vast-data/go-openstack-codegen/core"
	"github.com/vast-data/go-openstack-codegen/logging"
	"github.com/vast-data/go-openstack-codegen/metadata"
)

var configFs afero.Fs = afero.NewOsFs()

type options struct {
	logLevel string
	logFile  string

	configFile string
	config     codegen.GeneratorConfig

	logger  *zap.Logger
	closeFn func()
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the openstack-codegen command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "openstack-codegen",
		Short:         "Generate OpenStack SDK and CLI operation metadata",
		Version:       core.ToolVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			service, closeFn, err := logging.New(logging.Options{
				Level:   opts.logLevel,
				File:    opts.logFile,
				Console: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			opts.logger, opts.closeFn = service.GetLogger(), closeFn
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.closeFn != nil {
				opts.closeFn()
			}
		},
	}

	metadataCmd := &cobra.Command{
		Use:   "metadata",
		Short: "Write <service_type>_metadata.yaml for one service",
		Long:  "Classify every operation of a service OpenAPI document and write the metadata document into the work directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := opts.generator()
			if err != nil {
				return err
			}
			result, err := generator.Run()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintf(out, "metadata written to %s\n", result.Path)
			fmt.Fprintf(out, "resources: %d, operations: %d\n", len(result.Metadata.Resources), result.Metadata.CountOperations())
			fmt.Fprintf(out, "fingerprint: %s\n", result.Fingerprint)
			return nil
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the classified operations without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := opts.generator()
			if err != nil {
				return err
			}
			md, err := generator.Generate()
			if err != nil {
				return err
			}
			config := generator.Config()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, md.PrettyTable(config.SDKTarget, config.CLITarget))
			printRuleHits(out, generator.RuleHits())
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the generator version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "openstack-codegen version: %s\n", core.ToolVersion())
		},
	}

	rootCmd.AddCommand(metadataCmd, summaryCmd, versionCmd)

	for _, cmd := range []*cobra.Command{metadataCmd, summaryCmd} {
		cmd.Flags().StringVar(&opts.config.ServiceType, "service-type", "", "Service type (compute, block-storage, network, ...)")
		cmd.Flags().StringVar(&opts.config.OpenAPIYAMLSpec, "openapi-yaml-spec", "", "Path of the service OpenAPI document")
		cmd.Flags().StringVar(&opts.configFile, "config", "", "YAML config file, flags take precedence")
		cmd.Flags().StringVar(&opts.config.SDKTarget, "sdk-target", "", "Name of the SDK target (default \"rust-sdk\")")
		cmd.Flags().StringVar(&opts.config.CLITarget, "cli-target", "", "Name of the CLI target (default \"rust-cli\")")
	}
	metadataCmd.Flags().StringVar(&opts.config.WorkDir, "work-dir", "", "Output directory (default \".\")")

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN, ERROR (default from "+logging.LevelEnv+", else INFO)")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Additional JSON log file")

	return rootCmd
}

// generator merges the config file with the flags and builds the generator.
func (o *options) generator() (*codegen.MetadataGenerator, error) {
	config := &codegen.GeneratorConfig{}
	if o.configFile != "" {
		fileConfig, err := codegen.LoadGeneratorConfig(configFs, o.configFile)
		if err != nil {
			return nil, err
		}
		config = fileConfig
	}
	flags := o.config
	config.Merge(&flags)
	config.Logger = o.logger
	return codegen.NewMetadataGenerator(config)
}

func printRuleHits(out io.Writer, hits []metadata.RuleHit) {
	if len(hits) == 0 {
		return
	}
	var rows [][]any
	var unused []string
	for _, hit := range hits {
		rows = append(rows, []any{hit.Rule, hit.Hits})
		if hit.Hits == 0 {
			unused = append(unused, hit.Rule)
		}
	}
	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"rule", "hits"})
	t.SetAlign("left")
	fmt.Fprintln(out, t.Render("simple"))

	if len(unused) > 0 {
		warn := color.New(color.FgYellow)
		warn.Fprintf(out, "rules never hit: %d\n", len(unused))
		for _, name := range unused {
			fmt.Fprintf(out, "  - %s\n", name)
		}
	}
}
