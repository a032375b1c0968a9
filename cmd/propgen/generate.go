package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	propgen "github.com/goliatone/go-propgen"
	"github.com/goliatone/go-propgen/pkg/collector"
	"github.com/goliatone/go-propgen/pkg/diag"
	"github.com/goliatone/go-propgen/pkg/generator"
	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
)

type generateFlags struct {
	source         string
	output         string
	format         string
	resources      []string
	interactive    bool
	endpointNotice bool
	verbose        bool
}

func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the property model for an OpenAPI document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.source, "source", "s", "", "OpenAPI document path or URL (required)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringSliceVarP(&flags.resources, "resource", "r", nil, "limit output to the named resources")
	cmd.Flags().BoolVar(&flags.interactive, "select", false, "pick resources interactively")
	cmd.Flags().BoolVar(&flags.endpointNotice, "endpoint-notice", false, "prepend the raw endpoint ahead of every operation's fields")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log skipped and dropped operations")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	sink, cleanup, err := buildSink(flags.verbose)
	if err != nil {
		return err
	}
	defer cleanup()

	source := parseSource(flags.source)
	options := []generator.Option{
		generator.WithSink(sink),
		generator.WithCollectorOptions(collector.WithEndpointNotice(flags.endpointNotice)),
	}
	if source.Kind() == pkgopenapi.SourceKindURL {
		options = append(options, generator.WithLoader(
			propgen.NewLoader(pkgopenapi.WithHTTPFallback(30*time.Second)),
		))
	}
	gen := generator.New(options...)

	result, err := gen.Generate(cmd.Context(), generator.Request{Source: source})
	if err != nil {
		return err
	}

	selected := flags.resources
	if flags.interactive {
		selected, err = promptResources(result)
		if err != nil {
			return err
		}
	}
	if len(selected) > 0 {
		result = result.FilterResources(selected...)
	}

	payload, err := marshalProperties(result, flags.format)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, payload, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Property model written to %s\n", flags.output)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}

func buildSink(verbose bool) (diag.Sink, func(), error) {
	if !verbose {
		return diag.Nop(), func() {}, nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, nil, fmt.Errorf("initialise logger: %w", err)
	}
	return diag.NewZap(logger.Sugar()), func() { _ = logger.Sync() }, nil
}

func promptResources(result generator.Result) ([]string, error) {
	options := make([]string, 0, len(result.Resource.Options))
	for _, option := range result.Resource.Options {
		options = append(options, option.Value)
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Resources to include:",
		Options: options,
		Default: options,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, err
	}
	return selected, nil
}

func marshalProperties(result generator.Result, format string) ([]byte, error) {
	properties := result.Properties()
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(properties, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(properties)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}
