package main

import (
	"fmt"

	"github.com/spf13/cobra"

	propgen "github.com/goliatone/go-propgen"
	"github.com/goliatone/go-propgen/pkg/diag"
	"github.com/goliatone/go-propgen/pkg/generator"
	pkgopenapi "github.com/goliatone/go-propgen/pkg/openapi"
)

func newAuditCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report how much of a document survives collection",
		Long: "Audit runs the collection pipeline with a capturing sink and reports\n" +
			"visited, skipped, and dropped operation counts along with every\n" +
			"warning, so silently dropped operations stay observable.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAudit(cmd, source)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "OpenAPI document path or URL (required)")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func runAudit(cmd *cobra.Command, source string) error {
	capture := &diag.Capture{}

	parsed := parseSource(source)
	options := []generator.Option{generator.WithSink(capture)}
	if parsed.Kind() == pkgopenapi.SourceKindURL {
		options = append(options, generator.WithLoader(
			propgen.NewLoader(pkgopenapi.WithHTTPFallback(0)),
		))
	}

	result, err := generator.New(options...).Generate(cmd.Context(), generator.Request{Source: parsed})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "resources: %d\n", len(result.Resource.Options))
	fmt.Fprintf(out, "operations visited: %d\n", result.Stats.Visited)
	fmt.Fprintf(out, "operations skipped: %d\n", result.Stats.Skipped)
	fmt.Fprintf(out, "operations dropped: %d\n", result.Stats.Dropped)

	warnings := 0
	for _, entry := range capture.Entries() {
		if entry.Severity != "warn" {
			continue
		}
		warnings++
		fmt.Fprintf(out, "warning: %s %v\n", entry.Message, entry.Context)
	}
	if warnings == 0 {
		fmt.Fprintln(out, "no warnings")
	}
	return nil
}
