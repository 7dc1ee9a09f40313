package cmd

import (
	"context"
	"dbprobe/internal/analysis"
	"dbprobe/internal/database"
	"dbprobe/internal/generators"
	"dbprobe/internal/schema"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the database schema and report insights",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConnector(cmd, func(ctx context.Context, c *database.Connector) error {
			report := analysis.NewAnalyzer(c, logger).Analyze(ctx, c.Path())
			return emit(cmd.OutOrStdout(), report, func() string {
				return generators.FormatAnalysis(report)
			})
		})
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest exploratory queries based on schema analysis",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConnector(cmd, func(ctx context.Context, c *database.Connector) error {
			report := analysis.NewAnalyzer(c, logger).Analyze(ctx, c.Path())
			return emit(cmd.OutOrStdout(), report.SuggestedQueries, func() string {
				return generators.FormatSuggestions(report.SuggestedQueries)
			})
		})
	},
}

var (
	diagramType   string
	diagramOutput string
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Write an ER diagram of the tables and their inferred relationships",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ext, ok := generators.DiagramExtensions[diagramType]
		if !ok {
			return fmt.Errorf("invalid diagram type '%s'. Valid types: %s", diagramType, strings.Join(generators.DiagramFormats, ", "))
		}
		output := diagramOutput
		if output == "" {
			output = "schema" + ext
		}

		return withConnector(cmd, func(ctx context.Context, c *database.Connector) error {
			report := analysis.NewAnalyzer(c, logger).Analyze(ctx, c.Path())

			var tables []schema.Table
			for _, name := range c.ListTables(ctx) {
				if _, ok := report.Tables[name]; !ok {
					continue
				}
				t, err := c.TableSchema(ctx, name)
				if err != nil {
					continue
				}
				tables = append(tables, t)
			}

			content, err := generators.GenerateDiagram(generators.Diagram{
				Database:        c.Path(),
				Tables:          tables,
				Classifications: report.Tables,
				Relationships:   report.Relationships,
				GeneratedAt:     time.Now(),
			}, diagramType)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(output, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schema diagram generated: %s\n", output)
			fmt.Fprintf(cmd.OutOrStdout(), "Format: %s\n", diagramType)
			fmt.Fprintf(cmd.OutOrStdout(), "Tables: %d\n", len(tables))
			fmt.Fprintf(cmd.OutOrStdout(), "Inferred relationships: %d\n", len(report.Relationships))
			return nil
		})
	},
}

func init() {
	diagramCmd.Flags().StringVarP(&diagramType, "type", "t", generators.DiagramMermaid, "Diagram type: mermaid, plantuml, graphviz")
	diagramCmd.Flags().StringVarP(&diagramOutput, "output", "o", "", "Output file path (default: schema.<ext>)")
}
