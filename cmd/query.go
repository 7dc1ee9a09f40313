package cmd

import (
	"context"
	"dbprobe/internal/database"
	"dbprobe/internal/generators"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <statements>",
	Short: "Execute raw SQL; several statements may be separated by ';'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConnector(cmd, func(ctx context.Context, c *database.Connector) error {
			results, err := c.ExecuteScript(ctx, args[0])
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), results, func() string {
				return generators.FormatTable(results)
			})
		})
	},
}

var multiCmd = &cobra.Command{
	Use:   "multi <statements>",
	Short: "Execute ';'-separated queries one by one, reporting each separately",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConnector(cmd, func(ctx context.Context, c *database.Connector) error {
			var outputs []generators.QueryOutput
			for _, stmt := range database.SplitStatements(args[0]) {
				out := generators.QueryOutput{SQL: stmt}
				results, err := c.ExecuteScript(ctx, stmt)
				if err != nil {
					logger.Debug("Query failed", zap.String("sql", stmt), zap.Error(err))
					out.Error = err.Error()
				} else {
					out.Results = results
				}
				outputs = append(outputs, out)
			}
			return emit(cmd.OutOrStdout(), outputs, func() string {
				return generators.FormatMulti(outputs)
			})
		})
	},
}

var csvCmd = &cobra.Command{
	Use:   "csv <statement>",
	Short: "Execute a query and export its results to CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConnector(cmd, func(ctx context.Context, c *database.Connector) error {
			file := cfg.Output.File
			if file == "" {
				file = database.DefaultCSVFile
			}
			n, err := c.ExportCSV(ctx, args[0], file)
			if err != nil {
				return fmt.Errorf("CSV export failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Data exported to %s\n", file)
			fmt.Fprintf(cmd.OutOrStdout(), "Rows exported: %d\n", n)
			return nil
		})
	},
}

func init() {
	csvCmd.Flags().String("file", "", "Output filename for CSV export (default: query_results.csv)")
	viper.BindPFlag("output.file", csvCmd.Flags().Lookup("file"))
}
