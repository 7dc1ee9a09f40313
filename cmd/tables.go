package cmd

import (
	"context"
	"dbprobe/internal/database"
	"dbprobe/internal/generators"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List all tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConnector(cmd, func(ctx context.Context, c *database.Connector) error {
			tables := c.ListTables(ctx)
			return emit(cmd.OutOrStdout(), map[string][]string{"tables": tables}, func() string {
				return generators.FormatTableList(tables)
			})
		})
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema <table>",
	Short: "Show columns, row count and indexes of a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConnector(cmd, func(ctx context.Context, c *database.Connector) error {
			table, err := c.TableSchema(ctx, args[0])
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), table, func() string {
				return generators.FormatTableSchema(table)
			})
		})
	},
}
