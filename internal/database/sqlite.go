package database

import (
	"context"
	"database/sql"
	"dbprobe/internal/schema"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ListTables returns the user tables ordered by name, after the configured
// include/exclude filters. Failures are logged and produce an empty list.
func (c *Connector) ListTables(ctx context.Context) []string {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		c.logger.Warn("Failed to list tables", zap.Error(err))
		return []string{}
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			c.logger.Warn("Failed to scan table name", zap.Error(err))
			return []string{}
		}
		if !c.filter.Allows(name) {
			c.logger.Debug("Skipping filtered table", zap.String("table", name))
			continue
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		c.logger.Warn("Failed to list tables", zap.Error(err))
		return []string{}
	}

	return tables
}

// TableSchema reads columns, row count and index names for one table.
func (c *Connector) TableSchema(ctx context.Context, tableName string) (schema.Table, error) {
	table := schema.Table{Name: tableName}

	columns, err := c.extractColumns(ctx, tableName)
	if err != nil {
		return table, &IntrospectionError{Table: tableName, Err: err}
	}
	if len(columns) == 0 {
		return table, &IntrospectionError{Table: tableName, Err: fmt.Errorf("no such table: %s", tableName)}
	}
	table.Columns = columns

	rowCount, err := c.countRows(ctx, tableName)
	if err != nil {
		return table, &IntrospectionError{Table: tableName, Err: err}
	}
	table.RowCount = rowCount

	indexes, err := c.extractIndexes(ctx, tableName)
	if err != nil {
		return table, &IntrospectionError{Table: tableName, Err: err}
	}
	table.Indexes = indexes

	c.logger.Debug("Read table schema",
		zap.String("table", tableName),
		zap.Int("columns", len(columns)),
		zap.Int64("rows", rowCount))

	return table, nil
}

func (c *Connector) extractColumns(ctx context.Context, tableName string) ([]schema.Column, error) {
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(tableName))

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.Column
	for rows.Next() {
		var col schema.Column
		var cid int
		var defaultValue sql.NullString
		var notNull int
		var pk int

		if err := rows.Scan(
			&cid,
			&col.Name,
			&col.Type,
			&notNull,
			&defaultValue,
			&pk,
		); err != nil {
			return nil, err
		}

		col.NotNull = notNull != 0
		col.PrimaryKey = pk != 0

		columns = append(columns, col)
	}

	return columns, rows.Err()
}

func (c *Connector) countRows(ctx context.Context, tableName string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdent(tableName))
	if err := c.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// extractIndexes returns index names in the order PRAGMA index_list reports
// them. The pragma grew extra columns over SQLite releases, so only the name
// column is picked out.
func (c *Connector) extractIndexes(ctx context.Context, tableName string) ([]string, error) {
	query := fmt.Sprintf("PRAGMA index_list(%s)", quoteIdent(tableName))

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	nameIdx := 1
	for i, col := range cols {
		if col == "name" {
			nameIdx = i
		}
	}

	indexes := []string{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		indexes = append(indexes, stringify(values[nameIdx]))
	}

	return indexes, rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
