package database

import (
	"context"
	"dbprobe/internal/schema"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Execute runs a single statement and collects every row it returns.
func (c *Connector) Execute(ctx context.Context, statement string) (schema.ResultSet, error) {
	c.logger.Debug("Executing statement", zap.String("sql", statement))

	rows, err := c.db.QueryContext(ctx, statement)
	if err != nil {
		return schema.ResultSet{}, c.queryError(ctx, statement, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return schema.ResultSet{}, c.queryError(ctx, statement, err)
	}

	result := schema.ResultSet{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return schema.ResultSet{}, c.queryError(ctx, statement, err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = schema.NormalizeValue(values[i])
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return schema.ResultSet{}, c.queryError(ctx, statement, err)
	}

	return result, nil
}

// ExecuteScript splits sql on semicolons and runs each non-empty statement in
// order. It stops at the first failing statement.
func (c *Connector) ExecuteScript(ctx context.Context, sql string) ([]schema.ResultSet, error) {
	var results []schema.ResultSet
	for _, stmt := range SplitStatements(sql) {
		result, err := c.Execute(ctx, stmt)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// SplitStatements breaks a script on ';' and drops blank pieces. Semicolons
// inside string literals are not special-cased.
func SplitStatements(sql string) []string {
	var statements []string
	for _, stmt := range strings.Split(sql, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (c *Connector) queryError(ctx context.Context, statement string, err error) error {
	qe := &QueryError{Statement: statement, Err: err}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no such table"):
		qe.Hint = fmt.Sprintf("Available tables: %s", strings.Join(c.ListTables(ctx), ", "))
	case strings.Contains(msg, "no such column"):
		qe.Hint = `Tip: use "dbprobe schema <table>" to see available columns`
	}

	return qe
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case float64:
		return schema.FormatFloat(val)
	default:
		return fmt.Sprint(schema.NormalizeValue(val))
	}
}
