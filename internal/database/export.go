package database

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"go.uber.org/zap"
)

const DefaultCSVFile = "query_results.csv"

// ExportCSV runs statement and writes its rows to path with a header line.
// It returns the number of data rows written.
func (c *Connector) ExportCSV(ctx context.Context, statement, path string) (int, error) {
	if path == "" {
		path = DefaultCSVFile
	}

	result, err := c.Execute(ctx, statement)
	if err != nil {
		return 0, err
	}
	if result.Len() == 0 {
		return 0, ErrNoResults
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(result.Columns); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(result.Columns))
	for _, row := range result.Rows {
		for i, col := range result.Columns {
			record[i] = stringify(row[col])
		}
		if err := w.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush %s: %w", path, err)
	}

	c.logger.Info("Exported query results", zap.String("file", path), zap.Int("rows", result.Len()))

	return result.Len(), nil
}
