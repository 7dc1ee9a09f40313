package generators

import (
	"dbprobe/internal/schema"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxColumnWidth  = 30
	widthSampleRows = 20
	ruleWidth       = 60
)

// batchSeparator sits between consecutive result batches.
var batchSeparator = "\n" + strings.Repeat("=", ruleWidth) + "\n"

// FormatTable renders result batches as column-aligned text. Column widths
// are sized from the header and the first 20 rows only and capped at 30;
// longer values are cut, and rows past the sample may not line up.
func FormatTable(batches []schema.ResultSet) string {
	var lines []string

	for i, batch := range batches {
		if i > 0 {
			lines = append(lines, batchSeparator)
		}

		if batch.Len() == 0 {
			lines = append(lines, "No results returned")
			continue
		}

		widths := columnWidths(batch)

		cells := make([]string, len(batch.Columns))
		for j, col := range batch.Columns {
			cells[j] = padRight(col, widths[j])
		}
		header := strings.Join(cells, " | ")
		lines = append(lines, header)
		lines = append(lines, strings.Repeat("-", utf8.RuneCountInString(header)))

		for _, row := range batch.Rows {
			for j, col := range batch.Columns {
				cells[j] = padRight(truncate(FormatValue(row[col]), widths[j]), widths[j])
			}
			lines = append(lines, strings.Join(cells, " | "))
		}

		lines = append(lines, fmt.Sprintf("\nRows returned: %d", batch.Len()))
	}

	return strings.Join(lines, "\n")
}

func columnWidths(batch schema.ResultSet) []int {
	sample := batch.Rows
	if len(sample) > widthSampleRows {
		sample = sample[:widthSampleRows]
	}

	widths := make([]int, len(batch.Columns))
	for j, col := range batch.Columns {
		w := utf8.RuneCountInString(col)
		for _, row := range sample {
			w = max(w, utf8.RuneCountInString(FormatValue(row[col])))
		}
		widths[j] = min(w, maxColumnWidth)
	}
	return widths
}

// FormatValue renders a single cell the way the text table shows it.
func FormatValue(v any) string {
	switch val := schema.NormalizeValue(v).(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case float64:
		return schema.FormatFloat(val)
	default:
		return fmt.Sprint(val)
	}
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
