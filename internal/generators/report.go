package generators

import (
	"dbprobe/internal/analysis"
	"dbprobe/internal/schema"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const maxListedColumns = 5

var (
	titleFmt   = color.New(color.FgCyan, color.Bold).SprintFunc()
	sectionFmt = color.New(color.Bold).SprintFunc()
	nameFmt    = color.New(color.FgGreen).SprintFunc()
)

// QueryOutput is the outcome of one statement in a multi-query run.
type QueryOutput struct {
	SQL     string             `json:"sql" yaml:"sql"`
	Results []schema.ResultSet `json:"results,omitempty" yaml:"results,omitempty"`
	Error   string             `json:"error,omitempty" yaml:"error,omitempty"`
}

func FormatTableList(tables []string) string {
	var builder strings.Builder
	builder.WriteString(sectionFmt("Tables in database:") + "\n")
	for _, table := range tables {
		builder.WriteString(fmt.Sprintf("  %s\n", table))
	}
	return builder.String()
}

func FormatTableSchema(t schema.Table) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s %s\n", sectionFmt("Table:"), nameFmt(t.Name)))
	builder.WriteString(fmt.Sprintf("Rows: %s\n", humanize.Comma(t.RowCount)))
	builder.WriteString("\n" + sectionFmt("Columns:") + "\n")
	for _, col := range t.Columns {
		pk := ""
		if col.PrimaryKey {
			pk = " (PRIMARY KEY)"
		}
		null := ""
		if col.NotNull {
			null = " NOT NULL"
		}
		builder.WriteString(fmt.Sprintf("  %s - %s%s%s\n", col.Name, col.Type, null, pk))
	}
	if len(t.Indexes) > 0 {
		builder.WriteString(fmt.Sprintf("\n%s %s\n", sectionFmt("Indexes:"), strings.Join(t.Indexes, ", ")))
	}
	return builder.String()
}

func FormatAnalysis(r *analysis.Report) string {
	var builder strings.Builder

	builder.WriteString(titleFmt("Database Analysis") + "\n")
	builder.WriteString(strings.Repeat("=", 50) + "\n")
	builder.WriteString(fmt.Sprintf("Database: %s\n", r.Database))

	for _, insight := range r.Insights {
		builder.WriteString(fmt.Sprintf("• %s\n", insight))
	}

	builder.WriteString("\n" + sectionFmt("Table Details:") + "\n")
	builder.WriteString(strings.Repeat("-", 30) + "\n")

	for _, name := range sortedKeys(r.Tables) {
		info := r.Tables[name]
		builder.WriteString(fmt.Sprintf("\n%s (%s rows)\n", nameFmt(name), humanize.Comma(info.RowCount)))
		if len(info.PrimaryKeys) > 0 {
			builder.WriteString(fmt.Sprintf("  Primary keys: %s\n", strings.Join(info.PrimaryKeys, ", ")))
		}
		if len(info.DateColumns) > 0 {
			builder.WriteString(fmt.Sprintf("  Date columns: %s\n", strings.Join(info.DateColumns, ", ")))
		}
		if len(info.NumericColumns) > 0 {
			builder.WriteString(fmt.Sprintf("  Numeric columns: %s\n", strings.Join(firstN(info.NumericColumns, maxListedColumns), ", ")))
		}
		if len(info.TextColumns) > 0 {
			builder.WriteString(fmt.Sprintf("  Text columns: %s\n", strings.Join(firstN(info.TextColumns, maxListedColumns), ", ")))
		}
	}

	if len(r.Errors) > 0 {
		builder.WriteString("\n" + sectionFmt("Skipped tables:") + "\n")
		for _, msg := range r.Errors {
			builder.WriteString(fmt.Sprintf("  %s\n", msg))
		}
	}

	return builder.String()
}

func FormatSuggestions(queries []analysis.QueryCandidate) string {
	var builder strings.Builder

	builder.WriteString(titleFmt("Suggested Queries") + "\n")
	builder.WriteString(strings.Repeat("=", 50) + "\n")

	if len(queries) == 0 {
		builder.WriteString("No queries suggested. Database may be empty or inaccessible.\n")
		return builder.String()
	}

	for i, q := range queries {
		builder.WriteString(fmt.Sprintf("\n%d. %s - %s\n", i+1, nameFmt(q.Name), q.Description))
		builder.WriteString(fmt.Sprintf("   SQL: %s\n", q.SQL))
	}

	builder.WriteString("\nTo execute a query, use:\n")
	builder.WriteString("dbprobe sql \"QUERY_HERE\"\n")

	return builder.String()
}

// FormatMulti renders each statement with its own heading, in the order run.
// A failed statement shows its error in place of a table.
func FormatMulti(outputs []QueryOutput) string {
	var parts []string
	for i, out := range outputs {
		parts = append(parts, fmt.Sprintf("Query %d: %s", i+1, out.SQL))
		parts = append(parts, strings.Repeat("-", 40))
		if out.Error != "" {
			parts = append(parts, out.Error)
		} else {
			parts = append(parts, FormatTable(out.Results))
		}
		if i < len(outputs)-1 {
			parts = append(parts, batchSeparator)
		}
	}
	return strings.Join(parts, "\n")
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func sortedKeys(m map[string]analysis.Classification) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
