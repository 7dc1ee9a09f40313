package analysis

import (
	"fmt"
	"strings"
)

const (
	maxStatsColumns   = 3
	maxScannedText    = 2
	sampleLimit       = 5
	recentLimit       = 10
	frequencyTopLimit = 10
)

var labelKeywords = []string{"title", "name", "description", "summary"}

// QueryCandidate is a suggested exploratory statement. It is never executed
// by the analyzer.
type QueryCandidate struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	SQL         string `json:"sql" yaml:"sql"`
}

// SuggestQueries builds exploratory statements for one table from its
// classification. Identifiers are interpolated verbatim.
func SuggestQueries(table string, c Classification) []QueryCandidate {
	var queries []QueryCandidate

	if c.RowCount > 0 {
		queries = append(queries,
			QueryCandidate{
				Name:        "sample_" + table,
				Description: "Sample data from " + table,
				SQL:         fmt.Sprintf("SELECT * FROM %s LIMIT %d", table, sampleLimit),
			},
			QueryCandidate{
				Name:        "count_" + table,
				Description: "Total rows in " + table,
				SQL:         fmt.Sprintf("SELECT COUNT(*) as total_rows FROM %s", table),
			},
		)
	}

	if len(c.DateColumns) > 0 {
		dateCol := c.DateColumns[0]
		queries = append(queries,
			QueryCandidate{
				Name:        "recent_" + table,
				Description: "Recent records from " + table,
				SQL:         fmt.Sprintf("SELECT * FROM %s ORDER BY %s DESC LIMIT %d", table, dateCol, recentLimit),
			},
			QueryCandidate{
				Name:        "date_range_" + table,
				Description: "Date range in " + table,
				SQL:         fmt.Sprintf("SELECT MIN(%s) as earliest, MAX(%s) as latest FROM %s", dateCol, dateCol, table),
			},
		)
	}

	stats := 0
	for _, col := range c.NumericColumns {
		if stats == maxStatsColumns {
			break
		}
		if strings.Contains(strings.ToLower(col), "id") {
			continue
		}
		queries = append(queries, QueryCandidate{
			Name:        fmt.Sprintf("stats_%s_%s", table, col),
			Description: fmt.Sprintf("Statistics for %s in %s", col, table),
			SQL: fmt.Sprintf("SELECT AVG(%[1]s) as avg_%[1]s, MIN(%[1]s) as min_%[1]s, MAX(%[1]s) as max_%[1]s FROM %[2]s",
				col, table),
		})
		stats++
	}

	for i, col := range c.TextColumns {
		if i == maxScannedText {
			break
		}
		if !containsAny(strings.ToLower(col), labelKeywords) {
			continue
		}
		queries = append(queries, QueryCandidate{
			Name:        fmt.Sprintf("popular_%s_%s", col, table),
			Description: "Most common values in " + col,
			SQL: fmt.Sprintf("SELECT %[1]s, COUNT(*) as frequency FROM %[2]s GROUP BY %[1]s ORDER BY frequency DESC LIMIT %[3]d",
				col, table, frequencyTopLimit),
		})
	}

	return queries
}
