package analysis

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	maxLargestTables = 3
	maxInsightEdges  = 3
)

// Insights summarises the whole database: table and row totals, the largest
// tables and the first few candidate relationships.
func Insights(tables map[string]Classification, edges []Relationship) []string {
	names := sortedTableNames(tables)

	var totalRows int64
	for _, name := range names {
		totalRows += tables[name].RowCount
	}

	insights := []string{
		fmt.Sprintf("Database contains %d tables with %s total rows", len(names), humanize.Comma(totalRows)),
	}

	// stable on the alphabetical order so ties stay deterministic
	largest := slices.Clone(names)
	sort.SliceStable(largest, func(i, j int) bool {
		return tables[largest[i]].RowCount > tables[largest[j]].RowCount
	})
	if len(largest) > maxLargestTables {
		largest = largest[:maxLargestTables]
	}

	if len(largest) > 0 && tables[largest[0]].RowCount > 0 {
		var parts []string
		for _, name := range largest {
			if count := tables[name].RowCount; count > 0 {
				parts = append(parts, fmt.Sprintf("%s (%s rows)", name, humanize.Comma(count)))
			}
		}
		insights = append(insights, "Largest tables: "+strings.Join(parts, ", "))
	}

	if len(edges) > 0 {
		shown := edges
		if len(shown) > maxInsightEdges {
			shown = shown[:maxInsightEdges]
		}
		parts := make([]string, len(shown))
		for i, edge := range shown {
			parts[i] = edge.String()
		}
		insights = append(insights, "Potential relationships: "+strings.Join(parts, ", "))
	}

	return insights
}

