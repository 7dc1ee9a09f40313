package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jinzhu/inflection"
)

// Relationship is a candidate link from a column to another table, guessed
// from naming alone. It is not a verified foreign key.
type Relationship struct {
	FromTable  string `json:"from_table" yaml:"from_table"`
	FromColumn string `json:"from_column" yaml:"from_column"`
	ToTable    string `json:"to_table" yaml:"to_table"`
}

func (r Relationship) String() string {
	return fmt.Sprintf("%s.%s -> %s", r.FromTable, r.FromColumn, r.ToTable)
}

// InferRelationships proposes T.c -> O whenever column c of table T starts
// with, ends with or contains the name of another table O, or its singular
// form (user_id -> users). Edges are ordered by table, then column order,
// then target table, and never point back at their own table.
func InferRelationships(tables map[string]Classification) []Relationship {
	names := sortedTableNames(tables)

	targets := make(map[string][]string, len(names))
	for _, name := range names {
		targets[name] = tableNameForms(name)
	}

	edges := []Relationship{}
	for _, table := range names {
		for _, col := range tables[table].Columns {
			column := strings.ToLower(col.Name)
			for _, other := range names {
				if other == table {
					continue
				}
				if matchesAny(column, targets[other]) {
					edges = append(edges, Relationship{
						FromTable:  table,
						FromColumn: col.Name,
						ToTable:    other,
					})
				}
			}
		}
	}

	return edges
}

// tableNameForms returns the lower-cased table name and, when it differs,
// its singular.
func tableNameForms(table string) []string {
	lower := strings.ToLower(table)
	forms := []string{lower}
	if singular := inflection.Singular(lower); singular != "" && singular != lower {
		forms = append(forms, singular)
	}
	return forms
}

func matchesAny(column string, forms []string) bool {
	for _, form := range forms {
		if strings.HasPrefix(column, form) || strings.HasSuffix(column, form) || strings.Contains(column, form) {
			return true
		}
	}
	return false
}

func sortedTableNames(tables map[string]Classification) []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
