package analysis

import (
	"dbprobe/internal/schema"
	"slices"
	"strings"
)

// Category is the semantic role assigned to a column.
type Category string

const (
	Identifier   Category = "identifier"
	Numeric      Category = "numeric"
	Text         Category = "text"
	Temporal     Category = "temporal"
	Unclassified Category = "unclassified"
)

type ClassifiedColumn struct {
	Name     string   `json:"name" yaml:"name"`
	Type     string   `json:"type" yaml:"type"`
	Category Category `json:"category" yaml:"category"`
}

// Classification is the per-table result of Classify. Columns keeps
// introspection order; the *Columns slices are views over it by role.
type Classification struct {
	RowCount       int64              `json:"row_count" yaml:"row_count"`
	Columns        []ClassifiedColumn `json:"columns" yaml:"columns"`
	PrimaryKeys    []string           `json:"primary_keys" yaml:"primary_keys"`
	DateColumns    []string           `json:"date_columns" yaml:"date_columns"`
	NumericColumns []string           `json:"numeric_columns" yaml:"numeric_columns"`
	TextColumns    []string           `json:"text_columns" yaml:"text_columns"`
	HasTimestamps  bool               `json:"has_timestamps" yaml:"has_timestamps"`
}

type typeRule struct {
	substrings []string
	category   Category
}

// typeRules are evaluated top to bottom against the upper-cased declared
// type; the first rule with a matching substring wins.
var typeRules = []typeRule{
	{[]string{"INT", "REAL", "FLOAT", "NUMERIC"}, Numeric},
	{[]string{"TEXT", "CHAR", "VARCHAR"}, Text},
	{[]string{"DATE", "TIME"}, Temporal},
}

var (
	temporalNameKeywords = []string{"created", "updated", "modified", "time", "date"}
	// Names like response_time_score are measures, not timestamps.
	temporalNameDisqualifiers = []string{"score", "label", "amount", "value"}
)

// classifyColumn puts primary keys in their own identifier role so they
// never count as measures or labels; every other column goes by its type.
func classifyColumn(col schema.Column) Category {
	if col.PrimaryKey {
		return Identifier
	}
	return ClassifyType(col.Type)
}

// ClassifyType maps a declared column type to a Category.
func ClassifyType(declaredType string) Category {
	upper := strings.ToUpper(declaredType)
	for _, rule := range typeRules {
		if containsAny(upper, rule.substrings) {
			return rule.category
		}
	}
	return Unclassified
}

// IsTemporalName reports whether a column name reads like a timestamp.
// A disqualifying keyword anywhere in the name wins over a temporal one.
func IsTemporalName(name string) bool {
	lower := strings.ToLower(name)
	return containsAny(lower, temporalNameKeywords) && !containsAny(lower, temporalNameDisqualifiers)
}

// Classify assigns every column of table to a category and collects the
// per-role column lists used by query suggestion and reporting.
func Classify(table schema.Table) Classification {
	c := Classification{
		RowCount:       table.RowCount,
		Columns:        make([]ClassifiedColumn, 0, len(table.Columns)),
		PrimaryKeys:    []string{},
		DateColumns:    []string{},
		NumericColumns: []string{},
		TextColumns:    []string{},
	}

	for _, col := range table.Columns {
		category := classifyColumn(col)
		c.Columns = append(c.Columns, ClassifiedColumn{
			Name:     col.Name,
			Type:     strings.ToUpper(col.Type),
			Category: category,
		})

		if col.PrimaryKey {
			c.PrimaryKeys = append(c.PrimaryKeys, col.Name)
		}

		switch category {
		case Numeric:
			c.NumericColumns = append(c.NumericColumns, col.Name)
		case Text:
			c.TextColumns = append(c.TextColumns, col.Name)
		case Temporal:
			c.DateColumns = append(c.DateColumns, col.Name)
		}

		if IsTemporalName(col.Name) {
			c.HasTimestamps = true
			if !slices.Contains(c.DateColumns, col.Name) {
				c.DateColumns = append(c.DateColumns, col.Name)
			}
		}
	}

	return c
}

// Category returns the role assigned to the named column.
func (c Classification) Category(column string) Category {
	for _, col := range c.Columns {
		if col.Name == column {
			return col.Category
		}
	}
	return Unclassified
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
