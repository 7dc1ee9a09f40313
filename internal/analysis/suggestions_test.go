package analysis

import (
	"dbprobe/internal/schema"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryNames(queries []QueryCandidate) []string {
	names := make([]string, len(queries))
	for i, q := range queries {
		names[i] = q.Name
	}
	return names
}

func TestSuggestQueries(t *testing.T) {
	c := Classify(schema.Table{
		Name: "t",
		Columns: []schema.Column{
			{Name: "id", Type: "INTEGER", PrimaryKey: true},
			{Name: "created_at", Type: "TEXT"},
			{Name: "score", Type: "REAL"},
		},
		RowCount: 5,
	})

	queries := SuggestQueries("t", c)

	assert.Equal(t, []QueryCandidate{
		{Name: "sample_t", Description: "Sample data from t", SQL: "SELECT * FROM t LIMIT 5"},
		{Name: "count_t", Description: "Total rows in t", SQL: "SELECT COUNT(*) as total_rows FROM t"},
		{Name: "recent_t", Description: "Recent records from t", SQL: "SELECT * FROM t ORDER BY created_at DESC LIMIT 10"},
		{Name: "date_range_t", Description: "Date range in t", SQL: "SELECT MIN(created_at) as earliest, MAX(created_at) as latest FROM t"},
		{Name: "stats_t_score", Description: "Statistics for score in t", SQL: "SELECT AVG(score) as avg_score, MIN(score) as min_score, MAX(score) as max_score FROM t"},
	}, queries)
}

func TestSuggestQueriesEmptyTable(t *testing.T) {
	c := Classify(schema.Table{
		Name: "logs",
		Columns: []schema.Column{
			{Name: "message", Type: "TEXT"},
			{Name: "logged_time", Type: "TEXT"},
		},
	})

	names := queryNames(SuggestQueries("logs", c))
	for _, name := range names {
		assert.False(t, strings.HasPrefix(name, "sample_"), name)
		assert.False(t, strings.HasPrefix(name, "count_"), name)
	}
	assert.Equal(t, []string{"recent_logs", "date_range_logs"}, names)
}

func TestSuggestQueriesFirstDateColumn(t *testing.T) {
	c := Classify(schema.Table{
		Name: "events",
		Columns: []schema.Column{
			{Name: "title", Type: "TEXT"},
			{Name: "starts", Type: "DATETIME"},
			{Name: "updated_at", Type: "TEXT"},
		},
		RowCount: 1,
	})
	require.Equal(t, []string{"starts", "updated_at"}, c.DateColumns)

	var recent, ranges []QueryCandidate
	for _, q := range SuggestQueries("events", c) {
		switch {
		case strings.HasPrefix(q.Name, "recent_"):
			recent = append(recent, q)
		case strings.HasPrefix(q.Name, "date_range_"):
			ranges = append(ranges, q)
		}
	}

	require.Len(t, recent, 1)
	require.Len(t, ranges, 1)
	assert.Contains(t, recent[0].SQL, "ORDER BY starts DESC")
	assert.Equal(t, "SELECT MIN(starts) as earliest, MAX(starts) as latest FROM events", ranges[0].SQL)
}

func TestSuggestQueriesStatsCap(t *testing.T) {
	c := Classify(schema.Table{
		Name: "m",
		Columns: []schema.Column{
			{Name: "id", Type: "INTEGER"},
			{Name: "user_id", Type: "INTEGER"},
			{Name: "a", Type: "REAL"},
			{Name: "paid", Type: "REAL"},
			{Name: "b", Type: "REAL"},
			{Name: "c", Type: "FLOAT"},
			{Name: "d", Type: "NUMERIC"},
		},
	})

	assert.Equal(t, []string{"stats_m_a", "stats_m_b", "stats_m_c"}, queryNames(SuggestQueries("m", c)))
}

func TestSuggestQueriesPopularScansFirstTwoText(t *testing.T) {
	c := Classify(schema.Table{
		Name: "books",
		Columns: []schema.Column{
			{Name: "isbn", Type: "TEXT"},
			{Name: "Title", Type: "TEXT"},
			{Name: "summary", Type: "TEXT"},
		},
	})

	queries := SuggestQueries("books", c)
	require.Len(t, queries, 1)
	assert.Equal(t, QueryCandidate{
		Name:        "popular_Title_books",
		Description: "Most common values in Title",
		SQL:         "SELECT Title, COUNT(*) as frequency FROM books GROUP BY Title ORDER BY frequency DESC LIMIT 10",
	}, queries[0])
}

func TestSuggestQueriesNothing(t *testing.T) {
	c := Classify(schema.Table{Name: "blobs", Columns: []schema.Column{{Name: "data", Type: "BLOB"}}})
	assert.Empty(t, SuggestQueries("blobs", c))
}

func TestSuggestQueriesUniqueNames(t *testing.T) {
	c := Classify(schema.Table{
		Name: "products",
		Columns: []schema.Column{
			{Name: "id", Type: "INTEGER", PrimaryKey: true},
			{Name: "name", Type: "TEXT"},
			{Name: "description", Type: "TEXT"},
			{Name: "price", Type: "REAL"},
			{Name: "stock", Type: "INTEGER"},
			{Name: "created", Type: "TIMESTAMP"},
		},
		RowCount: 40,
	})

	names := queryNames(SuggestQueries("products", c))
	seen := map[string]bool{}
	for _, name := range names {
		assert.False(t, seen[name], "duplicate %s", name)
		seen[name] = true
	}
	assert.Equal(t, []string{
		"sample_products",
		"count_products",
		"recent_products",
		"date_range_products",
		"stats_products_price",
		"stats_products_stock",
		"popular_name_products",
		"popular_description_products",
	}, names)
}
