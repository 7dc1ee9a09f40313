package cmd

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newBlogDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "blog.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, created_at TEXT)`,
		`CREATE TABLE posts (id INTEGER PRIMARY KEY, user_id INTEGER, title TEXT, score REAL)`,
		`INSERT INTO users (name, created_at) VALUES ('Ann', '2025-01-01'), ('Bob', '2025-02-01')`,
		`INSERT INTO posts (user_id, title, score) VALUES (1, 'Hello', 4.5)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

// run executes the root command with output captured. Flags keep their
// values between runs, so every call resets the shared ones first.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--format", "table", "--json=false"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTablesCommand(t *testing.T) {
	db := newBlogDB(t)

	out, err := run(t, "--db", db, "tables")
	require.NoError(t, err)
	assert.Equal(t, "Tables in database:\n  posts\n  users\n", out)

	out, err = run(t, "--db", db, "--json", "tables")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tables":["posts","users"]}`, out)
}

func TestSchemaCommandMissingTable(t *testing.T) {
	db := newBlogDB(t)

	_, err := run(t, "--db", db, "schema", "nope")
	assert.ErrorContains(t, err, "error getting schema for nope")
}

func TestSQLCommand(t *testing.T) {
	db := newBlogDB(t)

	out, err := run(t, "--db", db, "sql", "SELECT name FROM users ORDER BY id; SELECT * FROM posts WHERE id = 99")
	require.NoError(t, err)
	assert.Equal(t, "name\n----\nAnn \nBob \n\nRows returned: 2\n\n"+strings.Repeat("=", 60)+"\n\nNo results returned\n", out)
}

func TestSQLCommandRealValues(t *testing.T) {
	db := newBlogDB(t)

	out, err := run(t, "--db", db, "sql", "SELECT score, 3.0 AS whole FROM posts")
	require.NoError(t, err)
	assert.Contains(t, out, "4.5   | 3.0  \n")

	out, err = run(t, "--db", db, "--json", "sql", "SELECT score FROM posts")
	require.NoError(t, err)
	assert.JSONEq(t, `[[{"score":4.5}]]`, out)
}

func TestSQLCommandHint(t *testing.T) {
	db := newBlogDB(t)

	_, err := run(t, "--db", db, "sql", "SELECT * FROM comments")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available tables: posts, users")
}

func TestMultiCommandContinuesAfterError(t *testing.T) {
	db := newBlogDB(t)

	out, err := run(t, "--db", db, "multi", "SELECT * FROM nope; SELECT COUNT(*) AS n FROM users")
	require.NoError(t, err)
	assert.Contains(t, out, "Query 1: SELECT * FROM nope\n")
	assert.Contains(t, out, "SQL error: no such table: nope")
	assert.Contains(t, out, "Query 2: SELECT COUNT(*) AS n FROM users\n")
	assert.Contains(t, out, "Rows returned: 1")
}

func TestAnalyzeCommandJSON(t *testing.T) {
	db := newBlogDB(t)

	out, err := run(t, "--db", db, "--format", "json", "analyze")
	require.NoError(t, err)

	var report struct {
		Tables map[string]struct {
			NumericColumns []string `json:"numeric_columns"`
			DateColumns    []string `json:"date_columns"`
		} `json:"tables"`
		Insights []string `json:"insights"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, []string{"user_id", "score"}, report.Tables["posts"].NumericColumns)
	assert.Equal(t, []string{"created_at"}, report.Tables["users"].DateColumns)
	assert.Contains(t, report.Insights, "Potential relationships: posts.user_id -> users")
}

func TestSuggestCommand(t *testing.T) {
	db := newBlogDB(t)

	out, err := run(t, "--db", db, "suggest")
	require.NoError(t, err)
	assert.Contains(t, out, "stats_posts_score")
	assert.Contains(t, out, "recent_users")
	assert.NotContains(t, out, "stats_posts_user_id")
}

func TestCSVCommand(t *testing.T) {
	db := newBlogDB(t)
	file := filepath.Join(t.TempDir(), "out.csv")

	out, err := run(t, "--db", db, "csv", "SELECT name FROM users ORDER BY id", "--file", file)
	require.NoError(t, err)
	assert.Equal(t, "Data exported to "+file+"\nRows exported: 2\n", out)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "name\nAnn\nBob\n", string(data))
}

func TestDiagramCommand(t *testing.T) {
	db := newBlogDB(t)
	file := filepath.Join(t.TempDir(), "docs", "schema.dot")

	out, err := run(t, "--db", db, "diagram", "-t", "graphviz", "-o", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Tables: 2\n")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "posts -> users [label=\"user_id\"]")
}

func TestDiagramDefaultOutputPerRun(t *testing.T) {
	db := newBlogDB(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	out, err := run(t, "--db", db, "diagram", "-t", "mermaid", "-o", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema diagram generated: schema.md\n")

	out, err = run(t, "--db", db, "diagram", "-t", "plantuml", "-o", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema diagram generated: schema.puml\n")
	assert.FileExists(t, "schema.md")
	assert.FileExists(t, "schema.puml")
}

func TestInvalidFormat(t *testing.T) {
	db := newBlogDB(t)

	_, err := run(t, "--db", db, "--format", "xml", "tables")
	assert.ErrorContains(t, err, "invalid format 'xml'")
}

func TestMissingDatabase(t *testing.T) {
	_, err := run(t, "--db", filepath.Join(t.TempDir(), "none.db"), "tables")
	assert.ErrorContains(t, err, "database file not found")
}

func TestHelpExamplesUseKnownFlags(t *testing.T) {
	t.Cleanup(func() {
		diagramCmd.Flags().Set("type", "mermaid")
		diagramCmd.Flags().Set("output", "")
	})

	for _, line := range strings.Split(rootCmd.Long, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "dbprobe" || fields[1] != "diagram" {
			continue
		}
		assert.NoError(t, diagramCmd.ParseFlags(fields[2:]), line)
	}
}
