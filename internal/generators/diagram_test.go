package generators

import (
	"dbprobe/internal/analysis"
	"dbprobe/internal/schema"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blogDiagram() Diagram {
	users := schema.Table{Name: "users", Columns: []schema.Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "email", Type: "VARCHAR(255)", NotNull: true},
	}}
	posts := schema.Table{Name: "posts", Columns: []schema.Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "user_id", Type: "INTEGER"},
	}}
	return Diagram{
		Database: "blog.db",
		Tables:   []schema.Table{posts, users},
		Classifications: map[string]analysis.Classification{
			"users": analysis.Classify(users),
			"posts": analysis.Classify(posts),
		},
		Relationships: []analysis.Relationship{{FromTable: "posts", FromColumn: "user_id", ToTable: "users"}},
	}
}

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid(blogDiagram())

	assert.Contains(t, out, "```mermaid\nerDiagram\n")
	assert.Contains(t, out, "    users {\n        integer id PK \"identifier\"\n        varchar email \"text\"\n    }\n")
	assert.Contains(t, out, "    posts }o..|| users : user_id\n")
	assert.Contains(t, out, "Inferred Relationships: 1\n")
	assert.NotContains(t, out, "Generated on:")
}

func TestGeneratePlantUML(t *testing.T) {
	out := GeneratePlantUML(blogDiagram())

	assert.True(t, strings.HasPrefix(out, "@startuml\n"))
	assert.Contains(t, out, "  * id : INTEGER <<PK>>\n")
	assert.Contains(t, out, "  email : VARCHAR <<NOT NULL>>\n")
	assert.Contains(t, out, "posts }o..|| users : user_id\n")
}

func TestGenerateGraphviz(t *testing.T) {
	out := GenerateGraphviz(blogDiagram())

	assert.Contains(t, out, "  users [label=\"{users|+id: INTEGER\\lemail: VARCHAR NOT NULL\\l}\"];\n")
	assert.Contains(t, out, "  posts -> users [label=\"user_id\"];\n")
}

func TestGenerateDiagram(t *testing.T) {
	for _, format := range DiagramFormats {
		out, err := GenerateDiagram(blogDiagram(), format)
		require.NoError(t, err, format)
		assert.NotEmpty(t, out)
	}

	_, err := GenerateDiagram(blogDiagram(), "svg")
	assert.ErrorContains(t, err, "invalid diagram format 'svg'")
}

func TestBaseType(t *testing.T) {
	assert.Equal(t, "VARCHAR", baseType("varchar(255)"))
	assert.Equal(t, "DOUBLE_PRECISION", baseType("double precision"))
	assert.Equal(t, "ANY", baseType(""))
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "order_items_v2", cleanName("order items-v2"))
}
