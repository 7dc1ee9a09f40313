package generators

import (
	"fmt"
	"strings"
)

func GenerateMermaid(d Diagram) string {
	var builder strings.Builder

	builder.WriteString("# Database Schema Diagram\n\n")
	builder.WriteString("```mermaid\nerDiagram\n")

	for _, table := range d.Tables {
		builder.WriteString(fmt.Sprintf("    %s {\n", cleanName(table.Name)))

		for _, col := range table.Columns {
			keyStr := ""
			if col.PrimaryKey {
				keyStr = " PK"
			}
			builder.WriteString(fmt.Sprintf("        %s %s%s \"%s\"\n",
				strings.ToLower(baseType(col.Type)),
				cleanName(col.Name),
				keyStr,
				d.category(table.Name, col.Name)))
		}

		builder.WriteString("    }\n\n")
	}

	for _, rel := range d.Relationships {
		builder.WriteString(fmt.Sprintf("    %s }o..|| %s : %s\n",
			cleanName(rel.FromTable),
			cleanName(rel.ToTable),
			cleanName(rel.FromColumn)))
	}

	builder.WriteString("```\n\n")
	if d.Database != "" {
		builder.WriteString(fmt.Sprintf("Database: %s\n", d.Database))
	}
	if !d.GeneratedAt.IsZero() {
		builder.WriteString(fmt.Sprintf("Generated on: %s\n", d.GeneratedAt.Format("2006-01-02 15:04:05")))
	}
	builder.WriteString(fmt.Sprintf("Total Tables: %d\n", len(d.Tables)))
	builder.WriteString(fmt.Sprintf("Inferred Relationships: %d\n", len(d.Relationships)))

	return builder.String()
}
