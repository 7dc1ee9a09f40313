package generators

import (
	"fmt"
	"strings"
)

func GenerateGraphviz(d Diagram) string {
	var builder strings.Builder

	builder.WriteString("digraph schema {\n")
	builder.WriteString("  rankdir=TB;\n")
	builder.WriteString("  node [shape=record, style=filled, fillcolor=lightblue];\n")
	builder.WriteString("  edge [color=gray, style=dashed];\n\n")

	for _, table := range d.Tables {
		builder.WriteString(fmt.Sprintf("  %s [label=\"{%s|", cleanName(table.Name), table.Name))

		var fields []string
		for _, col := range table.Columns {
			field := col.Name + ": " + baseType(col.Type)
			if col.PrimaryKey {
				field = "+" + field
			}
			if col.NotNull {
				field += " NOT NULL"
			}
			fields = append(fields, field)
		}

		builder.WriteString(strings.Join(fields, "\\l"))
		builder.WriteString("\\l}\"];\n")
	}

	builder.WriteString("\n")

	for _, rel := range d.Relationships {
		builder.WriteString(fmt.Sprintf("  %s -> %s [label=\"%s\"];\n",
			cleanName(rel.FromTable),
			cleanName(rel.ToTable),
			rel.FromColumn))
	}

	builder.WriteString("}\n")

	return builder.String()
}
