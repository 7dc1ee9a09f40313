package generators

import (
	"fmt"
	"strings"
)

func GeneratePlantUML(d Diagram) string {
	var builder strings.Builder

	builder.WriteString("@startuml\n")
	builder.WriteString("!theme plain\n")
	builder.WriteString("skinparam linetype ortho\n\n")

	for _, table := range d.Tables {
		builder.WriteString(fmt.Sprintf("entity \"%s\" as %s {\n", table.Name, cleanName(table.Name)))

		for _, col := range table.Columns {
			if col.PrimaryKey {
				builder.WriteString(fmt.Sprintf("  * %s : %s <<PK>>\n", col.Name, baseType(col.Type)))
			}
		}

		builder.WriteString("  --\n")

		for _, col := range table.Columns {
			if !col.PrimaryKey {
				nullStr := ""
				if col.NotNull {
					nullStr = " <<NOT NULL>>"
				}
				builder.WriteString(fmt.Sprintf("  %s : %s%s\n", col.Name, baseType(col.Type), nullStr))
			}
		}

		builder.WriteString("}\n\n")
	}

	for _, rel := range d.Relationships {
		builder.WriteString(fmt.Sprintf("%s }o..|| %s : %s\n",
			cleanName(rel.FromTable),
			cleanName(rel.ToTable),
			rel.FromColumn))
	}

	builder.WriteString("\n@enduml\n")

	return builder.String()
}
