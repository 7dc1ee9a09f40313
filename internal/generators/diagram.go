package generators

import (
	"dbprobe/internal/analysis"
	"dbprobe/internal/schema"
	"fmt"
	"strings"
	"time"
)

const (
	DiagramMermaid  = "mermaid"
	DiagramPlantUML = "plantuml"
	DiagramGraphviz = "graphviz"
)

var DiagramFormats = []string{DiagramMermaid, DiagramPlantUML, DiagramGraphviz}

// DiagramExtensions maps a diagram format to its conventional file suffix.
var DiagramExtensions = map[string]string{
	DiagramMermaid:  ".md",
	DiagramPlantUML: ".puml",
	DiagramGraphviz: ".dot",
}

// Diagram is the catalog plus the inferred relationships to draw. Inferred
// links are always drawn dashed since none of them is a declared key.
type Diagram struct {
	Database        string
	Tables          []schema.Table
	Classifications map[string]analysis.Classification
	Relationships   []analysis.Relationship
	GeneratedAt     time.Time
}

func GenerateDiagram(d Diagram, format string) (string, error) {
	switch format {
	case DiagramMermaid:
		return GenerateMermaid(d), nil
	case DiagramPlantUML:
		return GeneratePlantUML(d), nil
	case DiagramGraphviz:
		return GenerateGraphviz(d), nil
	default:
		return "", fmt.Errorf("invalid diagram format '%s'. Valid formats: %s", format, strings.Join(DiagramFormats, ", "))
	}
}

func (d Diagram) category(table, column string) analysis.Category {
	if c, ok := d.Classifications[table]; ok {
		return c.Category(column)
	}
	return analysis.Unclassified
}

func cleanName(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")
	name = strings.ReplaceAll(name, " ", "_")
	return name
}

// baseType strips length/precision and spaces from a declared type so it
// can stand as a single diagram token.
func baseType(declared string) string {
	t := strings.TrimSpace(declared)
	if i := strings.Index(t, "("); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if t == "" {
		return "ANY"
	}
	return strings.ReplaceAll(strings.ToUpper(t), " ", "_")
}
