package generators

import (
	"dbprobe/pkg/config"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes v as structured output. Rows and reports are echoed as-is;
// only the serialisation differs between formats.
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
}

// IsStructured reports whether format is echoed as data rather than text.
func IsStructured(format string) bool {
	return format == config.FormatJSON || format == config.FormatYAML
}
