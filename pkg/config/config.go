package config

import "strings"

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Output   OutputConfig   `mapstructure:"output"`
	Schema   SchemaConfig   `mapstructure:"schema"`
	Log      LogConfig      `mapstructure:"log"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type SchemaConfig struct {
	ExcludeTables []string `mapstructure:"exclude_tables"`
	IncludeTables []string `mapstructure:"include_tables"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var ValidFormats = []string{FormatTable, FormatJSON, FormatYAML}

// Allows reports whether a table passes the include/exclude filters.
// An empty include list admits every table not explicitly excluded.
func (s SchemaConfig) Allows(table string) bool {
	if len(s.IncludeTables) > 0 && !containsFold(s.IncludeTables, table) {
		return false
	}
	return !containsFold(s.ExcludeTables, table)
}

func containsFold(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
