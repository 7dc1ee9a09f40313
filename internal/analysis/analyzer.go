// Package analysis classifies columns, infers candidate relationships and
// proposes exploratory queries for a database whose schema is not known in
// advance. Everything here is a pure function of the catalog it is handed.
package analysis

import (
	"context"
	"dbprobe/internal/schema"

	"go.uber.org/zap"
)

// Catalog is the read-only introspection the analyzer needs.
// *database.Connector satisfies it.
type Catalog interface {
	ListTables(ctx context.Context) []string
	TableSchema(ctx context.Context, table string) (schema.Table, error)
}

type Report struct {
	Database         string                    `json:"database" yaml:"database"`
	Tables           map[string]Classification `json:"tables" yaml:"tables"`
	SuggestedQueries []QueryCandidate          `json:"suggested_queries" yaml:"suggested_queries"`
	Insights         []string                  `json:"insights" yaml:"insights"`
	Relationships    []Relationship            `json:"relationships" yaml:"relationships"`
	Errors           []string                  `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type Analyzer struct {
	catalog Catalog
	logger  *zap.Logger
}

func NewAnalyzer(catalog Catalog, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{catalog: catalog, logger: logger}
}

// Analyze runs the full pipeline over every table the catalog lists. A table
// whose schema cannot be read is skipped and its error recorded on the
// report; the report itself never fails.
func (a *Analyzer) Analyze(ctx context.Context, database string) *Report {
	report := &Report{
		Database:         database,
		Tables:           map[string]Classification{},
		SuggestedQueries: []QueryCandidate{},
		Insights:         []string{},
		Relationships:    []Relationship{},
	}

	tables := a.catalog.ListTables(ctx)
	if len(tables) == 0 {
		a.logger.Info("No tables found", zap.String("database", database))
	}

	for _, table := range tables {
		ts, err := a.catalog.TableSchema(ctx, table)
		if err != nil {
			a.logger.Warn("Skipping table", zap.String("table", table), zap.Error(err))
			report.Errors = append(report.Errors, err.Error())
			continue
		}

		classification := Classify(ts)
		report.Tables[table] = classification
		report.SuggestedQueries = append(report.SuggestedQueries, SuggestQueries(table, classification)...)
	}

	report.Relationships = InferRelationships(report.Tables)
	report.Insights = Insights(report.Tables, report.Relationships)

	a.logger.Debug("Analysis complete",
		zap.Int("tables", len(report.Tables)),
		zap.Int("queries", len(report.SuggestedQueries)),
		zap.Int("relationships", len(report.Relationships)))

	return report
}
