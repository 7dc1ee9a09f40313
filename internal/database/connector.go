package database

import (
	"database/sql"
	"dbprobe/pkg/config"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const driverName = "sqlite3"

// Connector owns the database handle. It is the catalog the analyzer reads
// from and the pathway raw statements are executed through.
type Connector struct {
	db     *sql.DB
	path   string
	filter config.SchemaConfig
	logger *zap.Logger
}

func NewConnector(databaseURL string, filter config.SchemaConfig, logger *zap.Logger) (*Connector, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	path, err := ParseDatabaseURL(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if path != ":memory:" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("database file not found: %w", err)
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Debug("Opened database", zap.String("path", path))

	return &Connector{
		db:     db,
		path:   path,
		filter: filter,
		logger: logger,
	}, nil
}

func (c *Connector) Close() error {
	return c.db.Close()
}

// Path is the absolute path of the open database file.
func (c *Connector) Path() string {
	return c.path
}

// ParseDatabaseURL accepts a bare file path or a sqlite:// / sqlite3:// URL and
// returns an absolute file path. Relative paths resolve against the working
// directory.
func ParseDatabaseURL(databaseURL string) (string, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return "", fmt.Errorf("empty database path")
	}
	if databaseURL == ":memory:" {
		return databaseURL, nil
	}

	path := databaseURL
	if strings.Contains(databaseURL, "://") {
		u, err := url.Parse(databaseURL)
		if err != nil {
			return "", err
		}
		switch u.Scheme {
		case "sqlite", "sqlite3":
			path = strings.TrimPrefix(databaseURL, u.Scheme+"://")
		default:
			return "", fmt.Errorf("unsupported database scheme: %s", u.Scheme)
		}
	}

	return filepath.Abs(path)
}
