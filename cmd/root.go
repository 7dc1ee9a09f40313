package cmd

import (
	"context"
	"dbprobe/internal/database"
	"dbprobe/internal/generators"
	"dbprobe/internal/logging"
	"dbprobe/pkg/config"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	cfg     config.Config
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "dbprobe",
	Short: "Explore and query an unfamiliar SQLite database",
	Long: `A CLI tool that inspects a SQLite database without prior knowledge of its
schema: it lists tables, classifies columns, guesses relationships from
column names and suggests exploratory queries. It also runs raw SQL and
renders the results as aligned text, JSON or YAML.

Examples:
  dbprobe tables
  dbprobe --db my_data.db schema users
  dbprobe sql "SELECT COUNT(*) FROM users"
  dbprobe multi "SELECT COUNT(*) FROM users; SELECT MAX(created_at) FROM posts"
  dbprobe sql "SELECT * FROM users LIMIT 5" --json
  dbprobe analyze
  dbprobe suggest
  dbprobe csv "SELECT * FROM users LIMIT 100" --file users.csv
  dbprobe diagram -t mermaid -o schema.md`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dbprobe.yaml)")
	rootCmd.PersistentFlags().String("db", "database.db", "Database path or sqlite:// URL")
	rootCmd.PersistentFlags().String("format", config.FormatTable, "Output format: table, json, yaml")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON (same as --format json)")
	rootCmd.PersistentFlags().StringSlice("exclude-tables", []string{}, "Tables to leave out of listings and analysis")
	rootCmd.PersistentFlags().StringSlice("include-tables", []string{}, "Only consider these tables (if specified)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default warn)")

	viper.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("schema.exclude_tables", rootCmd.PersistentFlags().Lookup("exclude-tables"))
	viper.BindPFlag("schema.include_tables", rootCmd.PersistentFlags().Lookup("include-tables"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(tablesCmd, schemaCmd, sqlCmd, multiCmd, analyzeCmd, suggestCmd, csvCmd, diagramCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dbprobe")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DBPROBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup resolves the configuration and builds the logger before any
// subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		cfg.Output.Format = config.FormatJSON
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if !slices.Contains(config.ValidFormats, cfg.Output.Format) {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s", cfg.Output.Format, strings.Join(config.ValidFormats, ", "))
	}

	l, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger = l

	return nil
}

// withConnector opens the configured database for the duration of fn.
func withConnector(cmd *cobra.Command, fn func(ctx context.Context, c *database.Connector) error) error {
	connector, err := database.NewConnector(cfg.Database.Path, cfg.Schema, logger)
	if err != nil {
		return fmt.Errorf("failed to create database connector: %w", err)
	}
	defer connector.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, connector)
}

// emit writes v as structured data when a structured format is selected and
// falls back to the human rendering otherwise.
func emit(w io.Writer, v any, human func() string) error {
	if generators.IsStructured(cfg.Output.Format) {
		return generators.Encode(w, v, cfg.Output.Format)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(human(), "\n"))
	return err
}
