package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/safework-tools/swms-atlas/pkg/monitor"
	"github.com/safework-tools/swms-atlas/pkg/server"
	"github.com/safework-tools/swms-atlas/pkg/services/compliance"
	"github.com/safework-tools/swms-atlas/pkg/services/config"
	"github.com/safework-tools/swms-atlas/pkg/services/document"
	"github.com/safework-tools/swms-atlas/pkg/store/duckdb"
	compliancestore "github.com/safework-tools/swms-atlas/pkg/store/duckdb/compliance"
	documentstore "github.com/safework-tools/swms-atlas/pkg/store/duckdb/document"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "web",
		Short: "Start the SWMS Atlas web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the service config file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Database.Path})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	docStore, err := documentstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create document store: %w", err)
	}
	resultStore, err := compliancestore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create compliance store: %w", err)
	}

	analyzer := compliance.NewAnalyzer(cfg.Policy, cfg.ClassifierTable())
	analyses := monitor.NewLog(cfg.Monitor.Capacity)
	documents := document.NewService(docStore, resultStore, analyzer, analyses)

	logger.Info().Str("db", cfg.Database.Path).Msg("database ready")

	api := server.NewWebAPI(server.Config{
		Addr: cfg.Server.Addr,
		Dependencies: server.Dependencies{
			Documents: documents,
			Analyzer:  analyzer,
			Analyses:  analyses,
			Logger:    logger,
		},
	})

	return api.Start()
}
