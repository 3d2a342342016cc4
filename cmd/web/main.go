package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/team-tools/weekreport/pkg/server"
	"github.com/team-tools/weekreport/pkg/services/config"
	"github.com/team-tools/weekreport/pkg/services/deck"
	"github.com/team-tools/weekreport/pkg/services/render"
	reportsvc "github.com/team-tools/weekreport/pkg/services/report"
	"github.com/team-tools/weekreport/pkg/store/sqlite"
	reportstore "github.com/team-tools/weekreport/pkg/store/sqlite/report"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the weekly report web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "weekreport.yaml",
		"Path to the server config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DbPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store, err := reportstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}

	engine := render.NewEngine(store, render.Config{FileBaseURL: cfg.FileBaseURL})

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Reports:  reportsvc.NewService(store),
			Renderer: engine,
			Encoder:  deck.NewJSONEncoder(),
		},
	})

	return api.Start()
}
