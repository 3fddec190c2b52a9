package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/NBR-24/PothuHole/pkg/config"
	"github.com/NBR-24/PothuHole/pkg/observability"
	"github.com/NBR-24/PothuHole/pkg/server"
	"github.com/NBR-24/PothuHole/pkg/services/geocode"
	"github.com/NBR-24/PothuHole/pkg/services/geocode/mapbox"
	reportsvc "github.com/NBR-24/PothuHole/pkg/services/report"
	"github.com/NBR-24/PothuHole/pkg/store/duckdb"
	duckdbreport "github.com/NBR-24/PothuHole/pkg/store/duckdb/report"
	postgresreport "github.com/NBR-24/PothuHole/pkg/store/postgres/report"
	reportstore "github.com/NBR-24/PothuHole/pkg/store/report"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the PothuHole report server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML config file (environment variables apply either way)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var geocoder geocode.Geocoder
	if cfg.MapboxToken != "" {
		geocoder = mapbox.NewCachedGeocoder(
			mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout),
			cfg.MapboxCacheSize,
		)
		logger.Info().Msg("reverse geocoding enabled")
	} else {
		logger.Warn().Msg("no mapbox token configured, reports will carry an unresolved district")
	}

	metrics := observability.NewMetrics()

	reports, err := reportsvc.NewService(store, geocoder, clockwork.NewRealClock(), metrics)
	if err != nil {
		return fmt.Errorf("failed to create report service: %w", err)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: cfg.Addr(),
		Dependencies: server.Dependencies{
			Reports: reports,
		},
	})

	return webAPI.Start()
}

func openStore(ctx context.Context, cfg *config.Config) (reportstore.Store, *sql.DB, error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := postgresreport.NewDB(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		store, err := postgresreport.NewStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, db, nil
	default:
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.DuckDBPath})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open duckdb store: %w", err)
		}
		store, err := duckdbreport.NewStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, db, nil
	}
}
