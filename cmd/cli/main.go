package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/NBR-24/PothuHole/pkg/config"
	"github.com/NBR-24/PothuHole/pkg/runtime/terminal"
	reportsvc "github.com/NBR-24/PothuHole/pkg/services/report"
	"github.com/NBR-24/PothuHole/pkg/store/duckdb"
	duckdbreport "github.com/NBR-24/PothuHole/pkg/store/duckdb/report"
	postgresreport "github.com/NBR-24/PothuHole/pkg/store/postgres/report"
	reportstore "github.com/NBR-24/PothuHole/pkg/store/report"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	cfg, err := config.Load(os.Getenv("POTHUHOLE_CONFIG"))
	if err != nil {
		exitWith(err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		exitWith(err)
	}
	defer closeStore()

	// Read-only views; no geocoder or metrics needed.
	reports, err := reportsvc.NewService(store, nil, clockwork.NewRealClock(), nil)
	if err != nil {
		exitWith(err)
	}

	cli := terminal.NewCLI(terminal.Options{
		Reports: reports,
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		exitWith(err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (reportstore.Store, func() error, error) {
	if cfg.StorageBackend == config.BackendPostgres {
		db, err := postgresreport.NewDB(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		store, err := postgresreport.NewStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, db.Close, nil
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.DuckDBPath})
	if err != nil {
		return nil, nil, err
	}
	store, err := duckdbreport.NewStore(db)
	if err != nil {
		return nil, nil, err
	}
	return store, db.Close, nil
}

func exitWith(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
