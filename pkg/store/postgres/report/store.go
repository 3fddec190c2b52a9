package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/NBR-24/PothuHole/pkg/models/store"
	reportstore "github.com/NBR-24/PothuHole/pkg/store/report"
)

const ReportsTableSchema = `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		danger_level INTEGER NOT NULL,
		description TEXT,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		district TEXT,
		formatted_address TEXT,
		image_data TEXT,
		created_at TIMESTAMPTZ NOT NULL
	);
`

var reportColumns = []string{
	"id", "danger_level", "description", "lat", "lng",
	"district", "formatted_address", "image_data", "created_at",
}

type reportStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewDB opens a Postgres connection via the pgx stdlib driver and ensures
// the reports table exists.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, ReportsTableSchema); err != nil {
		return nil, fmt.Errorf("create reports table: %w", err)
	}
	return db, nil
}

// NewStore returns a report store backed by Postgres.
func NewStore(db *sql.DB) (reportstore.Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

func (s *reportStore) Add(ctx context.Context, record store.ReportRecord) error {
	query, args, err := s.sb.
		Insert("reports").
		Columns(reportColumns...).
		Values(
			record.ID,
			record.DangerLevel,
			record.Description,
			record.Lat,
			record.Lng,
			record.District,
			record.FormattedAddress,
			record.ImageData,
			record.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *reportStore) List(ctx context.Context) ([]store.ReportRecord, error) {
	query, args, err := s.sb.
		Select(reportColumns...).
		From("reports").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	records := make([]store.ReportRecord, 0)
	for rows.Next() {
		rec, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (s *reportStore) Get(ctx context.Context, id string) (*store.ReportRecord, error) {
	query, args, err := s.sb.
		Select(reportColumns...).
		From("reports").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rec, err := scanReport(s.db.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, reportstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return rec, nil
}

func scanReport(scan func(dest ...any) error) (*store.ReportRecord, error) {
	var (
		rec         store.ReportRecord
		description sql.NullString
		district    sql.NullString
		address     sql.NullString
		image       sql.NullString
	)
	err := scan(
		&rec.ID, &rec.DangerLevel, &description, &rec.Lat, &rec.Lng,
		&district, &address, &image, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Description = description.String
	rec.District = district.String
	rec.FormattedAddress = address.String
	rec.ImageData = image.String
	return &rec, nil
}
