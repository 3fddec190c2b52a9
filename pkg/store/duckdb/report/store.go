package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/NBR-24/PothuHole/pkg/models/store"
	reportstore "github.com/NBR-24/PothuHole/pkg/store/report"
)

type reportStore struct {
	db *sql.DB
}

// NewStore returns a report store backed by an embedded DuckDB database.
func NewStore(db *sql.DB) (reportstore.Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

func (s *reportStore) Add(ctx context.Context, record store.ReportRecord) error {
	query := `
		INSERT INTO reports (
			id, danger_level, description, lat, lng,
			district, formatted_address, image_data, created_at
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.DangerLevel,
		record.Description,
		record.Lat,
		record.Lng,
		record.District,
		record.FormattedAddress,
		record.ImageData,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *reportStore) List(ctx context.Context) ([]store.ReportRecord, error) {
	query := `
		SELECT id, danger_level, description, lat, lng,
			district, formatted_address, image_data, created_at
		FROM reports
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()
	return scanReportRows(rows)
}

func (s *reportStore) Get(ctx context.Context, id string) (*store.ReportRecord, error) {
	query := `
		SELECT id, danger_level, description, lat, lng,
			district, formatted_address, image_data, created_at
		FROM reports
		WHERE id = ?
	`
	record, err := scanReportRow(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, reportstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return record, nil
}

func scanReportRows(rows *sql.Rows) ([]store.ReportRecord, error) {
	records := make([]store.ReportRecord, 0)
	for rows.Next() {
		var (
			rec         store.ReportRecord
			description sql.NullString
			district    sql.NullString
			address     sql.NullString
			image       sql.NullString
		)
		err := rows.Scan(
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
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanReportRow(row *sql.Row) (*store.ReportRecord, error) {
	var (
		rec         store.ReportRecord
		description sql.NullString
		district    sql.NullString
		address     sql.NullString
		image       sql.NullString
	)
	err := row.Scan(
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
