package report

import (
	"context"
	"errors"

	"github.com/NBR-24/PothuHole/pkg/models/store"
)

// ErrNotFound is returned by Get when no report exists with the given id.
var ErrNotFound = errors.New("report not found")

// Store persists reports. Records are write-once: there is no update or
// delete operation. List returns the whole collection ordered by creation
// time descending; view shaping happens in the service layer.
type Store interface {
	Add(ctx context.Context, record store.ReportRecord) error
	List(ctx context.Context) ([]store.ReportRecord, error)
	Get(ctx context.Context, id string) (*store.ReportRecord, error)
}
