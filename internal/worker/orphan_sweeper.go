package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"armory/internal/config"
)

// OrphanSweeper periodically removes catalog-derived equipment records that no
// inventory item references anymore. The reference-counted delete on the
// request path is best-effort (a concurrent add-and-delete can strand a
// record), so the sweeper reconciles what that race leaves behind. Equipment
// authored by a user (created_by set) is never collected, and a grace period
// keeps records alive while an add that just created them is still in flight.
type OrphanSweeper struct {
	db     *sqlx.DB
	grace  time.Duration
	ticker *time.Ticker
}

func NewOrphanSweeper(db *sqlx.DB, cfg config.SweeperConfig) *OrphanSweeper {
	return &OrphanSweeper{
		db:     db,
		grace:  cfg.Grace,
		ticker: time.NewTicker(cfg.Interval),
	}
}

func (w *OrphanSweeper) StartWorker(ctx context.Context) {
	defer w.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *OrphanSweeper) sweep(ctx context.Context) {
	removed, err := w.Sweep(ctx)
	if err != nil {
		fmt.Printf("[OrphanSweeper] Error sweeping: %v\n", err)
		return
	}
	if removed > 0 {
		fmt.Printf("[OrphanSweeper] Removed %d orphaned equipment records\n", removed)
	}
}

// Sweep runs one collection pass and reports how many records were removed.
func (w *OrphanSweeper) Sweep(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM equipment e
		WHERE e.created_by IS NULL
			AND e.created_at < $1
			AND NOT EXISTS (
				SELECT 1 FROM inventory_items i
				WHERE i.equipment_id = e.id AND i.deleted_at IS NULL
			)
	`

	result, err := w.db.ExecContext(ctx, query, time.Now().Add(-w.grace))
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
