package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/duskbar/rota/schedule"
)

// ErrTxFailed wraps any failure inside WriteGenerated's transaction
// (delete, prepare, insert, or commit), giving the CLI boundary one
// sentinel to test with errors.Is regardless of which step failed.
var ErrTxFailed = errors.New("storage: manifest transaction failed")

// WriteGenerated deletes every row currently stored for week and inserts
// manifest in its place, inside one transaction, matching the original's
// delete-old-shifts-then-insert-manifest sequencing (del_shifts,
// ins_shift). manifest must be the full merged set of assignments for
// week — pre-existing plus generated — since the delete clears the
// entire week; passing only the newly generated assignments would drop
// every pre-existing one on the next run.
func (s *Store) WriteGenerated(ctx context.Context, week string, manifest []schedule.Assignment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: begin transaction: %w: %w", err, ErrTxFailed)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shifts WHERE week = $1;`, week); err != nil {
		return fmt.Errorf("storage: delete old shifts: %w: %w", err, ErrTxFailed)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO shifts (user_id, week, slot, location) VALUES ($1, $2, $3, $4);`)
	if err != nil {
		return fmt.Errorf("storage: prepare insert: %w: %w", err, ErrTxFailed)
	}
	defer stmt.Close()

	for _, a := range manifest {
		if _, err := stmt.ExecContext(ctx, a.WorkerID, week, int(a.Slot), string(a.Location)); err != nil {
			return fmt.Errorf("storage: insert shift (%d,%s,%d): %w: %w", a.Slot, a.Location, a.WorkerID, err, ErrTxFailed)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: commit transaction: %w: %w", err, ErrTxFailed)
	}
	return nil
}
