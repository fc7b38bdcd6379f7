package storage

import (
	"context"
	"fmt"

	"github.com/duskbar/rota/roster"
	"github.com/duskbar/rota/schedule"
)

// FetchWorkers reads every row from users and joins in each worker's
// cumulative shift count from shifts, mirroring the original's two
// separate queries (one for identity/status, one for the GROUP BY count)
// folded into a single roster.Worker slice.
func (s *Store) FetchWorkers(ctx context.Context) ([]roster.Worker, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, status FROM users;`)
	if err != nil {
		return nil, fmt.Errorf("storage: fetch users: %w", err)
	}
	defer rows.Close()

	var workers []roster.Worker
	for rows.Next() {
		var id int
		var status string
		if err := rows.Scan(&id, &status); err != nil {
			return nil, fmt.Errorf("storage: scan user row: %w", err)
		}
		workers = append(workers, roster.Worker{ID: id, Class: roster.ParseRoleClass(status)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate user rows: %w", err)
	}

	countRows, err := s.db.QueryContext(ctx, `SELECT user_id, COUNT(*) FROM shifts GROUP BY user_id;`)
	if err != nil {
		return nil, fmt.Errorf("storage: fetch shift counts: %w", err)
	}
	defer countRows.Close()

	counts := make(map[int]int)
	for countRows.Next() {
		var userID, count int
		if err := countRows.Scan(&userID, &count); err != nil {
			return nil, fmt.Errorf("storage: scan shift count row: %w", err)
		}
		counts[userID] = count
	}
	if err := countRows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate shift count rows: %w", err)
	}

	for i := range workers {
		workers[i].HistoricalCount = counts[workers[i].ID]
	}
	return workers, nil
}

// FetchFilledShifts reads the pre-existing assignments for week, tagging
// each with schedule.PreExisting.
func (s *Store) FetchFilledShifts(ctx context.Context, week string) ([]schedule.Assignment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT slot, location, user_id FROM shifts WHERE week = $1;`, week)
	if err != nil {
		return nil, fmt.Errorf("storage: fetch filled shifts: %w", err)
	}
	defer rows.Close()

	var out []schedule.Assignment
	for rows.Next() {
		var slot int
		var location string
		var userID int
		if err := rows.Scan(&slot, &location, &userID); err != nil {
			return nil, fmt.Errorf("storage: scan shift row: %w", err)
		}
		out = append(out, schedule.Assignment{
			Slot:     schedule.SlotIndex(slot),
			Location: schedule.Location(location),
			WorkerID: userID,
			Source:   schedule.PreExisting,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate shift rows: %w", err)
	}
	return out, nil
}
