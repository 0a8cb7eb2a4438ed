package game

import (
	"context"

	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

// CountResults tallies the stored rounds by result
func (r *SQLiteRepository) CountResults(ctx context.Context) (map[entities.Result]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT result, COUNT(*)
		FROM round_records
		GROUP BY result`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[entities.Result]int)
	for rows.Next() {
		var (
			result string
			count  int
		)
		if err := rows.Scan(&result, &count); err != nil {
			return nil, err
		}
		counts[entities.Result(result)] = count
	}

	return counts, rows.Err()
}

// PruneRounds deletes all but the newest keep rounds
func (r *SQLiteRepository) PruneRounds(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM round_records
		WHERE id NOT IN (
			SELECT id FROM round_records
			ORDER BY completed_at DESC, rowid DESC
			LIMIT ?
		)`, keep)
	if err != nil {
		return 0, err
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(removed), nil
}
