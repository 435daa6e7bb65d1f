package service

import (
	"database/sql"
	"fmt"

	"github.com/mdivincenzo/macrocoach/internal/model"
)

type LogWeighInInput struct {
	ProfileID  int64
	WeightKg   float64
	BodyFatPct *float64
	Date       string
}

func LogWeighIn(db *sql.DB, in LogWeighInInput) (int64, error) {
	if in.ProfileID <= 0 {
		return 0, fmt.Errorf("profile id must be > 0")
	}
	if in.WeightKg <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	if in.BodyFatPct != nil && (*in.BodyFatPct <= 0 || *in.BodyFatPct >= 100) {
		return 0, fmt.Errorf("body fat percentage must be between 0 and 100")
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(`
INSERT INTO weigh_ins(profile_id, weight_kg, body_fat_pct, logged_date)
VALUES(?, ?, ?, ?)
`, in.ProfileID, in.WeightKg, in.BodyFatPct, date)
	if err != nil {
		return 0, fmt.Errorf("insert weigh-in: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted weigh-in id: %w", err)
	}
	return id, nil
}

func WeighInsForDateRange(db *sql.DB, profileID int64, fromDate, toDate string) ([]model.WeighIn, error) {
	rows, err := db.Query(`
SELECT id, profile_id, weight_kg, body_fat_pct, logged_date, created_at
FROM weigh_ins
WHERE profile_id = ? AND logged_date >= ? AND logged_date <= ?
ORDER BY logged_date ASC, id ASC
`, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query weigh-ins: %w", err)
	}
	defer rows.Close()

	weighIns := make([]model.WeighIn, 0)
	for rows.Next() {
		var w model.WeighIn
		if err := rows.Scan(&w.ID, &w.ProfileID, &w.WeightKg, &w.BodyFatPct, &w.LoggedDate, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan weigh-in: %w", err)
		}
		weighIns = append(weighIns, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weigh-ins: %w", err)
	}
	return weighIns, nil
}

// LatestWeighIn returns the most recent weigh-in, or nil when none exist.
func LatestWeighIn(db *sql.DB, profileID int64) (*model.WeighIn, error) {
	var w model.WeighIn
	err := db.QueryRow(`
SELECT id, profile_id, weight_kg, body_fat_pct, logged_date, created_at
FROM weigh_ins
WHERE profile_id = ?
ORDER BY logged_date DESC, id DESC
LIMIT 1
`, profileID).Scan(&w.ID, &w.ProfileID, &w.WeightKg, &w.BodyFatPct, &w.LoggedDate, &w.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest weigh-in: %w", err)
	}
	return &w, nil
}

func DeleteWeighIn(db *sql.DB, profileID, id int64) error {
	res, err := db.Exec(`DELETE FROM weigh_ins WHERE id = ? AND profile_id = ?`, id, profileID)
	if err != nil {
		return fmt.Errorf("delete weigh-in %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve weigh-in delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("weigh-in %d does not exist for this profile", id)
	}
	return nil
}
