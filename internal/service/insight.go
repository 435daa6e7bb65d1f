package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mdivincenzo/macrocoach/internal/model"
)

// MaxActiveInsights bounds the coach's long-term memory per profile. The
// cap is enforced here at the write boundary, not at query time.
const MaxActiveInsights = 20

type AddInsightInput struct {
	ProfileID int64
	Category  string
	Content   string
}

func AddInsight(db *sql.DB, in AddInsightInput) (int64, error) {
	if in.ProfileID <= 0 {
		return 0, fmt.Errorf("profile id must be > 0")
	}
	category, err := normalizeInsightCategory(in.Category)
	if err != nil {
		return 0, err
	}
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return 0, fmt.Errorf("insight content is required")
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin insight tx: %w", err)
	}
	defer tx.Rollback()

	var active int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM user_insights WHERE profile_id = ? AND active = 1`, in.ProfileID).Scan(&active); err != nil {
		return 0, fmt.Errorf("count active insights: %w", err)
	}
	if active >= MaxActiveInsights {
		return 0, fmt.Errorf("insight limit reached (%d active); deactivate one first", MaxActiveInsights)
	}

	res, err := tx.Exec(`
INSERT INTO user_insights(profile_id, category, content, active)
VALUES(?, ?, ?, 1)
`, in.ProfileID, category, in.Content)
	if err != nil {
		return 0, fmt.Errorf("insert insight: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted insight id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insight tx: %w", err)
	}
	return id, nil
}

// ActiveInsights returns the profile's active memory rows, oldest first.
func ActiveInsights(db *sql.DB, profileID int64) ([]model.Insight, error) {
	rows, err := db.Query(`
SELECT id, profile_id, category, content, active, created_at, deactivated_at
FROM user_insights
WHERE profile_id = ? AND active = 1
ORDER BY created_at ASC, id ASC
`, profileID)
	if err != nil {
		return nil, fmt.Errorf("query insights: %w", err)
	}
	defer rows.Close()

	insights := make([]model.Insight, 0)
	for rows.Next() {
		var ins model.Insight
		if err := rows.Scan(&ins.ID, &ins.ProfileID, &ins.Category, &ins.Content, &ins.Active, &ins.CreatedAt, &ins.DeactivatedAt); err != nil {
			return nil, fmt.Errorf("scan insight: %w", err)
		}
		insights = append(insights, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate insights: %w", err)
	}
	return insights, nil
}

// DeactivateInsight soft-deletes a memory row; insights are never removed.
func DeactivateInsight(db *sql.DB, profileID, id int64) error {
	res, err := db.Exec(`
UPDATE user_insights
SET active = 0, deactivated_at = CURRENT_TIMESTAMP
WHERE id = ? AND profile_id = ? AND active = 1
`, id, profileID)
	if err != nil {
		return fmt.Errorf("deactivate insight %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve insight deactivate result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("insight %d is not active for this profile", id)
	}
	return nil
}

func normalizeInsightCategory(category string) (model.InsightCategory, error) {
	category = strings.TrimSpace(strings.ToLower(category))
	switch c := model.InsightCategory(category); c {
	case model.InsightPattern, model.InsightPreference, model.InsightConstraint, model.InsightGoalContext:
		return c, nil
	}
	return "", fmt.Errorf("invalid insight category %q (use pattern, preference, constraint, or goal_context)", category)
}
