package service

import (
	"database/sql"
	"fmt"
	"strings"
)

type ExportProfile struct {
	Name          string   `json:"name"`
	DailyCalories *int     `json:"daily_calories,omitempty"`
	DailyProtein  *float64 `json:"daily_protein,omitempty"`
	DailyCarbs    *float64 `json:"daily_carbs,omitempty"`
	DailyFat      *float64 `json:"daily_fat,omitempty"`
	Goal          string   `json:"goal,omitempty"`
	CoachingNotes string   `json:"coaching_notes,omitempty"`
	StartDate     string   `json:"start_date,omitempty"`
}

type ExportMeal struct {
	Profile    string  `json:"profile"`
	Name       string  `json:"name"`
	Calories   int     `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	TimeOfDay  string  `json:"time_of_day,omitempty"`
	LoggedDate string  `json:"logged_date"`
}

type ExportWorkout struct {
	Profile        string `json:"profile"`
	WorkoutType    string `json:"workout_type"`
	Exercise       string `json:"exercise,omitempty"`
	DurationMin    *int   `json:"duration_minutes,omitempty"`
	CaloriesBurned int    `json:"calories_burned,omitempty"`
	LoggedDate     string `json:"logged_date"`
}

type ExportWeighIn struct {
	Profile    string   `json:"profile"`
	WeightKg   float64  `json:"weight_kg"`
	BodyFatPct *float64 `json:"body_fat_pct,omitempty"`
	LoggedDate string   `json:"logged_date"`
}

type ExportInsight struct {
	Profile  string `json:"profile"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Active   bool   `json:"active"`
}

type ExportData struct {
	Profiles []ExportProfile `json:"profiles"`
	Meals    []ExportMeal    `json:"meals"`
	Workouts []ExportWorkout `json:"workouts"`
	WeighIns []ExportWeighIn `json:"weigh_ins"`
	Insights []ExportInsight `json:"insights"`
}

// ExportDataSnapshot reads every profile and its logged rows into a portable
// payload keyed by profile name. Chat history stays local; it is transcript,
// not data the user would move between machines.
func ExportDataSnapshot(db *sql.DB) (*ExportData, error) {
	out := &ExportData{}
	names := make(map[int64]string)

	profiles, err := ListProfiles(db)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		names[p.ID] = p.Name
		ep := ExportProfile{
			Name:          p.Name,
			DailyCalories: p.DailyCalories,
			DailyProtein:  p.DailyProtein,
			DailyCarbs:    p.DailyCarbs,
			DailyFat:      p.DailyFat,
			CoachingNotes: p.CoachingNotes,
			StartDate:     p.StartDate,
		}
		if p.Goal != nil {
			ep.Goal = string(*p.Goal)
		}
		out.Profiles = append(out.Profiles, ep)
	}

	mealRows, err := db.Query(`
SELECT profile_id, name, calories, protein_g, carbs_g, fat_g, IFNULL(time_of_day, ''), logged_date
FROM meals ORDER BY logged_date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("export meals: %w", err)
	}
	for mealRows.Next() {
		var profileID int64
		var m ExportMeal
		if err := mealRows.Scan(&profileID, &m.Name, &m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG, &m.TimeOfDay, &m.LoggedDate); err != nil {
			_ = mealRows.Close()
			return nil, fmt.Errorf("scan export meal: %w", err)
		}
		m.Profile = names[profileID]
		out.Meals = append(out.Meals, m)
	}
	_ = mealRows.Close()

	workoutRows, err := db.Query(`
SELECT profile_id, workout_type, IFNULL(exercise, ''), duration_minutes, calories_burned, logged_date
FROM workouts ORDER BY logged_date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}
	for workoutRows.Next() {
		var profileID int64
		var w ExportWorkout
		if err := workoutRows.Scan(&profileID, &w.WorkoutType, &w.Exercise, &w.DurationMin, &w.CaloriesBurned, &w.LoggedDate); err != nil {
			_ = workoutRows.Close()
			return nil, fmt.Errorf("scan export workout: %w", err)
		}
		w.Profile = names[profileID]
		out.Workouts = append(out.Workouts, w)
	}
	_ = workoutRows.Close()

	weighRows, err := db.Query(`
SELECT profile_id, weight_kg, body_fat_pct, logged_date
FROM weigh_ins ORDER BY logged_date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("export weigh-ins: %w", err)
	}
	for weighRows.Next() {
		var profileID int64
		var w ExportWeighIn
		if err := weighRows.Scan(&profileID, &w.WeightKg, &w.BodyFatPct, &w.LoggedDate); err != nil {
			_ = weighRows.Close()
			return nil, fmt.Errorf("scan export weigh-in: %w", err)
		}
		w.Profile = names[profileID]
		out.WeighIns = append(out.WeighIns, w)
	}
	_ = weighRows.Close()

	insightRows, err := db.Query(`
SELECT profile_id, category, content, active
FROM user_insights ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("export insights: %w", err)
	}
	for insightRows.Next() {
		var profileID int64
		var ins ExportInsight
		if err := insightRows.Scan(&profileID, &ins.Category, &ins.Content, &ins.Active); err != nil {
			_ = insightRows.Close()
			return nil, fmt.Errorf("scan export insight: %w", err)
		}
		ins.Profile = names[profileID]
		out.Insights = append(out.Insights, ins)
	}
	_ = insightRows.Close()

	return out, nil
}

type ImportReport struct {
	Profiles int `json:"profiles"`
	Meals    int `json:"meals"`
	Workouts int `json:"workouts"`
	WeighIns int `json:"weigh_ins"`
	Insights int `json:"insights"`
	Skipped  int `json:"skipped"`
}

// ImportDataSnapshot loads an exported payload into the database. Profiles
// are matched by name; an existing profile keeps its settings and only
// receives the payload's rows. The whole import runs in one transaction.
func ImportDataSnapshot(db *sql.DB, data *ExportData) (ImportReport, error) {
	report := ImportReport{}
	if data == nil {
		return report, fmt.Errorf("import payload is empty")
	}

	tx, err := db.Begin()
	if err != nil {
		return report, fmt.Errorf("begin import tx: %w", err)
	}
	defer tx.Rollback()

	ids := make(map[string]int64)
	for _, p := range data.Profiles {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			report.Skipped++
			continue
		}
		var id int64
		err := tx.QueryRow(`SELECT id FROM profiles WHERE name = ?`, name).Scan(&id)
		if err == sql.ErrNoRows {
			var goal any
			if goal, err = normalizeGoal(p.Goal); err != nil {
				return report, fmt.Errorf("import profile %q: %w", name, err)
			}
			res, err := tx.Exec(`
INSERT INTO profiles(name, daily_calories, daily_protein, daily_carbs, daily_fat, goal, coaching_notes, start_date)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, name, p.DailyCalories, p.DailyProtein, p.DailyCarbs, p.DailyFat, goal, strings.TrimSpace(p.CoachingNotes), strings.TrimSpace(p.StartDate))
			if err != nil {
				return report, fmt.Errorf("import profile %q: %w", name, err)
			}
			if id, err = res.LastInsertId(); err != nil {
				return report, fmt.Errorf("resolve imported profile id: %w", err)
			}
			report.Profiles++
		} else if err != nil {
			return report, fmt.Errorf("look up profile %q: %w", name, err)
		}
		ids[name] = id
	}

	for _, m := range data.Meals {
		id, ok := ids[m.Profile]
		if !ok {
			report.Skipped++
			continue
		}
		timeOfDay, err := normalizeTimeOfDay(m.TimeOfDay)
		if err != nil {
			return report, fmt.Errorf("import meal %q: %w", m.Name, err)
		}
		if _, err := tx.Exec(`
INSERT INTO meals(profile_id, name, calories, protein_g, carbs_g, fat_g, time_of_day, logged_date)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, id, m.Name, m.Calories, m.ProteinG, m.CarbsG, m.FatG, timeOfDay, m.LoggedDate); err != nil {
			return report, fmt.Errorf("import meal %q: %w", m.Name, err)
		}
		report.Meals++
	}

	for _, w := range data.Workouts {
		id, ok := ids[w.Profile]
		if !ok {
			report.Skipped++
			continue
		}
		if _, err := tx.Exec(`
INSERT INTO workouts(profile_id, workout_type, exercise, duration_minutes, calories_burned, logged_date)
VALUES(?, ?, ?, ?, ?, ?)
`, id, w.WorkoutType, w.Exercise, w.DurationMin, w.CaloriesBurned, w.LoggedDate); err != nil {
			return report, fmt.Errorf("import workout %q: %w", w.WorkoutType, err)
		}
		report.Workouts++
	}

	for _, w := range data.WeighIns {
		id, ok := ids[w.Profile]
		if !ok {
			report.Skipped++
			continue
		}
		if _, err := tx.Exec(`
INSERT INTO weigh_ins(profile_id, weight_kg, body_fat_pct, logged_date)
VALUES(?, ?, ?, ?)
`, id, w.WeightKg, w.BodyFatPct, w.LoggedDate); err != nil {
			return report, fmt.Errorf("import weigh-in on %s: %w", w.LoggedDate, err)
		}
		report.WeighIns++
	}

	for _, ins := range data.Insights {
		id, ok := ids[ins.Profile]
		if !ok {
			report.Skipped++
			continue
		}
		category, err := normalizeInsightCategory(ins.Category)
		if err != nil {
			return report, fmt.Errorf("import insight: %w", err)
		}
		active := 0
		if ins.Active {
			active = 1
		}
		if _, err := tx.Exec(`
INSERT INTO user_insights(profile_id, category, content, active)
VALUES(?, ?, ?, ?)
`, id, category, ins.Content, active); err != nil {
			return report, fmt.Errorf("import insight: %w", err)
		}
		report.Insights++
	}

	if err := tx.Commit(); err != nil {
		return report, fmt.Errorf("commit import tx: %w", err)
	}
	return report, nil
}
