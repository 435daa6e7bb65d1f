package service

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/mdivincenzo/macrocoach/internal/model"
)

// Defaults substituted whenever a profile leaves a daily target unset.
const (
	DefaultDailyCalories = 2000
	DefaultDailyProtein  = 150.0
	DefaultDailyCarbs    = 200.0
	DefaultDailyFat      = 65.0
)

// Targets is a fully-resolved set of daily targets; never contains nulls.
type Targets struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

type CreateProfileInput struct {
	Name          string
	DailyCalories *int
	DailyProtein  *float64
	DailyCarbs    *float64
	DailyFat      *float64
	Goal          string
	CoachingNotes string
	StartDate     string
}

type UpdateProfileInput struct {
	ID            int64
	DailyCalories *int
	DailyProtein  *float64
	DailyCarbs    *float64
	DailyFat      *float64
	Goal          *string
	CoachingNotes *string
}

func CreateProfile(db *sql.DB, in CreateProfileInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, fmt.Errorf("profile name is required")
	}
	goal, err := normalizeGoal(in.Goal)
	if err != nil {
		return 0, err
	}
	if err := validateTargets(in.DailyCalories, in.DailyProtein, in.DailyCarbs, in.DailyFat); err != nil {
		return 0, err
	}
	startDate := strings.TrimSpace(in.StartDate)
	if startDate == "" {
		startDate, _ = normalizeDate("")
	} else if _, err := parseLocalDate(startDate); err != nil {
		return 0, err
	}

	res, err := db.Exec(`
INSERT INTO profiles(name, daily_calories, daily_protein, daily_carbs, daily_fat, goal, coaching_notes, start_date)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, in.Name, in.DailyCalories, in.DailyProtein, in.DailyCarbs, in.DailyFat, goal, strings.TrimSpace(in.CoachingNotes), startDate)
	if err != nil {
		return 0, fmt.Errorf("insert profile: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted profile id: %w", err)
	}
	return id, nil
}

func UpdateProfile(db *sql.DB, in UpdateProfileInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("profile id must be > 0")
	}
	if err := validateTargets(in.DailyCalories, in.DailyProtein, in.DailyCarbs, in.DailyFat); err != nil {
		return err
	}

	sets := make([]string, 0)
	args := make([]any, 0)
	if in.DailyCalories != nil {
		sets = append(sets, "daily_calories = ?")
		args = append(args, *in.DailyCalories)
	}
	if in.DailyProtein != nil {
		sets = append(sets, "daily_protein = ?")
		args = append(args, *in.DailyProtein)
	}
	if in.DailyCarbs != nil {
		sets = append(sets, "daily_carbs = ?")
		args = append(args, *in.DailyCarbs)
	}
	if in.DailyFat != nil {
		sets = append(sets, "daily_fat = ?")
		args = append(args, *in.DailyFat)
	}
	if in.Goal != nil {
		goal, err := normalizeGoal(*in.Goal)
		if err != nil {
			return err
		}
		sets = append(sets, "goal = ?")
		args = append(args, goal)
	}
	if in.CoachingNotes != nil {
		sets = append(sets, "coaching_notes = ?")
		args = append(args, strings.TrimSpace(*in.CoachingNotes))
	}
	if len(sets) == 0 {
		return fmt.Errorf("nothing to update")
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, in.ID)

	res, err := db.Exec(`UPDATE profiles SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update profile %d: %w", in.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve profile update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("profile %d does not exist", in.ID)
	}
	return nil
}

func GetProfile(db *sql.DB, id int64) (*model.Profile, error) {
	var p model.Profile
	var goal sql.NullString
	err := db.QueryRow(`
SELECT id, name, daily_calories, daily_protein, daily_carbs, daily_fat, goal, IFNULL(coaching_notes, ''), IFNULL(start_date, ''), created_at, updated_at
FROM profiles
WHERE id = ?
`, id).Scan(&p.ID, &p.Name, &p.DailyCalories, &p.DailyProtein, &p.DailyCarbs, &p.DailyFat, &goal, &p.CoachingNotes, &p.StartDate, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile %d does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %d: %w", id, err)
	}
	if goal.Valid {
		g := model.Goal(goal.String)
		p.Goal = &g
	}
	return &p, nil
}

func ListProfiles(db *sql.DB) ([]model.Profile, error) {
	rows, err := db.Query(`
SELECT id, name, daily_calories, daily_protein, daily_carbs, daily_fat, goal, IFNULL(coaching_notes, ''), IFNULL(start_date, ''), created_at, updated_at
FROM profiles
ORDER BY id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]model.Profile, 0)
	for rows.Next() {
		var p model.Profile
		var goal sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.DailyCalories, &p.DailyProtein, &p.DailyCarbs, &p.DailyFat, &goal, &p.CoachingNotes, &p.StartDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		if goal.Valid {
			g := model.Goal(goal.String)
			p.Goal = &g
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return profiles, nil
}

// EffectiveTargets resolves a profile's nullable targets into concrete
// values, substituting the documented defaults for unset fields.
func EffectiveTargets(p *model.Profile) Targets {
	t := Targets{
		Calories: DefaultDailyCalories,
		ProteinG: DefaultDailyProtein,
		CarbsG:   DefaultDailyCarbs,
		FatG:     DefaultDailyFat,
	}
	if p == nil {
		return t
	}
	if p.DailyCalories != nil {
		t.Calories = *p.DailyCalories
	}
	if p.DailyProtein != nil {
		t.ProteinG = *p.DailyProtein
	}
	if p.DailyCarbs != nil {
		t.CarbsG = *p.DailyCarbs
	}
	if p.DailyFat != nil {
		t.FatG = *p.DailyFat
	}
	return t
}

// HasExplicitTargets reports whether calorie and protein targets were set
// by the user. Streaks refuse to evaluate against pure defaults.
func HasExplicitTargets(p *model.Profile) bool {
	return p != nil && p.DailyCalories != nil && p.DailyProtein != nil
}

var (
	goalLosePattern = regexp.MustCompile(`(?i)\b(lose|losing|cut|cutting|deficit|lean out)\b`)
	goalGainPattern = regexp.MustCompile(`(?i)\b(gain|gaining|bulk|bulking|surplus|build muscle)\b`)
)

// ParseGoalFromNotes scans free-text coaching notes for a goal direction.
// This is the legacy representation; it misfires on text like "don't want
// to lose muscle" and exists only as a fallback for profiles created before
// the typed goal column.
func ParseGoalFromNotes(notes string) (model.Goal, bool) {
	if goalLosePattern.MatchString(notes) {
		return model.GoalLose, true
	}
	if goalGainPattern.MatchString(notes) {
		return model.GoalGain, true
	}
	return model.GoalMaintain, false
}

// EffectiveGoal resolves the goal direction: typed column first, then the
// coaching-notes shim, then maintain.
func EffectiveGoal(p *model.Profile) model.Goal {
	if p == nil {
		return model.GoalMaintain
	}
	if p.Goal != nil && *p.Goal != "" {
		return *p.Goal
	}
	goal, _ := ParseGoalFromNotes(p.CoachingNotes)
	return goal
}

func normalizeGoal(goal string) (any, error) {
	goal = strings.TrimSpace(strings.ToLower(goal))
	if goal == "" {
		return nil, nil
	}
	switch model.Goal(goal) {
	case model.GoalLose, model.GoalMaintain, model.GoalGain:
		return goal, nil
	}
	return nil, fmt.Errorf("invalid goal %q (use lose, maintain, or gain)", goal)
}

func validateTargets(calories *int, protein, carbs, fat *float64) error {
	if calories != nil {
		if err := validateNonNegativeInt("daily calories", *calories); err != nil {
			return err
		}
	}
	if protein != nil {
		if err := validateNonNegativeFloat("daily protein", *protein); err != nil {
			return err
		}
	}
	if carbs != nil {
		if err := validateNonNegativeFloat("daily carbs", *carbs); err != nil {
			return err
		}
	}
	if fat != nil {
		if err := validateNonNegativeFloat("daily fat", *fat); err != nil {
			return err
		}
	}
	return nil
}
