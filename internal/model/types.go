package model

import "time"

// Goal is the direction a profile is working toward. It drives the
// goal-aware calorie tolerance bands used by streak evaluation.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

type Profile struct {
	ID            int64
	Name          string
	DailyCalories *int
	DailyProtein  *float64
	DailyCarbs    *float64
	DailyFat      *float64
	Goal          *Goal
	CoachingNotes string
	StartDate     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Meal struct {
	ID         int64
	ProfileID  int64
	Name       string
	Calories   int
	ProteinG   float64
	CarbsG     float64
	FatG       float64
	TimeOfDay  string
	LoggedDate string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Workout struct {
	ID             int64
	ProfileID      int64
	WorkoutType    string
	Exercise       string
	DurationMin    *int
	CaloriesBurned int
	LoggedDate     string
	CreatedAt      time.Time
}

type WeighIn struct {
	ID         int64
	ProfileID  int64
	WeightKg   float64
	BodyFatPct *float64
	LoggedDate string
	CreatedAt  time.Time
}

type InsightCategory string

const (
	InsightPattern     InsightCategory = "pattern"
	InsightPreference  InsightCategory = "preference"
	InsightConstraint  InsightCategory = "constraint"
	InsightGoalContext InsightCategory = "goal_context"
)

type Insight struct {
	ID            int64
	ProfileID     int64
	Category      InsightCategory
	Content       string
	Active        bool
	CreatedAt     time.Time
	DeactivatedAt *time.Time
}

type ChatMessage struct {
	ID        int64
	ProfileID int64
	SessionID string
	Role      string
	Content   string
	CreatedAt time.Time
}
