package coach

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/mdivincenzo/macrocoach/internal/service"
)

type logMealParams struct {
	Name      string  `json:"name"`
	Calories  int     `json:"calories"`
	ProteinG  float64 `json:"protein_g"`
	CarbsG    float64 `json:"carbs_g"`
	FatG      float64 `json:"fat_g"`
	TimeOfDay string  `json:"time_of_day,omitempty"`
	Date      string  `json:"date,omitempty"`
}

type logWorkoutParams struct {
	WorkoutType    string `json:"workout_type"`
	Exercise       string `json:"exercise,omitempty"`
	DurationMin    *int   `json:"duration_minutes,omitempty"`
	CaloriesBurned int    `json:"calories_burned,omitempty"`
	Date           string `json:"date,omitempty"`
}

type logWeighInParams struct {
	WeightKg   float64  `json:"weight_kg"`
	BodyFatPct *float64 `json:"body_fat_pct,omitempty"`
	Date       string   `json:"date,omitempty"`
}

type saveInsightParams struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

func coachTools() []anthropic.ToolUnionParam {
	return []anthropic.ToolUnionParam{
		toolParam("log_meal", "Log a meal the user ate, with estimated macros.", map[string]any{
			"name":        map[string]any{"type": "string", "description": "Short meal description"},
			"calories":    map[string]any{"type": "integer"},
			"protein_g":   map[string]any{"type": "number"},
			"carbs_g":     map[string]any{"type": "number"},
			"fat_g":       map[string]any{"type": "number"},
			"time_of_day": map[string]any{"type": "string", "enum": []string{"breakfast", "lunch", "dinner", "snack"}},
			"date":        map[string]any{"type": "string", "description": "Local date YYYY-MM-DD, defaults to today"},
		}, []string{"name", "calories"}),
		toolParam("log_workout", "Log a workout the user completed.", map[string]any{
			"workout_type":     map[string]any{"type": "string", "description": "e.g. strength, cardio, run"},
			"exercise":         map[string]any{"type": "string"},
			"duration_minutes": map[string]any{"type": "integer"},
			"calories_burned":  map[string]any{"type": "integer"},
			"date":             map[string]any{"type": "string", "description": "Local date YYYY-MM-DD, defaults to today"},
		}, []string{"workout_type"}),
		toolParam("log_weigh_in", "Record the user's body weight.", map[string]any{
			"weight_kg":    map[string]any{"type": "number"},
			"body_fat_pct": map[string]any{"type": "number"},
			"date":         map[string]any{"type": "string", "description": "Local date YYYY-MM-DD, defaults to today"},
		}, []string{"weight_kg"}),
		toolParam("save_insight", "Remember a durable fact about the user for future coaching.", map[string]any{
			"category": map[string]any{"type": "string", "enum": []string{"pattern", "preference", "constraint", "goal_context"}},
			"content":  map[string]any{"type": "string"},
		}, []string{"category", "content"}),
	}
}

func toolParam(name, description string, properties map[string]any, required []string) anthropic.ToolUnionParam {
	return anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        name,
			Description: anthropic.String(description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Type:       "object",
				Properties: properties,
				Required:   required,
			},
		},
	}
}

// dispatchTool executes one tool call against the service layer and returns
// the result text fed back to the model. Errors are returned as text so the
// model can correct its call instead of aborting the conversation.
func dispatchTool(db *sql.DB, profileID int64, name string, input []byte) (string, bool) {
	switch name {
	case "log_meal":
		var p logMealParams
		if err := json.Unmarshal(input, &p); err != nil {
			return fmt.Sprintf("invalid log_meal arguments: %v", err), true
		}
		id, err := service.LogMeal(db, service.LogMealInput{
			ProfileID: profileID,
			Name:      p.Name,
			Calories:  p.Calories,
			ProteinG:  p.ProteinG,
			CarbsG:    p.CarbsG,
			FatG:      p.FatG,
			TimeOfDay: p.TimeOfDay,
			Date:      p.Date,
		})
		if err != nil {
			return fmt.Sprintf("log_meal failed: %v", err), true
		}
		return fmt.Sprintf("Logged meal %d: %s (%d kcal, %.0fg protein).", id, p.Name, p.Calories, p.ProteinG), false

	case "log_workout":
		var p logWorkoutParams
		if err := json.Unmarshal(input, &p); err != nil {
			return fmt.Sprintf("invalid log_workout arguments: %v", err), true
		}
		id, err := service.LogWorkout(db, service.LogWorkoutInput{
			ProfileID:      profileID,
			WorkoutType:    p.WorkoutType,
			Exercise:       p.Exercise,
			DurationMin:    p.DurationMin,
			CaloriesBurned: p.CaloriesBurned,
			Date:           p.Date,
		})
		if err != nil {
			return fmt.Sprintf("log_workout failed: %v", err), true
		}
		return fmt.Sprintf("Logged workout %d: %s.", id, p.WorkoutType), false

	case "log_weigh_in":
		var p logWeighInParams
		if err := json.Unmarshal(input, &p); err != nil {
			return fmt.Sprintf("invalid log_weigh_in arguments: %v", err), true
		}
		id, err := service.LogWeighIn(db, service.LogWeighInInput{
			ProfileID:  profileID,
			WeightKg:   p.WeightKg,
			BodyFatPct: p.BodyFatPct,
			Date:       p.Date,
		})
		if err != nil {
			return fmt.Sprintf("log_weigh_in failed: %v", err), true
		}
		return fmt.Sprintf("Logged weigh-in %d: %.1f kg.", id, p.WeightKg), false

	case "save_insight":
		var p saveInsightParams
		if err := json.Unmarshal(input, &p); err != nil {
			return fmt.Sprintf("invalid save_insight arguments: %v", err), true
		}
		id, err := service.AddInsight(db, service.AddInsightInput{
			ProfileID: profileID,
			Category:  p.Category,
			Content:   p.Content,
		})
		if err != nil {
			return fmt.Sprintf("save_insight failed: %v", err), true
		}
		return fmt.Sprintf("Saved insight %d.", id), false
	}
	return fmt.Sprintf("unknown tool %q", name), true
}
