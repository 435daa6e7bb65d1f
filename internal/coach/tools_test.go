package coach

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdivincenzo/macrocoach/internal/db"
	"github.com/mdivincenzo/macrocoach/internal/service"
)

func dispatchTestDB(t *testing.T) (*sql.DB, int64) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "macrocoach.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	id, err := service.CreateProfile(sqldb, service.CreateProfileInput{Name: "matt"})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return sqldb, id
}

func TestDispatchLogMeal(t *testing.T) {
	t.Parallel()
	sqldb, id := dispatchTestDB(t)

	input := []byte(`{"name":"chicken wrap","calories":550,"protein_g":42,"time_of_day":"lunch","date":"2026-03-09"}`)
	result, isError := dispatchTool(sqldb, id, "log_meal", input)
	if isError {
		t.Fatalf("dispatch failed: %s", result)
	}
	if !strings.Contains(result, "chicken wrap") || !strings.Contains(result, "550 kcal") {
		t.Fatalf("result must echo the logged meal, got %q", result)
	}

	meals, err := service.MealsForDate(sqldb, id, "2026-03-09")
	if err != nil {
		t.Fatalf("meals for date: %v", err)
	}
	if len(meals) != 1 || meals[0].ProteinG != 42 || meals[0].TimeOfDay != "lunch" {
		t.Fatalf("meal not persisted: %+v", meals)
	}
}

func TestDispatchLogWorkoutAndWeighIn(t *testing.T) {
	t.Parallel()
	sqldb, id := dispatchTestDB(t)

	if result, isError := dispatchTool(sqldb, id, "log_workout",
		[]byte(`{"workout_type":"run","duration_minutes":30,"date":"2026-03-09"}`)); isError {
		t.Fatalf("log_workout dispatch failed: %s", result)
	}
	workouts, err := service.WorkoutsForDate(sqldb, id, "2026-03-09")
	if err != nil {
		t.Fatalf("workouts for date: %v", err)
	}
	if len(workouts) != 1 || *workouts[0].DurationMin != 30 {
		t.Fatalf("workout not persisted: %+v", workouts)
	}

	if result, isError := dispatchTool(sqldb, id, "log_weigh_in",
		[]byte(`{"weight_kg":82.5,"body_fat_pct":18.2}`)); isError {
		t.Fatalf("log_weigh_in dispatch failed: %s", result)
	}
	latest, err := service.LatestWeighIn(sqldb, id)
	if err != nil {
		t.Fatalf("latest weigh-in: %v", err)
	}
	if latest == nil || latest.WeightKg != 82.5 || *latest.BodyFatPct != 18.2 {
		t.Fatalf("weigh-in not persisted: %+v", latest)
	}
}

func TestDispatchSaveInsight(t *testing.T) {
	t.Parallel()
	sqldb, id := dispatchTestDB(t)

	if result, isError := dispatchTool(sqldb, id, "save_insight",
		[]byte(`{"category":"constraint","content":"vegetarian"}`)); isError {
		t.Fatalf("save_insight dispatch failed: %s", result)
	}
	insights, err := service.ActiveInsights(sqldb, id)
	if err != nil {
		t.Fatalf("active insights: %v", err)
	}
	if len(insights) != 1 || insights[0].Content != "vegetarian" {
		t.Fatalf("insight not persisted: %+v", insights)
	}
}

func TestDispatchErrorsReturnText(t *testing.T) {
	t.Parallel()
	sqldb, id := dispatchTestDB(t)

	result, isError := dispatchTool(sqldb, id, "log_meal", []byte(`{"calories":100}`))
	if !isError || !strings.Contains(result, "log_meal failed") {
		t.Fatalf("validation failure must come back as error text, got %q (isError=%v)", result, isError)
	}

	result, isError = dispatchTool(sqldb, id, "log_meal", []byte(`{broken`))
	if !isError || !strings.Contains(result, "invalid log_meal arguments") {
		t.Fatalf("malformed json must come back as error text, got %q", result)
	}

	result, isError = dispatchTool(sqldb, id, "teleport", []byte(`{}`))
	if !isError || !strings.Contains(result, "unknown tool") {
		t.Fatalf("unknown tool must come back as error text, got %q", result)
	}
}

func TestCoachToolsDeclareSchemas(t *testing.T) {
	t.Parallel()
	tools := coachTools()
	if len(tools) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(tools))
	}
	names := make(map[string]bool)
	for _, tool := range tools {
		if tool.OfTool == nil {
			t.Fatalf("every tool must be a plain tool param")
		}
		names[tool.OfTool.Name] = true
		if len(tool.OfTool.InputSchema.Required) == 0 {
			t.Fatalf("tool %s must declare required fields", tool.OfTool.Name)
		}
	}
	for _, want := range []string{"log_meal", "log_workout", "log_weigh_in", "save_insight"} {
		if !names[want] {
			t.Fatalf("missing tool %s", want)
		}
	}
}
