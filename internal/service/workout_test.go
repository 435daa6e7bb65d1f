package service_test

import (
	"testing"

	"github.com/mdivincenzo/macrocoach/internal/service"
)

func TestLogWorkoutNormalizesType(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	if _, err := service.LogWorkout(sqldb, service.LogWorkoutInput{
		ProfileID:   id,
		WorkoutType: " Strength ",
		Exercise:    "bench press",
		DurationMin: intPtr(45),
		Date:        "2026-02-10",
	}); err != nil {
		t.Fatalf("log workout: %v", err)
	}

	workouts, err := service.WorkoutsForDate(sqldb, id, "2026-02-10")
	if err != nil {
		t.Fatalf("workouts for date: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(workouts))
	}
	if workouts[0].WorkoutType != "strength" || workouts[0].Exercise != "bench press" {
		t.Fatalf("workout not normalized: %+v", workouts[0])
	}
	if workouts[0].DurationMin == nil || *workouts[0].DurationMin != 45 {
		t.Fatalf("duration not persisted: %+v", workouts[0])
	}
}

func TestLogWorkoutValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	if _, err := service.LogWorkout(sqldb, service.LogWorkoutInput{ProfileID: id, WorkoutType: "  "}); err == nil {
		t.Fatalf("blank workout type must be rejected")
	}
	if _, err := service.LogWorkout(sqldb, service.LogWorkoutInput{ProfileID: id, WorkoutType: "run", DurationMin: intPtr(0)}); err == nil {
		t.Fatalf("zero duration must be rejected")
	}
	if _, err := service.LogWorkout(sqldb, service.LogWorkoutInput{ProfileID: id, WorkoutType: "run", CaloriesBurned: -5}); err == nil {
		t.Fatalf("negative calories burned must be rejected")
	}
}

func TestDeleteWorkoutIsProfileScoped(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	workoutID, err := service.LogWorkout(sqldb, service.LogWorkoutInput{
		ProfileID:   id,
		WorkoutType: "run",
		Date:        "2026-02-10",
	})
	if err != nil {
		t.Fatalf("log workout: %v", err)
	}

	if err := service.DeleteWorkout(sqldb, id+1, workoutID); err == nil {
		t.Fatalf("another profile must not be able to delete the workout")
	}
	if err := service.DeleteWorkout(sqldb, id, workoutID); err != nil {
		t.Fatalf("delete workout: %v", err)
	}
	if err := service.DeleteWorkout(sqldb, id, workoutID); err == nil {
		t.Fatalf("deleting twice must fail")
	}
}
