package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/mdivincenzo/macrocoach/internal/model"
	"github.com/mdivincenzo/macrocoach/internal/service"
)

func passDay(date string) service.DailySnapshot {
	return mkDay(date, 2000, 150, true)
}

func failDay(date string) service.DailySnapshot {
	return mkDay(date, 2000, 50, true)
}

func missingDay(date string) service.DailySnapshot {
	return mkDay(date, 0, 0, false)
}

func TestStreakAllSuccessRun(t *testing.T) {
	t.Parallel()
	days := []service.DailySnapshot{
		passDay("2026-02-09"),
		passDay("2026-02-10"),
		passDay("2026-02-11"),
		passDay("2026-02-12"),
	}
	state := service.ComputeStreaks(days, testTargets(), model.GoalMaintain)
	if state.CurrentStreak != 4 || state.BestStreak != 4 {
		t.Fatalf("expected 4/4 for an unbroken run, got %+v", state)
	}
}

func TestStreakBreakResetsCurrentRun(t *testing.T) {
	t.Parallel()
	days := []service.DailySnapshot{
		passDay("2026-02-08"),
		passDay("2026-02-09"),
		passDay("2026-02-10"),
		failDay("2026-02-11"),
		passDay("2026-02-12"),
		passDay("2026-02-13"),
	}
	state := service.ComputeStreaks(days, testTargets(), model.GoalMaintain)
	if state.CurrentStreak != 2 {
		t.Fatalf("expected current streak 2 after a mid-run break, got %d", state.CurrentStreak)
	}
	if state.BestStreak != 3 {
		t.Fatalf("expected best streak 3 from the earlier run, got %d", state.BestStreak)
	}
}

func TestStreakMissingDayBreaksLikeFailure(t *testing.T) {
	t.Parallel()
	days := []service.DailySnapshot{
		passDay("2026-02-10"),
		missingDay("2026-02-11"),
		passDay("2026-02-12"),
		passDay("2026-02-13"),
	}
	state := service.ComputeStreaks(days, testTargets(), model.GoalMaintain)
	if state.CurrentStreak != 2 || state.BestStreak != 2 {
		t.Fatalf("a gap must break runs identically to a failure, got %+v", state)
	}
}

func TestStreakSkipsEmptyToday(t *testing.T) {
	t.Parallel()
	days := []service.DailySnapshot{
		failDay("2026-02-10"),
		passDay("2026-02-11"),
		passDay("2026-02-12"),
		missingDay("2026-02-13"), // today, not yet logged
	}
	state := service.ComputeStreaks(days, testTargets(), model.GoalMaintain)
	if state.CurrentStreak != 2 {
		t.Fatalf("an empty today must be skipped, not counted as a break; got %d", state.CurrentStreak)
	}
}

func TestStreakZeroWhenTodayFails(t *testing.T) {
	t.Parallel()
	days := []service.DailySnapshot{
		passDay("2026-02-11"),
		passDay("2026-02-12"),
		failDay("2026-02-13"),
	}
	state := service.ComputeStreaks(days, testTargets(), model.GoalMaintain)
	if state.CurrentStreak != 0 {
		t.Fatalf("a logged-but-failing today must zero the current streak, got %d", state.CurrentStreak)
	}
	if state.BestStreak != 2 {
		t.Fatalf("best streak must still see the earlier run, got %d", state.BestStreak)
	}
}

func TestStreakZeroWithoutTargets(t *testing.T) {
	t.Parallel()
	days := []service.DailySnapshot{passDay("2026-02-12"), passDay("2026-02-13")}
	state := service.ComputeStreaks(days, service.Targets{}, model.GoalMaintain)
	if state.CurrentStreak != 0 || state.BestStreak != 0 {
		t.Fatalf("streaks cannot be evaluated without targets, got %+v", state)
	}
}

func TestStreakForProfileWithoutExplicitTargets(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id, err := service.CreateProfile(sqldb, service.CreateProfileInput{Name: "defaults-only"})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	seedMeal(t, sqldb, id, time.Now().Format("2006-01-02"), "lunch", 2000, 150, "lunch")

	state := service.StreakForProfile(sqldb, id)
	if state.CurrentStreak != 0 || state.BestStreak != 0 {
		t.Fatalf("profiles without explicit targets must yield zero streaks, got %+v", state)
	}
}

func TestStreakForProfileCountsRecentRun(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	now := time.Now()
	for i := 1; i <= 3; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		seedMeal(t, sqldb, id, date, fmt.Sprintf("meals day -%d", i), 2000, 150, "")
	}

	state := service.StreakForProfile(sqldb, id)
	if state.CurrentStreak != 3 {
		t.Fatalf("expected current streak 3 with an empty today skipped, got %+v", state)
	}
	if state.BestStreak != 3 {
		t.Fatalf("expected best streak 3, got %+v", state)
	}
}

func TestStreakForProfileWithNoMeals(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	state := service.StreakForProfile(sqldb, id)
	if state.CurrentStreak != 0 || state.BestStreak != 0 {
		t.Fatalf("no history must yield zero streaks, got %+v", state)
	}
}
