package service_test

import (
	"strings"
	"testing"

	"github.com/mdivincenzo/macrocoach/internal/model"
	"github.com/mdivincenzo/macrocoach/internal/service"
)

func TestCreateAndGetProfile(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id, err := service.CreateProfile(sqldb, service.CreateProfileInput{
		Name:          "matt",
		DailyCalories: intPtr(2200),
		DailyProtein:  floatPtr(160),
		Goal:          "Lose",
		CoachingNotes: "training for a half marathon",
		StartDate:     "2026-02-01",
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	p, err := service.GetProfile(sqldb, id)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.Name != "matt" || *p.DailyCalories != 2200 || *p.DailyProtein != 160 {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.Goal == nil || *p.Goal != model.GoalLose {
		t.Fatalf("goal must be normalized to lowercase, got %v", p.Goal)
	}
	if p.DailyCarbs != nil || p.DailyFat != nil {
		t.Fatalf("unset targets must stay null")
	}
}

func TestCreateProfileRejectsBadInput(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	if _, err := service.CreateProfile(sqldb, service.CreateProfileInput{Name: "  "}); err == nil {
		t.Fatalf("blank name must be rejected")
	}
	if _, err := service.CreateProfile(sqldb, service.CreateProfileInput{Name: "x", Goal: "shred"}); err == nil {
		t.Fatalf("unknown goal must be rejected")
	}
	if _, err := service.CreateProfile(sqldb, service.CreateProfileInput{Name: "x", DailyCalories: intPtr(-1)}); err == nil {
		t.Fatalf("negative calorie target must be rejected")
	}
	if _, err := service.CreateProfile(sqldb, service.CreateProfileInput{Name: "x", StartDate: "02/01/2026"}); err == nil {
		t.Fatalf("non-ISO start date must be rejected")
	}
}

func TestUpdateProfilePartialSet(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	goal := "gain"
	if err := service.UpdateProfile(sqldb, service.UpdateProfileInput{
		ID:           id,
		DailyProtein: floatPtr(170),
		Goal:         &goal,
	}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	p, err := service.GetProfile(sqldb, id)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if *p.DailyProtein != 170 || *p.Goal != model.GoalGain {
		t.Fatalf("updated fields not applied: %+v", p)
	}
	if *p.DailyCalories != 2000 {
		t.Fatalf("untouched fields must survive a partial update, got %d", *p.DailyCalories)
	}

	if err := service.UpdateProfile(sqldb, service.UpdateProfileInput{ID: id}); err == nil {
		t.Fatalf("empty update must be rejected")
	}
	if err := service.UpdateProfile(sqldb, service.UpdateProfileInput{ID: 999, DailyProtein: floatPtr(1)}); err == nil ||
		!strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("updating a missing profile must fail, got %v", err)
	}
}

func TestEffectiveTargetsDefaults(t *testing.T) {
	t.Parallel()
	got := service.EffectiveTargets(nil)
	want := service.Targets{Calories: 2000, ProteinG: 150, CarbsG: 200, FatG: 65}
	if got != want {
		t.Fatalf("nil profile must resolve to defaults, got %+v", got)
	}

	p := &model.Profile{DailyCalories: intPtr(1800)}
	got = service.EffectiveTargets(p)
	if got.Calories != 1800 || got.ProteinG != 150 {
		t.Fatalf("explicit values must override only their own field: %+v", got)
	}

	if service.HasExplicitTargets(p) {
		t.Fatalf("calories alone must not count as explicit targets")
	}
	p.DailyProtein = floatPtr(140)
	if !service.HasExplicitTargets(p) {
		t.Fatalf("calories plus protein must count as explicit targets")
	}
}

func TestParseGoalFromNotes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		notes   string
		want    model.Goal
		matched bool
	}{
		{"trying to lose about 5kg before summer", model.GoalLose, true},
		{"CUTTING for the next 12 weeks", model.GoalLose, true},
		{"bulking season, surplus every day", model.GoalGain, true},
		{"want to build muscle", model.GoalGain, true},
		{"keep weight steady through winter", model.GoalMaintain, false},
		{"", model.GoalMaintain, false},
		// Known misfire of the legacy text shim: a lose keyword in a
		// negated sentence still reads as lose.
		{"don't want to lose muscle while bulking", model.GoalLose, true},
		// Substring-only mentions do not match on word boundaries.
		{"closet full of gains jokes", model.GoalMaintain, false},
	}
	for _, tt := range tests {
		got, matched := service.ParseGoalFromNotes(tt.notes)
		if got != tt.want || matched != tt.matched {
			t.Fatalf("ParseGoalFromNotes(%q) = %v/%v, want %v/%v", tt.notes, got, matched, tt.want, tt.matched)
		}
	}
}

func TestEffectiveGoalPrecedence(t *testing.T) {
	t.Parallel()
	gain := model.GoalGain
	typed := &model.Profile{Goal: &gain, CoachingNotes: "cutting hard"}
	if got := service.EffectiveGoal(typed); got != model.GoalGain {
		t.Fatalf("typed goal must win over notes, got %v", got)
	}

	fromNotes := &model.Profile{CoachingNotes: "running a deficit"}
	if got := service.EffectiveGoal(fromNotes); got != model.GoalLose {
		t.Fatalf("notes shim must apply when the column is unset, got %v", got)
	}

	if got := service.EffectiveGoal(nil); got != model.GoalMaintain {
		t.Fatalf("nil profile must default to maintain, got %v", got)
	}
}
