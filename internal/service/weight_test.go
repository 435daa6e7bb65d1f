package service_test

import (
	"testing"

	"github.com/mdivincenzo/macrocoach/internal/service"
)

func TestLogAndFetchWeighIns(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	for _, w := range []struct {
		date   string
		weight float64
	}{
		{"2026-02-08", 82.4},
		{"2026-02-10", 82.0},
		{"2026-02-12", 81.6},
	} {
		if _, err := service.LogWeighIn(sqldb, service.LogWeighInInput{
			ProfileID: id,
			WeightKg:  w.weight,
			Date:      w.date,
		}); err != nil {
			t.Fatalf("log weigh-in on %s: %v", w.date, err)
		}
	}

	weighIns, err := service.WeighInsForDateRange(sqldb, id, "2026-02-08", "2026-02-12")
	if err != nil {
		t.Fatalf("weigh-ins for range: %v", err)
	}
	if len(weighIns) != 3 || weighIns[0].WeightKg != 82.4 {
		t.Fatalf("unexpected weigh-ins: %+v", weighIns)
	}

	latest, err := service.LatestWeighIn(sqldb, id)
	if err != nil {
		t.Fatalf("latest weigh-in: %v", err)
	}
	if latest == nil || latest.WeightKg != 81.6 || latest.LoggedDate != "2026-02-12" {
		t.Fatalf("unexpected latest weigh-in: %+v", latest)
	}
}

func TestLatestWeighInEmpty(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	latest, err := service.LatestWeighIn(sqldb, id)
	if err != nil {
		t.Fatalf("latest weigh-in: %v", err)
	}
	if latest != nil {
		t.Fatalf("no weigh-ins must yield nil, got %+v", latest)
	}
}

func TestLogWeighInValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	if _, err := service.LogWeighIn(sqldb, service.LogWeighInInput{ProfileID: id, WeightKg: 0}); err == nil {
		t.Fatalf("zero weight must be rejected")
	}
	bad := 105.0
	if _, err := service.LogWeighIn(sqldb, service.LogWeighInInput{ProfileID: id, WeightKg: 80, BodyFatPct: &bad}); err == nil {
		t.Fatalf("body fat over 100 must be rejected")
	}
}
