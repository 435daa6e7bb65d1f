package service_test

import (
	"reflect"
	"testing"

	"github.com/mdivincenzo/macrocoach/internal/model"
	"github.com/mdivincenzo/macrocoach/internal/service"
)

func TestSumByDateGroupsAndSums(t *testing.T) {
	t.Parallel()
	meals := []model.Meal{
		{LoggedDate: "2026-02-10", Calories: 500, ProteinG: 40, CarbsG: 50, FatG: 15},
		{LoggedDate: "2026-02-11", Calories: 900, ProteinG: 80, CarbsG: 90, FatG: 25},
		{LoggedDate: "2026-02-10", Calories: 700, ProteinG: 60, CarbsG: 70, FatG: 20},
	}

	totals := service.SumByDate(meals)
	if len(totals) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(totals))
	}
	day := totals["2026-02-10"]
	if day.Calories != 1200 || day.ProteinG != 100 || day.CarbsG != 120 || day.FatG != 35 {
		t.Fatalf("unexpected totals for 2026-02-10: %+v", day)
	}
	if _, ok := totals["2026-02-12"]; ok {
		t.Fatalf("date with no meals must not appear in the result")
	}
}

func TestSumByDateOrderIndependent(t *testing.T) {
	t.Parallel()
	meals := []model.Meal{
		{LoggedDate: "2026-02-10", Calories: 500, ProteinG: 40},
		{LoggedDate: "2026-02-10", Calories: 700, ProteinG: 60},
		{LoggedDate: "2026-02-11", Calories: 300, ProteinG: 25},
	}
	reversed := []model.Meal{meals[2], meals[1], meals[0]}

	a := service.SumByDate(meals)
	b := service.SumByDate(reversed)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("aggregation must not depend on input order: %+v != %+v", a, b)
	}

	again := service.SumByDate(meals)
	if !reflect.DeepEqual(a, again) {
		t.Fatalf("aggregating the same input twice must be identical: %+v != %+v", a, again)
	}
}

func TestSumByDateEmptyInput(t *testing.T) {
	t.Parallel()
	totals := service.SumByDate(nil)
	if len(totals) != 0 {
		t.Fatalf("expected empty result, got %+v", totals)
	}
}
