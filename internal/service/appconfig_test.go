package service_test

import (
	"testing"

	"github.com/mdivincenzo/macrocoach/internal/service"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	if _, ok, err := service.GetConfig(sqldb, "missing"); err != nil || ok {
		t.Fatalf("missing key must report ok=false without error, got ok=%v err=%v", ok, err)
	}

	if err := service.SetConfig(sqldb, "Units", "metric"); err != nil {
		t.Fatalf("set config: %v", err)
	}
	if err := service.SetConfig(sqldb, "units", "imperial"); err != nil {
		t.Fatalf("overwrite config: %v", err)
	}
	value, ok, err := service.GetConfig(sqldb, "UNITS")
	if err != nil || !ok {
		t.Fatalf("get config: ok=%v err=%v", ok, err)
	}
	if value != "imperial" {
		t.Fatalf("keys must be case-insensitive and upserts must win, got %q", value)
	}
}

func TestActiveProfileRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	if _, ok, err := service.ActiveProfileID(sqldb); err != nil || ok {
		t.Fatalf("unset active profile must report ok=false, got ok=%v err=%v", ok, err)
	}

	id := newTestProfile(t, sqldb, "maintain")
	if err := service.SetActiveProfile(sqldb, id); err != nil {
		t.Fatalf("set active profile: %v", err)
	}
	got, ok, err := service.ActiveProfileID(sqldb)
	if err != nil || !ok || got != id {
		t.Fatalf("active profile round trip failed: got=%d ok=%v err=%v", got, ok, err)
	}

	if err := service.SetActiveProfile(sqldb, 0); err == nil {
		t.Fatalf("zero profile id must be rejected")
	}
}
