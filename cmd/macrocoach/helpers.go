package macrocoach

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/mdivincenzo/macrocoach/internal/app"
	"github.com/mdivincenzo/macrocoach/internal/db"
	"github.com/mdivincenzo/macrocoach/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// resolveProfileID prefers the --profile flag, then the stored active
// profile.
func resolveProfileID(sqldb *sql.DB) (int64, error) {
	if profileID > 0 {
		return profileID, nil
	}
	id, ok, err := service.ActiveProfileID(sqldb)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("no active profile; create one with `macrocoach profile create` or pass --profile")
	}
	return id, nil
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}
