package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

const configActiveProfile = "active_profile"

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

// SetActiveProfile remembers which profile CLI commands operate on when no
// explicit --profile flag is given.
func SetActiveProfile(db *sql.DB, profileID int64) error {
	if profileID <= 0 {
		return fmt.Errorf("profile id must be > 0")
	}
	return SetConfig(db, configActiveProfile, strconv.FormatInt(profileID, 10))
}

func ActiveProfileID(db *sql.DB) (int64, bool, error) {
	value, ok, err := GetConfig(db, configActiveProfile)
	if err != nil || !ok {
		return 0, false, err
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, fmt.Errorf("corrupt active profile value %q", value)
	}
	return id, true, nil
}
