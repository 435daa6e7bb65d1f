package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type DoctorReport struct {
	OrphanMeals      int `json:"orphan_meals"`
	OrphanWorkouts   int `json:"orphan_workouts"`
	OrphanWeighIns   int `json:"orphan_weigh_ins"`
	BadDates         int `json:"bad_dates"`
	ExcessInsights   int `json:"excess_insights"`
	DanglingSessions int `json:"dangling_sessions"`
}

func (r DoctorReport) Clean() bool {
	return r.OrphanMeals == 0 && r.OrphanWorkouts == 0 && r.OrphanWeighIns == 0 &&
		r.BadDates == 0 && r.ExcessInsights == 0 && r.DanglingSessions == 0
}

func CreateBackup(dbPath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(dbPath) == "" {
		return BackupInfo{}, fmt.Errorf("db path is required")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := copyFile(dbPath, outPath); err != nil {
		return BackupInfo{}, err
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	checksumFile := backupPath + ".sha256"
	if expected, err := os.ReadFile(checksumFile); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return copyFile(backupPath, dbPath)
}

func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".db") {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// RunDoctor checks the invariants the schema cannot express: rows pointing
// at deleted profiles, logged_date values that are not local calendar dates,
// profiles holding more active insights than the cap, and chat rows with a
// blank session id.
func RunDoctor(db *sql.DB) (DoctorReport, error) {
	report := DoctorReport{}

	orphanChecks := []struct {
		table string
		dest  *int
	}{
		{"meals", &report.OrphanMeals},
		{"workouts", &report.OrphanWorkouts},
		{"weigh_ins", &report.OrphanWeighIns},
	}
	for _, check := range orphanChecks {
		query := fmt.Sprintf(`SELECT COUNT(1) FROM %s t LEFT JOIN profiles p ON p.id = t.profile_id WHERE p.id IS NULL`, check.table)
		if err := db.QueryRow(query).Scan(check.dest); err != nil {
			return report, fmt.Errorf("doctor orphan check %s: %w", check.table, err)
		}
	}

	for _, table := range []string{"meals", "workouts", "weigh_ins"} {
		var bad int
		query := fmt.Sprintf(`SELECT COUNT(1) FROM %s WHERE logged_date NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'`, table)
		if err := db.QueryRow(query).Scan(&bad); err != nil {
			return report, fmt.Errorf("doctor date check %s: %w", table, err)
		}
		report.BadDates += bad
	}

	if err := db.QueryRow(`
SELECT COALESCE(SUM(cnt - ?), 0) FROM (
  SELECT COUNT(*) AS cnt
  FROM user_insights
  WHERE active = 1
  GROUP BY profile_id
  HAVING cnt > ?
)
`, MaxActiveInsights, MaxActiveInsights).Scan(&report.ExcessInsights); err != nil {
		return report, fmt.Errorf("doctor insight cap check: %w", err)
	}

	if err := db.QueryRow(`SELECT COUNT(1) FROM chat_history WHERE TRIM(session_id) = ''`).Scan(&report.DanglingSessions); err != nil {
		return report, fmt.Errorf("doctor session check: %w", err)
	}

	return report, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination file: %w", err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
