package coach

import (
	"database/sql"
	"time"

	"github.com/mdivincenzo/macrocoach/internal/model"
	"github.com/mdivincenzo/macrocoach/internal/service"
)

// Context is the structured bundle interpolated into the system prompt. It
// is regenerated from storage on every call; nothing here is cached.
type Context struct {
	Profile   *model.Profile
	Targets   service.Targets
	Goal      model.Goal
	Today     service.DailySnapshot
	State     service.ProgressState
	Yesterday service.DailySnapshot
	Week      service.WeeklyReport
	Patterns  []string
	Streaks   service.StreakState
	Weight    *model.WeighIn
	Insights  []model.Insight
}

// BuildContext assembles the coaching bundle for a profile as of now. The
// profile itself must exist; every derived section degrades to a zero value
// on fetch failure because the bundle feeds a best-effort prompt, never a
// correctness-critical path.
func BuildContext(db *sql.DB, profileID int64, now time.Time) (*Context, error) {
	profile, err := service.GetProfile(db, profileID)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		Profile: profile,
		Targets: service.EffectiveTargets(profile),
		Goal:    service.EffectiveGoal(profile),
	}

	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	if snap, err := service.BuildDailySnapshot(db, profileID, today); err == nil {
		ctx.Today = snap
	} else {
		ctx.Today = service.NewDailySnapshot(today, nil, nil, ctx.Targets)
	}
	ctx.State = service.ClassifyProgress(ctx.Today.Calories, ctx.Today.ProteinG, ctx.Targets, now.Hour())

	if snap, err := service.BuildDailySnapshot(db, profileID, yesterday); err == nil {
		ctx.Yesterday = snap
	} else {
		ctx.Yesterday = service.NewDailySnapshot(yesterday, nil, nil, ctx.Targets)
	}

	if week, err := service.BuildWeeklyReport(db, profileID, now); err == nil {
		ctx.Week = week
		ctx.Patterns = service.DetectPatterns(week.Days, ctx.Targets)
	}

	ctx.Streaks = service.StreakForProfile(db, profileID)

	if weight, err := service.LatestWeighIn(db, profileID); err == nil {
		ctx.Weight = weight
	}
	if insights, err := service.ActiveInsights(db, profileID); err == nil {
		ctx.Insights = insights
	}

	return ctx, nil
}
