package coach

import (
	"fmt"
	"strings"
)

// RenderSystemPrompt flattens the context bundle into the plain-text system
// prompt for the model. The output is regenerated fresh on every message;
// there is no schema or versioning to maintain.
func RenderSystemPrompt(ctx *Context) string {
	var b strings.Builder

	b.WriteString("You are a pragmatic nutrition and fitness coach. Ground every answer in the data below; be specific, cite numbers, and never invent history. Log meals, workouts, and weigh-ins with the provided tools when the user reports them.\n")

	fmt.Fprintf(&b, "\n## Profile\nName: %s\nGoal: %s\nDaily targets: %d kcal, %.0fg protein, %.0fg carbs, %.0fg fat\n",
		ctx.Profile.Name, ctx.Goal, ctx.Targets.Calories, ctx.Targets.ProteinG, ctx.Targets.CarbsG, ctx.Targets.FatG)
	if notes := strings.TrimSpace(ctx.Profile.CoachingNotes); notes != "" {
		fmt.Fprintf(&b, "Coaching notes: %s\n", notes)
	}

	fmt.Fprintf(&b, "\n## Today (%s) — state: %s\n", ctx.Today.Date, ctx.State)
	writeDayLine(&b, "So far", ctx.Today.Calories, ctx.Today.ProteinG, ctx.Today.CarbsG, ctx.Today.FatG)
	if len(ctx.Today.Meals) == 0 {
		b.WriteString("No meals logged yet today.\n")
	} else {
		for _, m := range ctx.Today.Meals {
			fmt.Fprintf(&b, "- %s: %d kcal, %.0fg protein\n", m.Name, m.Calories, m.ProteinG)
		}
	}
	for _, w := range ctx.Today.Workouts {
		fmt.Fprintf(&b, "- workout: %s (%d kcal burned)\n", w.WorkoutType, w.CaloriesBurned)
	}

	fmt.Fprintf(&b, "\n## Yesterday (%s)\n", ctx.Yesterday.Date)
	if !ctx.Yesterday.MealsLogged() {
		b.WriteString("Nothing logged.\n")
	} else {
		writeDayLine(&b, "Totals", ctx.Yesterday.Calories, ctx.Yesterday.ProteinG, ctx.Yesterday.CarbsG, ctx.Yesterday.FatG)
		fmt.Fprintf(&b, "Hit calorie target: %t; hit protein target: %t\n", ctx.Yesterday.HitCalorieTarget, ctx.Yesterday.HitProteinTarget)
	}

	fmt.Fprintf(&b, "\n## Last 7 days (%s to %s)\n", ctx.Week.FromDate, ctx.Week.ToDate)
	if ctx.Week.DaysTracked == 0 {
		b.WriteString("No tracked days yet.\n")
	} else {
		fmt.Fprintf(&b, "Tracked %d days; averages %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat.\n",
			ctx.Week.DaysTracked, ctx.Week.AvgCalories, ctx.Week.AvgProteinG, ctx.Week.AvgCarbsG, ctx.Week.AvgFatG)
		fmt.Fprintf(&b, "Hit calories %d days, protein %d days, both %d days. Workouts logged: %d.\n",
			ctx.Week.DaysHitCalories, ctx.Week.DaysHitProtein, ctx.Week.DaysHitBoth, ctx.Week.WorkoutCount)
	}

	if len(ctx.Patterns) > 0 {
		b.WriteString("\n## Detected patterns\n")
		for _, p := range ctx.Patterns {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	fmt.Fprintf(&b, "\n## Streaks\nCurrent: %d days; best: %d days.\n", ctx.Streaks.CurrentStreak, ctx.Streaks.BestStreak)

	if ctx.Weight != nil {
		fmt.Fprintf(&b, "\n## Weight\nLatest: %.1f kg on %s", ctx.Weight.WeightKg, ctx.Weight.LoggedDate)
		if ctx.Weight.BodyFatPct != nil {
			fmt.Fprintf(&b, " (%.1f%% body fat)", *ctx.Weight.BodyFatPct)
		}
		b.WriteString("\n")
	}

	if len(ctx.Insights) > 0 {
		b.WriteString("\n## Remembered about this user\n")
		for _, ins := range ctx.Insights {
			fmt.Fprintf(&b, "- [%s] %s\n", ins.Category, ins.Content)
		}
	}

	return b.String()
}

func writeDayLine(b *strings.Builder, label string, calories int, protein, carbs, fat float64) {
	fmt.Fprintf(b, "%s: %d kcal, %.0fg protein, %.0fg carbs, %.0fg fat\n", label, calories, protein, carbs, fat)
}
