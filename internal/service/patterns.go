package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/mdivincenzo/macrocoach/internal/model"
)

// MaxPatternFindings caps how many findings reach the coaching prompt.
const MaxPatternFindings = 4

// MealSlot decides whether a meal belongs to a named mealtime. A meal
// qualifies through its explicit time_of_day tag or through a
// case-insensitive substring match on its name. The OR is deliberately
// lenient; "breakfast burrito" eaten at night still counts as breakfast.
// Tests pin this boundary rather than tightening it.
func MealSlot(m model.Meal, slot string) bool {
	if m.TimeOfDay == slot {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), slot)
}

func slotProtein(day DailySnapshot, slot string) float64 {
	var protein float64
	for _, m := range day.Meals {
		if MealSlot(m, slot) {
			protein += m.ProteinG
		}
	}
	return protein
}

// DetectPatterns scans tracked trailing-week days (today excluded) for
// behavioral signals. Rules run in a fixed priority order and the result is
// truncated to MaxPatternFindings entries.
func DetectPatterns(days []DailySnapshot, targets Targets) []string {
	findings := make([]string, 0)

	if f, ok := lowBreakfastProtein(days); ok {
		findings = append(findings, f)
	}
	if f, ok := dinnerLoadedProtein(days); ok {
		findings = append(findings, f)
	}
	if f, ok := weekendCalorieSpike(days); ok {
		findings = append(findings, f)
	}
	if f, ok := chronicUnderEating(days, targets); ok {
		findings = append(findings, f)
	}
	if f, ok := chronicProteinShortfall(days, targets); ok {
		findings = append(findings, f)
	}
	if f, ok := highConsistency(days); ok {
		findings = append(findings, f)
	}
	if f, ok := workoutDayProteinDeficit(days, targets); ok {
		findings = append(findings, f)
	}

	if len(findings) > MaxPatternFindings {
		findings = findings[:MaxPatternFindings]
	}
	return findings
}

func lowBreakfastProtein(days []DailySnapshot) (string, bool) {
	var sum float64
	count := 0
	for _, day := range days {
		if p := slotProtein(day, "breakfast"); p > 0 {
			sum += p
			count++
		}
	}
	if count < 3 {
		return "", false
	}
	avg := sum / float64(count)
	if avg >= 20 {
		return "", false
	}
	return fmt.Sprintf("Breakfast protein averages just %dg, well under the ~25g that triggers muscle protein synthesis.", int(math.Round(avg))), true
}

func dinnerLoadedProtein(days []DailySnapshot) (string, bool) {
	var sum float64
	count := 0
	for _, day := range days {
		if day.ProteinG <= 0 {
			continue
		}
		sum += slotProtein(day, "dinner") / day.ProteinG
		count++
	}
	if count < 3 {
		return "", false
	}
	avg := sum / float64(count)
	if avg <= 0.5 {
		return "", false
	}
	return fmt.Sprintf("About %d%% of daily protein lands at dinner; intake is heavily back-loaded late in the day.", int(math.Round(avg*100))), true
}

func weekendCalorieSpike(days []DailySnapshot) (string, bool) {
	var weekendSum, weekdaySum int
	var weekendCount, weekdayCount int
	for _, day := range days {
		if isWeekend(day.Date) {
			weekendSum += day.Calories
			weekendCount++
		} else {
			weekdaySum += day.Calories
			weekdayCount++
		}
	}
	if weekendCount < 1 || weekdayCount < 2 {
		return "", false
	}
	diff := float64(weekendSum)/float64(weekendCount) - float64(weekdaySum)/float64(weekdayCount)
	if diff <= 300 {
		return "", false
	}
	return fmt.Sprintf("Weekend calories run about %d kcal above weekday average.", int(math.Round(diff))), true
}

func chronicUnderEating(days []DailySnapshot, targets Targets) (string, bool) {
	if len(days) < 5 {
		return "", false
	}
	below := 0
	for _, day := range days {
		if float64(day.Calories) < float64(targets.Calories)*0.85 {
			below++
		}
	}
	if below < 4 {
		return "", false
	}
	return "Calories are landing well below target on most tracked days; chronic under-eating slows progress and costs muscle.", true
}

func chronicProteinShortfall(days []DailySnapshot, targets Targets) (string, bool) {
	if len(days) < 5 {
		return "", false
	}
	below := 0
	for _, day := range days {
		if day.ProteinG < targets.ProteinG*0.85 {
			below++
		}
	}
	if below < 4 {
		return "", false
	}
	return "Protein has come in well under target on most tracked days.", true
}

func highConsistency(days []DailySnapshot) (string, bool) {
	if len(days) < 5 {
		return "", false
	}
	hit := 0
	for _, day := range days {
		if day.HitBothTargets {
			hit++
		}
	}
	if hit < 5 {
		return "", false
	}
	return fmt.Sprintf("Hit both calorie and protein targets on %d/%d tracked days; excellent consistency.", hit, len(days)), true
}

func workoutDayProteinDeficit(days []DailySnapshot, targets Targets) (string, bool) {
	var sum float64
	count := 0
	for _, day := range days {
		if len(day.Workouts) == 0 {
			continue
		}
		sum += day.ProteinG
		count++
	}
	if count < 2 {
		return "", false
	}
	avg := sum / float64(count)
	if avg >= targets.ProteinG*0.9 {
		return "", false
	}
	return fmt.Sprintf("Protein on workout days averages %dg, short of target on the days it matters most.", int(math.Round(avg))), true
}
