package service

import "github.com/mdivincenzo/macrocoach/internal/model"

// DayEvaluation is the per-day pass/fail verdict against daily targets.
type DayEvaluation struct {
	HitCalorieTarget bool
	HitProteinTarget bool
	HitBothTargets   bool
}

// Two tolerance schemes coexist on purpose. Streaks use goal-aware calorie
// bands; the weekly consistency counters use a goal-agnostic band. They
// drifted apart in the product and call sites depend on each, so they stay
// separate named evaluators rather than being unified.

// EvaluateStreakDay applies the streak scheme: protein passes at >= 90% of
// target, calories pass inside a band that depends on the goal direction.
// Losing tolerates anything up to 110% of target (under-target is fine),
// gaining anything from 90% up, maintaining requires 90-110%.
func EvaluateStreakDay(totals DayTotals, targets Targets, goal model.Goal) DayEvaluation {
	eval := DayEvaluation{}
	if targets.Calories <= 0 || targets.ProteinG <= 0 {
		return eval
	}

	calories := float64(totals.Calories)
	target := float64(targets.Calories)
	switch goal {
	case model.GoalLose:
		eval.HitCalorieTarget = calories <= target*1.1
	case model.GoalGain:
		eval.HitCalorieTarget = calories >= target*0.9
	default:
		eval.HitCalorieTarget = calories >= target*0.9 && calories <= target*1.1
	}

	eval.HitProteinTarget = totals.ProteinG >= targets.ProteinG*0.9
	eval.HitBothTargets = eval.HitCalorieTarget && eval.HitProteinTarget
	return eval
}

// EvaluateCoachingDay applies the weekly/coaching scheme: calories pass
// inside 90-110% of target regardless of goal, protein at >= 90%.
func EvaluateCoachingDay(totals DayTotals, targets Targets) DayEvaluation {
	eval := DayEvaluation{}
	if targets.Calories <= 0 || targets.ProteinG <= 0 {
		return eval
	}

	calories := float64(totals.Calories)
	target := float64(targets.Calories)
	eval.HitCalorieTarget = calories >= target*0.9 && calories <= target*1.1
	eval.HitProteinTarget = totals.ProteinG >= targets.ProteinG*0.9
	eval.HitBothTargets = eval.HitCalorieTarget && eval.HitProteinTarget
	return eval
}
