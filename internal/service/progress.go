package service

// ProgressState classifies today's live momentum for coaching tone.
type ProgressState string

const (
	ProgressVictory    ProgressState = "victory"
	ProgressAlmost     ProgressState = "almost"
	ProgressOnTrack    ProgressState = "on-track"
	ProgressStruggling ProgressState = "struggling"
	ProgressFreshStart ProgressState = "fresh-start"
)

// ClassifyProgress maps today's live totals and the local hour (0-23) onto
// one of five states, first match wins. It uses plain percentage-of-target
// thresholds, not the streak or coaching tolerance bands, and must be
// re-evaluated on every totals change.
func ClassifyProgress(calories int, proteinG float64, targets Targets, hour int) ProgressState {
	if targets.Calories <= 0 || targets.ProteinG <= 0 {
		return ProgressOnTrack
	}

	calPct := float64(calories) / float64(targets.Calories)
	protPct := proteinG / targets.ProteinG

	switch {
	case calPct >= 1 && protPct >= 1:
		return ProgressVictory
	case (calPct >= 0.8 && protPct >= 0.8) ||
		(calPct >= 1 && protPct >= 0.7) ||
		(protPct >= 1 && calPct >= 0.7):
		return ProgressAlmost
	case hour < 12 && calPct < 0.2:
		return ProgressFreshStart
	case hour >= 18 && (calPct < 0.4 || protPct < 0.4):
		return ProgressStruggling
	default:
		return ProgressOnTrack
	}
}
