package paymentservice

import "time"

// Compensation constants for support-escalated stuck payments: +20% per
// full 24h period waited, plus a goodwill bonus that starts at 30% and
// decays 5% per period, floored at zero. The two accrue independently and
// are summed, never compounded.
const (
	bonusPeriod = 24 * time.Hour

	delayCompensationPerPeriod = 20.0
	genuineEffortStart         = 30.0
	genuineEffortDecayPerStep  = 5.0
)

// fullPeriods counts complete 24h periods between flaggedAt and now.
// Exactly 24h elapsed counts as one period; partial periods do not count.
func fullPeriods(flaggedAt, now time.Time) int {
	elapsed := now.Sub(flaggedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / bonusPeriod)
}

func DelayCompensationPercent(flaggedAt, now time.Time) float64 {
	return float64(fullPeriods(flaggedAt, now)) * delayCompensationPerPeriod
}

func GenuineEffortPercent(flaggedAt, now time.Time) float64 {
	bonus := genuineEffortStart - genuineEffortDecayPerStep*float64(fullPeriods(flaggedAt, now))
	if bonus < 0 {
		return 0
	}
	return bonus
}

func TotalBonusPercent(flaggedAt, now time.Time) float64 {
	return DelayCompensationPercent(flaggedAt, now) + GenuineEffortPercent(flaggedAt, now)
}
