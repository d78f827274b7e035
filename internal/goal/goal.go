package goal

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DefaultKey identifies the single savings goal. The goal row is a keyed
// configuration entity: lookups always go through an explicit key and a
// get-or-create, never "first row wins".
const DefaultKey = "default"

// Goal is the user's savings target with its incrementally maintained
// progress state. CurrentAmount is a running projection of recorded income
// since the last reset; Reconcile corrects any drift against the
// transaction history.
type Goal struct {
	ID            uuid.UUID
	Key           string
	TargetAmount  int64 // cents, positive
	CurrentAmount int64 // cents, never negative
	TargetDate    *time.Time
	ResetAt       time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Progress returns the percentage of the target reached. The value is
// deliberately unclamped: more than 100 signals overshoot, display layers
// clamp the visual bar themselves.
func Progress(targetAmount, currentAmount int64) float64 {
	if targetAmount <= 0 {
		return 0
	}

	return float64(currentAmount) / float64(targetAmount) * 100
}

// DeadlineStatus reports whole days remaining until the target date and
// whether the deadline has passed. A partial day still counts as a full
// day, so the count is a ceiling. The reference time is normalized to
// midnight before subtraction.
func DeadlineStatus(targetDate, today time.Time) (daysRemaining int, overdue bool) {
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	days := int(math.Ceil(targetDate.Sub(midnight).Hours() / 24))

	return days, days < 0
}

// RequiredDailyPace returns how much must be saved per day to reach the
// target in the remaining days, rounded up. Zero when the deadline has
// passed or the target is already met; a non-positive day count never
// reaches the division.
func RequiredDailyPace(targetAmount, currentAmount int64, daysRemaining int) int64 {
	if daysRemaining <= 0 {
		return 0
	}

	remaining := targetAmount - currentAmount
	if remaining <= 0 {
		return 0
	}

	days := int64(daysRemaining)

	return (remaining + days - 1) / days
}

// Status bundles the derived progress figures for one goal at a point in
// time. DaysRemaining and DailyPace are nil when no target date is set;
// DailyPace is additionally nil once the deadline has passed.
type Status struct {
	Percent       float64
	DaysRemaining *int
	Overdue       bool
	DailyPace     *int64
}

// Describe computes the full progress status for a goal as of now.
func Describe(g *Goal, now time.Time) Status {
	st := Status{
		Percent: Progress(g.TargetAmount, g.CurrentAmount),
	}

	if g.TargetDate == nil {
		return st
	}

	days, overdue := DeadlineStatus(*g.TargetDate, now)
	st.DaysRemaining = &days
	st.Overdue = overdue

	if days > 0 {
		pace := RequiredDailyPace(g.TargetAmount, g.CurrentAmount, days)
		st.DailyPace = &pace
	}

	return st
}
