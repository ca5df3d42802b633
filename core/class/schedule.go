package class

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// NoRateError reports a query date that precedes the earliest recorded rate
// period. It is never downgraded to a default rate: guessing a rate would
// produce financially incorrect balances.
type NoRateError struct {
	Date time.Time
}

func (e *NoRateError) Error() string {
	return fmt.Sprintf("no interest rate defined on or before %s", e.Date.Format("2006-01-02"))
}

// RateSchedule is an immutable, sorted view over a class's rate history.
// It answers "which monthly rate was in effect on date D".
type RateSchedule struct {
	periods []RatePeriod
}

// NewRateSchedule builds a schedule from rate periods in any order.
// The sort is stable so that, should two periods ever share an effective date
// (the storage layer forbids it), the later-inserted one wins.
func NewRateSchedule(periods []RatePeriod) RateSchedule {
	ps := make([]RatePeriod, len(periods))
	copy(ps, periods)
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].EffectiveDate.Before(ps[j].EffectiveDate)
	})
	return RateSchedule{periods: ps}
}

func (s RateSchedule) Empty() bool {
	return len(s.periods) == 0
}

// Periods returns the ascending rate history. Callers must not mutate it.
func (s RateSchedule) Periods() []RatePeriod {
	return s.periods
}

// RateOn returns the monthly rate of the period with the greatest
// EffectiveDate <= date.
func (s RateSchedule) RateOn(date time.Time) (decimal.Decimal, error) {
	// reverse scan: on duplicate effective dates the later-inserted period wins
	for i := len(s.periods) - 1; i >= 0; i-- {
		if !s.periods[i].EffectiveDate.After(date) {
			return s.periods[i].MonthlyRate, nil
		}
	}
	return decimal.Decimal{}, &NoRateError{Date: date}
}

// CurrentRate returns the rate in effect today.
func (s RateSchedule) CurrentRate(today time.Time) (decimal.Decimal, error) {
	return s.RateOn(today)
}

// ChangesWithin returns all periods with start <= EffectiveDate <= end,
// ascending. Used for chart markers only; balance computation looks rates up
// per day via RateOn.
func (s RateSchedule) ChangesWithin(start, end time.Time) []RatePeriod {
	var changes []RatePeriod
	for _, p := range s.periods {
		if p.EffectiveDate.Before(start) || p.EffectiveDate.After(end) {
			continue
		}
		changes = append(changes, p)
	}
	return changes
}
