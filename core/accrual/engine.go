// Package accrual implements the historical interest-accrual engine: given a
// student's cash-flow ledger and a class's rate schedule, it computes the
// balance at any date by compounding daily with whichever monthly rate was in
// effect on each elapsed day.
//
// The engine is purely computational: it performs no I/O, holds no state
// across calls and may be used concurrently. Fetching the ledger and schedule
// (and reading the clock) is the calling layer's job; see Service.
package accrual

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akiba-app/akiba/core"
	"github.com/akiba-app/akiba/core/class"
	"github.com/akiba-app/akiba/core/student"
)

// monthDays is the fixed day count used to derive a daily rate from a monthly
// one: d_r = (1+r)^(1/30) - 1. A "month" is exactly 30 days for this
// conversion; calendar-month lengths are deliberately ignored.
const monthDays = 30

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)

	// defaultBalanceCap bounds computed balances; a pathological rate or an
	// extremely long window surfaces as ErrArithmeticOverflow instead of a
	// nonsense number.
	defaultBalanceCap = decimal.New(1, 15) // 1e15
)

// Engine computes balances over one immutable (ledger, schedule, today)
// snapshot. "today" is fixed at construction so a query can never straddle
// midnight and see two different values of it.
type Engine struct {
	ledger   student.Ledger
	schedule class.RateSchedule
	endDate  time.Time // class end date, civil
	today    time.Time // civil date, read once per query
	cap      decimal.Decimal

	// daily compounding factors per distinct monthly rate, valid for this
	// engine instance only
	factors map[string]decimal.Decimal
}

type Option func(*Engine)

func WithBalanceCap(cap decimal.Decimal) Option {
	return func(e *Engine) { e.cap = cap }
}

func NewEngine(ledger student.Ledger, schedule class.RateSchedule, classEnd, today time.Time, opts ...Option) *Engine {
	e := &Engine{
		ledger:   ledger,
		schedule: schedule,
		endDate:  classEnd,
		today:    today,
		cap:      defaultBalanceCap,
		factors:  make(map[string]decimal.Decimal),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// dailyFactor returns 1 + d_r for a monthly rate, memoized per rate so two
// identical queries compound with bit-identical factors.
func (e *Engine) dailyFactor(monthlyRate decimal.Decimal) (decimal.Decimal, error) {
	key := monthlyRate.String()
	if f, ok := e.factors[key]; ok {
		return f, nil
	}
	r, _ := monthlyRate.Float64()
	root := math.Pow(1+r, 1.0/monthDays)
	if math.IsNaN(root) || math.IsInf(root, 0) {
		return decimal.Decimal{}, ErrArithmeticOverflow
	}
	factor := decimal.NewFromFloat(root)
	e.factors[key] = factor
	return factor, nil
}

// walk runs the daily compounding recurrence from the first deposit date
// through `to` inclusive, calling visit (when non-nil) with every day's
// closing balance. The rate can change on any day, so the product of per-day
// factors is path-dependent: there is no closed-form shortcut.
func (e *Engine) walk(to time.Time, visit func(day time.Time, balance decimal.Decimal)) (decimal.Decimal, error) {
	start, ok := e.ledger.FirstDepositDate()
	if !ok || to.Before(start) {
		return decimal.Zero, nil
	}

	balance := e.ledger.PrincipalAt(start)
	prevPrincipal := balance
	if visit != nil {
		visit(start, balance)
	}

	for day := core.NextDay(start); !day.After(to); day = core.NextDay(day) {
		// the factor applied overnight is the rate effective on the day
		// that just elapsed
		rate, err := e.schedule.RateOn(core.PrevDay(day))
		if err != nil {
			return decimal.Decimal{}, err
		}
		factor, err := e.dailyFactor(rate)
		if err != nil {
			return decimal.Decimal{}, err
		}

		// compound first, then add the day's fresh principal: deposits
		// made on `day` earn no interest for `day` itself
		principal := e.ledger.PrincipalAt(day)
		balance = balance.Mul(factor).Add(principal.Sub(prevPrincipal))
		prevPrincipal = principal

		if balance.GreaterThan(e.cap) {
			return decimal.Decimal{}, ErrArithmeticOverflow
		}
		if visit != nil {
			visit(day, balance)
		}
	}
	return balance, nil
}

// BalanceAt returns the account balance at the end of the given civil date.
// Dates before the first deposit (and any date on an empty ledger) yield zero.
func (e *Engine) BalanceAt(date time.Time) (decimal.Decimal, error) {
	return e.walk(date, nil)
}

// TotalPrincipalAt returns the sum of deposits received on or before date.
func (e *Engine) TotalPrincipalAt(date time.Time) decimal.Decimal {
	return e.ledger.PrincipalAt(date)
}

// TotalGainPercent returns (balance - principal) / principal * 100 at the
// given date; zero when no principal has been deposited yet.
func (e *Engine) TotalGainPercent(date time.Time) (decimal.Decimal, error) {
	principal := e.ledger.PrincipalAt(date)
	if principal.IsZero() {
		return decimal.Zero, nil
	}
	balance, err := e.BalanceAt(date)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return balance.Sub(principal).Div(principal).Mul(hundred), nil
}

// Window returns the accrual window [first deposit, min(today, class end)].
// ok is false for an empty ledger or an inverted window (class ended before
// any deposit existed) - both legitimate zero-value states, not errors.
func (e *Engine) Window() (start, end time.Time, ok bool) {
	start, ok = e.ledger.FirstDepositDate()
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end = core.MinDate(e.today, e.endDate)
	if end.Before(start) {
		return start, end, false
	}
	return start, end, true
}
