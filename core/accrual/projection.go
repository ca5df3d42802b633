package accrual

import (
	"github.com/shopspring/decimal"

	"github.com/akiba-app/akiba/core"
)

// DaysRemaining returns the whole days from today to the class end date,
// floored at 0.
func (e *Engine) DaysRemaining() int {
	days := core.DaysBetween(e.today, e.endDate)
	if days < 0 {
		return 0
	}
	return days
}

// ProjectedFinalBalance estimates the balance at the class end date assuming
// the currently effective rate holds from today through the end date, with no
// further deposits. When today is already on or past the end date it returns
// the historical balance at the end date (zero-length projection).
func (e *Engine) ProjectedFinalBalance() (decimal.Decimal, error) {
	if e.ledger.Empty() {
		return decimal.Zero, nil
	}
	if !e.today.Before(e.endDate) {
		return e.BalanceAt(e.endDate)
	}
	balance, err := e.BalanceAt(e.today)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return e.projectForward(balance)
}

// projectForward compounds balance day by day from today+1 through the class
// end date at the constant current rate. No new principal is added: it is a
// projection, not a forecast of future deposits.
func (e *Engine) projectForward(balance decimal.Decimal) (decimal.Decimal, error) {
	rate, err := e.schedule.CurrentRate(e.today)
	if err != nil {
		return decimal.Decimal{}, err
	}
	factor, err := e.dailyFactor(rate)
	if err != nil {
		return decimal.Decimal{}, err
	}
	for day := core.NextDay(e.today); !day.After(e.endDate); day = core.NextDay(day) {
		balance = balance.Mul(factor)
		if balance.GreaterThan(e.cap) {
			return decimal.Decimal{}, ErrArithmeticOverflow
		}
	}
	return balance, nil
}
