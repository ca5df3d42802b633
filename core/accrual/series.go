package accrual

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akiba-app/akiba/core"
)

type (
	// Point is one day's closing balance.
	Point struct {
		Date    time.Time       `json:"date"`
		Balance decimal.Decimal `json:"balance"`
	}

	// InvestmentMarker flags a deposit on the chart; Balance is the balance
	// as of and including that day's deposit.
	InvestmentMarker struct {
		Date    time.Time       `json:"date"`
		Balance decimal.Decimal `json:"balance"`
	}

	// RateChangeMarker flags a rate change on the chart. It only echoes the
	// rate period for display; the recurrence already looks rates up per day.
	RateChangeMarker struct {
		Date time.Time       `json:"date"`
		Rate decimal.Decimal `json:"rate"`
	}

	// BalanceSeries is the daily balance curve over the accrual window plus
	// its event markers. Derived output: recomputed per query, never stored.
	BalanceSeries struct {
		Points      []Point            `json:"points"`
		Investments []InvestmentMarker `json:"investments"`
		RateChanges []RateChangeMarker `json:"rate_changes"`
	}
)

// DailySeries runs the recurrence once over the accrual window and derives
// every marker from that single pass.
func (e *Engine) DailySeries() (BalanceSeries, error) {
	var series BalanceSeries
	start, end, ok := e.Window()
	if !ok {
		return series, nil
	}

	byDate := make(map[time.Time]decimal.Decimal, core.DaysBetween(start, end)+1)
	series.Points = make([]Point, 0, core.DaysBetween(start, end)+1)
	if _, err := e.walk(end, func(day time.Time, balance decimal.Decimal) {
		series.Points = append(series.Points, Point{Date: day, Balance: balance})
		byDate[day] = balance
	}); err != nil {
		return BalanceSeries{}, err
	}

	for _, dep := range e.ledger.DepositsUpTo(end) {
		series.Investments = append(series.Investments, InvestmentMarker{
			Date:    dep.Date,
			Balance: byDate[dep.Date],
		})
	}
	for _, p := range e.schedule.ChangesWithin(start, end) {
		series.RateChanges = append(series.RateChanges, RateChangeMarker{
			Date: p.EffectiveDate,
			Rate: p.MonthlyRate,
		})
	}
	return series, nil
}
