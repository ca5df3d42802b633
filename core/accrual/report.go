package accrual

import (
	"github.com/shopspring/decimal"
)

// Report is the plain data structure handed to the presentation layer.
type Report struct {
	CurrentBalance        decimal.Decimal    `json:"current_balance"`
	TotalGainPercent      decimal.Decimal    `json:"total_gain_percent"`
	ProjectedFinalBalance decimal.Decimal    `json:"projected_final_balance"`
	DaysRemaining         int                `json:"days_remaining"`
	DailySeries           []Point            `json:"daily_series"`
	InvestmentMarkers     []InvestmentMarker `json:"investment_markers"`
	RateChangeMarkers     []RateChangeMarker `json:"rate_change_markers"`
}

// Report assembles the full payload from a single series pass: the current
// balance, gain and projection all reuse the balance already computed at the
// window's last day instead of re-running the recurrence.
func (e *Engine) Report() (Report, error) {
	rep := Report{
		CurrentBalance:        decimal.Zero,
		TotalGainPercent:      decimal.Zero,
		ProjectedFinalBalance: decimal.Zero,
		DaysRemaining:         e.DaysRemaining(),
	}

	series, err := e.DailySeries()
	if err != nil {
		return Report{}, err
	}
	rep.DailySeries = series.Points
	rep.InvestmentMarkers = series.Investments
	rep.RateChangeMarkers = series.RateChanges

	_, end, ok := e.Window()
	if !ok {
		// empty ledger or inverted window: everything stays zero except a
		// possible projection from a not-yet-started ledger
		if !e.ledger.Empty() {
			if rep.ProjectedFinalBalance, err = e.ProjectedFinalBalance(); err != nil {
				return Report{}, err
			}
		}
		return rep, nil
	}

	current := series.Points[len(series.Points)-1].Balance
	rep.CurrentBalance = current

	if principal := e.ledger.PrincipalAt(end); !principal.IsZero() {
		rep.TotalGainPercent = current.Sub(principal).Div(principal).Mul(hundred)
	}

	// `current` is the balance at min(today, end date), which is exactly the
	// projection base in both branches
	if e.today.Before(e.endDate) {
		if rep.ProjectedFinalBalance, err = e.projectForward(current); err != nil {
			return Report{}, err
		}
	} else {
		rep.ProjectedFinalBalance = current
	}
	return rep, nil
}
