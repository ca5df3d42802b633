package student

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger exposes a student's deposits as an ascending-by-date sequence.
// It is a read-only snapshot: the accrual engine never mutates it.
type Ledger struct {
	deposits   []Deposit
	cumulative []decimal.Decimal // running principal through deposits[i]
}

// NewLedger builds a ledger from deposits in any order. The sort is stable,
// so same-day deposits keep their insertion order.
func NewLedger(deposits []Deposit) Ledger {
	ds := make([]Deposit, len(deposits))
	copy(ds, deposits)
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Date.Before(ds[j].Date)
	})

	cum := make([]decimal.Decimal, len(ds))
	total := decimal.Zero
	for i, d := range ds {
		total = total.Add(d.Amount)
		cum[i] = total
	}
	return Ledger{deposits: ds, cumulative: cum}
}

func (l Ledger) Empty() bool {
	return len(l.deposits) == 0
}

// Deposits returns the ascending deposit sequence. Callers must not mutate it.
func (l Ledger) Deposits() []Deposit {
	return l.deposits
}

// FirstDepositDate returns the date of the earliest deposit;
// ok is false for an empty ledger.
func (l Ledger) FirstDepositDate() (time.Time, bool) {
	if l.Empty() {
		return time.Time{}, false
	}
	return l.deposits[0].Date, true
}

// countUpTo returns how many deposits have Date <= date.
func (l Ledger) countUpTo(date time.Time) int {
	return sort.Search(len(l.deposits), func(i int) bool {
		return l.deposits[i].Date.After(date)
	})
}

// DepositsUpTo returns all deposits with Date <= date (inclusive).
func (l Ledger) DepositsUpTo(date time.Time) []Deposit {
	return l.deposits[:l.countUpTo(date)]
}

// PrincipalAt returns the sum of deposit amounts with Date <= date:
// the principal known as of that day. A non-decreasing step function.
func (l Ledger) PrincipalAt(date time.Time) decimal.Decimal {
	n := l.countUpTo(date)
	if n == 0 {
		return decimal.Zero
	}
	return l.cumulative[n-1]
}

// TotalPrincipal returns the sum of all deposit amounts.
func (l Ledger) TotalPrincipal() decimal.Decimal {
	if l.Empty() {
		return decimal.Zero
	}
	return l.cumulative[len(l.cumulative)-1]
}
