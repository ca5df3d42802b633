package student

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akiba-app/akiba/core"
)

func date(s string) time.Time {
	d, err := core.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dep(day, amount string) Deposit {
	return Deposit{
		ID:     uuid.New(),
		Date:   date(day),
		Amount: decimal.RequireFromString(amount),
	}
}

func TestLedger_ordering(t *testing.T) {
	// ascending by date; same-day deposits keep insertion order
	first := dep("2025-01-10", "100")
	second := dep("2025-01-10", "200")
	earlier := dep("2025-01-05", "50")

	ledger := NewLedger([]Deposit{first, second, earlier})

	deposits := ledger.Deposits()
	if len(deposits) != 3 {
		t.Fatalf("len(Deposits()) = %d, want 3", len(deposits))
	}
	if deposits[0].ID != earlier.ID {
		t.Errorf("deposits[0] = %s, want the earliest-dated deposit", deposits[0].ID)
	}
	if deposits[1].ID != first.ID || deposits[2].ID != second.ID {
		t.Error("same-day deposits lost their insertion order")
	}
}

func TestLedger_FirstDepositDate(t *testing.T) {
	if _, ok := NewLedger(nil).FirstDepositDate(); ok {
		t.Error("FirstDepositDate() on empty ledger: ok = true, want false")
	}

	ledger := NewLedger([]Deposit{dep("2025-02-01", "10"), dep("2025-01-15", "20")})
	got, ok := ledger.FirstDepositDate()
	if !ok {
		t.Fatal("FirstDepositDate(): ok = false, want true")
	}
	if want := date("2025-01-15"); !got.Equal(want) {
		t.Errorf("FirstDepositDate() = %s, want %s", got, want)
	}
}

func TestLedger_DepositsUpTo(t *testing.T) {
	ledger := NewLedger([]Deposit{
		dep("2025-01-05", "100"),
		dep("2025-01-10", "200"),
		dep("2025-01-20", "300"),
	})

	tests := []struct {
		name string
		date string
		want int
	}{
		{name: "before any deposit", date: "2025-01-01", want: 0},
		{name: "on a deposit date is inclusive", date: "2025-01-10", want: 2},
		{name: "between deposits", date: "2025-01-15", want: 2},
		{name: "after all deposits", date: "2025-06-01", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ledger.DepositsUpTo(date(tt.date)); len(got) != tt.want {
				t.Errorf("DepositsUpTo(%s) returned %d deposits, want %d", tt.date, len(got), tt.want)
			}
		})
	}
}

func TestLedger_PrincipalAt(t *testing.T) {
	ledger := NewLedger([]Deposit{
		dep("2025-01-05", "100.50"),
		dep("2025-01-10", "200"),
		dep("2025-01-10", "49.50"),
	})

	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "zero before first deposit", date: "2025-01-04", want: "0"},
		{name: "first deposit day", date: "2025-01-05", want: "100.50"},
		{name: "same-day deposits sum together", date: "2025-01-10", want: "350"},
		{name: "constant after last deposit", date: "2025-12-31", want: "350"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.PrincipalAt(date(tt.date))
			if want := decimal.RequireFromString(tt.want); !got.Equal(want) {
				t.Errorf("PrincipalAt(%s) = %s, want %s", tt.date, got, want)
			}
		})
	}

	if got, want := ledger.TotalPrincipal(), decimal.RequireFromString("350"); !got.Equal(want) {
		t.Errorf("TotalPrincipal() = %s, want %s", got, want)
	}
}

func TestLedger_empty(t *testing.T) {
	ledger := NewLedger(nil)
	if !ledger.Empty() {
		t.Error("Empty() = false, want true")
	}
	if !ledger.PrincipalAt(date("2025-01-01")).IsZero() {
		t.Error("PrincipalAt() on empty ledger must be zero")
	}
	if !ledger.TotalPrincipal().IsZero() {
		t.Error("TotalPrincipal() on empty ledger must be zero")
	}
}
