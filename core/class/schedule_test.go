package class

import (
	"errors"
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

func period(day, rate string) RatePeriod {
	return RatePeriod{
		ID:            uuid.New(),
		EffectiveDate: date(day),
		MonthlyRate:   decimal.RequireFromString(rate),
	}
}

func TestRateSchedule_RateOn(t *testing.T) {
	sched := NewRateSchedule([]RatePeriod{
		period("2025-03-01", "0.02"), // out of order on purpose
		period("2025-01-01", "0.01"),
		period("2025-02-01", "0.015"),
	})

	tests := []struct {
		name    string
		date    string
		want    string
		wantErr bool
	}{
		{name: "before earliest period", date: "2024-12-31", wantErr: true},
		{name: "on first effective date", date: "2025-01-01", want: "0.01"},
		{name: "inside first period", date: "2025-01-20", want: "0.01"},
		{name: "on a change date the new rate applies", date: "2025-02-01", want: "0.015"},
		{name: "inside middle period", date: "2025-02-15", want: "0.015"},
		{name: "after last change", date: "2025-12-31", want: "0.02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := sched.RateOn(date(tt.date))
			if tt.wantErr {
				var nre *NoRateError
				if !errors.As(err, &nre) {
					t.Fatalf("RateOn() error = %v, want *NoRateError", err)
				}
				if !nre.Date.Equal(date(tt.date)) {
					t.Errorf("NoRateError.Date = %s, want %s", nre.Date, tt.date)
				}
				return
			}
			if err != nil {
				t.Fatalf("RateOn() failed: %v", err)
			}
			if want := decimal.RequireFromString(tt.want); !rate.Equal(want) {
				t.Errorf("RateOn(%s) = %s, want %s", tt.date, rate, want)
			}
		})
	}
}

func TestRateSchedule_RateOn_duplicateEffectiveDate(t *testing.T) {
	// should not happen per the storage invariant; when it does, the
	// later-inserted period wins
	sched := NewRateSchedule([]RatePeriod{
		period("2025-01-01", "0.01"),
		period("2025-01-01", "0.03"),
	})

	rate, err := sched.RateOn(date("2025-01-15"))
	if err != nil {
		t.Fatalf("RateOn() failed: %v", err)
	}
	if want := decimal.RequireFromString("0.03"); !rate.Equal(want) {
		t.Errorf("RateOn() = %s, want later-inserted %s", rate, want)
	}
}

func TestRateSchedule_CurrentRate(t *testing.T) {
	sched := NewRateSchedule([]RatePeriod{
		period("2025-01-01", "0.01"),
		period("2025-02-01", "0.015"),
	})

	today := date("2025-02-10")
	current, err := sched.CurrentRate(today)
	if err != nil {
		t.Fatalf("CurrentRate() failed: %v", err)
	}
	on, err := sched.RateOn(today)
	if err != nil {
		t.Fatalf("RateOn() failed: %v", err)
	}
	if !current.Equal(on) {
		t.Errorf("CurrentRate() = %s, want RateOn(today) = %s", current, on)
	}
}

func TestRateSchedule_ChangesWithin(t *testing.T) {
	sched := NewRateSchedule([]RatePeriod{
		period("2025-01-01", "0.01"),
		period("2025-02-01", "0.015"),
		period("2025-03-01", "0.02"),
		period("2025-04-01", "0.025"),
	})

	tests := []struct {
		name       string
		start, end string
		wantDates  []string
	}{
		{name: "inclusive bounds", start: "2025-02-01", end: "2025-03-01", wantDates: []string{"2025-02-01", "2025-03-01"}},
		{name: "full range", start: "2024-01-01", end: "2026-01-01", wantDates: []string{"2025-01-01", "2025-02-01", "2025-03-01", "2025-04-01"}},
		{name: "no changes inside", start: "2025-03-02", end: "2025-03-31", wantDates: nil},
		{name: "empty window", start: "2025-05-01", end: "2025-04-01", wantDates: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := sched.ChangesWithin(date(tt.start), date(tt.end))
			if len(changes) != len(tt.wantDates) {
				t.Fatalf("ChangesWithin() returned %d periods, want %d", len(changes), len(tt.wantDates))
			}
			for i, want := range tt.wantDates {
				if !changes[i].EffectiveDate.Equal(date(want)) {
					t.Errorf("changes[%d] = %s, want %s", i, changes[i].EffectiveDate, want)
				}
			}
		})
	}
}

func TestRateSchedule_Empty(t *testing.T) {
	sched := NewRateSchedule(nil)
	if !sched.Empty() {
		t.Error("Empty() = false, want true")
	}
	if _, err := sched.RateOn(date("2025-01-01")); err == nil {
		t.Error("RateOn() on empty schedule expected error, got nil")
	}
}
