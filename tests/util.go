package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akiba-app/akiba/core"
	"github.com/akiba-app/akiba/core/class"
	"github.com/akiba-app/akiba/core/student"
)

func Date(t *testing.T, day string) time.Time {
	d, err := core.ParseDate(day)
	if err != nil {
		t.Fatalf("Date(%s) failed: %v", day, err)
	}
	return d
}

// FrozenClock reports noon UTC on the given day, forever.
func FrozenClock(t *testing.T, day string) core.FixedClock {
	return core.FixedClock{T: Date(t, day).Add(12 * time.Hour)}
}

func Deposit(t *testing.T, studentID uuid.UUID, day, amount string) student.Deposit {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("Deposit(%s) failed: %v", amount, err)
	}
	return student.Deposit{
		ID:        uuid.New(),
		StudentID: studentID,
		Date:      Date(t, day),
		Amount:    amt,
		CreatedAt: time.Now().UTC(),
	}
}

func RatePeriod(t *testing.T, classID uuid.UUID, day, monthlyRate string) class.RatePeriod {
	rate, err := decimal.NewFromString(monthlyRate)
	if err != nil {
		t.Fatalf("RatePeriod(%s) failed: %v", monthlyRate, err)
	}
	return class.RatePeriod{
		ID:            uuid.New(),
		ClassID:       classID,
		EffectiveDate: Date(t, day),
		MonthlyRate:   rate,
		CreatedAt:     time.Now().UTC(),
	}
}
