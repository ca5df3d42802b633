package class

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Class struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	EndDate   time.Time `json:"end_date"`  // civil date; last day of the investment game
	Timezone  string    `json:"timezone"`  // IANA name; defines the end-of-day boundary
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Location resolves the class's IANA timezone.
func (c Class) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "loading class %s timezone %q", c.ID, c.Timezone)
	}
	return loc, nil
}

// RatePeriod is one entry in a class's piecewise-constant interest schedule:
// MonthlyRate is in force from EffectiveDate until superseded by a later period.
type RatePeriod struct {
	ID            uuid.UUID       `json:"id"`
	ClassID       uuid.UUID       `json:"class_id"`
	EffectiveDate time.Time       `json:"effective_date"` // civil date
	MonthlyRate   decimal.Decimal `json:"monthly_rate"`   // fraction, e.g. 0.01 = 1%/month
	CreatedAt     time.Time       `json:"created_at"`
}
