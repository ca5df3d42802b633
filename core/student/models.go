package student

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

type Student struct {
	ID        uuid.UUID `json:"id"`
	ClassID   uuid.UUID `json:"class_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Deposit is a single cash-flow event: immutable once recorded.
// Multiple deposits may share a date; insertion order breaks ties.
type Deposit struct {
	ID        uuid.UUID       `json:"id"`
	StudentID uuid.UUID       `json:"student_id"`
	Date      time.Time       `json:"date"`   // civil date
	Amount    decimal.Decimal `json:"amount"` // non-negative
	Note      null.String     `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
