package echoapi

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/akiba-app/akiba/core"
)

// AsOfDate binds an optional "at=YYYY-MM-DD" query parameter used to view a
// portfolio as of a past date.
type AsOfDate struct {
	At string `query:"at" json:"at" validate:"omitempty,dateonly"`
}

func (q *AsOfDate) Bind(ctx echo.Context) error {
	if err := ctx.Bind(q); err != nil {
		return err
	}
	q.At = core.CleanString(q.At)
	return nil
}

func (q *AsOfDate) Validate() error {
	return core.Validate.Struct(q)
}

// Date returns the bound civil date; ok is false when the parameter was absent.
func (q *AsOfDate) Date() (time.Time, bool) {
	if q.At == "" {
		return time.Time{}, false
	}
	d, err := core.ParseDate(q.At)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
