package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/akiba-app/akiba/core"
	"github.com/akiba-app/akiba/core/class"
)

type classRepository struct {
	db *sqlx.DB
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *sqlx.DB) class.Repository {
	return &classRepository{db: db}
}

type classRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	EndDate   time.Time `db:"end_date"`
	Timezone  string    `db:"timezone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r classRow) toCore() class.Class {
	return class.Class{
		ID:        r.ID,
		Name:      r.Name,
		EndDate:   core.DateOf(r.EndDate, time.UTC),
		Timezone:  r.Timezone,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type ratePeriodRow struct {
	ID            uuid.UUID       `db:"id"`
	ClassID       uuid.UUID       `db:"class_id"`
	EffectiveDate time.Time       `db:"effective_date"`
	MonthlyRate   decimal.Decimal `db:"monthly_rate"`
	CreatedAt     time.Time       `db:"created_at"`
}

func (r ratePeriodRow) toCore() class.RatePeriod {
	return class.RatePeriod{
		ID:            r.ID,
		ClassID:       r.ClassID,
		EffectiveDate: core.DateOf(r.EffectiveDate, time.UTC),
		MonthlyRate:   r.MonthlyRate,
		CreatedAt:     r.CreatedAt,
	}
}

func (repo *classRepository) GetClass(ctx context.Context, id uuid.UUID) (class.Class, error) {
	q := `SELECT id, name, end_date, timezone, created_at, updated_at FROM class WHERE id = $1`

	var row classRow
	if err := repo.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return class.Class{}, class.ErrNotFound
		}
		return class.Class{}, errors.Wrap(err, "getting class")
	}
	return row.toCore(), nil
}

func (repo *classRepository) GetRatePeriods(ctx context.Context, classID uuid.UUID) ([]class.RatePeriod, error) {
	q := `SELECT id, class_id, effective_date, monthly_rate, created_at
	FROM rate_period
	WHERE class_id = $1
	ORDER BY effective_date, created_at`

	var rows []ratePeriodRow
	if err := repo.db.SelectContext(ctx, &rows, q, classID); err != nil {
		return nil, errors.Wrap(err, "querying rate periods")
	}

	periods := make([]class.RatePeriod, len(rows))
	for i, r := range rows {
		periods[i] = r.toCore()
	}
	return periods, nil
}
