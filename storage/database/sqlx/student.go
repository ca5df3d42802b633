package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/akiba-app/akiba/core"
	"github.com/akiba-app/akiba/core/student"
)

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) student.Repository {
	return &studentRepository{db: db}
}

type studentRow struct {
	ID        uuid.UUID `db:"id"`
	ClassID   uuid.UUID `db:"class_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r studentRow) toCore() student.Student {
	return student.Student{
		ID:        r.ID,
		ClassID:   r.ClassID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type depositRow struct {
	ID        uuid.UUID       `db:"id"`
	StudentID uuid.UUID       `db:"student_id"`
	Date      time.Time       `db:"date"`
	Amount    decimal.Decimal `db:"amount"`
	Note      null.String     `db:"note"`
	CreatedAt time.Time       `db:"created_at"`
}

func (r depositRow) toCore() student.Deposit {
	return student.Deposit{
		ID:        r.ID,
		StudentID: r.StudentID,
		Date:      core.DateOf(r.Date, time.UTC),
		Amount:    r.Amount,
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
	}
}

func (repo *studentRepository) GetStudent(ctx context.Context, id uuid.UUID) (student.Student, error) {
	q := `SELECT id, class_id, name, created_at, updated_at FROM student WHERE id = $1`

	var row studentRow
	if err := repo.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, errors.Wrap(err, "getting student")
	}
	return row.toCore(), nil
}

func (repo *studentRepository) GetDeposits(ctx context.Context, studentID uuid.UUID) ([]student.Deposit, error) {
	// created_at breaks same-day ties: insertion order
	q := `SELECT id, student_id, date, amount, note, created_at
	FROM deposit
	WHERE student_id = $1
	ORDER BY date, created_at`

	var rows []depositRow
	if err := repo.db.SelectContext(ctx, &rows, q, studentID); err != nil {
		return nil, errors.Wrap(err, "querying deposits")
	}

	deposits := make([]student.Deposit, len(rows))
	for i, r := range rows {
		deposits[i] = r.toCore()
	}
	return deposits, nil
}
