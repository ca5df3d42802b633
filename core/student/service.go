package student

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// errors
	ErrNotFound = errors.New("student not found")
)

type (
	Repository interface {
		GetStudent(ctx context.Context, id uuid.UUID) (Student, error)
		// GetDeposits returns a student's deposits ascending by date,
		// insertion order preserved on equal dates.
		GetDeposits(ctx context.Context, studentID uuid.UUID) ([]Deposit, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetByID(ctx context.Context, id uuid.UUID) (Student, error) {
	return svc.repo.GetStudent(ctx, id)
}

// GetLedger returns the student's cash-flow history as an immutable snapshot.
func (svc *Service) GetLedger(ctx context.Context, studentID uuid.UUID) (Ledger, error) {
	deposits, err := svc.repo.GetDeposits(ctx, studentID)
	if err != nil {
		return Ledger{}, err
	}
	return NewLedger(deposits), nil
}
