package class

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// errors
	ErrNotFound = errors.New("class not found")
)

type (
	Repository interface {
		GetClass(ctx context.Context, id uuid.UUID) (Class, error)
		// GetRatePeriods returns a class's rate history ascending by
		// effective date, insertion order preserved on equal dates.
		GetRatePeriods(ctx context.Context, classID uuid.UUID) ([]RatePeriod, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetByID(ctx context.Context, id uuid.UUID) (Class, error) {
	return svc.repo.GetClass(ctx, id)
}

func (svc *Service) RateHistory(ctx context.Context, classID uuid.UUID) ([]RatePeriod, error) {
	return svc.repo.GetRatePeriods(ctx, classID)
}

// GetSchedule returns the class's rate history as an immutable schedule snapshot.
func (svc *Service) GetSchedule(ctx context.Context, classID uuid.UUID) (RateSchedule, error) {
	periods, err := svc.repo.GetRatePeriods(ctx, classID)
	if err != nil {
		return RateSchedule{}, err
	}
	return NewRateSchedule(periods), nil
}
