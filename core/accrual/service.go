package accrual

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akiba-app/akiba/core"
	"github.com/akiba-app/akiba/core/class"
	"github.com/akiba-app/akiba/core/student"
)

// Service is the I/O-performing caller around the pure engine: it fetches the
// ledger and schedule snapshots, reads the clock once, resolves the class
// timezone and hands the engine fixed civil dates.
type Service struct {
	students *student.Service
	classes  *class.Service
	clock    core.Clock
	cap      decimal.Decimal
}

func NewService(students *student.Service, classes *class.Service, clock core.Clock, conf *core.Config) *Service {
	cap := defaultBalanceCap
	if conf != nil && conf.Accrual.BalanceCap > 0 {
		cap = decimal.NewFromFloat(conf.Accrual.BalanceCap)
	}
	return &Service{students: students, classes: classes, clock: clock, cap: cap}
}

// StudentPortfolio computes the portfolio report for a student as of now.
func (svc *Service) StudentPortfolio(ctx context.Context, studentID uuid.UUID) (Report, error) {
	return svc.portfolio(ctx, studentID, nil)
}

// StudentPortfolioAt computes the report as if "today" were the given civil
// date - a historical view of the account.
func (svc *Service) StudentPortfolioAt(ctx context.Context, studentID uuid.UUID, asOf time.Time) (Report, error) {
	return svc.portfolio(ctx, studentID, &asOf)
}

func (svc *Service) portfolio(ctx context.Context, studentID uuid.UUID, asOf *time.Time) (Report, error) {
	stu, err := svc.students.GetByID(ctx, studentID)
	if err != nil {
		return Report{}, err
	}
	cls, err := svc.classes.GetByID(ctx, stu.ClassID)
	if err != nil {
		return Report{}, err
	}
	ledger, err := svc.students.GetLedger(ctx, stu.ID)
	if err != nil {
		return Report{}, err
	}
	schedule, err := svc.classes.GetSchedule(ctx, cls.ID)
	if err != nil {
		return Report{}, err
	}

	loc, err := cls.Location()
	if err != nil {
		return Report{}, err
	}
	// single clock reading per query; the engine never re-samples it
	today := core.DateOf(svc.clock.Now(), loc)
	if asOf != nil {
		today = *asOf
	}
	endDate := core.DateOf(cls.EndDate, time.UTC)

	eng := NewEngine(ledger, schedule, endDate, today, WithBalanceCap(svc.cap))
	return eng.Report()
}
