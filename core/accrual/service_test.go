package accrual

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/akiba-app/akiba/core"
	"github.com/akiba-app/akiba/core/class"
	"github.com/akiba-app/akiba/core/student"
	testutil "github.com/akiba-app/akiba/tests"
)

type stubStudentRepo struct {
	student  student.Student
	deposits []student.Deposit
}

func (r stubStudentRepo) GetStudent(_ context.Context, id uuid.UUID) (student.Student, error) {
	if id != r.student.ID {
		return student.Student{}, student.ErrNotFound
	}
	return r.student, nil
}

func (r stubStudentRepo) GetDeposits(context.Context, uuid.UUID) ([]student.Deposit, error) {
	return r.deposits, nil
}

type stubClassRepo struct {
	class   class.Class
	periods []class.RatePeriod
}

func (r stubClassRepo) GetClass(_ context.Context, id uuid.UUID) (class.Class, error) {
	if id != r.class.ID {
		return class.Class{}, class.ErrNotFound
	}
	return r.class, nil
}

func (r stubClassRepo) GetRatePeriods(context.Context, uuid.UUID) ([]class.RatePeriod, error) {
	return r.periods, nil
}

func newStubService(t *testing.T, clock core.Clock) (*Service, uuid.UUID) {
	classID, studentID := uuid.New(), uuid.New()

	stuSvc := student.NewService(stubStudentRepo{
		student: student.Student{ID: studentID, ClassID: classID, Name: "Amina Juma"},
		deposits: []student.Deposit{
			testutil.Deposit(t, studentID, "2026-01-12", "20000"),
			testutil.Deposit(t, studentID, "2026-02-09", "15000"),
		},
	})
	clsSvc := class.NewService(stubClassRepo{
		class: class.Class{
			ID:       classID,
			Name:     "Form 2 Akiba Club",
			EndDate:  testutil.Date(t, "2026-12-18"),
			Timezone: "Africa/Dar_es_Salaam",
		},
		periods: []class.RatePeriod{
			testutil.RatePeriod(t, classID, "2026-01-05", "0.01"),
		},
	})
	return NewService(stuSvc, clsSvc, clock, nil), studentID
}

func TestService_StudentPortfolio_classTimezoneBoundary(t *testing.T) {
	// 21:30 UTC is already past midnight in Dar es Salaam (UTC+3): "today"
	// follows the class timezone, not UTC
	clock := core.FixedClock{T: time.Date(2026, 3, 1, 21, 30, 0, 0, time.UTC)}
	svc, studentID := newStubService(t, clock)

	rep, err := svc.StudentPortfolio(context.Background(), studentID)
	if err != nil {
		t.Fatalf("StudentPortfolio() failed: %v", err)
	}
	last := rep.DailySeries[len(rep.DailySeries)-1].Date
	if want := testutil.Date(t, "2026-03-02"); !last.Equal(want) {
		t.Errorf("series ends %s, want %s", last, want)
	}
}

func TestService_StudentPortfolioAt(t *testing.T) {
	svc, studentID := newStubService(t, testutil.FrozenClock(t, "2026-06-01"))

	rep, err := svc.StudentPortfolioAt(context.Background(), studentID, testutil.Date(t, "2026-02-01"))
	if err != nil {
		t.Fatalf("StudentPortfolioAt() failed: %v", err)
	}
	last := rep.DailySeries[len(rep.DailySeries)-1].Date
	if want := testutil.Date(t, "2026-02-01"); !last.Equal(want) {
		t.Errorf("series ends %s, want as-of date %s", last, want)
	}
	if len(rep.InvestmentMarkers) != 1 {
		t.Errorf("len(InvestmentMarkers) = %d, want only the deposit made by then", len(rep.InvestmentMarkers))
	}
}

func TestService_StudentPortfolio_notFound(t *testing.T) {
	svc, _ := newStubService(t, testutil.FrozenClock(t, "2026-06-01"))

	if _, err := svc.StudentPortfolio(context.Background(), uuid.New()); err != student.ErrNotFound {
		t.Errorf("StudentPortfolio() error = %v, want %v", err, student.ErrNotFound)
	}
}
