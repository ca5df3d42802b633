package sampledb

import (
	"context"

	"github.com/google/uuid"

	"github.com/akiba-app/akiba/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) GetStudent(_ context.Context, id uuid.UUID) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if std, ok := repo.db.table[id]; ok {
		return *std, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) GetDeposits(_ context.Context, studentID uuid.UUID) ([]student.Deposit, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	// seeded ascending by date; copy so callers cannot mutate the table
	return append([]student.Deposit(nil), repo.db.deposits[studentID]...), nil
}
