package sampledb

import (
	"context"

	"github.com/google/uuid"

	"github.com/akiba-app/akiba/core/class"
)

type classRepository struct {
	db *classTable
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *DB) class.Repository {
	return &classRepository{db: db.class}
}

func (repo *classRepository) GetClass(_ context.Context, id uuid.UUID) (class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if cls, ok := repo.db.table[id]; ok {
		return *cls, nil
	}
	return class.Class{}, class.ErrNotFound
}

func (repo *classRepository) GetRatePeriods(_ context.Context, classID uuid.UUID) ([]class.RatePeriod, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	// seeded ascending by effective date; copy so callers cannot mutate the table
	return append([]class.RatePeriod(nil), repo.db.rates[classID]...), nil
}
