// Package sampledb serves a small built-in dataset so the API stays
// usable when no database is reachable.
package sampledb

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/akiba-app/akiba/core"
	"github.com/akiba-app/akiba/core/class"
	"github.com/akiba-app/akiba/core/student"
)

// Fixed IDs so the demo endpoints are navigable without a lookup API.
var (
	ClassID  = uuid.MustParse("7d9f1c7a-9a1e-4a38-9a0a-f2b6f1a0c001")
	AminaID  = uuid.MustParse("b1a4e9ce-3a76-4a0e-8d11-f2b6f1a0c101")
	BarakaID = uuid.MustParse("c2b5fadf-4b87-4b1f-9e22-f2b6f1a0c102")
	ChikuID  = uuid.MustParse("d3c60bf0-5c98-4c20-af33-f2b6f1a0c103")
)

type (
	DB struct {
		class   *classTable
		student *studentTable
	}

	classTable struct {
		sync.RWMutex
		table map[uuid.UUID]*class.Class
		rates map[uuid.UUID][]class.RatePeriod
	}

	studentTable struct {
		sync.RWMutex
		table    map[uuid.UUID]*student.Student
		deposits map[uuid.UUID][]student.Deposit
	}
)

func Open() (*DB, error) {
	db := &DB{
		class: &classTable{
			table: make(map[uuid.UUID]*class.Class),
			rates: make(map[uuid.UUID][]class.RatePeriod),
		},
		student: &studentTable{
			table:    make(map[uuid.UUID]*student.Student),
			deposits: make(map[uuid.UUID][]student.Deposit),
		},
	}
	db.seed()
	return db, nil
}

func (db *DB) seed() {
	now := time.Now().UTC()

	db.class.table[ClassID] = &class.Class{
		ID:        ClassID,
		Name:      "Form 2 Akiba Club",
		EndDate:   date("2026-12-18"),
		Timezone:  "Africa/Dar_es_Salaam",
		CreatedAt: now,
		UpdatedAt: now,
	}
	db.class.rates[ClassID] = []class.RatePeriod{
		ratePeriod("2026-01-05", "0.01", now),
		ratePeriod("2026-04-06", "0.015", now),
		ratePeriod("2026-07-06", "0.0125", now),
	}

	db.addStudent("Amina Juma", AminaID, now,
		deposit(AminaID, "2026-01-12", "20000", "opening deposit", now),
		deposit(AminaID, "2026-02-09", "15000", "", now),
		deposit(AminaID, "2026-02-09", "5000", "birthday gift", now),
		deposit(AminaID, "2026-05-04", "10000", "", now),
	)
	db.addStudent("Baraka Mushi", BarakaID, now,
		deposit(BarakaID, "2026-03-02", "50000", "term savings", now),
	)
	// Chiku has not invested yet: the empty-portfolio case
	db.addStudent("Chiku Hassan", ChikuID, now)
}

func (db *DB) addStudent(name string, id uuid.UUID, now time.Time, deposits ...student.Deposit) {
	db.student.table[id] = &student.Student{
		ID:        id,
		ClassID:   ClassID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	db.student.deposits[id] = deposits
}

func date(s string) time.Time {
	d, err := core.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ratePeriod(day, monthlyRate string, now time.Time) class.RatePeriod {
	return class.RatePeriod{
		ID:            uuid.New(),
		ClassID:       ClassID,
		EffectiveDate: date(day),
		MonthlyRate:   decimal.RequireFromString(monthlyRate),
		CreatedAt:     now,
	}
}

func deposit(studentID uuid.UUID, day, amount, note string, now time.Time) student.Deposit {
	return student.Deposit{
		ID:        uuid.New(),
		StudentID: studentID,
		Date:      date(day),
		Amount:    decimal.RequireFromString(amount),
		Note:      null.NewString(note, note != ""),
		CreatedAt: now,
	}
}
