package core

import "time"

// Clock abstracts wall-clock access so engine queries can pin "now" once
// and tests can freeze time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func NewClock() Clock { return realClock{} }

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

var _ Clock = FixedClock{}

func (c FixedClock) Now() time.Time { return c.T }
