package service

import (
	adapter "campus_security_backend/internal/adapter/repository"
	"fmt"
	"time"
)

// stepClock advances one second on every reading.
type stepClock struct{ t time.Time }

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type seqIDs struct{ n int }

func (g *seqIDs) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestRepositories() *Repositories {
	return NewRepositories(adapter.NewMemoryStore().Collections())
}
