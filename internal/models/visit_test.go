package models

import "testing"

func TestVisitStatusCanTransition(t *testing.T) {
	cases := []struct {
		from VisitStatus
		to   VisitStatus
		want bool
	}{
		{VisitPending, VisitInProgress, true},
		{VisitInProgress, VisitCompleted, true},
		{VisitPending, VisitCancelled, true},
		{VisitInProgress, VisitCancelled, true},
		{VisitCompleted, VisitCancelled, true},
		{VisitPending, VisitCompleted, false},
		{VisitInProgress, VisitPending, false},
		{VisitCompleted, VisitInProgress, false},
		{VisitCompleted, VisitPending, false},
		{VisitCancelled, VisitCancelled, false},
		{VisitCancelled, VisitInProgress, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
