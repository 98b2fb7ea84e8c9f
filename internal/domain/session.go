package domain

import "time"

// LoggedExercise is one exercise inside a logged session. Completed is
// tri-state: nil means the field was never set and counts as completed;
// only an explicit false counts as not done.
type LoggedExercise struct {
	ID        string
	Name      string
	Sets      int
	Reps      int
	WeightKg  float64
	Completed *bool
}

// IsCompleted applies the absent-means-true policy.
func (e LoggedExercise) IsCompleted() bool {
	return BoolFromPtrWithDefault(true, e.Completed)
}

func (e *LoggedExercise) SetCompleted(v bool) {
	e.Completed = BoolPtr(v)
}

// LoggedFromPlanned copies a planned exercise into a session entry.
func LoggedFromPlanned(id string, p PlannedExercise, completed bool) LoggedExercise {
	return LoggedExercise{
		ID:        id,
		Name:      p.Name,
		Sets:      p.Sets,
		Reps:      p.Reps,
		WeightKg:  p.WeightKg,
		Completed: BoolPtr(completed),
	}
}

type Session struct {
	ID        string
	UserID    string
	Date      time.Time
	Title     string
	Exercises []LoggedExercise
	CreatedAt time.Time
}

// HasExercises reports whether the session counts as a workout. An empty
// session is treated as if nothing was logged.
func (s *Session) HasExercises() bool {
	return s != nil && len(s.Exercises) > 0
}

// Exercise returns a pointer into Exercises for in-place edits.
func (s *Session) Exercise(id string) *LoggedExercise {
	for i := range s.Exercises {
		if s.Exercises[i].ID == id {
			return &s.Exercises[i]
		}
	}
	return nil
}

// CompletedCount counts exercises that pass IsCompleted.
func (s *Session) CompletedCount() int {
	n := 0
	for _, e := range s.Exercises {
		if e.IsCompleted() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy, including the Completed pointers.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.Exercises != nil {
		out.Exercises = make([]LoggedExercise, len(s.Exercises))
		for i, e := range s.Exercises {
			if e.Completed != nil {
				e.Completed = BoolPtr(*e.Completed)
			}
			out.Exercises[i] = e
		}
	}
	return &out
}
