package consistency

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ExerciseStats accumulates one exercise name's appearances within a week.
type ExerciseStats struct {
	Name           string
	MuscleGroup    domain.MuscleGroup
	PlannedSets    int
	PlannedReps    int
	CompletedSets  int
	CompletedReps  int
	TimesCompleted int
	// Count is appearances on logged and missed days; pending days are excluded.
	Count       int
	MissedCount int
}

// CompletionRate is TimesCompleted as a rounded percentage of Count.
func (s ExerciseStats) CompletionRate() int {
	return percent(s.TimesCompleted, s.Count)
}

// WeekBucket groups the history of one Monday-started week.
type WeekBucket struct {
	// Number is 1 for the oldest week in the aggregated range.
	Number             int
	Start              time.Time
	Days               []DayEntry
	TotalExercises     int
	CompletedExercises int
	// Exercises is ordered by first appearance in the week.
	Exercises []ExerciseStats

	index map[string]int
}

// End is the Sunday closing the week.
func (w WeekBucket) End() time.Time {
	return AddDays(w.Start, 6)
}

// ConsistencyScore is the share of planned exercise slots completed,
// rounded to a whole percent. A week with nothing planned scores 0.
func (w WeekBucket) ConsistencyScore() int {
	return percent(w.CompletedExercises, w.TotalExercises)
}

// Stats returns the per-exercise stats for name.
func (w WeekBucket) Stats(name string) (ExerciseStats, bool) {
	name = strings.TrimSpace(name)
	if w.index != nil {
		if i, ok := w.index[name]; ok {
			return w.Exercises[i], true
		}
		return ExerciseStats{}, false
	}
	for _, s := range w.Exercises {
		if s.Name == name {
			return s, true
		}
	}
	return ExerciseStats{}, false
}

// Contains reports whether t falls within the week.
func (w WeekBucket) Contains(t time.Time) bool {
	day := StartOfDay(t, w.Start.Location())
	return !day.Before(w.Start) && !day.After(w.End())
}

// AggregateByWeek groups day entries into Monday-started weeks and
// accumulates exercise slot counts. Weeks are returned newest first with
// Number already assigned, oldest week being 1.
//
// Pending days only register exercise names. Missed days add planned slots
// but never completed ones. Logged days add a completed slot for every
// exercise whose Completed flag is not explicitly false.
func AggregateByWeek(entries []DayEntry) []WeekBucket {
	byStart := make(map[dayKey]*WeekBucket)
	var order []*WeekBucket

	for _, e := range entries {
		start := StartOfWeek(e.Date)
		k := keyOf(start)
		w, ok := byStart[k]
		if !ok {
			w = &WeekBucket{Start: start, index: make(map[string]int)}
			byStart[k] = w
			order = append(order, w)
		}
		w.add(e)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Start.Before(order[j].Start)
	})

	out := make([]WeekBucket, len(order))
	for i, w := range order {
		sort.SliceStable(w.Days, func(a, b int) bool {
			return w.Days[a].Date.Before(w.Days[b].Date)
		})
		w.Number = i + 1
		out[len(order)-1-i] = *w
	}
	return out
}

func (w *WeekBucket) add(e DayEntry) {
	w.Days = append(w.Days, e)

	for _, ex := range e.Exercises {
		completed := e.IsLogged() && ex.IsCompleted()
		if !e.IsPending() {
			w.TotalExercises++
			if completed {
				w.CompletedExercises++
			}
		}

		name := strings.TrimSpace(ex.Name)
		if name == "" {
			continue
		}
		st := w.stats(name)
		if e.IsPending() {
			continue
		}
		st.Count++
		if e.IsMissed() {
			st.MissedCount++
			continue
		}
		st.PlannedSets += ex.Sets
		st.PlannedReps += ex.Reps
		if completed {
			st.TimesCompleted++
			st.CompletedSets += ex.Sets
			st.CompletedReps += ex.Reps
		}
	}
}

func (w *WeekBucket) stats(name string) *ExerciseStats {
	i, ok := w.index[name]
	if !ok {
		i = len(w.Exercises)
		w.Exercises = append(w.Exercises, ExerciseStats{
			Name:        name,
			MuscleGroup: domain.Classify(name),
		})
		w.index[name] = i
	}
	return &w.Exercises[i]
}

// percent returns round(100*n/d) clamped to [0, 100], and 0 whenever the
// ratio is undefined.
func percent(n, d int) int {
	if d <= 0 || n <= 0 {
		return 0
	}
	v := math.Round(100 * float64(n) / float64(d))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
