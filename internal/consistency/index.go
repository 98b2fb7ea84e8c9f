package consistency

import (
	"sort"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ExerciseIndex lists every distinct exercise name seen across weeks,
// sorted alphabetically. A non-empty muscle restricts the list to names
// classified into that group.
func ExerciseIndex(weeks []WeekBucket, muscle domain.MuscleGroup) []string {
	seen := make(map[string]bool)
	var names []string
	for _, w := range weeks {
		for _, st := range w.Exercises {
			if seen[st.Name] {
				continue
			}
			if muscle != "" && domain.Classify(st.Name) != muscle {
				continue
			}
			seen[st.Name] = true
			names = append(names, st.Name)
		}
	}
	sort.Strings(names)
	return names
}
