package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/pflag"
)

// weekdayValue is a pflag.Value accepting "Monday", "mon", "TUE" and so on.
type weekdayValue struct {
	day *domain.Weekday
	set bool
}

var _ pflag.Value = (*weekdayValue)(nil)

func newWeekdayValue(p *domain.Weekday) *weekdayValue {
	return &weekdayValue{day: p}
}

func (v *weekdayValue) String() string {
	if v == nil || v.day == nil || !v.set {
		return ""
	}
	return v.day.String()
}

func (v *weekdayValue) Set(s string) error {
	d, err := domain.ParseWeekdayFold(s)
	if err != nil {
		return err
	}
	*v.day = d
	v.set = true
	return nil
}

func (v *weekdayValue) Type() string { return "weekday" }

// parseExerciseSpec reads "Name", "Name:SETSxREPS" or "Name:SETSxREPS@KG".
// "×" works in place of "x" and a trailing "kg" is ignored.
func parseExerciseSpec(spec string) (domain.PlannedExercise, error) {
	name, rest, hasVolume := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.PlannedExercise{}, fmt.Errorf("exercise %q: name is required", spec)
	}

	var sets, reps int
	var weight float64
	if hasVolume {
		volume, w, hasWeight := strings.Cut(rest, "@")
		if hasWeight {
			w = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(w)), "kg")
			parsed, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
			if err != nil {
				return domain.PlannedExercise{}, fmt.Errorf("exercise %q: weight must be a number", spec)
			}
			weight = parsed
		}
		if volume = strings.TrimSpace(volume); volume != "" {
			volume = strings.ReplaceAll(strings.ToLower(volume), "×", "x")
			s, r, ok := strings.Cut(volume, "x")
			if !ok {
				return domain.PlannedExercise{}, fmt.Errorf("exercise %q: volume must look like 4x8", spec)
			}
			var err error
			if sets, err = strconv.Atoi(strings.TrimSpace(s)); err != nil {
				return domain.PlannedExercise{}, fmt.Errorf("exercise %q: sets must be a whole number", spec)
			}
			if reps, err = strconv.Atoi(strings.TrimSpace(r)); err != nil {
				return domain.PlannedExercise{}, fmt.Errorf("exercise %q: reps must be a whole number", spec)
			}
		}
	}
	return domain.NewPlannedExercise(name, sets, reps, weight), nil
}

// formatExerciseSpec is the inverse of parseExerciseSpec.
func formatExerciseSpec(e domain.PlannedExercise) string {
	s := e.Name
	if e.Sets > 0 || e.Reps > 0 {
		s += fmt.Sprintf(":%dx%d", e.Sets, e.Reps)
	}
	if e.WeightKg > 0 {
		if e.Sets == 0 && e.Reps == 0 {
			s += ":"
		}
		s += "@" + strconv.FormatFloat(e.WeightKg, 'f', -1, 64)
	}
	return s
}

func parseExerciseSpecs(specs []string) ([]domain.PlannedExercise, error) {
	out := make([]domain.PlannedExercise, 0, len(specs))
	for _, spec := range specs {
		if strings.TrimSpace(spec) == "" {
			continue
		}
		ex, err := parseExerciseSpec(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, nil
}
