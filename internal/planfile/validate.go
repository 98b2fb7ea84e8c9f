package planfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ErrInvalidPlan is matched by every ValidationError.
var ErrInvalidPlan = errors.New("invalid plan file")

// ValidationError lists every problem found in a plan file.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = "  - " + p.Error()
	}
	return fmt.Sprintf("invalid plan file (%d problems):\n%s", len(e.Problems), strings.Join(msgs, "\n"))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidPlan
}

// Validate checks f and returns a *ValidationError, or nil when f is usable.
func Validate(f *PlanFile) error {
	var errs []error

	for _, key := range f.undecoded {
		errs = append(errs, fmt.Errorf("unknown key %q", key))
	}

	for i, slot := range f.days() {
		day := *slot
		if day == nil {
			continue
		}
		errs = append(errs, validateDay(domain.Weekday(i), day)...)
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

// ValidateDay applies the plan file rules to a single day edited directly.
func ValidateDay(d domain.Weekday, dp domain.DayPlan) error {
	if errs := validateDay(d, dayImportFrom(dp)); len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

func validateDay(d domain.Weekday, day *DayImport) []error {
	var errs []error
	prefix := strings.ToLower(d.String())

	if day.Rest && len(day.Exercises) > 0 {
		errs = append(errs, fmt.Errorf("%s: rest day cannot list exercises", prefix))
	}
	for i, ex := range day.Exercises {
		field := fmt.Sprintf("%s.exercise[%d]", prefix, i)
		if strings.TrimSpace(ex.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", field))
		}
		if ex.Sets < 0 {
			errs = append(errs, fmt.Errorf("%s.sets must be >= 0, got %d", field, ex.Sets))
		}
		if ex.Reps < 0 {
			errs = append(errs, fmt.Errorf("%s.reps must be >= 0, got %d", field, ex.Reps))
		}
		if ex.Weight < 0 {
			errs = append(errs, fmt.Errorf("%s.weight must be >= 0, got %g", field, ex.Weight))
		}
	}
	return errs
}
