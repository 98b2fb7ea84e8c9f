package cli

import (
	"testing"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayValue(t *testing.T) {
	var day domain.Weekday
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(newWeekdayValue(&day), "day", "")

	require.NoError(t, fs.Parse([]string{"--day", "thu"}))
	assert.Equal(t, domain.Thursday, day)
	assert.Equal(t, "Thursday", fs.Lookup("day").Value.String())
	assert.Equal(t, "weekday", fs.Lookup("day").Value.Type())

	err := fs.Parse([]string{"--day", "someday"})
	assert.ErrorContains(t, err, "unknown weekday")
}

func TestParseExerciseSpec(t *testing.T) {
	tests := []struct {
		spec   string
		name   string
		sets   int
		reps   int
		weight float64
		muscle domain.MuscleGroup
	}{
		{"Bench Press:4x8@60", "Bench Press", 4, 8, 60, domain.MuscleChest},
		{" Squat : 5×5 @ 102.5kg", "Squat", 5, 5, 102.5, domain.MuscleLegs},
		{"Plank", "Plank", 0, 0, 0, domain.MuscleCore},
		{"Hammer Curl:3X12", "Hammer Curl", 3, 12, 0, domain.MuscleBicep},
		{"Farmer Carry:@32", "Farmer Carry", 0, 0, 32, domain.MuscleForearm},
	}
	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			ex, err := parseExerciseSpec(tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.name, ex.Name)
			assert.Equal(t, tc.sets, ex.Sets)
			assert.Equal(t, tc.reps, ex.Reps)
			assert.Equal(t, tc.weight, ex.WeightKg)
			assert.Equal(t, tc.muscle, ex.MuscleGroup)
		})
	}
}

func TestParseExerciseSpec_Errors(t *testing.T) {
	for _, spec := range []string{":4x8", "Row:4", "Row:axb", "Row:4x8@heavy", "Row:4xb"} {
		_, err := parseExerciseSpec(spec)
		assert.Error(t, err, spec)
	}
}

func TestFormatExerciseSpec_RoundTrips(t *testing.T) {
	for _, spec := range []string{"Bench Press:4x8@60", "Plank", "Squat:5x5", "Farmer Carry:@32.5"} {
		ex, err := parseExerciseSpec(spec)
		require.NoError(t, err)
		assert.Equal(t, spec, formatExerciseSpec(ex))
	}
}
