package planfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// PlanFile is the on-disk TOML form of a weekly plan. Each weekday is an
// optional table; an absent table is a rest day.
type PlanFile struct {
	Monday    *DayImport `toml:"monday,omitempty"`
	Tuesday   *DayImport `toml:"tuesday,omitempty"`
	Wednesday *DayImport `toml:"wednesday,omitempty"`
	Thursday  *DayImport `toml:"thursday,omitempty"`
	Friday    *DayImport `toml:"friday,omitempty"`
	Saturday  *DayImport `toml:"saturday,omitempty"`
	Sunday    *DayImport `toml:"sunday,omitempty"`

	// undecoded holds keys the decoder did not recognise, such as a
	// misspelled weekday table.
	undecoded []string
}

type DayImport struct {
	Title     string           `toml:"title,omitempty"`
	Rest      bool             `toml:"rest"`
	Exercises []ExerciseImport `toml:"exercise,omitempty"`
}

type ExerciseImport struct {
	Name   string  `toml:"name"`
	Sets   int     `toml:"sets"`
	Reps   int     `toml:"reps"`
	Weight float64 `toml:"weight"`
}

// days pairs each table with its weekday, Monday first.
func (f *PlanFile) days() []**DayImport {
	return []**DayImport{&f.Monday, &f.Tuesday, &f.Wednesday, &f.Thursday, &f.Friday, &f.Saturday, &f.Sunday}
}

// Decode parses a TOML plan. Syntax errors are returned directly; unknown
// keys are kept for Validate to report.
func Decode(r io.Reader) (*PlanFile, error) {
	var f PlanFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	for _, k := range md.Undecoded() {
		f.undecoded = append(f.undecoded, k.String())
	}
	return &f, nil
}

func Load(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Encode writes f as TOML.
func Encode(w io.Writer, f *PlanFile) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("encoding plan file: %w", err)
	}
	return nil
}
