package domain

import "strings"

type MuscleGroup string

const (
	MuscleShoulder  MuscleGroup = "Shoulder"
	MuscleBack      MuscleGroup = "Back"
	MuscleChest     MuscleGroup = "Chest"
	MuscleTricep    MuscleGroup = "Tricep"
	MuscleBicep     MuscleGroup = "Bicep"
	MuscleLegs      MuscleGroup = "Legs"
	MuscleCore      MuscleGroup = "Core"
	MuscleForearm   MuscleGroup = "Forearm"
	MuscleStretches MuscleGroup = "Stretches"
)

// AllMuscleGroups lists every tag Classify can produce.
var AllMuscleGroups = []MuscleGroup{
	MuscleShoulder, MuscleBack, MuscleChest, MuscleTricep, MuscleBicep,
	MuscleLegs, MuscleCore, MuscleForearm, MuscleStretches,
}

// ParseMuscleGroup matches a tag name case-insensitively.
func ParseMuscleGroup(s string) (MuscleGroup, bool) {
	for _, g := range AllMuscleGroups {
		if strings.EqualFold(string(g), strings.TrimSpace(s)) {
			return g, true
		}
	}
	return "", false
}

type muscleRule struct {
	group    MuscleGroup
	keywords []string
}

// Order matters: the first rule with a matching keyword wins, so the more
// specific movements ("leg curl", "upright row", "close grip") sit above the
// generic ones ("curl", "row", "press").
var muscleRules = []muscleRule{
	{MuscleStretches, []string{"stretch", "yoga", "mobility", "foam roll", "warm up", "warmup", "cool down"}},
	{MuscleForearm, []string{"forearm", "wrist", "farmer", "reverse curl", "grip strength", "dead hang"}},
	{MuscleCore, []string{"plank", "crunch", "sit-up", "situp", "sit up", "leg raise", "russian twist", "hollow", "ab wheel", "abs", "oblique", "mountain climber", "dead bug", "core"}},
	{MuscleLegs, []string{"squat", "lunge", "leg", "calf", "calves", "hamstring", "quad", "glute", "hip thrust", "deadlift", "step-up", "step up", "bulgarian"}},
	{MuscleTricep, []string{"tricep", "skull crusher", "pushdown", "push down", "dip", "kickback", "close grip", "narrow grip", "overhead extension"}},
	{MuscleBicep, []string{"bicep", "curl", "preacher"}},
	{MuscleShoulder, []string{"shoulder", "overhead press", "military", "lateral raise", "front raise", "rear delt", "delt", "arnold", "shrug", "upright row", "face pull"}},
	{MuscleBack, []string{"row", "pull-up", "pullup", "pull up", "chin-up", "chinup", "chin up", "pulldown", "pull down", "lat pull", "lats", "back extension", "rack pull", "back"}},
	{MuscleChest, []string{"bench", "chest", "push-up", "pushup", "push up", "fly", "flye", "pec", "press"}},
}

// Classify tags an exercise name with a muscle group by keyword match.
// It is total: names matching no rule are Core.
func Classify(exerciseName string) MuscleGroup {
	name := strings.ToLower(exerciseName)
	for _, rule := range muscleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.group
			}
		}
	}
	return MuscleCore
}
