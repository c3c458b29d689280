package types

// MuscleGroup identifies one of the fixed, enumerable muscle groups the
// volume model operates on.
type MuscleGroup string

// Muscle group constants define the fixed key set for volume landmarks.
const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
	MuscleAbs        MuscleGroup = "abs"
)

// AllMuscleGroups returns the fixed muscle-group set in a stable order.
// Every landmark mapping the calculator produces contains exactly these keys.
func AllMuscleGroups() []MuscleGroup {
	return []MuscleGroup{
		MuscleChest,
		MuscleBack,
		MuscleShoulders,
		MuscleBiceps,
		MuscleTriceps,
		MuscleQuads,
		MuscleHamstrings,
		MuscleGlutes,
		MuscleCalves,
		MuscleAbs,
	}
}

// VolumeLandmark holds the weekly set-count landmarks for one muscle group.
// Invariant: MEV <= MAV <= MRV.
type VolumeLandmark struct {
	MEV int `json:"mev"` // Minimum Effective Volume
	MAV int `json:"mav"` // Maximum Adaptive Volume
	MRV int `json:"mrv"` // Maximum Recoverable Volume
}

// VolumeLandmarks maps every muscle group to its computed landmarks.
type VolumeLandmarks map[MuscleGroup]VolumeLandmark
