package types

// ExerciseVariation pairs a previously assigned accessory exercise with a
// novel-but-equivalent substitute. The variation must target a muscle-group
// superset (or equal set) of the original's targets and must not already
// appear in the user's recent exercise history.
type ExerciseVariation struct {
	OriginalExercise  string        `json:"original_exercise"`
	VariationExercise string        `json:"variation_exercise"`
	TargetedMuscles   []MuscleGroup `json:"targeted_muscles"`
	Rationale         string        `json:"rationale"`
}

// PhasicVariationAnalysis is the variation planner's output: the exercises
// extracted from the user's recent programs plus the substitutions chosen
// for this generation cycle. An empty analysis with an explanatory rationale
// is returned when no prior programs exist.
type PhasicVariationAnalysis struct {
	PreviousExercises   []string            `json:"previous_exercises"`
	SuggestedVariations []ExerciseVariation `json:"suggested_variations"`
	Rationale           string              `json:"rationale"`
}
