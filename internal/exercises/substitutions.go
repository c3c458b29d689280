package exercises

// substitutions maps an accessory exercise to candidate replacements that
// provide an equivalent or broader training stimulus. Candidates are listed
// in preference order. Every candidate targets a muscle-group superset (or
// equal set) of its original, and no key or candidate matches the compound
// list; both properties are enforced by the package tests.
var substitutions = map[string][]string{
	// Chest
	"Incline Dumbbell Press": {"Machine Chest Press", "Cable Fly"},
	"Cable Fly":              {"Dumbbell Fly", "Machine Chest Press"},
	"Dumbbell Fly":           {"Cable Fly", "Machine Chest Press"},
	"Machine Chest Press":    {"Incline Dumbbell Press", "Cable Fly"},
	"Push-Up":                {"Machine Chest Press", "Incline Dumbbell Press"},

	// Back
	"Lat Pulldown":          {"Seated Cable Row", "Dumbbell Row"},
	"Seated Cable Row":      {"Dumbbell Row", "Lat Pulldown"},
	"Chest-Supported Row":   {"Seated Cable Row", "Dumbbell Row"},
	"Dumbbell Row":          {"Seated Cable Row", "Lat Pulldown"},
	"Straight-Arm Pulldown": {"Lat Pulldown"},

	// Shoulders
	"Lateral Raise":         {"Cable Lateral Raise", "Upright Row"},
	"Cable Lateral Raise":   {"Lateral Raise", "Upright Row"},
	"Rear Delt Fly":         {"Face Pull"},
	"Face Pull":             {"Rear Delt Fly"},
	"Seated Dumbbell Press": {"Arnold Press"},
	"Arnold Press":          {"Seated Dumbbell Press"},
	"Upright Row":           {"Lateral Raise", "Cable Lateral Raise"},

	// Arms
	"Barbell Curl":               {"Dumbbell Curl", "Cable Curl"},
	"Dumbbell Curl":              {"Hammer Curl", "Incline Dumbbell Curl"},
	"Hammer Curl":                {"Dumbbell Curl", "Cable Curl"},
	"Incline Dumbbell Curl":      {"Preacher Curl", "Dumbbell Curl"},
	"Preacher Curl":              {"Incline Dumbbell Curl", "Cable Curl"},
	"Cable Curl":                 {"Barbell Curl", "Dumbbell Curl"},
	"Triceps Pushdown":           {"Overhead Triceps Extension", "Skull Crusher"},
	"Overhead Triceps Extension": {"Skull Crusher", "Triceps Pushdown"},
	"Skull Crusher":              {"Overhead Triceps Extension", "Triceps Pushdown"},

	// Lower body
	"Leg Press":           {"Walking Lunge"},
	"Walking Lunge":       {"Leg Press"},
	"Leg Extension":       {"Leg Press", "Walking Lunge"},
	"Leg Curl":            {"Seated Leg Curl", "Glute Ham Raise"},
	"Seated Leg Curl":     {"Leg Curl", "Glute Ham Raise"},
	"Glute Ham Raise":     {"Back Extension"},
	"Hip Thrust":          {"Glute Bridge"},
	"Glute Bridge":        {"Hip Thrust"},
	"Standing Calf Raise": {"Seated Calf Raise"},
	"Seated Calf Raise":   {"Standing Calf Raise"},

	// Core
	"Plank":             {"Dead Bug", "Pallof Press"},
	"Hanging Leg Raise": {"Cable Crunch", "Ab Wheel Rollout"},
	"Cable Crunch":      {"Hanging Leg Raise", "Ab Wheel Rollout"},
	"Ab Wheel Rollout":  {"Cable Crunch", "Plank"},
	"Pallof Press":      {"Plank", "Dead Bug"},
	"Dead Bug":          {"Plank", "Pallof Press"},
}

// SubstitutesFor returns the candidate replacements for an accessory
// exercise in preference order, or nil when the exercise has no entry.
func SubstitutesFor(exercise string) []string {
	candidates, ok := substitutions[exercise]
	if !ok {
		return nil
	}
	out := make([]string, len(candidates))
	copy(out, candidates)
	return out
}

// SubstitutionKeys returns every accessory exercise that has a substitution
// entry. Used by the table's own tests.
func SubstitutionKeys() []string {
	keys := make([]string, 0, len(substitutions))
	for key := range substitutions {
		keys = append(keys, key)
	}
	return keys
}
