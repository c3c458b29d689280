// Package exercises holds the static exercise knowledge the derivation
// engine consumes: the exercise-to-muscle-group table, the canonical
// compound-lift list, and the accessory substitution table. The tables are
// immutable data loaded once at startup; algorithms that consume them live
// in other packages so the data can be tested independently.
package exercises

import (
	"strings"

	"github.com/daniel/program-coach/internal/types"
)

// CatalogVersion identifies the revision of the static tables. Bump when
// any table changes so persisted metadata can be traced to the data it was
// derived from.
const CatalogVersion = "2025.1"

// muscleMap maps a canonical exercise name to the muscle groups it targets.
// Compound lifts carry their full multi-group involvement; accessories are
// tagged with the groups they are programmed for, which keeps the
// substitution table's superset rule checkable. Lookup is case-insensitive
// via MuscleGroupsFor.
var muscleMap = map[string][]types.MuscleGroup{
	// Compound lifts
	"Squat":                  {types.MuscleQuads, types.MuscleGlutes},
	"Front Squat":            {types.MuscleQuads, types.MuscleAbs},
	"Bench Press":            {types.MuscleChest, types.MuscleTriceps, types.MuscleShoulders},
	"Deadlift":               {types.MuscleBack, types.MuscleHamstrings, types.MuscleGlutes},
	"Overhead Press":         {types.MuscleShoulders, types.MuscleTriceps},
	"Barbell Row":            {types.MuscleBack, types.MuscleBiceps},
	"Pull-Up":                {types.MuscleBack, types.MuscleBiceps},
	"Chin-Up":                {types.MuscleBack, types.MuscleBiceps},
	"Romanian Deadlift":      {types.MuscleHamstrings, types.MuscleGlutes},
	"Close-Grip Bench Press": {types.MuscleTriceps, types.MuscleChest},
	"Dip":                    {types.MuscleChest, types.MuscleTriceps},

	// Chest accessories
	"Incline Dumbbell Press": {types.MuscleChest},
	"Cable Fly":              {types.MuscleChest},
	"Dumbbell Fly":           {types.MuscleChest},
	"Machine Chest Press":    {types.MuscleChest},
	"Push-Up":                {types.MuscleChest},

	// Back accessories
	"Lat Pulldown":          {types.MuscleBack},
	"Seated Cable Row":      {types.MuscleBack},
	"Chest-Supported Row":   {types.MuscleBack},
	"Dumbbell Row":          {types.MuscleBack},
	"Straight-Arm Pulldown": {types.MuscleBack},
	"Back Extension":        {types.MuscleBack, types.MuscleGlutes, types.MuscleHamstrings},
	"Good Morning":          {types.MuscleHamstrings, types.MuscleBack},

	// Shoulder accessories
	"Lateral Raise":         {types.MuscleShoulders},
	"Cable Lateral Raise":   {types.MuscleShoulders},
	"Rear Delt Fly":         {types.MuscleShoulders},
	"Face Pull":             {types.MuscleShoulders},
	"Seated Dumbbell Press": {types.MuscleShoulders},
	"Arnold Press":          {types.MuscleShoulders},
	"Upright Row":           {types.MuscleShoulders},

	// Arm accessories
	"Barbell Curl":               {types.MuscleBiceps},
	"Dumbbell Curl":              {types.MuscleBiceps},
	"Hammer Curl":                {types.MuscleBiceps},
	"Incline Dumbbell Curl":      {types.MuscleBiceps},
	"Preacher Curl":              {types.MuscleBiceps},
	"Cable Curl":                 {types.MuscleBiceps},
	"Triceps Pushdown":           {types.MuscleTriceps},
	"Overhead Triceps Extension": {types.MuscleTriceps},
	"Skull Crusher":              {types.MuscleTriceps},

	// Lower-body accessories
	"Leg Press":                    {types.MuscleQuads, types.MuscleGlutes},
	"Walking Lunge":                {types.MuscleQuads, types.MuscleGlutes},
	"Leg Extension":                {types.MuscleQuads},
	"Leg Curl":                     {types.MuscleHamstrings},
	"Seated Leg Curl":              {types.MuscleHamstrings},
	"Glute Ham Raise":              {types.MuscleHamstrings, types.MuscleGlutes},
	"Hip Thrust":                   {types.MuscleGlutes},
	"Glute Bridge":                 {types.MuscleGlutes},
	"Single-Leg Romanian Deadlift": {types.MuscleHamstrings, types.MuscleGlutes},
	"Standing Calf Raise":          {types.MuscleCalves},
	"Seated Calf Raise":            {types.MuscleCalves},

	// Core accessories
	"Plank":             {types.MuscleAbs},
	"Hanging Leg Raise": {types.MuscleAbs},
	"Cable Crunch":      {types.MuscleAbs},
	"Ab Wheel Rollout":  {types.MuscleAbs},
	"Pallof Press":      {types.MuscleAbs},
	"Dead Bug":          {types.MuscleAbs},
	"Bird Dog":          {types.MuscleAbs, types.MuscleBack},
}

// MuscleGroupsFor returns the muscle groups an exercise targets, or nil if
// the exercise is not in the catalog. Matching is case-insensitive.
func MuscleGroupsFor(exercise string) []types.MuscleGroup {
	if groups, ok := muscleMap[exercise]; ok {
		return groups
	}
	lower := strings.ToLower(strings.TrimSpace(exercise))
	for name, groups := range muscleMap {
		if strings.ToLower(name) == lower {
			return groups
		}
	}
	return nil
}

// CatalogNames returns every exercise name in the catalog. Order is not
// specified; callers needing determinism must sort.
func CatalogNames() []string {
	names := make([]string, 0, len(muscleMap))
	for name := range muscleMap {
		names = append(names, name)
	}
	return names
}
