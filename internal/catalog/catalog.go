package catalog

// Exercise is one entry of the static, non-persisted exercise catalog used
// for search. The catalog is load-once data, never mutated at runtime.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	PrimaryMuscle    string   `json:"primaryMuscle"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
	Equipment        string   `json:"equipment"`
	MovementPattern  string   `json:"movementPattern"`
	Compound         bool     `json:"compound"`
	Bodyweight       bool     `json:"bodyweight"`
	// SearchIndex carries extra terms (common gym shorthand, plain-language
	// descriptions) matched at the lowest weight.
	SearchIndex []string `json:"-"`
}

// Default returns the built-in exercise catalog.
func Default() []Exercise {
	return defaultCatalog
}

var defaultCatalog = []Exercise{
	// Chest
	{ID: "bench-press", Name: "Bench Press", PrimaryMuscle: "Chest", SecondaryMuscles: []string{"Triceps", "Shoulders"}, Equipment: "Barbell", MovementPattern: "Push", Compound: true, SearchIndex: []string{"flat bench", "bb bench"}},
	{ID: "incline-bench-press", Name: "Incline Bench Press", PrimaryMuscle: "Chest", SecondaryMuscles: []string{"Shoulders", "Triceps"}, Equipment: "Barbell", MovementPattern: "Push", Compound: true, SearchIndex: []string{"upper chest"}},
	{ID: "dumbbell-press", Name: "Dumbbell Press", PrimaryMuscle: "Chest", SecondaryMuscles: []string{"Triceps", "Shoulders"}, Equipment: "Dumbbell", MovementPattern: "Push", Compound: true, SearchIndex: []string{"db press"}},
	{ID: "dumbbell-fly", Name: "Dumbbell Fly", PrimaryMuscle: "Chest", Equipment: "Dumbbell", MovementPattern: "Fly", SearchIndex: []string{"chest fly", "flye"}},
	{ID: "cable-crossover", Name: "Cable Crossover", PrimaryMuscle: "Chest", Equipment: "Cable", MovementPattern: "Fly"},
	{ID: "push-up", Name: "Push Up", PrimaryMuscle: "Chest", SecondaryMuscles: []string{"Triceps", "Core"}, Equipment: "None", MovementPattern: "Push", Compound: true, Bodyweight: true, SearchIndex: []string{"pushup", "press up"}},
	{ID: "chest-dip", Name: "Chest Dip", PrimaryMuscle: "Chest", SecondaryMuscles: []string{"Triceps"}, Equipment: "Dip Bars", MovementPattern: "Push", Compound: true, Bodyweight: true},

	// Back
	{ID: "deadlift", Name: "Deadlift", PrimaryMuscle: "Back", SecondaryMuscles: []string{"Hamstrings", "Glutes"}, Equipment: "Barbell", MovementPattern: "Hinge", Compound: true, SearchIndex: []string{"conventional deadlift"}},
	{ID: "pull-up", Name: "Pull Up", PrimaryMuscle: "Back", SecondaryMuscles: []string{"Biceps"}, Equipment: "Pull Up Bar", MovementPattern: "Pull", Compound: true, Bodyweight: true, SearchIndex: []string{"pullup", "chin"}},
	{ID: "chin-up", Name: "Chin Up", PrimaryMuscle: "Back", SecondaryMuscles: []string{"Biceps"}, Equipment: "Pull Up Bar", MovementPattern: "Pull", Compound: true, Bodyweight: true, SearchIndex: []string{"chinup", "underhand"}},
	{ID: "barbell-row", Name: "Barbell Row", PrimaryMuscle: "Back", SecondaryMuscles: []string{"Biceps"}, Equipment: "Barbell", MovementPattern: "Pull", Compound: true, SearchIndex: []string{"bent over row", "bb row"}},
	{ID: "dumbbell-row", Name: "Dumbbell Row", PrimaryMuscle: "Back", SecondaryMuscles: []string{"Biceps"}, Equipment: "Dumbbell", MovementPattern: "Pull", Compound: true, SearchIndex: []string{"one arm row", "db row"}},
	{ID: "lat-pulldown", Name: "Lat Pulldown", PrimaryMuscle: "Back", SecondaryMuscles: []string{"Biceps"}, Equipment: "Cable", MovementPattern: "Pull", Compound: true},
	{ID: "seated-cable-row", Name: "Seated Cable Row", PrimaryMuscle: "Back", SecondaryMuscles: []string{"Biceps"}, Equipment: "Cable", MovementPattern: "Pull", Compound: true},
	{ID: "romanian-deadlift", Name: "Romanian Deadlift", PrimaryMuscle: "Hamstrings", SecondaryMuscles: []string{"Glutes", "Back"}, Equipment: "Barbell", MovementPattern: "Hinge", Compound: true, SearchIndex: []string{"rdl", "stiff leg"}},

	// Legs
	{ID: "squat", Name: "Squat", PrimaryMuscle: "Quads", SecondaryMuscles: []string{"Glutes", "Core"}, Equipment: "Barbell", MovementPattern: "Squat", Compound: true, SearchIndex: []string{"back squat", "legs"}},
	{ID: "front-squat", Name: "Front Squat", PrimaryMuscle: "Quads", SecondaryMuscles: []string{"Glutes", "Core"}, Equipment: "Barbell", MovementPattern: "Squat", Compound: true},
	{ID: "goblet-squat", Name: "Goblet Squat", PrimaryMuscle: "Quads", SecondaryMuscles: []string{"Glutes"}, Equipment: "Dumbbell", MovementPattern: "Squat", Compound: true},
	{ID: "leg-press", Name: "Leg Press", PrimaryMuscle: "Quads", SecondaryMuscles: []string{"Glutes"}, Equipment: "Machine", MovementPattern: "Squat", Compound: true},
	{ID: "lunge", Name: "Lunge", PrimaryMuscle: "Quads", SecondaryMuscles: []string{"Glutes", "Hamstrings"}, Equipment: "Dumbbell", MovementPattern: "Lunge", Compound: true, SearchIndex: []string{"walking lunge", "split"}},
	{ID: "bulgarian-split-squat", Name: "Bulgarian Split Squat", PrimaryMuscle: "Quads", SecondaryMuscles: []string{"Glutes"}, Equipment: "Dumbbell", MovementPattern: "Lunge", Compound: true},
	{ID: "leg-extension", Name: "Leg Extension", PrimaryMuscle: "Quads", Equipment: "Machine", MovementPattern: "Extension"},
	{ID: "leg-curl", Name: "Leg Curl", PrimaryMuscle: "Hamstrings", Equipment: "Machine", MovementPattern: "Curl"},
	{ID: "hip-thrust", Name: "Hip Thrust", PrimaryMuscle: "Glutes", SecondaryMuscles: []string{"Hamstrings"}, Equipment: "Barbell", MovementPattern: "Hinge", Compound: true},
	{ID: "calf-raise", Name: "Calf Raise", PrimaryMuscle: "Calves", Equipment: "Machine", MovementPattern: "Raise", SearchIndex: []string{"standing calf"}},

	// Shoulders
	{ID: "overhead-press", Name: "Overhead Press", PrimaryMuscle: "Shoulders", SecondaryMuscles: []string{"Triceps"}, Equipment: "Barbell", MovementPattern: "Push", Compound: true, SearchIndex: []string{"ohp", "military press", "shoulder press"}},
	{ID: "dumbbell-shoulder-press", Name: "Dumbbell Shoulder Press", PrimaryMuscle: "Shoulders", SecondaryMuscles: []string{"Triceps"}, Equipment: "Dumbbell", MovementPattern: "Push", Compound: true},
	{ID: "lateral-raise", Name: "Lateral Raise", PrimaryMuscle: "Shoulders", Equipment: "Dumbbell", MovementPattern: "Raise", SearchIndex: []string{"side raise", "lat raise"}},
	{ID: "rear-delt-fly", Name: "Rear Delt Fly", PrimaryMuscle: "Shoulders", SecondaryMuscles: []string{"Back"}, Equipment: "Dumbbell", MovementPattern: "Fly", SearchIndex: []string{"reverse fly"}},
	{ID: "face-pull", Name: "Face Pull", PrimaryMuscle: "Shoulders", SecondaryMuscles: []string{"Back"}, Equipment: "Cable", MovementPattern: "Pull"},
	{ID: "shrug", Name: "Shrug", PrimaryMuscle: "Traps", Equipment: "Barbell", MovementPattern: "Raise"},

	// Arms
	{ID: "barbell-curl", Name: "Barbell Curl", PrimaryMuscle: "Biceps", Equipment: "Barbell", MovementPattern: "Curl", SearchIndex: []string{"bb curl"}},
	{ID: "dumbbell-curl", Name: "Dumbbell Curl", PrimaryMuscle: "Biceps", Equipment: "Dumbbell", MovementPattern: "Curl", SearchIndex: []string{"db curl"}},
	{ID: "hammer-curl", Name: "Hammer Curl", PrimaryMuscle: "Biceps", SecondaryMuscles: []string{"Forearms"}, Equipment: "Dumbbell", MovementPattern: "Curl"},
	{ID: "tricep-pushdown", Name: "Tricep Pushdown", PrimaryMuscle: "Triceps", Equipment: "Cable", MovementPattern: "Extension", SearchIndex: []string{"rope pushdown"}},
	{ID: "skull-crusher", Name: "Skull Crusher", PrimaryMuscle: "Triceps", Equipment: "Barbell", MovementPattern: "Extension", SearchIndex: []string{"lying tricep extension"}},
	{ID: "tricep-dip", Name: "Tricep Dip", PrimaryMuscle: "Triceps", SecondaryMuscles: []string{"Chest"}, Equipment: "Dip Bars", MovementPattern: "Push", Compound: true, Bodyweight: true},

	// Core
	{ID: "plank", Name: "Plank", PrimaryMuscle: "Core", Equipment: "None", MovementPattern: "Hold", Bodyweight: true},
	{ID: "crunch", Name: "Crunch", PrimaryMuscle: "Core", Equipment: "None", MovementPattern: "Flexion", Bodyweight: true, SearchIndex: []string{"sit up"}},
	{ID: "hanging-leg-raise", Name: "Hanging Leg Raise", PrimaryMuscle: "Core", SecondaryMuscles: []string{"Hip Flexors"}, Equipment: "Pull Up Bar", MovementPattern: "Raise", Bodyweight: true},
	{ID: "russian-twist", Name: "Russian Twist", PrimaryMuscle: "Core", SecondaryMuscles: []string{"Obliques"}, Equipment: "None", MovementPattern: "Rotation", Bodyweight: true},
	{ID: "ab-wheel-rollout", Name: "Ab Wheel Rollout", PrimaryMuscle: "Core", Equipment: "Ab Wheel", MovementPattern: "Rollout", SearchIndex: []string{"ab roller"}},
}
