package catalog

// synonyms maps a normalized query token to additional tokens it should also
// match. Expansion is one level deep: synonyms of synonyms are not chased.
var synonyms = map[string][]string{
	"chest":      {"pec", "push", "bench"},
	"pec":        {"chest"},
	"pecs":       {"chest", "pec"},
	"back":       {"lat", "pull", "row"},
	"lats":       {"back", "lat"},
	"legs":       {"quads", "squat", "lunge"},
	"quad":       {"quads"},
	"hams":       {"hamstrings"},
	"hamstring":  {"hamstrings"},
	"glute":      {"glutes"},
	"butt":       {"glutes"},
	"shoulder":   {"shoulders", "delt"},
	"shoulders":  {"delt", "press"},
	"delts":      {"shoulders", "delt"},
	"arms":       {"biceps", "triceps", "curl"},
	"bicep":      {"biceps"},
	"bi":         {"biceps"},
	"tricep":     {"triceps"},
	"tri":        {"triceps"},
	"abs":        {"core", "crunch"},
	"ab":         {"core"},
	"stomach":    {"core"},
	"db":         {"dumbbell"},
	"dumbbells":  {"dumbbell"},
	"bb":         {"barbell"},
	"kb":         {"kettlebell"},
	"bw":         {"bodyweight"},
	"calisthenic": {"bodyweight"},
	"ohp":        {"overhead", "press"},
	"rdl":        {"romanian", "deadlift"},
	"cardio":     {"conditioning"},
}

// expandTokens returns the token set after one level of synonym expansion,
// duplicate-safe (a set, not a sequence).
func expandTokens(tokens []string) map[string]struct{} {
	expanded := make(map[string]struct{}, len(tokens)*2)
	for _, token := range tokens {
		expanded[token] = struct{}{}
		for _, syn := range synonyms[token] {
			expanded[syn] = struct{}{}
		}
	}
	return expanded
}
