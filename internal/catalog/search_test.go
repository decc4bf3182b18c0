package catalog_test

import (
	"testing"

	"reptrack/reptrack/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []catalog.Exercise {
	return []catalog.Exercise{
		{
			ID:               "bench-press",
			Name:             "Bench Press",
			PrimaryMuscle:    "Chest",
			SecondaryMuscles: []string{"Triceps", "Shoulders"},
			Equipment:        "Barbell",
			MovementPattern:  "Push",
			Compound:         true,
		},
		{
			ID:              "leg-curl",
			Name:            "Leg Curl",
			PrimaryMuscle:   "Hamstrings",
			Equipment:       "Machine",
			MovementPattern: "Curl",
		},
		{
			ID:              "push-up",
			Name:            "Push Up",
			PrimaryMuscle:   "Chest",
			Equipment:       "None",
			MovementPattern: "Push",
			Compound:        true,
			Bodyweight:      true,
			SearchIndex:     []string{"pushup", "press up"},
		},
	}
}

func resultIDs(results []catalog.Result) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Exercise.ID
	}
	return ids
}

func TestSearch_EmptyQuery(t *testing.T) {
	assert.Empty(t, catalog.Search(testCatalog(), "", catalog.SearchOptions{}))
	assert.Empty(t, catalog.Search(testCatalog(), "   \t ", catalog.SearchOptions{}))
}

func TestSearch_MuscleGroupQuery(t *testing.T) {
	results := catalog.Search(testCatalog(), "chest", catalog.SearchOptions{})

	ids := resultIDs(results)
	require.Contains(t, ids, "bench-press")
	assert.NotContains(t, ids, "leg-curl", "zero-score candidates are excluded entirely")

	for _, r := range results {
		if r.Exercise.ID == "bench-press" {
			// "chest" hits the primary muscle (5); its synonyms "bench"
			// (name prefix, 7) and "push" (movement pattern, 3) add up.
			assert.GreaterOrEqual(t, r.Score, 5)
		}
	}
}

func TestSearch_ExactNameBeatsWeakerFields(t *testing.T) {
	candidates := []catalog.Exercise{
		{ID: "squat", Name: "Squat", PrimaryMuscle: "Quads", MovementPattern: "Squat"},
		{ID: "goblet-squat", Name: "Goblet Squat", PrimaryMuscle: "Quads", MovementPattern: "Squat"},
	}
	results := catalog.Search(candidates, "squat", catalog.SearchOptions{})
	require.Len(t, results, 2)
	assert.Equal(t, "squat", results[0].Exercise.ID)
	assert.Equal(t, 10, results[0].Score)
	assert.Equal(t, 6, results[1].Score, "substring match, since the name does not start with the token")
}

func TestSearch_SynonymExpansion(t *testing.T) {
	// "pecs" itself appears nowhere; its synonyms reach the chest exercises.
	results := catalog.Search(testCatalog(), "pecs", catalog.SearchOptions{})
	assert.Contains(t, resultIDs(results), "bench-press")
}

func TestSearch_FlagKeyword(t *testing.T) {
	results := catalog.Search(testCatalog(), "bodyweight", catalog.SearchOptions{})
	require.Equal(t, []string{"push-up"}, resultIDs(results))
	assert.Equal(t, 5, results[0].Score)
}

func TestSearch_ExclusionList(t *testing.T) {
	results := catalog.Search(testCatalog(), "chest", catalog.SearchOptions{
		ExcludeIDs: []string{"bench-press"},
	})
	assert.NotContains(t, resultIDs(results), "bench-press")
}

func TestSearch_LimitAndOrdering(t *testing.T) {
	candidates := make([]catalog.Exercise, 0, 10)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		candidates = append(candidates, catalog.Exercise{
			ID:            id,
			Name:          "Row " + id,
			PrimaryMuscle: "Back",
		})
	}

	results := catalog.Search(candidates, "back", catalog.SearchOptions{})
	assert.Len(t, results, catalog.DefaultSearchLimit)
	// Equal scores keep catalog order (stable sort, no tie-break rule).
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, resultIDs(results))

	results = catalog.Search(candidates, "back", catalog.SearchOptions{Limit: 2})
	assert.Len(t, results, 2)
}

func TestSearch_ScoresAdditiveAcrossTokens(t *testing.T) {
	results := catalog.Search(testCatalog(), "barbell chest", catalog.SearchOptions{})
	require.NotEmpty(t, results)
	assert.Equal(t, "bench-press", results[0].Exercise.ID)

	// "barbell" hits equipment (4); "chest" and its synonyms contribute on
	// top, so the total must exceed any single-field weight.
	assert.Greater(t, results[0].Score, 10)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Bench   Press ", "bench press"},
		{"Curl (EZ-Bar)!!", "curl ez bar"},
		{"Café Crünch", "cafe crunch"},
		{"---", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, catalog.Normalize(tc.in), "input %q", tc.in)
	}
}

func TestDefaultCatalogIsSearchable(t *testing.T) {
	exercises := catalog.Default()
	require.NotEmpty(t, exercises)

	seen := make(map[string]bool, len(exercises))
	for _, ex := range exercises {
		assert.NotEmpty(t, ex.ID)
		assert.NotEmpty(t, ex.Name)
		assert.False(t, seen[ex.ID], "duplicate catalog id %q", ex.ID)
		seen[ex.ID] = true
	}

	results := catalog.Search(exercises, "deadlift", catalog.SearchOptions{})
	require.NotEmpty(t, results)
	assert.Equal(t, "deadlift", results[0].Exercise.ID)
}
