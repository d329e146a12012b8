package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroexpo/expogan-backend/internal/models"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

func numericContest(min, max float64) *models.Contest {
	return &models.Contest{
		Name:          "Expo Primavera",
		ScoringScheme: models.SchemeNumeric,
		ScoreBounds:   &models.ScoreBounds{Min: min, Max: max},
	}
}

func positionContest(positions int) *models.Contest {
	return &models.Contest{
		Name:               "Jura de Clasificación",
		ScoringScheme:      models.SchemePosition,
		PositionsAvailable: positions,
	}
}

func gradeContest(grades ...string) *models.Contest {
	return &models.Contest{
		Name:          "Concurso de Productos",
		ScoringScheme: models.SchemeGrade,
		GradeSet:      grades,
	}
}

func TestValidateScoreNumeric(t *testing.T) {
	contest := numericContest(0, 100)

	tests := []struct {
		name     string
		score    *float64
		wantKind ErrorKind
	}{
		{name: "absent score passes", score: nil},
		{name: "score within bounds passes", score: floatPtr(87.5)},
		{name: "fractional values permitted", score: floatPtr(99.99)},
		{name: "score at lower bound passes", score: floatPtr(0)},
		{name: "score at upper bound passes", score: floatPtr(100)},
		{name: "score above bounds fails", score: floatPtr(105), wantKind: KindScoreOutOfBounds},
		{name: "score below bounds fails", score: floatPtr(-1), wantKind: KindScoreOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScore(contest, &models.Entry{NumericScore: tt.score})
			if tt.wantKind == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantKind, err.Kind)
		})
	}
}

func TestValidateScorePoints(t *testing.T) {
	contest := numericContest(0, 50)
	contest.ScoringScheme = models.SchemePoints

	assert.Nil(t, ValidateScore(contest, &models.Entry{NumericScore: floatPtr(42)}))
	err := ValidateScore(contest, &models.Entry{NumericScore: floatPtr(51)})
	require.NotNil(t, err)
	assert.Equal(t, KindScoreOutOfBounds, err.Kind)
}

func TestValidateScorePosition(t *testing.T) {
	contest := positionContest(5)

	assert.Nil(t, ValidateScore(contest, &models.Entry{}))
	assert.Nil(t, ValidateScore(contest, &models.Entry{Position: intPtr(1)}))
	assert.Nil(t, ValidateScore(contest, &models.Entry{Position: intPtr(5)}))

	for _, bad := range []int{0, -1, 6} {
		err := ValidateScore(contest, &models.Entry{Position: intPtr(bad)})
		require.NotNil(t, err, "position %d", bad)
		assert.Equal(t, KindPositionOutOfRange, err.Kind)
	}

	// Duplicate positions are legal at save time; ties resolve at ranking.
	assert.Nil(t, ValidateScore(contest, &models.Entry{Position: intPtr(1)}))
	assert.Nil(t, ValidateScore(contest, &models.Entry{Position: intPtr(1)}))
}

func TestValidateScoreGrade(t *testing.T) {
	t.Run("member of grade set passes", func(t *testing.T) {
		contest := gradeContest("A", "B", "C")
		assert.Nil(t, ValidateScore(contest, &models.Entry{Grade: strPtr("B")}))
	})

	t.Run("unknown grade fails", func(t *testing.T) {
		contest := gradeContest("A", "B", "C")
		err := ValidateScore(contest, &models.Entry{Grade: strPtr("Z")})
		require.NotNil(t, err)
		assert.Equal(t, KindUnknownGrade, err.Kind)
	})

	t.Run("grades are case-sensitive labels", func(t *testing.T) {
		contest := gradeContest("A", "B", "C")
		err := ValidateScore(contest, &models.Entry{Grade: strPtr("a")})
		require.NotNil(t, err)
		assert.Equal(t, KindUnknownGrade, err.Kind)
	})

	t.Run("empty grade set falls back to the default", func(t *testing.T) {
		contest := gradeContest()
		assert.Nil(t, ValidateScore(contest, &models.Entry{Grade: strPtr("E")}))
		err := ValidateScore(contest, &models.Entry{Grade: strPtr("F")})
		require.NotNil(t, err)
	})
}

func TestValidateScoreUnknownScheme(t *testing.T) {
	contest := &models.Contest{Name: "Broken", ScoringScheme: "RANKED_CHOICE"}
	err := ValidateScore(contest, &models.Entry{NumericScore: floatPtr(10)})
	require.NotNil(t, err)
	assert.Equal(t, KindUnknownScoringScheme, err.Kind)
	assert.True(t, err.IsConfigError())
}

func TestValidateScoreMissingBounds(t *testing.T) {
	contest := &models.Contest{Name: "Broken", ScoringScheme: models.SchemeNumeric}
	err := ValidateScore(contest, &models.Entry{NumericScore: floatPtr(10)})
	require.NotNil(t, err)
	assert.True(t, err.IsConfigError())
}

// A position contest with no available positions is broken configuration,
// not a data-entry mistake, and must surface as such.
func TestValidateScoreMissingPositions(t *testing.T) {
	contest := positionContest(0)
	err := ValidateScore(contest, &models.Entry{Position: intPtr(1)})
	require.NotNil(t, err)
	assert.Equal(t, KindUnknownScoringScheme, err.Kind)
	assert.True(t, err.IsConfigError())
}

func TestHasScore(t *testing.T) {
	assert.False(t, HasScore(numericContest(0, 100), &models.Entry{Position: intPtr(1)}))
	assert.True(t, HasScore(numericContest(0, 100), &models.Entry{NumericScore: floatPtr(1)}))
	assert.True(t, HasScore(positionContest(3), &models.Entry{Position: intPtr(1)}))
	assert.True(t, HasScore(gradeContest("A"), &models.Entry{Grade: strPtr("A")}))
}

// ValidateEntry collects every applicable failure so the user sees all
// problems at once, rather than fixing them one at a time.
func TestValidateEntryCollectsAllErrors(t *testing.T) {
	now := time.Now()
	tooYoung := now.AddDate(0, 0, -10)

	contest := numericContest(0, 100)
	category := &models.Category{Name: "Toros", SexConstraint: models.SexConstraintMacho}
	entry := &models.Entry{
		Species:      "bovino",
		Sex:          models.SexHembra,
		BirthDate:    &tooYoung,
		NumericScore: floatPtr(105),
	}

	errs := ValidateEntry(contest, category, entry, now)
	require.Len(t, errs, 3)

	kinds := make([]ErrorKind, 0, len(errs))
	for _, e := range errs {
		kinds = append(kinds, e.Kind)
	}
	assert.ElementsMatch(t, []ErrorKind{KindAgeBelowMinimum, KindSexMismatch, KindScoreOutOfBounds}, kinds)
}

func TestValidateEntryWithoutCategory(t *testing.T) {
	contest := numericContest(0, 100)
	entry := &models.Entry{Species: "bovino", NumericScore: floatPtr(50)}
	assert.Empty(t, ValidateEntry(contest, nil, entry, time.Now()))
}
