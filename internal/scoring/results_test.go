package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agroexpo/expogan-backend/internal/models"
)

// resultsFixture builds one numeric contest with a bovino and an ovino
// category, ranking and champion flags computed.
func resultsFixture(t *testing.T) *ContestResults {
	t.Helper()

	contest := numericContest(0, 100)
	contest.ID = primitive.NewObjectID()
	catBovinos := &models.Category{ID: primitive.NewObjectID(), ContestID: contest.ID, Name: "Bovinos Adultos"}
	catOvinos := &models.Category{ID: primitive.NewObjectID(), ContestID: contest.ID, Name: "Ovinos"}

	entries := []*models.Entry{
		{FichaNumber: 1, ContestID: contest.ID, CategoryID: catBovinos.ID, Species: "bovino", Breed: "Angus", Sex: models.SexMacho, NumericScore: floatPtr(95)},
		{FichaNumber: 2, ContestID: contest.ID, CategoryID: catBovinos.ID, Species: "bovino", Breed: "Hereford", Sex: models.SexMacho, NumericScore: floatPtr(90)},
		{FichaNumber: 3, ContestID: contest.ID, CategoryID: catOvinos.ID, Species: "ovino", Breed: "Corriedale", Sex: models.SexHembra, NumericScore: floatPtr(88)},
	}

	ranked := RankContest(contest, entries)
	AggregateChampions(contest, ranked, nil)
	return &ContestResults{
		Contest:    contest,
		Categories: []*models.Category{catBovinos, catOvinos},
		Ranked:     ranked,
	}
}

// With every filter absent or "all", every scored entry survives.
func TestFilterResultsNoFilters(t *testing.T) {
	fixture := resultsFixture(t)

	out := FilterResults(ResultsQuery{Species: "all", Breed: ""}, []*ContestResults{fixture})
	require.Len(t, out, 1)
	winners := out[fixture.Contest.ID].Winners
	require.Len(t, winners, 3)

	// Rank ascending within the contest group, ficha breaking ties.
	assert.Equal(t, 1, winners[0].RankPosition)
	assert.Equal(t, 1, winners[1].RankPosition)
	assert.Equal(t, 2, winners[2].RankPosition)
	assert.LessOrEqual(t, winners[0].Entry.FichaNumber, winners[1].Entry.FichaNumber)
}

func TestFilterResultsBySpecies(t *testing.T) {
	fixture := resultsFixture(t)

	out := FilterResults(ResultsQuery{Species: "bovino"}, []*ContestResults{fixture})
	require.Len(t, out, 1)
	for _, w := range out[fixture.Contest.ID].Winners {
		assert.Equal(t, "bovino", w.Entry.Species)
	}
	assert.Len(t, out[fixture.Contest.ID].Winners, 2)
}

func TestFilterResultsByCategoryName(t *testing.T) {
	fixture := resultsFixture(t)

	out := FilterResults(ResultsQuery{CategoryName: "ovinos"}, []*ContestResults{fixture})
	require.Len(t, out, 1)
	winners := out[fixture.Contest.ID].Winners
	require.Len(t, winners, 1)
	assert.Equal(t, 3, winners[0].Entry.FichaNumber)
}

func TestFilterResultsByBreed(t *testing.T) {
	fixture := resultsFixture(t)

	out := FilterResults(ResultsQuery{Breed: "angus"}, []*ContestResults{fixture})
	require.Len(t, out, 1)
	winners := out[fixture.Contest.ID].Winners
	require.Len(t, winners, 1)
	assert.Equal(t, "Angus", winners[0].Entry.Breed)
}

// Prize filtering matches organizer-authored labels by case-insensitive
// substring: "campeón" catches "Gran Campeón" and "Campeón de Categoría".
func TestFilterResultsByPrizeType(t *testing.T) {
	fixture := resultsFixture(t)

	out := FilterResults(ResultsQuery{Species: "bovino", PrizeType: "campeón"}, []*ContestResults{fixture})
	require.Len(t, out, 1)
	winners := out[fixture.Contest.ID].Winners
	require.NotEmpty(t, winners)
	for _, w := range winners {
		assert.Equal(t, "bovino", w.Entry.Species)
		assert.Contains(t, []string{"Gran Campeón", "Campeón Reserva", "Campeón de Categoría"}, w.PrizeLabel)
	}
}

func TestFilterResultsIntersection(t *testing.T) {
	fixture := resultsFixture(t)

	// Species matches but breed does not: intersection is empty, so the
	// contest group is absent from the output.
	out := FilterResults(ResultsQuery{Species: "bovino", Breed: "Corriedale"}, []*ContestResults{fixture})
	assert.Empty(t, out)
}

func TestFilterResultsLimit(t *testing.T) {
	fixture := resultsFixture(t)

	out := FilterResults(ResultsQuery{Limit: 1}, []*ContestResults{fixture})
	require.Len(t, out, 1)
	winners := out[fixture.Contest.ID].Winners
	require.Len(t, winners, 1)
	assert.Equal(t, 1, winners[0].RankPosition)
}

func TestFilterResultsByContestID(t *testing.T) {
	fixture := resultsFixture(t)
	other := primitive.NewObjectID()

	out := FilterResults(ResultsQuery{ContestID: &other}, []*ContestResults{fixture})
	assert.Empty(t, out)

	out = FilterResults(ResultsQuery{ContestID: &fixture.Contest.ID}, []*ContestResults{fixture})
	assert.Len(t, out, 1)
}

func TestPrizeLabel(t *testing.T) {
	tests := []struct {
		name   string
		ranked *models.RankedEntry
		want   string
	}{
		{name: "grand champion", ranked: &models.RankedEntry{RankPosition: 1, IsCategoryChampion: true, IsGroupChampion: true, IsGrandChampion: true}, want: "Gran Campeón"},
		{name: "group best", ranked: &models.RankedEntry{RankPosition: 1, IsCategoryChampion: true, IsGroupChampion: true}, want: "Campeón Reserva"},
		{name: "category champion", ranked: &models.RankedEntry{RankPosition: 1, IsCategoryChampion: true}, want: "Campeón de Categoría"},
		{name: "second place", ranked: &models.RankedEntry{RankPosition: 2}, want: "Segundo Lugar"},
		{name: "third place", ranked: &models.RankedEntry{RankPosition: 3}, want: "Tercer Lugar"},
		{name: "further places numbered", ranked: &models.RankedEntry{RankPosition: 7}, want: "Puesto 7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrizeLabel(tt.ranked))
		})
	}
}
