package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroexpo/expogan-backend/internal/models"
	"github.com/agroexpo/expogan-backend/internal/scoring"
)

type entryServiceFixture struct {
	svc          *EntryServiceImpl
	contestRepo  *fakeContestRepo
	categoryRepo *fakeCategoryRepo
	entryRepo    *fakeEntryRepo
	contest      *models.Contest
	category     *models.Category
}

// newEntryServiceFixture seeds a NUMERIC contest with one open bovine
// category and pins the evaluation clock.
func newEntryServiceFixture(t *testing.T) *entryServiceFixture {
	t.Helper()
	contestRepo := newFakeContestRepo()
	categoryRepo := newFakeCategoryRepo()
	entryRepo := newFakeEntryRepo()

	contest := &models.Contest{
		Name:          "Expo Nacional",
		ScoringScheme: models.SchemeNumeric,
		ScoreBounds:   &models.ScoreBounds{Min: 0, Max: 100},
	}
	require.NoError(t, contestRepo.Create(context.Background(), contest))

	category := &models.Category{
		ContestID:     contest.ID,
		Name:          "Vaquillonas",
		Species:       "bovino",
		SexConstraint: models.SexConstraintHembra,
		AgeRange:      &models.AgeRange{MinDays: 30, MaxDays: 720},
	}
	require.NoError(t, categoryRepo.Create(context.Background(), category))

	svc := NewEntryService(contestRepo, categoryRepo, entryRepo)
	svc.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

	return &entryServiceFixture{
		svc:          svc,
		contestRepo:  contestRepo,
		categoryRepo: categoryRepo,
		entryRepo:    entryRepo,
		contest:      contest,
		category:     category,
	}
}

func (f *entryServiceFixture) validEntry(ficha int) *models.Entry {
	birth := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	score := 87.5
	return &models.Entry{
		ContestID:    f.contest.ID,
		CategoryID:   f.category.ID,
		FichaNumber:  ficha,
		Species:      "bovino",
		Breed:        "Brangus",
		Sex:          models.SexHembra,
		BirthDate:    &birth,
		NumericScore: &score,
	}
}

func TestRegisterEntryStampsSchemeEcho(t *testing.T) {
	f := newEntryServiceFixture(t)
	entry := f.validEntry(101)

	verrs, err := f.svc.RegisterEntry(context.Background(), entry)
	require.NoError(t, err)
	require.Empty(t, verrs)
	assert.False(t, entry.ID.IsZero())
	assert.Equal(t, models.SchemeNumeric, entry.ScoringSchemeEcho)
}

func TestRegisterEntryRejectsDuplicateFicha(t *testing.T) {
	f := newEntryServiceFixture(t)
	verrs, err := f.svc.RegisterEntry(context.Background(), f.validEntry(101))
	require.NoError(t, err)
	require.Empty(t, verrs)

	_, err = f.svc.RegisterEntry(context.Background(), f.validEntry(101))
	assert.ErrorIs(t, err, ErrFichaNumberTaken)
}

func TestRegisterEntryReturnsValidationFailures(t *testing.T) {
	f := newEntryServiceFixture(t)
	entry := f.validEntry(101)
	entry.Sex = models.SexMacho
	badScore := 150.0
	entry.NumericScore = &badScore

	verrs, err := f.svc.RegisterEntry(context.Background(), entry)
	require.NoError(t, err)
	require.Len(t, verrs, 2)

	kinds := []scoring.ErrorKind{verrs[0].Kind, verrs[1].Kind}
	assert.ElementsMatch(t, []scoring.ErrorKind{scoring.KindSexMismatch, scoring.KindScoreOutOfBounds}, kinds)

	// Nothing persisted on rejection.
	n, _ := f.entryRepo.CountByContestID(context.Background(), f.contest.ID)
	assert.Zero(t, n)
}

func TestRegisterEntryNormalizesSpecies(t *testing.T) {
	f := newEntryServiceFixture(t)
	entry := f.validEntry(101)
	entry.Species = "  BOVINO "

	verrs, err := f.svc.RegisterEntry(context.Background(), entry)
	require.NoError(t, err)
	require.Empty(t, verrs)
	assert.Equal(t, "bovino", entry.Species)
}

func TestRegisterEntryRejectedAfterFinalize(t *testing.T) {
	f := newEntryServiceFixture(t)
	f.contest.Finalized = true

	_, err := f.svc.RegisterEntry(context.Background(), f.validEntry(101))
	assert.ErrorIs(t, err, ErrContestFinalized)
}

func TestUpdateEntryKeepsOwnFicha(t *testing.T) {
	f := newEntryServiceFixture(t)
	entry := f.validEntry(101)
	verrs, err := f.svc.RegisterEntry(context.Background(), entry)
	require.NoError(t, err)
	require.Empty(t, verrs)

	// Re-saving with the same ficha must not collide with itself.
	newScore := 91.0
	entry.NumericScore = &newScore
	verrs, err = f.svc.UpdateEntry(context.Background(), entry)
	require.NoError(t, err)
	assert.Empty(t, verrs)
}

func TestUpdateEntryRejectsTakenFicha(t *testing.T) {
	f := newEntryServiceFixture(t)
	first := f.validEntry(101)
	verrs, err := f.svc.RegisterEntry(context.Background(), first)
	require.NoError(t, err)
	require.Empty(t, verrs)

	second := f.validEntry(102)
	verrs, err = f.svc.RegisterEntry(context.Background(), second)
	require.NoError(t, err)
	require.Empty(t, verrs)

	second.FichaNumber = 101
	_, err = f.svc.UpdateEntry(context.Background(), second)
	assert.ErrorIs(t, err, ErrFichaNumberTaken)
}

func TestUpdateEntryPreservesDestacadoAndCreatedAt(t *testing.T) {
	f := newEntryServiceFixture(t)
	entry := f.validEntry(101)
	verrs, err := f.svc.RegisterEntry(context.Background(), entry)
	require.NoError(t, err)
	require.Empty(t, verrs)

	created := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	entry.CreatedAt = created
	_, err = f.svc.SetDestacado(context.Background(), entry.ID, true)
	require.NoError(t, err)

	// An ordinary edit rebuilds the model from form data, which carries
	// neither the destacado flag nor the original creation time.
	edited := f.validEntry(101)
	edited.ID = entry.ID
	newScore := 91.0
	edited.NumericScore = &newScore

	verrs, err = f.svc.UpdateEntry(context.Background(), edited)
	require.NoError(t, err)
	require.Empty(t, verrs)

	stored, err := f.entryRepo.FindByID(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsDestacado)
	assert.Equal(t, created, stored.CreatedAt)
	assert.Equal(t, 91.0, *stored.NumericScore)
}

func TestSetDestacado(t *testing.T) {
	f := newEntryServiceFixture(t)
	entry := f.validEntry(101)
	verrs, err := f.svc.RegisterEntry(context.Background(), entry)
	require.NoError(t, err)
	require.Empty(t, verrs)

	updated, err := f.svc.SetDestacado(context.Background(), entry.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsDestacado)

	f.contest.Finalized = true
	_, err = f.svc.SetDestacado(context.Background(), entry.ID, false)
	assert.ErrorIs(t, err, ErrContestFinalized)
}

func TestDeleteEntryRejectedAfterFinalize(t *testing.T) {
	f := newEntryServiceFixture(t)
	entry := f.validEntry(101)
	verrs, err := f.svc.RegisterEntry(context.Background(), entry)
	require.NoError(t, err)
	require.Empty(t, verrs)

	f.contest.Finalized = true
	err = f.svc.DeleteEntry(context.Background(), entry.ID)
	assert.ErrorIs(t, err, ErrContestFinalized)
}
