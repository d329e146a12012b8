package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"

	"github.com/agroexpo/expogan-backend/internal/models"
	"github.com/agroexpo/expogan-backend/internal/repositories"
	"github.com/agroexpo/expogan-backend/internal/scoring"
)

// Compile-time check to ensure EntryServiceImpl implements EntryService
var _ EntryService = (*EntryServiceImpl)(nil)

// ErrFichaNumberTaken is returned when another entry in the same contest
// already holds the ficha number
var ErrFichaNumberTaken = errors.New("ficha number is already taken in this contest")

// EntryServiceImpl handles entry registration and editing
type EntryServiceImpl struct {
	contestRepo  repositories.ContestRepository
	categoryRepo repositories.CategoryRepository
	entryRepo    repositories.EntryRepository
	now          func() time.Time
}

// NewEntryService creates a new EntryServiceImpl
func NewEntryService(
	contestRepo repositories.ContestRepository,
	categoryRepo repositories.CategoryRepository,
	entryRepo repositories.EntryRepository,
) *EntryServiceImpl {
	return &EntryServiceImpl{
		contestRepo:  contestRepo,
		categoryRepo: categoryRepo,
		entryRepo:    entryRepo,
		now:          time.Now,
	}
}

// validateAgainstContest loads the contest and category and runs the full
// validation chain, collecting every failure. Returns the contest so
// callers can stamp the scheme echo.
func (s *EntryServiceImpl) validateAgainstContest(ctx context.Context, entry *models.Entry) (*models.Contest, []*scoring.ValidationError, error) {
	contest, err := s.contestRepo.FindByID(ctx, entry.ContestID)
	if err != nil {
		return nil, nil, fmt.Errorf("contest not found: %w", err)
	}
	if contest.Finalized {
		return nil, nil, ErrContestFinalized
	}

	var category *models.Category
	if !entry.CategoryID.IsZero() {
		category, err = s.categoryRepo.FindByID(ctx, entry.CategoryID)
		if err != nil {
			return nil, nil, fmt.Errorf("category not found: %w", err)
		}
	}

	entry.Species = scoring.NormalizeSpecies(entry.Species)
	errs := scoring.ValidateEntry(contest, category, entry, s.now())
	return contest, errs, nil
}

// checkFichaUnique enforces ficha-number uniqueness per contest. selfID is
// zero on registration, the entry's own ID on edits.
func (s *EntryServiceImpl) checkFichaUnique(ctx context.Context, entry *models.Entry, selfID primitive.ObjectID) error {
	existing, err := s.entryRepo.FindByFichaNumber(ctx, entry.ContestID, entry.FichaNumber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil
		}
		return fmt.Errorf("failed to check ficha number: %w", err)
	}
	if existing.ID != selfID {
		return ErrFichaNumberTaken
	}
	return nil
}

// RegisterEntry validates and persists a new entry
func (s *EntryServiceImpl) RegisterEntry(ctx context.Context, entry *models.Entry) ([]*scoring.ValidationError, error) {
	contest, verrs, err := s.validateAgainstContest(ctx, entry)
	if err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		slog.Info("Entry registration rejected by validation", "contestId", entry.ContestID, "ficha", entry.FichaNumber, "failures", len(verrs))
		return verrs, nil
	}
	if err := s.checkFichaUnique(ctx, entry, primitive.NilObjectID); err != nil {
		return nil, err
	}

	entry.ScoringSchemeEcho = contest.ScoringScheme
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		slog.Error("Failed to create entry", "error", err, "contestId", entry.ContestID, "ficha", entry.FichaNumber)
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	slog.Info("Entry registered", "entryId", entry.ID, "contestId", entry.ContestID, "ficha", entry.FichaNumber, "species", entry.Species)
	return nil, nil
}

// UpdateEntry re-validates and persists entry changes. Edits re-run the
// whole validation chain; finalized contests reject edits outright.
func (s *EntryServiceImpl) UpdateEntry(ctx context.Context, entry *models.Entry) ([]*scoring.ValidationError, error) {
	existing, err := s.entryRepo.FindByID(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("entry not found: %w", err)
	}
	contest, verrs, err := s.validateAgainstContest(ctx, entry)
	if err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		return verrs, nil
	}
	if err := s.checkFichaUnique(ctx, entry, entry.ID); err != nil {
		return nil, err
	}

	// Fields the edit form does not own carry over from the stored record:
	// the destacado flag has its own endpoint and must survive ordinary edits.
	entry.IsDestacado = existing.IsDestacado
	entry.CreatedAt = existing.CreatedAt

	entry.ScoringSchemeEcho = contest.ScoringScheme
	if err := s.entryRepo.Update(ctx, entry); err != nil {
		slog.Error("Failed to update entry", "error", err, "entryId", entry.ID)
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return nil, nil
}

// GetEntryByID retrieves an entry by ID
func (s *EntryServiceImpl) GetEntryByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error) {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve entry: %w", err)
	}
	return entry, nil
}

// GetEntriesByCategoryID lists a category's raw roster. Unscored entries
// are included here; only the ranking view excludes them.
func (s *EntryServiceImpl) GetEntriesByCategoryID(ctx context.Context, categoryID primitive.ObjectID, page, limit int) ([]*models.Entry, error) {
	entries, err := s.entryRepo.FindByCategoryID(ctx, categoryID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}
	return entries, nil
}

// SearchEntries lists entries matching optional filters
func (s *EntryServiceImpl) SearchEntries(ctx context.Context, search repositories.EntrySearch, page, limit int) ([]*models.Entry, error) {
	if search.Species != "" {
		search.Species = scoring.NormalizeSpecies(search.Species)
	}
	entries, err := s.entryRepo.Search(ctx, search, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	return entries, nil
}

// SetDestacado toggles the manual "featured" flag, which is independent of
// ranking and survives recomputation
func (s *EntryServiceImpl) SetDestacado(ctx context.Context, id primitive.ObjectID, destacado bool) (*models.Entry, error) {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("entry not found: %w", err)
	}
	contest, err := s.contestRepo.FindByID(ctx, entry.ContestID)
	if err != nil {
		return nil, fmt.Errorf("contest not found: %w", err)
	}
	if contest.Finalized {
		return nil, ErrContestFinalized
	}
	entry.IsDestacado = destacado
	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes an entry
func (s *EntryServiceImpl) DeleteEntry(ctx context.Context, id primitive.ObjectID) error {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("entry not found: %w", err)
	}
	contest, err := s.contestRepo.FindByID(ctx, entry.ContestID)
	if err != nil {
		return fmt.Errorf("contest not found: %w", err)
	}
	if contest.Finalized {
		return ErrContestFinalized
	}
	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	slog.Info("Entry deleted", "entryId", id, "contestId", entry.ContestID)
	return nil
}
