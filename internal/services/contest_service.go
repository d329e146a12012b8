package services

import (
	"errors"
	"fmt"
	"time"

	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/agroexpo/expogan-backend/internal/models"
	"github.com/agroexpo/expogan-backend/internal/repositories"
	"github.com/agroexpo/expogan-backend/internal/scoring"
)

// Compile-time check to ensure ContestServiceImpl implements ContestService
var _ ContestService = (*ContestServiceImpl)(nil)

// ErrContestFinalized is returned for any mutation against a finalized contest
var ErrContestFinalized = errors.New("contest is finalized and can no longer be modified")

var validate = newContestValidator()

// newContestValidator wires the struct-level rule that exactly one scheme
// payload is active, selected by the scoring scheme.
func newContestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(contestSchemeValidation, models.Contest{})
	return v
}

func contestSchemeValidation(sl validator.StructLevel) {
	contest := sl.Current().Interface().(models.Contest)
	switch contest.ScoringScheme {
	case models.SchemeNumeric, models.SchemePoints:
		if contest.ScoreBounds == nil {
			sl.ReportError(contest.ScoreBounds, "ScoreBounds", "scoreBounds", "required_for_scheme", "")
		} else if contest.ScoreBounds.Min >= contest.ScoreBounds.Max {
			sl.ReportError(contest.ScoreBounds, "ScoreBounds", "scoreBounds", "min_below_max", "")
		}
		if contest.PositionsAvailable != 0 || len(contest.GradeSet) != 0 {
			sl.ReportError(contest.ScoringScheme, "ScoringScheme", "scoringScheme", "conflicting_scheme_payload", "")
		}
	case models.SchemePosition:
		if contest.PositionsAvailable < 1 {
			sl.ReportError(contest.PositionsAvailable, "PositionsAvailable", "positionsAvailable", "required_for_scheme", "")
		}
		if contest.ScoreBounds != nil || len(contest.GradeSet) != 0 {
			sl.ReportError(contest.ScoringScheme, "ScoringScheme", "scoringScheme", "conflicting_scheme_payload", "")
		}
	case models.SchemeGrade:
		// An empty grade set is fine: the built-in default applies.
		if contest.ScoreBounds != nil || contest.PositionsAvailable != 0 {
			sl.ReportError(contest.ScoringScheme, "ScoringScheme", "scoringScheme", "conflicting_scheme_payload", "")
		}
	default:
		sl.ReportError(contest.ScoringScheme, "ScoringScheme", "scoringScheme", "unknown_scheme", "")
	}
}

// ContestServiceImpl handles contest and category business logic
type ContestServiceImpl struct {
	contestRepo  repositories.ContestRepository
	categoryRepo repositories.CategoryRepository
}

// NewContestService creates a new ContestServiceImpl
func NewContestService(contestRepo repositories.ContestRepository, categoryRepo repositories.CategoryRepository) *ContestServiceImpl {
	return &ContestServiceImpl{
		contestRepo:  contestRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateContest validates the scheme configuration and persists the contest
func (s *ContestServiceImpl) CreateContest(ctx context.Context, contest *models.Contest) error {
	if err := validate.Struct(contest); err != nil {
		slog.Warn("Rejected contest with invalid scheme configuration", "name", contest.Name, "scheme", contest.ScoringScheme, "error", err)
		return fmt.Errorf("invalid contest configuration: %w", err)
	}
	if err := s.contestRepo.Create(ctx, contest); err != nil {
		slog.Error("Failed to create contest", "error", err, "name", contest.Name)
		return fmt.Errorf("failed to create contest: %w", err)
	}
	slog.Info("Contest created", "contestId", contest.ID, "name", contest.Name, "scheme", contest.ScoringScheme)
	return nil
}

// UpdateContest re-validates and persists contest changes
func (s *ContestServiceImpl) UpdateContest(ctx context.Context, contest *models.Contest) error {
	existing, err := s.contestRepo.FindByID(ctx, contest.ID)
	if err != nil {
		return fmt.Errorf("contest not found: %w", err)
	}
	if existing.Finalized {
		return ErrContestFinalized
	}
	if err := validate.Struct(contest); err != nil {
		return fmt.Errorf("invalid contest configuration: %w", err)
	}
	if err := s.contestRepo.Update(ctx, contest); err != nil {
		slog.Error("Failed to update contest", "error", err, "contestId", contest.ID)
		return fmt.Errorf("failed to update contest: %w", err)
	}
	return nil
}

// GetContestByID retrieves a contest by ID
func (s *ContestServiceImpl) GetContestByID(ctx context.Context, id primitive.ObjectID) (*models.Contest, error) {
	contest, err := s.contestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve contest: %w", err)
	}
	return contest, nil
}

// GetContests retrieves contests with pagination
func (s *ContestServiceImpl) GetContests(ctx context.Context, page, limit int) ([]*models.Contest, error) {
	contests, err := s.contestRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve contests: %w", err)
	}
	return contests, nil
}

// FinalizeContest freezes a contest. Entries become immutable afterwards;
// rankings stay recomputable from the frozen snapshot.
func (s *ContestServiceImpl) FinalizeContest(ctx context.Context, id primitive.ObjectID) (*models.Contest, error) {
	contest, err := s.contestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("contest not found: %w", err)
	}
	if contest.Finalized {
		return contest, nil // already frozen, idempotent
	}
	contest.Finalized = true
	contest.FinalizedAt = time.Now()
	if err := s.contestRepo.Update(ctx, contest); err != nil {
		slog.Error("Failed to finalize contest", "error", err, "contestId", id)
		return nil, fmt.Errorf("failed to finalize contest: %w", err)
	}
	slog.Info("Contest finalized", "contestId", id, "name", contest.Name)
	return contest, nil
}

// DeleteContest removes a contest
func (s *ContestServiceImpl) DeleteContest(ctx context.Context, id primitive.ObjectID) error {
	if err := s.contestRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contest: %w", err)
	}
	return nil
}

// CreateCategory checks the category's constraints against the species
// policy and persists it
func (s *ContestServiceImpl) CreateCategory(ctx context.Context, category *models.Category) error {
	contest, err := s.contestRepo.FindByID(ctx, category.ContestID)
	if err != nil {
		return fmt.Errorf("contest not found: %w", err)
	}
	if contest.Finalized {
		return ErrContestFinalized
	}
	if verr := scoring.ValidateCategoryPolicy(category, category.Species); verr != nil {
		slog.Warn("Rejected category below species age floor", "name", category.Name, "species", category.Species)
		return verr
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		slog.Error("Failed to create category", "error", err, "name", category.Name)
		return fmt.Errorf("failed to create category: %w", err)
	}
	slog.Info("Category created", "categoryId", category.ID, "contestId", category.ContestID, "name", category.Name)
	return nil
}

// UpdateCategory re-validates and persists category changes
func (s *ContestServiceImpl) UpdateCategory(ctx context.Context, category *models.Category) error {
	contest, err := s.contestRepo.FindByID(ctx, category.ContestID)
	if err != nil {
		return fmt.Errorf("contest not found: %w", err)
	}
	if contest.Finalized {
		return ErrContestFinalized
	}
	if verr := scoring.ValidateCategoryPolicy(category, category.Species); verr != nil {
		return verr
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// GetCategoriesByContestID lists a contest's categories
func (s *ContestServiceImpl) GetCategoriesByContestID(ctx context.Context, contestID primitive.ObjectID) ([]*models.Category, error) {
	categories, err := s.categoryRepo.FindByContestID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// DeleteCategory removes a category
func (s *ContestServiceImpl) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
