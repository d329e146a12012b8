package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agroexpo/expogan-backend/internal/models"
	"github.com/agroexpo/expogan-backend/internal/repositories"
	"github.com/agroexpo/expogan-backend/internal/scoring"
)

// ContestService defines the interface for contest and category operations
type ContestService interface {
	// CreateContest validates the scoring-scheme configuration and persists the contest
	CreateContest(ctx context.Context, contest *models.Contest) error

	// UpdateContest re-validates and persists contest changes; finalized contests are immutable
	UpdateContest(ctx context.Context, contest *models.Contest) error

	// GetContestByID retrieves a contest by its ID
	GetContestByID(ctx context.Context, id primitive.ObjectID) (*models.Contest, error)

	// GetContests retrieves contests with pagination
	GetContests(ctx context.Context, page, limit int) ([]*models.Contest, error)

	// FinalizeContest freezes a contest; entries become immutable afterwards
	FinalizeContest(ctx context.Context, id primitive.ObjectID) (*models.Contest, error)

	// DeleteContest removes a contest
	DeleteContest(ctx context.Context, id primitive.ObjectID) error

	// CreateCategory validates category constraints against the species policy and persists
	CreateCategory(ctx context.Context, category *models.Category) error

	// UpdateCategory re-validates and persists category changes
	UpdateCategory(ctx context.Context, category *models.Category) error

	// GetCategoriesByContestID lists a contest's categories
	GetCategoriesByContestID(ctx context.Context, contestID primitive.ObjectID) ([]*models.Category, error)

	// DeleteCategory removes a category
	DeleteCategory(ctx context.Context, id primitive.ObjectID) error
}

// EntryService defines the interface for entry registration and editing
type EntryService interface {
	// RegisterEntry validates and persists a new entry. The returned slice
	// carries every validation failure found; the entry is only persisted
	// when it is empty.
	RegisterEntry(ctx context.Context, entry *models.Entry) ([]*scoring.ValidationError, error)

	// UpdateEntry re-validates and persists entry changes under the same rules
	UpdateEntry(ctx context.Context, entry *models.Entry) ([]*scoring.ValidationError, error)

	// GetEntryByID retrieves an entry by its ID
	GetEntryByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error)

	// GetEntriesByCategoryID lists a category's raw roster with pagination
	GetEntriesByCategoryID(ctx context.Context, categoryID primitive.ObjectID, page, limit int) ([]*models.Entry, error)

	// SearchEntries lists entries matching optional filters with pagination
	SearchEntries(ctx context.Context, search repositories.EntrySearch, page, limit int) ([]*models.Entry, error)

	// SetDestacado toggles the manual "featured" flag
	SetDestacado(ctx context.Context, id primitive.ObjectID, destacado bool) (*models.Entry, error)

	// DeleteEntry removes an entry
	DeleteEntry(ctx context.Context, id primitive.ObjectID) error
}

// ResultsService defines the interface for computed rankings and the
// public winners view
type ResultsService interface {
	// ComputeContestResults recomputes the full ranking and champion set
	// for one contest from the current entry snapshot
	ComputeContestResults(ctx context.Context, contestID primitive.ObjectID) (*ContestResultsResponse, error)

	// QueryWinners serves the filtered public winners view
	QueryWinners(ctx context.Context, query scoring.ResultsQuery) (map[primitive.ObjectID]*models.ContestWinners, error)
}

// AuthService defines the interface for organizer authentication
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}
