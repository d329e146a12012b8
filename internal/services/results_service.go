package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/agroexpo/expogan-backend/internal/models"
	"github.com/agroexpo/expogan-backend/internal/repositories"
	"github.com/agroexpo/expogan-backend/internal/scoring"
)

// Compile-time check to ensure ResultsServiceImpl implements ResultsService
var _ ResultsService = (*ResultsServiceImpl)(nil)

// ContestResultsResponse is the full computed outcome for one contest:
// per-category rankings plus the champion designations layered on top.
type ContestResultsResponse struct {
	Contest          *models.Contest                             `json:"contest"`
	RankedByCategory map[primitive.ObjectID][]*models.RankedEntry `json:"rankedByCategory"`
	GroupBests       map[string]*models.RankedEntry               `json:"groupBests"`
	GrandChampion    *models.RankedEntry                          `json:"grandChampion,omitempty"`
}

// ResultsServiceImpl derives rankings and champions on demand. Nothing
// here is cached or persisted: every call recomputes from the current
// entry snapshot, so stored champion flags can never drift from the truth.
type ResultsServiceImpl struct {
	contestRepo  repositories.ContestRepository
	categoryRepo repositories.CategoryRepository
	entryRepo    repositories.EntryRepository
	groupKey     scoring.GroupKeyFunc
}

// NewResultsService creates a new ResultsServiceImpl. groupKey selects the
// champion aggregation axis; nil uses species+sex.
func NewResultsService(
	contestRepo repositories.ContestRepository,
	categoryRepo repositories.CategoryRepository,
	entryRepo repositories.EntryRepository,
	groupKey scoring.GroupKeyFunc,
) *ResultsServiceImpl {
	return &ResultsServiceImpl{
		contestRepo:  contestRepo,
		categoryRepo: categoryRepo,
		entryRepo:    entryRepo,
		groupKey:     groupKey,
	}
}

// ComputeContestResults recomputes the full ranking and champion set for
// one contest
func (s *ResultsServiceImpl) ComputeContestResults(ctx context.Context, contestID primitive.ObjectID) (*ContestResultsResponse, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("contest not found: %w", err)
	}
	entries, err := s.entryRepo.FindByContestID(ctx, contestID)
	if err != nil {
		slog.Error("Failed to load entry snapshot for ranking", "error", err, "contestId", contestID)
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	ranked := scoring.RankContest(contest, entries)
	set := scoring.AggregateChampions(contest, ranked, s.groupKey)
	for _, list := range ranked {
		for _, r := range list {
			r.PrizeLabel = scoring.PrizeLabel(r)
		}
	}

	slog.Info("Contest results computed", "contestId", contestID, "categories", len(ranked), "entries", len(entries))
	return &ContestResultsResponse{
		Contest:          contest,
		RankedByCategory: ranked,
		GroupBests:       set.GroupBests,
		GrandChampion:    set.GrandChampion,
	}, nil
}

// QueryWinners serves the public winners view: computes rankings for the
// contests in scope and runs the filter engine over them.
func (s *ResultsServiceImpl) QueryWinners(ctx context.Context, query scoring.ResultsQuery) (map[primitive.ObjectID]*models.ContestWinners, error) {
	contests, err := s.contestsInScope(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]*scoring.ContestResults, 0, len(contests))
	for _, contest := range contests {
		categories, err := s.categoryRepo.FindByContestID(ctx, contest.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
		entries, err := s.entryRepo.FindByContestID(ctx, contest.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load entries: %w", err)
		}

		ranked := scoring.RankContest(contest, entries)
		scoring.AggregateChampions(contest, ranked, s.groupKey)
		results = append(results, &scoring.ContestResults{
			Contest:    contest,
			Categories: categories,
			Ranked:     ranked,
		})
	}

	return scoring.FilterResults(query, results), nil
}

// contestsInScope narrows the computation to one contest when the query
// names one, otherwise loads all contests.
func (s *ResultsServiceImpl) contestsInScope(ctx context.Context, query scoring.ResultsQuery) ([]*models.Contest, error) {
	if query.ContestID != nil {
		contest, err := s.contestRepo.FindByID(ctx, *query.ContestID)
		if err != nil {
			return nil, fmt.Errorf("contest not found: %w", err)
		}
		return []*models.Contest{contest}, nil
	}
	contests, err := s.contestRepo.FindAll(ctx, 1, 200)
	if err != nil {
		return nil, fmt.Errorf("failed to load contests: %w", err)
	}
	return contests, nil
}
