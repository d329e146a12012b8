package scoring

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agroexpo/expogan-backend/internal/models"
)

// RankContest computes the ordered ranking of every category in one
// contest. Entries whose score payload fails validation are treated as
// unscored and excluded (they still appear in raw rosters elsewhere); a
// single bad record never blocks ranking of the rest.
//
// The computation is pure and idempotent: the same entry snapshot always
// produces the same ranking, regardless of input order. Callers re-run it
// in full whenever any contributing score changes.
func RankContest(contest *models.Contest, entries []*models.Entry) map[primitive.ObjectID][]*models.RankedEntry {
	byCategory := make(map[primitive.ObjectID][]*models.Entry)
	for _, e := range entries {
		byCategory[e.CategoryID] = append(byCategory[e.CategoryID], e)
	}

	ranked := make(map[primitive.ObjectID][]*models.RankedEntry, len(byCategory))
	for categoryID, group := range byCategory {
		if list := rankCategory(contest, categoryID, group); len(list) > 0 {
			ranked[categoryID] = list
		}
	}
	return ranked
}

// scoredEntry pairs an entry with its precomputed comparator key.
type scoredEntry struct {
	entry *models.Entry
	key   float64
}

func rankCategory(contest *models.Contest, categoryID primitive.ObjectID, group []*models.Entry) []*models.RankedEntry {
	scored := make([]scoredEntry, 0, len(group))
	for _, e := range group {
		key, ok := comparatorKey(contest, e)
		if !ok {
			continue // unscored or invalid payload, excluded from ranking
		}
		scored = append(scored, scoredEntry{entry: e, key: key})
	}
	if len(scored) == 0 {
		return nil
	}

	// Lower key is better under every scheme. Ficha number breaks equal
	// keys so the output order is stable for any input order; it does not
	// affect rank position assignment.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].key != scored[j].key {
			return scored[i].key < scored[j].key
		}
		return scored[i].entry.FichaNumber < scored[j].entry.FichaNumber
	})

	// Standard competition ranking: tied entries share a position, the
	// next distinct key resumes at tiedGroupStart + tiedGroupSize.
	out := make([]*models.RankedEntry, len(scored))
	position := 1
	for i, s := range scored {
		if i > 0 && s.key != scored[i-1].key {
			position = i + 1
		}
		out[i] = &models.RankedEntry{
			Entry:              s.entry,
			CategoryID:         categoryID,
			RankPosition:       position,
			IsCategoryChampion: position == 1,
		}
	}
	return out
}
