package scoring

import (
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agroexpo/expogan-backend/internal/models"
)

// GroupKeyFunc derives the aggregation group a category champion competes
// in for "best of type" designations. Champions sharing a key compete for
// one group title.
type GroupKeyFunc func(*models.Entry) string

// GroupBySpeciesSex is the default aggregation axis: one title per
// species+sex pairing (e.g. "Mejor Macho Bovino").
func GroupBySpeciesSex(e *models.Entry) string {
	return fmt.Sprintf("%s|%s", NormalizeSpecies(e.Species), e.Sex)
}

// GroupBySpecies aggregates by species alone.
func GroupBySpecies(e *models.Entry) string {
	return NormalizeSpecies(e.Species)
}

// ChampionSet is the outcome of champion aggregation for one contest.
type ChampionSet struct {
	// GroupBests maps each aggregation key to its single best champion.
	GroupBests map[string]*models.RankedEntry
	// GrandChampion is the single best entry across all group bests, nil
	// when the contest has no validly scored champion at all.
	GrandChampion *models.RankedEntry
}

// AggregateChampions picks, per aggregation group, the single best
// category champion, and layers the grand-champion designation on top of
// the group bests. Schemes are never mixed within one contest, so the
// scheme comparator is well-defined across categories; exact ties resolve
// deterministically to the lowest ficha number. Flags are set in place on
// the ranked entries: IsGroupChampion and IsGrandChampion may both be true
// alongside IsCategoryChampion.
func AggregateChampions(contest *models.Contest, rankedByCategory map[primitive.ObjectID][]*models.RankedEntry, keyFn GroupKeyFunc) *ChampionSet {
	if keyFn == nil {
		keyFn = GroupBySpeciesSex
	}

	set := &ChampionSet{GroupBests: make(map[string]*models.RankedEntry)}
	for _, ranked := range rankedByCategory {
		for _, r := range ranked {
			if !r.IsCategoryChampion {
				continue
			}
			key := keyFn(r.Entry)
			r.GroupKey = key
			current, ok := set.GroupBests[key]
			if !ok || beats(contest, r, current) {
				set.GroupBests[key] = r
			}
		}
	}

	// Deterministic iteration over group keys, so equal-key comparisons
	// always happen in the same order.
	keys := make([]string, 0, len(set.GroupBests))
	for key := range set.GroupBests {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		best := set.GroupBests[key]
		best.IsGroupChampion = true
		if set.GrandChampion == nil || beats(contest, best, set.GrandChampion) {
			set.GrandChampion = best
		}
	}
	if set.GrandChampion != nil {
		set.GrandChampion.IsGrandChampion = true
	}
	return set
}

// beats reports whether a should displace b: strictly better comparator
// key, or an exact tie broken by the lower ficha number.
func beats(contest *models.Contest, a, b *models.RankedEntry) bool {
	keyA, okA := comparatorKey(contest, a.Entry)
	keyB, okB := comparatorKey(contest, b.Entry)
	if !okA || !okB {
		return okA && !okB
	}
	if keyA != keyB {
		return keyA < keyB
	}
	return a.Entry.FichaNumber < b.Entry.FichaNumber
}
