package scoring

import (
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agroexpo/expogan-backend/internal/models"
)

// ResultsQuery filters the public winners view. Empty or "all" fields are
// no-ops; every specified filter must match. Limit caps the winners
// returned per contest group; zero means no truncation.
type ResultsQuery struct {
	ContestID    *primitive.ObjectID
	CategoryName string
	Breed        string
	Species      string
	PrizeType    string
	Limit        int
}

// ContestResults is one contest's fully computed ranking, the filter
// engine's unit of input.
type ContestResults struct {
	Contest    *models.Contest
	Categories []*models.Category
	Ranked     map[primitive.ObjectID][]*models.RankedEntry
}

// FilterResults intersects the query's filters against computed rankings
// and groups survivors by contest for display. Within a contest group the
// order follows rank position ascending, ficha number breaking ties. The
// prize-type filter uses case-insensitive substring containment, not exact
// match: prize labels are organizer-authored free text.
func FilterResults(query ResultsQuery, results []*ContestResults) map[primitive.ObjectID]*models.ContestWinners {
	out := make(map[primitive.ObjectID]*models.ContestWinners)
	for _, cr := range results {
		if query.ContestID != nil && *query.ContestID != cr.Contest.ID {
			continue
		}

		categoryNames := make(map[primitive.ObjectID]string, len(cr.Categories))
		for _, cat := range cr.Categories {
			categoryNames[cat.ID] = cat.Name
		}

		var winners []*models.RankedEntry
		for categoryID, ranked := range cr.Ranked {
			if !filterMatches(query.CategoryName, categoryNames[categoryID]) {
				continue
			}
			for _, r := range ranked {
				if !filterMatches(query.Species, r.Entry.Species) {
					continue
				}
				if !filterMatches(query.Breed, r.Entry.Breed) {
					continue
				}
				if r.PrizeLabel == "" {
					r.PrizeLabel = PrizeLabel(r)
				}
				if !prizeMatches(query.PrizeType, r.PrizeLabel) {
					continue
				}
				winners = append(winners, r)
			}
		}
		if len(winners) == 0 {
			continue
		}

		sort.Slice(winners, func(i, j int) bool {
			if winners[i].RankPosition != winners[j].RankPosition {
				return winners[i].RankPosition < winners[j].RankPosition
			}
			return winners[i].Entry.FichaNumber < winners[j].Entry.FichaNumber
		})
		if query.Limit > 0 && len(winners) > query.Limit {
			winners = winners[:query.Limit]
		}
		out[cr.Contest.ID] = &models.ContestWinners{Contest: cr.Contest, Winners: winners}
	}
	return out
}

// filterMatches applies the absent/"all" no-op convention with
// case-insensitive equality.
func filterMatches(filter, value string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, "all") || strings.EqualFold(filter, "todas") {
		return true
	}
	return strings.EqualFold(filter, strings.TrimSpace(value))
}

// prizeMatches uses substring containment so "campeón" matches both
// "Gran Campeón" and "Campeón Reserva".
func prizeMatches(filter, label string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, "all") || strings.EqualFold(filter, "todas") {
		return true
	}
	return strings.Contains(strings.ToLower(label), strings.ToLower(filter))
}

// PrizeLabel derives the display badge for a ranked entry from its
// computed flags. Organizers may overwrite the label downstream; ranking
// never reads it back.
func PrizeLabel(r *models.RankedEntry) string {
	switch {
	case r.IsGrandChampion:
		return "Gran Campeón"
	case r.IsGroupChampion:
		return "Campeón Reserva"
	case r.IsCategoryChampion:
		return "Campeón de Categoría"
	case r.RankPosition == 2:
		return "Segundo Lugar"
	case r.RankPosition == 3:
		return "Tercer Lugar"
	default:
		return fmt.Sprintf("Puesto %d", r.RankPosition)
	}
}
