package scoring

import (
	"time"

	"github.com/agroexpo/expogan-backend/internal/models"
)

// HasScore reports whether the entry carries the score payload the
// contest's scheme expects. An unscored entry is legal (judging happens
// after registration) and simply stays out of the ranking.
func HasScore(contest *models.Contest, entry *models.Entry) bool {
	switch contest.ScoringScheme {
	case models.SchemeNumeric, models.SchemePoints:
		return entry.NumericScore != nil
	case models.SchemePosition:
		return entry.Position != nil
	case models.SchemeGrade:
		return entry.Grade != nil
	default:
		return false
	}
}

// ValidateScore validates an entry's score payload under the contest's
// scoring scheme. An absent payload passes (score is optional until the
// contest judges the entry). Position uniqueness within a category is
// deliberately NOT enforced here: ties are legal and resolved at ranking
// time, so data entry never blocks on cross-entry coordination.
func ValidateScore(contest *models.Contest, entry *models.Entry) *ValidationError {
	switch contest.ScoringScheme {
	case models.SchemeNumeric, models.SchemePoints:
		if entry.NumericScore == nil {
			return nil
		}
		bounds := contest.ScoreBounds
		if bounds == nil {
			return newError(KindUnknownScoringScheme, "",
				"contest %q uses scheme %s but defines no score bounds", contest.Name, contest.ScoringScheme)
		}
		if *entry.NumericScore < bounds.Min || *entry.NumericScore > bounds.Max {
			return newError(KindScoreOutOfBounds, "numericScore",
				"score %g is outside bounds [%g, %g]", *entry.NumericScore, bounds.Min, bounds.Max)
		}
		return nil

	case models.SchemePosition:
		if entry.Position == nil {
			return nil
		}
		if contest.PositionsAvailable < 1 {
			return newError(KindUnknownScoringScheme, "",
				"contest %q uses scheme %s but defines no available positions", contest.Name, contest.ScoringScheme)
		}
		if *entry.Position < 1 || *entry.Position > contest.PositionsAvailable {
			return newError(KindPositionOutOfRange, "position",
				"position %d is outside [1, %d]", *entry.Position, contest.PositionsAvailable)
		}
		return nil

	case models.SchemeGrade:
		if entry.Grade == nil {
			return nil
		}
		if gradeIndex(contest.EffectiveGradeSet(), *entry.Grade) < 0 {
			return newError(KindUnknownGrade, "grade",
				"grade %q is not in the contest grade set", *entry.Grade)
		}
		return nil

	default:
		return newError(KindUnknownScoringScheme, "",
			"contest %q references unknown scoring scheme %q", contest.Name, contest.ScoringScheme)
	}
}

// gradeIndex returns the position of a grade within the set, or -1.
// Earlier positions are better.
func gradeIndex(gradeSet []string, grade string) int {
	for i, g := range gradeSet {
		if g == grade {
			return i
		}
	}
	return -1
}

// comparatorKey maps an entry's score payload to a sort key where LOWER is
// better under every scheme, so one ordering routine serves all four.
// The boolean is false when the entry has no usable score.
func comparatorKey(contest *models.Contest, entry *models.Entry) (float64, bool) {
	if !HasScore(contest, entry) || ValidateScore(contest, entry) != nil {
		return 0, false
	}
	switch contest.ScoringScheme {
	case models.SchemeNumeric, models.SchemePoints:
		return -*entry.NumericScore, true // higher score is better
	case models.SchemePosition:
		return float64(*entry.Position), true // lower position is better
	case models.SchemeGrade:
		return float64(gradeIndex(contest.EffectiveGradeSet(), *entry.Grade)), true
	default:
		return 0, false
	}
}

// ValidateEntry runs the full validation chain for one entry (taxonomy
// age floor, category compatibility, score payload), collecting every
// applicable failure instead of stopping at the first, so a user sees all
// problems at once. category may be nil when the entry is not yet assigned.
func ValidateEntry(contest *models.Contest, category *models.Category, entry *models.Entry, at time.Time) []*ValidationError {
	var errs []*ValidationError
	if err := ValidateAge(entry.Species, entry.BirthDate, at); err != nil {
		errs = append(errs, err)
	}
	if category != nil {
		if err := MatchCategory(entry, category, at); err != nil {
			errs = append(errs, err)
		}
	}
	if err := ValidateScore(contest, entry); err != nil {
		errs = append(errs, err)
	}
	return errs
}
