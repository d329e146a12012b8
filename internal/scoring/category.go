package scoring

import (
	"strings"
	"time"

	"github.com/agroexpo/expogan-backend/internal/models"
)

// MatchCategory validates that an entry's attributes are compatible with
// the target category's constraints. Checks run in order and short-circuit
// on the first failure: sex, age window, product type. Free-form ("other")
// categories are accepted without any checking; the organizer has opted
// out of structured validation for them.
func MatchCategory(entry *models.Entry, category *models.Category, at time.Time) *ValidationError {
	if category.FreeForm {
		return nil
	}

	if category.SexConstraint != "" && category.SexConstraint != models.SexConstraintLibre {
		if string(entry.Sex) != string(category.SexConstraint) {
			return newError(KindSexMismatch, "sex",
				"category %q only accepts %s entries", category.Name, category.SexConstraint)
		}
	}

	// Skipped when the entry carries no birth date, consistent with the
	// permissive age policy in ValidateAge.
	if category.AgeRange != nil && entry.BirthDate != nil {
		age := AgeInDays(*entry.BirthDate, at)
		if age < category.AgeRange.MinDays || age > category.AgeRange.MaxDays {
			return newError(KindAgeOutOfCategoryRange, "birthDate",
				"age %d days is outside the category window [%d, %d]",
				age, category.AgeRange.MinDays, category.AgeRange.MaxDays)
		}
	}

	if category.ProductType != "" {
		if !strings.EqualFold(strings.TrimSpace(entry.ProductType), strings.TrimSpace(category.ProductType)) {
			return newError(KindProductTypeMismatch, "productType",
				"category %q requires product type %q", category.Name, category.ProductType)
		}
	}

	return nil
}

// ValidateCategoryPolicy checks that a category's own constraints stay
// within the species' general policy: a category cannot demand an age
// below the species minimum. Used when organizers create or edit
// categories, not on entry submission.
func ValidateCategoryPolicy(category *models.Category, species string) *ValidationError {
	if category.FreeForm || category.AgeRange == nil {
		return nil
	}
	minDays := MinimumAgeDays(species)
	if category.AgeRange.MinDays < minDays {
		return newError(KindAgeBelowMinimum, "ageRange",
			"category minimum of %d days is below the %s species floor of %d days",
			category.AgeRange.MinDays, NormalizeSpecies(species), minDays)
	}
	return nil
}
