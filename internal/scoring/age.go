package scoring

import "time"

const hoursPerDay = 24

// AgeInDays computes a whole age in days between birth and the evaluation
// instant, truncating partial days.
func AgeInDays(birthDate, at time.Time) int {
	if at.Before(birthDate) {
		return 0
	}
	return int(at.Sub(birthDate).Hours() / hoursPerDay)
}

// ValidateAge checks an entry's birth date against the species minimum age
// at the evaluation instant. A nil birth date passes: age is optional
// metadata, not mandatory. Only the species floor is enforced here; a
// category's age window is the CategoryMatcher's concern.
func ValidateAge(species string, birthDate *time.Time, at time.Time) *ValidationError {
	if birthDate == nil {
		return nil
	}
	minDays := MinimumAgeDays(species)
	age := AgeInDays(*birthDate, at)
	if age < minDays {
		return newError(KindAgeBelowMinimum, "birthDate",
			"age %d days is below the %s minimum of %d days", age, NormalizeSpecies(species), minDays)
	}
	return nil
}
