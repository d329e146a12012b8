package scoring

import "strings"

// Species identifiers known to the taxonomy. SpeciesOtro is the explicit
// escape hatch: no breed list, no minimum age, caller supplies a free-text
// breed.
const (
	SpeciesBovino   = "bovino"
	SpeciesOvino    = "ovino"
	SpeciesEquino   = "equino"
	SpeciesPorcino  = "porcino"
	SpeciesCaprino  = "caprino"
	SpeciesAves     = "aves"
	SpeciesProducto = "producto"
	SpeciesOtro     = "otro"
)

// speciesPolicy holds the per-species registry entry: the valid breeds
// (ordered for display) and the minimum age in days an entry must have
// reached at evaluation time.
type speciesPolicy struct {
	breeds     []string
	minAgeDays int
}

var speciesRegistry = map[string]speciesPolicy{
	SpeciesBovino: {
		breeds:     []string{"Angus", "Hereford", "Brangus", "Braford", "Holando", "Normando", "Criollo"},
		minAgeDays: 30,
	},
	SpeciesOvino: {
		breeds:     []string{"Corriedale", "Merino", "Ideal", "Texel", "Hampshire Down", "Romney Marsh"},
		minAgeDays: 20,
	},
	SpeciesEquino: {
		breeds:     []string{"Criollo", "Cuarto de Milla", "Árabe", "Pura Sangre"},
		minAgeDays: 90,
	},
	SpeciesPorcino: {
		breeds:     []string{"Duroc", "Landrace", "Large White", "Pietrain"},
		minAgeDays: 15,
	},
	SpeciesCaprino: {
		breeds:     []string{"Boer", "Anglo Nubian", "Saanen", "Criolla"},
		minAgeDays: 20,
	},
	SpeciesAves: {
		breeds:     []string{"Brahma", "Plymouth Rock", "Rhode Island Red", "Leghorn"},
		minAgeDays: 7,
	},
	// Product and free-text entries carry no biological policy.
	SpeciesProducto: {},
	SpeciesOtro:     {},
}

// speciesOrder fixes the display order of the registry.
var speciesOrder = []string{
	SpeciesBovino, SpeciesOvino, SpeciesEquino, SpeciesPorcino,
	SpeciesCaprino, SpeciesAves, SpeciesProducto, SpeciesOtro,
}

// NormalizeSpecies lowercases and trims a species string so lookups are
// insensitive to form input casing.
func NormalizeSpecies(species string) string {
	return strings.ToLower(strings.TrimSpace(species))
}

// ValidSpecies returns the full set of registered species, in display order.
func ValidSpecies() []string {
	out := make([]string, len(speciesOrder))
	copy(out, speciesOrder)
	return out
}

// IsKnownSpecies reports whether the species has a registry entry.
func IsKnownSpecies(species string) bool {
	_, ok := speciesRegistry[NormalizeSpecies(species)]
	return ok
}

// BreedsFor returns the ordered breed list for a species. Unknown species
// fall back to the "otro" entry, which has no breed list.
func BreedsFor(species string) []string {
	policy, ok := speciesRegistry[NormalizeSpecies(species)]
	if !ok {
		policy = speciesRegistry[SpeciesOtro]
	}
	out := make([]string, len(policy.breeds))
	copy(out, policy.breeds)
	return out
}

// MinimumAgeDays returns the species-level minimum age floor in days.
// Unknown species default to 0 (no floor).
func MinimumAgeDays(species string) int {
	policy, ok := speciesRegistry[NormalizeSpecies(species)]
	if !ok {
		return 0
	}
	return policy.minAgeDays
}
