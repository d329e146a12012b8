package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agroexpo/expogan-backend/internal/scoring"
)

// TaxonomyHandler serves the species registry for registration forms
type TaxonomyHandler struct{}

// NewTaxonomyHandler creates a new TaxonomyHandler
func NewTaxonomyHandler() *TaxonomyHandler {
	return &TaxonomyHandler{}
}

// SpeciesInfo is one species registry row as served to clients
type SpeciesInfo struct {
	Species    string   `json:"species"`
	Breeds     []string `json:"breeds"`
	MinAgeDays int      `json:"minAgeDays"`
}

// GetSpecies handles GET /taxonomy/species
func (h *TaxonomyHandler) GetSpecies(c *gin.Context) {
	species := scoring.ValidSpecies()
	out := make([]SpeciesInfo, 0, len(species))
	for _, s := range species {
		out = append(out, SpeciesInfo{
			Species:    s,
			Breeds:     scoring.BreedsFor(s),
			MinAgeDays: scoring.MinimumAgeDays(s),
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetBreeds handles GET /taxonomy/species/:species/breeds
func (h *TaxonomyHandler) GetBreeds(c *gin.Context) {
	species := c.Param("species")
	if !scoring.IsKnownSpecies(species) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown species"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"species":    scoring.NormalizeSpecies(species),
		"breeds":     scoring.BreedsFor(species),
		"minAgeDays": scoring.MinimumAgeDays(species),
	})
}
