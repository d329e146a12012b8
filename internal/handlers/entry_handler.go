package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agroexpo/expogan-backend/internal/models"
	"github.com/agroexpo/expogan-backend/internal/repositories"
	"github.com/agroexpo/expogan-backend/internal/scoring"
	"github.com/agroexpo/expogan-backend/internal/services"
)

// EntryHandler handles entry HTTP requests
type EntryHandler struct {
	entryService services.EntryService
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService services.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// EntryRequest is the payload for creating and updating entries
type EntryRequest struct {
	ContestID   string   `json:"contestId" binding:"required"`
	CategoryID  string   `json:"categoryId"`
	FichaNumber int      `json:"fichaNumber" binding:"required,min=1"`
	OwnerName   string   `json:"ownerName"`
	Species     string   `json:"species" binding:"required"`
	Breed       string   `json:"breed"`
	Sex         string   `json:"sex"`
	BirthDate   string   `json:"birthDate"` // YYYY-MM-DD
	ProductType string   `json:"productType"`
	NumericScore *float64 `json:"numericScore"`
	Position     *int     `json:"position"`
	Grade        *string  `json:"grade"`
	RematePrice  *float64 `json:"rematePrice"`
}

func (r *EntryRequest) toModel() (*models.Entry, error) {
	contestID, err := primitive.ObjectIDFromHex(r.ContestID)
	if err != nil {
		return nil, errors.New("invalid contest ID format")
	}

	entry := &models.Entry{
		ContestID:    contestID,
		FichaNumber:  r.FichaNumber,
		OwnerName:    r.OwnerName,
		Species:      r.Species,
		Breed:        r.Breed,
		Sex:          models.Sex(r.Sex),
		ProductType:  r.ProductType,
		NumericScore: r.NumericScore,
		Position:     r.Position,
		Grade:        r.Grade,
		RematePrice:  r.RematePrice,
	}
	if r.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(r.CategoryID)
		if err != nil {
			return nil, errors.New("invalid category ID format")
		}
		entry.CategoryID = categoryID
	}
	if r.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", r.BirthDate)
		if err != nil {
			return nil, errors.New("invalid birth date format (YYYY-MM-DD)")
		}
		entry.BirthDate = &birthDate
	}
	return entry, nil
}

// respondValidation maps collected validation failures to a 422 with
// field-level detail, keeping configuration errors visible to organizers.
func respondValidation(c *gin.Context, verrs []*scoring.ValidationError) {
	configError := false
	for _, v := range verrs {
		if v.IsConfigError() {
			configError = true
		}
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":       "Entry failed validation",
		"configError": configError,
		"failures":    verrs,
	})
}

// RegisterEntry handles POST /entries
func (h *EntryHandler) RegisterEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verrs, err := h.entryService.RegisterEntry(c.Request.Context(), entry)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrFichaNumberTaken) || errors.Is(err, services.ErrContestFinalized) {
			status = http.StatusConflict
		} else if errors.Is(err, mongo.ErrNoDocuments) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Failed to register entry: " + err.Error()})
		return
	}
	if len(verrs) > 0 {
		respondValidation(c, verrs)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateEntry handles PUT /entries/:id
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry.ID = id

	verrs, err := h.entryService.UpdateEntry(c.Request.Context(), entry)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrFichaNumberTaken) || errors.Is(err, services.ErrContestFinalized) {
			status = http.StatusConflict
		} else if errors.Is(err, mongo.ErrNoDocuments) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Failed to update entry: " + err.Error()})
		return
	}
	if len(verrs) > 0 {
		respondValidation(c, verrs)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetEntryByID handles GET /entries/:id
func (h *EntryHandler) GetEntryByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetEntriesByCategory handles GET /categories/:id/entries
func (h *EntryHandler) GetEntriesByCategory(c *gin.Context) {
	categoryID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	page, limit := pagination(c)
	entries, err := h.entryService.GetEntriesByCategoryID(c.Request.Context(), categoryID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// SearchEntries handles GET /entries
func (h *EntryHandler) SearchEntries(c *gin.Context) {
	var search repositories.EntrySearch
	if contestID := c.Query("contestId"); contestID != "" {
		id, err := primitive.ObjectIDFromHex(contestID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID format"})
			return
		}
		search.ContestID = &id
	}
	if categoryID := c.Query("categoryId"); categoryID != "" {
		id, err := primitive.ObjectIDFromHex(categoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
			return
		}
		search.CategoryID = &id
	}
	search.Species = c.Query("species")
	search.Breed = c.Query("breed")
	if destacado := c.Query("destacado"); destacado != "" {
		value := destacado == "true"
		search.Destacado = &value
	}

	page, limit := pagination(c)
	entries, err := h.entryService.SearchEntries(c.Request.Context(), search, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// SetDestacadoRequest is the payload for PATCH /entries/:id/destacado
type SetDestacadoRequest struct {
	Destacado *bool `json:"destacado" binding:"required"`
}

// SetDestacado handles PATCH /entries/:id/destacado
func (h *EntryHandler) SetDestacado(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req SetDestacadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.entryService.SetDestacado(c.Request.Context(), id, *req.Destacado)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, mongo.ErrNoDocuments) {
			status = http.StatusNotFound
		} else if errors.Is(err, services.ErrContestFinalized) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "Failed to update entry: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /entries/:id
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	if err := h.entryService.DeleteEntry(c.Request.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, mongo.ErrNoDocuments) {
			status = http.StatusNotFound
		} else if errors.Is(err, services.ErrContestFinalized) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "Failed to delete entry: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
