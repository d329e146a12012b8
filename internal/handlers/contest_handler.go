package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agroexpo/expogan-backend/internal/models"
	"github.com/agroexpo/expogan-backend/internal/services"
)

// ContestHandler handles contest and category HTTP requests
type ContestHandler struct {
	contestService services.ContestService
}

// NewContestHandler creates a new ContestHandler
func NewContestHandler(contestService services.ContestService) *ContestHandler {
	return &ContestHandler{contestService: contestService}
}

// ContestRequest is the payload for creating and updating contests.
// Finalization and timestamps are not settable through it; freezing a
// contest goes through the finalize endpoint.
type ContestRequest struct {
	Name               string               `json:"name" binding:"required"`
	Description        string               `json:"description"`
	ScoringScheme      models.ScoringScheme `json:"scoringScheme" binding:"required"`
	ScoreBounds        *models.ScoreBounds  `json:"scoreBounds"`
	PositionsAvailable int                  `json:"positionsAvailable"`
	GradeSet           []string             `json:"gradeSet"`
	RemateEnabled      bool                 `json:"remateEnabled"`
}

func (r *ContestRequest) toModel() *models.Contest {
	return &models.Contest{
		Name:               r.Name,
		Description:        r.Description,
		ScoringScheme:      r.ScoringScheme,
		ScoreBounds:        r.ScoreBounds,
		PositionsAvailable: r.PositionsAvailable,
		GradeSet:           r.GradeSet,
		RemateEnabled:      r.RemateEnabled,
	}
}

// CreateContest handles POST /contests
func (h *ContestHandler) CreateContest(c *gin.Context) {
	var req ContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contest := req.toModel()
	if err := h.contestService.CreateContest(c.Request.Context(), contest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create contest: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, contest)
}

// GetContestByID handles GET /contests/:id
func (h *ContestHandler) GetContestByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	contest, err := h.contestService.GetContestByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contest"})
		return
	}
	c.JSON(http.StatusOK, contest)
}

// GetContests handles GET /contests
func (h *ContestHandler) GetContests(c *gin.Context) {
	page, limit := pagination(c)
	contests, err := h.contestService.GetContests(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contests"})
		return
	}
	c.JSON(http.StatusOK, contests)
}

// UpdateContest handles PUT /contests/:id
func (h *ContestHandler) UpdateContest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req ContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contest := req.toModel()
	contest.ID = id

	if err := h.contestService.UpdateContest(c.Request.Context(), contest); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, mongo.ErrNoDocuments) {
			status = http.StatusNotFound
		} else if errors.Is(err, services.ErrContestFinalized) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "Failed to update contest: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, contest)
}

// FinalizeContest handles POST /contests/:id/finalize
func (h *ContestHandler) FinalizeContest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	contest, err := h.contestService.FinalizeContest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize contest"})
		return
	}
	c.JSON(http.StatusOK, contest)
}

// DeleteContest handles DELETE /contests/:id
func (h *ContestHandler) DeleteContest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	if err := h.contestService.DeleteContest(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contest deleted"})
}

// CreateCategoryRequest is the payload for POST /contests/:id/categories
type CreateCategoryRequest struct {
	Name          string               `json:"name" binding:"required"`
	Species       string               `json:"species"`
	SexConstraint models.SexConstraint `json:"sexConstraint"`
	AgeRange      *models.AgeRange     `json:"ageRange"`
	ProductType   string               `json:"productType"`
	FreeForm      bool                 `json:"freeForm"`
}

// CreateCategory handles POST /contests/:id/categories
func (h *ContestHandler) CreateCategory(c *gin.Context) {
	contestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID format"})
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sexConstraint := req.SexConstraint
	if sexConstraint == "" {
		sexConstraint = models.SexConstraintLibre
	}
	category := &models.Category{
		ContestID:     contestID,
		Name:          req.Name,
		Species:       req.Species,
		SexConstraint: sexConstraint,
		AgeRange:      req.AgeRange,
		ProductType:   req.ProductType,
		FreeForm:      req.FreeForm,
	}
	if err := h.contestService.CreateCategory(c.Request.Context(), category); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, mongo.ErrNoDocuments) {
			status = http.StatusNotFound
		} else if errors.Is(err, services.ErrContestFinalized) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "Failed to create category: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// GetCategories handles GET /contests/:id/categories
func (h *ContestHandler) GetCategories(c *gin.Context) {
	contestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID format"})
		return
	}

	categories, err := h.contestService.GetCategoriesByContestID(c.Request.Context(), contestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// UpdateCategory handles PUT /contests/:id/categories/:categoryId
func (h *ContestHandler) UpdateCategory(c *gin.Context) {
	contestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID format"})
		return
	}
	categoryID, err := primitive.ObjectIDFromHex(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sexConstraint := req.SexConstraint
	if sexConstraint == "" {
		sexConstraint = models.SexConstraintLibre
	}
	category := &models.Category{
		ID:            categoryID,
		ContestID:     contestID,
		Name:          req.Name,
		Species:       req.Species,
		SexConstraint: sexConstraint,
		AgeRange:      req.AgeRange,
		ProductType:   req.ProductType,
		FreeForm:      req.FreeForm,
	}
	if err := h.contestService.UpdateCategory(c.Request.Context(), category); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, mongo.ErrNoDocuments) {
			status = http.StatusNotFound
		} else if errors.Is(err, services.ErrContestFinalized) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "Failed to update category: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /categories/:id
func (h *ContestHandler) DeleteCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	if err := h.contestService.DeleteCategory(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// pagination reads page/limit query parameters with sane defaults
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 200 {
		limit = 20
	}
	return page, limit
}
