package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agroexpo/expogan-backend/internal/scoring"
	"github.com/agroexpo/expogan-backend/internal/services"
)

// ResultsHandler serves the computed rankings and the public winners view
type ResultsHandler struct {
	resultsService services.ResultsService
	defaultLimit   int
}

// NewResultsHandler creates a new ResultsHandler. defaultLimit caps the
// winners view when the query does not name a limit.
func NewResultsHandler(resultsService services.ResultsService, defaultLimit int) *ResultsHandler {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &ResultsHandler{resultsService: resultsService, defaultLimit: defaultLimit}
}

// GetContestResults handles GET /contests/:id/results
func (h *ResultsHandler) GetContestResults(c *gin.Context) {
	contestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID format"})
		return
	}

	results, err := h.resultsService.ComputeContestResults(c.Request.Context(), contestID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute results"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetWinners handles GET /results/winners. All filters are optional and
// case-insensitive; "all"/"todas" behave like an absent filter.
func (h *ResultsHandler) GetWinners(c *gin.Context) {
	query := scoring.ResultsQuery{
		CategoryName: c.Query("category"),
		Breed:        c.Query("breed"),
		Species:      c.Query("species"),
		PrizeType:    c.Query("prizeType"),
		Limit:        h.defaultLimit,
	}
	if contestID := c.Query("contestId"); contestID != "" {
		id, err := primitive.ObjectIDFromHex(contestID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID format"})
			return
		}
		query.ContestID = &id
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		if n > 200 {
			n = 200
		}
		query.Limit = n
	}

	winners, err := h.resultsService.QueryWinners(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query winners"})
		return
	}
	c.JSON(http.StatusOK, winners)
}
