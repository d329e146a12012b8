package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agroexpo/expogan-backend/internal/config"
	"github.com/agroexpo/expogan-backend/internal/handlers"
	"github.com/agroexpo/expogan-backend/internal/middleware"
)

// SetupRouter sets up the router
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	contestHandler *handlers.ContestHandler,
	entryHandler *handlers.EntryHandler,
	resultsHandler *handlers.ResultsHandler,
	taxonomyHandler *handlers.TaxonomyHandler,
) *gin.Engine {
	// Create router
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public results routes: the winners board is served without auth
		public.GET("/results/winners", resultsHandler.GetWinners)
		public.GET("/contests/:id/results", resultsHandler.GetContestResults)

		// Species registry for registration forms
		public.GET("/taxonomy/species", taxonomyHandler.GetSpecies)
		public.GET("/taxonomy/species/:species/breeds", taxonomyHandler.GetBreeds)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		// Contest routes
		contests := protected.Group("/contests")
		{
			contests.GET("", contestHandler.GetContests)
			contests.GET("/:id", contestHandler.GetContestByID)
			contests.POST("", contestHandler.CreateContest)
			contests.PUT("/:id", contestHandler.UpdateContest)
			contests.POST("/:id/finalize", contestHandler.FinalizeContest)
			contests.DELETE("/:id", contestHandler.DeleteContest)

			// Category routes
			contests.GET("/:id/categories", contestHandler.GetCategories)
			contests.POST("/:id/categories", contestHandler.CreateCategory)
			contests.PUT("/:id/categories/:categoryId", contestHandler.UpdateCategory)
		}
		protected.DELETE("/categories/:id", contestHandler.DeleteCategory)
		protected.GET("/categories/:id/entries", entryHandler.GetEntriesByCategory)

		// Entry routes
		entries := protected.Group("/entries")
		{
			entries.GET("", entryHandler.SearchEntries)
			entries.GET("/:id", entryHandler.GetEntryByID)
			entries.POST("", entryHandler.RegisterEntry)
			entries.PUT("/:id", entryHandler.UpdateEntry)
			entries.PATCH("/:id/destacado", entryHandler.SetDestacado)
			entries.DELETE("/:id", entryHandler.DeleteEntry)
		}
	}

	return router
}
