// Package routes wires the HTTP endpoints to their handlers.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bconolly/MiniatureProjectTracker/internal/handlers"
)

// Register attaches every endpoint to the router.
func Register(r *gin.Engine, h *handlers.Handler) {
	r.GET("/", h.Health)

	r.GET("/projects", h.ListProjects)
	r.POST("/projects", h.CreateProject)
	r.GET("/projects/:id", h.GetProject)
	r.PUT("/projects/:id", h.UpdateProject)
	r.DELETE("/projects/:id", h.DeleteProject)
	r.GET("/projects/:id/miniatures", h.ListMiniatures)
	r.POST("/projects/:id/miniatures", h.CreateMiniature)

	r.GET("/miniatures/:id", h.GetMiniature)
	r.PUT("/miniatures/:id", h.UpdateMiniature)
	r.DELETE("/miniatures/:id", h.DeleteMiniature)
	r.POST("/miniatures/:id/photos", h.UploadPhoto)
	r.GET("/miniatures/:id/photos", h.ListPhotos)
	r.GET("/miniatures/:id/recipes", h.ListMiniatureRecipes)
	r.POST("/miniatures/:id/recipes/:recipeId", h.LinkRecipe)
	r.DELETE("/miniatures/:id/recipes/:recipeId", h.UnlinkRecipe)

	r.GET("/recipes", h.ListRecipes)
	r.POST("/recipes", h.CreateRecipe)
	r.GET("/recipes/:id", h.GetRecipe)
	r.PUT("/recipes/:id", h.UpdateRecipe)
	r.DELETE("/recipes/:id", h.DeleteRecipe)
	r.GET("/recipes/:id/usage-count", h.RecipeUsageCount)

	r.DELETE("/photos/:id", h.DeletePhoto)
}
