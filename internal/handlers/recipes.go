package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bconolly/MiniatureProjectTracker/internal/domain"
	"github.com/bconolly/MiniatureProjectTracker/internal/validation"
)

func recipeNotFound(c *gin.Context, id int64) {
	notFoundError(c, fmt.Sprintf("Recipe with id %d not found", id))
}

// ListRecipes returns all recipes, optionally filtered by the `type` query
// parameter.
func (h *Handler) ListRecipes(c *gin.Context) {
	var (
		recipes []domain.PaintingRecipe
		err     error
	)
	if typeFilter := c.Query("type"); typeFilter != "" {
		miniatureType := domain.MiniatureType(typeFilter)
		if !miniatureType.Valid() {
			validationError(c, fmt.Sprintf("invalid type %q", typeFilter))
			return
		}
		recipes, err = h.Store.ListRecipesByType(miniatureType)
	} else {
		recipes, err = h.Store.ListRecipes()
	}
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *Handler) CreateRecipe(c *gin.Context) {
	var req domain.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "invalid request body")
		return
	}
	if !validation.RecipeNameValid(req.Name) {
		validationError(c, "Recipe name is required")
		return
	}
	if !req.MiniatureType.Valid() {
		validationError(c, fmt.Sprintf("invalid miniature_type %q", req.MiniatureType))
		return
	}

	recipe, err := h.Store.CreateRecipe(req)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *Handler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	recipe, found, err := h.Store.GetRecipe(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !found {
		recipeNotFound(c, id)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe merges the provided fields. Omitted sequences keep their
// stored value; present sequences replace it, empty included.
func (h *Handler) UpdateRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "invalid request body")
		return
	}
	if req.Name != nil && !validation.RecipeNameValid(*req.Name) {
		validationError(c, "Recipe name is required")
		return
	}

	recipe, found, err := h.Store.UpdateRecipe(id, req)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !found {
		recipeNotFound(c, id)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *Handler) DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	existed, err := h.Store.DeleteRecipe(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !existed {
		recipeNotFound(c, id)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecipeUsageCount reports how many miniatures currently link to the recipe.
func (h *Handler) RecipeUsageCount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	_, found, err := h.Store.GetRecipe(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !found {
		recipeNotFound(c, id)
		return
	}

	count, err := h.Store.CountMiniaturesForRecipe(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe_id": id, "miniature_count": count})
}
