package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// linkParents verifies both ends of a link exist, writing a 404 when either
// is missing.
func (h *Handler) linkParents(c *gin.Context, miniatureID, recipeID int64) bool {
	_, found, err := h.Store.GetMiniature(miniatureID)
	if err != nil {
		databaseError(c, err)
		return false
	}
	if !found {
		miniatureNotFound(c, miniatureID)
		return false
	}
	_, found, err = h.Store.GetRecipe(recipeID)
	if err != nil {
		databaseError(c, err)
		return false
	}
	if !found {
		recipeNotFound(c, recipeID)
		return false
	}
	return true
}

// LinkRecipe associates a recipe with a miniature. Re-linking an existing
// pair succeeds without creating a duplicate.
func (h *Handler) LinkRecipe(c *gin.Context) {
	miniatureID, ok := pathID(c, "id")
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "recipeId")
	if !ok {
		return
	}
	if !h.linkParents(c, miniatureID, recipeID) {
		return
	}

	if err := h.Store.LinkRecipe(miniatureID, recipeID); err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"miniature_id": miniatureID, "recipe_id": recipeID})
}

func (h *Handler) UnlinkRecipe(c *gin.Context) {
	miniatureID, ok := pathID(c, "id")
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "recipeId")
	if !ok {
		return
	}
	if !h.linkParents(c, miniatureID, recipeID) {
		return
	}

	existed, err := h.Store.UnlinkRecipe(miniatureID, recipeID)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !existed {
		notFoundError(c, fmt.Sprintf("Recipe %d is not linked to miniature %d", recipeID, miniatureID))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMiniatureRecipes returns the recipes linked to a miniature.
func (h *Handler) ListMiniatureRecipes(c *gin.Context) {
	miniatureID, ok := pathID(c, "id")
	if !ok {
		return
	}
	_, found, err := h.Store.GetMiniature(miniatureID)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !found {
		miniatureNotFound(c, miniatureID)
		return
	}

	recipes, err := h.Store.ListRecipesForMiniature(miniatureID)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
