package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bconolly/MiniatureProjectTracker/internal/domain"
	"github.com/bconolly/MiniatureProjectTracker/internal/validation"
)

func miniatureNotFound(c *gin.Context, id int64) {
	notFoundError(c, fmt.Sprintf("Miniature with id %d not found", id))
}

// ListMiniatures returns a project's miniatures. The parent must exist.
func (h *Handler) ListMiniatures(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	_, found, err := h.Store.GetProject(projectID)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !found {
		projectNotFound(c, projectID)
		return
	}

	miniatures, err := h.Store.ListMiniaturesByProject(projectID)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"miniatures": miniatures})
}

func (h *Handler) CreateMiniature(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.CreateMiniatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "invalid request body")
		return
	}
	if err := validation.RequireName("Miniature name", req.Name); err != nil {
		validationError(c, err.Error())
		return
	}
	if !req.MiniatureType.Valid() {
		validationError(c, fmt.Sprintf("invalid miniature_type %q", req.MiniatureType))
		return
	}

	_, found, err := h.Store.GetProject(projectID)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !found {
		projectNotFound(c, projectID)
		return
	}

	miniature, err := h.Store.CreateMiniature(projectID, req)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, miniature)
}

func (h *Handler) GetMiniature(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	miniature, found, err := h.Store.GetMiniature(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !found {
		miniatureNotFound(c, id)
		return
	}
	c.JSON(http.StatusOK, miniature)
}

func (h *Handler) UpdateMiniature(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.UpdateMiniatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "invalid request body")
		return
	}
	if req.Name != nil {
		if err := validation.RequireName("Miniature name", *req.Name); err != nil {
			validationError(c, err.Error())
			return
		}
	}
	if req.ProgressStatus != nil && !req.ProgressStatus.Valid() {
		validationError(c, fmt.Sprintf("invalid progress_status %q", *req.ProgressStatus))
		return
	}

	miniature, found, err := h.Store.UpdateMiniature(id, req)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !found {
		miniatureNotFound(c, id)
		return
	}
	c.JSON(http.StatusOK, miniature)
}

func (h *Handler) DeleteMiniature(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	existed, err := h.Store.DeleteMiniature(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !existed {
		miniatureNotFound(c, id)
		return
	}
	c.Status(http.StatusNoContent)
}
