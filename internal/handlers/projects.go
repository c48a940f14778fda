package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bconolly/MiniatureProjectTracker/internal/domain"
	"github.com/bconolly/MiniatureProjectTracker/internal/validation"
)

func projectNotFound(c *gin.Context, id int64) {
	notFoundError(c, fmt.Sprintf("Project with id %d not found", id))
}

func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.Store.ListProjects()
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) CreateProject(c *gin.Context) {
	var req domain.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "invalid request body")
		return
	}
	if err := validation.RequireName("Project name", req.Name); err != nil {
		validationError(c, err.Error())
		return
	}
	if err := validation.RequireName("Project army", req.Army); err != nil {
		validationError(c, err.Error())
		return
	}
	if !req.GameSystem.Valid() {
		validationError(c, fmt.Sprintf("invalid game_system %q", req.GameSystem))
		return
	}

	project, err := h.Store.CreateProject(req)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	project, found, err := h.Store.GetProject(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !found {
		projectNotFound(c, id)
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject merges the provided fields. Validation only applies to fields
// present in the request.
func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "invalid request body")
		return
	}
	if req.Name != nil {
		if err := validation.RequireName("Project name", *req.Name); err != nil {
			validationError(c, err.Error())
			return
		}
	}
	if req.Army != nil {
		if err := validation.RequireName("Project army", *req.Army); err != nil {
			validationError(c, err.Error())
			return
		}
	}
	if req.GameSystem != nil && !req.GameSystem.Valid() {
		validationError(c, fmt.Sprintf("invalid game_system %q", *req.GameSystem))
		return
	}

	project, found, err := h.Store.UpdateProject(id, req)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !found {
		projectNotFound(c, id)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	existed, err := h.Store.DeleteProject(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !existed {
		projectNotFound(c, id)
		return
	}
	c.Status(http.StatusNoContent)
}
