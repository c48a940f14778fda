package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bconolly/MiniatureProjectTracker/internal/storage"
	"github.com/bconolly/MiniatureProjectTracker/internal/store"
)

// Handler carries the shared dependencies for all endpoint handlers.
type Handler struct {
	Store  *store.Store
	Photos *storage.Service
}

func New(st *store.Store, photos *storage.Service) *Handler {
	return &Handler{Store: st, Photos: photos}
}

// pathID parses the named path parameter as an integer id. Non-numeric input
// is a validation error; ids that match no row (0 included) surface as 404
// from the lookup that follows.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		validationError(c, "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
