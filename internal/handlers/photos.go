package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bconolly/MiniatureProjectTracker/internal/storage"
	"github.com/bconolly/MiniatureProjectTracker/internal/util"
)

// maxUploadBytes is the inclusive photo size limit (10 MiB).
const maxUploadBytes = 10 * 1024 * 1024

// allowedMimeTypes is the exact accepted set. "image/jpg" is not a valid MIME
// type and is rejected.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

func photoNotFound(c *gin.Context, id int64) {
	notFoundError(c, fmt.Sprintf("Photo with id %d not found", id))
}

// UploadPhoto accepts a multipart upload in the "photo" field, stores the
// bytes, and records the metadata row. All gate checks run before anything
// touches storage or the database.
func (h *Handler) UploadPhoto(c *gin.Context) {
	miniatureID, ok := pathID(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		uploadError(c, ErrTypeMissingFile, "No file provided in 'photo' field")
		return
	}
	if header.Filename == "" {
		uploadError(c, ErrTypeMissingName, "Uploaded file has no filename")
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		uploadError(c, ErrTypeMissingMime, "Uploaded file has no content type")
		return
	}
	if !allowedMimeTypes[mimeType] {
		uploadError(c, ErrTypeInvalidFile, fmt.Sprintf("Unsupported file type %q: expected image/jpeg, image/png, or image/webp", mimeType))
		return
	}
	if header.Size > maxUploadBytes {
		uploadError(c, ErrTypeFileTooLarge, fmt.Sprintf("File size %d exceeds the %d byte limit", header.Size, maxUploadBytes))
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

	file, err := header.Open()
	if err != nil {
		storageError(c, err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		storageError(c, err)
		return
	}

	ctx := c.Request.Context()
	key, err := h.Photos.StorePhoto(ctx, data, header.Filename, miniatureID)
	if err != nil {
		storageError(c, err)
		return
	}

	photo, err := h.Store.CreatePhoto(miniatureID, header.Filename, key, header.Size, mimeType)
	if err != nil {
		// The object is already written; remove it so a failed row insert
		// does not leave an orphan behind.
		if cleanupErr := h.Photos.DeletePhoto(ctx, key); cleanupErr != nil && !errors.Is(cleanupErr, storage.ErrNotFound) {
			util.Logger(c).Error("orphaned photo object", "key", key, "error", cleanupErr)
		}
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

// ListPhotos returns a miniature's photos as a bare array.
func (h *Handler) ListPhotos(c *gin.Context) {
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

	photos, err := h.Store.ListPhotosByMiniature(miniatureID)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

// DeletePhoto removes the metadata row, then the stored object. A storage
// failure after the row is gone is logged, not surfaced; the delete already
// succeeded from the client's point of view.
func (h *Handler) DeletePhoto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	photo, found, err := h.Store.DeletePhoto(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !found {
		photoNotFound(c, id)
		return
	}

	if err := h.Photos.DeletePhoto(c.Request.Context(), photo.FilePath); err != nil && !errors.Is(err, storage.ErrNotFound) {
		util.Logger(c).Error("orphaned photo object", "key", photo.FilePath, "error", err)
	}
	c.Status(http.StatusNoContent)
}
