package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bconolly/MiniatureProjectTracker/internal/domain"
)

// CreatePhoto records metadata for an already-stored photo object.
func (s *Store) CreatePhoto(miniatureID int64, filename, filePath string, fileSize int64, mimeType string) (domain.Photo, error) {
	db, cancel := s.session()
	defer cancel()

	model := PhotoModel{
		MiniatureID: miniatureID,
		Filename:    filename,
		FilePath:    filePath,
		FileSize:    fileSize,
		MimeType:    mimeType,
		UploadedAt:  time.Now().UTC(),
	}
	if err := db.Create(&model).Error; err != nil {
		return domain.Photo{}, err
	}
	return photoFromModel(model), nil
}

func (s *Store) GetPhoto(id int64) (domain.Photo, bool, error) {
	db, cancel := s.session()
	defer cancel()

	var model PhotoModel
	if err := db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Photo{}, false, nil
		}
		return domain.Photo{}, false, err
	}
	return photoFromModel(model), true, nil
}

// ListPhotosByMiniature returns a miniature's photos in upload order.
func (s *Store) ListPhotosByMiniature(miniatureID int64) ([]domain.Photo, error) {
	db, cancel := s.session()
	defer cancel()

	var models []PhotoModel
	if err := db.Where("miniature_id = ?", miniatureID).Order("uploaded_at").Find(&models).Error; err != nil {
		return nil, err
	}
	photos := make([]domain.Photo, 0, len(models))
	for _, m := range models {
		photos = append(photos, photoFromModel(m))
	}
	return photos, nil
}

// DeletePhoto removes the metadata row and returns the deleted record so the
// caller can clean up the stored bytes. The storage object itself is not
// touched here; row and object have separately-failable lifecycles.
func (s *Store) DeletePhoto(id int64) (domain.Photo, bool, error) {
	photo, found, err := s.GetPhoto(id)
	if err != nil || !found {
		return domain.Photo{}, found, err
	}

	db, cancel := s.session()
	defer cancel()
	res := db.Delete(&PhotoModel{}, "id = ?", id)
	if res.Error != nil {
		return domain.Photo{}, false, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Photo{}, false, nil
	}
	return photo, true, nil
}
