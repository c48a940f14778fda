package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bconolly/MiniatureProjectTracker/internal/domain"
)

// CreateMiniature inserts a miniature under the given project. New miniatures
// always start unpainted.
func (s *Store) CreateMiniature(projectID int64, req domain.CreateMiniatureRequest) (domain.Miniature, error) {
	db, cancel := s.session()
	defer cancel()

	now := time.Now().UTC()
	model := MiniatureModel{
		ProjectID:      projectID,
		Name:           req.Name,
		MiniatureType:  string(req.MiniatureType),
		ProgressStatus: string(domain.ProgressUnpainted),
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := db.Create(&model).Error; err != nil {
		return domain.Miniature{}, err
	}
	return miniatureFromModel(model), nil
}

func (s *Store) GetMiniature(id int64) (domain.Miniature, bool, error) {
	db, cancel := s.session()
	defer cancel()

	var model MiniatureModel
	if err := db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Miniature{}, false, nil
		}
		return domain.Miniature{}, false, err
	}
	return miniatureFromModel(model), true, nil
}

// ListMiniaturesByProject returns a project's miniatures in creation order.
func (s *Store) ListMiniaturesByProject(projectID int64) ([]domain.Miniature, error) {
	db, cancel := s.session()
	defer cancel()

	var models []MiniatureModel
	if err := db.Where("project_id = ?", projectID).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	miniatures := make([]domain.Miniature, 0, len(models))
	for _, m := range models {
		miniatures = append(miniatures, miniatureFromModel(m))
	}
	return miniatures, nil
}

// UpdateMiniature merges the provided fields over the current record. The
// miniature type is fixed at creation and cannot be changed here.
func (s *Store) UpdateMiniature(id int64, req domain.UpdateMiniatureRequest) (domain.Miniature, bool, error) {
	current, found, err := s.GetMiniature(id)
	if err != nil || !found {
		return domain.Miniature{}, found, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.ProgressStatus != nil {
		current.ProgressStatus = *req.ProgressStatus
	}
	if req.Notes != nil {
		current.Notes = req.Notes
	}
	current.UpdatedAt = time.Now().UTC()

	db, cancel := s.session()
	defer cancel()
	err = db.Model(&MiniatureModel{}).Where("id = ?", id).Updates(map[string]any{
		"name":            current.Name,
		"progress_status": string(current.ProgressStatus),
		"notes":           current.Notes,
		"updated_at":      current.UpdatedAt,
	}).Error
	if err != nil {
		return domain.Miniature{}, false, err
	}
	return current, true, nil
}

// DeleteMiniature removes the miniature; its photos and recipe links go with
// it via the cascading foreign keys. Linked recipes themselves are untouched.
func (s *Store) DeleteMiniature(id int64) (bool, error) {
	db, cancel := s.session()
	defer cancel()

	res := db.Delete(&MiniatureModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
