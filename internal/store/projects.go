package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bconolly/MiniatureProjectTracker/internal/domain"
)

// CreateProject inserts a new project and returns the stored record.
func (s *Store) CreateProject(req domain.CreateProjectRequest) (domain.Project, error) {
	db, cancel := s.session()
	defer cancel()

	now := time.Now().UTC()
	model := ProjectModel{
		Name:        req.Name,
		GameSystem:  string(req.GameSystem),
		Army:        req.Army,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(&model).Error; err != nil {
		return domain.Project{}, err
	}
	return projectFromModel(model), nil
}

// GetProject returns the project or found == false when the id is unknown.
func (s *Store) GetProject(id int64) (domain.Project, bool, error) {
	db, cancel := s.session()
	defer cancel()

	var model ProjectModel
	if err := db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Project{}, false, nil
		}
		return domain.Project{}, false, err
	}
	return projectFromModel(model), true, nil
}

// ListProjects returns every project ordered by game system, army, then name.
func (s *Store) ListProjects() ([]domain.Project, error) {
	db, cancel := s.session()
	defer cancel()

	var models []ProjectModel
	if err := db.Order("game_system, army, name").Find(&models).Error; err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(models))
	for _, m := range models {
		projects = append(projects, projectFromModel(m))
	}
	return projects, nil
}

// UpdateProject merges the provided fields over the current record and writes
// the result. The read and the write are not wrapped in a transaction, so
// concurrent updates to the same id race last-write-wins per column.
func (s *Store) UpdateProject(id int64, req domain.UpdateProjectRequest) (domain.Project, bool, error) {
	current, found, err := s.GetProject(id)
	if err != nil || !found {
		return domain.Project{}, found, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.GameSystem != nil {
		current.GameSystem = *req.GameSystem
	}
	if req.Army != nil {
		current.Army = *req.Army
	}
	if req.Description != nil {
		current.Description = req.Description
	}
	current.UpdatedAt = time.Now().UTC()

	db, cancel := s.session()
	defer cancel()
	err = db.Model(&ProjectModel{}).Where("id = ?", id).Updates(map[string]any{
		"name":        current.Name,
		"game_system": string(current.GameSystem),
		"army":        current.Army,
		"description": current.Description,
		"updated_at":  current.UpdatedAt,
	}).Error
	if err != nil {
		return domain.Project{}, false, err
	}
	return current, true, nil
}

// DeleteProject removes the project and, through the cascading foreign keys,
// its miniatures, their photos, and their recipe links. Reports whether a row
// existed.
func (s *Store) DeleteProject(id int64) (bool, error) {
	db, cancel := s.session()
	defer cancel()

	res := db.Delete(&ProjectModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
