package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bconolly/MiniatureProjectTracker/internal/domain"
)

func (s *Store) CreateRecipe(req domain.CreateRecipeRequest) (domain.PaintingRecipe, error) {
	db, cancel := s.session()
	defer cancel()

	now := time.Now().UTC()
	model := RecipeModel{
		Name:          req.Name,
		MiniatureType: string(req.MiniatureType),
		Steps:         encodeList(req.Steps),
		PaintsUsed:    encodeList(req.PaintsUsed),
		Techniques:    encodeList(req.Techniques),
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := db.Create(&model).Error; err != nil {
		return domain.PaintingRecipe{}, err
	}
	return recipeFromModel(model), nil
}

func (s *Store) GetRecipe(id int64) (domain.PaintingRecipe, bool, error) {
	db, cancel := s.session()
	defer cancel()

	var model RecipeModel
	if err := db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PaintingRecipe{}, false, nil
		}
		return domain.PaintingRecipe{}, false, err
	}
	return recipeFromModel(model), true, nil
}

// ListRecipes returns all recipes ordered by name.
func (s *Store) ListRecipes() ([]domain.PaintingRecipe, error) {
	return s.listRecipes(nil)
}

// ListRecipesByType returns recipes of one miniature type ordered by name.
func (s *Store) ListRecipesByType(miniatureType domain.MiniatureType) ([]domain.PaintingRecipe, error) {
	return s.listRecipes(&miniatureType)
}

func (s *Store) listRecipes(miniatureType *domain.MiniatureType) ([]domain.PaintingRecipe, error) {
	db, cancel := s.session()
	defer cancel()

	tx := db.Order("name")
	if miniatureType != nil {
		tx = tx.Where("miniature_type = ?", string(*miniatureType))
	}
	var models []RecipeModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	recipes := make([]domain.PaintingRecipe, 0, len(models))
	for _, m := range models {
		recipes = append(recipes, recipeFromModel(m))
	}
	return recipes, nil
}

// UpdateRecipe merges the provided fields over the current record. A nil
// sequence keeps the stored value; a non-nil (even empty) sequence replaces
// it. The miniature type is fixed at creation.
func (s *Store) UpdateRecipe(id int64, req domain.UpdateRecipeRequest) (domain.PaintingRecipe, bool, error) {
	current, found, err := s.GetRecipe(id)
	if err != nil || !found {
		return domain.PaintingRecipe{}, found, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Steps != nil {
		current.Steps = req.Steps
	}
	if req.PaintsUsed != nil {
		current.PaintsUsed = req.PaintsUsed
	}
	if req.Techniques != nil {
		current.Techniques = req.Techniques
	}
	if req.Notes != nil {
		current.Notes = req.Notes
	}
	current.UpdatedAt = time.Now().UTC()

	db, cancel := s.session()
	defer cancel()
	err = db.Model(&RecipeModel{}).Where("id = ?", id).Updates(map[string]any{
		"name":        current.Name,
		"steps":       encodeList(current.Steps),
		"paints_used": encodeList(current.PaintsUsed),
		"techniques":  encodeList(current.Techniques),
		"notes":       current.Notes,
		"updated_at":  current.UpdatedAt,
	}).Error
	if err != nil {
		return domain.PaintingRecipe{}, false, err
	}
	return current, true, nil
}

// DeleteRecipe removes the recipe and its link rows; miniatures that used it
// are untouched.
func (s *Store) DeleteRecipe(id int64) (bool, error) {
	db, cancel := s.session()
	defer cancel()

	res := db.Delete(&RecipeModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
