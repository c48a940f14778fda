package store

import (
	"gorm.io/gorm/clause"

	"github.com/bconolly/MiniatureProjectTracker/internal/domain"
)

// LinkRecipe associates a recipe with a miniature. Linking an already-linked
// pair is a no-op, not an error.
func (s *Store) LinkRecipe(miniatureID, recipeID int64) error {
	db, cancel := s.session()
	defer cancel()

	link := MiniatureRecipeModel{MiniatureID: miniatureID, RecipeID: recipeID}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// UnlinkRecipe removes the association and reports whether a link existed.
func (s *Store) UnlinkRecipe(miniatureID, recipeID int64) (bool, error) {
	db, cancel := s.session()
	defer cancel()

	res := db.Where("miniature_id = ? AND recipe_id = ?", miniatureID, recipeID).
		Delete(&MiniatureRecipeModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListRecipesForMiniature returns the recipes linked to a miniature, ordered
// by recipe name.
func (s *Store) ListRecipesForMiniature(miniatureID int64) ([]domain.PaintingRecipe, error) {
	db, cancel := s.session()
	defer cancel()

	var models []RecipeModel
	err := db.Model(&RecipeModel{}).
		Joins("INNER JOIN miniature_recipes mr ON painting_recipes.id = mr.recipe_id").
		Where("mr.miniature_id = ?", miniatureID).
		Order("painting_recipes.name").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	recipes := make([]domain.PaintingRecipe, 0, len(models))
	for _, m := range models {
		recipes = append(recipes, recipeFromModel(m))
	}
	return recipes, nil
}

// CountMiniaturesForRecipe returns how many miniatures currently link to the
// recipe.
func (s *Store) CountMiniaturesForRecipe(recipeID int64) (int64, error) {
	db, cancel := s.session()
	defer cancel()

	var count int64
	err := db.Model(&MiniatureRecipeModel{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
