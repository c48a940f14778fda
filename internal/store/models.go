package store

import (
	"encoding/json"
	"time"

	"github.com/bconolly/MiniatureProjectTracker/internal/domain"
)

// ProjectModel is the persistence shape of a domain.Project. Child rows are
// declared so AutoMigrate emits ON DELETE CASCADE foreign keys.
type ProjectModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"not null"`
	GameSystem  string  `gorm:"not null"`
	Army        string  `gorm:"not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Miniatures []MiniatureModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (ProjectModel) TableName() string { return "projects" }

type MiniatureModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	ProjectID      int64  `gorm:"not null;index"`
	Name           string `gorm:"not null"`
	MiniatureType  string `gorm:"not null"`
	ProgressStatus string `gorm:"not null"`
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Photos []PhotoModel           `gorm:"foreignKey:MiniatureID;constraint:OnDelete:CASCADE"`
	Links  []MiniatureRecipeModel `gorm:"foreignKey:MiniatureID;constraint:OnDelete:CASCADE"`
}

func (MiniatureModel) TableName() string { return "miniatures" }

type PhotoModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	MiniatureID int64  `gorm:"not null;index"`
	Filename    string `gorm:"not null"`
	FilePath    string `gorm:"not null"`
	FileSize    int64  `gorm:"not null"`
	MimeType    string `gorm:"not null"`
	UploadedAt  time.Time
}

func (PhotoModel) TableName() string { return "photos" }

// RecipeModel stores the ordered string sequences as serialized JSON in text
// columns so the same schema works on SQLite and Postgres.
type RecipeModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"not null"`
	MiniatureType string `gorm:"not null"`
	Steps         string `gorm:"not null;default:'[]'"`
	PaintsUsed    string `gorm:"not null;default:'[]'"`
	Techniques    string `gorm:"not null;default:'[]'"`
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Links []MiniatureRecipeModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (RecipeModel) TableName() string { return "painting_recipes" }

// MiniatureRecipeModel is the many-to-many link row. The pair is the primary
// key; there is no independent identity.
type MiniatureRecipeModel struct {
	MiniatureID int64 `gorm:"primaryKey;autoIncrement:false"`
	RecipeID    int64 `gorm:"primaryKey;autoIncrement:false"`
}

func (MiniatureRecipeModel) TableName() string { return "miniature_recipes" }

func projectFromModel(m ProjectModel) domain.Project {
	return domain.Project{
		ID:          m.ID,
		Name:        m.Name,
		GameSystem:  domain.GameSystem(m.GameSystem),
		Army:        m.Army,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func miniatureFromModel(m MiniatureModel) domain.Miniature {
	return domain.Miniature{
		ID:             m.ID,
		ProjectID:      m.ProjectID,
		Name:           m.Name,
		MiniatureType:  domain.MiniatureType(m.MiniatureType),
		ProgressStatus: domain.ProgressStatus(m.ProgressStatus),
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func photoFromModel(m PhotoModel) domain.Photo {
	return domain.Photo{
		ID:          m.ID,
		MiniatureID: m.MiniatureID,
		Filename:    m.Filename,
		FilePath:    m.FilePath,
		FileSize:    m.FileSize,
		MimeType:    m.MimeType,
		UploadedAt:  m.UploadedAt,
	}
}

func recipeFromModel(m RecipeModel) domain.PaintingRecipe {
	return domain.PaintingRecipe{
		ID:            m.ID,
		Name:          m.Name,
		MiniatureType: domain.MiniatureType(m.MiniatureType),
		Steps:         decodeList(m.Steps),
		PaintsUsed:    decodeList(m.PaintsUsed),
		Techniques:    decodeList(m.Techniques),
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func encodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	raw, _ := json.Marshal(items)
	return string(raw)
}

// decodeList turns a stored JSON array back into a slice. A malformed column
// value yields an empty slice rather than an error.
func decodeList(raw string) []string {
	items := []string{}
	_ = json.Unmarshal([]byte(raw), &items)
	if items == nil {
		items = []string{}
	}
	return items
}
