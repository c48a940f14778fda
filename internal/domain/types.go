package domain

import "time"

type GameSystem string

const (
	GameSystemAgeOfSigmar  GameSystem = "age_of_sigmar"
	GameSystemHorusHeresy  GameSystem = "horus_heresy"
	GameSystemWarhammer40k GameSystem = "warhammer_40k"
)

// Valid reports whether the value is one of the supported game systems.
func (g GameSystem) Valid() bool {
	switch g {
	case GameSystemAgeOfSigmar, GameSystemHorusHeresy, GameSystemWarhammer40k:
		return true
	}
	return false
}

type MiniatureType string

const (
	MiniatureTypeTroop     MiniatureType = "troop"
	MiniatureTypeCharacter MiniatureType = "character"
)

func (m MiniatureType) Valid() bool {
	switch m {
	case MiniatureTypeTroop, MiniatureTypeCharacter:
		return true
	}
	return false
}

type ProgressStatus string

const (
	ProgressUnpainted  ProgressStatus = "unpainted"
	ProgressPrimed     ProgressStatus = "primed"
	ProgressBasecoated ProgressStatus = "basecoated"
	ProgressDetailed   ProgressStatus = "detailed"
	ProgressCompleted  ProgressStatus = "completed"
)

func (p ProgressStatus) Valid() bool {
	switch p {
	case ProgressUnpainted, ProgressPrimed, ProgressBasecoated, ProgressDetailed, ProgressCompleted:
		return true
	}
	return false
}

// Project is one painting endeavor for a single army within a game system.
type Project struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	GameSystem  GameSystem `json:"game_system"`
	Army        string     `json:"army"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Miniature is a single model tracked through the painting pipeline.
type Miniature struct {
	ID             int64          `json:"id"`
	ProjectID      int64          `json:"project_id"`
	Name           string         `json:"name"`
	MiniatureType  MiniatureType  `json:"miniature_type"`
	ProgressStatus ProgressStatus `json:"progress_status"`
	Notes          *string        `json:"notes"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Photo is the metadata row for a stored image. FilePath is the storage-layer
// key, not a local filesystem path.
type Photo struct {
	ID          int64     `json:"id"`
	MiniatureID int64     `json:"miniature_id"`
	Filename    string    `json:"filename"`
	FilePath    string    `json:"file_path"`
	FileSize    int64     `json:"file_size"`
	MimeType    string    `json:"mime_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// PaintingRecipe is a reusable named painting procedure, independent of any
// specific miniature.
type PaintingRecipe struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	MiniatureType MiniatureType `json:"miniature_type"`
	Steps         []string      `json:"steps"`
	PaintsUsed    []string      `json:"paints_used"`
	Techniques    []string      `json:"techniques"`
	Notes         *string       `json:"notes"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CreateProjectRequest struct {
	Name        string     `json:"name"`
	GameSystem  GameSystem `json:"game_system"`
	Army        string     `json:"army"`
	Description *string    `json:"description"`
}

// UpdateProjectRequest carries partial updates. Nil fields keep the current
// value; non-nil fields overwrite it, including explicit empty strings.
type UpdateProjectRequest struct {
	Name        *string     `json:"name"`
	GameSystem  *GameSystem `json:"game_system"`
	Army        *string     `json:"army"`
	Description *string     `json:"description"`
}

type CreateMiniatureRequest struct {
	Name          string        `json:"name"`
	MiniatureType MiniatureType `json:"miniature_type"`
	Notes         *string       `json:"notes"`
}

type UpdateMiniatureRequest struct {
	Name           *string         `json:"name"`
	ProgressStatus *ProgressStatus `json:"progress_status"`
	Notes          *string         `json:"notes"`
}

type CreateRecipeRequest struct {
	Name          string        `json:"name"`
	MiniatureType MiniatureType `json:"miniature_type"`
	Steps         []string      `json:"steps"`
	PaintsUsed    []string      `json:"paints_used"`
	Techniques    []string      `json:"techniques"`
	Notes         *string       `json:"notes"`
}

type UpdateRecipeRequest struct {
	Name       *string  `json:"name"`
	Steps      []string `json:"steps"`
	PaintsUsed []string `json:"paints_used"`
	Techniques []string `json:"techniques"`
	Notes      *string  `json:"notes"`
}
