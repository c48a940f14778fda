package store

import (
	"testing"
	"time"

	"github.com/bconolly/MiniatureProjectTracker/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open("sqlite::memory:", DefaultConfig())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func strPtr(s string) *string { return &s }

func createProject(t *testing.T, st *Store, name string) domain.Project {
	t.Helper()
	project, err := st.CreateProject(domain.CreateProjectRequest{
		Name:       name,
		GameSystem: domain.GameSystemWarhammer40k,
		Army:       name,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return project
}

func createMiniature(t *testing.T, st *Store, projectID int64, name string) domain.Miniature {
	t.Helper()
	miniature, err := st.CreateMiniature(projectID, domain.CreateMiniatureRequest{
		Name:          name,
		MiniatureType: domain.MiniatureTypeTroop,
	})
	if err != nil {
		t.Fatalf("create miniature: %v", err)
	}
	return miniature
}

func createRecipe(t *testing.T, st *Store, name string) domain.PaintingRecipe {
	t.Helper()
	recipe, err := st.CreateRecipe(domain.CreateRecipeRequest{
		Name:          name,
		MiniatureType: domain.MiniatureTypeTroop,
		Steps:         []string{"prime black", "basecoat"},
		PaintsUsed:    []string{"Abaddon Black"},
		Techniques:    []string{"drybrush"},
	})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	return recipe
}

func TestProjectRoundTrip(t *testing.T) {
	st := newTestStore(t)
	created, err := st.CreateProject(domain.CreateProjectRequest{
		Name:        "Ultramarines",
		GameSystem:  domain.GameSystemWarhammer40k,
		Army:        "Ultramarines",
		Description: strPtr("2nd company"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("created_at != updated_at on create")
	}

	got, found, err := st.GetProject(created.ID)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if got.Name != "Ultramarines" || got.GameSystem != domain.GameSystemWarhammer40k {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Description == nil || *got.Description != "2nd company" {
		t.Fatalf("description mismatch: %v", got.Description)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	st := newTestStore(t)
	_, found, err := st.GetProject(999999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatalf("found a project in an empty store")
	}
}

func TestUpdateProjectMergesFields(t *testing.T) {
	st := newTestStore(t)
	created := createProject(t, st, "Blood Angels")

	time.Sleep(5 * time.Millisecond)
	updated, found, err := st.UpdateProject(created.ID, domain.UpdateProjectRequest{
		Army: strPtr("Death Company"),
	})
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if updated.Name != "Blood Angels" {
		t.Fatalf("omitted field changed: name = %q", updated.Name)
	}
	if updated.Army != "Death Company" {
		t.Fatalf("army = %q, want updated value", updated.Army)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at did not advance: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
}

func TestUpdateMissingProject(t *testing.T) {
	st := newTestStore(t)
	_, found, err := st.UpdateProject(12345, domain.UpdateProjectRequest{Name: strPtr("x")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if found {
		t.Fatalf("update reported a missing project as found")
	}
}

func TestProjectOrdering(t *testing.T) {
	st := newTestStore(t)
	mk := func(name string, system domain.GameSystem, army string) {
		if _, err := st.CreateProject(domain.CreateProjectRequest{Name: name, GameSystem: system, Army: army}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	mk("Zeta", domain.GameSystemWarhammer40k, "Orks")
	mk("Alpha", domain.GameSystemAgeOfSigmar, "Stormcast")
	mk("Beta", domain.GameSystemWarhammer40k, "Orks")

	projects, err := st.ListProjects()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("len = %d, want 3", len(projects))
	}
	// game_system, then army, then name.
	if projects[0].Name != "Alpha" || projects[1].Name != "Beta" || projects[2].Name != "Zeta" {
		t.Fatalf("order = %s, %s, %s", projects[0].Name, projects[1].Name, projects[2].Name)
	}
}

func TestMiniatureStartsUnpainted(t *testing.T) {
	st := newTestStore(t)
	project := createProject(t, st, "Necrons")
	miniature := createMiniature(t, st, project.ID, "Overlord")
	if miniature.ProgressStatus != domain.ProgressUnpainted {
		t.Fatalf("progress_status = %q, want unpainted", miniature.ProgressStatus)
	}
}

func TestUpdateMiniatureProgress(t *testing.T) {
	st := newTestStore(t)
	project := createProject(t, st, "Necrons")
	created := createMiniature(t, st, project.ID, "Warrior")

	status := domain.ProgressCompleted
	updated, found, err := st.UpdateMiniature(created.ID, domain.UpdateMiniatureRequest{
		ProgressStatus: &status,
	})
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if updated.ProgressStatus != domain.ProgressCompleted {
		t.Fatalf("progress_status = %q, want completed", updated.ProgressStatus)
	}
	if updated.Name != "Warrior" {
		t.Fatalf("name changed on progress update: %q", updated.Name)
	}
	if updated.MiniatureType != created.MiniatureType {
		t.Fatalf("miniature_type changed on update")
	}
}

func TestProjectCascadeDelete(t *testing.T) {
	st := newTestStore(t)
	project := createProject(t, st, "Tyranids")
	m1 := createMiniature(t, st, project.ID, "Hormagaunt")
	m2 := createMiniature(t, st, project.ID, "Termagant")
	photo, err := st.CreatePhoto(m1.ID, "swarm.png", "miniatures/1/k_swarm.png", 100, "image/png")
	if err != nil {
		t.Fatalf("create photo: %v", err)
	}

	existed, err := st.DeleteProject(project.ID)
	if err != nil || !existed {
		t.Fatalf("delete: existed=%v err=%v", existed, err)
	}

	for _, id := range []int64{m1.ID, m2.ID} {
		if _, found, err := st.GetMiniature(id); err != nil || found {
			t.Fatalf("miniature %d survived cascade: found=%v err=%v", id, found, err)
		}
	}
	if _, found, err := st.GetPhoto(photo.ID); err != nil || found {
		t.Fatalf("photo survived cascade: found=%v err=%v", found, err)
	}
}

func TestMiniatureCascadeKeepsRecipes(t *testing.T) {
	st := newTestStore(t)
	project := createProject(t, st, "Tau")
	miniature := createMiniature(t, st, project.ID, "Crisis Suit")
	recipe := createRecipe(t, st, "White armor")
	photo, err := st.CreatePhoto(miniature.ID, "suit.jpg", "miniatures/1/k_suit.jpg", 50, "image/jpeg")
	if err != nil {
		t.Fatalf("create photo: %v", err)
	}
	if err := st.LinkRecipe(miniature.ID, recipe.ID); err != nil {
		t.Fatalf("link: %v", err)
	}

	existed, err := st.DeleteMiniature(miniature.ID)
	if err != nil || !existed {
		t.Fatalf("delete: existed=%v err=%v", existed, err)
	}

	if _, found, err := st.GetPhoto(photo.ID); err != nil || found {
		t.Fatalf("photo survived cascade: found=%v err=%v", found, err)
	}
	// The recipe itself is untouched; only the link row goes.
	if _, found, err := st.GetRecipe(recipe.ID); err != nil || !found {
		t.Fatalf("recipe deleted by miniature cascade: found=%v err=%v", found, err)
	}
	count, err := st.CountMiniaturesForRecipe(recipe.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("link rows remaining = %d, want 0", count)
	}
}

func TestLinkIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	project := createProject(t, st, "Eldar")
	miniature := createMiniature(t, st, project.ID, "Guardian")
	recipe := createRecipe(t, st, "Gem highlights")

	if err := st.LinkRecipe(miniature.ID, recipe.ID); err != nil {
		t.Fatalf("first link: %v", err)
	}
	if err := st.LinkRecipe(miniature.ID, recipe.ID); err != nil {
		t.Fatalf("second link: %v", err)
	}
	count, err := st.CountMiniaturesForRecipe(recipe.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("link rows = %d, want exactly 1", count)
	}
}

func TestUnlinkNonexistentLink(t *testing.T) {
	st := newTestStore(t)
	project := createProject(t, st, "Eldar")
	miniature := createMiniature(t, st, project.ID, "Ranger")
	recipe := createRecipe(t, st, "Cloak blend")

	existed, err := st.UnlinkRecipe(miniature.ID, recipe.ID)
	if err != nil {
		t.Fatalf("unlink: %v", err)
	}
	if existed {
		t.Fatalf("unlink reported a link that was never created")
	}
}

func TestRecipeSequenceRoundTrip(t *testing.T) {
	st := newTestStore(t)
	created := createRecipe(t, st, "Bone blades")

	got, found, err := st.GetRecipe(created.ID)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if len(got.Steps) != 2 || got.Steps[0] != "prime black" {
		t.Fatalf("steps = %v", got.Steps)
	}
	if len(got.PaintsUsed) != 1 || len(got.Techniques) != 1 {
		t.Fatalf("sequences = %v / %v", got.PaintsUsed, got.Techniques)
	}
}

func TestUpdateRecipeSequenceSemantics(t *testing.T) {
	st := newTestStore(t)
	created := createRecipe(t, st, "Rust effect")

	// Omitted sequences keep their value.
	updated, found, err := st.UpdateRecipe(created.ID, domain.UpdateRecipeRequest{
		Name: strPtr("Heavy rust effect"),
	})
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if len(updated.Steps) != 2 {
		t.Fatalf("omitted steps changed: %v", updated.Steps)
	}

	// A present empty sequence replaces the stored one.
	updated, found, err = st.UpdateRecipe(created.ID, domain.UpdateRecipeRequest{
		Steps: []string{},
	})
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if len(updated.Steps) != 0 {
		t.Fatalf("explicit empty steps not applied: %v", updated.Steps)
	}
	if updated.Name != "Heavy rust effect" {
		t.Fatalf("name lost on sequence update: %q", updated.Name)
	}
}

func TestListRecipesByType(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.CreateRecipe(domain.CreateRecipeRequest{Name: "Troop scheme", MiniatureType: domain.MiniatureTypeTroop}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := st.CreateRecipe(domain.CreateRecipeRequest{Name: "Character scheme", MiniatureType: domain.MiniatureTypeCharacter}); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := st.ListRecipes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all recipes = %d, want 2", len(all))
	}
	troops, err := st.ListRecipesByType(domain.MiniatureTypeTroop)
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if len(troops) != 1 || troops[0].Name != "Troop scheme" {
		t.Fatalf("troop filter = %+v", troops)
	}
}

func TestDeletePhotoReturnsRecord(t *testing.T) {
	st := newTestStore(t)
	project := createProject(t, st, "Chaos")
	miniature := createMiniature(t, st, project.ID, "Cultist")
	created, err := st.CreatePhoto(miniature.ID, "cultist.webp", "miniatures/1/k_cultist.webp", 77, "image/webp")
	if err != nil {
		t.Fatalf("create photo: %v", err)
	}

	deleted, found, err := st.DeletePhoto(created.ID)
	if err != nil || !found {
		t.Fatalf("delete: found=%v err=%v", found, err)
	}
	if deleted.FilePath != "miniatures/1/k_cultist.webp" {
		t.Fatalf("deleted record file_path = %q", deleted.FilePath)
	}
	if _, found, _ := st.GetPhoto(created.ID); found {
		t.Fatalf("photo row still present after delete")
	}
}

func TestHealthCheck(t *testing.T) {
	st := newTestStore(t)
	if err := st.HealthCheck(); err != nil {
		t.Fatalf("health check: %v", err)
	}
}
