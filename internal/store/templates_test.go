package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"adpress/internal/models"
)

func newStore(t *testing.T) *TemplateStore {
	t.Helper()
	s, err := NewTemplateStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewTemplateStore error: %v", err)
	}
	return s
}

func storeSpec() models.AdvertisementSpec {
	s := models.Default()
	s.Title = "Weekly Special"
	s.Offers = []models.Offer{{Title: "Souvlaki", Price: "3.50"}}
	s.OfferCount = 1
	s.Normalize()
	return s
}

// TestSaveLoad_RoundTrip verifies a saved template loads back with the
// same name and spec.
func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newStore(t)

	saved, err := s.Save("Weekly Special", storeSpec())
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.Name != "Weekly Special" {
		t.Errorf("saved Name = %q", saved.Name)
	}
	if saved.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("saved template has a zero id")
	}

	loaded, err := s.Load("Weekly Special")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.ID != saved.ID {
		t.Errorf("loaded ID = %v, want %v", loaded.ID, saved.ID)
	}
	if loaded.Spec.Title != "Weekly Special" {
		t.Errorf("loaded spec title = %q", loaded.Spec.Title)
	}
	if len(loaded.Spec.Offers) == 0 || loaded.Spec.Offers[0].Title != "Souvlaki" {
		t.Error("loaded spec lost its offers")
	}
}

// TestSave_OverwriteKeepsIdentity verifies saving under an existing
// name replaces the spec but preserves the id and creation time.
func TestSave_OverwriteKeepsIdentity(t *testing.T) {
	s := newStore(t)

	first, err := s.Save("Weekly Special", storeSpec())
	if err != nil {
		t.Fatalf("first Save error: %v", err)
	}

	spec := storeSpec()
	spec.Title = "Updated"
	second, err := s.Save("Weekly Special", spec)
	if err != nil {
		t.Fatalf("second Save error: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("overwrite changed id: %v -> %v", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("overwrite changed CreatedAt: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if second.Spec.Title != "Updated" {
		t.Errorf("overwrite kept stale spec title %q", second.Spec.Title)
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("List returned %d templates after overwrite, want 1", len(all))
	}
}

// TestSave_NameKeying verifies names that slug to the same key share
// one file and distinct keys do not collide.
func TestSave_NameKeying(t *testing.T) {
	s := newStore(t)

	if _, err := s.Save("Weekly Special", storeSpec()); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := s.Save("  WEEKLY   SPECIAL  ", storeSpec()); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := s.Save("Εβδομαδιαίες Προσφορές", storeSpec()); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List returned %d templates, want 2", len(all))
	}
}

// TestSave_InvalidName verifies names that reduce to an empty key are
// rejected.
func TestSave_InvalidName(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{"", "   ", "!!!"} {
		if _, err := s.Save(name, storeSpec()); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Save(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

// TestLoad_NotFound verifies missing templates surface ErrNotFound
// through the storage error.
func TestLoad_NotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.Load("nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load error = %v, want ErrNotFound", err)
	}

	var se *StorageError
	if !errors.As(err, &se) || se.Op != "load" {
		t.Errorf("Load error = %v, want *StorageError with Op load", err)
	}
}

// TestDelete verifies deletion removes the template and deleting a
// missing name reports ErrNotFound.
func TestDelete(t *testing.T) {
	s := newStore(t)

	if _, err := s.Save("Weekly Special", storeSpec()); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Delete("Weekly Special"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Load("Weekly Special"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after Delete error = %v, want ErrNotFound", err)
	}
	if err := s.Delete("Weekly Special"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}

// TestList_SortedAndResilient verifies listing sorts by name and skips
// corrupt files instead of failing.
func TestList_SortedAndResilient(t *testing.T) {
	dir := t.TempDir()
	s, err := NewTemplateStore(dir)
	if err != nil {
		t.Fatalf("NewTemplateStore error: %v", err)
	}

	for _, name := range []string{"Zeta", "Alpha", "Middle"} {
		if _, err := s.Save(name, storeSpec()); err != nil {
			t.Fatalf("Save(%q) error: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List returned %d templates, want 3", len(all))
	}
	for i, want := range []string{"Alpha", "Middle", "Zeta"} {
		if all[i].Name != want {
			t.Errorf("List[%d].Name = %q, want %q", i, all[i].Name, want)
		}
	}
}

// TestSave_NormalizesSpec verifies stored specs are normalized, not
// raw.
func TestSave_NormalizesSpec(t *testing.T) {
	s := newStore(t)

	spec := storeSpec()
	spec.TitleSize = 999
	spec.TemplateID = "nonsense"

	saved, err := s.Save("Dirty", spec)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.Spec.TitleSize != models.MaxTitleSize {
		t.Errorf("stored TitleSize = %v, want clamped", saved.Spec.TitleSize)
	}
	if saved.Spec.TemplateID != models.TemplateElegant {
		t.Errorf("stored TemplateID = %q, want fail-closed default", saved.Spec.TemplateID)
	}
}
