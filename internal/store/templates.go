// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists named templates as one JSON file per template
// in a local directory. Files are keyed by a slug of the template name,
// so saving under an existing name overwrites that template.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"adpress/internal/models"
	"adpress/internal/slug"
)

// TemplateStore handles saved template operations against a directory.
type TemplateStore struct {
	dir string
	mu  sync.Mutex
}

// record is the on-disk shape of one saved template.
type record struct {
	ID        uuid.UUID                `json:"id"`
	Name      string                   `json:"name"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
	Spec      models.AdvertisementSpec `json:"spec"`
}

// NewTemplateStore opens (creating if needed) the template directory.
func NewTemplateStore(dir string) (*TemplateStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StorageError{Op: "open", Err: fmt.Errorf("create template dir: %w", err)}
	}
	return &TemplateStore{dir: dir}, nil
}

func (s *TemplateStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func keyFor(name string) (string, error) {
	key := slug.Generate(name)
	if key == "" {
		return "", &StorageError{Op: "key", Name: name, Err: ErrInvalidName}
	}
	return key, nil
}

// Save stores the spec under the given name. Saving a name that already
// exists overwrites the stored spec but keeps the template's identity
// and creation time.
func (s *TemplateStore) Save(name string, spec models.AdvertisementSpec) (models.SavedTemplate, error) {
	key, err := keyFor(name)
	if err != nil {
		return models.SavedTemplate{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	rec := record{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if prev, err := s.read(key); err == nil {
		rec.ID = prev.ID
		rec.CreatedAt = prev.CreatedAt
	} else if !errors.Is(err, ErrNotFound) {
		return models.SavedTemplate{}, &StorageError{Op: "save", Name: name, Err: err}
	}

	rec.Spec = spec.Clone()
	rec.Spec.Normalize()

	if err := s.write(key, rec); err != nil {
		return models.SavedTemplate{}, &StorageError{Op: "save", Name: name, Err: err}
	}

	slog.Info("template saved", "name", rec.Name, "key", key, "id", rec.ID)
	return rec.template(), nil
}

// Load returns the template saved under the given name.
func (s *TemplateStore) Load(name string) (models.SavedTemplate, error) {
	key, err := keyFor(name)
	if err != nil {
		return models.SavedTemplate{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read(key)
	if err != nil {
		return models.SavedTemplate{}, &StorageError{Op: "load", Name: name, Err: err}
	}
	return rec.template(), nil
}

// Delete removes the template saved under the given name.
func (s *TemplateStore) Delete(name string) error {
	key, err := keyFor(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &StorageError{Op: "delete", Name: name, Err: ErrNotFound}
		}
		return &StorageError{Op: "delete", Name: name, Err: err}
	}

	slog.Info("template deleted", "name", name, "key", key)
	return nil
}

// List returns all saved templates sorted by name. Unreadable files are
// skipped with a warning so one corrupt entry never hides the rest.
func (s *TemplateStore) List() ([]models.SavedTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: fmt.Errorf("read template dir: %w", err)}
	}

	templates := make([]models.SavedTemplate, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		key := strings.TrimSuffix(entry.Name(), ".json")
		rec, err := s.read(key)
		if err != nil {
			slog.Warn("skipping unreadable template file", "file", entry.Name(), "error", err)
			continue
		}
		templates = append(templates, rec.template())
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})
	return templates, nil
}

func (s *TemplateStore) read(key string) (record, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return record{}, ErrNotFound
		}
		return record{}, fmt.Errorf("read template file: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return record{}, fmt.Errorf("parse template file: %w", err)
	}
	rec.Spec.Normalize()
	return rec, nil
}

// write lands the record atomically: marshal to a temp file in the same
// directory, then rename over the target.
func (s *TemplateStore) write(key string, rec record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode template: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace template file: %w", err)
	}
	return nil
}

func (r record) template() models.SavedTemplate {
	return models.SavedTemplate{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Spec:      r.Spec.Clone(),
	}
}
