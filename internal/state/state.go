// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package state holds the advertisement being edited. All reads return
// snapshots and all writes go through normalization, so observers never
// see a partially applied or out-of-range spec.
package state

import (
	"log/slog"
	"sync"

	"adpress/internal/models"
)

// Partial is a sparse update: only non-nil fields are applied. Slices
// and structs replace the current value wholesale.
type Partial struct {
	Language          *models.Language
	TemplateID        *models.TemplateID
	LayoutID          *models.LayoutID
	Title             *string
	Subtitle          *string
	ContactInfo       *string
	TitleSize         *float64
	OfferCount        *int
	Offers            *[]models.Offer
	Colors            *models.ColorScheme
	BackgroundOpacity *float64
}

// Subscriber receives a snapshot after every applied change.
type Subscriber func(models.AdvertisementSpec)

// Store is the single mutable holder of the working spec. It is safe
// for concurrent use.
type Store struct {
	mu   sync.Mutex
	spec models.AdvertisementSpec
	subs []Subscriber
}

// New returns a store holding the default advertisement.
func New() *Store {
	return &Store{spec: models.Default()}
}

// Get returns a snapshot of the current spec. Mutating the snapshot
// never affects the store.
func (s *Store) Get() models.AdvertisementSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec.Clone()
}

// Update applies the set fields of p, normalizes, and notifies
// subscribers. It returns the resulting snapshot.
func (s *Store) Update(p Partial) models.AdvertisementSpec {
	s.mu.Lock()

	if p.Language != nil {
		s.spec.Language = *p.Language
	}
	if p.TemplateID != nil {
		s.spec.TemplateID = *p.TemplateID
	}
	if p.LayoutID != nil {
		s.spec.LayoutID = *p.LayoutID
	}
	if p.Title != nil {
		s.spec.Title = *p.Title
	}
	if p.Subtitle != nil {
		s.spec.Subtitle = *p.Subtitle
	}
	if p.ContactInfo != nil {
		s.spec.ContactInfo = *p.ContactInfo
	}
	if p.TitleSize != nil {
		s.spec.TitleSize = *p.TitleSize
	}
	if p.OfferCount != nil {
		s.spec.OfferCount = *p.OfferCount
	}
	if p.Offers != nil {
		offers := make([]models.Offer, len(*p.Offers))
		copy(offers, *p.Offers)
		s.spec.Offers = offers
	}
	if p.Colors != nil {
		s.spec.Colors = *p.Colors
	}
	if p.BackgroundOpacity != nil {
		s.spec.BackgroundOpacity = *p.BackgroundOpacity
	}

	s.spec.Normalize()
	return s.finish()
}

// Replace swaps in a whole spec, as when loading a saved template. The
// incoming spec is normalized before it becomes visible.
func (s *Store) Replace(spec models.AdvertisementSpec) models.AdvertisementSpec {
	s.mu.Lock()
	s.spec = spec.Clone()
	s.spec.Normalize()
	return s.finish()
}

// Reset restores the default advertisement.
func (s *Store) Reset() models.AdvertisementSpec {
	s.mu.Lock()
	s.spec = models.Default()
	slog.Debug("spec reset to defaults")
	return s.finish()
}

// SetLogoImage validates and installs logo image bytes. Passing nil
// data clears the logo.
func (s *Store) SetLogoImage(data []byte) (models.AdvertisementSpec, error) {
	ref, err := decodeOptional("logo_image", data)
	if err != nil {
		return s.Get(), err
	}
	s.mu.Lock()
	s.spec.LogoImage = ref
	return s.finish(), nil
}

// SetBackgroundImage validates and installs background image bytes.
// Passing nil data clears the background image.
func (s *Store) SetBackgroundImage(data []byte) (models.AdvertisementSpec, error) {
	ref, err := decodeOptional("background_image", data)
	if err != nil {
		return s.Get(), err
	}
	s.mu.Lock()
	s.spec.BackgroundImage = ref
	return s.finish(), nil
}

func decodeOptional(field string, data []byte) (*models.ImageRef, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return models.DecodeImageRef(field, data)
}

// Subscribe registers a callback invoked synchronously, under no lock,
// with a snapshot after every applied change.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// finish snapshots the spec, releases the lock, and notifies
// subscribers outside it so callbacks may call back into the store.
func (s *Store) finish() models.AdvertisementSpec {
	snapshot := s.spec.Clone()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot.Clone())
	}
	return snapshot
}
