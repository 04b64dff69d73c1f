// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedTemplate is a named, persisted snapshot of an AdvertisementSpec.
// It is created on explicit save, overwritten on save-with-same-name
// (keeping ID and CreatedAt), and removed on explicit delete. The local
// persistent store owns all SavedTemplates for the profile.
type SavedTemplate struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Spec      AdvertisementSpec `json:"spec"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
