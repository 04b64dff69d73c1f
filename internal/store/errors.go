// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "errors"

var (
	// ErrNotFound is returned when no template is saved under a name.
	ErrNotFound = errors.New("template not found")

	// ErrInvalidName is returned when a template name reduces to an
	// empty storage key.
	ErrInvalidName = errors.New("template name yields an empty key")
)

// StorageError wraps a failed template operation with the operation
// and template name involved.
type StorageError struct {
	Op   string
	Name string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Name == "" {
		return "store " + e.Op + ": " + e.Err.Error()
	}
	return "store " + e.Op + " " + e.Name + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
