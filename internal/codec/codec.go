// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package codec reads and writes the portable template document: a
// JSON envelope carrying a named advertisement spec, including any
// embedded images. Documents written by one installation import
// cleanly into another.
package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"adpress/internal/models"
)

// Format is the document marker distinguishing template files from
// arbitrary JSON.
const Format = "adpress/template"

// Version is the current document schema version. Decoding rejects
// documents from a newer schema.
const Version = 1

// Document is the envelope written to disk and shared between
// installations.
type Document struct {
	Format     string                   `json:"format"`
	Version    int                      `json:"version"`
	Name       string                   `json:"name"`
	ExportedAt time.Time                `json:"exported_at"`
	Spec       models.AdvertisementSpec `json:"spec"`
}

// Encode serializes a named spec as an indented template document.
func Encode(name string, spec models.AdvertisementSpec) ([]byte, error) {
	doc := Document{
		Format:     Format,
		Version:    Version,
		Name:       name,
		ExportedAt: time.Now().UTC(),
		Spec:       spec.Clone(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("codec: encode template %q: %w", name, err)
	}
	return data, nil
}

// Decode parses a template document, rejecting anything that is not
// one. Unknown fields are ignored so documents from newer minor
// revisions still import. The returned spec is normalized.
func Decode(data []byte) (string, models.AdvertisementSpec, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", models.AdvertisementSpec{}, &ImportFormatError{
			Reason: "not valid JSON",
			Err:    err,
		}
	}
	if doc.Format != Format {
		return "", models.AdvertisementSpec{}, &ImportFormatError{
			Reason: fmt.Sprintf("format marker %q is not %q", doc.Format, Format),
		}
	}
	if doc.Version < 1 || doc.Version > Version {
		return "", models.AdvertisementSpec{}, &ImportFormatError{
			Reason: fmt.Sprintf("unsupported document version %d", doc.Version),
		}
	}
	if doc.Name == "" {
		return "", models.AdvertisementSpec{}, &ImportFormatError{
			Reason: "missing template name",
		}
	}

	doc.Spec.Normalize()
	return doc.Name, doc.Spec, nil
}

// ImportFormatError reports a document that could not be decoded as a
// template.
type ImportFormatError struct {
	Reason string
	Err    error
}

func (e *ImportFormatError) Error() string {
	return "import template: " + e.Reason
}

func (e *ImportFormatError) Unwrap() error {
	return e.Err
}
