// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"image"
	"log/slog"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ImageRef holds an uploaded image as raw encoded bytes plus the probed
// metadata. The bytes are kept in their original encoding so template
// files round-trip uploads unchanged; decoding to pixels happens in the
// rasterizer.
type ImageRef struct {
	Data   []byte `json:"data"`
	Format string `json:"format"` // "png", "jpeg", "gif", "webp"
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DecodeImageRef validates uploaded image bytes and probes their
// dimensions without a full pixel decode. On failure it logs a warning
// and returns a ValidationError for the given field; the caller leaves
// the spec field unset.
func DecodeImageRef(field string, data []byte) (*ImageRef, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		slog.Warn("image upload rejected", "field", field, "error", err)
		return nil, &ValidationError{Field: field, Reason: "unrecognized or corrupt image data", Err: err}
	}

	ref := &ImageRef{
		Data:   make([]byte, len(data)),
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
	copy(ref.Data, data)
	return ref, nil
}

func (r *ImageRef) clone() *ImageRef {
	if r == nil {
		return nil
	}
	out := *r
	out.Data = make([]byte, len(r.Data))
	copy(out.Data, r.Data)
	return &out
}
