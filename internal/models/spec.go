// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the advertisement domain records shared across
// the application: the editable AdvertisementSpec, its enumerated
// template/layout/language variants, and the SavedTemplate snapshot.
package models

import "regexp"

// Language selects the fixed label strings rendered into pages
// (offer and contact headings). It never affects layout.
type Language string

const (
	LanguageGreek   Language = "el"
	LanguageEnglish Language = "en"
)

// TemplateID identifies one of the preset visual templates. Each value
// maps to a declarative theme rule record in the renderer.
type TemplateID string

const (
	TemplateElegant      TemplateID = "elegant"
	TemplateModern       TemplateID = "modern"
	TemplateMinimal      TemplateID = "minimal"
	TemplateBold         TemplateID = "bold"
	TemplateProfessional TemplateID = "professional"
)

// LayoutID identifies the page/booklet layout of the advertisement.
type LayoutID string

const (
	LayoutSingleInstagram LayoutID = "single-instagram"
	LayoutSingleA4        LayoutID = "single-a4"
	LayoutBooklet2        LayoutID = "booklet-2"
	LayoutBooklet4        LayoutID = "booklet-4"
	LayoutBooklet8        LayoutID = "booklet-8"
)

// Offer is a single advertised item.
type Offer struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// ColorScheme holds the user-selected colors as hex encodings
// ("#rgb" or "#rrggbb").
type ColorScheme struct {
	BackgroundGradientStart string `json:"background_gradient_start"`
	BackgroundGradientEnd   string `json:"background_gradient_end"`
	TitleColor              string `json:"title_color"`
	TextColor               string `json:"text_color"`
	PriceColor              string `json:"price_color"`
}

// Bounds for clamped numeric fields.
const (
	MinOfferCount = 1
	MaxOfferCount = 4
	MinTitleSize  = 30
	MaxTitleSize  = 80
)

// AdvertisementSpec is the complete user-editable definition of one
// advertisement or booklet. A single instance is owned by the active
// editing session; it crosses session boundaries only through explicit
// save/load/export/import.
type AdvertisementSpec struct {
	Language   Language   `json:"language"`
	TemplateID TemplateID `json:"template_id"`
	LayoutID   LayoutID   `json:"layout_id"`

	OfferCount  int     `json:"offer_count"`
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	ContactInfo string  `json:"contact_info"`
	Offers      []Offer `json:"offers"`

	Colors    ColorScheme `json:"colors"`
	TitleSize float64     `json:"title_size"`

	LogoImage         *ImageRef `json:"logo_image,omitempty"`
	BackgroundImage   *ImageRef `json:"background_image,omitempty"`
	BackgroundOpacity float64   `json:"background_opacity"`
}

// DefaultColors is the color scheme applied to a fresh spec and used as
// the per-field fallback when an invalid color encoding is normalized.
var DefaultColors = ColorScheme{
	BackgroundGradientStart: "#1a1a2e",
	BackgroundGradientEnd:   "#16213e",
	TitleColor:              "#ffffff",
	TextColor:               "#eaeaea",
	PriceColor:              "#d4a574",
}

// Default returns a fresh spec with every field at its documented default.
func Default() AdvertisementSpec {
	s := AdvertisementSpec{
		Language:          LanguageEnglish,
		TemplateID:        TemplateElegant,
		LayoutID:          LayoutSingleA4,
		OfferCount:        2,
		Colors:            DefaultColors,
		TitleSize:         48,
		BackgroundOpacity: 1,
	}
	s.Normalize()
	return s
}

// hexColor matches "#rgb" and "#rrggbb" encodings.
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether s is a valid color encoding.
func IsHexColor(s string) bool {
	return hexColor.MatchString(s)
}

// Normalize enforces every invariant in place: enums fail closed to
// their defaults, numeric fields are clamped rather than rejected,
// invalid colors fall back per field, and Offers is truncated or padded
// so its length always equals OfferCount (existing entries are kept for
// indices below the smaller of the old and new count).
func (s *AdvertisementSpec) Normalize() {
	switch s.Language {
	case LanguageGreek, LanguageEnglish:
	default:
		s.Language = LanguageEnglish
	}

	switch s.TemplateID {
	case TemplateElegant, TemplateModern, TemplateMinimal, TemplateBold, TemplateProfessional:
	default:
		s.TemplateID = TemplateElegant
	}

	switch s.LayoutID {
	case LayoutSingleInstagram, LayoutSingleA4, LayoutBooklet2, LayoutBooklet4, LayoutBooklet8:
	default:
		s.LayoutID = LayoutSingleA4
	}

	s.OfferCount = clampInt(s.OfferCount, MinOfferCount, MaxOfferCount)
	s.TitleSize = clampFloat(s.TitleSize, MinTitleSize, MaxTitleSize)
	s.BackgroundOpacity = clampFloat(s.BackgroundOpacity, 0, 1)

	for len(s.Offers) < s.OfferCount {
		s.Offers = append(s.Offers, Offer{})
	}
	s.Offers = s.Offers[:s.OfferCount]

	normalizeColor(&s.Colors.BackgroundGradientStart, DefaultColors.BackgroundGradientStart)
	normalizeColor(&s.Colors.BackgroundGradientEnd, DefaultColors.BackgroundGradientEnd)
	normalizeColor(&s.Colors.TitleColor, DefaultColors.TitleColor)
	normalizeColor(&s.Colors.TextColor, DefaultColors.TextColor)
	normalizeColor(&s.Colors.PriceColor, DefaultColors.PriceColor)
}

// Clone returns a deep copy, so a snapshot handed to a caller can never
// alias the owned spec's slices or image buffers.
func (s AdvertisementSpec) Clone() AdvertisementSpec {
	out := s
	out.Offers = make([]Offer, len(s.Offers))
	copy(out.Offers, s.Offers)
	out.LogoImage = s.LogoImage.clone()
	out.BackgroundImage = s.BackgroundImage.clone()
	return out
}

func normalizeColor(c *string, fallback string) {
	if !IsHexColor(*c) {
		*c = fallback
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
