// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"adpress/internal/layout"
	"adpress/internal/models"
)

// Theme is the declarative rule record for one templateId: which fonts
// serve each semantic slot, the accent palette, the gradient direction,
// and the decorative shapes per page role. Themes never contain logic —
// dispatch over the template enum is a table lookup, not a branch chain.
type Theme struct {
	ID   models.TemplateID
	Name string

	TitleFont    FontFace
	SubtitleFont FontFace
	BodyFont     FontFace
	PriceFont    FontFace

	Accent       string
	PanelFill    string
	PanelOpacity float64

	GradientDir    GradientDir
	UppercaseTitle bool

	// Decorations keyed by the page's layout role.
	Decor map[layout.PageRole][]Shape
}

var themes = map[models.TemplateID]Theme{
	models.TemplateElegant: {
		ID:           models.TemplateElegant,
		Name:         "Elegant Luxury",
		TitleFont:    FontSmallCaps,
		SubtitleFont: FontItalic,
		BodyFont:     FontRegular,
		PriceFont:    FontSmallCaps,
		Accent:       "#d4a574",
		PanelFill:    "#faf5f0",
		PanelOpacity: 0.12,
		GradientDir:  GradientVertical,
		Decor: map[layout.PageRole][]Shape{
			layout.RoleCover: {
				{Kind: ShapeRectangle, X: 50, Y: 50, W: 90, H: 90, Stroke: "#d4a574", StrokeWidth: 2, Opacity: 0.6},
				{Kind: ShapeRectangle, X: 50, Y: 58, W: 40, H: 0.4, Fill: "#d4a574", Opacity: 1},
			},
			layout.RoleContent: {
				{Kind: ShapeRectangle, X: 50, Y: 7, W: 30, H: 0.4, Fill: "#d4a574", Opacity: 1},
				{Kind: ShapeRectangle, X: 50, Y: 93, W: 30, H: 0.4, Fill: "#d4a574", Opacity: 1},
			},
			layout.RoleBack: {
				{Kind: ShapeRectangle, X: 50, Y: 50, W: 90, H: 90, Stroke: "#d4a574", StrokeWidth: 1, Opacity: 0.4},
			},
			layout.RoleSingle: {
				{Kind: ShapeRectangle, X: 50, Y: 50, W: 94, H: 94, Stroke: "#d4a574", StrokeWidth: 2, Opacity: 0.5},
			},
		},
	},
	models.TemplateModern: {
		ID:             models.TemplateModern,
		Name:           "Modern",
		TitleFont:      FontBold,
		SubtitleFont:   FontMedium,
		BodyFont:       FontRegular,
		PriceFont:      FontBold,
		Accent:         "#00d9ff",
		PanelFill:      "#ffffff",
		PanelOpacity:   0.1,
		GradientDir:    GradientHorizontal,
		UppercaseTitle: true,
		Decor: map[layout.PageRole][]Shape{
			layout.RoleCover: {
				{Kind: ShapeCircle, X: 78, Y: 26, W: 32, H: 32, Fill: "#00d9ff", Opacity: 0.15},
				{Kind: ShapeRectangle, X: 14, Y: 52, W: 0.6, H: 32, Fill: "#00d9ff", Opacity: 1},
			},
			layout.RoleContent: {
				{Kind: ShapeRectangle, X: 12, Y: 12, W: 14, H: 0.8, Fill: "#00d9ff", Opacity: 1},
				{Kind: ShapeRectangle, X: 50, Y: 96, W: 100, H: 4, Fill: "#00d9ff", Opacity: 0.25},
			},
			layout.RoleBack: {
				{Kind: ShapeCircle, X: 82, Y: 18, W: 26, H: 26, Fill: "#00d9ff", Opacity: 0.3},
			},
			layout.RoleSingle: {
				{Kind: ShapeCircle, X: 84, Y: 14, W: 30, H: 30, Fill: "#00d9ff", Opacity: 0.15},
				{Kind: ShapeRectangle, X: 50, Y: 97, W: 100, H: 5, Fill: "#00d9ff", Opacity: 0.25},
			},
		},
	},
	models.TemplateMinimal: {
		ID:           models.TemplateMinimal,
		Name:         "Minimal",
		TitleFont:    FontRegular,
		SubtitleFont: FontRegular,
		BodyFont:     FontRegular,
		PriceFont:    FontMedium,
		Accent:       "#111111",
		PanelFill:    "#ffffff",
		PanelOpacity: 0.08,
		GradientDir:  GradientVertical,
		Decor: map[layout.PageRole][]Shape{
			layout.RoleCover: {
				{Kind: ShapeRectangle, X: 50, Y: 62, W: 16, H: 0.3, Fill: "#ffffff", Opacity: 0.7},
			},
			layout.RoleContent: {
				{Kind: ShapeRectangle, X: 12, Y: 8, W: 10, H: 0.3, Fill: "#ffffff", Opacity: 0.7},
			},
			layout.RoleBack: nil,
			layout.RoleSingle: {
				{Kind: ShapeRectangle, X: 50, Y: 24, W: 16, H: 0.3, Fill: "#ffffff", Opacity: 0.7},
			},
		},
	},
	models.TemplateBold: {
		ID:             models.TemplateBold,
		Name:           "Bold",
		TitleFont:      FontBold,
		SubtitleFont:   FontBold,
		BodyFont:       FontMedium,
		PriceFont:      FontBold,
		Accent:         "#f6e05e",
		PanelFill:      "#000000",
		PanelOpacity:   0.25,
		GradientDir:    GradientDiagonal,
		UppercaseTitle: true,
		Decor: map[layout.PageRole][]Shape{
			layout.RoleCover: {
				{Kind: ShapeTriangle, X: 80, Y: 72, W: 55, H: 55, Fill: "#f6e05e", Opacity: 0.3},
				{Kind: ShapeCircle, X: 10, Y: 10, W: 28, H: 28, Fill: "#f6e05e", Opacity: 0.8},
				{Kind: ShapeRectangle, X: 50, Y: 64, W: 100, H: 2.5, Fill: "#f6e05e", Opacity: 1},
			},
			layout.RoleContent: {
				{Kind: ShapeRectangle, X: 3, Y: 50, W: 3, H: 100, Fill: "#f6e05e", Opacity: 1},
				{Kind: ShapeTriangle, X: 94, Y: 94, W: 14, H: 14, Fill: "#f6e05e", Opacity: 0.7},
			},
			layout.RoleBack: {
				{Kind: ShapeCircle, X: 50, Y: 30, W: 42, H: 42, Fill: "#f6e05e", Opacity: 0.25},
			},
			layout.RoleSingle: {
				{Kind: ShapeTriangle, X: 88, Y: 86, W: 40, H: 40, Fill: "#f6e05e", Opacity: 0.25},
				{Kind: ShapeRectangle, X: 50, Y: 30, W: 100, H: 1.6, Fill: "#f6e05e", Opacity: 1},
			},
		},
	},
	models.TemplateProfessional: {
		ID:           models.TemplateProfessional,
		Name:         "Professional",
		TitleFont:    FontMedium,
		SubtitleFont: FontItalic,
		BodyFont:     FontRegular,
		PriceFont:    FontMedium,
		Accent:       "#ed8936",
		PanelFill:    "#f7fafc",
		PanelOpacity: 0.14,
		GradientDir:  GradientVertical,
		Decor: map[layout.PageRole][]Shape{
			layout.RoleCover: {
				{Kind: ShapeRectangle, X: 50, Y: 6, W: 100, H: 6, Fill: "#ed8936", Opacity: 1},
				{Kind: ShapeRectangle, X: 50, Y: 94, W: 100, H: 6, Fill: "#ed8936", Opacity: 0.8},
			},
			layout.RoleContent: {
				{Kind: ShapeRectangle, X: 50, Y: 5, W: 100, H: 5, Fill: "#ed8936", Opacity: 1},
				{Kind: ShapeRectangle, X: 50, Y: 52, W: 60, H: 0.4, Fill: "#ed8936", Opacity: 0.5},
			},
			layout.RoleBack: {
				{Kind: ShapeRectangle, X: 50, Y: 6, W: 100, H: 6, Fill: "#ed8936", Opacity: 1},
			},
			layout.RoleSingle: {
				{Kind: ShapeRectangle, X: 50, Y: 4, W: 100, H: 4, Fill: "#ed8936", Opacity: 1},
				{Kind: ShapeRectangle, X: 50, Y: 97, W: 100, H: 4, Fill: "#ed8936", Opacity: 1},
			},
		},
	},
}

// themeFor resolves the rule record for a template id. Unrecognized ids
// fail closed to the elegant theme, mirroring spec normalization.
func themeFor(id models.TemplateID) Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes[models.TemplateElegant]
}
