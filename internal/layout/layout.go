// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package layout holds the static rule table that maps each layoutId to
// its page geometry and per-page offer slots, plus the saddle-stitch
// imposition and spread ordering used for booklet printing.
package layout

import "adpress/internal/models"

// PageRole tells the renderer which slot recipe a page follows.
type PageRole string

const (
	RoleSingle  PageRole = "single"  // the only page of a one-page layout
	RoleCover   PageRole = "cover"   // booklet front cover
	RoleContent PageRole = "content" // booklet inner page
	RoleBack    PageRole = "back"    // booklet back cover
)

// Size is a page or sheet extent in both print millimetres and export
// pixels. Pixel values are the fixed export resolution for the layout
// (300 DPI for print sizes, the platform-required size for social).
type Size struct {
	WidthMM  float64
	HeightMM float64
	WidthPx  int
	HeightPx int
}

// Standard sizes.
var (
	SizeInstagram   = Size{WidthMM: 108, HeightMM: 108, WidthPx: 1080, HeightPx: 1080}
	SizeA4Portrait  = Size{WidthMM: 210, HeightMM: 297, WidthPx: 2480, HeightPx: 3508}
	SizeA5Portrait  = Size{WidthMM: 148, HeightMM: 210, WidthPx: 1748, HeightPx: 2480}
	SizeA4Landscape = Size{WidthMM: 297, HeightMM: 210, WidthPx: 3508, HeightPx: 2480}
)

// Rule is the declarative record for one layoutId: how many pages, what
// role each page plays, how many offer slots each page carries, and the
// page/sheet geometry. OfferSlots and Roles are indexed by page.
type Rule struct {
	ID         models.LayoutID
	Pages      int
	Roles      []PageRole
	OfferSlots []int
	PageSize   Size
	SheetSize  Size // zero for single layouts (no imposition)
	Booklet    bool
}

// rules is the closed lookup table over the layout enum. Offer slots
// total at least MaxOfferCount per layout so no valid spec drops offers.
var rules = map[models.LayoutID]Rule{
	models.LayoutSingleInstagram: {
		ID:         models.LayoutSingleInstagram,
		Pages:      1,
		Roles:      []PageRole{RoleSingle},
		OfferSlots: []int{4},
		PageSize:   SizeInstagram,
	},
	models.LayoutSingleA4: {
		ID:         models.LayoutSingleA4,
		Pages:      1,
		Roles:      []PageRole{RoleSingle},
		OfferSlots: []int{4},
		PageSize:   SizeA4Portrait,
	},
	models.LayoutBooklet2: {
		ID:         models.LayoutBooklet2,
		Pages:      2,
		Roles:      []PageRole{RoleCover, RoleBack},
		OfferSlots: []int{2, 2},
		PageSize:   SizeA5Portrait,
		SheetSize:  SizeA4Landscape,
		Booklet:    true,
	},
	models.LayoutBooklet4: {
		ID:         models.LayoutBooklet4,
		Pages:      4,
		Roles:      []PageRole{RoleCover, RoleContent, RoleContent, RoleBack},
		OfferSlots: []int{0, 2, 2, 0},
		PageSize:   SizeA5Portrait,
		SheetSize:  SizeA4Landscape,
		Booklet:    true,
	},
	models.LayoutBooklet8: {
		ID:         models.LayoutBooklet8,
		Pages:      8,
		Roles:      []PageRole{RoleCover, RoleContent, RoleContent, RoleContent, RoleContent, RoleContent, RoleContent, RoleBack},
		OfferSlots: []int{0, 1, 1, 1, 1, 0, 0, 0},
		PageSize:   SizeA5Portrait,
		SheetSize:  SizeA4Landscape,
		Booklet:    true,
	},
}

// Get returns the rule for the given layout. Unrecognized values fail
// closed to the single-a4 rule, mirroring spec normalization.
func Get(id models.LayoutID) Rule {
	if r, ok := rules[id]; ok {
		return r
	}
	return rules[models.LayoutSingleA4]
}
