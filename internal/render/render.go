// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"strings"

	"adpress/internal/layout"
	"adpress/internal/models"
)

// Element sizes in points at the reference page height.
const (
	sizeHeading    = 20
	sizeOfferTitle = 13
	sizeOfferDesc  = 10
	sizeOfferPrice = 12
	sizeContact    = 11
	sizePageNumber = 8
)

// Render maps a spec onto the theme and layout rule tables, producing
// the full declarative page tree. It is deterministic and side-effect
// free: the same spec always yields the same View, and the View shares
// no mutable state with the input.
func Render(spec models.AdvertisementSpec) *View {
	spec = spec.Clone()
	spec.Normalize()

	rule := layout.Get(spec.LayoutID)
	theme := themeFor(spec.TemplateID)
	labels := labelsFor(spec.Language)

	view := &View{
		Layout:   rule.ID,
		Template: theme.ID,
		Pages:    make([]Page, 0, rule.Pages),
	}

	next := 0 // index of the next offer to place across all pages
	for i := 0; i < rule.Pages; i++ {
		role := rule.Roles[i]
		page := Page{
			Index:      i,
			Role:       role,
			Background: background(spec, theme),
		}
		page.Shapes = append(page.Shapes, theme.Decor[role]...)

		slots := rule.OfferSlots[i]
		switch role {
		case layout.RoleSingle:
			buildSingle(&page, spec, theme, slots, rule.PageSize, &next)
		case layout.RoleCover:
			buildCover(&page, spec, theme, slots, &next)
		case layout.RoleContent:
			buildContent(&page, spec, theme, labels, slots, &next)
		case layout.RoleBack:
			buildBack(&page, spec, theme, labels, slots, &next)
		}

		view.Pages = append(view.Pages, page)
	}

	return view
}

// background derives the page fill from the spec colors and the theme's
// gradient direction. A background image, when present, is painted over
// the gradient at the configured opacity.
func background(spec models.AdvertisementSpec, theme Theme) Background {
	return Background{
		Color:         spec.Colors.BackgroundGradientStart,
		GradientStart: spec.Colors.BackgroundGradientStart,
		GradientEnd:   spec.Colors.BackgroundGradientEnd,
		GradientDir:   theme.GradientDir,
		Image:         spec.BackgroundImage,
		ImageOpacity:  spec.BackgroundOpacity,
	}
}

func titleText(spec models.AdvertisementSpec, theme Theme) string {
	if theme.UppercaseTitle {
		return strings.ToUpper(spec.Title)
	}
	return spec.Title
}

// slotBox is the panel rectangle for one offer slot, percent coords.
type slotBox struct {
	x, y, w, h float64
}

// slotColumn stacks n slots vertically between yTop and yBottom with a
// fixed gap, centred at x.
func slotColumn(n int, x, w, yTop, yBottom float64) []slotBox {
	const gap = 3.0
	boxes := make([]slotBox, 0, n)
	step := (yBottom - yTop) / float64(n)
	for i := 0; i < n; i++ {
		boxes = append(boxes, slotBox{
			x: x,
			y: yTop + (float64(i)+0.5)*step,
			w: w,
			h: step - gap,
		})
	}
	return boxes
}

// slotGrid arranges n slots in two columns, used on the square social
// layout where a single column wastes width.
func slotGrid(n int, yTop, yBottom float64) []slotBox {
	rows := (n + 1) / 2
	step := (yBottom - yTop) / float64(rows)
	boxes := make([]slotBox, 0, n)
	for i := 0; i < n; i++ {
		col, row := i%2, i/2
		boxes = append(boxes, slotBox{
			x: 28 + float64(col)*44,
			y: yTop + (float64(row)+0.5)*step,
			w: 40,
			h: step - 4,
		})
	}
	return boxes
}

// placeOffers fills the given slot boxes with offers in order. Slots
// beyond the available offers render as empty panels, present but
// blank, so page geometry never shifts with the offer count.
func placeOffers(page *Page, spec models.AdvertisementSpec, theme Theme, boxes []slotBox, next *int) {
	for _, b := range boxes {
		var offer models.Offer
		if *next < len(spec.Offers) {
			offer = spec.Offers[*next]
			*next++
		}

		page.Shapes = append(page.Shapes, Shape{
			Kind: ShapeRectangle, X: b.x, Y: b.y, W: b.w, H: b.h,
			Fill: theme.PanelFill, Opacity: theme.PanelOpacity,
		})
		page.Texts = append(page.Texts,
			Text{Content: offer.Title, X: b.x, Y: b.y - b.h*0.30, Size: sizeOfferTitle,
				Font: theme.TitleFont, Color: spec.Colors.TitleColor, Align: AlignCenter},
			Text{Content: offer.Description, X: b.x, Y: b.y, Size: sizeOfferDesc,
				Font: theme.BodyFont, Color: spec.Colors.TextColor, Align: AlignCenter},
			Text{Content: offer.Price, X: b.x, Y: b.y + b.h*0.30, Size: sizeOfferPrice,
				Font: theme.PriceFont, Color: spec.Colors.PriceColor, Align: AlignCenter},
		)
	}
}

// buildSingle lays out the whole advertisement on one page: logo, title
// block, offer slots, contact line, and a contact QR code.
func buildSingle(page *Page, spec models.AdvertisementSpec, theme Theme, slots int, size layout.Size, next *int) {
	if spec.LogoImage != nil {
		page.Images = append(page.Images, ImageBox{
			Ref: spec.LogoImage, X: 50, Y: 9, W: 22, H: 10, Fit: FitContain, Opacity: 1,
		})
	}

	page.Texts = append(page.Texts,
		Text{Content: titleText(spec, theme), X: 50, Y: 19, Size: spec.TitleSize,
			Font: theme.TitleFont, Color: spec.Colors.TitleColor, Align: AlignCenter},
		Text{Content: spec.Subtitle, X: 50, Y: 28, Size: spec.TitleSize * 0.45,
			Font: theme.SubtitleFont, Color: theme.Accent, Align: AlignCenter},
	)

	var boxes []slotBox
	if size.WidthPx == size.HeightPx {
		boxes = slotGrid(slots, 34, 80)
	} else {
		boxes = slotColumn(slots, 50, 84, 34, 84)
	}
	placeOffers(page, spec, theme, boxes, next)

	page.Texts = append(page.Texts, Text{
		Content: spec.ContactInfo, X: 46, Y: 91, Size: sizeContact,
		Font: theme.BodyFont, Color: spec.Colors.TextColor, Align: AlignCenter,
	})

	if spec.ContactInfo != "" {
		page.QRCodes = append(page.QRCodes, QRBox{
			Content: spec.ContactInfo, X: 89, Y: 89, Size: 12,
			Dark: "#000000", Light: "#ffffff",
		})
	}
}

// buildCover lays out a booklet front cover. On the two-page layout the
// cover also carries the first offer slots.
func buildCover(page *Page, spec models.AdvertisementSpec, theme Theme, slots int, next *int) {
	titleY, subtitleY := 38.0, 50.0
	if slots > 0 {
		titleY, subtitleY = 24.0, 36.0
	}

	if spec.LogoImage != nil {
		page.Images = append(page.Images, ImageBox{
			Ref: spec.LogoImage, X: 50, Y: 14, W: 26, H: 12, Fit: FitContain, Opacity: 1,
		})
		titleY += 4
		subtitleY += 4
	}

	page.Texts = append(page.Texts,
		Text{Content: titleText(spec, theme), X: 50, Y: titleY, Size: spec.TitleSize,
			Font: theme.TitleFont, Color: spec.Colors.TitleColor, Align: AlignCenter},
		Text{Content: spec.Subtitle, X: 50, Y: subtitleY, Size: spec.TitleSize * 0.5,
			Font: theme.SubtitleFont, Color: theme.Accent, Align: AlignCenter},
	)

	if slots > 0 {
		placeOffers(page, spec, theme, slotColumn(slots, 50, 80, 52, 88), next)
	}
}

// buildContent lays out an inner booklet page: offers heading, slots,
// page number footer.
func buildContent(page *Page, spec models.AdvertisementSpec, theme Theme, labels Labels, slots int, next *int) {
	page.Texts = append(page.Texts, Text{
		Content: labels.Offers, X: 50, Y: 14, Size: sizeHeading,
		Font: theme.TitleFont, Color: spec.Colors.TitleColor, Align: AlignCenter,
	})

	placeOffers(page, spec, theme, slotColumn(slots, 50, 80, 24, 86), next)

	page.Texts = append(page.Texts, Text{
		Content: fmt.Sprintf("%s %d", labels.Page, page.Index+1), X: 50, Y: 95,
		Size: sizePageNumber, Font: theme.BodyFont, Color: spec.Colors.TextColor, Align: AlignCenter,
	})
}

// buildBack lays out the booklet back cover: contact heading, contact
// details, remaining offer slots on the two-page layout, and a contact
// QR code.
func buildBack(page *Page, spec models.AdvertisementSpec, theme Theme, labels Labels, slots int, next *int) {
	headingY, linesY, qrY := 26.0, 42.0, 66.0
	if slots > 0 {
		headingY, linesY, qrY = 14.0, 24.0, 86.0
	}

	page.Texts = append(page.Texts,
		Text{Content: labels.Contact, X: 50, Y: headingY, Size: sizeHeading,
			Font: theme.TitleFont, Color: theme.Accent, Align: AlignCenter},
		Text{Content: spec.ContactInfo, X: 50, Y: linesY, Size: sizeContact,
			Font: theme.BodyFont, Color: spec.Colors.TextColor, Align: AlignCenter},
	)

	if slots > 0 {
		placeOffers(page, spec, theme, slotColumn(slots, 50, 80, 36, 78), next)
	}

	if spec.ContactInfo != "" {
		page.QRCodes = append(page.QRCodes, QRBox{
			Content: spec.ContactInfo, X: 50, Y: qrY, Size: 14,
			Dark: "#000000", Light: "#ffffff",
		})
	}
}
