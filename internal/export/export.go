// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export produces the deliverable artifacts: PNG images of
// individual pages and print-ready PDF documents with booklet pages
// imposed two-up on landscape A4 sheets.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"

	"adpress/internal/layout"
	"adpress/internal/models"
	"adpress/internal/raster"
	"adpress/internal/render"
)

// referenceDPI is the resolution the layout pixel tables are stated at.
const referenceDPI = 300

// Exporter renders specs to PNG and PDF. One export runs at a time; a
// second call while one is in flight fails fast with ErrExportInFlight
// instead of queueing.
type Exporter struct {
	raster   *raster.Rasterizer
	dpi      int
	inFlight atomic.Bool
}

// New returns an Exporter painting at the given resolution. DPI outside
// the supported range is clamped by the config layer; a zero value
// falls back to the 300 DPI print reference.
func New(r *raster.Rasterizer, dpi int) *Exporter {
	if dpi <= 0 {
		dpi = referenceDPI
	}
	return &Exporter{raster: r, dpi: dpi}
}

func (e *Exporter) acquire(op string) error {
	if !e.inFlight.CompareAndSwap(false, true) {
		return &ExportError{Op: op, Err: ErrExportInFlight}
	}
	return nil
}

// pagePixels returns the raster size for one page. The square social
// layout is pixel-native and ignores DPI; print layouts scale their
// 300 DPI reference size.
func (e *Exporter) pagePixels(rule layout.Rule) (int, int) {
	if rule.ID == models.LayoutSingleInstagram {
		return rule.PageSize.WidthPx, rule.PageSize.HeightPx
	}
	scale := float64(e.dpi) / referenceDPI
	w := int(math.Round(float64(rule.PageSize.WidthPx) * scale))
	h := int(math.Round(float64(rule.PageSize.HeightPx) * scale))
	return w, h
}

// ExportImage renders the first page of the advertisement as a PNG at
// the layout's native export size.
func (e *Exporter) ExportImage(spec models.AdvertisementSpec) ([]byte, error) {
	if err := e.acquire("image"); err != nil {
		return nil, err
	}
	defer e.inFlight.Store(false)

	view := render.Render(spec)
	rule := layout.Get(view.Layout)
	w, h := e.pagePixels(rule)

	png, err := e.encodePage(view.Pages[0], w, h)
	if err != nil {
		return nil, &ExportError{Op: "image", Err: err}
	}

	slog.Debug("exported image", "layout", view.Layout, "size", fmt.Sprintf("%dx%d", w, h), "bytes", len(png))
	return png, nil
}

// ExportPageImages renders every page as a separate PNG, in reading
// order.
func (e *Exporter) ExportPageImages(spec models.AdvertisementSpec) ([][]byte, error) {
	if err := e.acquire("pages"); err != nil {
		return nil, err
	}
	defer e.inFlight.Store(false)

	view := render.Render(spec)
	rule := layout.Get(view.Layout)
	w, h := e.pagePixels(rule)

	out := make([][]byte, 0, len(view.Pages))
	for _, page := range view.Pages {
		png, err := e.encodePage(page, w, h)
		if err != nil {
			return nil, &ExportError{Op: "pages", Err: fmt.Errorf("page %d: %w", page.Index, err)}
		}
		out = append(out, png)
	}

	slog.Debug("exported page images", "layout", view.Layout, "pages", len(out))
	return out, nil
}

// ExportDocument renders the advertisement as a PDF. Single-page
// layouts produce one page at the layout's physical size. Booklet
// layouts are imposed: each printed face is a landscape A4 sheet side
// carrying two pages, ordered so the stack folds into a booklet, with
// fold marks on the centre line.
func (e *Exporter) ExportDocument(spec models.AdvertisementSpec) ([]byte, error) {
	if err := e.acquire("document"); err != nil {
		return nil, err
	}
	defer e.inFlight.Store(false)

	view := render.Render(spec)
	rule := layout.Get(view.Layout)

	var (
		pdf *gofpdf.Fpdf
		err error
	)
	if rule.Booklet {
		pdf, err = e.imposedDocument(view, rule)
	} else {
		pdf, err = e.flatDocument(view, rule)
	}
	if err != nil {
		return nil, &ExportError{Op: "document", Err: err}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &ExportError{Op: "document", Err: fmt.Errorf("write pdf: %w", err)}
	}

	slog.Debug("exported document", "layout", view.Layout, "booklet", rule.Booklet, "bytes", buf.Len())
	return buf.Bytes(), nil
}

func (e *Exporter) flatDocument(view *render.View, rule layout.Rule) (*gofpdf.Fpdf, error) {
	wMM := rule.PageSize.WidthMM
	hMM := rule.PageSize.HeightMM

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: wMM, Ht: hMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	w, h := e.pagePixels(rule)
	for _, page := range view.Pages {
		png, err := e.encodePage(page, w, h)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page.Index, err)
		}
		pdf.AddPage()
		placePNG(pdf, fmt.Sprintf("page-%d", page.Index), png, 0, 0, wMM, hMM)
	}
	return pdf, pdf.Error()
}

func (e *Exporter) imposedDocument(view *render.View, rule layout.Rule) (*gofpdf.Fpdf, error) {
	sheetW := rule.SheetSize.WidthMM
	sheetH := rule.SheetSize.HeightMM
	halfW := sheetW / 2

	// SheetSize is already landscape (297x210); passing "L" on top of it
	// would make gofpdf swap the dimensions back to portrait.
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: sheetW, Ht: sheetH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	// Rasterize and register each page once; faces reference by name.
	w, h := e.pagePixels(rule)
	for _, page := range view.Pages {
		png, err := e.encodePage(page, w, h)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page.Index, err)
		}
		registerPNG(pdf, fmt.Sprintf("page-%d", page.Index), png)
	}

	for _, face := range layout.ImpositionOrder(len(view.Pages)) {
		pdf.AddPage()
		if face.Left != layout.Blank {
			pdf.ImageOptions(fmt.Sprintf("page-%d", face.Left), 0, 0, halfW, sheetH, false,
				gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
		if face.Right != layout.Blank {
			pdf.ImageOptions(fmt.Sprintf("page-%d", face.Right), halfW, 0, halfW, sheetH, false,
				gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
		drawFoldMarks(pdf, halfW, sheetH)
	}
	return pdf, pdf.Error()
}

// drawFoldMarks draws short grey ticks on the centre line at the top
// and bottom sheet edges, outside the trimmed page area.
func drawFoldMarks(pdf *gofpdf.Fpdf, x, sheetH float64) {
	const mark = 6.0
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.2)
	pdf.Line(x, 0, x, mark)
	pdf.Line(x, sheetH-mark, x, sheetH)
}

func registerPNG(pdf *gofpdf.Fpdf, name string, png []byte) {
	pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
}

func placePNG(pdf *gofpdf.Fpdf, name string, png []byte, x, y, w, h float64) {
	registerPNG(pdf, name, png)
	pdf.ImageOptions(name, x, y, w, h, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

func (e *Exporter) encodePage(page render.Page, w, h int) ([]byte, error) {
	img, err := e.raster.Render(page, w, h)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
