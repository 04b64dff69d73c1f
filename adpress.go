// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package adpress composes advertisements and booklets: an editable
// spec drives preset templates and layouts, renders to a declarative
// page tree, and exports to PNG images, imposed print-ready PDFs, and
// portable template files.
//
// The Designer ties the pieces together for the common workflow:
//
//	d, err := adpress.New()
//	d.Update(adpress.Partial{Title: &title})
//	pdf, err := d.ExportDocument()
package adpress

import (
	"fmt"

	"adpress/internal/codec"
	"adpress/internal/config"
	"adpress/internal/export"
	"adpress/internal/layout"
	"adpress/internal/models"
	"adpress/internal/raster"
	"adpress/internal/render"
	"adpress/internal/state"
	"adpress/internal/store"
)

// Domain types, re-exported for callers.
type (
	Spec          = models.AdvertisementSpec
	Offer         = models.Offer
	ColorScheme   = models.ColorScheme
	SavedTemplate = models.SavedTemplate
	Partial       = state.Partial
	View          = render.View
	Spread        = layout.Spread
)

// Typed errors callers match with errors.Is/As.
var (
	ErrExportInFlight = export.ErrExportInFlight
	ErrNotFound       = store.ErrNotFound
	ErrInvalidName    = store.ErrInvalidName
)

// DefaultSpec returns a fresh advertisement with documented defaults.
func DefaultSpec() Spec {
	return models.Default()
}

// Designer is the top-level handle: the working spec, the persistent
// template store, and the export pipeline.
type Designer struct {
	state     *state.Store
	templates *store.TemplateStore
	exporter  *export.Exporter
}

// New builds a Designer from environment configuration.
func New() (*Designer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds a Designer from an explicit configuration.
func NewWithConfig(cfg *config.Config) (*Designer, error) {
	r, err := raster.New()
	if err != nil {
		return nil, err
	}
	templates, err := store.NewTemplateStore(cfg.TemplateDir())
	if err != nil {
		return nil, err
	}

	d := &Designer{
		state:     state.New(),
		templates: templates,
		exporter:  export.New(r, cfg.ExportDPI),
	}
	if cfg.Language != "" {
		lang := models.Language(cfg.Language)
		d.state.Update(state.Partial{Language: &lang})
	}
	return d, nil
}

// Spec returns a snapshot of the working advertisement.
func (d *Designer) Spec() Spec {
	return d.state.Get()
}

// Update applies a sparse change and returns the normalized result.
func (d *Designer) Update(p Partial) Spec {
	return d.state.Update(p)
}

// Replace swaps in a whole spec.
func (d *Designer) Replace(spec Spec) Spec {
	return d.state.Replace(spec)
}

// Reset restores the default advertisement.
func (d *Designer) Reset() Spec {
	return d.state.Reset()
}

// SetLogoImage installs (or clears, with nil data) the logo.
func (d *Designer) SetLogoImage(data []byte) (Spec, error) {
	return d.state.SetLogoImage(data)
}

// SetBackgroundImage installs (or clears, with nil data) the background
// image.
func (d *Designer) SetBackgroundImage(data []byte) (Spec, error) {
	return d.state.SetBackgroundImage(data)
}

// Subscribe registers a callback invoked with a snapshot after every
// applied change, for live preview re-rendering.
func (d *Designer) Subscribe(fn func(Spec)) {
	d.state.Subscribe(fn)
}

// Preview renders the working spec to its declarative page tree.
func (d *Designer) Preview() *View {
	return render.Render(d.state.Get())
}

// Spreads returns the facing-page preview order for the working
// layout, with human-readable labels.
func (d *Designer) Spreads() []Spread {
	rule := layout.Get(d.state.Get().LayoutID)
	return layout.SpreadPairs(rule.Pages)
}

// ExportImage renders the first page as a PNG at the layout's export
// size.
func (d *Designer) ExportImage() ([]byte, error) {
	return d.exporter.ExportImage(d.state.Get())
}

// ExportPageImages renders every page as a separate PNG.
func (d *Designer) ExportPageImages() ([][]byte, error) {
	return d.exporter.ExportPageImages(d.state.Get())
}

// ExportDocument renders a print-ready PDF; booklet layouts are imposed
// two-up on landscape A4 sheets.
func (d *Designer) ExportDocument() ([]byte, error) {
	return d.exporter.ExportDocument(d.state.Get())
}

// SaveTemplate persists the working spec under a name. Saving an
// existing name overwrites it, keeping its identity.
func (d *Designer) SaveTemplate(name string) (SavedTemplate, error) {
	return d.templates.Save(name, d.state.Get())
}

// LoadTemplate loads a saved template into the working spec.
func (d *Designer) LoadTemplate(name string) (Spec, error) {
	tpl, err := d.templates.Load(name)
	if err != nil {
		return d.state.Get(), err
	}
	return d.state.Replace(tpl.Spec), nil
}

// DeleteTemplate removes a saved template.
func (d *Designer) DeleteTemplate(name string) error {
	return d.templates.Delete(name)
}

// ListTemplates returns all saved templates sorted by name.
func (d *Designer) ListTemplates() ([]SavedTemplate, error) {
	return d.templates.List()
}

// ExportTemplateFile serializes the working spec as a portable template
// document for sharing between installations.
func (d *Designer) ExportTemplateFile(name string) ([]byte, error) {
	return codec.Encode(name, d.state.Get())
}

// ImportTemplateFile parses a template document, saves it, and loads it
// into the working spec. A malformed document leaves both the store and
// the working spec untouched.
func (d *Designer) ImportTemplateFile(data []byte) (SavedTemplate, error) {
	name, spec, err := codec.Decode(data)
	if err != nil {
		return SavedTemplate{}, err
	}
	tpl, err := d.templates.Save(name, spec)
	if err != nil {
		return SavedTemplate{}, err
	}
	d.state.Replace(tpl.Spec)
	return tpl, nil
}
