package export

import (
	"bytes"
	"errors"
	"image/png"
	"sync"
	"testing"

	"adpress/internal/models"
	"adpress/internal/raster"
)

func newExporter(t *testing.T, dpi int) *Exporter {
	t.Helper()
	r, err := raster.New()
	if err != nil {
		t.Fatalf("raster.New() error: %v", err)
	}
	return New(r, dpi)
}

func exportSpec() models.AdvertisementSpec {
	s := models.Default()
	s.Title = "Grand Opening"
	s.Subtitle = "This weekend only"
	s.ContactInfo = "info@example.test"
	s.Offers = []models.Offer{
		{Title: "Coffee", Description: "Any size", Price: "2.00"},
		{Title: "Croissant", Description: "Butter or chocolate", Price: "1.50"},
	}
	s.Normalize()
	return s
}

// TestExportImage_InstagramDimensions verifies the social export is
// exactly 1080x1080 regardless of the configured DPI.
func TestExportImage_InstagramDimensions(t *testing.T) {
	e := newExporter(t, 150)
	spec := exportSpec()
	spec.LayoutID = models.LayoutSingleInstagram

	data, err := e.ExportImage(spec)
	if err != nil {
		t.Fatalf("ExportImage error: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 1080 || cfg.Height != 1080 {
		t.Errorf("image size = %dx%d, want 1080x1080", cfg.Width, cfg.Height)
	}
}

// TestExportImage_DPIScalesPrintLayouts verifies print layouts scale
// from the 300 DPI reference.
func TestExportImage_DPIScalesPrintLayouts(t *testing.T) {
	e := newExporter(t, 150)
	spec := exportSpec()
	spec.LayoutID = models.LayoutSingleA4

	data, err := e.ExportImage(spec)
	if err != nil {
		t.Fatalf("ExportImage error: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 1240 || cfg.Height != 1754 {
		t.Errorf("image size = %dx%d, want 1240x1754 at 150 DPI", cfg.Width, cfg.Height)
	}
}

// TestExportPageImages verifies one PNG per booklet page, in reading
// order, all at the page size.
func TestExportPageImages(t *testing.T) {
	e := newExporter(t, 72)
	spec := exportSpec()
	spec.LayoutID = models.LayoutBooklet4

	pages, err := e.ExportPageImages(spec)
	if err != nil {
		t.Fatalf("ExportPageImages error: %v", err)
	}
	if len(pages) != 4 {
		t.Fatalf("got %d pages, want 4", len(pages))
	}
	for i, data := range pages {
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("page %d is not a PNG: %v", i, err)
		}
		if cfg.Width != 420 || cfg.Height != 595 {
			t.Errorf("page %d size = %dx%d, want 420x595 at 72 DPI", i, cfg.Width, cfg.Height)
		}
	}
}

// TestExportDocument_PDFHeader verifies single and booklet layouts both
// produce a parseable PDF stream.
func TestExportDocument_PDFHeader(t *testing.T) {
	e := newExporter(t, 72)
	for _, id := range []models.LayoutID{
		models.LayoutSingleA4, models.LayoutBooklet2, models.LayoutBooklet4, models.LayoutBooklet8,
	} {
		t.Run(string(id), func(t *testing.T) {
			spec := exportSpec()
			spec.LayoutID = id

			data, err := e.ExportDocument(spec)
			if err != nil {
				t.Fatalf("ExportDocument error: %v", err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Error("output does not start with a PDF header")
			}
			if !bytes.Contains(data, []byte("%%EOF")) {
				t.Error("output has no PDF trailer")
			}
		})
	}
}

// TestExportDocument_SheetGeometry verifies the physical page boxes:
// imposed booklet sheets are landscape A4 and flat A4 documents are
// portrait. gofpdf writes the box in points with two decimals, so the
// exact strings are stable.
func TestExportDocument_SheetGeometry(t *testing.T) {
	e := newExporter(t, 72)

	tests := []struct {
		id   models.LayoutID
		box  string
		note string
	}{
		{models.LayoutBooklet2, "/MediaBox [0 0 841.89 595.28]", "landscape A4 sheet"},
		{models.LayoutBooklet4, "/MediaBox [0 0 841.89 595.28]", "landscape A4 sheet"},
		{models.LayoutBooklet8, "/MediaBox [0 0 841.89 595.28]", "landscape A4 sheet"},
		{models.LayoutSingleA4, "/MediaBox [0 0 595.28 841.89]", "portrait A4 page"},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			spec := exportSpec()
			spec.LayoutID = tt.id

			data, err := e.ExportDocument(spec)
			if err != nil {
				t.Fatalf("ExportDocument error: %v", err)
			}
			if !bytes.Contains(data, []byte(tt.box)) {
				t.Errorf("document is missing %q (%s)", tt.box, tt.note)
			}
		})
	}
}

// TestExport_InFlightGuard verifies concurrent exports fail fast with
// ErrExportInFlight rather than queueing.
func TestExport_InFlightGuard(t *testing.T) {
	e := newExporter(t, 72)
	spec := exportSpec()
	spec.LayoutID = models.LayoutBooklet8

	const workers = 4
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.ExportDocument(spec)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, rejected int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrExportInFlight):
			rejected++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if ok == 0 {
		t.Error("no export succeeded")
	}
	if ok+rejected != workers {
		t.Errorf("ok=%d rejected=%d, want all %d accounted for", ok, rejected, workers)
	}
}

// TestExport_GuardReleasesAfterFinish verifies the guard resets so a
// later export succeeds.
func TestExport_GuardReleasesAfterFinish(t *testing.T) {
	e := newExporter(t, 72)
	spec := exportSpec()
	spec.LayoutID = models.LayoutSingleInstagram

	if _, err := e.ExportImage(spec); err != nil {
		t.Fatalf("first export error: %v", err)
	}
	if _, err := e.ExportImage(spec); err != nil {
		t.Fatalf("second export error: %v", err)
	}
}
