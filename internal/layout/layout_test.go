package layout

import (
	"testing"

	"adpress/internal/models"
)

// TestGet_RuleShape verifies every layout rule is internally consistent:
// role and slot tables match the page count, and the layout offers at
// least MaxOfferCount slots so no valid spec drops offers.
func TestGet_RuleShape(t *testing.T) {
	layouts := []struct {
		id        models.LayoutID
		pages     int
		booklet   bool
		pageWidth int
	}{
		{id: models.LayoutSingleInstagram, pages: 1, booklet: false, pageWidth: 1080},
		{id: models.LayoutSingleA4, pages: 1, booklet: false, pageWidth: 2480},
		{id: models.LayoutBooklet2, pages: 2, booklet: true, pageWidth: 1748},
		{id: models.LayoutBooklet4, pages: 4, booklet: true, pageWidth: 1748},
		{id: models.LayoutBooklet8, pages: 8, booklet: true, pageWidth: 1748},
	}

	for _, tt := range layouts {
		t.Run(string(tt.id), func(t *testing.T) {
			r := Get(tt.id)
			if r.Pages != tt.pages {
				t.Errorf("Pages = %d, want %d", r.Pages, tt.pages)
			}
			if len(r.Roles) != r.Pages {
				t.Errorf("len(Roles) = %d, want %d", len(r.Roles), r.Pages)
			}
			if len(r.OfferSlots) != r.Pages {
				t.Errorf("len(OfferSlots) = %d, want %d", len(r.OfferSlots), r.Pages)
			}
			if r.Booklet != tt.booklet {
				t.Errorf("Booklet = %v, want %v", r.Booklet, tt.booklet)
			}
			if r.PageSize.WidthPx != tt.pageWidth {
				t.Errorf("PageSize.WidthPx = %d, want %d", r.PageSize.WidthPx, tt.pageWidth)
			}

			total := 0
			for _, s := range r.OfferSlots {
				total += s
			}
			if total < models.MaxOfferCount {
				t.Errorf("total offer slots = %d, want >= %d", total, models.MaxOfferCount)
			}

			if r.Booklet && r.SheetSize.WidthPx == 0 {
				t.Error("booklet rule is missing its sheet size")
			}
		})
	}
}

// TestGet_FailsClosed verifies unknown layout ids resolve to the
// single-a4 rule, matching spec normalization.
func TestGet_FailsClosed(t *testing.T) {
	r := Get(models.LayoutID("poster-a0"))
	if r.ID != models.LayoutSingleA4 {
		t.Errorf("Get(unknown).ID = %q, want %q", r.ID, models.LayoutSingleA4)
	}
}

// TestInstagramExportSize pins the social raster contract.
func TestInstagramExportSize(t *testing.T) {
	r := Get(models.LayoutSingleInstagram)
	if r.PageSize.WidthPx != 1080 || r.PageSize.HeightPx != 1080 {
		t.Errorf("instagram export size = %dx%d, want 1080x1080",
			r.PageSize.WidthPx, r.PageSize.HeightPx)
	}
}
