// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package layout

import "fmt"

// Blank marks an empty half of a printed face.
const Blank = -1

// Face is one printed side of a sheet, carrying two page indices
// (0-based into the reading-order page sequence, Blank for an empty
// half). Faces alternate front/back per sheet: face 2k is the front of
// sheet k, face 2k+1 its back.
type Face struct {
	Left  int
	Right int
}

// Spread is a pair of facing pages as seen in the final folded booklet,
// used for on-screen page-order preview.
type Spread struct {
	Left  int
	Right int
	Label string
}

// ImpositionOrder returns the printed faces for a saddle-stitch booklet
// of pageCount pages. The scheme is the standard sheet-folding
// convention: sheet k (0-indexed) carries reading pages (N-k, k+1) on
// its front and (k+2, N-k-1) on its back, so that nesting the sheets
// and folding once yields strictly increasing reading order 1..N.
//
// For 8 pages printed two-up on A4:
//
//	Sheet 1 front: 8, 1   Sheet 1 back: 2, 7
//	Sheet 2 front: 6, 3   Sheet 2 back: 4, 5
func ImpositionOrder(pageCount int) []Face {
	switch pageCount {
	case 1:
		return []Face{{Left: 0, Right: Blank}}
	case 2:
		// Back and front share the single printed side.
		return []Face{{Left: 1, Right: 0}}
	default:
		faces := make([]Face, 0, pageCount/2)
		for k := 0; k < pageCount/4; k++ {
			faces = append(faces,
				Face{Left: pageCount - 1 - 2*k, Right: 2 * k},          // sheet k front
				Face{Left: 2*k + 1, Right: pageCount - 2 - 2*k},        // sheet k back
			)
		}
		return faces
	}
}

// SpreadPairs returns the facing-page pairs of the folded product in
// viewing order, with a human label for each.
func SpreadPairs(pageCount int) []Spread {
	switch pageCount {
	case 1:
		return []Spread{{Left: 0, Right: Blank, Label: "Single Page"}}
	case 2:
		return []Spread{{Left: 0, Right: 1, Label: "Front & Back"}}
	case 4:
		return []Spread{
			{Left: 3, Right: 0, Label: "Back Cover & Front Cover"},
			{Left: 1, Right: 2, Label: "Inside Spread"},
		}
	case 8:
		return []Spread{
			{Left: 7, Right: 0, Label: "Back Cover & Front Cover"},
			{Left: 1, Right: 2, Label: "First Inside Spread"},
			{Left: 3, Right: 4, Label: "Center Spread"},
			{Left: 5, Right: 6, Label: "Last Inside Spread"},
		}
	default:
		var spreads []Spread
		for i := 0; i < pageCount; i += 2 {
			right := Blank
			if i+1 < pageCount {
				right = i + 1
			}
			spreads = append(spreads, Spread{Left: i, Right: right, Label: fmt.Sprintf("Pages %d-%d", i+1, i+2)})
		}
		return spreads
	}
}
