// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package raster paints declarative pages to pixels. It owns the parsed
// font set and a face cache; everything else is stateless compositing
// on NRGBA buffers.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"adpress/internal/render"
)

// RefHeight is the page height, in reference units, that text point
// sizes are expressed against. A text of Size 48 fills the same share
// of the page at every output resolution.
const RefHeight = 420.0

const lineSpacing = 1.35

// Rasterizer paints render pages at arbitrary pixel sizes. It is safe
// for concurrent use.
type Rasterizer struct {
	fonts map[render.FontFace]*sfnt.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	font render.FontFace
	size int // pixels, rounded
}

var fontSources = map[render.FontFace][]byte{
	render.FontRegular:   goregular.TTF,
	render.FontBold:      gobold.TTF,
	render.FontItalic:    goitalic.TTF,
	render.FontMedium:    gomedium.TTF,
	render.FontSmallCaps: gosmallcaps.TTF,
}

// New parses the bundled font set. The returned Rasterizer is reused
// across exports; parsing happens once.
func New() (*Rasterizer, error) {
	r := &Rasterizer{
		fonts: make(map[render.FontFace]*sfnt.Font, len(fontSources)),
		faces: make(map[faceKey]font.Face),
	}
	for name, ttf := range fontSources {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("raster: parse font %s: %w", name, err)
		}
		r.fonts[name] = f
	}
	return r, nil
}

func (r *Rasterizer) face(name render.FontFace, sizePx float64) (font.Face, error) {
	key := faceKey{font: name, size: int(math.Round(sizePx))}
	if key.size < 1 {
		key.size = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.faces[key]; ok {
		return f, nil
	}

	src, ok := r.fonts[name]
	if !ok {
		src = r.fonts[render.FontRegular]
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(key.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: face %s at %dpx: %w", name, key.size, err)
	}
	r.faces[key] = f
	return f, nil
}

// Render paints one page at the given pixel size. Elements are painted
// in declaration order: background, shapes, images, QR codes, texts.
func (r *Rasterizer) Render(page render.Page, w, h int) (*image.NRGBA, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", w, h)
	}

	dst := paintBackgroundGradient(page.Background, w, h)
	if err := paintBackgroundImage(dst, page.Background, w, h); err != nil {
		return nil, err
	}

	if len(page.Shapes) > 0 {
		overlay := image.NewNRGBA(image.Rect(0, 0, w, h))
		scale := float64(h) / RefHeight
		for _, s := range page.Shapes {
			paintShape(overlay, s, w, h, scale)
		}
		*dst = *imaging.Overlay(dst, overlay, image.Pt(0, 0), 1.0)
	}

	for _, box := range page.Images {
		if err := paintImage(dst, box, w, h); err != nil {
			return nil, err
		}
	}

	for _, qr := range page.QRCodes {
		if err := paintQR(dst, qr, w, h); err != nil {
			return nil, err
		}
	}

	for _, t := range page.Texts {
		if err := r.paintText(dst, t, w, h); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

// paintBackgroundGradient fills a fresh buffer with the page's two-stop
// gradient, or a solid color when no direction is set.
func paintBackgroundGradient(bg render.Background, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	start := parseHex(bg.GradientStart, color.NRGBA{R: 26, G: 26, B: 46, A: 255})
	end := parseHex(bg.GradientEnd, start)

	if bg.GradientDir == "" || start == end {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(start), image.Point{}, draw.Src)
		return dst
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var t float64
			switch bg.GradientDir {
			case render.GradientHorizontal:
				t = float64(x) / float64(max(w-1, 1))
			case render.GradientDiagonal:
				t = float64(x+y) / float64(max(w+h-2, 1))
			default:
				t = float64(y) / float64(max(h-1, 1))
			}
			dst.SetNRGBA(x, y, lerpColor(start, end, t))
		}
	}
	return dst
}

func paintBackgroundImage(dst *image.NRGBA, bg render.Background, w, h int) error {
	if bg.Image == nil || len(bg.Image.Data) == 0 {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(bg.Image.Data))
	if err != nil {
		return fmt.Errorf("raster: decode background image: %w", err)
	}
	filled := imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
	*dst = *imaging.Overlay(dst, filled, image.Pt(0, 0), clamp01(bg.ImageOpacity))
	return nil
}

func paintShape(dst *image.NRGBA, s render.Shape, w, h int, scale float64) {
	cx := s.X / 100 * float64(w)
	cy := s.Y / 100 * float64(h)
	sw := s.W / 100 * float64(w)
	sh := s.H / 100 * float64(h)

	alpha := uint8(math.Round(clamp01(s.Opacity) * 255))
	if alpha == 0 {
		return
	}

	if s.Fill != "" {
		c := parseHex(s.Fill, color.NRGBA{A: 255})
		c.A = alpha
		switch s.Kind {
		case render.ShapeCircle:
			fillEllipse(dst, cx, cy, sw/2, sh/2, c)
		case render.ShapeTriangle:
			fillTriangle(dst, cx, cy, sw, sh, c)
		default: // rectangle and line
			fillRect(dst, cx-sw/2, cy-sh/2, sw, sh, c)
		}
	}

	if s.Stroke != "" && s.StrokeWidth > 0 {
		c := parseHex(s.Stroke, color.NRGBA{A: 255})
		c.A = alpha
		strokeRect(dst, cx-sw/2, cy-sh/2, sw, sh, s.StrokeWidth*scale, c)
	}
}

func fillRect(dst *image.NRGBA, x, y, w, h float64, c color.NRGBA) {
	rect := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	).Intersect(dst.Bounds())
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func strokeRect(dst *image.NRGBA, x, y, w, h, width float64, c color.NRGBA) {
	if width < 1 {
		width = 1
	}
	fillRect(dst, x, y, w, width, c)          // top
	fillRect(dst, x, y+h-width, w, width, c)  // bottom
	fillRect(dst, x, y, width, h, c)          // left
	fillRect(dst, x+w-width, y, width, h, c)  // right
}

func fillEllipse(dst *image.NRGBA, cx, cy, rx, ry float64, c color.NRGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	y0 := int(math.Floor(cy - ry))
	y1 := int(math.Ceil(cy + ry))
	for y := y0; y <= y1; y++ {
		dy := (float64(y) - cy) / ry
		if dy < -1 || dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		x0 := int(math.Round(cx - half))
		x1 := int(math.Round(cx + half))
		fillSpan(dst, x0, x1, y, c)
	}
}

// fillTriangle paints an isosceles triangle with its apex up, centred
// on (cx, cy).
func fillTriangle(dst *image.NRGBA, cx, cy, w, h float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	top := cy - h/2
	bottom := cy + h/2
	y0 := int(math.Floor(top))
	y1 := int(math.Ceil(bottom))
	for y := y0; y <= y1; y++ {
		t := (float64(y) - top) / h
		if t < 0 || t > 1 {
			continue
		}
		half := w / 2 * t
		fillSpan(dst, int(math.Round(cx-half)), int(math.Round(cx+half)), y, c)
	}
}

func fillSpan(dst *image.NRGBA, x0, x1, y int, c color.NRGBA) {
	b := dst.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if x1 > b.Max.X-1 {
		x1 = b.Max.X - 1
	}
	for x := x0; x <= x1; x++ {
		dst.SetNRGBA(x, y, c)
	}
}

func paintImage(dst *image.NRGBA, box render.ImageBox, w, h int) error {
	if box.Ref == nil || len(box.Ref.Data) == 0 {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(box.Ref.Data))
	if err != nil {
		return fmt.Errorf("raster: decode placed image: %w", err)
	}

	bw := int(math.Round(box.W / 100 * float64(w)))
	bh := int(math.Round(box.H / 100 * float64(h)))
	if bw < 1 || bh < 1 {
		return nil
	}

	var fitted image.Image
	if box.Fit == render.FitCover {
		fitted = imaging.Fill(img, bw, bh, imaging.Center, imaging.Lanczos)
	} else {
		fitted = imaging.Fit(img, bw, bh, imaging.Lanczos)
	}

	fb := fitted.Bounds()
	x := int(math.Round(box.X/100*float64(w))) - fb.Dx()/2
	y := int(math.Round(box.Y/100*float64(h))) - fb.Dy()/2
	*dst = *imaging.Overlay(dst, fitted, image.Pt(x, y), clamp01(box.Opacity))
	return nil
}

func paintQR(dst *image.NRGBA, box render.QRBox, w, h int) error {
	if box.Content == "" {
		return nil
	}
	q, err := qrcode.New(box.Content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("raster: build qr code: %w", err)
	}
	q.ForegroundColor = parseHex(box.Dark, color.NRGBA{A: 255})
	q.BackgroundColor = parseHex(box.Light, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	side := int(math.Round(box.Size / 100 * float64(w)))
	if side < 21 {
		side = 21
	}
	img := q.Image(side)

	x := int(math.Round(box.X/100*float64(w))) - side/2
	y := int(math.Round(box.Y/100*float64(h))) - side/2
	*dst = *imaging.Overlay(dst, img, image.Pt(x, y), 1.0)
	return nil
}

func (r *Rasterizer) paintText(dst *image.NRGBA, t render.Text, w, h int) error {
	if t.Content == "" {
		return nil
	}
	scale := float64(h) / RefHeight
	sizePx := t.Size * scale
	face, err := r.face(t.Font, sizePx)
	if err != nil {
		return err
	}

	lines := splitLines(t.Content)
	lineHeight := sizePx * lineSpacing
	blockHeight := lineHeight * float64(len(lines))

	anchorX := t.X / 100 * float64(w)
	top := t.Y/100*float64(h) - blockHeight/2

	src := image.NewUniform(parseHex(t.Color, color.NRGBA{R: 255, G: 255, B: 255, A: 255}))
	d := &font.Drawer{Dst: dst, Src: src, Face: face}

	for i, line := range lines {
		width := float64(d.MeasureString(line)) / 64
		var x float64
		switch t.Align {
		case render.AlignLeft:
			x = anchorX
		case render.AlignRight:
			x = anchorX - width
		default:
			x = anchorX - width/2
		}
		// Baseline sits roughly 80% into the line box.
		y := top + lineHeight*(float64(i)+0.8)
		d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
		d.DrawString(line)
	}
	return nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, strings.TrimSuffix(s[start:i], "\r"))
			start = i + 1
		}
	}
	return append(lines, strings.TrimSuffix(s[start:], "\r"))
}

// parseHex decodes #rgb and #rrggbb colors, returning fallback on any
// malformed input.
func parseHex(s string, fallback color.NRGBA) color.NRGBA {
	if len(s) == 0 || s[0] != '#' {
		return fallback
	}
	hexVal := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}

	switch len(s) {
	case 4: // #rgb
		var c [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := hexVal(s[i+1])
			if !ok {
				return fallback
			}
			c[i] = v*16 + v
		}
		return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}
	case 7: // #rrggbb
		var c [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexVal(s[2*i+1])
			lo, ok2 := hexVal(s[2*i+2])
			if !ok1 || !ok2 {
				return fallback
			}
			c[i] = hi*16 + lo
		}
		return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}
	}
	return fallback
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
