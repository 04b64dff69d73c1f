// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render turns an AdvertisementSpec into a declarative View — a
// tree of positioned elements in percent-of-page coordinates — using
// static theme and layout rule tables. Rendering is a pure function of
// the spec; painting the View to pixels is the rasterizer's job.
package render

import (
	"adpress/internal/layout"
	"adpress/internal/models"
)

// GradientDir selects the direction of a two-stop background gradient.
type GradientDir string

const (
	GradientVertical   GradientDir = "vertical"
	GradientHorizontal GradientDir = "horizontal"
	GradientDiagonal   GradientDir = "diagonal"
)

// Background describes how a page is filled before elements are drawn.
// When Image is set it is painted cover-fit over the gradient at
// ImageOpacity; when GradientDir is empty, Color fills the page solid.
type Background struct {
	Color         string
	GradientStart string
	GradientEnd   string
	GradientDir   GradientDir
	Image         *models.ImageRef
	ImageOpacity  float64
}

// ShapeKind is the closed set of decorative shapes.
type ShapeKind string

const (
	ShapeRectangle ShapeKind = "rectangle"
	ShapeCircle    ShapeKind = "circle"
	ShapeTriangle  ShapeKind = "triangle"
	ShapeLine      ShapeKind = "line"
)

// Shape is a decorative element. X,Y anchor the shape centre and W,H are
// its extent, all in percent of the page. StrokeWidth is in reference
// pixels (see raster.RefHeight).
type Shape struct {
	Kind        ShapeKind
	X, Y        float64
	W, H        float64
	Fill        string // hex color, empty for no fill
	Stroke      string // hex color, empty for no outline
	StrokeWidth float64
	Opacity     float64
}

// FontFace names one of the bundled Go font faces.
type FontFace string

const (
	FontRegular   FontFace = "regular"
	FontBold      FontFace = "bold"
	FontItalic    FontFace = "italic"
	FontMedium    FontFace = "medium"
	FontSmallCaps FontFace = "smallcaps"
)

// Align is horizontal text alignment relative to the anchor X.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Text is a positioned multi-line text block. X,Y anchor the block
// centre in percent of the page; Size is in points at the reference
// page height, scaled by the rasterizer to the output resolution.
// Empty Content renders nothing but keeps the slot occupied.
type Text struct {
	Content string
	X, Y    float64
	Size    float64
	Font    FontFace
	Color   string
	Align   Align
}

// FitMode controls how a placed image fills its box.
type FitMode string

const (
	FitCover   FitMode = "cover"
	FitContain FitMode = "contain"
)

// ImageBox places an uploaded image. Coordinates follow Shape.
type ImageBox struct {
	Ref     *models.ImageRef
	X, Y    float64
	W, H    float64
	Fit     FitMode
	Opacity float64
}

// QRBox places a QR code encoding Content. Size is the edge length in
// percent of the page width.
type QRBox struct {
	Content string
	X, Y    float64
	Size    float64
	Dark    string
	Light   string
}

// Page is one rendered page. Element slices are painted in struct field
// order: background, shapes, images, QR codes, texts.
type Page struct {
	Index      int
	Role       layout.PageRole
	Background Background
	Shapes     []Shape
	Images     []ImageBox
	QRCodes    []QRBox
	Texts      []Text
}

// View is the renderer's declarative output for a whole advertisement,
// independent of any painting backend.
type View struct {
	Layout   models.LayoutID
	Template models.TemplateID
	Pages    []Page
}
