// Package preview renders a 2D plan diagram of a planned flythrough: the
// track polyline, the camera ground path and start/end markers on a blank
// canvas. It is an operator aid for checking a plan before handing it to the
// renderer, not a globe rendering.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/thelonius/flythrough/camera"
	"github.com/thelonius/flythrough/geo"
	"github.com/thelonius/flythrough/track"
)

// Options controls the preview canvas. Zero values take defaults.
type Options struct {
	Width   int
	Height  int
	Caption string
}

const (
	defaultSize = 1024
	margin      = 60.0
)

var (
	backgroundColor = color.RGBA{24, 26, 32, 255}
	trackColor      = color.RGBA{255, 64, 64, 255}
	cameraColor     = color.RGBA{100, 180, 255, 255}
	markerColor     = color.White
	captionColor    = color.RGBA{220, 220, 220, 255}
)

// Render draws the plan diagram. It needs at least two track points; the
// keyframe list may be empty (track-only preview).
func Render(points []track.Point, frames []camera.Keyframe, opts Options) (image.Image, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("preview needs at least 2 points, got %d", len(points))
	}
	if opts.Width <= 0 {
		opts.Width = defaultSize
	}
	if opts.Height <= 0 {
		opts.Height = defaultSize
	}

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}

	proj := newProjection(points, frames, opts)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(backgroundColor)
	dc.Clear()

	// track polyline
	dc.SetColor(trackColor)
	dc.SetLineWidth(3)
	for i := 1; i < len(points); i++ {
		x1, y1 := proj.at(points[i-1].Position)
		x2, y2 := proj.at(points[i].Position)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	// camera ground path
	if len(frames) > 1 {
		dc.SetColor(cameraColor)
		dc.SetLineWidth(1.5)
		for i := 1; i < len(frames); i++ {
			x1, y1 := proj.at(frames[i-1].Position.Position())
			x2, y2 := proj.at(frames[i].Position.Position())
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		}
	}
	for _, f := range frames {
		x, y := proj.at(f.Position.Position())
		dc.SetColor(cameraColor)
		dc.DrawPoint(x, y, 2)
		dc.Fill()
	}

	// start and end markers
	sx, sy := proj.at(points[0].Position)
	ex, ey := proj.at(points[len(points)-1].Position)
	dc.SetColor(markerColor)
	dc.DrawPoint(sx, sy, 6)
	dc.Fill()
	dc.SetLineWidth(2)
	dc.DrawPoint(ex, ey, 6)
	dc.Stroke()

	if opts.Caption != "" {
		face := truetype.NewFace(font, &truetype.Options{Size: 22})
		dc.SetFontFace(face)
		dc.SetColor(captionColor)
		dc.DrawString(opts.Caption, margin/2, float64(opts.Height)-margin/2)
	}

	return dc.Image(), nil
}

// projection maps geodetic positions to canvas pixels through a local
// equirectangular plane, preserving aspect ratio. The Y axis flips so north
// is up on the canvas.
type projection struct {
	cosLat     float64
	minX, maxY float64
	scale      float64
	offX, offY float64
}

func newProjection(points []track.Point, frames []camera.Keyframe, opts Options) projection {
	meanLat := 0.0
	for _, p := range points {
		meanLat += p.Lat
	}
	meanLat /= float64(len(points))
	cosLat := math.Cos(meanLat * math.Pi / 180)

	planar := func(p geo.Position) (float64, float64) {
		return p.Lon * cosLat, p.Lat
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	expand := func(x, y float64) {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	for _, p := range points {
		x, y := planar(p.Position)
		expand(x, y)
	}
	for _, f := range frames {
		x, y := planar(f.Position.Position())
		expand(x, y)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1e-9
	}
	if spanY == 0 {
		spanY = 1e-9
	}

	usableW := float64(opts.Width) - 2*margin
	usableH := float64(opts.Height) - 2*margin
	scale := math.Min(usableW/spanX, usableH/spanY)

	return projection{
		cosLat: cosLat,
		minX:   minX,
		maxY:   maxY,
		scale:  scale,
		offX:   margin + (usableW-spanX*scale)/2,
		offY:   margin + (usableH-spanY*scale)/2,
	}
}

func (pr projection) at(p geo.Position) (float64, float64) {
	x := p.Lon * pr.cosLat
	y := p.Lat
	return pr.offX + (x-pr.minX)*pr.scale, pr.offY + (pr.maxY-y)*pr.scale
}
