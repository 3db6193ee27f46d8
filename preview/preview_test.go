package preview

import (
	"image/color"
	"testing"
	"time"

	"github.com/thelonius/flythrough/camera"
	"github.com/thelonius/flythrough/geo"
	"github.com/thelonius/flythrough/track"
)

func walkNorth(n int) []track.Point {
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	pts := make([]track.Point, n)
	for i := range pts {
		pts[i] = track.Point{
			Position: geo.Position{Lat: 47.0 + float64(i)*0.0001, Lon: 8.0, Ele: 400},
			Time:     base.Add(time.Duration(i) * time.Second),
		}
	}
	return pts
}

func TestRenderDimensions(t *testing.T) {
	img, err := Render(walkNorth(10), nil, Options{Width: 320, Height: 240})
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("bounds = %v, want 320x240", b)
	}
}

func TestRenderDrawsTrack(t *testing.T) {
	img, err := Render(walkNorth(10), nil, Options{Width: 200, Height: 200, Caption: "follow plan"})
	if err != nil {
		t.Fatal(err)
	}
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			br, bg, bbb, _ := color.RGBA{24, 26, 32, 255}.RGBA()
			if r != br || g != bg || bb != bbb {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("canvas is entirely background, nothing was drawn")
	}
}

func TestRenderWithKeyframes(t *testing.T) {
	pts := walkNorth(20)
	strat, err := camera.ForName(camera.NameFollow)
	if err != nil {
		t.Fatal(err)
	}
	frames, err := strat.Plan(pts, nil, camera.DefaultSettings(camera.NameFollow))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Render(pts, frames, Options{}); err != nil {
		t.Fatal(err)
	}
}

func TestRenderTooFewPoints(t *testing.T) {
	if _, err := Render(walkNorth(1), nil, Options{}); err == nil {
		t.Fatal("expected error for a single point")
	}
}
