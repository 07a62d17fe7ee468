package raster

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"obj-nmdl/internal/obj"
	"obj-nmdl/internal/polygon"
)

func TestRenderPolygonsEmpty(t *testing.T) {
	img := RenderPolygons(nil, 32, 1)
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Fatalf("Expected 32x32, got %v", img.Bounds())
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatalf("Expected transparent image, pixel %d has alpha %d", i/4, img.Pix[i])
		}
	}
}

func TestRenderPolygonsQuad(t *testing.T) {
	p := polygon.Polygons{
		polygon.Quad: {
			Positions: []obj.Vector3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}},
		},
	}

	img := RenderPolygons(p, 64, 2)
	if img.Bounds().Dx() != 128 {
		t.Fatalf("Expected 128 px render, got %d", img.Bounds().Dx())
	}

	// The image center lies inside the quad.
	c := img.PixOffset(64, 64)
	if img.Pix[c+3] != 255 {
		t.Errorf("Expected opaque center pixel, alpha %d", img.Pix[c+3])
	}
	// Corners stay outside the margin.
	if img.Pix[3] != 0 {
		t.Errorf("Expected transparent corner, alpha %d", img.Pix[3])
	}
}

func TestRasterizeTriangleDepth(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	lc := DefaultLightConfig()

	far := [3]mgl64.Vec3{{0, 0, -1}, {16, 0, -1}, {0, 16, -1}}
	near := [3]mgl64.Vec3{{0, 0, 1}, {16, 0, 1}, {0, 16, 1}}

	RasterizeTriangle(fb, near[0], near[1], near[2], [3]uint8{255, 0, 0}, &lc)
	covered := fb.Covered()
	if covered == 0 {
		t.Fatal("Expected pixels to be covered")
	}
	red := fb.Color[0]

	RasterizeTriangle(fb, far[0], far[1], far[2], [3]uint8{0, 0, 255}, &lc)
	if fb.Color[0] != red || fb.Color[2] != 0 {
		t.Errorf("Far triangle overwrote near one: %v", fb.Color[:4])
	}
	if fb.Covered() != covered {
		t.Errorf("Coverage changed from %d to %d", covered, fb.Covered())
	}
}

func TestRasterizeTriangleDegenerate(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	lc := DefaultLightConfig()
	RasterizeTriangle(fb, mgl64.Vec3{1, 1, 0}, mgl64.Vec3{4, 4, 0}, mgl64.Vec3{7, 7, 0}, DefaultColor, &lc)
	if fb.Covered() != 0 {
		t.Errorf("Expected no coverage, got %d", fb.Covered())
	}
}

func TestViewMatrixPreservesLength(t *testing.T) {
	v := mgl32.Vec3{1, 2, 3}
	got := mgl32.TransformCoordinate(v, ViewMatrix())
	if math.Abs(float64(got.Len()-v.Len())) > 1e-5 {
		t.Errorf("Expected length %v, got %v", v.Len(), got.Len())
	}
}
