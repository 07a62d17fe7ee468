// Package raster renders resolved polygon soups into preview images.
package raster

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"obj-nmdl/internal/obj"
	"obj-nmdl/internal/polygon"
)

// Default preview camera: 35 degrees around Y, then 25 degrees down.
const (
	viewYaw   = 35.0
	viewPitch = 25.0
)

// DefaultColor is the base color of unshaded geometry.
var DefaultColor = [3]uint8{160, 160, 170}

// ViewMatrix returns the fixed three-quarter view rotation used for previews.
func ViewMatrix() mgl32.Mat4 {
	yaw := mgl32.HomogRotate3DY(mgl32.DegToRad(viewYaw))
	pitch := mgl32.HomogRotate3DX(mgl32.DegToRad(viewPitch))
	return pitch.Mul4(yaw)
}

// RenderPolygons rasterizes every triangle and quad of p into a
// size*supersample square image with a transparent background. The mesh is
// centered and scaled to fit with a margin. Quads are split 0-1-2 / 0-2-3.
func RenderPolygons(p polygon.Polygons, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	fb := NewFrameBuffer(renderSize, renderSize)

	view := ViewMatrix()
	projected := make(map[polygon.Arity][]mgl64.Vec3, len(p))

	// Bounding box of all transformed positions
	allMin := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	allMax := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, a := range polygon.Arities {
		pos := p[a].Positions
		out := make([]mgl64.Vec3, len(pos))
		for i, v := range pos {
			out[i] = toVec64(mgl32.TransformCoordinate(v, view))
			for k := 0; k < 3; k++ {
				allMin[k] = math.Min(allMin[k], out[i][k])
				allMax[k] = math.Max(allMax[k], out[i][k])
			}
		}
		projected[a] = out
	}
	if math.IsInf(allMin[0], 1) {
		return fb.Image()
	}

	center := allMin.Add(allMax).Mul(0.5)
	span := math.Max(allMax[0]-allMin[0], allMax[1]-allMin[1])
	if span < 0.001 {
		span = 0.001
	}

	margin := float64(16 * supersample)
	scale := (float64(renderSize) - 2*margin) / span
	half := float64(renderSize) / 2

	toScreen := func(v mgl64.Vec3) mgl64.Vec3 {
		return mgl64.Vec3{
			half + (v[0]-center[0])*scale,
			half - (v[1]-center[1])*scale,
			(v[2] - center[2]) * scale,
		}
	}

	lc := DefaultLightConfig()
	for _, a := range polygon.Arities {
		pts := projected[a]
		n := a.Corners()
		for f := 0; f+n <= len(pts); f += n {
			c0 := toScreen(pts[f])
			c1 := toScreen(pts[f+1])
			c2 := toScreen(pts[f+2])
			RasterizeTriangle(fb, c0, c1, c2, DefaultColor, &lc)

			if a == polygon.Quad {
				c3 := toScreen(pts[f+3])
				RasterizeTriangle(fb, c0, c2, c3, DefaultColor, &lc)
			}
		}
	}

	return fb.Image()
}

func toVec64(v obj.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
