package render

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"life3d/pkg/core"
)

// Point is a live cell projected onto the screen plane. Depth grows towards
// the viewer.
type Point struct {
	X, Y  float32
	Depth float32
	Index int
}

// Projector maps cell centres to an orthographic view rotated about the
// centre of the volume.
type Projector struct {
	Yaw   float32
	Pitch float32
	Scale float32
}

func (p Projector) rotation() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(p.Pitch).Mul4(mgl32.HomogRotate3DY(p.Yaw))
}

// Project returns every live cell's screen position relative to the view
// centre, ordered back to front. Screen Y grows downwards.
func (p Projector) Project(s core.Size, cells []uint8) []Point {
	if len(cells) < s.Cells() {
		return nil
	}
	rot := p.rotation()
	cx := float32(s.W-1) / 2
	cy := float32(s.H-1) / 2
	cz := float32(s.D-1) / 2

	var pts []Point
	for z := 0; z < s.D; z++ {
		for y := 0; y < s.H; y++ {
			for x := 0; x < s.W; x++ {
				idx := (z*s.H+y)*s.W + x
				if cells[idx] == 0 {
					continue
				}
				v := rot.Mul4x1(mgl32.Vec4{float32(x) - cx, float32(y) - cy, float32(z) - cz, 1})
				pts = append(pts, Point{
					X:     v.X() * p.Scale,
					Y:     -v.Y() * p.Scale,
					Depth: v.Z(),
					Index: idx,
				})
			}
		}
	}
	slices.SortStableFunc(pts, func(a, b Point) int { return cmp.Compare(a.Depth, b.Depth) })
	return pts
}

// Radius reports the largest distance a projected cell can sit from the view
// centre, before scaling.
func Radius(s core.Size) float32 {
	v := mgl32.Vec3{float32(s.W-1) / 2, float32(s.H-1) / 2, float32(s.D-1) / 2}
	return v.Len()
}
