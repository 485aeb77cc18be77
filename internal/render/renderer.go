//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"life3d/pkg/core"
)

// SlicePainter draws a single z-layer of a volume as a scaled image.
type SlicePainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewSlicePainter allocates a painter for layers of the given volume size.
func NewSlicePainter(s core.Size) *SlicePainter {
	sp := &SlicePainter{size: s, buf: make([]byte, 4*s.W*s.H)}
	sp.img = ebiten.NewImage(s.W, s.H)
	return sp
}

// Blit uploads layer z into the painter image and draws it.
func (sp *SlicePainter) Blit(dst *ebiten.Image, cells []uint8, z int, on, off color.Color, scale int) {
	if !fillSliceRGBA(sp.buf, cells, sp.size, z, on, off) {
		return
	}
	sp.img.WritePixels(sp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
}

// DrawVolume draws every projected cell as a square centred on (cx, cy),
// darkening cells further from the viewer.
func DrawVolume(dst *ebiten.Image, pts []Point, cx, cy, side float32, radius float32, on color.RGBA) {
	half := side / 2
	for _, p := range pts {
		t := float32(1)
		if radius > 0 {
			t = 0.35 + 0.65*(p.Depth+radius)/(2*radius)
		}
		vector.DrawFilledRect(dst, cx+p.X-half, cy+p.Y-half, side, side, Shade(on, t), false)
	}
}
