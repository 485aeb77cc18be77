package render

import (
	"image/color"

	"life3d/pkg/core"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// SliceCells returns the cells of layer z from a volume laid out in z, y, x
// order, or nil when z is out of range.
func SliceCells(cells []uint8, s core.Size, z int) []uint8 {
	layer := s.W * s.H
	if z < 0 || z >= s.D || len(cells) < layer*s.D {
		return nil
	}
	return cells[z*layer : (z+1)*layer]
}

// fillSliceRGBA writes layer z of the volume into buf. It reports false when
// the layer does not exist or buf is too small.
func fillSliceRGBA(buf []byte, cells []uint8, s core.Size, z int, on, off color.Color) bool {
	layer := SliceCells(cells, s, z)
	if layer == nil || len(buf) < 4*len(layer) {
		return false
	}
	fillBinaryRGBA(buf, layer, on, off)
	return true
}

// Shade darkens c towards black; t=1 keeps the colour and t=0 is black.
func Shade(c color.RGBA, t float32) color.RGBA {
	t = min(max(t, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * t),
		G: uint8(float32(c.G) * t),
		B: uint8(float32(c.B) * t),
		A: c.A,
	}
}
