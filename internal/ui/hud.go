//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 14
)

// HUD renders the parameter and status panel to the right of the view.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD with the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Draw renders lines into the panel at x offset.
func (h *HUD) Draw(dst *ebiten.Image, x int, lines []string) {
	if h.width == 0 {
		return
	}
	height := dst.Bounds().Dy()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 24, G: 24, B: 30, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for _, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 210, G: 210, B: 220, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), 0)
	dst.DrawImage(h.panel, op)
}
