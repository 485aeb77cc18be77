//go:build ebiten

package app

import (
	"image/color"
	"log"
	"math"
	"time"

	"life3d/internal/render"
	"life3d/internal/ui"
	"life3d/pkg/core"
	"life3d/pkg/sims/life3d"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth  = 200
	yawStep   = math.Pi / 36
	viewPitch = -math.Pi / 8
)

// Game adapts a life3d volume to the ebiten.Game interface.
type Game struct {
	life    *life3d.Life
	cfg     life3d.Config
	slicer  *render.SlicePainter
	proj    render.Projector
	radius  float32
	hud     *ui.HUD
	stepper *core.FixedStep

	onColor  color.RGBA
	offColor color.RGBA

	scale   int
	slice   int
	volume  bool
	playing bool
}

// New constructs a Game for the provided volume.
func New(life *life3d.Life, cfg life3d.Config, scale, tps int) *Game {
	s := life.Size()
	return &Game{
		life:     life,
		cfg:      cfg,
		slicer:   render.NewSlicePainter(s),
		proj:     render.Projector{Pitch: viewPitch, Scale: float32(scale) / 2},
		radius:   render.Radius(s),
		hud:      ui.NewHUD(hudWidth),
		stepper:  core.NewFixedStep(tps),
		onColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		offColor: color.RGBA{A: 255},
		scale:    scale,
		slice:    s.D / 2,
		volume:   true,
	}
}

// Restart clears the volume and repopulates it with a fresh seed.
func (g *Game) Restart() {
	g.cfg.Seed = time.Now().UnixNano()
	g.life.Reset()
	if err := g.life.Populate(core.NewRNG(g.cfg.Seed).Source(), g.cfg.Rate); err != nil {
		log.Printf("repopulate: %v", err)
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.life.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playing = !g.playing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.volume = !g.volume
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.slice = min(g.slice+1, g.life.Size().D-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.slice = max(g.slice-1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.proj.Yaw -= yawStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.proj.Yaw += yawStep
	}

	if g.playing && g.stepper.ShouldStep() {
		g.life.Step()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	viewW, viewH := g.viewSize()
	if g.volume {
		pts := g.proj.Project(g.life.Size(), g.life.Cells())
		side := max(float32(g.scale)/2-1, 1)
		render.DrawVolume(screen, pts, float32(viewW)/2, float32(viewH)/2, side, g.radius, g.onColor)
	} else {
		g.slicer.Blit(screen, g.life.Cells(), g.slice, g.onColor, g.offColor, g.scale)
	}

	s := g.life.Size()
	g.hud.Draw(screen, viewW, ui.Lines(g.life.Name(), g.cfg.Parameters(), ui.Status{
		Generation: g.life.Generation(),
		Population: g.life.Population(),
		Total:      s.Cells(),
		Slice:      g.slice,
		Volume:     g.volume,
		Playing:    g.playing,
	}))
}

func (g *Game) viewSize() (int, int) {
	s := g.life.Size()
	return max(s.W, s.D) * g.scale, max(s.H, s.D) * g.scale
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.viewSize()
	return w + g.hud.Width(), h
}
