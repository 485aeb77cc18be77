package life3d

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"life3d/pkg/core"
)

// MaxCells bounds width*height*depth so both buffers stay allocatable.
const MaxCells = math.MaxInt32

// Cell states stored in the grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

var (
	// ErrInvalidDimension is returned when a width, height or depth is not positive.
	ErrInvalidDimension = errors.New("life3d: dimensions must be positive")
	// ErrInvalidRate is returned when a population rate lies outside [0, 1].
	ErrInvalidRate = errors.New("life3d: rate must be within [0, 1]")
)

// Life implements Conway's Game of Life over a bounded 3D volume. Cells past
// the edges count as dead; nothing wraps.
//
// A Life is not safe for concurrent use.
type Life struct {
	w, h, d int
	cur     []uint8
	nxt     []uint8
	gen     int
}

// New returns an all-dead Life volume with the provided dimensions.
func New(w, h, d int) (*Life, error) {
	if err := checkDimensions(w, h, d); err != nil {
		return nil, err
	}
	cells := make([]uint8, w*h*d)
	return &Life{w: w, h: h, d: d, cur: cells, nxt: make([]uint8, len(cells))}, nil
}

// checkDimensions rejects non-positive sizes and volumes above MaxCells. The
// product is checked stepwise so it cannot overflow.
func checkDimensions(w, h, d int) error {
	if w <= 0 || h <= 0 || d <= 0 {
		return fmt.Errorf("%w: got %dx%dx%d", ErrInvalidDimension, w, h, d)
	}
	if w > MaxCells/h || w*h > MaxCells/d {
		return fmt.Errorf("%w: %dx%dx%d exceeds %d cells", ErrInvalidDimension, w, h, d, MaxCells)
	}
	return nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life3d" }

// Size returns the volume dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h, D: l.d} }

// Cells exposes the current generation in z, y, x order. The slice is only
// valid until the next call to Step.
func (l *Life) Cells() []uint8 { return l.cur }

// Generation reports how many steps have run since the last Populate or Reset.
func (l *Life) Generation() int { return l.gen }

// Index returns the linear slice index for coordinates (x, y, z).
func (l *Life) Index(x, y, z int) int { return (z*l.h+y)*l.w + x }

func (l *Life) inBounds(x, y, z int) bool {
	return x >= 0 && x < l.w && y >= 0 && y < l.h && z >= 0 && z < l.d
}

// Alive reports whether the cell at (x, y, z) is alive. Coordinates outside
// the volume are dead.
func (l *Life) Alive(x, y, z int) bool {
	if !l.inBounds(x, y, z) {
		return false
	}
	return l.cur[l.Index(x, y, z)] == Alive
}

// Set overwrites a single cell. Out-of-range coordinates are ignored.
func (l *Life) Set(x, y, z int, alive bool) {
	if !l.inBounds(x, y, z) {
		return
	}
	v := Dead
	if alive {
		v = Alive
	}
	idx := l.Index(x, y, z)
	l.cur[idx] = v
	l.nxt[idx] = v
}

// Population counts the live cells in the current generation.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur {
		n += int(c)
	}
	return n
}

// Clone returns an independent copy of the volume.
func (l *Life) Clone() *Life {
	return &Life{
		w:   l.w,
		h:   l.h,
		d:   l.d,
		cur: append([]uint8(nil), l.cur...),
		nxt: append([]uint8(nil), l.nxt...),
		gen: l.gen,
	}
}

// Populate sets every cell alive with probability rate, independently, drawing
// from rng. A nil rng draws fresh entropy.
func (l *Life) Populate(rng *rand.Rand, rate float64) error {
	if !(rate >= 0 && rate <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, rate)
	}
	if rng == nil {
		rng = core.Entropy()
	}
	core.FillBernoulli(rng, l.cur, rate)
	copy(l.nxt, l.cur)
	l.gen = 0
	return nil
}

// Reset kills every cell.
func (l *Life) Reset() {
	clear(l.cur)
	clear(l.nxt)
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h, d := l.w, l.h, l.d
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := l.Index(x, y, z)
				alive := l.cur[idx] == Alive
				l.nxt[idx] = Dead
				if Rule(alive, l.neighbors(x, y, z)) {
					l.nxt[idx] = Alive
				}
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// neighbors counts live cells in the 3x3x3 block around (x, y, z), clipped to
// the volume. Counting stops at 4 since Rule treats every count above 3 alike.
func (l *Life) neighbors(x, y, z int) int {
	x0, x1 := max(x-1, 0), min(x+1, l.w-1)
	y0, y1 := max(y-1, 0), min(y+1, l.h-1)
	z0, z1 := max(z-1, 0), min(z+1, l.d-1)

	n := 0
	for nz := z0; nz <= z1; nz++ {
		for ny := y0; ny <= y1; ny++ {
			row := (nz*l.h + ny) * l.w
			for nx := x0; nx <= x1; nx++ {
				if nx == x && ny == y && nz == z {
					continue
				}
				n += int(l.cur[row+nx])
				if n > 3 {
					return n
				}
			}
		}
	}
	return n
}

// Rule applies B3/S23: a live cell survives with 2 or 3 live neighbors and a
// dead cell is born with exactly 3.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
