package core

// Size describes the dimensions of a simulation volume.
type Size struct {
	W int
	H int
	D int
}

// Cells returns the number of cells in a volume of this size.
func (s Size) Cells() int { return s.W * s.H * s.D }

// Volume defines the minimal contract a 3D cellular automaton exposes to drivers.
type Volume interface {
	Name() string
	Size() Size
	Step()
	Cells() []uint8
	Population() int
}
