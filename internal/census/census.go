// Package census tracks how a volume's population evolves across generations.
package census

import (
	"life3d/pkg/core"
)

// Sample is the population of one generation.
type Sample struct {
	Generation int
	Population int
	Density    float64
}

// Record samples the current generation of v.
func Record(v core.Volume, gen int) Sample {
	pop := v.Population()
	total := v.Size().Cells()
	density := 0.0
	if total > 0 {
		density = float64(pop) / float64(total)
	}
	return Sample{Generation: gen, Population: pop, Density: density}
}

// Run samples v, then steps it up to steps times, sampling after each step.
// It stops early once the population reaches zero, since an empty volume
// stays empty. A negative steps samples only the initial generation. observe,
// when non-nil, sees each sample as it is taken.
func Run(v core.Volume, steps int, observe func(Sample)) []Sample {
	steps = max(steps, 0)
	samples := make([]Sample, 0, steps+1)
	take := func(gen int) Sample {
		s := Record(v, gen)
		samples = append(samples, s)
		if observe != nil {
			observe(s)
		}
		return s
	}

	last := take(0)
	for gen := 1; gen <= steps && last.Population > 0; gen++ {
		v.Step()
		last = take(gen)
	}
	return samples
}
