package ui

import (
	"fmt"

	"life3d/pkg/core"
)

// Status is the per-frame state shown under the parameter list.
type Status struct {
	Generation int
	Population int
	Total      int
	Slice      int
	Volume     bool
	Playing    bool
}

// Lines formats the HUD text: a title, the parameter groups and the status.
func Lines(title string, snap core.ParameterSnapshot, st Status) []string {
	lines := []string{title}
	for _, g := range snap.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-9s %s", p.Label, p.Value))
		}
	}

	view := fmt.Sprintf("slice z=%d", st.Slice)
	if st.Volume {
		view = "volume"
	}
	mode := "paused"
	if st.Playing {
		mode = "playing"
	}
	density := 0.0
	if st.Total > 0 {
		density = float64(st.Population) / float64(st.Total)
	}
	lines = append(lines,
		"",
		fmt.Sprintf("gen %d (%s)", st.Generation, mode),
		fmt.Sprintf("alive %d (%.1f%%)", st.Population, 100*density),
		"view "+view,
	)
	return lines
}
