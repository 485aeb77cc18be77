package ui

import (
	"strings"
	"testing"

	"life3d/pkg/sims/life3d"
)

func TestLines(t *testing.T) {
	snap := life3d.DefaultConfig().Parameters()
	got := Lines("life3d", snap, Status{Generation: 4, Population: 25, Total: 100, Slice: 3})

	if got[0] != "life3d" {
		t.Fatalf("title line = %q", got[0])
	}
	joined := strings.Join(got, "\n")
	for _, want := range []string{"Volume", "Seeding", "gen 4 (paused)", "alive 25 (25.0%)", "view slice z=3"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("HUD text missing %q:\n%s", want, joined)
		}
	}

	got = Lines("life3d", snap, Status{Volume: true, Playing: true})
	joined = strings.Join(got, "\n")
	if !strings.Contains(joined, "view volume") || !strings.Contains(joined, "(playing)") {
		t.Fatalf("unexpected HUD text:\n%s", joined)
	}
}
