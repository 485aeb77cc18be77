package census

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"life3d/pkg/core"
	"life3d/pkg/sims/life3d"
)

func TestRunStopsWhenExtinct(t *testing.T) {
	l, err := life3d.New(4, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	l.Set(1, 1, 1, true)

	var seen []int
	samples := Run(l, 10, func(s Sample) { seen = append(seen, s.Generation) })

	want := []Sample{
		{Generation: 0, Population: 1, Density: 1.0 / 64},
		{Generation: 1, Population: 0, Density: 0},
	}
	if diff := cmp.Diff(want, samples); diff != "" {
		t.Fatalf("samples mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1}, seen); diff != "" {
		t.Fatalf("observer mismatch (-want +got):\n%s", diff)
	}
}

func TestRunNegativeStepsSamplesOnce(t *testing.T) {
	l, err := life3d.New(4, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		l.Set(p[0], p[1], 1, true)
	}

	samples := Run(l, -5, nil)

	want := []Sample{{Generation: 0, Population: 4, Density: 4.0 / 64}}
	if diff := cmp.Diff(want, samples); diff != "" {
		t.Fatalf("samples mismatch (-want +got):\n%s", diff)
	}
	if l.Generation() != 0 {
		t.Fatalf("negative steps advanced the volume to generation %d", l.Generation())
	}
}

func TestRunStillLifeKeepsPopulation(t *testing.T) {
	l, err := life3d.New(6, 6, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		l.Set(p[0], p[1], 1, true)
	}
	samples := Run(l, 5, nil)
	if len(samples) != 6 {
		t.Fatalf("expected 6 samples, got %d", len(samples))
	}
	for _, s := range samples {
		if s.Population != 4 {
			t.Fatalf("generation %d population %d, want 4", s.Generation, s.Population)
		}
	}
}

func TestRecordDensity(t *testing.T) {
	l, err := life3d.New(5, 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Populate(core.NewRNG(1).Source(), 1); err != nil {
		t.Fatal(err)
	}
	s := Record(l, 7)
	if s.Generation != 7 || s.Population != 125 || s.Density != 1 {
		t.Fatalf("Record = %+v", s)
	}
}

func TestWritePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "population.png")
	samples := []Sample{{Generation: 0, Population: 10}, {Generation: 1, Population: 6}, {Generation: 2, Population: 7}}
	if err := WritePlot(samples, "test", path); err != nil {
		t.Fatalf("WritePlot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("plot file is empty")
	}

	if err := WritePlot(nil, "empty", path); err == nil {
		t.Fatal("expected an error for no samples")
	}
}
