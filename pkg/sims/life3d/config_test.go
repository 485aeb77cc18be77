package life3d

import (
	"errors"
	"testing"
)

func TestApplyNil(t *testing.T) {
	if got := DefaultConfig().Apply(nil); got != DefaultConfig() {
		t.Fatalf("Apply(nil) = %+v", got)
	}
}

func TestApplyOverrides(t *testing.T) {
	base := Config{Width: 3, Height: 4, Depth: 5, Rate: 0.1, Seed: 1}
	cases := []struct {
		name string
		in   map[string]string
		want Config
	}{
		{
			name: "all keys",
			in:   map[string]string{"w": "8", "h": "9", "d": "10", "rate": "0.25", "seed": "-7"},
			want: Config{Width: 8, Height: 9, Depth: 10, Rate: 0.25, Seed: -7},
		},
		{
			name: "partial keeps the rest",
			in:   map[string]string{"d": "12"},
			want: Config{Width: 3, Height: 4, Depth: 12, Rate: 0.1, Seed: 1},
		},
		{
			name: "invalid values keep current",
			in:   map[string]string{"w": "0", "h": "x", "d": "-2", "rate": "1.5", "seed": "nope"},
			want: base,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Apply(tc.in); got != tc.want {
				t.Fatalf("Apply = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cfg.Depth = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("Validate() = %v, want ErrInvalidDimension", err)
	}
	cfg = DefaultConfig()
	cfg.Width, cfg.Height, cfg.Depth = 1<<22, 1<<22, 1<<22
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("Validate() on an overflowing volume = %v, want ErrInvalidDimension", err)
	}
	cfg = DefaultConfig()
	cfg.Rate = -1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("Validate() = %v, want ErrInvalidRate", err)
	}
}

func TestParametersSnapshot(t *testing.T) {
	snap := Config{Width: 4, Height: 5, Depth: 6, Rate: 0.125, Seed: 3}.Parameters()
	got := map[string]string{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			got[p.Key] = p.Value
		}
	}
	want := map[string]string{"w": "4", "h": "5", "d": "6", "rate": "0.125", "seed": "3"}
	for key, val := range want {
		if got[key] != val {
			t.Fatalf("parameter %q = %q, want %q", key, got[key], val)
		}
	}
}
