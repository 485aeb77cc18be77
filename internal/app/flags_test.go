package app

import (
	"flag"
	"testing"

	"life3d/pkg/sims/life3d"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "5", "-d", "7", "-rate", "0.2", "-seed", "9", "-tps", "12"}); err != nil {
		t.Fatal(err)
	}

	want := life3d.Config{Width: 5, Height: 20, Depth: 7, Rate: 0.2, Seed: 9}
	if got := cfg.Life(); got != want {
		t.Fatalf("Life() = %+v, want %+v", got, want)
	}
	if cfg.TPS != 12 || cfg.Scale != 24 {
		t.Fatalf("unexpected viewer settings tps=%d scale=%d", cfg.TPS, cfg.Scale)
	}
}

func TestOverridesApplyAfterFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-w", "5", "-set", "w=11", "-set", "rate=0.75", "-set", "seed=bad"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}

	want := life3d.Config{Width: 11, Height: 20, Depth: 20, Rate: 0.75, Seed: 42}
	if got := cfg.Life(); got != want {
		t.Fatalf("Life() = %+v, want %+v", got, want)
	}
	if got := cfg.Overrides.String(); got != "rate=0.75,seed=bad,w=11" {
		t.Fatalf("Overrides.String() = %q", got)
	}
}

func TestOverridesRejectMalformed(t *testing.T) {
	o := Overrides{}
	for _, bad := range []string{"w", "=5", ""} {
		if err := o.Set(bad); err == nil {
			t.Fatalf("Set(%q) should fail", bad)
		}
	}
}

func TestBindLifeSharesDefaults(t *testing.T) {
	lc := life3d.DefaultConfig()
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	BindLife(fs, &lc)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if lc != life3d.DefaultConfig() {
		t.Fatalf("BindLife changed defaults: %+v", lc)
	}
	for _, name := range []string{"w", "h", "d", "rate", "seed"} {
		if fs.Lookup(name) == nil {
			t.Fatalf("flag -%s not registered", name)
		}
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := NewConfig().Life().Validate(); err != nil {
		t.Fatal(err)
	}
}
