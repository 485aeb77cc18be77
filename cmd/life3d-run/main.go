package main

import (
	"flag"
	"fmt"
	"log"

	"life3d/internal/app"
	"life3d/internal/census"
	"life3d/pkg/core"
	"life3d/pkg/sims/life3d"
)

func main() {
	cfg := life3d.DefaultConfig()
	overrides := app.Overrides{}
	app.BindLife(flag.CommandLine, &cfg)
	app.BindOverrides(flag.CommandLine, overrides)
	steps := flag.Int("steps", 100, "generations to simulate")
	plotPath := flag.String("plot", "", "write a population chart to this file (.png, .svg, .pdf)")
	quiet := flag.Bool("quiet", false, "only print the final generation")
	flag.Parse()

	if *steps < 0 {
		log.Fatalf("steps must not be negative, got %d", *steps)
	}
	cfg = cfg.Apply(overrides)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	life, err := life3d.New(cfg.Width, cfg.Height, cfg.Depth)
	if err != nil {
		log.Fatal(err)
	}
	if err := life.Populate(core.NewRNG(cfg.Seed).Source(), cfg.Rate); err != nil {
		log.Fatal(err)
	}

	printParams(cfg.Parameters())

	samples := census.Run(life, *steps, func(s census.Sample) {
		if !*quiet {
			log.Printf("gen %4d: %6d alive (%.2f%%)", s.Generation, s.Population, 100*s.Density)
		}
	})
	final := samples[len(samples)-1]
	fmt.Printf("Final: generation %d, %d alive (%.2f%%)\n", final.Generation, final.Population, 100*final.Density)
	if final.Population == 0 && final.Generation < *steps {
		fmt.Printf("Volume died out after %d generations.\n", final.Generation)
	}

	if *plotPath != "" {
		title := fmt.Sprintf("life3d %dx%dx%d, rate %.2f, seed %d", cfg.Width, cfg.Height, cfg.Depth, cfg.Rate, cfg.Seed)
		if err := census.WritePlot(samples, title, *plotPath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", *plotPath)
	}
}

func printParams(snap core.ParameterSnapshot) {
	for _, g := range snap.Groups {
		fmt.Printf("%s:", g.Name)
		for _, p := range g.Params {
			fmt.Printf(" %s=%s", p.Key, p.Value)
		}
		fmt.Println()
	}
}
