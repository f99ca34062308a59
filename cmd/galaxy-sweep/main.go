package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"galaxy/internal/app"
	"galaxy/internal/core"
	"galaxy/internal/galaxy"
)

type sweepResult struct {
	power   float64
	summary galaxy.Summary
	elapsed time.Duration
}

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "parallel generations")
	seed := flag.Int64("seed", galaxy.DefaultConfig().Seed, "seed shared by every run")
	powersFlag := flag.String("powers", "1,2,3,4,5,6,8,10", "comma-separated randomness powers to sweep")
	overrides := app.Overrides{}
	flag.Var(overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	powers, err := parsePowers(*powersFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *workers < 1 {
		*workers = 1
	}

	cfg := galaxy.FromMap(overrides)
	if _, ok := overrides["seed"]; !ok {
		cfg.Seed = *seed
	}

	baseline := galaxy.Summarize(galaxy.BuildAttributes(cfg.Params, core.NewRNG(cfg.Seed)), cfg.Params)
	fmt.Printf("Baseline: %d particles, %d branches, radius %.2f, randomness %.3f, power %.3f, seed %d\n",
		baseline.Count, cfg.Params.Branches, cfg.Params.Radius, cfg.Params.Randomness, cfg.Params.RandomnessPower, cfg.Seed)
	printSummary(baseline)

	fmt.Printf("\nSweeping %d randomness powers (%d workers)\n", len(powers), *workers)

	jobs := make(chan float64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for power := range jobs {
				results <- runPower(cfg, power)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, power := range powers {
			jobs <- power
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].power < all[j].power })

	fmt.Printf("\n%8s %12s %12s %12s %10s %10s\n", "power", "|jx|", "|jy|", "|jz|", "max", "time")
	for _, res := range all {
		j := res.summary.MeanJitter
		fmt.Printf("%8.3f %12.5f %12.5f %12.5f %10.4f %10s\n",
			res.power, j[0], j[1], j[2], res.summary.MaxJitter, res.elapsed.Round(time.Microsecond))
	}
	fmt.Printf("\nDone in %s\n", time.Since(start).Round(time.Millisecond))
}

func runPower(cfg galaxy.Config, power float64) sweepResult {
	params := cfg.Params
	params.RandomnessPower = power
	start := time.Now()
	attrs := galaxy.BuildAttributes(params, core.NewRNG(cfg.Seed))
	return sweepResult{power: power, summary: galaxy.Summarize(attrs, params), elapsed: time.Since(start)}
}

func parsePowers(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parse power %q: %w", part, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("power %v must be positive", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no powers in %q", s)
	}
	return out, nil
}

func printSummary(s galaxy.Summary) {
	fmt.Printf("  mean radius %.4f (max %.4f)\n", s.MeanRadius, s.MaxRadius)
	fmt.Printf("  mean |jitter| x=%.5f y=%.5f z=%.5f (max %.4f)\n", s.MeanJitter[0], s.MeanJitter[1], s.MeanJitter[2], s.MaxJitter)
	fmt.Printf("  mean scale %.4f\n", s.MeanScale)
	for i, n := range s.BranchCount {
		fmt.Printf("  branch %d: %d particles\n", i, n)
	}
}
