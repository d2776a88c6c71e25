package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"seaplane/internal/core"
	"seaplane/internal/sims/flight"
)

func main() {
	first := flag.Uint("first", 1, "first seed")
	count := flag.Int("count", 1000, "number of consecutive seeds")
	tps := flag.Int("tps", 60, "synthetic ticks per second")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	dump := flag.String("dump", "", "write the best landed run's final snapshot (msgpack) here")
	verbose := flag.Bool("v", false, "print every run")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	factory, ok := core.Sims()["seaplane"]
	if !ok {
		log.Fatalf("seaplane sim not registered")
	}
	cfg := overrides.Map()

	fmt.Printf("Flying %d seeds from %d (%d workers, %d tps)\n", *count, *first, *workers, *tps)

	jobs := make(chan uint32)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res, _, err := runSeed(factory, cfg, seed, *tps)
				if err != nil {
					log.Printf("sweep: %v", err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *count; i++ {
			jobs <- uint32(*first) + uint32(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []seedResult
	var sum summary
	for res := range results {
		all = append(all, res)
		sum.add(res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	elapsed := time.Since(start)

	if *verbose {
		for _, r := range all {
			status := "landed"
			if !r.outcome.Landed {
				status = "crashed:" + r.outcome.Reason.String()
			}
			fmt.Printf("%10d %-16s %-12s score=%.3f bonuses=%d/%d ticks=%d\n",
				r.seed, status, r.rolled, r.outcome.Score, r.taken, r.bonuses, r.ticks)
		}
	}

	fmt.Printf("\n%d runs in %s (%s simulated)\n", sum.runs, elapsed.Round(time.Millisecond), sum.simulated.Round(time.Second))
	fmt.Printf("landed %d  engine failures %d  overshoots %d\n", sum.landed, sum.engine, sum.overshoot)
	fmt.Printf("mean landed score %.3f\n", sum.meanScore())
	if !sum.hasBest {
		return
	}
	fmt.Printf("best: seed %d score %.3f\n", sum.best.seed, sum.best.outcome.Score)

	if *dump == "" {
		return
	}
	res, g, err := runSeed(factory, cfg, sum.best.seed, *tps)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
	if res.outcome != sum.best.outcome {
		log.Printf("replay of seed %d diverged: %+v vs %+v", res.seed, res.outcome, sum.best.outcome)
	}
	data, err := flight.MarshalSnapshot(g.Snapshot())
	if err != nil {
		log.Fatalf("dump: %v", err)
	}
	if err := os.WriteFile(*dump, data, 0o644); err != nil {
		log.Fatalf("dump: %v", err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", *dump, len(data))
}
