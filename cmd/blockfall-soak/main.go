package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plus3/blockfall/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	games := flag.Int("games", 0, "Stop after this many finished games. Zero runs for the full duration.")
	seed := flag.Uint64("seed", 1, "Seed for both piece selection and the bot.")
	gravity := flag.Duration("gravity", 5*time.Millisecond, "Interval between gravity ticks.")
	flag.Parse()

	log.Println("Starting blockfall soak...")

	checker := &Checker{}
	engine := tetris.NewEngine(
		tetris.WithRand(tetris.NewRand(*seed)),
		tetris.WithGravityPeriod(*gravity),
		tetris.WithListener(checker.Observe),
	)
	bot := NewBot(tetris.NewRand(*seed + 1))

	report := &Report{
		Duration: *duration,
		Games:    *games,
		Seed:     *seed,
		Gravity:  *gravity,
		DispatchTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	log.Printf("Running bot for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	snap := engine.Dispatch(tetris.StartOrRestart)

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if *games > 0 && snap.Lifecycle == tetris.GameOver && engine.Stats().GamesOver >= int64(*games) {
				break Loop
			}

			action := bot.Next(snap)
			dispatchStart := time.Now()
			snap = engine.Dispatch(action)
			report.DispatchTime.Samples = append(report.DispatchTime.Samples, time.Since(dispatchStart))
		}
	}

	engine.Close()
	report.TotalTime = time.Since(startTime)
	report.DispatchTime.Finalize()
	report.Engine = engine.Stats()
	report.GravityStats = engine.Gravity().Stats()
	report.Violations = checker.Violations()

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(report.Violations) > 0 {
		log.Fatalf("%d invariant violations", len(report.Violations))
	}
	log.Println("Soak complete.")
}
