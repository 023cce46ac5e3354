package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"uk.ac.bris.cs/vida/gol"
	"uk.ac.bris.cs/vida/sdl"
	"uk.ac.bris.cs/vida/term"
	"uk.ac.bris.cs/vida/util"
)

// main is the function called when starting Game of Life with 'go run .'
func main() {
	var params gol.Params

	mode := flag.String(
		"mode",
		"parallel",
		"Stepper to advance the world with: serial or parallel.")

	flag.IntVar(
		&params.Threads,
		"t",
		0,
		"Number of workers for the parallel stepper. Defaults to every host thread.")

	flag.IntVar(
		&params.ImageWidth,
		"w",
		512,
		"Specify the width of the world.")

	flag.IntVar(
		&params.ImageHeight,
		"h",
		512,
		"Specify the height of the world.")

	flag.IntVar(
		&params.Turns,
		"turns",
		0,
		"Specify the number of turns to process. Zero runs until 'q' is pressed.")

	flag.Float64Var(
		&params.Density,
		"density",
		0.25,
		"Probability of each cell being alive at turn 0.")

	seed := flag.Int64(
		"seed",
		0,
		"Seed for the initial world. Zero picks one from the clock.")

	cellSize := flag.Int(
		"cell",
		0,
		"Side of one cell in screen pixels for the sdl renderer. Zero fits the window to the screen.")

	flag.DurationVar(
		&params.Interval,
		"interval",
		time.Second,
		"Least time between turns while rendering. Zero runs turns back to back.")

	render := flag.String(
		"render",
		"sdl",
		"Renderer: sdl, term or none.")

	bench := flag.Bool(
		"bench",
		false,
		"Time the serial stepper against the parallel stepper on the same world and print a CSV report.")

	out := flag.String(
		"out",
		"",
		"File for the -bench report. Defaults to standard output.")

	flag.Parse()

	strategy, err := gol.ParseStrategy(*mode)
	if err != nil {
		log.Fatal(err)
	}
	params.Strategy = strategy

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	params.Seed = uint64(*seed)

	if *bench {
		turns := params.Turns
		if turns <= 0 {
			turns = 100
		}
		var report io.Writer = os.Stdout
		if *out != "" {
			file, err := os.Create(*out)
			util.Check(err)
			defer file.Close()
			report = file
		}
		if err := runBenchmark(params, turns, report); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Println("Mode:", params.Strategy)
	fmt.Println("Threads:", params.Threads)
	fmt.Println("Width:", params.ImageWidth)
	fmt.Println("Height:", params.ImageHeight)

	keyPresses := make(chan rune, 10)
	events := make(chan gol.Event, 1000)

	if *render == "none" {
		// Headless runs are for timing, never hold a turn back
		params.Interval = 0
	}
	go gol.Run(params, events, keyPresses)
	if params.ImageWidth <= 0 || params.ImageHeight <= 0 {
		// Nothing to draw, the run reports the error and stops
		*render = "none"
	}
	switch *render {
	case "sdl":
		sdl.Run(params, *cellSize, events, keyPresses)
	case "term":
		if err := term.Run(params, events, keyPresses); err != nil {
			log.Fatal(err)
		}
	case "none":
		printEvents(events)
	default:
		log.Fatalf("unknown renderer %q", *render)
	}
}

// Print every event that has something to say, as the headless test runs do.
func printEvents(events <-chan gol.Event) {
	for event := range events {
		if e, ok := event.(gol.ErrorEvent); ok {
			log.Fatal(e.Err)
		}
		if len(event.String()) > 0 {
			fmt.Printf("Completed Turns %-8v%v\n", event.GetCompletedTurns(), event)
		}
	}
}

// Threads used by the benchmark sweep: powers of two up to limit, then limit itself.
func benchmarkThreads(limit int) []int {
	if limit < 1 {
		limit = 1
	}
	threads := make([]int, 0, 8)
	for t := 1; t < limit; t *= 2 {
		threads = append(threads, t)
	}
	return append(threads, limit)
}

// runBenchmark times the serial stepper and a sweep of parallel steppers over
// the same seeded world, checking every final world against the serial one.
func runBenchmark(p gol.Params, turns int, out io.Writer) error {
	world, err := gol.Random(p.ImageWidth, p.ImageHeight, p.Density, p.Seed)
	if err != nil {
		return err
	}
	measurements := make([]gol.Measurement, 0, 8)

	serial, want := gol.Measure(gol.Serial, 1, gol.SerialStepper{}, world, turns)
	measurements = append(measurements, serial)

	limit := p.Threads
	if limit <= 0 {
		limit = util.HostThreads()
	}
	for _, threads := range benchmarkThreads(limit) {
		m, got := gol.Measure(gol.Parallel, threads, gol.ParallelStepper{Threads: threads}, world, turns)
		if !got.Equal(want) {
			return fmt.Errorf("parallel stepper with %d threads diverged from serial after %d turns", threads, turns)
		}
		measurements = append(measurements, m)
	}
	return gol.WriteReport(out, measurements)
}
