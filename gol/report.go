package gol

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// Measurement is the timing of one stepper over a number of turns.
type Measurement struct {
	Strategy Strategy
	Threads  int
	Width    int
	Height   int
	Turns    int
	Elapsed  time.Duration
}

// TurnsPerSecond is zero when nothing was timed.
func (m Measurement) TurnsPerSecond() float64 {
	if m.Elapsed <= 0 {
		return 0
	}
	return float64(m.Turns) / m.Elapsed.Seconds()
}

// Measure advances grid turns times with stepper and returns the timing with the final grid.
// threads is recorded as given; it is only meaningful for the parallel stepper.
func Measure(strategy Strategy, threads int, stepper Stepper, grid *Grid, turns int) (Measurement, *Grid) {
	current := Generation{Turn: 0, Grid: grid}
	start := time.Now()
	for current.Turn < turns {
		current = current.Next(stepper)
	}
	width, height := grid.Dimensions()
	return Measurement{
		Strategy: strategy,
		Threads:  threads,
		Width:    width,
		Height:   height,
		Turns:    current.Turn,
		Elapsed:  time.Since(start),
	}, current.Grid
}

var reportHeader = []string{"strategy", "threads", "width", "height", "turns", "elapsed_ns", "turns_per_second"}

// WriteReport writes measurements as CSV, one row each after a header row.
func WriteReport(out io.Writer, measurements []Measurement) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(reportHeader); err != nil {
		return err
	}
	for _, m := range measurements {
		record := []string{
			string(m.Strategy),
			strconv.Itoa(m.Threads),
			strconv.Itoa(m.Width),
			strconv.Itoa(m.Height),
			strconv.Itoa(m.Turns),
			strconv.FormatInt(m.Elapsed.Nanoseconds(), 10),
			strconv.FormatFloat(m.TurnsPerSecond(), 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
