package sdl

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/vida/gol"
)

// How long to wait for an event before polling the window again
const pollInterval = 10 * time.Millisecond

// Run draws the grid until events is closed. It must be called on the main goroutine.
// Key presses are forwarded without blocking, so keyPresses should be buffered.
// cellSize is the side of one cell in screen pixels; zero or less fits the window to the screen.
func Run(p gol.Params, cellSize int, events <-chan gol.Event, keyPresses chan<- rune) {
	w := NewWindow(int32(p.ImageWidth), int32(p.ImageHeight), int32(cellSize))
	defer w.Destroy()

	poll := time.NewTicker(pollInterval)
	defer poll.Stop()

	send := func(char rune) {
		select {
		case keyPresses <- char:
		default:
		}
	}

	for {
		event := w.PollEvent()
		if event != nil {
			switch e := event.(type) {
			case *sdl.KeyboardEvent:
				switch e.Keysym.Sym {
				case sdl.K_p:
					send('p')
				case sdl.K_s:
					send('s')
				case sdl.K_q, sdl.K_ESCAPE:
					send('q')
				}
			case *sdl.QuitEvent:
				send('q')
			}
		}
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			switch e := event.(type) {
			case gol.CellsFlipped:
				for _, cell := range e.Cells {
					w.FlipPixel(cell.X, cell.Y)
				}
				if e.CompletedTurns == 0 {
					w.RenderFrame()
				}
			case gol.TurnComplete:
				w.RenderFrame()
			default:
				if len(event.String()) > 0 {
					fmt.Printf("Completed Turns %-8v%v\n", event.GetCompletedTurns(), event)
				}
			}
		case <-poll.C:
		}
	}
}
