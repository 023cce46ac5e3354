// Package term draws the grid in a terminal with tcell, for hosts without a display.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"uk.ac.bris.cs/vida/gol"
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// Run draws the grid until events is closed. Cells past the edge of the
// terminal are not shown. Key presses are forwarded without blocking.
func Run(p gol.Params, events <-chan gol.Event, keyPresses chan<- rune) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	go pollKeys(screen, keyPresses)

	world := make([]bool, p.ImageWidth*p.ImageHeight)
	status := ""
	for event := range events {
		switch e := event.(type) {
		case gol.CellsFlipped:
			for _, cell := range e.Cells {
				index := cell.Y*p.ImageWidth + cell.X
				world[index] = !world[index]
			}
			if e.CompletedTurns == 0 {
				draw(screen, p, world, status, 0)
			}
		case gol.TurnComplete:
			draw(screen, p, world, status, e.CompletedTurns)
		default:
			if s := event.String(); s != "" {
				status = s
				draw(screen, p, world, status, event.GetCompletedTurns())
			}
		}
	}
	return nil
}

func draw(screen tcell.Screen, p gol.Params, world []bool, status string, turn int) {
	cols, rows := screen.Size()
	// Last terminal row is the status line
	rows--
	for y := 0; y < rows && y < p.ImageHeight; y++ {
		for x := 0; x < cols && x < p.ImageWidth; x++ {
			if world[y*p.ImageWidth+x] {
				screen.SetContent(x, y, '█', nil, aliveStyle)
			} else {
				screen.SetContent(x, y, ' ', nil, deadStyle)
			}
		}
	}
	if rows >= 0 {
		line := fmt.Sprintf("turn %-8d %s  [p]ause [s]tats [q]uit", turn, status)
		for x := 0; x < cols; x++ {
			char := ' '
			if x < len(line) {
				char = rune(line[x])
			}
			screen.SetContent(x, rows, char, nil, statusStyle)
		}
	}
	screen.Show()
}

// pollKeys returns once the screen is finalised.
func pollKeys(screen tcell.Screen, keyPresses chan<- rune) {
	send := func(char rune) {
		select {
		case keyPresses <- char:
		default:
		}
	}
	for {
		switch e := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch e.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				send('q')
			case tcell.KeyRune:
				switch e.Rune() {
				case 'p', 's', 'q':
					send(e.Rune())
				}
			}
		}
	}
}
