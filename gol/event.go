package gol

import (
	"fmt"

	"uk.ac.bris.cs/vida/util"
)

// Event represents any Game of Life event that needs to be communicated to the user.
type Event interface {
	// Stringer allows each event to provide a string representation.
	// The renderers print events to the terminal with it.
	fmt.Stringer

	// GetCompletedTurns should return the number of fully completed turns.
	// If the event is not tied to a turn it should return 0.
	GetCompletedTurns() int
}

// ExecState represents a change in the state of execution.
type ExecState int

const (
	Paused ExecState = iota
	Executing
	Quitting
)

// StateChange is an Event notifying the user about the change of state of execution.
// This Event should be sent every time the execution is paused, resumed or quit.
type StateChange struct {
	CompletedTurns int
	NewState       ExecState
}

// AliveCellsCount is an Event notifying the user about the number of currently alive cells.
// This Event is sent every 2 seconds and whenever 's' is pressed.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// CellsFlipped is an Event notifying the GUI about a change of state of multiple cells.
// For turn 0 Cells holds every initially alive cell.
type CellsFlipped struct {
	CompletedTurns int
	Cells          []util.Cell
}

// TurnComplete is an Event notifying the GUI about turn completion.
// Every CellsFlipped of the turn is sent before its TurnComplete.
type TurnComplete struct {
	CompletedTurns int
}

// FinalTurnComplete is an Event notifying the testing framework about the new world state after execution finished.
// The data included with this Event is used directly by the tests.
// The events channel is closed shortly after this Event.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
	Strategy       Strategy
}

// ErrorEvent reports a failure that stopped the run before any turn was executed.
type ErrorEvent struct {
	Err error
}

// String methods allow the different types of Events and States to be printed.

func (s ExecState) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %v", event.CellsCount)
}

func (event AliveCellsCount) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event CellsFlipped) String() string {
	return fmt.Sprintf("%d cells flipped", len(event.Cells))
}

func (event CellsFlipped) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) String() string {
	return ""
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final Turn Complete (%s), %d cells alive", event.Strategy, len(event.Alive))
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event ErrorEvent) String() string {
	return fmt.Sprintf("Error: %v", event.Err)
}

func (event ErrorEvent) GetCompletedTurns() int {
	return 0
}
