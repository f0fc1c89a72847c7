package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the game logic update interval (one movement step per tick)
	TickInterval = 16 * time.Millisecond

	// MinTickInterval bounds configurable tick rates
	MinTickInterval = 5 * time.Millisecond
)

// Movement Constants
const (
	// CellUnits is the number of presentation units per maze cell
	CellUnits = 12

	// AgentSpeed is presentation units advanced per tick (~5 cells/s at 16ms)
	AgentSpeed = 1
)

// Maze Defaults
const (
	DefaultWidth  = 12
	DefaultHeight = 8

	// EndlessGrowth is the per-level increase of width and height in endless mode
	EndlessGrowth = 1
)

// Scoring Constants
const (
	// SecondsPerCell is the par time allowance per reference path cell
	SecondsPerCell = 0.6
)
