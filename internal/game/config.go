package game

import "time"

// Board dimensions (in cells).
const (
	Columns = 40
	Rows    = 30
)

// Tick cadence. The interval is sampled at the start of every wait.
const (
	TickInterval      = 200 * time.Millisecond
	BoostTickInterval = 100 * time.Millisecond
)

// FoodScore is added to the score for every food eaten.
const FoodScore = 1

// StartBody is the snake after every reset, tail first.
var StartBody = Snake{{1, 1}, {2, 1}, {3, 1}, {4, 1}}

// StartDirection is the heading after every reset.
const StartDirection = Right
