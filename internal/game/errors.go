package game

import "errors"

var (
	// ErrGameOver is returned for intents that arrive after a win or a loss.
	ErrGameOver = errors.New("game is over")
	// ErrInvalidConfig wraps every configuration problem.
	ErrInvalidConfig = errors.New("invalid game config")
)
