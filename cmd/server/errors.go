package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Ko-stant/spider-field/internal/game"
)

// GameError represents a rejected request
type GameError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *GameError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

const (
	CodeUnknownDirection = "unknown_direction"
	CodeGameOver         = "game_over"
	CodeBadIntent        = "bad_intent"
	CodeUnknownIntent    = "unknown_intent"
	CodeInternal         = "internal"
)

func NewGameError(code, format string, args ...any) *GameError {
	return &GameError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// toGameError maps engine errors onto client facing codes.
func toGameError(err error) *GameError {
	var ge *GameError
	switch {
	case errors.As(err, &ge):
		return ge
	case errors.Is(err, game.ErrGameOver):
		return NewGameError(CodeGameOver, "the game is over, restart to play again")
	default:
		return NewGameError(CodeInternal, "%v", err)
	}
}

// HTTPStatus is the response status for the error code.
func (e *GameError) HTTPStatus() int {
	switch e.Code {
	case CodeUnknownDirection, CodeBadIntent, CodeUnknownIntent:
		return http.StatusBadRequest
	case CodeGameOver:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
