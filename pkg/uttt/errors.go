package uttt

import "errors"

// Errors returned by Play and the notation parser, use errors.Is to
// tell them apart
var (
	ErrOutOfRange  = errors.New("position out of range")
	ErrOccupied    = errors.New("cell occupied")
	ErrOutOfRegion = errors.New("sub-grid outside the legal region")
	ErrGridClosed  = errors.New("sub-grid already won")
	ErrWrongTurn   = errors.New("not this side's turn")
	ErrGameOver    = errors.New("game over")
	ErrBadNotation = errors.New("invalid move notation")
)
