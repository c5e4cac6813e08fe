package uttt

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ultimate tic tac toe game: board, won sub-grids and the game state.
// Not safe for concurrent use, each game should have its own engine
type Engine struct {
	id     uuid.UUID
	board  Board
	meta   MetaBoard
	state  GameState
	region int        // sub-grid of the next move, or GridAny
	legal  []Position // legal moves of the side to move
	moves  int
	log    *zap.Logger
}

type Option func(*Engine)

// Attach a logger, every accepted and rejected play is logged at debug level
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// Set the game id used in the log fields, by default a random one is generated
func WithID(id uuid.UUID) Option {
	return func(e *Engine) {
		e.id = id
	}
}

// Create a new engine with an empty board, crosses to move
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		id:     uuid.New(),
		state:  CrossesTurn,
		region: GridAny,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.legal = GenerateMoves(&e.board, e.meta, e.region)
	e.log = e.log.With(zap.Stringer("game", e.id))
	return e
}

// Getters
func (e *Engine) ID() uuid.UUID {
	return e.id
}

func (e *Engine) State() GameState {
	return e.state
}

func (e *Engine) Board() Board {
	return e.board
}

func (e *Engine) Meta() MetaBoard {
	return e.meta
}

// Side to move, ok is false if the game has ended
func (e *Engine) Turn() (TurnType, bool) {
	return e.state.Turn()
}

// Sub-grid the next move must be made on, GridAny if any sub-grid is allowed
func (e *Engine) NextGrid() int {
	return e.region
}

// Number of accepted plays
func (e *Engine) Moves() int {
	return e.moves
}

// Get a copy of the legal moves of the side to move
func (e *Engine) LegalMoves() []Position {
	return slices.Clone(e.legal)
}

// Check if given move is legal for the side
func (e *Engine) IsLegal(pos Position, turn TurnType) bool {
	return e.validate(pos, turn) == nil
}

// Put the side's mark on the position, mark the sub-grid as won if that
// completed a line, and update the game state. Returns the legal moves of the
// following turn, empty if the game has ended.
// Illegal plays are rejected without changing the engine's state
func (e *Engine) Play(pos Position, turn TurnType) ([]Position, error) {
	if err := e.validate(pos, turn); err != nil {
		e.log.Debug("rejected play",
			zap.Stringer("turn", turn),
			zap.Int("grid", pos.Grid),
			zap.Int("cell", pos.Cell),
			zap.Error(err),
		)
		return nil, err
	}

	e.board.set(pos, turn)
	e.moves++
	if gridWon(&e.board, turn, pos.Grid) {
		e.meta.SetGridWon(turn, pos.Grid)
	}

	// The cell we played on decides where the opponent goes
	e.region = nextRegion(&e.board, e.meta, pos.Cell)
	e.legal = GenerateMoves(&e.board, e.meta, e.region)
	e.state = NextState(e.meta, e.legal, turn)
	if e.state == CrossesWin || e.state == NoughtsWin {
		e.legal = e.legal[:0]
	}

	e.log.Debug("play",
		zap.Stringer("turn", turn),
		zap.Stringer("move", pos),
		zap.Int("index", pos.Index()),
		zap.Int("region", e.region),
		zap.Int("legal", len(e.legal)),
		zap.Stringer("state", e.state),
	)
	return e.LegalMoves(), nil
}

func (e *Engine) validate(pos Position, turn TurnType) error {
	if e.state.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrGameOver, e.state)
	}

	if !pos.Valid() {
		return fmt.Errorf("%w: grid=%d cell=%d", ErrOutOfRange, pos.Grid, pos.Cell)
	}

	if expected, _ := e.state.Turn(); turn != expected {
		return fmt.Errorf("%w: %s to move, got %s", ErrWrongTurn, expected, turn)
	}

	if e.board.IsOccupied(pos) {
		return fmt.Errorf("%w: move %s", ErrOccupied, pos)
	}

	if e.meta.GridWon(pos.Grid) {
		return fmt.Errorf("%w: move %s", ErrGridClosed, pos)
	}

	if e.region != GridAny && pos.Grid != e.region {
		return fmt.Errorf("%w: move %s, possible moves=[%s]", ErrOutOfRegion, pos, FormatMoves(e.legal))
	}
	return nil
}
