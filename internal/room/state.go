package room

import (
	"context"
	"ctchen222/tictactoe-console/internal/game"
	"errors"
)

var ErrIllegalMove = errors.New("move source returned an illegal move")

// State is the stage a game is in. Won and Tie are terminal.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateTie
)

func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateTie:
		return "tie"
	default:
		return "playing"
	}
}

// Outcome describes how a game ended. Winner is only set for StateWon.
type Outcome struct {
	State  State
	Winner game.PlayerMark
}

// MoveSource supplies the next move for a mark. Implementations return only
// moves that are inside the board and target an empty cell.
type MoveSource interface {
	NextMove(ctx context.Context, mark game.PlayerMark, board *game.Board) (game.Move, error)
}

// Renderer shows the board and the final result to the players.
type Renderer interface {
	RenderBoard(board *game.Board) error
	AnnounceTie() error
	AnnounceWinner(mark game.PlayerMark) error
}
