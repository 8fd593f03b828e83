// Package player provides move sources that stand in for a person at the console.
package player

import (
	"context"
	"ctchen222/tictactoe-console/internal/game"
	"errors"
)

var ErrScriptExhausted = errors.New("scripted moves exhausted")

// Scripted replays a fixed list of moves in order, whichever mark asks for one.
// Like the room that drives it, it is not safe for concurrent use.
type Scripted struct {
	moves []game.Move
}

// NewScripted creates a move source that returns moves in the given order.
func NewScripted(moves ...game.Move) *Scripted {
	return &Scripted{moves: moves}
}

// NextMove returns the next scripted move.
func (s *Scripted) NextMove(ctx context.Context, _ game.PlayerMark, _ *game.Board) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return game.Move{}, err
	}

	if len(s.moves) == 0 {
		return game.Move{}, ErrScriptExhausted
	}
	next := s.moves[0]
	s.moves = s.moves[1:]
	return next, nil
}

// Remaining returns how many moves have not been played yet.
func (s *Scripted) Remaining() int {
	return len(s.moves)
}
