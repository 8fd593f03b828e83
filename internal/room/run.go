package room

import (
	"context"
	"ctchen222/tictactoe-console/internal/game"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Run plays the game until a player wins or the board fills up.
//
// The current mark starts as O and is switched before each move, so X always
// moves first. The win check for the mark that just moved runs at the top of
// the loop, before the tie check, so a winning move that fills the board is a win.
func (r *Room) Run(ctx context.Context) (Outcome, error) {
	ctx, span := r.tracer.Start(ctx, "room.Run", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.Int("board.size", r.board.Size()),
	))
	defer span.End()

	r.logger.InfoContext(ctx, "game started", "board.size", r.board.Size())

	outcome := Outcome{State: StatePlaying}
	current := game.PlayerO
	for !game.HasWon(r.board, current) {
		if r.board.IsFull() {
			outcome.State = StateTie
			break
		}
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Game canceled")
			return outcome, err
		}

		current = current.Opponent()
		if err := r.playTurn(ctx, current); err != nil {
			r.logger.ErrorContext(ctx, "turn failed", "player", current.String(), "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Turn failed")
			return outcome, err
		}
	}

	if outcome.State != StateTie {
		outcome = Outcome{State: StateWon, Winner: current}
	}

	if err := r.announce(outcome); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to announce result")
		return outcome, err
	}

	result := outcome.State.String()
	if outcome.State == StateWon {
		result = outcome.Winner.String()
	}
	r.games.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	span.SetAttributes(attribute.String("game.result", result))
	r.logger.InfoContext(ctx, "game finished", "result", result)

	return outcome, nil
}

// playTurn renders the board, acquires a move for mark and applies it.
func (r *Room) playTurn(ctx context.Context, mark game.PlayerMark) error {
	ctx, span := r.tracer.Start(ctx, "room.Turn", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("player", mark.String()),
	))
	defer span.End()

	if err := r.renderer.RenderBoard(r.board); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to render board")
		return fmt.Errorf("failed to render board: %w", err)
	}

	move, err := r.source.NextMove(ctx, mark, r.board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to acquire move")
		return fmt.Errorf("failed to acquire move for %s: %w", mark, err)
	}

	if err := game.ValidateMove(r.board, move); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Illegal move")
		return fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}

	game.ApplyMove(r.board, mark, move)
	span.SetAttributes(attribute.Int("move.row", move.Row), attribute.Int("move.col", move.Col))
	r.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("player", mark.String())))
	r.logger.DebugContext(ctx, "move applied", "player", mark.String(), "row", move.Row, "col", move.Col)

	return nil
}

func (r *Room) announce(outcome Outcome) error {
	var err error
	switch outcome.State {
	case StateTie:
		err = r.renderer.AnnounceTie()
	case StateWon:
		err = r.renderer.AnnounceWinner(outcome.Winner)
	}
	if err != nil {
		return fmt.Errorf("failed to announce result: %w", err)
	}
	return nil
}
