package app

import (
	"context"
	"ctchen222/tictactoe-console/internal/config"
	"ctchen222/tictactoe-console/internal/console"
	"ctchen222/tictactoe-console/internal/game"
	"ctchen222/tictactoe-console/internal/room"
	"fmt"
	"io"
	"log/slog"
)

// RunApp plays one game on in/out with the given configuration. rng picks the
// board size when the configuration leaves it open.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer, rng game.IntNer) (room.Outcome, error) {
	size, err := boardSize(conf, rng)
	if err != nil {
		return room.Outcome{}, err
	}

	board, err := game.NewBoard(size)
	if err != nil {
		return room.Outcome{}, fmt.Errorf("failed to create board: %w", err)
	}

	term := console.New(in, out,
		console.WithColor(conf.Color),
		console.WithLogger(logger),
	)

	r, err := room.New(board, term, term, room.WithLogger(logger))
	if err != nil {
		return room.Outcome{}, fmt.Errorf("failed to create room: %w", err)
	}

	logger.DebugContext(ctx, "room created", "room.id", r.ID, "board.size", size, "random.size", conf.RandomSize())

	return r.Run(ctx)
}

func boardSize(conf *config.Config, rng game.IntNer) (int, error) {
	if !conf.RandomSize() {
		return conf.BoardSize, nil
	}

	dist, err := game.NewSizeDistribution(conf.SizeWeights)
	if err != nil {
		return 0, fmt.Errorf("failed to build size distribution: %w", err)
	}
	return dist.Pick(rng), nil
}
