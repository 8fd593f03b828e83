package room

import (
	"ctchen222/tictactoe-console/internal/game"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . MoveSource,Renderer

const instrumentationName = "ctchen222/tictactoe-console/internal/room"

// Room owns one board for the lifetime of a game and drives its turns.
type Room struct {
	ID       string
	board    *game.Board
	source   MoveSource
	renderer Renderer
	logger   *slog.Logger
	tracer   trace.Tracer
	moves    metric.Int64Counter
	games    metric.Int64Counter
}

type config struct {
	id             string
	anySize        bool
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option configures a Room.
type Option func(*config)

// WithID sets the room id used in logs and spans. A random uuid is used otherwise.
func WithID(id string) Option {
	return func(c *config) { c.id = id }
}

// WithAnySize allows boards outside the supported size range.
func WithAnySize() Option {
	return func(c *config) { c.anySize = true }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) { c.tracerProvider = tp }
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) { c.meterProvider = mp }
}

// New creates a room that plays on board, asking source for moves and reporting through renderer.
func New(board *game.Board, source MoveSource, renderer Renderer, opts ...Option) (*Room, error) {
	cfg := config{
		id:             uuid.New().String(),
		logger:         slog.Default(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.anySize && !game.IsSupportedSize(board.Size()) {
		return nil, fmt.Errorf("%w: %d, want %d to %d", game.ErrInvalidSize, board.Size(), game.MinBoardSize, game.MaxBoardSize)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)
	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Moves applied to a board"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}
	games, err := meter.Int64Counter("tictactoe.games",
		metric.WithDescription("Games that reached a terminal state"),
		metric.WithUnit("{game}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create games counter: %w", err)
	}

	return &Room{
		ID:       cfg.id,
		board:    board,
		source:   source,
		renderer: renderer,
		logger:   cfg.logger.With("room.id", cfg.id),
		tracer:   cfg.tracerProvider.Tracer(instrumentationName),
		moves:    moves,
		games:    games,
	}, nil
}

// Board returns the board the room plays on.
func (r *Room) Board() *game.Board {
	return r.board
}
