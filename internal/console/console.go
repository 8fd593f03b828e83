// Package console plays the game over a line-oriented text stream: it prompts
// for moves, re-prompts on bad input and prints the board and the result.
package console

import (
	"bufio"
	"context"
	"ctchen222/tictactoe-console/internal/game"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

const (
	msgInvalidInput = "Not a valid input"
	msgInvalidMove  = "Invalid move"
	msgTie          = "It's a tie!"
)

var ErrInputClosed = errors.New("input closed before a move was entered")

// Console reads moves from in and writes prompts, boards and results to out.
type Console struct {
	reader  *bufio.Reader
	out     io.Writer
	styler  *termenv.Output
	color   bool
	logger  *slog.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithColor styles X and O with ANSI colors.
func WithColor(enabled bool) Option {
	return func(c *Console) { c.color = enabled }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) { c.logger = logger }
}

// New creates a console on the given streams.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		reader:  bufio.NewReader(in),
		out:     out,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.color {
		c.styler = termenv.NewOutput(out, termenv.WithProfile(termenv.ANSI))
	}
	return c
}

// NextMove prompts mark's player until they enter an empty cell inside the board.
func (c *Console) NextMove(ctx context.Context, mark game.PlayerMark, board *game.Board) (game.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Move{}, err
		}

		if _, err := fmt.Fprintf(c.out, "%s's move: ", mark); err != nil {
			return game.Move{}, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := c.readLine()
		if err != nil {
			return game.Move{}, err
		}

		move, ok := parseMove(line)
		if !ok {
			c.logger.DebugContext(ctx, "rejected malformed input", "player", mark.String(), "input", line)
			if err := c.println(msgInvalidInput); err != nil {
				return game.Move{}, err
			}
			continue
		}

		if err := game.ValidateMove(board, move); err != nil {
			c.logger.DebugContext(ctx, "rejected move", "player", mark.String(), "error", err)
			if err := c.println(msgInvalidMove); err != nil {
				return game.Move{}, err
			}
			continue
		}

		return move, nil
	}
}

// RenderBoard prints one line per row with the cells separated by spaces.
func (c *Console) RenderBoard(board *game.Board) error {
	var sb strings.Builder
	for _, row := range board.Rows() {
		symbols := make([]string, len(row))
		for i, cell := range row {
			symbols[i] = c.symbol(cell)
		}
		sb.WriteString(strings.Join(symbols, " "))
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(c.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}
	return nil
}

func (c *Console) AnnounceTie() error {
	return c.println(msgTie)
}

func (c *Console) AnnounceWinner(mark game.PlayerMark) error {
	return c.println(fmt.Sprintf("\nAnd the WINNER is: .....\n!!!!!!!!!!!! %s !!!!!!!!!!!!", c.symbol(mark)))
}

func (c *Console) symbol(mark game.PlayerMark) string {
	if !c.color || mark == game.Empty {
		return mark.String()
	}

	color := "1" // red
	if mark == game.PlayerO {
		color = "4" // blue
	}
	return c.styler.String(mark.String()).Foreground(c.styler.Color(color)).Bold().String()
}

// readLine returns the next input line without its terminator. Lines of any
// length are read in full; a final line without a newline still counts.
func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read move: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) println(msg string) error {
	if _, err := fmt.Fprintln(c.out, msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// parseMove accepts exactly two non-negative decimal integers. Numbers too
// large to represent are returned as math.MaxInt so they fail the bounds check.
func parseMove(line string) (game.Move, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Move{}, false
	}

	row, ok := parseIndex(fields[0])
	if !ok {
		return game.Move{}, false
	}
	col, ok := parseIndex(fields[1])
	if !ok {
		return game.Move{}, false
	}
	return game.Move{Row: row, Col: col}, true
}

func parseIndex(s string) (int, bool) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return math.MaxInt, true
	}
	return n, true
}
