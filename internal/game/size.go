package game

import (
	"fmt"
	"math"
)

// DefaultSizeWeights favours small boards: 3 is six times as likely as 6.
var DefaultSizeWeights = []int{6, 4, 2, 1}

// IntNer is a source of random integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type IntNer interface {
	IntN(n int) int
}

// SizeDistribution draws board sizes from a discrete weighted distribution.
type SizeDistribution struct {
	cumulative []int
}

// NewSizeDistribution builds a distribution where weights[i] is the weight of size MinBoardSize+i.
func NewSizeDistribution(weights []int) (*SizeDistribution, error) {
	if len(weights) == 0 || len(weights) > MaxBoardSize-MinBoardSize+1 {
		return nil, fmt.Errorf("%w: want 1 to %d weights, got %d", ErrInvalidWeights, MaxBoardSize-MinBoardSize+1, len(weights))
	}

	cumulative := make([]int, len(weights))
	total := 0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %d for size %d", ErrInvalidWeights, w, MinBoardSize+i)
		}
		if w > math.MaxInt-total {
			return nil, fmt.Errorf("%w: weights overflow at size %d", ErrInvalidWeights, MinBoardSize+i)
		}
		total += w
		cumulative[i] = total
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: all weights are zero", ErrInvalidWeights)
	}

	return &SizeDistribution{cumulative: cumulative}, nil
}

// Pick draws a board size.
func (d *SizeDistribution) Pick(rng IntNer) int {
	n := rng.IntN(d.cumulative[len(d.cumulative)-1])
	for i, upper := range d.cumulative {
		if n < upper {
			return MinBoardSize + i
		}
	}
	// unreachable: n is below the last cumulative weight
	return MinBoardSize + len(d.cumulative) - 1
}
