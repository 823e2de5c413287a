// internal/board/generator.go
//
// Board generation.
// Responsibilities:
//   - Validate the requested dimension (size >= 1).
//   - Fill a freshly allocated N×N grid from the configured Distribution.
//
// Randomness:
//   - Without a seed each call draws from the runtime's global source, which
//     is randomly seeded and safe for concurrent use, so calls are independent.
//   - WithSeed gives the generator its own PCG source. Draws are serialized
//     so a seeded generator always yields the same sequence of boards.

package board

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

// ErrInvalidSize is returned by Generate when size < 1.
var ErrInvalidSize = errors.New("invalid board size")

// source is the subset of *rand.Rand used for drawing letters.
type source interface {
	IntN(n int) int
	Perm(n int) []int
}

// globalSource forwards to the package-level math/rand/v2 functions.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }
func (globalSource) Perm(n int) []int { return rand.Perm(n) }

// Generator produces boards. The zero value is not usable; call NewGenerator.
type Generator struct {
	dist Distribution

	mu  sync.Mutex // guards rng when seeded
	rng *rand.Rand // nil → global source
}

// Option configures a Generator.
type Option func(*Generator)

// WithDistribution selects the letter distribution (default Uniform).
func WithDistribution(d Distribution) Option {
	return func(g *Generator) { g.dist = d }
}

// WithSeed makes the generator deterministic.
func WithSeed(seed1, seed2 uint64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewPCG(seed1, seed2)) }
}

// NewGenerator constructs a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{dist: Uniform}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Distribution reports the generator's letter distribution.
func (g *Generator) Distribution() Distribution { return g.dist }

// Generate returns a new size×size grid with every cell populated.
func (g *Generator) Generate(size int) (Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	var src source = globalSource{}
	if g.rng != nil {
		g.mu.Lock()
		defer g.mu.Unlock()
		src = g.rng
	}

	letters := make([]byte, size*size)
	switch g.dist {
	case Dice:
		fillDice(src, letters)
	case Frequency:
		total := cumulativeWeights[len(cumulativeWeights)-1]
		for i := range letters {
			letters[i] = weightedLetter(src.IntN(total))
		}
	default:
		for i := range letters {
			letters[i] = byte('A' + src.IntN(26))
		}
	}

	grid := make(Grid, size)
	for r := range grid {
		grid[r] = letters[r*size : (r+1)*size : (r+1)*size]
	}
	return grid, nil
}

// fillDice rolls the classic dice in shuffled order. Boards with more than
// sixteen cells start a new shuffled round of the same dice.
func fillDice(src source, letters []byte) {
	var order []int
	for i := range letters {
		k := i % len(classicDice)
		if k == 0 {
			order = src.Perm(len(classicDice))
		}
		die := classicDice[order[k]]
		letters[i] = die[src.IntN(len(die))]
	}
}
