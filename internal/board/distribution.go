// internal/board/distribution.go
//
// Letter distributions used to fill a board.
//   - Uniform:   every letter A–Z equally likely (default).
//   - Dice:      the sixteen dice of the physical game, one random face each.
//   - Frequency: letters weighted by their frequency in English text.
//
// The distribution is picked by configuration (BOARD_DISTRIBUTION).

package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDistribution is returned by ParseDistribution for unknown names.
var ErrUnknownDistribution = errors.New("unknown letter distribution")

// Distribution selects how cell letters are drawn.
type Distribution int

const (
	Uniform Distribution = iota
	Dice
	Frequency
)

func (d Distribution) String() string {
	switch d {
	case Dice:
		return "dice"
	case Frequency:
		return "frequency"
	default:
		return "uniform"
	}
}

// ParseDistribution maps a config name to a Distribution.
// An empty name selects Uniform.
func ParseDistribution(name string) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uniform":
		return Uniform, nil
	case "dice":
		return Dice, nil
	case "frequency":
		return Frequency, nil
	}
	return Uniform, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
}

// classicDice are the faces of the sixteen dice. The "Qu" face is a plain Q.
var classicDice = [16]string{
	"AAEEGN", "ABBJOO", "ACHOPS", "AFFKPS",
	"AOOTTW", "CIMOTU", "DEILRX", "DELRVY",
	"DISTTY", "EEGHNW", "EEINSU", "EHRTVW",
	"EIOSST", "ELRTTY", "HIMNQU", "HLNNRZ",
}

// letterWeights are relative English letter frequencies, A through Z.
var letterWeights = [26]int{
	82, 15, 28, 43, 127, 22, 20, 61, 70, 2, 8, 40, 24,
	67, 75, 19, 1, 60, 63, 91, 28, 10, 24, 2, 20, 1,
}

// cumulativeWeights holds running sums of letterWeights for sampling.
var cumulativeWeights = func() [26]int {
	var out [26]int
	sum := 0
	for i, w := range letterWeights {
		sum += w
		out[i] = sum
	}
	return out
}()

// weightedLetter maps a draw in [0, total) to a letter.
func weightedLetter(draw int) byte {
	for i, c := range cumulativeWeights {
		if draw < c {
			return byte('A' + i)
		}
	}
	return 'Z'
}
