package menace

import (
	"fmt"
	"math/rand"

	"github.com/tage64/menace/pkg/ttt"
)

// Numeric type of a move score
type Weight interface {
	~uint32 | ~float64
}

// Move scores of a single position
type ScoresLike interface {
	fmt.Stringer
	// Pick a move at random, weighted by the scores, false if there is no move to pick
	Sample(r *rand.Rand) (ttt.Move, bool)
	// Recompute every invariant of the scores
	Validate() error
}

// A single move made during a game
type Ply struct {
	Position ttt.Board
	Move     ttt.Move
	Player   ttt.Player
}
