package menace

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/tage64/menace/pkg/ttt"
)

// Probability scores: every legal move starts at 1/|legal moves|, and the
// scores always sum up to 1 (within Epsilon) or to 0 if there is no legal move.
type ProbScores struct {
	Scores[float64]
}

func NewProbScores(pos ttt.Board) *ProbScores {
	legal := pos.LegalMoves()
	initial := 0.0
	if n := legal.Len(); n > 0 {
		initial = 1.0 / float64(n)
	}
	s := &ProbScores{Scores: newScores(legal, initial)}
	verify(s)
	return s
}

// Freshly computed sum of the scores
func (s *ProbScores) Sum() float64 {
	sum := 0.0
	for _, v := range s.score {
		sum += v
	}
	return sum
}

// Multiply the score of a move by factor, then divide every score by the new
// total so they sum up to 1 again. Returns that divisor.
func (s *ProbScores) Multiply(m ttt.Move, factor float64) float64 {
	s.mustBePositive(m)
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		panic(fmt.Sprintf("menace: invalid factor %v for %v", factor, m))
	}

	s.score[m] *= factor
	divisor := s.Sum()
	for i := range s.score {
		s.score[i] /= divisor
	}

	// Every other score was divided by the same value, so only m may be out of place
	switch {
	case factor > 1:
		s.bubbleUp(m)
	case factor < 1:
		s.bubbleDown(m)
	}
	verify(s)
	return divisor
}

// Draw a number in [0, 1) and walk the ranks from the bottom,
// starting with the least likely move
func (s *ProbScores) Sample(r *rand.Rand) (ttt.Move, bool) {
	if s.score[s.moveAt[0]] == 0 {
		return 0, false
	}
	return s.pick(r.Float64()), true
}

func (s *ProbScores) pick(x float64) ttt.Move {
	for i := ttt.NMoves - 1; i >= 0; i-- {
		m := s.moveAt[i]
		score := s.score[m]
		if score == 0 {
			continue
		}
		if score > x {
			return m
		}
		x -= score
	}
	panic(fmt.Sprintf("menace: probability walk ran out of moves, scores: %v", s))
}

func (s *ProbScores) Validate() error {
	sum, err := s.validateOrder()
	if err != nil {
		return err
	}
	for _, m := range s.moveAt {
		if math.IsNaN(s.score[m]) || math.IsInf(s.score[m], 0) {
			return fmt.Errorf("non-finite score %v for %v", s.score[m], m)
		}
	}

	want := 1.0
	if s.score[s.moveAt[0]] == 0 {
		want = 0.0
	}
	if math.Abs(sum-want) > Epsilon {
		return fmt.Errorf("scores sum up to %v, want %v", sum, want)
	}
	return nil
}

// Moves with a positive score, highest first
func (s *ProbScores) String() string {
	parts := make([]string, 0, ttt.NMoves)
	for _, m := range s.moveAt {
		score := s.score[m]
		if score == 0 {
			break
		}
		parts = append(parts, fmt.Sprintf("%v: %.3f", m, score))
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, ", ")
}
