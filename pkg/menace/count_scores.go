package menace

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/tage64/menace/pkg/ttt"
)

// Integer scores: every legal move starts with the same number of "beads",
// and a move is picked with probability score/sum.
type CountScores struct {
	Scores[uint32]
	// The sum of all scores
	sum uint32
}

// Initialize all legal moves of the position to 'initial' and the others to 0
func NewCountScores(pos ttt.Board, initial uint32) *CountScores {
	legal := pos.LegalMoves()
	s := &CountScores{
		Scores: newScores(legal, initial),
		sum:    initial * uint32(legal.Len()),
	}
	verify(s)
	return s
}

func (s *CountScores) Sum() uint32 {
	return s.sum
}

// Increase the score for a move, the move must have a positive score
func (s *CountScores) Increase(m ttt.Move, amount uint32) {
	s.mustBePositive(m)
	s.score[m] += amount
	s.sum += amount
	s.bubbleUp(m)
	verify(s)
}

// Decrease the score for a move, the move must have a positive score.
// The score stops at 0.
func (s *CountScores) Decrease(m ttt.Move, amount uint32) {
	s.mustBePositive(m)
	amount = min(amount, s.score[m])
	s.score[m] -= amount
	s.sum -= amount
	s.bubbleDown(m)
	verify(s)
}

// Draw a number in [0, sum) and walk the ranks from the top
func (s *CountScores) Sample(r *rand.Rand) (ttt.Move, bool) {
	if s.sum == 0 {
		return 0, false
	}
	return s.pick(uint32(r.Int63n(int64(s.sum)))), true
}

// Move selected by the draw x, which must be lower than the sum
func (s *CountScores) pick(x uint32) ttt.Move {
	for i := 0; i < ttt.NMoves; i++ {
		m := s.moveAt[i]
		if x < s.score[m] {
			return m
		}
		x -= s.score[m]
	}
	panic(fmt.Sprintf("menace: draw exceeds the score sum %d", s.sum))
}

func (s *CountScores) Validate() error {
	sum, err := s.validateOrder()
	if err != nil {
		return err
	}
	if sum != s.sum {
		return fmt.Errorf("tracked sum %d, actual sum %d", s.sum, sum)
	}
	return nil
}

// Total followed by the moves with a positive score, highest first
func (s *CountScores) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("total: %d", s.sum))
	for _, m := range s.moveAt {
		score := s.score[m]
		if score == 0 {
			break
		}
		builder.WriteString(fmt.Sprintf(", %v: %d", m, score))
	}
	return builder.String()
}
