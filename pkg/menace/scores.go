package menace

import (
	"fmt"

	"github.com/tage64/menace/pkg/ttt"
)

// Scores of every move in a position, kept sorted by a pair of rank arrays.
// Only one score changes at a time, so the order is restored by moving that
// single entry up or down through its neighbours instead of sorting again.
type Scores[W Weight] struct {
	// score[m] = the score for move m
	score [ttt.NMoves]W
	// order[m] = i implies that m is the move with the ith highest score
	order [ttt.NMoves]uint8
	// moveAt[i] = m implies that m is the move with the ith highest score
	moveAt [ttt.NMoves]ttt.Move
	// moves that were legal when the scores were created
	legal ttt.MoveSet
}

// Legal moves get the initial score and the first ranks (ascending index),
// the others score 0 and take the remaining ranks
func newScores[W Weight](legal ttt.MoveSet, initial W) Scores[W] {
	s := Scores[W]{legal: legal}
	rank := 0
	for m := range legal.All() {
		s.score[m] = initial
		s.place(m, rank)
		rank++
	}
	for m := range (ttt.FullMoveSet() &^ legal).All() {
		s.place(m, rank)
		rank++
	}
	return s
}

func (s *Scores[W]) place(m ttt.Move, rank int) {
	s.order[m] = uint8(rank)
	s.moveAt[rank] = m
}

func (s *Scores[W]) Score(m ttt.Move) W {
	return s.score[m]
}

// Rank of the move, 0 is the highest score
func (s *Scores[W]) Rank(m ttt.Move) int {
	return int(s.order[m])
}

// Move with the given rank
func (s *Scores[W]) MoveAt(rank int) ttt.Move {
	return s.moveAt[rank]
}

// All moves, from the highest score to the lowest
func (s *Scores[W]) Ranked() [ttt.NMoves]ttt.Move {
	return s.moveAt
}

// Moves that were legal in the position
func (s *Scores[W]) Legal() ttt.MoveSet {
	return s.legal
}

// Move m towards rank 0 while its predecessor has a strictly lower score,
// returns the number of swaps
func (s *Scores[W]) bubbleUp(m ttt.Move) int {
	swaps := 0
	i := int(s.order[m])
	for i > 0 {
		prev := s.moveAt[i-1]
		if s.score[prev] >= s.score[m] {
			break
		}
		s.order[prev]++
		s.order[m]--
		s.moveAt[i] = prev
		s.moveAt[i-1] = m
		i--
		swaps++
	}
	return swaps
}

// Move m towards the last rank while its successor has a strictly higher score,
// returns the number of swaps
func (s *Scores[W]) bubbleDown(m ttt.Move) int {
	swaps := 0
	i := int(s.order[m])
	for i+1 < ttt.NMoves {
		next := s.moveAt[i+1]
		if s.score[next] <= s.score[m] {
			break
		}
		s.order[next]--
		s.order[m]++
		s.moveAt[i] = next
		s.moveAt[i+1] = m
		i++
		swaps++
	}
	return swaps
}

// Check the rank arrays against each other and the score order,
// returns the sum of all scores
func (s *Scores[W]) validateOrder() (W, error) {
	var sum W
	for i := 0; i < ttt.NMoves; i++ {
		m := s.moveAt[i]
		if !m.Valid() {
			return sum, fmt.Errorf("rank %d holds invalid move %d", i, m)
		}
		if int(s.order[m]) != i {
			return sum, fmt.Errorf("move %v is at rank %d, but its order is %d", m, i, s.order[m])
		}
		if i > 0 && s.score[s.moveAt[i-1]] < s.score[m] {
			return sum, fmt.Errorf("score of %v at rank %d (%v) is higher than the one above (%v)",
				m, i, s.score[m], s.score[s.moveAt[i-1]])
		}
		if s.score[m] < 0 {
			return sum, fmt.Errorf("negative score %v for %v", s.score[m], m)
		}
		if !s.legal.Contains(m) && s.score[m] != 0 {
			return sum, fmt.Errorf("illegal move %v has score %v", m, s.score[m])
		}
		sum += s.score[m]
	}
	return sum, nil
}

func (s *Scores[W]) mustBePositive(m ttt.Move) {
	if !m.Valid() {
		panic(fmt.Sprintf("menace: move %d out of range", m))
	}
	if s.score[m] == 0 {
		panic(fmt.Sprintf("menace: move %v has score 0, it was never legal or has been exhausted", m))
	}
}

// Panic if verification is enabled and v is inconsistent
func verify(v ScoresLike) {
	if !Verify {
		return
	}
	if err := v.Validate(); err != nil {
		panic(fmt.Sprintf("menace: inconsistent scores: %v", err))
	}
}
