package menace

import (
	"fmt"
	"math/rand"

	"github.com/tage64/menace/pkg/ttt"
)

// The machine playing tic-tac-toe. It learns only by playing against itself,
// keeping move scores for every position it has seen.
//
// A machine owns its random generator and is not safe for concurrent use,
// train independent machines with different seeds instead.
type Machine[S ScoresLike, A StrategyLike[S]] struct {
	values   map[ttt.Board]S
	rng      *rand.Rand
	strategy A
	history  []Ply
}

type CountMachine = Machine[*CountScores, *CountStrategy]
type ProbMachine = Machine[*ProbScores, *ProbStrategy]

// Create new machine, seeded by SeedGeneratorFn
func NewMachine[S ScoresLike, A StrategyLike[S]](strategy A) *Machine[S, A] {
	return NewMachineWithSeed[S](strategy, SeedGeneratorFn())
}

func NewMachineWithSeed[S ScoresLike, A StrategyLike[S]](strategy A, seed int64) *Machine[S, A] {
	return &Machine[S, A]{
		values:   make(map[ttt.Board]S),
		rng:      rand.New(rand.NewSource(seed)),
		strategy: strategy,
		history:  make([]Ply, 0, ttt.NMoves),
	}
}

// Machine with the counting scheme and the current package settings
func NewCountMachine() *CountMachine {
	return NewMachine[*CountScores, *CountStrategy](NewCountStrategy())
}

// Machine with the probability scheme and the current package settings
func NewProbMachine() *ProbMachine {
	return NewMachine[*ProbScores, *ProbStrategy](NewProbStrategy())
}

// Get the move scores for a position, creating them on the first visit
func (m *Machine[S, A]) Scores(pos ttt.Board) S {
	scores, ok := m.values[pos]
	if !ok {
		scores = m.strategy.NewScores(pos)
		m.values[pos] = scores
	}
	return scores
}

// Select a move for a position, false means the machine resigns
func (m *Machine[S, A]) SelectMove(pos ttt.Board) (ttt.Move, bool) {
	return m.Scores(pos).Sample(m.rng)
}

// Let the machine play a training match against itself and update the scores accordingly
func (m *Machine[S, A]) PlayTrainingMatch() ttt.GameResult {
	pos := ttt.EmptyBoard()
	turn := ttt.Crosses
	m.history = m.history[:0]

	var result ttt.GameResult
	for {
		move, ok := m.SelectMove(pos)
		if !ok {
			result = ttt.Win(turn.Opponent(), ttt.Resignation)
			break
		}

		m.history = append(m.history, Ply{Position: pos, Move: move, Player: turn})
		pos.Play(move, turn)
		if res, over := pos.Result(turn); over {
			result = res
			break
		}
		turn = turn.Opponent()
	}

	m.strategy.Backpropagate(m.values, m.history, result)
	return result
}

// Moves of the last training match, valid until the next one
func (m *Machine[S, A]) History() []Ply {
	return m.history
}

// Number of positions the machine has scores for
func (m *Machine[S, A]) Positions() int {
	return len(m.values)
}

func (m *Machine[S, A]) Strategy() A {
	return m.strategy
}

// Validate every position's scores
func (m *Machine[S, A]) Validate() error {
	for pos, scores := range m.values {
		if err := scores.Validate(); err != nil {
			return fmt.Errorf("position %s: %w", pos.Notation(), err)
		}
	}
	return nil
}

func (m *Machine[S, A]) String() string {
	return fmt.Sprintf("Machine={Positions=%d, Strategy=%+v}", m.Positions(), m.strategy)
}
