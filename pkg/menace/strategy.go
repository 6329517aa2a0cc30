package menace

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/tage64/menace/pkg/ttt"
)

type StrategyLike[S ScoresLike] interface {
	// Scores for a position seen for the first time
	NewScores(pos ttt.Board) S
	// Credit the moves played during a game, history is in play order and
	// every position in it is present in values
	Backpropagate(values map[ttt.Board]S, history []Ply, result ttt.GameResult)
}

// Counting scheme: the winner's moves gain beads, the loser's moves lose them,
// a draw changes nothing
type CountStrategy struct {
	InitialScore uint32
	Gamma        float32
}

// Create the counting strategy from the current package settings
func NewCountStrategy() *CountStrategy {
	return &CountStrategy{InitialScore: InitialScore, Gamma: Gamma}
}

func (c *CountStrategy) NewScores(pos ttt.Board) *CountScores {
	return NewCountScores(pos, c.InitialScore)
}

// Both players' moves are walked from the first one, the credit starts at 1
// and decays by Gamma after every move
func (c *CountStrategy) Backpropagate(values map[ttt.Board]*CountScores, history []Ply, result ttt.GameResult) {
	if result.IsDraw() {
		return
	}

	winner := result.Winner
	k := float32(1.0)
	for _, ply := range history {
		if ply.Player != winner {
			continue
		}
		values[ply.Position].Increase(ply.Move, uint32(math32.Round(k)))
		k *= c.Gamma
	}

	loser := winner.Opponent()
	k = 1.0
	for _, ply := range history {
		if ply.Player != loser {
			continue
		}
		values[ply.Position].Decrease(ply.Move, uint32(math32.Round(k)))
		k *= c.Gamma
	}
}

// Probability scheme: the moves are multiplied by a factor and the whole
// position renormalized. Draws damp both players.
type ProbStrategy struct {
	DrawFactor float64
	WinFactor  float64
}

// Create the probability strategy from the current package settings
func NewProbStrategy() *ProbStrategy {
	return &ProbStrategy{DrawFactor: DrawFactor, WinFactor: WinFactor}
}

func (p *ProbStrategy) NewScores(pos ttt.Board) *ProbScores {
	return NewProbScores(pos)
}

// Factor for the last move of the given player
func (p *ProbStrategy) factor(player ttt.Player, result ttt.GameResult) float64 {
	switch {
	case result.IsDraw():
		return p.DrawFactor
	case result.Winner == player:
		return p.WinFactor
	}
	return 1.0 / p.WinFactor
}

// Every player's moves are walked from the last one. The last move gets the
// full factor, each earlier one the cube root of the divisor the later move
// was renormalized with.
func (p *ProbStrategy) Backpropagate(values map[ttt.Board]*ProbScores, history []Ply, result ttt.GameResult) {
	for _, player := range [2]ttt.Player{ttt.Crosses, ttt.Naughts} {
		factor := p.factor(player, result)
		for i := len(history) - 1; i >= 0; i-- {
			ply := history[i]
			if ply.Player != player {
				continue
			}
			divisor := values[ply.Position].Multiply(ply.Move, factor)
			factor = math.Cbrt(divisor)
		}
	}
}
