package menace

import (
	"math"
	"testing"

	"github.com/tage64/menace/pkg/ttt"
)

// a1 b1 a2 b2 a3: crosses complete the top row
func rowWinHistory(t *testing.T) []Ply {
	moves := []ttt.Move{0, 3, 1, 4, 2}
	history := make([]Ply, 0, len(moves))
	pos := ttt.EmptyBoard()
	turn := ttt.Crosses
	for _, m := range moves {
		history = append(history, Ply{Position: pos, Move: m, Player: turn})
		pos.Play(m, turn)
		turn = turn.Opponent()
	}
	if res, over := pos.Result(ttt.Crosses); !over || res != ttt.Win(ttt.Crosses, ttt.RowOrColumn) {
		t.Fatalf("history should end with a crosses win, got %v", res)
	}
	return history
}

func valuesFor[S ScoresLike](strategy StrategyLike[S], history []Ply) map[ttt.Board]S {
	values := make(map[ttt.Board]S, len(history))
	for _, ply := range history {
		values[ply.Position] = strategy.NewScores(ply.Position)
	}
	return values
}

func TestCountBackpropagate(t *testing.T) {
	history := rowWinHistory(t)
	result := ttt.Win(ttt.Crosses, ttt.RowOrColumn)

	tests := []struct {
		name   string
		gamma  float32
		result ttt.GameResult
		want   []uint32
	}{
		{"uniform credit", 1.0, result, []uint32{5, 3, 5, 3, 5}},
		// k = 1, 0.5, 0.25 rounds to 1, 1, 0
		{"decaying credit", 0.5, result, []uint32{5, 3, 5, 3, 4}},
		{"no credit after the first move", 0.0, result, []uint32{5, 3, 4, 4, 4}},
		{"draw", 1.0, ttt.Draw(), []uint32{4, 4, 4, 4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := &CountStrategy{InitialScore: 4, Gamma: tt.gamma}
			values := valuesFor[*CountScores](strategy, history)
			strategy.Backpropagate(values, history, tt.result)

			for i, ply := range history {
				if got := values[ply.Position].Score(ply.Move); got != tt.want[i] {
					t.Errorf("ply %d (%v %v): score = %d, want %d", i, ply.Player, ply.Move, got, tt.want[i])
				}
			}
		})
	}
}

// Score of a move after multiplying it by f, with n equally likely moves
func multiplied(n int, f float64) (score, divisor float64) {
	divisor = 1 + (f-1)/float64(n)
	return f / float64(n) / divisor, divisor
}

func TestProbBackpropagateWin(t *testing.T) {
	history := rowWinHistory(t)
	strategy := &ProbStrategy{DrawFactor: 0.9, WinFactor: 2}
	values := valuesFor[*ProbScores](strategy, history)
	strategy.Backpropagate(values, history, ttt.Win(ttt.Crosses, ttt.RowOrColumn))

	want := make([]float64, len(history))

	// Crosses, from the last move: a3 with 5 legal moves, a2 with 7, a1 with 9
	factor := 2.0
	for _, i := range []int{4, 2, 0} {
		var divisor float64
		want[i], divisor = multiplied(history[i].Position.LegalMoves().Len(), factor)
		factor = math.Cbrt(divisor)
	}

	// Naughts: b2 with 6 legal moves, b1 with 8
	factor = 0.5
	for _, i := range []int{3, 1} {
		var divisor float64
		want[i], divisor = multiplied(history[i].Position.LegalMoves().Len(), factor)
		factor = math.Cbrt(divisor)
	}

	for i, ply := range history {
		if got := values[ply.Position].Score(ply.Move); math.Abs(got-want[i]) > Epsilon {
			t.Errorf("ply %d (%v %v): score = %v, want %v", i, ply.Player, ply.Move, got, want[i])
		}
	}

	// The last winning move got the full factor: 0.2 * 2 / 1.2
	if got := values[history[4].Position].Score(2); math.Abs(got-1.0/3) > Epsilon {
		t.Errorf("winning move score = %v, want 1/3", got)
	}
}

func TestProbBackpropagateDraw(t *testing.T) {
	history := rowWinHistory(t)
	strategy := &ProbStrategy{DrawFactor: 0.9, WinFactor: 2}
	values := valuesFor[*ProbScores](strategy, history)
	strategy.Backpropagate(values, history, ttt.Draw())

	for i, ply := range history {
		n := ply.Position.LegalMoves().Len()
		if got := values[ply.Position].Score(ply.Move); got >= 1/float64(n) {
			t.Errorf("ply %d: score %v should be damped below %v", i, got, 1/float64(n))
		}
	}
}

func TestProbFactor(t *testing.T) {
	p := &ProbStrategy{DrawFactor: 0.8, WinFactor: 4}
	win := ttt.Win(ttt.Naughts, ttt.Resignation)

	if f := p.factor(ttt.Naughts, win); f != 4 {
		t.Errorf("winner factor = %v, want 4", f)
	}
	if f := p.factor(ttt.Crosses, win); f != 0.25 {
		t.Errorf("loser factor = %v, want 0.25", f)
	}
	if f := p.factor(ttt.Crosses, ttt.Draw()); f != 0.8 {
		t.Errorf("draw factor = %v, want 0.8", f)
	}
}

func TestSetters(t *testing.T) {
	defer func(score uint32, gamma float32, draw, win float64) {
		InitialScore, Gamma, DrawFactor, WinFactor = score, gamma, draw, win
	}(InitialScore, Gamma, DrawFactor, WinFactor)

	SetInitialScore(0)
	if InitialScore != 1 {
		t.Errorf("InitialScore = %d, want 1", InitialScore)
	}
	SetGamma(1.5)
	if Gamma != 1 {
		t.Errorf("Gamma = %v, want 1", Gamma)
	}
	SetDrawFactor(1.5)
	SetWinFactor(0.5)
	if DrawFactor != 0.9 || WinFactor != 2 {
		t.Errorf("invalid factors should be ignored, got %v %v", DrawFactor, WinFactor)
	}
	SetDrawFactor(0.5)
	SetWinFactor(3)
	if s := NewProbStrategy(); s.DrawFactor != 0.5 || s.WinFactor != 3 {
		t.Errorf("NewProbStrategy() = %+v", s)
	}
}
