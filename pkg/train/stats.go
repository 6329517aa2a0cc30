package train

import (
	"fmt"
	"time"

	"github.com/tage64/menace/pkg/ttt"
)

// Outcome counters of a number of training matches
type ResultCounts struct {
	Games        uint64 `json:"games"`
	Draws        uint64 `json:"draws"`
	CrossesWins  uint64 `json:"crosses_wins"`
	NaughtsWins  uint64 `json:"naughts_wins"`
	Resignations uint64 `json:"resignations"`
}

func (c *ResultCounts) Add(result ttt.GameResult) {
	c.Games++
	if result.IsDraw() {
		c.Draws++
		return
	}

	switch result.Winner {
	case ttt.Crosses:
		c.CrossesWins++
	case ttt.Naughts:
		c.NaughtsWins++
	}
	if result.Reason == ttt.Resignation {
		c.Resignations++
	}
}

func (c *ResultCounts) Merge(other ResultCounts) {
	c.Games += other.Games
	c.Draws += other.Draws
	c.CrossesWins += other.CrossesWins
	c.NaughtsWins += other.NaughtsWins
	c.Resignations += other.Resignations
}

func (c ResultCounts) percent(n uint64) float64 {
	if c.Games == 0 {
		return 0
	}
	return 100 * float64(n) / float64(c.Games)
}

func (c ResultCounts) DrawPercent() float64 {
	return c.percent(c.Draws)
}

func (c ResultCounts) CrossesPercent() float64 {
	return c.percent(c.CrossesWins)
}

func (c ResultCounts) NaughtsPercent() float64 {
	return c.percent(c.NaughtsWins)
}

// Share of all games that ended with a resignation, of either side
func (c ResultCounts) ResignationPercent() float64 {
	return c.percent(c.Resignations)
}

func (c ResultCounts) String() string {
	return fmt.Sprintf("draws: %.1f, wins: crosses: %.1f, naughts: %.1f, resignations: %.1f",
		c.DrawPercent(), c.CrossesPercent(), c.NaughtsPercent(), c.ResignationPercent())
}

// Statistics of a single chunk of a training session
type ChunkStats struct {
	ResultCounts
	Index     int           // 1-based
	Positions int           // positions known by the trainer at the end of the chunk
	Elapsed   time.Duration // since the session start
}

func (cs ChunkStats) String() string {
	return fmt.Sprintf("%d: %s", cs.Index, cs.ResultCounts.String())
}

// Aggregate of a whole session
type Summary struct {
	ResultCounts
	Chunks     int
	Positions  int
	Elapsed    time.Duration
	StopReason StopReason
}

func (s *Summary) addChunk(cs ChunkStats) {
	s.ResultCounts.Merge(cs.ResultCounts)
	s.Chunks++
	s.Positions = cs.Positions
	s.Elapsed = cs.Elapsed
}

// Games per second over the whole session
func (s Summary) Gps() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Games) / s.Elapsed.Seconds()
}

func (s Summary) String() string {
	return fmt.Sprintf("games: %d, chunks: %d, positions: %d, elapsed: %s, stop: %v, %s",
		s.Games, s.Chunks, s.Positions, s.Elapsed.Round(time.Millisecond), s.StopReason, s.ResultCounts.String())
}
