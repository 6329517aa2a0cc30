package train

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	Games    uint64
	Chunks   int
	Movetime int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultGamesLimit    uint64 = 10_000_000
	DefaultChunks        int    = 4
	DefaultMovetimeLimit int    = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Games:    DefaultGamesLimit,
		Chunks:   DefaultChunks,
		Movetime: DefaultMovetimeLimit,
	}
}

// Set the number of training matches to play
func (l *Limits) SetGames(games uint64) *Limits {
	l.Games = games
	return l
}

// Set in how many chunks the statistics are reported
func (l *Limits) SetChunks(chunks int) *Limits {
	l.Chunks = max(1, chunks)
	return l
}

// Set the maximum time to train, in milliseconds
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	return l
}

// Number of games in a full chunk
func (l *Limits) ChunkSize() uint64 {
	return max(1, l.Games/uint64(max(1, l.Chunks)))
}
