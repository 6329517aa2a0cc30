package train

import (
	"context"

	"github.com/tage64/menace/pkg/ttt"
)

/*
Training session, plays a series of self-play matches on a single machine,
reporting the outcome statistics in chunks.
*/

// Anything able to play a training match against itself, learning from it
type TrainerLike interface {
	PlayTrainingMatch() ttt.GameResult
	Positions() int
}

type Session struct {
	Trainer  TrainerLike
	Limiter  *Limiter
	listener ListenerLike
	summary  Summary
}

func NewSession(trainer TrainerLike, limits *Limits) *Session {
	return &Session{
		Trainer:  trainer,
		Limiter:  NewLimiter(limits),
		listener: DefaultListener{},
	}
}

func (s *Session) WithContext(ctx context.Context) *Session {
	s.Limiter.SetContext(ctx)
	return s
}

func (s *Session) WithListener(listener ListenerLike) *Session {
	if listener == nil {
		listener = DefaultListener{}
	}
	s.listener = listener
	return s
}

func (s *Session) SetLimits(limits *Limits) {
	s.Limiter.SetLimits(limits)
}

func (s *Session) Limits() *Limits {
	return s.Limiter.Limits()
}

// Ask the session to stop after the current match, safe to call from other goroutines
func (s *Session) Stop() {
	s.Limiter.Stop()
}

// Summary of the last run
func (s *Session) Summary() Summary {
	return s.summary
}

// Play matches until one of the limits is reached, blocks the calling goroutine.
// Every chunk is reported to the listener, the last chunk may hold fewer games.
func (s *Session) Run() Summary {
	limits := s.Limiter.Limits()
	chunkSize := limits.ChunkSize()

	s.summary = Summary{}
	s.Limiter.Reset()
	s.listener.OnSessionStart(*limits)

	chunk := ChunkStats{Index: 1}
	games := uint64(0)
	for s.Limiter.Ok(games) {
		chunk.Add(s.Trainer.PlayTrainingMatch())
		games++

		if chunk.Games == chunkSize {
			s.finishChunk(&chunk)
		}
	}

	if chunk.Games > 0 {
		s.finishChunk(&chunk)
	}

	s.summary.Positions = s.Trainer.Positions()
	s.summary.Elapsed = s.Limiter.Elapsed()
	s.summary.StopReason = s.Limiter.EvaluateStopReason(games)
	s.listener.OnSessionStop(s.summary)
	return s.summary
}

func (s *Session) finishChunk(chunk *ChunkStats) {
	chunk.Positions = s.Trainer.Positions()
	chunk.Elapsed = s.Limiter.Elapsed()
	s.summary.addChunk(*chunk)
	s.listener.OnFinishedChunk(*chunk)
	*chunk = ChunkStats{Index: chunk.Index + 1}
}
