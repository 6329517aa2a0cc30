package train

import (
	"context"
	"sync/atomic"
	"time"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // Stopped by calling Stop() or context cancellation
	StopMovetime  StopReason = 2 // Time limit reached
	StopGames     StopReason = 4 // All games played
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopGames, "Games"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

// Decides when a training session has to stop. Stop may be called from any goroutine,
// everything else belongs to the session's goroutine.
type Limiter struct {
	limits *Limits
	timer  *_Timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter(limits *Limits) *Limiter {
	return &Limiter{
		limits: limits,
		timer:  _NewTimer(),
		ctx:    context.Background(),
	}
}

// Reset the limiter's flags, called on session start
func (l *Limiter) Reset() {
	l.timer.Movetime(l.limits.Movetime)
	l.timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) SetContext(ctx context.Context) {
	l.ctx = ctx
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Ask the session to stop after the current game
func (l *Limiter) Stop() {
	l.stop.Store(true)
}

func (l *Limiter) Stopped() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) Elapsed() time.Duration {
	return l.timer.Elapsed()
}

func (l *Limiter) limitMask(games uint64) StopReason {
	reason := StopNone
	if l.Stopped() {
		reason |= StopInterrupt
	}
	if l.timer.IsEnd() {
		reason |= StopMovetime
	}
	if games >= l.limits.Games {
		reason |= StopGames
	}
	return reason
}

// Whether another game can be played
func (l *Limiter) Ok(games uint64) bool {
	return l.limitMask(games) == StopNone
}

// Evaluate and remember why the session stopped
func (l *Limiter) EvaluateStopReason(games uint64) StopReason {
	l.reason = l.limitMask(games)
	return l.reason
}

// Get the reason why the session was stopped, valid after it ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}
