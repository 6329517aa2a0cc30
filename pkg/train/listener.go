package train

type ListenerLike interface {
	OnSessionStart(limits Limits)
	OnFinishedChunk(stats ChunkStats)
	OnSessionStop(summary Summary)
}

type DefaultListener struct{}

func (DefaultListener) OnSessionStart(limits Limits) {}

func (DefaultListener) OnFinishedChunk(stats ChunkStats) {}

func (DefaultListener) OnSessionStop(summary Summary) {}

// Callback based listener, every callback is optional
type FuncListener struct {
	onStart func(Limits)
	onChunk func(ChunkStats)
	onStop  func(Summary)
}

func NewFuncListener() *FuncListener {
	return &FuncListener{}
}

// Attach a callback called once, before the first game is played
func (l *FuncListener) OnStart(onStart func(Limits)) *FuncListener {
	l.onStart = onStart
	return l
}

// Attach a callback called after every finished chunk, including the
// last partial one
func (l *FuncListener) OnChunk(onChunk func(ChunkStats)) *FuncListener {
	l.onChunk = onChunk
	return l
}

// Attach a callback called when the session stops (either by limits or 'stop' signal)
func (l *FuncListener) OnStop(onStop func(Summary)) *FuncListener {
	l.onStop = onStop
	return l
}

func (l *FuncListener) OnSessionStart(limits Limits) {
	if l.onStart != nil {
		l.onStart(limits)
	}
}

func (l *FuncListener) OnFinishedChunk(stats ChunkStats) {
	if l.onChunk != nil {
		l.onChunk(stats)
	}
}

func (l *FuncListener) OnSessionStop(summary Summary) {
	if l.onStop != nil {
		l.onStop(summary)
	}
}

// Distributes the events to all of its listeners, in order
type MultiListener []ListenerLike

func (m MultiListener) OnSessionStart(limits Limits) {
	for _, l := range m {
		l.OnSessionStart(limits)
	}
}

func (m MultiListener) OnFinishedChunk(stats ChunkStats) {
	for _, l := range m {
		l.OnFinishedChunk(stats)
	}
}

func (m MultiListener) OnSessionStop(summary Summary) {
	for _, l := range m {
		l.OnSessionStop(summary)
	}
}
