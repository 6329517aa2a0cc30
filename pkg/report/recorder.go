package report

import (
	"github.com/tage64/menace/pkg/train"
)

// Recorder is a training listener collecting every chunk as a parquet row
type Recorder struct {
	train.DefaultListener
	Run    string
	Scheme string
	Seed   int64
	rows   []ChunkRow
}

func NewRecorder(run, scheme string, seed int64) *Recorder {
	return &Recorder{Run: run, Scheme: scheme, Seed: seed}
}

func (r *Recorder) OnSessionStart(limits train.Limits) {
	r.rows = make([]ChunkRow, 0, limits.Chunks+1)
}

func (r *Recorder) OnFinishedChunk(stats train.ChunkStats) {
	r.rows = append(r.rows, r.row(stats))
}

func (r *Recorder) row(stats train.ChunkStats) ChunkRow {
	return ChunkRow{
		Run:             r.Run,
		Scheme:          r.Scheme,
		Seed:            r.Seed,
		Chunk:           int32(stats.Index),
		Games:           int64(stats.Games),
		Draws:           int64(stats.Draws),
		CrossesWins:     int64(stats.CrossesWins),
		NaughtsWins:     int64(stats.NaughtsWins),
		Resignations:    int64(stats.Resignations),
		DrawRate:        float32(stats.DrawPercent()),
		CrossesRate:     float32(stats.CrossesPercent()),
		NaughtsRate:     float32(stats.NaughtsPercent()),
		ResignationRate: float32(stats.ResignationPercent()),
		Positions:       int64(stats.Positions),
		ElapsedMs:       stats.Elapsed.Milliseconds(),
	}
}

func (r *Recorder) Rows() []ChunkRow {
	return r.rows
}

// Write the collected rows, see WriteChunksParquet
func (r *Recorder) Save(outPath string) error {
	return WriteChunksParquet(outPath, r.rows)
}
