package train

import (
	"strings"
	"testing"
	"time"

	"github.com/tage64/menace/pkg/ttt"
)

func TestResultCountsPercent(t *testing.T) {
	var c ResultCounts
	if c.DrawPercent() != 0 {
		t.Error("Empty counts should have 0 percent draws")
	}

	c.Add(ttt.Draw())
	c.Add(ttt.Win(ttt.Crosses, ttt.Diagonal))
	c.Add(ttt.Win(ttt.Naughts, ttt.Resignation))
	c.Add(ttt.Win(ttt.Naughts, ttt.RowOrColumn))

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"draws", c.DrawPercent(), 25},
		{"crosses", c.CrossesPercent(), 25},
		{"naughts", c.NaughtsPercent(), 50},
		{"resignations", c.ResignationPercent(), 25},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %.1f%%, got %.1f%%", tt.name, tt.want, tt.got)
		}
	}

	want := "draws: 25.0, wins: crosses: 25.0, naughts: 50.0, resignations: 25.0"
	if c.String() != want {
		t.Errorf("Expected %q, got %q", want, c.String())
	}
}

func TestChunkStatsString(t *testing.T) {
	cs := ChunkStats{Index: 3}
	cs.Add(ttt.Draw())
	cs.Add(ttt.Draw())
	want := "3: draws: 100.0, wins: crosses: 0.0, naughts: 0.0, resignations: 0.0"
	if cs.String() != want {
		t.Errorf("Expected %q, got %q", want, cs.String())
	}
}

func TestSummaryGps(t *testing.T) {
	s := Summary{Elapsed: 2 * time.Second}
	s.Games = 100
	if s.Gps() != 50 {
		t.Errorf("Expected 50 games per second, got %f", s.Gps())
	}
	if (Summary{}).Gps() != 0 {
		t.Error("Expected 0 games per second without elapsed time")
	}
}

func TestStopReasonString(t *testing.T) {
	tests := []struct {
		reason StopReason
		want   string
	}{
		{StopNone, "None"},
		{StopGames, "Games"},
		{StopInterrupt | StopMovetime, "Interrupt|Movetime"},
		{StopInterrupt | StopMovetime | StopGames, "Interrupt|Movetime|Games"},
	}
	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestLimits(t *testing.T) {
	l := DefaultLimits()
	if l.Games != DefaultGamesLimit || l.Chunks != DefaultChunks || l.Movetime != DefaultMovetimeLimit {
		t.Errorf("Unexpected default limits %v", l)
	}
	if l.ChunkSize() != 2_500_000 {
		t.Errorf("Expected chunk size 2500000, got %d", l.ChunkSize())
	}

	l.SetChunks(0)
	if l.Chunks != 1 {
		t.Errorf("Expected chunks to be clamped to 1, got %d", l.Chunks)
	}

	s := l.SetGames(8).SetMovetime(100).String()
	if !strings.Contains(s, `"Games":8`) || !strings.Contains(s, `"Movetime":100`) {
		t.Errorf("Unexpected limits json %q", s)
	}
}
