package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

const chunkSchema = "menace_chunk_v1"

// ChunkRow is the statistics of one training chunk.
//
// Rates are percentages of the chunk's games. Elapsed is measured from the
// start of the run, so the last row of a run holds its total duration.
type ChunkRow struct {
	Run             string  `parquet:"run,dict"`
	Scheme          string  `parquet:"scheme,dict"`
	Seed            int64   `parquet:"seed"`
	Chunk           int32   `parquet:"chunk"`
	Games           int64   `parquet:"games"`
	Draws           int64   `parquet:"draws"`
	CrossesWins     int64   `parquet:"crosses_wins"`
	NaughtsWins     int64   `parquet:"naughts_wins"`
	Resignations    int64   `parquet:"resignations"`
	DrawRate        float32 `parquet:"draw_rate"`
	CrossesRate     float32 `parquet:"crosses_rate"`
	NaughtsRate     float32 `parquet:"naughts_rate"`
	ResignationRate float32 `parquet:"resignation_rate"`
	Positions       int64   `parquet:"positions"`
	ElapsedMs       int64   `parquet:"elapsed_ms"`
}

func WriteChunksParquet(outPath string, rows []ChunkRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Write to a temp file and rename atomically.
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", chunkSchema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

func ReadChunksParquet(path string) ([]ChunkRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	if schema, ok := pf.Lookup("schema"); !ok || schema != chunkSchema {
		return nil, fmt.Errorf("%s: unexpected schema %q", path, schema)
	}

	reader := parquet.NewGenericReader[ChunkRow](pf)
	defer reader.Close()

	rows := make([]ChunkRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows[:n], nil
}
