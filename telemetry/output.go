package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/strobework/cubestorm/config"
)

// FPSRecord is one row of the frame-rate report CSV.
type FPSRecord struct {
	Elapsed  float64 `csv:"elapsed_sec"`
	Entities uint32  `csv:"entities"`
	Batches  uint32  `csv:"batches"`
	AvgFPS   float64 `csv:"avg_fps"`
}

// OutputManager writes telemetry artifacts to a run directory.
// A nil OutputManager is valid and discards all writes.
type OutputManager struct {
	dir string

	fpsFile          *os.File
	fpsHeaderWritten bool

	perfFile          *os.File
	perfHeaderWritten bool
}

// NewOutputManager creates the output directory and returns a manager for it.
// An empty dir returns a nil manager, which disables file output.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// Dir returns the output directory, or "" when output is disabled.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig snapshots the effective configuration into the run directory.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	path := filepath.Join(om.dir, "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		return fmt.Errorf("writing config snapshot: %w", err)
	}
	return nil
}

// WriteFPS appends one frame-rate report row to fps.csv.
func (om *OutputManager) WriteFPS(rec FPSRecord) error {
	if om == nil {
		return nil
	}
	if om.fpsFile == nil {
		f, err := os.Create(filepath.Join(om.dir, "fps.csv"))
		if err != nil {
			return fmt.Errorf("creating fps.csv: %w", err)
		}
		om.fpsFile = f
	}

	rows := []FPSRecord{rec}
	if !om.fpsHeaderWritten {
		if err := gocsv.Marshal(rows, om.fpsFile); err != nil {
			return fmt.Errorf("writing fps.csv: %w", err)
		}
		om.fpsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, om.fpsFile); err != nil {
		return fmt.Errorf("writing fps.csv: %w", err)
	}
	return nil
}

// WritePerf appends one frame-timing stats row to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd float64) error {
	if om == nil {
		return nil
	}
	if om.perfFile == nil {
		f, err := os.Create(filepath.Join(om.dir, "perf.csv"))
		if err != nil {
			return fmt.Errorf("creating perf.csv: %w", err)
		}
		om.perfFile = f
	}

	rows := []PerfStatsCSV{stats.ToCSV(windowEnd)}
	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(rows, om.perfFile); err != nil {
			return fmt.Errorf("writing perf.csv: %w", err)
		}
		om.perfHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, om.perfFile); err != nil {
		return fmt.Errorf("writing perf.csv: %w", err)
	}
	return nil
}

// Close flushes and closes all open output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	if om.fpsFile != nil {
		if err := om.fpsFile.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing fps.csv: %w", err)
		}
		om.fpsFile = nil
	}
	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing perf.csv: %w", err)
		}
		om.perfFile = nil
	}
	return firstErr
}
