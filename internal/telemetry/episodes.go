// Package telemetry handles structured output for headless batch runs:
// per-episode CSV records and aggregate summaries.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/MarcelZelent/FunGame/internal/agent"
)

// EpisodeRecord is one row of episodes.csv.
type EpisodeRecord struct {
	Episode     int     `csv:"episode"`
	Seed        int64   `csv:"seed"`
	Policy      string  `csv:"policy"`
	Ticks       int     `csv:"ticks"`
	Score       int     `csv:"score"`
	TotalReward float64 `csv:"total_reward"`
	Terminated  bool    `csv:"terminated"`
}

// Record converts an episode result into a CSV record.
func Record(episode int, policy string, res agent.EpisodeResult) EpisodeRecord {
	return EpisodeRecord{
		Episode:     episode,
		Seed:        res.Seed,
		Policy:      policy,
		Ticks:       res.Ticks,
		Score:       res.Score,
		TotalReward: res.TotalReward,
		Terminated:  res.Terminated,
	}
}

// Writer appends episode records to an episodes.csv file inside the
// output directory. A nil Writer discards everything, so callers can
// run with output disabled without branching.
type Writer struct {
	file          *os.File
	headerWritten bool
}

// NewWriter creates the output directory and opens episodes.csv.
// Returns nil if dir is empty (output disabled).
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "episodes.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating episodes.csv: %w", err)
	}
	return &Writer{file: f}, nil
}

// Write appends one record, emitting the header on first use.
func (w *Writer) Write(rec EpisodeRecord) error {
	if w == nil {
		return nil
	}

	records := []EpisodeRecord{rec}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("writing episode record: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("writing episode record: %w", err)
	}
	return nil
}

// Close flushes and closes the output file.
func (w *Writer) Close() error {
	if w == nil || w.file == nil {
		return nil
	}
	return w.file.Close()
}

// Summary aggregates a batch of episode results.
type Summary struct {
	Episodes      int
	MeanScore     float64
	MaxScore      int
	MeanTicks     float64
	MeanReward    float64
	StdReward     float64
	BestReward    float64
	WorstReward   float64
	TerminatedPct float64
}

// Summarize computes batch statistics over episode results.
func Summarize(results []agent.EpisodeResult) Summary {
	s := Summary{Episodes: len(results)}
	if len(results) == 0 {
		return s
	}

	scores := make([]float64, len(results))
	ticks := make([]float64, len(results))
	rewards := make([]float64, len(results))
	terminated := 0

	s.BestReward = results[0].TotalReward
	s.WorstReward = results[0].TotalReward

	for i, r := range results {
		scores[i] = float64(r.Score)
		ticks[i] = float64(r.Ticks)
		rewards[i] = r.TotalReward
		if r.Score > s.MaxScore {
			s.MaxScore = r.Score
		}
		if r.TotalReward > s.BestReward {
			s.BestReward = r.TotalReward
		}
		if r.TotalReward < s.WorstReward {
			s.WorstReward = r.TotalReward
		}
		if r.Terminated {
			terminated++
		}
	}

	s.MeanScore = stat.Mean(scores, nil)
	s.MeanTicks = stat.Mean(ticks, nil)
	s.MeanReward = stat.Mean(rewards, nil)
	s.StdReward = stat.StdDev(rewards, nil)
	s.TerminatedPct = 100 * float64(terminated) / float64(len(results))
	return s
}
