package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// RunRecord is one row of experiment output: a single simulation run and
// the headline numbers extracted from it.
type RunRecord struct {
	ID             int
	Workers        int
	Trials         int
	StandEV        float64
	WinProbability float64
	Duration       time.Duration
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped output directory for one experiment.
func NewWriter(experiment string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", experiment, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	path := filepath.Join(w.baseDir, "runs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create runs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "workers", "trials", "stand_ev", "win_probability", "duration_ms"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write runs header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Workers),
			strconv.Itoa(r.Trials),
			strconv.FormatFloat(r.StandEV, 'f', -1, 64),
			strconv.FormatFloat(r.WinProbability, 'f', -1, 64),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write run record: %w", err)
		}
	}
	return nil
}
