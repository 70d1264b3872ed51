package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MoveRecord ties one move's search metrics to its game and turn.
type MoveRecord struct {
	Game   int
	Step   int
	Player string
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder of dir for one run's output.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "moves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create moves file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "strategy", "duration_us", "nodes", "leaf_evals", "completed_depth"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			r.Strategy,
			strconv.FormatInt(r.Duration.Microseconds(), 10),
			strconv.FormatInt(r.Nodes, 10),
			strconv.FormatInt(r.LeafEvals, 10),
			strconv.Itoa(r.CompletedDepth),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move record: %w", err)
		}
	}
	return nil
}
