package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriterWritesMoveRecords(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	records := []MoveRecord{
		{Game: 1, Step: 1, Player: "player1", SearchMetric: SearchMetric{
			Strategy: "minimax", Duration: 3 * time.Millisecond, Nodes: 40, LeafEvals: 25, CompletedDepth: 3,
		}},
		{Game: 1, Step: 2, Player: "player2", SearchMetric: SearchMetric{
			Strategy: "alphabeta", Duration: 2 * time.Millisecond, Nodes: 20, LeafEvals: 9, CompletedDepth: 4,
		}},
	}
	require.NoError(t, w.WriteMoveRecords(records))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "writer should create one timestamped run folder")

	f, err := os.Open(filepath.Join(dir, entries[0].Name(), "moves.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "a header plus one row per record")
	require.Equal(t, []string{"1", "1", "player1", "minimax", "3000", "40", "25", "3"}, rows[1])
	require.Equal(t, []string{"1", "2", "player2", "alphabeta", "2000", "20", "9", "4"}, rows[2])
}
