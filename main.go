package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"isolation/engine"
	"isolation/metrics"
	"isolation/searcher"
)

func main() {
	width := flag.Int("width", 7, "Board width")
	height := flag.Int("height", 7, "Board height")
	budget := flag.Duration("budget", 150*time.Millisecond, "Wall-clock budget per move")
	games := flag.Int("games", 10, "Number of games to play")
	out := flag.String("out", "experiments", "Directory for metrics output")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	writer, err := metrics.NewWriter(*out)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up metrics writer")
	}

	// Minimax opens, alphabeta replies; strength comparison comes from the
	// per-move depth and leaf counts in the metrics output.
	fmt.Printf("Running %d games of minimax vs alphabeta on %dx%d...\n", *games, *width, *height)
	wins := map[string]int{}
	var records []metrics.MoveRecord
	for i := 1; i <= *games; i++ {
		minimaxCollector := metrics.NewCollector()
		alphabetaCollector := metrics.NewCollector()

		first := searcher.NewAgent(
			searcher.WithStrategy(searcher.Minimax),
			searcher.WithCollector(minimaxCollector),
		)
		second := searcher.NewAgent(
			searcher.WithStrategy(searcher.AlphaBeta),
			searcher.WithCollector(alphabetaCollector),
		)

		match := engine.NewLocal(*width, *height, first, second, *budget)
		match.Collectors["player1"] = minimaxCollector
		match.Collectors["player2"] = alphabetaCollector

		winner, moves := match.Run()
		for j := range moves {
			moves[j].Game = i
		}
		records = append(records, moves...)
		wins[string(winner)]++

		fmt.Printf("Game %d over! Winner: %s\n", i, winner)
	}

	if err := writer.WriteMoveRecords(records); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
	fmt.Printf("Finished: minimax %d, alphabeta %d\n", wins["player1"], wins["player2"])
}
