package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scene-arcade/internal/registry"
	"github.com/vovakirdan/scene-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its best recorded score.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	var best func(string) (int, error)
	// The list still works without a readable database, just without scores.
	if store, err := storage.Open(flagDBPath); err == nil {
		defer store.Close()
		best = store.HighScore
	}
	writeList(os.Stdout, registry.List(), best)
}

// writeList prints the game table. best may be nil.
func writeList(w io.Writer, games []registry.GameInfo, best func(string) (int, error)) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Best")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "----")
	for _, g := range games {
		score := "-"
		if best != nil {
			if hs, err := best(g.ID); err == nil && hs > 0 {
				score = fmt.Sprint(hs)
			}
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, g.ID, titleW, g.Title, score)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game.")
}
