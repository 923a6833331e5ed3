package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seal-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Title", "Mouse")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "-----", "-----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, g.ID, g.Title, mouseHint(g.ID))
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play in the terminal,")
	fmt.Println("or 'arcade window <id>' to open a desktop window.")
}

// mouseHint describes how the mouse controls a game.
func mouseHint(gameID string) string {
	game, err := registry.Create(gameID)
	if err != nil {
		return "-"
	}
	if registry.UsesPointer(game) {
		return "pointer"
	}
	return "buttons"
}
