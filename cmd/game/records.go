// cmd/game/records.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-iso-arena/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the best finished runs",
	Long: `Display finished runs ordered by best wave, then kills.

Examples:
  arena records
  arena records --limit 20
  arena records --clear`,
	Args: cobra.NoArgs,
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all records")
}

func runRecords(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing records: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Records cleared.")
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arena play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-5s  %-12s  %s\n", "Rank", "Wave", "Kills", "Bosses", "Level", "Seed", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-5s  %-12s  %s\n", "----", "----", "-----", "------", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-5d  %-6d  %-6d  %-5d  %-12d  %s\n",
			i+1, r.BestWave, r.Kills, r.BossKills, r.Level, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
