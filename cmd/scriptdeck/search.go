package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/library"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find scripts by name across the whole library",
	Long: `Search recursively for scripts whose filename contains the given
term (case-insensitive) and print their path, size, and age.

Examples:
  scriptdeck search herencia
  scriptdeck search hello ~/courses/poo`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

// runSearch performs a recursive filename search over the library.
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args[1:])
	if err != nil {
		return err
	}

	lib := library.New(cfg.Library.Root, cfg.Library.ScriptExt)

	matches, err := lib.Search(args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(matches) == 0 {
		fmt.Printf("No scripts matching %q under %s\n", args[0], cfg.Library.Root)
		return nil
	}

	for _, m := range matches {
		fmt.Printf("%-10s %-16s %s\n",
			humanize.Bytes(uint64(m.Size)), humanize.Time(m.ModTime), m.Path)
	}
	fmt.Printf("\n%d script(s) found\n", len(matches))

	return nil
}
