package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Resolve a search query to canonical monster names",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(query string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	engine, err := loadEngine(settings)
	if err != nil {
		return err
	}

	res := engine.Search(query)
	if res.Collab != "" {
		fmt.Printf("Collab term %q matches %s.\n", query, res.Collab)
		fmt.Println("Search by:")
		for _, v := range res.Variants {
			fmt.Printf("  %s\n", v)
		}
		return nil
	}

	fmt.Println(res.Canonical)
	return nil
}
