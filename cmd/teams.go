package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"siege-companion/internal/catalog"
)

var (
	teamsInput   string
	teamsCatalog string
)

// teamsCmd represents the teams command
var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Normalize imported team lists to canonical names",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTeams(teamsInput, teamsCatalog)
	},
}

func init() {
	rootCmd.AddCommand(teamsCmd)

	teamsCmd.Flags().StringVarP(
		&teamsInput,
		"input",
		"i",
		"",
		"path to teams CSV (one team per row)",
	)
	teamsCmd.MarkFlagRequired("input")

	teamsCmd.Flags().StringVarP(
		&teamsCatalog,
		"catalog",
		"m",
		"",
		"optional path to monster catalog for fuzzy matching",
	)
}

func runTeams(inputPath, catalogPath string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	engine, err := loadEngine(settings)
	if err != nil {
		return err
	}

	teams, err := catalog.ParseTeams(inputPath)
	if err != nil {
		return fmt.Errorf("parse teams: %w", err)
	}

	var vocabulary []string
	if catalogPath != "" {
		monsters, err := catalog.ParseFile(catalogPath)
		if err != nil {
			return fmt.Errorf("parse catalog: %w", err)
		}
		vocabulary = catalog.Names(monsters)
	}

	fmt.Printf("Got %d teams.\n", len(teams))

	resolved := engine.Teams(teams, vocabulary, settings.ImportThreshold)
	for _, team := range resolved {
		fmt.Println(strings.Join(team, ", "))
	}
	return nil
}
