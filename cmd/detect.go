package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"siege-companion/internal/catalog"
)

var (
	detectInput    string
	detectCatalog  string
	detectDefenses string
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Reconcile detected screenshot labels against the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetect(detectInput, detectCatalog, detectDefenses)
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVarP(
		&detectInput,
		"input",
		"i",
		"",
		"path to detected name list (one per line)",
	)
	detectCmd.MarkFlagRequired("input")

	detectCmd.Flags().StringVarP(
		&detectCatalog,
		"catalog",
		"m",
		"",
		"path to monster catalog (.csv or .json)",
	)
	detectCmd.MarkFlagRequired("catalog")

	detectCmd.Flags().StringVarP(
		&detectDefenses,
		"defenses",
		"d",
		"",
		"optional path to known defense monster names (one per line)",
	)
}

func runDetect(inputPath, catalogPath, defensesPath string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	engine, err := loadEngine(settings)
	if err != nil {
		return err
	}

	detected, err := catalog.ParseNameList(inputPath)
	if err != nil {
		return fmt.Errorf("parse detected names: %w", err)
	}

	monsters, err := catalog.ParseFile(catalogPath)
	if err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}
	vocabulary := catalog.Names(monsters)
	groups := catalog.AmbiguousElements(monsters)

	var defenseNames []string
	if defensesPath != "" {
		defenseNames, err = catalog.ParseNameList(defensesPath)
		if err != nil {
			return fmt.Errorf("parse defense names: %w", err)
		}
	}

	runID := uuid.NewString()
	fmt.Printf("--- Detection run %s ---\n", runID)
	fmt.Printf("Got %d detected labels, %d catalog names, %d ambiguous bases.\n",
		len(detected), len(vocabulary), len(groups))

	result := engine.Detect(detected, vocabulary, defenseNames, groups, settings.DetectThreshold)

	fmt.Printf("Confirmed %d monsters.\n", len(result.Confirmed))
	for _, name := range result.Display {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
