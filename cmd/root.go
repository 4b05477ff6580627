package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"siege-companion/internal/config"
	"siege-companion/internal/namedata"
	"siege-companion/internal/resolve"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "siege-companion",
	Short: "Monster name normalization and matching tools",
	Long: `Resolves inconsistent, collab-branded or AI-detected monster names
against a canonical catalog: alias resolution, fuzzy matching and
element-qualification expansion.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"",
		"path to config file",
	)
}

func loadSettings() (config.Settings, error) {
	if cfgFile == "" {
		return config.Defaults(), nil
	}
	return config.Load(cfgFile)
}

func loadEngine(settings config.Settings) (*resolve.Engine, error) {
	if settings.NameData == "" {
		return resolve.NewDefaultEngine(), nil
	}
	set, err := namedata.Load(settings.NameData)
	if err != nil {
		return nil, fmt.Errorf("load name data: %w", err)
	}
	return resolve.NewEngine(set), nil
}
