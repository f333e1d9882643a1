package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/shader-backdrop/internal/config"
	"github.com/iburimskiy/shader-backdrop/internal/game"
	"github.com/iburimskiy/shader-backdrop/internal/prefs"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "backdrop",
	Short: "Animated portfolio background",
	Long: `backdrop opens a window with the animated background of the portfolio
page: a pointer-tinted gradient, drifting waves and a ring of particles,
with the page header, menu and sections drawn on top.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		manager, err := prefs.OpenManager(prefs.AppName)
		if err != nil {
			log.Printf("[Prefs] Warning: %v (preferences will not be saved)", err)
		}
		store := prefs.NewStore(manager)

		g, err := game.New(settings, store, newLogger())
		if err != nil {
			return err
		}
		return game.Run(g)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "backdrop.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return settings, nil
}

// newLogger returns the logger for debug chatter; silent unless --verbose.
func newLogger() *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}
