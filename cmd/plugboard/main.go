package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/ingyamilmolinar/plugboard/internal/config"
	game_log "github.com/ingyamilmolinar/plugboard/internal/log"
	"github.com/ingyamilmolinar/plugboard/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		logLevel string
	)
	cmd := &cobra.Command{
		Use:          "plugboard",
		Short:        "Patch cables between ports by dragging plugs",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			logger := game_log.NewConsole(cmd.ErrOrStderr(), game_log.LevelFromString(cfg.LogLevel))

			board, err := ui.NewBoard(cfg, logger)
			if err != nil {
				return err
			}
			ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			ebiten.SetWindowTitle(cfg.Window.Title)
			logger.Infof("[MAIN] Starting %s (%dx%d)", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
			if err := ebiten.RunGame(board); err != nil {
				return fmt.Errorf("run: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "board YAML file (built-in demo board when empty)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn, error or none (overrides the config)")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
