package commands

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SiddiqueAhmad/ai-costing/internal/analyzer"
	"github.com/SiddiqueAhmad/ai-costing/internal/core/pricing"
	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

var (
	watchInterval time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch [flags]",
		Short: "Continuously re-render the cost report",
		Long: `Runs the pipeline in a loop, re-rendering the report every interval.
The feed cache still honors its TTL, so a short interval does not hammer
the sheet. When a rate card file is in use, edits to it take effect on
the next render without restarting.`,
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 10*time.Second,
		"Delay between renders")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	a, err := analyzer.New(buildConfig())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Rate config edits refresh the provider and drop the cached feed so the
	// next render reprices everything.
	if cfg := buildConfig(); cfg.ConfigPath != "" {
		watcher, err := pricing.NewConfigWatcher(cfg.ConfigPath, func() {
			util.LogInfo("Rate configuration changed, refreshing")
			if err := a.Provider().Refresh(ctx); err != nil {
				util.LogWarn("Rate refresh failed: " + err.Error())
				return
			}
			a.Cache().Invalidate()
		})
		if err != nil {
			return fmt.Errorf("watching rate config: %w", err)
		}
		defer watcher.Close()
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		// ANSI clear so each render replaces the previous one
		fmt.Print("\033[H\033[2J")
		if err := a.Run(ctx); err != nil {
			util.LogError("Render failed: " + err.Error())
			fmt.Println("Waiting for data source...")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
