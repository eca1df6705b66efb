// Package main provides the entry point for the ideaboard TUI.
//
// Ideaboard is a mouse-driven terminal board for spatially organizing ideas:
// ideas live in a sidebar or in freely positioned category panels, get tagged
// with colored legend types, and every change is saved to the board server in
// the background.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ideaboard/internal/app"
	"ideaboard/internal/config"
	"ideaboard/internal/services/gateway"
)

var version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		serverURL  string
		project    string
		token      string
	)

	cmd := &cobra.Command{
		Use:          "ideaboard",
		Short:        "A spatial idea board in your terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.Server.URL = serverURL
			}
			if project != "" {
				cfg.Server.Project = project
			}
			if token != "" {
				cfg.Server.AccessToken = token
			}
			return runTUI(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the config file")
	cmd.Flags().StringVar(&serverURL, "server", "", "board server URL (overrides config)")
	cmd.Flags().StringVar(&project, "project", "", "project slug (overrides config)")
	cmd.Flags().StringVar(&token, "token", "", "access token (overrides config)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("ideaboard " + version)
		},
	})

	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
	}
	return config.LoadOrCreate(path)
}

func runTUI(cfg config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	client := gateway.NewClient(
		cfg.Server.URL,
		cfg.Server.Project,
		cfg.Server.AccessToken,
		&http.Client{Timeout: 15 * time.Second},
		logger,
	)

	model := app.New(&cfg, client, logger)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
