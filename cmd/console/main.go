package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-console/internal/client"
	"github.com/rogerio-castellano/inventory-console/internal/config"
	"github.com/rogerio-castellano/inventory-console/internal/logging"
	"github.com/rogerio-castellano/inventory-console/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}

	logger, err := logging.NewFile(logPath(cfg.LogFile), cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error setting up logging:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	repo := client.NewHTTPRepository(cfg.APIBaseURL, cfg.APITimeout)
	logger.Info("starting console", zap.String("api", cfg.APIBaseURL))

	p := tea.NewProgram(tui.New(repo, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("console exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// logPath defaults to the user cache directory when no log file is
// configured, falling back to disabled logging if that is unavailable.
func logPath(configured string) string {
	if configured != "" {
		return configured
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(cacheDir, "inventory-console")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ""
	}
	return filepath.Join(dir, "console.log")
}
