package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"finwatch/internal/api"
	"finwatch/internal/config"
	"finwatch/internal/session"
	"finwatch/internal/ui"
	"finwatch/internal/util"
)

func main() {
	configPath := flag.String("config", "finwatch.yaml", "path to config file")
	flag.Parse()

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := util.OpenLogFile(cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := util.NewLogger(logFile, cfg.Logging.Level)
	util.SetDefault(logger)

	sess := session.New(cfg.Session.TokenPath)
	client := api.NewClient(cfg.API.BaseURL, sess,
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
		api.WithLogger(logger),
	)

	logger.Info("starting finwatch",
		"api", cfg.API.BaseURL,
		"authenticated", sess.Authenticated(),
	)

	p := tea.NewProgram(
		ui.NewRoot(sess, client, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
