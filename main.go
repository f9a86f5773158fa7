package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/geodatos/geoforms/app"
	"github.com/geodatos/geoforms/client"
	"github.com/geodatos/geoforms/config"
	"github.com/geodatos/geoforms/log"
	"github.com/geodatos/geoforms/session"
	"github.com/geodatos/geoforms/tui"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	sess := session.New(cfg.Token)

	app := app.App{
		Client:  client.New(cfg.APIUrl, sess),
		Session: sess,
		Config:  cfg,
	}

	log.Info("Starting geoforms against " + cfg.APIUrl)
	program := tea.NewProgram(tui.New(app), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatal("main.tui:", err)
	}
}
