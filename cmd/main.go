// Package main starts Code Reader, a desktop file-tree browser with a tabbed
// text editor built on Fyne.
package main

import (
	"github.com/Akaiko1/code-reader/internal/config"
	"github.com/Akaiko1/code-reader/internal/log"
	"github.com/Akaiko1/code-reader/internal/ui"
)

func main() {
	log.Infof("Starting Code Reader...")

	cfg, err := config.Load()
	if err != nil {
		log.Warnf("Could not load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		log.Warnf("Unknown log level %q: %v", cfg.LogLevel, err)
	}
	log.Debugf("Config: Theme=%s, SidebarWidth=%g, Ignore=%v", cfg.Theme, cfg.SidebarWidth, cfg.Ignore)

	app, err := ui.NewCodeReaderApp(cfg)
	if err != nil {
		log.Errorf("Failed to start: %v", err)
		return
	}

	app.Run()
}
