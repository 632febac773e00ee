package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2/app"

	"fieldlock/assets"
	"fieldlock/pkg/audit"
	"fieldlock/pkg/config"
	"fieldlock/pkg/lockhint"
	"fieldlock/pkg/lockscreen"
	"fieldlock/pkg/logger"
	"fieldlock/pkg/singleinstance"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	configPath := flag.String("config", config.Path(), "path to the config file")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	if err := logger.Init(logger.GetLogDir(), logger.ParseLevel(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		// Continue without file logging
	}

	logger.Info("FieldLock v%s starting", Version)

	release, err := singleinstance.Acquire("fieldlock")
	if err != nil {
		logger.Info("Not starting: %v", err)
		return
	}
	defer release()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		logger.Warn("Config file ignored, using defaults: %v", err)
	}

	journal, err := audit.Open(audit.DefaultPath())
	if err != nil {
		logger.Warn("Audit journal unavailable: %v", err)
	}
	defer journal.Close()

	hint, err := lockhint.New()
	if err != nil {
		logger.Debug("Locked-hint announcer unavailable: %v", err)
	}
	defer hint.Close()

	// A lock screen that dies to Ctrl+C is not a lock screen: signals are
	// logged and dropped, only the unlock path exits.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for sig := range sigChan {
			logger.Warn("Ignoring signal %v: only a correct passcode unlocks", sig)
		}
	}()

	fyneApp := app.NewWithID("com.fieldlock.app")
	fyneApp.SetIcon(assets.AppIcon())
	fyneApp.Settings().SetTheme(&lockscreen.Theme{})

	manager := lockscreen.NewManager(fyneApp, cfg, *configPath, journal, hint)

	watcher := config.NewWatcher(*configPath)
	watcher.OnChange(manager.OnConfigReload)
	if err := watcher.Start(); err != nil {
		logger.Warn("Config watcher not started: %v", err)
	} else {
		defer watcher.Close()
		go func() {
			for err := range watcher.Errors() {
				logger.Warn("Config watcher: %v", err)
			}
		}()
	}

	windows := manager.Start()
	journal.LockStart(windows)
	logger.Info("Locked %d display(s)", windows)

	fyneApp.Run()

	journal.LockEnd()
	logger.Info("Unlocked, exiting")
}
