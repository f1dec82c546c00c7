package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

func run() error {
	cfg := settingsFromFlags()
	if err := cfg.validate(); err != nil {
		return err
	}

	g := newGame(cfg, newWallClock())
	defer g.close()

	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(defaultWindowWidth, defaultWindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(windowTitle)

	runGame := func() error {
		if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	}
	if cfg.cpuProfile == "" {
		return runGame()
	}
	return profileCPU(cfg.cpuProfile, runGame)
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		ErrorLogger.Print(err)
		os.Exit(1)
	}
}
