package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/minevis/internal/config"
	"github.com/philipparndt/minevis/internal/logger"
	"github.com/philipparndt/minevis/pkg/dataset"
	"github.com/philipparndt/minevis/pkg/profile"
	"github.com/philipparndt/minevis/pkg/viewer"
	"github.com/philipparndt/minevis/pkg/watcher"
	"go.uber.org/zap"
)

type App struct {
	window     fyne.Window
	cfg        *config.Config
	renderer   *viewer.ProfileRenderer
	probeLabel *widget.Label
	infoLabel  *widget.Label
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: minevis-gui <dataset.json>")
		os.Exit(1)
	}
	path := os.Args[1]

	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	profiles, err := loadProfiles(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("MineVis - Section Profiles")

	gui := &App{
		window:     w,
		cfg:        cfg,
		renderer:   viewer.NewProfileRenderer(profiles, cfg.Profile),
		probeLabel: widget.NewLabel("Probe: tap a profile"),
		infoLabel:  widget.NewLabel(""),
	}
	gui.renderer.SetOnProbe(func(pt profile.Point, ok bool) {
		if ok {
			gui.probeLabel.SetText(fmt.Sprintf("Probe: %.1f m @ %.1f m elev", pt.Distance, pt.Z))
		} else {
			gui.probeLabel.SetText("Probe: no sample nearby")
		}
	})
	gui.updateInfo(profiles)

	// Reload when the dataset file changes on disk.
	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err == nil {
		defer fw.Close()
		fw.SetErrorHandler(func(watchErr error) {
			logger.Log.Warn("watcher error", zap.Error(watchErr))
		})
		err = fw.Watch([]string{path}, func(changed string) {
			reloaded, loadErr := loadProfiles(changed)
			if loadErr != nil {
				logger.Log.Warn("dataset reload failed", zap.Error(loadErr))
				return
			}
			logger.Log.Info("dataset reloaded", zap.String("file", changed))
			fyne.Do(func() {
				gui.renderer.SetProfiles(reloaded)
				gui.updateInfo(reloaded)
			})
		})
		if err != nil {
			logger.Log.Warn("file watch failed", zap.Error(err))
		}
	}

	zoomIn := widget.NewButton("Zoom In", gui.renderer.ZoomIn)
	zoomOut := widget.NewButton("Zoom Out", gui.renderer.ZoomOut)
	reset := widget.NewButton("Reset View", gui.renderer.ResetView)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to pan\n" +
			"• Scroll to zoom\n" +
			"• Tap near a profile to probe it",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Profiles:"),
		widget.NewSeparator(),
		gui.infoLabel,
		widget.NewSeparator(),
		gui.probeLabel,
		widget.NewSeparator(),
		zoomIn,
		zoomOut,
		reset,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(260, 0))

	content := container.NewBorder(nil, nil, nil, infoScroll, gui.renderer)
	w.SetContent(content)
	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) updateInfo(profiles []profile.Profile) {
	bounds := a.renderer.View().Bounds()
	info := ""
	for _, p := range profiles {
		info += fmt.Sprintf("%s (%d pts)\n", p.Name, len(p.Points))
	}
	info += fmt.Sprintf("\nDistance: %.1f .. %.1f m\nElevation: %.1f .. %.1f m",
		bounds.MinDistance, bounds.MaxDistance, bounds.MinZ, bounds.MaxZ)
	a.infoLabel.SetText(info)
}

func loadProfiles(path string) ([]profile.Profile, error) {
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	if len(ds.Profiles) == 0 {
		return nil, fmt.Errorf("dataset %s contains no profiles", path)
	}
	return ds.Profiles, nil
}
