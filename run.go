package hovertip

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Config is applied to the scene before the loop starts. Nil means
	// DefaultConfig.
	Config *Config
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.SetScreenSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until the window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	sceneCfg := DefaultConfig()
	if cfg.Config != nil {
		sceneCfg = *cfg.Config
	}
	if err := scene.ApplyConfig(sceneCfg); err != nil {
		return fmt.Errorf("hovertip: run: %w", err)
	}

	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		scene.SetScreenSize(float64(cfg.Width), float64(cfg.Height))
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game{scene: scene}); err != nil {
		return fmt.Errorf("hovertip: run: %w", err)
	}
	return nil
}
