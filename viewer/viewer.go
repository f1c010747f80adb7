package viewer

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/meghashyamc/rotation2d/assets"
	"github.com/meghashyamc/rotation2d/config"
	"github.com/meghashyamc/rotation2d/logger"
)

// Viewer shows the rendered figure in a window until dismissed. The figure
// is already drawn; this only scales it to the window and handles input
type Viewer struct {
	cfg    *config.Config
	figure *ebiten.Image
	logger logger.Logger
}

// Show opens the window and blocks until it is closed. Failure to open a
// window (e.g. a headless host) is returned to the caller; the figure file
// is already on disk by then
func Show(cfg *config.Config, log logger.Logger, figure image.Image) error {
	v := &Viewer{
		cfg:    cfg,
		figure: ebiten.NewImageFromImage(figure),
		logger: log,
	}
	v.setupWindow()

	v.logger.Info("showing figure window", "title", cfg.GetWindowTitle())
	return ebiten.RunGame(v)
}

func (v *Viewer) setupWindow() {
	ebiten.SetWindowSize(v.cfg.GetWindowWidth(), v.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(v.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		v.logger.Info("closing figure window")
		return ebiten.Termination
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x1A, 0x1A, 0x2E, 0xFF})

	screenBounds := screen.Bounds()
	figureBounds := v.figure.Bounds()

	// Scale the figure to fit the window, preserving the square aspect
	scaleX := float64(screenBounds.Dx()) / float64(figureBounds.Dx())
	scaleY := float64(screenBounds.Dy()) / float64(figureBounds.Dy())
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(screenBounds.Dx())-float64(figureBounds.Dx())*scale)/2,
		(float64(screenBounds.Dy())-float64(figureBounds.Dy())*scale)/2,
	)
	screen.DrawImage(v.figure, op)

	hintText := "Press Esc or Q to close"
	hintOp := &text.DrawOptions{}
	hintOp.GeoM.Translate(20, float64(screenBounds.Dy())-30)
	hintOp.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, hintText, assets.HintFont, hintOp)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return v.cfg.GetWindowWidth(), v.cfg.GetWindowHeight()
}
