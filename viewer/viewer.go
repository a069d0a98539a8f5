// Package viewer shows a rendered chart in a window until it is closed.
package viewer

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/meghashyamc/gimbalmirror/assets"
	"github.com/meghashyamc/gimbalmirror/chart"
	"github.com/meghashyamc/gimbalmirror/config"
	"github.com/meghashyamc/gimbalmirror/logger"
)

// CaptionHeight is the height of the caption band under the chart.
const CaptionHeight = 2*assets.CaptionFontSize + 8

type Viewer struct {
	cfg     *config.Config
	source  image.Image
	caption string
	logger  logger.Logger

	frame         *ebiten.Image
	width, height int
}

func New(source image.Image, caption string, cfg *config.Config, log logger.Logger) *Viewer {
	return &Viewer{
		cfg:     cfg,
		source:  source,
		caption: caption,
		logger:  log,
		width:   cfg.GetWindowWidth(),
		height:  cfg.GetWindowHeight(),
	}
}

func (v *Viewer) Run() error {
	v.logger.Info("opening chart window", "width", v.width, "height", v.height)
	v.setupWindow()

	// Running the viewer calls Update() on every 'tick'
	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (v *Viewer) setupWindow() {
	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowTitle(v.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		v.logger.Debug("chart window closed")
		return ebiten.Termination
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	chartWidth := max(v.width, 1)
	chartHeight := max(v.height-CaptionHeight, 1)
	if v.frame == nil || v.frame.Bounds().Dx() != chartWidth || v.frame.Bounds().Dy() != chartHeight {
		v.refit(chartWidth, chartHeight)
	}
	screen.DrawImage(v.frame, &ebiten.DrawImageOptions{})

	op := &text.DrawOptions{}
	op.GeoM.Translate(12, float64(chartHeight)+4)
	op.ColorScale.ScaleWithColor(color.Black)
	op.LineSpacing = assets.CaptionFontSize + 2
	text.Draw(screen, v.caption+"\nPress Esc or Q to close", assets.CaptionFont, op)
}

func (v *Viewer) refit(width, height int) {
	if v.frame != nil {
		v.frame.Deallocate()
	}
	v.frame = ebiten.NewImageFromImage(chart.Fit(v.source, width, height))
	v.logger.Debug("chart rescaled", "width", width, "height", height)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	v.width, v.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
