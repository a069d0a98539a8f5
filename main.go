package main

import (
	"fmt"
	"os"

	"github.com/meghashyamc/gimbalmirror/chart"
	"github.com/meghashyamc/gimbalmirror/config"
	"github.com/meghashyamc/gimbalmirror/logger"
	"github.com/meghashyamc/gimbalmirror/sweep"
	"github.com/meghashyamc/gimbalmirror/viewer"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.GetLogLevel())

	if err := run(cfg, log); err != nil {
		log.Error("error running mirror angle comparison", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	var theta, phi sweep.Range
	theta.Start, theta.End, theta.Step = cfg.GetMirrorThetaRange()
	phi.Start, phi.End, phi.Step = cfg.GetMirrorPhiRange()

	result, err := sweep.Run(theta, phi, log)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	c, err := chart.New(result, chart.Options{
		Title:        cfg.GetWindowTitle(),
		MarkerRadius: cfg.GetMarkerRadius(),
	}, log)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	width, height, dpi := cfg.GetWindowWidth(), cfg.GetWindowHeight(), cfg.GetOutputDPI()
	if output := cfg.GetOutputFile(); output != "" {
		if err := c.Save(output, width, height, dpi); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}

	if !cfg.GetShowWindow() {
		return nil
	}

	caption := fmt.Sprintf("max |exact - simplified| = %.3g°   max round-trip error = %.3g° (simplified %.3g°)",
		result.MaxForwardDeviation, result.MaxRoundTripError, result.MaxSimplifiedRoundTripError)
	img := c.Image(width, max(height-viewer.CaptionHeight, 1), dpi)
	return viewer.New(img, caption, cfg, log).Run()
}
