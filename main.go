package main

import (
	"fmt"
	"os"

	"github.com/meghashyamc/rotation2d/config"
	"github.com/meghashyamc/rotation2d/geometry"
	"github.com/meghashyamc/rotation2d/logger"
	"github.com/meghashyamc/rotation2d/plot"
	"github.com/meghashyamc/rotation2d/report"
	"github.com/meghashyamc/rotation2d/viewer"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	log := logger.New()

	angleDegrees := cfg.GetAngleDegrees()
	original := geometry.Vector{X: cfg.GetVectorX(), Y: cfg.GetVectorY()}

	rotation := geometry.RotationMatrix(angleDegrees)
	rotated := rotation.Apply(original)

	fmt.Print(report.Render(angleDegrees, rotation, original, rotated))

	figure := plot.NewFigure(angleDegrees, rotation, original, rotated, cfg.GetImageSize())
	img := figure.Render()

	outputPath := cfg.GetOutputFilename()
	if err := plot.SavePNG(img, outputPath); err != nil {
		log.Error("error saving figure", "path", outputPath, "err", err)
		os.Exit(1)
	}

	// The PNG is already written; a missing display only skips the window
	if err := viewer.Show(cfg, log, img); err != nil {
		log.Warn("could not show figure window", "err", err)
	}

	fmt.Print(report.SavedBanner(outputPath))
}
