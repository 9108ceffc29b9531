package cmd

import (
	"github.com/achilleasa/raybench/renderer"
	"github.com/achilleasa/raybench/session"
	"github.com/urfave/cli"
)

// Render an interactive progressive view of a scene.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	settings := &session.Settings{
		SceneIndex:      ctx.Int("scene"),
		IsRayTraced:     ctx.Bool("ray-traced"),
		AccumulateRays:  true,
		SamplesPerFrame: uint32(ctx.Int("spp")),
		MaxTotalSamples: uint32(ctx.Int("max-samples")),
		NumberOfBounces: uint32(ctx.Int("num-bounces")),
		ShowOverlay:     true,
	}

	opts := renderer.Options{
		Width:      uint32(ctx.Int("width")),
		Height:     uint32(ctx.Int("height")),
		Fullscreen: ctx.Bool("fullscreen"),
		VSync:      true,
		Title:      "raybench",
	}

	driver, window, err := setupFrameLoop(settings, opts)
	if err != nil {
		return err
	}
	defer window.Destroy()

	return runFrameLoop(driver, window)
}
