package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/achilleasa/raybench/renderer"
	"github.com/achilleasa/raybench/scene"
	"github.com/achilleasa/raybench/session"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Run the unattended multi-scene benchmark.
func RunBenchmark(ctx *cli.Context) error {
	setupLogging(ctx)

	settings := &session.Settings{
		SceneIndex:          ctx.Int("scene"),
		IsRayTraced:         true,
		AccumulateRays:      true,
		SamplesPerFrame:     uint32(ctx.Int("spp")),
		MaxTotalSamples:     uint32(ctx.Int("max-samples")),
		NumberOfBounces:     uint32(ctx.Int("num-bounces")),
		Benchmark:           true,
		BenchmarkMaxTime:    ctx.Float64("max-time"),
		BenchmarkNextScenes: ctx.Bool("next-scenes"),
	}

	opts := renderer.Options{
		Width:      uint32(ctx.Int("width")),
		Height:     uint32(ctx.Int("height")),
		Fullscreen: ctx.Bool("fullscreen"),
		VSync:      false,
		Title:      "raybench",
	}

	driver, window, err := setupFrameLoop(settings, opts)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err = runFrameLoop(driver, window); err != nil {
		return err
	}

	displayBenchmarkResults(driver.Benchmark().Results())
	return nil
}

func setupFrameLoop(settings *session.Settings, opts renderer.Options) (*session.Driver, *renderer.Window, error) {
	window, err := renderer.NewWindow(opts)
	if err != nil {
		return nil, nil, err
	}

	backend := renderer.NewGLBackend(window)
	camera := renderer.NewModelViewController()
	overlay := renderer.NewLogOverlay(settings)

	driver, err := session.NewDriver(settings, backend, window, scene.NewListSource(), camera, overlay, os.Stdout, window.Config())
	if err != nil {
		window.Destroy()
		return nil, nil, err
	}
	window.BindInput(driver)

	return driver, window, nil
}

func runFrameLoop(driver *session.Driver, window *renderer.Window) error {
	for !window.ShouldClose() {
		window.PollEvents()

		rendered, err := driver.Tick()
		if err != nil {
			return err
		}
		if rendered {
			window.SwapBuffers()
		}
	}
	return nil
}

func displayBenchmarkResults(results []session.SceneResult) {
	if len(results) == 0 {
		logger.Notice("benchmark produced no results")
		return
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Frames", "Elapsed", "Avg fps"})

	var totalFrames uint64
	var totalElapsed float64
	for _, result := range results {
		table.Append([]string{
			fmt.Sprintf("#%d", result.SceneIndex),
			result.SceneName,
			fmt.Sprintf("%d", result.Frames),
			fmt.Sprintf("%.1fs", result.Elapsed),
			fmt.Sprintf("%.1f", result.AverageFPS),
		})
		totalFrames += result.Frames
		totalElapsed += result.Elapsed
	}
	table.SetFooter([]string{"", "TOTAL", fmt.Sprintf("%d", totalFrames), fmt.Sprintf("%.1fs", totalElapsed), ""})

	table.Render()
	logger.Noticef("benchmark results\n%s", buf.String())
}
