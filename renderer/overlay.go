package renderer

import "github.com/achilleasa/raybench/session"

// How many frames to aggregate between overlay reports.
const overlayReportFrames = 120

// LogOverlay is a minimal stats collaborator that periodically logs frame
// statistics instead of drawing an in-window UI. It never captures input.
type LogOverlay struct {
	settings *session.Settings

	frames    uint64
	frameRate float32
}

func NewLogOverlay(settings *session.Settings) *LogOverlay {
	return &LogOverlay{settings: settings}
}

func (o *LogOverlay) Render(stats session.FrameStats) {
	o.frames++
	o.frameRate += stats.FrameRate

	if o.frames < overlayReportFrames || !o.settings.ShowOverlay {
		return
	}

	if stats.TotalSamples != 0 {
		logger.Noticef("%dx%d | %.1f fps | %.2f Grays/s | %d samples",
			stats.FramebufferWidth, stats.FramebufferHeight,
			o.frameRate/float32(o.frames), stats.RayRate, stats.TotalSamples)
	} else {
		logger.Noticef("%dx%d | %.1f fps",
			stats.FramebufferWidth, stats.FramebufferHeight, o.frameRate/float32(o.frames))
	}
	o.frames = 0
	o.frameRate = 0
}

func (o *LogOverlay) WantsCaptureKeyboard() bool { return false }

func (o *LogOverlay) WantsCaptureMouse() bool { return false }
