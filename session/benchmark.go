package session

import (
	"fmt"
	"io"
)

// Benchmark controller states.
type BenchmarkState uint8

const (
	BenchIdle BenchmarkState = iota
	BenchWarming
	BenchMeasuring
	BenchAdvancing
	BenchFinished
)

func (s BenchmarkState) String() string {
	switch s {
	case BenchIdle:
		return "idle"
	case BenchWarming:
		return "warming"
	case BenchMeasuring:
		return "measuring"
	case BenchAdvancing:
		return "advancing"
	case BenchFinished:
		return "finished"
	}
	return "unknown"
}

// The action the frame driver must take after a benchmark tick.
type BenchmarkAction uint8

const (
	BenchActionNone BenchmarkAction = iota
	BenchActionAdvanceScene
	BenchActionShutdown
)

// Aggregated measurements for one benchmarked scene.
type SceneResult struct {
	SceneIndex int
	SceneName  string
	Frames     uint64
	Elapsed    float64
	AverageFPS float64
}

// Length of one fps reporting window, in seconds.
const reportPeriod = 5.0

// Benchmark drives automated timing windows, fps reporting and scene
// cycling while benchmark mode is active. Reports are emitted as plain text
// lines on the report stream; they have no effect on control flow.
type Benchmark struct {
	out io.Writer

	state BenchmarkState

	sceneStartTime  float64
	windowStartTime float64
	framesInWindow  uint64

	sceneFrames uint64
	results     []SceneResult
}

func NewBenchmark(out io.Writer) *Benchmark {
	if out == nil {
		out = io.Discard
	}
	return &Benchmark{out: out}
}

// Current controller state.
func (b *Benchmark) State() BenchmarkState {
	return b.state
}

// Per-scene measurements collected so far.
func (b *Benchmark) Results() []SceneResult {
	return b.results
}

// ResetWindow zeroes the per-scene frame counter. The scene lifecycle calls
// this after loading a scene so the next tick re-enters Warming.
func (b *Benchmark) ResetWindow() {
	b.framesInWindow = 0
}

// Tick evaluates the benchmark state for a new frame. now and prevTime are
// the current and previous frame times from the display clock;
// samplesThisFrame is the sample budget the accumulator granted this frame.
func (b *Benchmark) Tick(settings Settings, now, prevTime float64, sceneName string, sceneCount int, samplesThisFrame uint32) BenchmarkAction {
	if !settings.Benchmark {
		b.state = BenchIdle
		return BenchActionNone
	}

	// A finished run never re-enters Warming, even if the shutdown request
	// takes a few frames to take effect.
	if b.state == BenchFinished {
		return BenchActionNone
	}

	// First frame of a scene or of the whole run.
	if b.framesInWindow == 0 {
		fmt.Fprintln(b.out)
		fmt.Fprintf(b.out, "Benchmark: Start scene #%d '%s'\n", settings.SceneIndex, sceneName)
		b.sceneStartTime = now
		b.windowStartTime = now
		b.sceneFrames = 0
		b.state = BenchWarming
	} else if b.state == BenchWarming {
		b.state = BenchMeasuring
	}

	// Report the frame rate when the elapsed window time crosses a period
	// boundary relative to the previous frame's elapsed time.
	prevElapsed := prevTime - b.windowStartTime
	elapsed := now - b.windowStartTime
	if b.framesInWindow != 0 && uint64(prevElapsed/reportPeriod) != uint64(elapsed/reportPeriod) {
		fmt.Fprintf(b.out, "Benchmark: %.1f fps\n", float64(b.framesInWindow)/elapsed)
		b.windowStartTime = now
		b.framesInWindow = 0
	}
	b.framesInWindow++
	b.sceneFrames++

	// Bail out from the scene once the time limit is hit or the image has
	// fully converged under the sample ceiling.
	timeLimitReached := now-b.sceneStartTime > settings.BenchmarkMaxTime
	sampleLimitReached := samplesThisFrame == 0
	if !timeLimitReached && !sampleLimitReached {
		return BenchActionNone
	}

	sceneElapsed := now - b.sceneStartTime
	result := SceneResult{
		SceneIndex: settings.SceneIndex,
		SceneName:  sceneName,
		Frames:     b.sceneFrames,
		Elapsed:    sceneElapsed,
	}
	if sceneElapsed > 0 {
		result.AverageFPS = float64(b.sceneFrames) / sceneElapsed
	}
	b.results = append(b.results, result)

	if !settings.BenchmarkNextScenes || settings.SceneIndex == sceneCount-1 {
		b.state = BenchFinished
		return BenchActionShutdown
	}

	b.state = BenchAdvancing
	return BenchActionAdvanceScene
}
