package session

// Accumulator owns the running sample count for the progressive
// accumulation buffer and computes each frame's sample budget. It must be
// updated once per frame, after any pending scene switch has been resolved.
type Accumulator struct {
	total uint32

	// Previous frame's settings snapshot, compared field-by-field to
	// detect image-affecting changes.
	prev     Settings
	havePrev bool

	// Raised by scene switches, swapchain rebuilds and camera movement.
	forceReset bool
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Request an accumulation reset on the next update.
func (a *Accumulator) RequestReset() {
	a.forceReset = true
}

// The number of samples accumulated so far for the current view.
func (a *Accumulator) TotalSamples() uint32 {
	return a.total
}

// Update resolves reset triggers, computes this frame's sample budget and
// advances the running total. The budget is clamped so the total never
// exceeds the configured ceiling; once converged it degrades to zero
// additional work per frame.
func (a *Accumulator) Update(settings Settings) uint32 {
	if a.forceReset || !settings.AccumulateRays ||
		(a.havePrev && settings.RequiresAccumulationReset(a.prev)) {
		a.total = 0
		a.forceReset = false
	}

	a.prev = settings
	a.havePrev = true

	// Lowering the ceiling below the running total clamps the total down
	// so totalSamples <= MaxTotalSamples holds for every settings
	// sequence.
	if a.total > settings.MaxTotalSamples {
		a.total = settings.MaxTotalSamples
	}

	budget := settings.MaxTotalSamples - a.total
	if budget > settings.SamplesPerFrame {
		budget = settings.SamplesPerFrame
	}
	a.total += budget

	return budget
}
