package session

import "testing"

func TestSampleBudgetConvergence(t *testing.T) {
	type spec struct {
		expBudget uint32
		expTotal  uint32
	}
	specs := []spec{
		{8, 8},
		{8, 16},
		{4, 20},
		{0, 20},
		{0, 20},
	}

	settings := Settings{
		AccumulateRays:  true,
		SamplesPerFrame: 8,
		MaxTotalSamples: 20,
	}

	acc := NewAccumulator()
	for index, s := range specs {
		budget := acc.Update(settings)
		if budget != s.expBudget {
			t.Fatalf("[frame %d] expected budget %d; got %d", index, s.expBudget, budget)
		}
		if acc.TotalSamples() != s.expTotal {
			t.Fatalf("[frame %d] expected total %d; got %d", index, s.expTotal, acc.TotalSamples())
		}
	}
}

func TestBudgetBoundsHoldForAllSequences(t *testing.T) {
	type spec struct {
		perFrame uint32
		maxTotal uint32
		frames   int
	}
	specs := []spec{
		{1, 0, 4},
		{7, 20, 10},
		{100, 3, 5},
		{0, 100, 5},
	}

	for index, s := range specs {
		settings := Settings{
			AccumulateRays:  true,
			SamplesPerFrame: s.perFrame,
			MaxTotalSamples: s.maxTotal,
		}

		acc := NewAccumulator()
		for frame := 0; frame < s.frames; frame++ {
			budget := acc.Update(settings)
			if budget > s.perFrame {
				t.Fatalf("[spec %d] frame %d budget %d exceeds per-frame target %d", index, frame, budget, s.perFrame)
			}
			if acc.TotalSamples() > s.maxTotal {
				t.Fatalf("[spec %d] frame %d total %d exceeds ceiling %d", index, frame, acc.TotalSamples(), s.maxTotal)
			}
		}
	}
}

func TestResetOnImageAffectingChange(t *testing.T) {
	type spec struct {
		mutate   func(*Settings)
		expReset bool
	}
	specs := []spec{
		{func(s *Settings) { s.FieldOfView += 5 }, true},
		{func(s *Settings) { s.Aperture = 0.5 }, true},
		{func(s *Settings) { s.FocusDistance = 3 }, true},
		{func(s *Settings) { s.NumberOfBounces++ }, true},
		{func(s *Settings) { s.IsRayTraced = !s.IsRayTraced }, true},
		{func(s *Settings) { s.GammaCorrection = !s.GammaCorrection }, true},
		{func(s *Settings) { s.SceneIndex++ }, true},
		{func(s *Settings) { s.ShowSettings = !s.ShowSettings }, false},
		{func(s *Settings) { s.ShowOverlay = !s.ShowOverlay }, false},
		{func(s *Settings) { s.BenchmarkMaxTime = 99 }, false},
	}

	for index, s := range specs {
		settings := Settings{
			AccumulateRays:  true,
			SamplesPerFrame: 4,
			MaxTotalSamples: 100,
			FieldOfView:     45,
		}

		acc := NewAccumulator()
		acc.Update(settings)
		acc.Update(settings)
		if acc.TotalSamples() != 8 {
			t.Fatalf("[spec %d] expected total 8 before change; got %d", index, acc.TotalSamples())
		}

		s.mutate(&settings)
		acc.Update(settings)

		expTotal := uint32(12)
		if s.expReset {
			expTotal = 4
		}
		if acc.TotalSamples() != expTotal {
			t.Fatalf("[spec %d] expected total %d after change; got %d", index, expTotal, acc.TotalSamples())
		}
	}
}

func TestForceResetAndDisabledAccumulation(t *testing.T) {
	settings := Settings{
		AccumulateRays:  true,
		SamplesPerFrame: 4,
		MaxTotalSamples: 100,
	}

	acc := NewAccumulator()
	acc.Update(settings)
	acc.Update(settings)

	acc.RequestReset()
	if budget := acc.Update(settings); budget != 4 || acc.TotalSamples() != 4 {
		t.Fatalf("expected force reset to restart accumulation; got budget %d total %d", budget, acc.TotalSamples())
	}

	// The flag is transient: the next frame accumulates again.
	acc.Update(settings)
	if acc.TotalSamples() != 8 {
		t.Fatalf("expected total 8 after transient reset; got %d", acc.TotalSamples())
	}

	// With accumulation disabled the total resets every frame.
	settings.AccumulateRays = false
	for frame := 0; frame < 3; frame++ {
		if budget := acc.Update(settings); budget != 4 || acc.TotalSamples() != 4 {
			t.Fatalf("[frame %d] expected per-frame restart with accumulation off; got budget %d total %d", frame, budget, acc.TotalSamples())
		}
	}
}

func TestLoweredCeilingClampsTotal(t *testing.T) {
	settings := Settings{
		AccumulateRays:  true,
		SamplesPerFrame: 10,
		MaxTotalSamples: 50,
	}

	acc := NewAccumulator()
	for frame := 0; frame < 3; frame++ {
		acc.Update(settings)
	}
	if acc.TotalSamples() != 30 {
		t.Fatalf("expected total 30; got %d", acc.TotalSamples())
	}

	settings.MaxTotalSamples = 12
	if budget := acc.Update(settings); budget != 0 {
		t.Fatalf("expected zero budget after ceiling drop; got %d", budget)
	}
	if acc.TotalSamples() != 12 {
		t.Fatalf("expected total clamped to 12; got %d", acc.TotalSamples())
	}
}
