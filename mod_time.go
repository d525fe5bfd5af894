package vertexcloud

import (
	"time"
)

type Time struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64
}

// Seconds returns Dt in seconds.
func (t *Time) Seconds() float32 {
	return float32(t.Dt.Seconds())
}

type TimeModule struct {
	// FixedDt, when set, replaces wall clock deltas. Headless runs use it to
	// produce identical frames.
	FixedDt time.Duration
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	timeResource := &Time{
		Time: time.Now(),
		Dt:   0,
	}
	cmd.AddResources(timeResource)

	if mod.FixedDt > 0 {
		dt := mod.FixedDt
		app.UseSystem(System(func(t *Time) {
			t.Dt = dt
			t.Time = t.Time.Add(dt)
			t.Frame++
		}).InStage(PreUpdate))
		return
	}
	app.UseSystem(System(timeSystem).InStage(PreUpdate))
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
	timeResource.Frame++
}
