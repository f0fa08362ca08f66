package driver

import "time"

type DriverOpt func(*Driver)

func WithTickLength(tickLength time.Duration) DriverOpt {
	return func(d *Driver) {
		d.tickLength = tickLength
	}
}

// WithDayLength sets how much wall time one game day takes.
func WithDayLength(dayLength time.Duration) DriverOpt {
	return func(d *Driver) {
		d.dayLength = dayLength
	}
}

// WithRecorder journals every accepted action.
func WithRecorder(r Recorder) DriverOpt {
	return func(d *Driver) {
		d.recorder = r
	}
}

// WithClock replaces the wall clock used to measure tick deltas.
func WithClock(now func() time.Time) DriverOpt {
	return func(d *Driver) {
		d.now = now
	}
}
