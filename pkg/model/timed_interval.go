package model

import "time"

const timeFormat = time.RFC3339

const secondsPerHour = 60.0 * 60.0

// TimedInterval is an operation bounded by a start instant and a finish
// instant. The two endpoints are populated independently as the operation
// progresses, so validity is only checked when an elapsed duration is
// actually requested.
type TimedInterval struct {
	StartTime  time.Time `yaml:"start"`
	FinishTime time.Time `yaml:"finish"`
}

// Start records the start instant. A zero time means "now".
func (i *TimedInterval) Start(t time.Time) {
	if t.IsZero() {
		t = time.Now()
	}
	i.StartTime = t
}

// Finish records the finish instant. A zero time means "now".
func (i *TimedInterval) Finish(t time.Time) {
	if t.IsZero() {
		t = time.Now()
	}
	i.FinishTime = t
}

// ElapsedSeconds returns the number of seconds between start and finish.
// It fails with ErrInvalidInterval when either endpoint is unset or when
// finish strictly precedes start.
func (i TimedInterval) ElapsedSeconds() (float64, error) {
	if i.StartTime.IsZero() || i.FinishTime.IsZero() {
		return 0, NewErrInvalidInterval(i)
	}
	seconds := i.FinishTime.Sub(i.StartTime).Seconds()
	if seconds < 0 {
		return 0, NewErrInvalidInterval(i)
	}
	return seconds, nil
}

func (i TimedInterval) ElapsedHours() (float64, error) {
	seconds, err := i.ElapsedSeconds()
	if err != nil {
		return 0, err
	}
	return seconds / secondsPerHour, nil
}
