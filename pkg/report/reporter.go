package report

import (
	"sync"

	"github.com/usagereport-project/usagereport/pkg/model"
)

// Reporter is the process-wide collection point for usage records. Worker
// goroutines completing tasks concurrently each call AddUsage once per
// task; every mutation and every snapshot-producing read holds the one
// mutex for its full duration, so a reader can never observe a
// half-updated span.
type Reporter struct {
	mu       sync.Mutex
	timeline *Timeline
}

func NewReporter() *Reporter {
	return &Reporter{timeline: NewTimeline()}
}

// AddUsage records one completed task.
func (r *Reporter) AddUsage(usage *model.ResourceUsage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeline.AddUsage(usage)
}

// Clear atomically replaces the timeline with a fresh empty one.
func (r *Reporter) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeline = NewTimeline()
}

// Snapshot returns a timeline that shares no mutable state with the live
// one. Records are immutable once added, so copying the child slice is
// enough; aggregation queries may then run outside the lock.
func (r *Reporter) Snapshot() *Timeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := NewTimeline()
	snapshot.TimedInterval = r.timeline.TimedInterval
	snapshot.children = append([]*model.ResourceUsage(nil), r.timeline.children...)
	return snapshot
}

// Summary exports the current timeline under the lock.
func (r *Reporter) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timeline.Summary()
}

// WriteReport writes the current summary to the named file.
func (r *Reporter) WriteReport(filename string) error {
	return r.Summary().WriteFile(filename)
}
