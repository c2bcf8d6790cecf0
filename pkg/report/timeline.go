package report

import (
	"github.com/samber/lo"

	"github.com/usagereport-project/usagereport/pkg/model"
)

// Timeline aggregates the usage records of every completed task and derives
// its own span from them. The span is never set by callers; it is
// recomputed from the children on each insertion.
type Timeline struct {
	model.TimedInterval `yaml:",inline"`

	children []*model.ResourceUsage
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

// AddUsage appends a record and recomputes the timeline span. Insertion
// order is retained but irrelevant: the sweep sorts its own event sequence.
func (t *Timeline) AddUsage(usage *model.ResourceUsage) {
	t.children = append(t.children, usage)
	t.recalculateSpan()
}

func (t *Timeline) recalculateSpan() {
	for _, child := range t.children {
		if !child.StartTime.IsZero() &&
			(t.StartTime.IsZero() || child.StartTime.Before(t.StartTime)) {
			t.StartTime = child.StartTime
		}
		if !child.FinishTime.IsZero() && child.FinishTime.After(t.FinishTime) {
			t.FinishTime = child.FinishTime
		}
	}
}

// TotalTasks returns the number of records on the timeline.
func (t *Timeline) TotalTasks() int {
	return len(t.children)
}

// TotalCPUHours sums cpu-hours over all records.
func (t *Timeline) TotalCPUHours() (float64, error) {
	var total float64
	for _, child := range t.children {
		hours, err := child.CPUHours()
		if err != nil {
			return 0, err
		}
		total += hours
	}
	return total, nil
}

// TotalMemoryMegabyteHours sums megabyte-hours over all records.
func (t *Timeline) TotalMemoryMegabyteHours() (float64, error) {
	var total float64
	for _, child := range t.children {
		hours, err := child.MemoryMegabyteHours()
		if err != nil {
			return 0, err
		}
		total += hours
	}
	return total, nil
}

// MaxParallelTasks returns the largest number of tasks active at once.
func (t *Timeline) MaxParallelTasks() int {
	return int(sweep(t.children, CountWeight))
}

// MaxParallelCPU returns the largest total of CPU units active at once.
func (t *Timeline) MaxParallelCPU() float64 {
	return sweep(t.children, CPUWeight)
}

// MaxParallelMemory returns the largest total of memory megabytes active
// at once.
func (t *Timeline) MaxParallelMemory() float64 {
	return sweep(t.children, MemoryWeight)
}

// Summary exports the timeline span and every child record for
// serialization. Nothing is dropped per child, so the document can be
// reconstructed losslessly.
func (t *Timeline) Summary() Summary {
	return Summary{
		TimedInterval: t.TimedInterval,
		Children: lo.Map(t.children, func(usage *model.ResourceUsage, _ int) model.ResourceUsage {
			return *usage
		}),
	}
}
