//go:build unit || !integration

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/usagereport-project/usagereport/pkg/model"
)

var sweepEpoch = time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

func usageAt(startSeconds, finishSeconds int, cpuUnits, memoryMegabytes float64) *model.ResourceUsage {
	return model.NewResourceUsage(model.TimedInterval{
		StartTime:  sweepEpoch.Add(time.Duration(startSeconds) * time.Second),
		FinishTime: sweepEpoch.Add(time.Duration(finishSeconds) * time.Second),
	}, cpuUnits, memoryMegabytes)
}

func TestSweepNoChildren(t *testing.T) {
	require.Equal(t, 0.0, sweep(nil, CountWeight))
}

func TestSweepSingleChild(t *testing.T) {
	children := []*model.ResourceUsage{usageAt(0, 10, 1, 1)}
	require.Equal(t, 1.0, sweep(children, CountWeight))
}

func TestSweepBackToBackIntervalsDoNotOverlap(t *testing.T) {
	// B starts at the exact instant A finishes. The finish event sorts
	// first, so the two are never concurrent.
	children := []*model.ResourceUsage{
		usageAt(0, 10, 1, 1),
		usageAt(10, 20, 1, 1),
	}
	require.Equal(t, 1.0, sweep(children, CountWeight))
}

func TestSweepOverlappingIntervals(t *testing.T) {
	children := []*model.ResourceUsage{
		usageAt(0, 10, 2, 100),
		usageAt(5, 15, 3, 200),
	}
	require.Equal(t, 2.0, sweep(children, CountWeight))
	require.Equal(t, 5.0, sweep(children, CPUWeight))
	require.Equal(t, 300.0, sweep(children, MemoryWeight))
}

func TestSweepNestedIntervals(t *testing.T) {
	children := []*model.ResourceUsage{
		usageAt(0, 100, 1, 10),
		usageAt(10, 20, 1, 10),
		usageAt(30, 40, 1, 10),
	}
	// the inner intervals never overlap each other
	require.Equal(t, 2.0, sweep(children, CountWeight))
	require.Equal(t, 20.0, sweep(children, MemoryWeight))
}

func TestSweepProcessorDefaultsToCounting(t *testing.T) {
	processor := NewSweepProcessor(nil)
	usage := usageAt(0, 10, 7, 7)
	processor.Process(usage, KindStart)
	processor.Process(usage, KindFinish)
	require.Equal(t, 1.0, processor.Result())
}

func TestSortedEventsTieBreak(t *testing.T) {
	a := usageAt(0, 10, 1, 1)
	b := usageAt(10, 20, 1, 1)

	events := sortedEvents([]*model.ResourceUsage{b, a})
	require.Len(t, events, 4)
	require.Equal(t, KindStart, events[0].Kind)
	require.Same(t, a, events[0].Usage)
	require.Equal(t, KindFinish, events[1].Kind)
	require.Same(t, a, events[1].Usage)
	require.Equal(t, KindStart, events[2].Kind)
	require.Same(t, b, events[2].Usage)
	require.Equal(t, KindFinish, events[3].Kind)
}
