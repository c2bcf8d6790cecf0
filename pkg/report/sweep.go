package report

import "github.com/usagereport-project/usagereport/pkg/model"

// WeightFunc maps a usage record to the quantity being tracked for
// concurrency. The same sweep then answers max-parallel questions for task
// count, CPU and memory without three hand-rolled copies of the fold.
type WeightFunc func(*model.ResourceUsage) float64

// CountWeight weighs every record as one task.
func CountWeight(*model.ResourceUsage) float64 { return 1 }

// CPUWeight weighs a record by its CPU units.
func CPUWeight(usage *model.ResourceUsage) float64 { return usage.CPUUnits }

// MemoryWeight weighs a record by its memory megabytes.
func MemoryWeight(usage *model.ResourceUsage) float64 { return usage.MemoryMegabytes }

// SweepProcessor folds over a chronologically sorted event sequence and
// tracks the maximum total weight active at any instant.
type SweepProcessor struct {
	weight  WeightFunc
	running float64
	peak    float64
}

// NewSweepProcessor returns a processor for the given weight function.
// A nil weight counts tasks.
func NewSweepProcessor(weight WeightFunc) *SweepProcessor {
	if weight == nil {
		weight = CountWeight
	}
	return &SweepProcessor{weight: weight}
}

// Process applies one event: a start adds the record's weight to the
// running total, a finish removes it, and the peak is recomputed either
// way. Events must be fed in sorted order for the peak to be meaningful.
func (p *SweepProcessor) Process(usage *model.ResourceUsage, kind EventKind) {
	switch kind {
	case KindStart:
		p.running += p.weight(usage)
	case KindFinish:
		p.running -= p.weight(usage)
	}
	if p.running > p.peak {
		p.peak = p.running
	}
}

// Result returns the maximum total weight observed so far.
func (p *SweepProcessor) Result() float64 {
	return p.peak
}

// sweep runs a fresh processor over the sorted events of the given records.
func sweep(children []*model.ResourceUsage, weight WeightFunc) float64 {
	processor := NewSweepProcessor(weight)
	for _, event := range sortedEvents(children) {
		processor.Process(event.Usage, event.Kind)
	}
	return processor.Result()
}
