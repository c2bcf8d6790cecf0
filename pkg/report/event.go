package report

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/usagereport-project/usagereport/pkg/model"
)

// EventKind orders simultaneous events: a finish sorts before a start at
// the same instant, so an interval that ends exactly as another begins is
// never counted as overlapping.
type EventKind int

const (
	KindFinish EventKind = -1
	KindStart  EventKind = 1
)

// Event marks the start or finish of one usage record on the timeline.
// Events are transient views built for a single sweep; the timeline's
// children stay the sole owners of the usage records.
type Event struct {
	Time  time.Time
	Kind  EventKind
	Usage *model.ResourceUsage
}

func StartEvent(usage *model.ResourceUsage) Event {
	return Event{Time: usage.StartTime, Kind: KindStart, Usage: usage}
}

func FinishEvent(usage *model.ResourceUsage) Event {
	return Event{Time: usage.FinishTime, Kind: KindFinish, Usage: usage}
}

// sortedEvents expands each usage record into its start and finish events
// and sorts them chronologically, finishes ahead of starts when
// simultaneous.
func sortedEvents(children []*model.ResourceUsage) []Event {
	events := lo.FlatMap(children, func(usage *model.ResourceUsage, _ int) []Event {
		return []Event{StartEvent(usage), FinishEvent(usage)}
	})
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Time.Equal(events[j].Time) {
			return events[i].Time.Before(events[j].Time)
		}
		return events[i].Kind < events[j].Kind
	})
	return events
}
