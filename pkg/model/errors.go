package model

import "fmt"

// ResourceKind names the kind of resource quantity being parsed, so that
// parse failures can say which field of a completion result was malformed.
type ResourceKind string

const (
	ResourceKindCPU    ResourceKind = "cpu"
	ResourceKindMemory ResourceKind = "memory"
)

// ErrInvalidInterval is returned when an elapsed duration is requested from
// an interval whose finish precedes its start, or whose endpoints are not
// both set. It is never silently corrected: a negative elapsed time means
// clock skew or a caller bug, and clamping it would hide that.
type ErrInvalidInterval struct {
	Interval TimedInterval
}

func NewErrInvalidInterval(interval TimedInterval) ErrInvalidInterval {
	return ErrInvalidInterval{Interval: interval}
}

func (e ErrInvalidInterval) Error() string {
	if e.Interval.StartTime.IsZero() || e.Interval.FinishTime.IsZero() {
		return "invalid interval: start and finish must both be set"
	}
	return fmt.Sprintf("invalid interval: finish %s precedes start %s",
		e.Interval.FinishTime.Format(timeFormat), e.Interval.StartTime.Format(timeFormat))
}

// ErrUnparseableQuantity is returned when a resource quantity string matches
// no known unit suffix and is not a bare number.
type ErrUnparseableQuantity struct {
	Value string
	Kind  ResourceKind
}

func NewErrUnparseableQuantity(value string, kind ResourceKind) ErrUnparseableQuantity {
	return ErrUnparseableQuantity{Value: value, Kind: kind}
}

func (e ErrUnparseableQuantity) Error() string {
	return fmt.Sprintf("unable to parse %q as a %s quantity", e.Value, e.Kind)
}
