package model

import "time"

// ResourceUsage is the record of what one completed task consumed: the
// interval it ran for, annotated with the CPU and memory it held for that
// whole interval. Weights are fixed at construction; only the inherited
// start/finish setters mutate the record while it is being populated.
type ResourceUsage struct {
	TimedInterval `yaml:",inline"`

	// Name identifies the task this record came from.
	Name string `yaml:"name,omitempty"`
	// cpu units, fractional cores
	CPUUnits float64 `yaml:"cpus"`
	// reported megabytes, see ParseMemoryMegabytes
	MemoryMegabytes float64 `yaml:"ram_megabytes"`
}

func NewResourceUsage(interval TimedInterval, cpuUnits, memoryMegabytes float64) *ResourceUsage {
	return &ResourceUsage{
		TimedInterval:   interval,
		CPUUnits:        cpuUnits,
		MemoryMegabytes: memoryMegabytes,
	}
}

// CPUHours integrates the CPU weight over the elapsed duration.
func (u ResourceUsage) CPUHours() (float64, error) {
	hours, err := u.ElapsedHours()
	if err != nil {
		return 0, err
	}
	return u.CPUUnits * hours, nil
}

// MemoryMegabyteHours integrates the memory weight over the elapsed duration.
func (u ResourceUsage) MemoryMegabyteHours() (float64, error) {
	hours, err := u.ElapsedHours()
	if err != nil {
		return 0, err
	}
	return u.MemoryMegabytes * hours, nil
}

// CompletionResult is what the execution engine reports when a task
// finishes: the span it ran for and the raw resource quantity strings from
// the task spec.
type CompletionResult struct {
	Name       string    `yaml:"name,omitempty"`
	StartTime  time.Time `yaml:"start"`
	FinishTime time.Time `yaml:"finish"`
	CPU        string    `yaml:"cpu"`
	Memory     string    `yaml:"memory"`
	ExitCode   int       `yaml:"exit_code,omitempty"`
}

// NewResourceUsageFromCompletion converts a completion result into a usage
// record. This is the only place raw quantity strings enter the reporting
// core; parse failures propagate unchanged as ErrUnparseableQuantity.
func NewResourceUsageFromCompletion(result CompletionResult) (*ResourceUsage, error) {
	cpu, err := ParseCPU(result.CPU)
	if err != nil {
		return nil, err
	}
	memory, err := ParseMemoryMegabytes(result.Memory)
	if err != nil {
		return nil, err
	}
	usage := NewResourceUsage(TimedInterval{
		StartTime:  result.StartTime,
		FinishTime: result.FinishTime,
	}, cpu, memory)
	usage.Name = result.Name
	return usage, nil
}
