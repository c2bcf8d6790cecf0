package model

import (
	"strings"

	"github.com/BTBurke/k8sresource"
	"github.com/dustin/go-humanize"
)

// megabytesDivisor converts parsed byte quantities into the megabyte figure
// carried on usage records. Reports have always divided by 1024 here, and
// downstream consumers bill against that figure, so it stays.
const megabytesDivisor = 1024.0

// ParseCPU converts a Kubernetes CPU quantity string ("500m", "2", "2.5")
// into fractional cores. An empty string means the engine reported no CPU
// request and counts as zero.
func ParseCPU(val string) (float64, error) {
	if val == "" {
		return 0, nil
	}
	cpu, err := k8sresource.NewCPUFromString(strings.TrimSpace(val))
	if err != nil {
		return 0, NewErrUnparseableQuantity(val, ResourceKindCPU)
	}
	return cpu.ToFloat64(), nil
}

// ParseMemoryBytes converts a Kubernetes memory quantity string into bytes.
// Decimal (K/M/G/T/P/E) and binary (Ki/Mi/Gi/Ti/Pi/Ei) suffixes are
// recognized; a bare numeral is taken as bytes. An empty string counts as
// zero.
func ParseMemoryBytes(val string) (float64, error) {
	if val == "" {
		return 0, nil
	}
	bytes, err := humanize.ParseBytes(strings.TrimSpace(val))
	if err != nil {
		return 0, NewErrUnparseableQuantity(val, ResourceKindMemory)
	}
	return float64(bytes), nil
}

// ParseMemoryMegabytes converts a Kubernetes memory quantity string into
// the reported-megabyte figure used for memory weights.
func ParseMemoryMegabytes(val string) (float64, error) {
	bytes, err := ParseMemoryBytes(val)
	if err != nil {
		return 0, err
	}
	return bytes / megabytesDivisor, nil
}
