package usagereport

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/usagereport-project/usagereport/pkg/model"
	"github.com/usagereport-project/usagereport/pkg/report"
)

const defaultReportPath = "usage-report.yml"

func newAggregateCmd() *cobra.Command {
	var outputPath string
	aggregateCmd := &cobra.Command{
		Use:   "aggregate [completions-file]",
		Short: "Read task completion results and write a usage report",
		Long: `Reads a YAML stream of task completion results (one document per task,
each with start, finish, cpu and memory), aggregates them onto a timeline
and writes the report. Records that fail to parse are skipped and reported
at the end; the rest are still aggregated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAggregate(args[0], outputPath)
		},
	}
	aggregateCmd.Flags().StringVarP(&outputPath, "output", "o", defaultReportPath,
		"file to write the YAML usage report to")
	return aggregateCmd
}

func runAggregate(inputPath, outputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	reporter := report.NewReporter()
	decoder := yaml.NewDecoder(file)

	var badRecords *multierror.Error
	for {
		var result model.CompletionResult
		decodeErr := decoder.Decode(&result)
		if errors.Is(decodeErr, io.EOF) {
			break
		}
		if decodeErr != nil {
			return fmt.Errorf("reading completion results from %s: %w", inputPath, decodeErr)
		}

		usage, usageErr := model.NewResourceUsageFromCompletion(result)
		if usageErr != nil {
			badRecords = multierror.Append(badRecords, usageErr)
			continue
		}
		reporter.AddUsage(usage)
	}

	timeline := reporter.Snapshot()
	cpuHours, err := timeline.TotalCPUHours()
	if err != nil {
		return err
	}
	memoryHours, err := timeline.TotalMemoryMegabyteHours()
	if err != nil {
		return err
	}

	peakMemory := datasize.ByteSize(timeline.MaxParallelMemory()) * datasize.MB
	log.Info().
		Int("tasks", timeline.TotalTasks()).
		Float64("cpu_hours", cpuHours).
		Float64("ram_megabyte_hours", memoryHours).
		Int("max_parallel_tasks", timeline.MaxParallelTasks()).
		Float64("max_parallel_cpus", timeline.MaxParallelCPU()).
		Str("max_parallel_ram", peakMemory.HR()).
		Msg("aggregated completed tasks")

	if err := reporter.WriteReport(outputPath); err != nil {
		return err
	}
	log.Info().Str("path", outputPath).Msg("wrote usage report")

	if badRecords != nil {
		log.Warn().Int("records", badRecords.Len()).Msg("skipped unparseable completion results")
	}
	return badRecords.ErrorOrNil()
}
