package usagereport

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "usagereport",
		Short: "Aggregate per-task resource usage into a timeline report",
		Long: `Reads the resource-usage records produced by a batch execution engine
and derives timeline statistics: total cpu-hours and megabyte-hours,
task counts and the maximum concurrent usage observed at any instant.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newAggregateCmd())
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
