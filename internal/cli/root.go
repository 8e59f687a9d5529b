package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cpusim/internal/logging"
)

var (
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the cpusim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpusim",
		Short: "cpusim — CPU scheduling algorithm simulator",
		Long: "cpusim simulates CPU scheduling algorithms (FCFS, SJF, SRTF, priority,\n" +
			"preemptive priority, round robin) over a process list and reports the\n" +
			"execution timeline and scheduling metrics.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newLiveCmd(),
	)

	return root
}
