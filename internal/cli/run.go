package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cpusim/internal/core"
	"cpusim/internal/export"
	"cpusim/internal/requests"
	"cpusim/internal/schedulers"
)

func newRunCmd() *cobra.Command {
	var (
		flagFile      string
		flagAlgorithm string
		flagAll       bool
		flagQuantum   int
		flagCSO       int
		flagExport    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate scheduling over a process CSV",
		Long: "Loads processes from a CSV file (columns: id, arrival, burst, priority;\n" +
			"an optional header row is skipped) and simulates the selected algorithm.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(flagFile)
			if err != nil {
				return fmt.Errorf("open process file: %w", err)
			}
			defer f.Close()

			jobs, err := loadProcesses(f)
			if err != nil {
				return err
			}
			request := &requests.ScheduleRequest{Jobs: jobs}
			cfg := core.Config{ContextSwitchOverhead: flagCSO, TimeQuantum: flagQuantum}

			out := cmd.OutOrStdout()
			if flagAll {
				results, err := schedulers.ScheduleAll(request, cfg)
				if err != nil {
					return err
				}
				for _, response := range results {
					outputResponse(out, response)
				}
				return nil
			}

			alg, err := schedulers.ParseAlgorithm(flagAlgorithm)
			if err != nil {
				return err
			}
			response, err := schedulers.Schedule(alg, request, cfg)
			if err != nil {
				return err
			}
			outputResponse(out, response)

			if flagExport != "" {
				ef, err := os.Create(flagExport)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer ef.Close()
				if err := export.WriteReport(ef, response); err != nil {
					return err
				}
				logger.Info("report exported", "path", flagExport)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "Process CSV file (required)")
	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "fcfs",
		"Algorithm: fcfs, sjf, srtf, priority, priority-preemptive, rr")
	cmd.Flags().BoolVar(&flagAll, "all", false, "Run every algorithm for comparison")
	cmd.Flags().IntVarP(&flagQuantum, "quantum", "q", 2, "Round robin time quantum")
	cmd.Flags().IntVar(&flagCSO, "cso", 0, "Context switch overhead")
	cmd.Flags().StringVar(&flagExport, "export", "", "Write a CSV report to this path")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
