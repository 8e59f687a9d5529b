package cli

import (
	"time"

	"github.com/spf13/cobra"

	"cpusim/internal/core"
	"cpusim/internal/procload"
	"cpusim/internal/requests"
	"cpusim/internal/schedulers"
)

func newLiveCmd() *cobra.Command {
	var (
		flagAlgorithm  string
		flagInterval   time.Duration
		flagBurstScale float64
		flagQuantum    int
		flagCSO        int
	)

	cmd := &cobra.Command{
		Use:   "live",
		Short: "Sample OS processes and simulate scheduling over them",
		Long: "Takes two /proc snapshots, estimates burst times from consumed CPU time\n" +
			"and priorities from niceness, then simulates the selected algorithm.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sampler := procload.NewSampler(flagInterval, flagBurstScale)
			logger.Info("sampling processes", "interval", flagInterval)
			jobs, err := sampler.Sample()
			if err != nil {
				return err
			}
			logger.Info("sample complete", "process_count", len(jobs))

			alg, err := schedulers.ParseAlgorithm(flagAlgorithm)
			if err != nil {
				return err
			}
			request := &requests.ScheduleRequest{Jobs: jobs}
			cfg := core.Config{ContextSwitchOverhead: flagCSO, TimeQuantum: flagQuantum}
			response, err := schedulers.Schedule(alg, request, cfg)
			if err != nil {
				return err
			}
			outputResponse(cmd.OutOrStdout(), response)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "priority",
		"Algorithm: fcfs, sjf, srtf, priority, priority-preemptive, rr")
	cmd.Flags().DurationVar(&flagInterval, "interval", 2*time.Second, "Sampling interval between snapshots")
	cmd.Flags().Float64Var(&flagBurstScale, "burst-scale", 8.0, "Multiplier from CPU-seconds to burst units")
	cmd.Flags().IntVarP(&flagQuantum, "quantum", "q", 2, "Round robin time quantum")
	cmd.Flags().IntVar(&flagCSO, "cso", 0, "Context switch overhead")

	return cmd
}
