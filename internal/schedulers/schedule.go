package schedulers

import (
	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// Schedule runs one simulation: validate, copy the input into
// engine-owned process records, build the timeline, and derive metrics.
// An empty job list yields an empty timeline and zero-valued metrics, not
// an error. Invalid configuration or processes reject the run atomically.
func Schedule(alg Algorithm, request *requests.ScheduleRequest, cfg core.Config) (responses.ScheduleResponse, error) {
	procs := request.Processes()
	timeline, err := core.Run(procs, alg.policy(cfg), cfg)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(alg, procs, timeline), nil
}

// ScheduleAll runs every algorithm over the same request. Each run works
// on its own process copies, so results never interfere.
func ScheduleAll(request *requests.ScheduleRequest, cfg core.Config) ([]responses.ScheduleResponse, error) {
	results := make([]responses.ScheduleResponse, 0, len(Algorithms()))
	for _, alg := range Algorithms() {
		response, err := Schedule(alg, request, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, response)
	}
	return results, nil
}
