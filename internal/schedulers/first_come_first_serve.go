package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleFirstComeFirstServe runs every job to completion in arrival order,
// ties broken by load order.
func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests, timelineCapacity int) (responses.ScheduleResponse, error) {
	slog.Info("running fcfs algorithm")
	sim, err := core.NewSimulation(jobsOf(request), timelineCapacity, 0)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := runSingleQueue(sim); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(FirstComeFirstServe, sim, false), nil
}
