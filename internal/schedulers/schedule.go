package schedulers

import (
	"fmt"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// Algorithms lists every algorithm name in the order they are reported.
func Algorithms() []string {
	return []string{FirstComeFirstServe, RoundRobin, MultilevelFeedbackQueue}
}

// Schedule runs the named algorithm with the quanta, burst limit and
// timeline capacity taken from cfg.
func Schedule(algorithm string, request *requests.ScheduleRequests, cfg *config.SchedulerConfig) (responses.ScheduleResponse, error) {
	if err := checkBurstLimit(request, cfg.MaxBurstTime); err != nil {
		return responses.ScheduleResponse{}, err
	}
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(request, cfg.MaxTimelineEntries)
	case RoundRobin:
		return ScheduleRoundRobin(request, cfg.RoundRobinTimeQuantum, cfg.MaxTimelineEntries)
	case MultilevelFeedbackQueue:
		return ScheduleMultilevelFeedbackQueue(request, cfg.MultilevelFeedbackQueueLevelsTimeQuantum, cfg.MaxTimelineEntries)
	}
	return responses.ScheduleResponse{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

// ScheduleAll runs every algorithm on its own copy of the jobs.
func ScheduleAll(request *requests.ScheduleRequests, cfg *config.SchedulerConfig) (map[string]responses.ScheduleResponse, error) {
	results := make(map[string]responses.ScheduleResponse, len(Algorithms()))
	for _, algorithm := range Algorithms() {
		response, err := Schedule(algorithm, request, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		results[algorithm] = response
	}
	return results, nil
}
