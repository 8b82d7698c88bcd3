package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/requests"
)

const (
	FirstComeFirstServe     = "fcfs"
	RoundRobin              = "rr"
	MultilevelFeedbackQueue = "mlfq"

	// MultilevelFeedbackQueueLevels is fixed; the last level is always FCFS.
	MultilevelFeedbackQueueLevels = 3
)

var (
	ErrInvalidQuantum   = errors.New("invalid time quantum")
	ErrBurstTooLarge    = errors.New("burst time above the configured maximum")
	ErrStalled          = errors.New("scheduler stalled with unfinished processes")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

func jobsOf(request *requests.ScheduleRequests) []requests.Job {
	if request == nil {
		return nil
	}
	return request.Jobs
}

// checkBurstLimit rejects the request when any job needs more CPU time than
// limit. A limit <= 0 disables the check.
func checkBurstLimit(request *requests.ScheduleRequests, limit int) error {
	if limit <= 0 {
		return nil
	}
	for _, job := range jobsOf(request) {
		if job.BurstTime > limit {
			return fmt.Errorf("%w: pid %d has burst %d, maximum is %d", ErrBurstTooLarge, job.ProcessId, job.BurstTime, limit)
		}
	}
	return nil
}
