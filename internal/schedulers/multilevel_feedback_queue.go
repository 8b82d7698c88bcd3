package schedulers

import (
	"fmt"
	"log/slog"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleMultilevelFeedbackQueue runs a three level feedback queue. The
// first two levels use timeQuantumList[0] and timeQuantumList[1]; the last
// level is FCFS. A process that uses up its quantum drops one level and
// stays at the bottom once there.
func ScheduleMultilevelFeedbackQueue(request *requests.ScheduleRequests, timeQuantumList []int, timelineCapacity int) (responses.ScheduleResponse, error) {
	slog.Info("running mlfq algorithm", slog.Any("time_quantum", timeQuantumList))
	if len(timeQuantumList) != MultilevelFeedbackQueueLevels-1 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: need %d quanta, got %d", ErrInvalidQuantum, MultilevelFeedbackQueueLevels-1, len(timeQuantumList))
	}
	for _, quantum := range timeQuantumList {
		if quantum <= 0 {
			return responses.ScheduleResponse{}, fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
		}
	}

	// last level: run to completion
	quanta := append(append([]int{}, timeQuantumList...), 0)
	sim, err := core.NewSimulation(jobsOf(request), timelineCapacity, quanta...)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := runFeedbackQueues(sim); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(MultilevelFeedbackQueue, sim, true), nil
}

func runFeedbackQueues(sim *core.Simulation) error {
	lowest := sim.Queues.Levels() - 1
	if _, err := sim.AdmitArrivals(); err != nil {
		return err
	}
	for !sim.Done() {
		level, ok := sim.Queues.HighestNonEmpty()
		if !ok {
			arrived, err := sim.Idle()
			if err != nil {
				return err
			}
			if !arrived {
				return fmt.Errorf("%w: %d of %d completed at time %d", ErrStalled, sim.CompletedCount(), len(sim.Processes), sim.Clock)
			}
			continue
		}
		index, _ := sim.Queues.Dequeue(level)
		proccess := &sim.Processes[index]

		done, err := sim.CpuExecute(index, sim.Queues.Queue(level).Quantum)
		if err != nil {
			return err
		}
		if done {
			continue
		}

		next := level
		if level < lowest {
			next = level + 1
		}
		proccess.CurrentQueue = next
		slog.Debug("quantum expired", slog.Int("pid", proccess.Job.ProcessId), slog.Int("from_queue", level), slog.Int("to_queue", next))
		if err := sim.Queues.Enqueue(next, index); err != nil {
			return err
		}
	}
	return nil
}
