package schedulers

import (
	"fmt"
	"log/slog"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleRoundRobin runs the jobs through a single FIFO ready queue with a
// fixed time quantum. A preempted process goes behind every process that
// arrived while it was running.
func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int, timelineCapacity int) (responses.ScheduleResponse, error) {
	slog.Info("running roundRobin algorithm", slog.Int("time_quantum", timeQuantum))
	if timeQuantum <= 0 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %d", ErrInvalidQuantum, timeQuantum)
	}
	sim, err := core.NewSimulation(jobsOf(request), timelineCapacity, timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := runSingleQueue(sim); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(RoundRobin, sim, false), nil
}

// runSingleQueue is the round robin loop; with a run-to-completion queue it
// degenerates into FCFS.
func runSingleQueue(sim *core.Simulation) error {
	quantum := sim.Queues.Queue(0).Quantum
	if _, err := sim.AdmitArrivals(); err != nil {
		return err
	}
	for !sim.Done() {
		index, ok := sim.Queues.Dequeue(0)
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
		done, err := sim.CpuExecute(index, quantum)
		if err != nil {
			return err
		}
		if done {
			continue
		}
		slog.Debug("context switch, back to ready queue", slog.Int("pid", sim.Processes[index].Job.ProcessId))
		if err := sim.Queues.Enqueue(0, index); err != nil {
			return err
		}
	}
	return nil
}
