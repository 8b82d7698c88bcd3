package core

import (
	"errors"
	"fmt"
	"log/slog"

	"cpu-scheduler/internal/requests"
)

var ErrNoProcesses = errors.New("no processes to schedule")

// Simulation owns everything a single scheduling run mutates: the process
// table, the ready queues, the timeline and the clock.
type Simulation struct {
	Processes []Proccess
	Queues    *QueueSet
	Timeline  *Timeline
	Clock     int

	completed int
}

// NewSimulation builds a run over fresh copies of jobs. Each quantum creates
// one ready queue, highest priority first; quantum <= 0 is run-to-completion.
func NewSimulation(jobs []requests.Job, timelineCapacity int, quanta ...int) (*Simulation, error) {
	if len(jobs) == 0 {
		return nil, ErrNoProcesses
	}
	if len(quanta) == 0 {
		return nil, fmt.Errorf("%w: at least one ready queue is needed", ErrInvalidLevel)
	}
	processes, err := NewProcessTable(jobs)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		Processes: processes,
		Queues:    NewQueueSet(processes, quanta...),
		Timeline:  NewTimeline(timelineCapacity),
	}, nil
}

func (s *Simulation) Done() bool {
	return s.completed == len(s.Processes)
}

func (s *Simulation) CompletedCount() int {
	return s.completed
}

// AdmitArrivals moves every process that has arrived by the current clock
// into the top level queue, in table order. Zero-burst processes complete
// at their arrival time without touching the CPU.
func (s *Simulation) AdmitArrivals() (int, error) {
	admitted := 0
	for i := range s.Processes {
		p := &s.Processes[i]
		if p.Location != NotArrived || p.Job.ArrivalTime > s.Clock {
			continue
		}
		p.CurrentQueue = 0
		admitted++
		if p.Job.BurstTime == 0 {
			p.FirstRunTime = p.Job.ArrivalTime
			p.complete(p.Job.ArrivalTime)
			s.completed++
			slog.Debug("zero burst process completed on arrival", slog.Int("pid", p.Job.ProcessId), slog.Int("time", p.Job.ArrivalTime))
			continue
		}
		if err := s.Queues.Enqueue(0, i); err != nil {
			return admitted, err
		}
	}
	return admitted, nil
}

// NextArrival returns the earliest arrival time among processes that have
// not arrived yet.
func (s *Simulation) NextArrival() (int, bool) {
	next, found := 0, false
	for i := range s.Processes {
		p := &s.Processes[i]
		if p.Location != NotArrived {
			continue
		}
		if !found || p.Job.ArrivalTime < next {
			next, found = p.Job.ArrivalTime, true
		}
	}
	return next, found
}

// Idle jumps the clock to the next arrival and admits it. It reports false
// when nothing is left to arrive.
func (s *Simulation) Idle() (bool, error) {
	next, ok := s.NextArrival()
	if !ok {
		return false, nil
	}
	if next > s.Clock {
		slog.Debug("cpu idle", slog.Int("from", s.Clock), slog.Int("to", next))
		s.Clock = next
	}
	if _, err := s.AdmitArrivals(); err != nil {
		return false, err
	}
	return true, nil
}
