package core

import (
	"errors"
	"fmt"
	"math"

	"cpu-scheduler/internal/requests"
)

var ErrInvalidProcess = errors.New("invalid process")

// Location tells where a process currently lives. It is the only record of
// queue membership, so a process can never sit in two queues at once.
type Location int

const (
	NotArrived Location = iota
	Ready
	Running
	Completed
)

func (l Location) String() string {
	switch l {
	case NotArrived:
		return "not-arrived"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("location(%d)", int(l))
}

type Proccess struct {
	Job *requests.Job

	RemainingTime  int
	CompletionTime int
	TurnAroundTime int
	WaitingTime    int
	// FirstRunTime is -1 until the process is dispatched for the first time.
	FirstRunTime int
	IsCompleted  bool

	// CurrentQueue only moves down (MLFQ demotion).
	CurrentQueue int
	Location     Location
}

func (p *Proccess) ResponseTime() int {
	if p.FirstRunTime < 0 {
		return 0
	}
	return p.FirstRunTime - p.Job.ArrivalTime
}

// complete marks the process done at the given time and derives its statistics.
func (p *Proccess) complete(now int) {
	p.CompletionTime = now
	p.TurnAroundTime = p.CompletionTime - p.Job.ArrivalTime
	p.WaitingTime = p.TurnAroundTime - p.Job.BurstTime
	p.IsCompleted = true
	p.Location = Completed
}

// NewProcessTable copies the jobs into fresh process rows, keeping load order.
// The clock never passes the latest arrival plus the sum of all bursts, so
// jobs are rejected when that bound does not fit in an int.
func NewProcessTable(jobs []requests.Job) ([]Proccess, error) {
	table := make([]Proccess, 0, len(jobs))
	latest, work := 0, 0
	for i := range jobs {
		job := jobs[i]
		if job.ArrivalTime < 0 || job.BurstTime < 0 {
			return nil, fmt.Errorf("%w: pid %d has arrival %d and burst %d", ErrInvalidProcess, job.ProcessId, job.ArrivalTime, job.BurstTime)
		}
		if job.BurstTime > math.MaxInt-work {
			return nil, fmt.Errorf("%w: pid %d overflows the total burst time", ErrInvalidProcess, job.ProcessId)
		}
		work += job.BurstTime
		latest = max(latest, job.ArrivalTime)
		if latest > math.MaxInt-work {
			return nil, fmt.Errorf("%w: pid %d overflows the simulation clock", ErrInvalidProcess, job.ProcessId)
		}
		table = append(table, Proccess{
			Job:           &job,
			RemainingTime: job.BurstTime,
			FirstRunTime:  -1,
			Location:      NotArrived,
		})
	}
	return table, nil
}
