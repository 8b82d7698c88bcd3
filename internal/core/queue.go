package core

import (
	"errors"
	"fmt"

	"github.com/markphelps/optional"
)

var (
	ErrAlreadyQueued = errors.New("process already queued")
	ErrInvalidLevel  = errors.New("invalid queue level")
)

// ReadyQueue is a FIFO of indices into the process table. An absent quantum
// means processes in this queue run to completion.
type ReadyQueue struct {
	Quantum optional.Int
	items   []int
}

func (q *ReadyQueue) Len() int {
	return len(q.items)
}

// QueueSet holds the ready queues ordered by priority, level 0 first.
type QueueSet struct {
	queues    []ReadyQueue
	processes []Proccess
}

// NewQueueSet builds one queue per quantum. A quantum <= 0 marks a
// run-to-completion level.
func NewQueueSet(processes []Proccess, quanta ...int) *QueueSet {
	qs := &QueueSet{
		queues:    make([]ReadyQueue, len(quanta)),
		processes: processes,
	}
	for i, quantum := range quanta {
		if quantum > 0 {
			qs.queues[i].Quantum = optional.NewInt(quantum)
		}
	}
	return qs
}

func (qs *QueueSet) Levels() int {
	return len(qs.queues)
}

func (qs *QueueSet) Queue(level int) *ReadyQueue {
	return &qs.queues[level]
}

func (qs *QueueSet) Enqueue(level, index int) error {
	if level < 0 || level >= len(qs.queues) {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	p := &qs.processes[index]
	if p.Location == Ready || p.Location == Completed {
		return fmt.Errorf("%w: pid %d is %s", ErrAlreadyQueued, p.Job.ProcessId, p.Location)
	}
	q := &qs.queues[level]
	q.items = append(q.items, index)
	p.Location = Ready
	return nil
}

func (qs *QueueSet) Dequeue(level int) (int, bool) {
	if level < 0 || level >= len(qs.queues) {
		return -1, false
	}
	q := &qs.queues[level]
	if len(q.items) == 0 {
		return -1, false
	}
	index := q.items[0]
	q.items = q.items[1:]
	qs.processes[index].Location = Running
	return index, true
}

func (qs *QueueSet) IsEmpty(level int) bool {
	return len(qs.queues[level].items) == 0
}

// HighestNonEmpty returns the first non-empty level scanning from level 0.
func (qs *QueueSet) HighestNonEmpty() (int, bool) {
	for level := range qs.queues {
		if !qs.IsEmpty(level) {
			return level, true
		}
	}
	return -1, false
}
