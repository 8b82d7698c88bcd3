package core

import (
	"log/slog"

	"github.com/markphelps/optional"
)

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CpuExecute runs the process at index for one slice of at most quantum
// ticks, or to completion when quantum is absent. Arrivals up to the end of
// the slice are admitted before it returns, so a caller requeueing the
// process puts it behind them.
func (s *Simulation) CpuExecute(index int, quantum optional.Int) (done bool, err error) {
	p := &s.Processes[index]

	slice := p.RemainingTime
	if q := quantum.OrElse(slice); q < slice {
		slice = q
	}
	if p.FirstRunTime < 0 {
		p.FirstRunTime = s.Clock
	}

	wasTruncated := s.Timeline.Truncated()
	s.Timeline.Append(Segment{ProcessId: p.Job.ProcessId, Start: s.Clock, End: s.Clock + slice})
	if !wasTruncated && s.Timeline.Truncated() {
		slog.Warn("timeline capacity reached, later segments are not recorded", slog.Int("capacity", s.Timeline.capacity))
	}

	slog.Debug("process executed", slog.Int("pid", p.Job.ProcessId), slog.Int("start", s.Clock), slog.Int("end", s.Clock+slice), slog.Int("queue", p.CurrentQueue))
	s.Clock += slice
	p.RemainingTime -= slice

	if _, err := s.AdmitArrivals(); err != nil {
		return false, err
	}

	if p.RemainingTime == 0 {
		p.complete(s.Clock)
		s.completed++
		slog.Debug("process completed", slog.Int("pid", p.Job.ProcessId), slog.Int("time", s.Clock))
		return true, nil
	}
	return false, nil
}

// CpuMetric measures the run from time zero to the last completion.
func (s *Simulation) CpuMetric() CpuMetric {
	var metric CpuMetric
	for i := range s.Processes {
		p := &s.Processes[i]
		metric.UtilizationTime += p.Job.BurstTime
		if p.CompletionTime > metric.TotalTime {
			metric.TotalTime = p.CompletionTime
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}
