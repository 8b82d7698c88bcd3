package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

func generateResponse(algorithm string, sim *core.Simulation, withQueue bool) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(sim.Processes))
	for i := range sim.Processes {
		details := generateProcessDetails(&sim.Processes[i])
		if withQueue {
			finalQueue := sim.Processes[i].CurrentQueue + 1
			details.FinalQueue = &finalQueue
		}
		proccessDetails = append(proccessDetails, details)
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	cpuMetric := sim.CpuMetric()
	var utilization, throughput float64
	if cpuMetric.TotalTime > 0 {
		utilization = float64(cpuMetric.UtilizationTime) / float64(cpuMetric.TotalTime)
		throughput = float64(len(sim.Processes)) / float64(cpuMetric.TotalTime)
	}

	segments := sim.Timeline.Segments()
	timeline := make([]responses.TimelineSegment, 0, len(segments))
	for _, s := range segments {
		timeline = append(timeline, responses.TimelineSegment{ProcessId: s.ProcessId, Start: s.Start, End: s.End})
	}

	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		TotalTime:             float64(cpuMetric.TotalTime),
		IdleTime:              float64(cpuMetric.IdleTime),
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Timeline:              timeline,
		TimelineTruncated:     sim.Timeline.Truncated(),
		Details:               proccessDetails,
	}
}

func generateProcessDetails(proccess *core.Proccess) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      proccess.Job.ProcessId,
		ArrivalTime:    proccess.Job.ArrivalTime,
		BurstTime:      proccess.Job.BurstTime,
		CompletionTime: proccess.CompletionTime,
		ResponseTime:   float64(proccess.ResponseTime()),
		TurnAroundTime: float64(proccess.TurnAroundTime),
		WaitingTime:    float64(proccess.WaitingTime),
	}
}
