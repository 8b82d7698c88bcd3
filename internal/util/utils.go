package util

import (
	"cpu-scheduler/internal/responses"

	"gonum.org/v1/gonum/stat"
)

// CalculateAverage returns zeros for an empty list.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}
	waitingTimes := make([]float64, 0, len(proccessDetails))
	responseTimes := make([]float64, 0, len(proccessDetails))
	turnAroundTimes := make([]float64, 0, len(proccessDetails))

	for _, proccess := range proccessDetails {
		waitingTimes = append(waitingTimes, proccess.WaitingTime)
		responseTimes = append(responseTimes, proccess.ResponseTime)
		turnAroundTimes = append(turnAroundTimes, proccess.TurnAroundTime)
	}

	averageWaitingTime = stat.Mean(waitingTimes, nil)
	averageResponseTime = stat.Mean(responseTimes, nil)
	averageTimeAroundTime = stat.Mean(turnAroundTimes, nil)
	return
}
