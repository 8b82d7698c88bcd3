package schedulers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

func testConfig() *config.SchedulerConfig {
	return &config.SchedulerConfig{
		RoundRobinTimeQuantum:                    2,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{4, 8},
	}
}

func randomRequest(r *rand.Rand, n int) *requests.ScheduleRequests {
	request := &requests.ScheduleRequests{}
	for i := 0; i < n; i++ {
		request.Jobs = append(request.Jobs, requests.Job{
			ProcessId:   i + 1,
			ArrivalTime: r.Intn(40),
			BurstTime:   1 + r.Intn(15),
			Priority:    r.Intn(5),
		})
	}
	return request
}

func assertScheduleInvariants(t *testing.T, request *requests.ScheduleRequests, response responses.ScheduleResponse) {
	t.Helper()
	require.False(t, response.TimelineTruncated)
	require.Len(t, response.Details, len(request.Jobs))

	ran := map[int]int{}
	for i, s := range response.Timeline {
		assert.Greater(t, s.End, s.Start)
		ran[s.ProcessId] += s.End - s.Start
		if i == 0 {
			continue
		}
		prev := response.Timeline[i-1]
		assert.LessOrEqual(t, prev.Start, s.Start)
		assert.LessOrEqual(t, prev.End, s.Start)
		if prev.End < s.Start {
			arrives := false
			for _, job := range request.Jobs {
				if job.ArrivalTime == s.Start {
					arrives = true
				}
			}
			assert.True(t, arrives, "idle gap %d-%d does not end at an arrival", prev.End, s.Start)
		}
	}

	for i, d := range response.Details {
		job := request.Jobs[i]
		assert.Equal(t, job.BurstTime, ran[job.ProcessId], "pid %d", job.ProcessId)
		assert.Equal(t, float64(d.CompletionTime-job.ArrivalTime), d.TurnAroundTime)
		assert.Equal(t, d.TurnAroundTime-float64(job.BurstTime), d.WaitingTime)
		assert.GreaterOrEqual(t, d.WaitingTime, 0.0)
		assert.GreaterOrEqual(t, d.ResponseTime, 0.0)
		assert.LessOrEqual(t, d.ResponseTime, d.WaitingTime)
	}
}

func TestSchedule_Invariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	cfg := testConfig()
	for round := 0; round < 25; round++ {
		request := randomRequest(r, 1+r.Intn(12))
		for _, algorithm := range Algorithms() {
			response, err := Schedule(algorithm, request, cfg)
			require.NoError(t, err)
			assertScheduleInvariants(t, request, response)

			again, err := Schedule(algorithm, request, cfg)
			require.NoError(t, err)
			assert.Equal(t, response, again, "%s is not deterministic", algorithm)
		}
	}
}

func TestScheduleFirstComeFirstServe_MatchesRoundRobinWithLargeQuantum(t *testing.T) {
	request := jobs([3]int{1, 0, 5}, [3]int{2, 1, 3}, [3]int{3, 2, 1}, [3]int{4, 20, 2})
	fcfs, err := ScheduleFirstComeFirstServe(request, 0)
	require.NoError(t, err)
	rr, err := ScheduleRoundRobin(request, 5, 0)
	require.NoError(t, err)

	assert.Equal(t, FirstComeFirstServe, fcfs.Algorithm)
	assert.Equal(t, rr.Timeline, fcfs.Timeline)
	assert.Equal(t, rr.Details, fcfs.Details)
	assert.Equal(t, []responses.TimelineSegment{seg(1, 0, 5), seg(2, 5, 8), seg(3, 8, 9), seg(4, 20, 22)}, fcfs.Timeline)
}

func TestSchedule_UnknownAlgorithm(t *testing.T) {
	_, err := Schedule("sjf", jobs([3]int{1, 0, 1}), testConfig())
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestScheduleAll(t *testing.T) {
	results, err := ScheduleAll(jobs([3]int{1, 0, 10}), testConfig())
	require.NoError(t, err)
	assert.Len(t, results, 3)
	for _, algorithm := range Algorithms() {
		assert.Equal(t, algorithm, results[algorithm].Algorithm)
	}
	assert.Len(t, results[FirstComeFirstServe].Timeline, 1)
	assert.Len(t, results[RoundRobin].Timeline, 5)
	assert.Len(t, results[MultilevelFeedbackQueue].Timeline, 2)
}

func TestSchedule_BurstLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBurstTime = 100
	request := jobs([3]int{1, 0, 100}, [3]int{2, 3, 50000000})

	for _, algorithm := range Algorithms() {
		_, err := Schedule(algorithm, request, cfg)
		assert.ErrorIs(t, err, ErrBurstTooLarge, algorithm)
	}
	_, err := ScheduleAll(request, cfg)
	assert.ErrorIs(t, err, ErrBurstTooLarge)

	response, err := Schedule(RoundRobin, jobs([3]int{1, 0, 100}), cfg)
	require.NoError(t, err)
	assert.Equal(t, 100.0, response.TotalTime)
}

func TestScheduleAll_PropagatesErrors(t *testing.T) {
	cfg := testConfig()
	cfg.MultilevelFeedbackQueueLevelsTimeQuantum = nil
	_, err := ScheduleAll(jobs([3]int{1, 0, 10}), cfg)
	assert.ErrorIs(t, err, ErrInvalidQuantum)
}
