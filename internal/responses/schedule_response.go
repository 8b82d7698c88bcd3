package responses

type ProcessResponse struct {
	ProcessId      int     `json:"process_id"`
	ArrivalTime    int     `json:"arrival_time"`
	BurstTime      int     `json:"burst_time"`
	CompletionTime int     `json:"completion_time"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
	// FinalQueue is the 1-based MLFQ level the process finished in.
	FinalQueue *int `json:"final_queue,omitempty"`
}
type TimelineSegment struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start_time"`
	End       int `json:"end_time"`
}
type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []TimelineSegment `json:"timeline"`
	TimelineTruncated     bool              `json:"timeline_truncated"`
	JobsTruncated         bool              `json:"jobs_truncated"`
	Details               []ProcessResponse `json:"details"`
}
