package requests

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	// Priority is carried from the input file; no scheduler uses it.
	Priority int `json:"priority"`
}
type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}

// Limit drops every job past the first limit and reports whether any were
// dropped. A limit <= 0 keeps every job.
func (r *ScheduleRequests) Limit(limit int) bool {
	if limit <= 0 || len(r.Jobs) <= limit {
		return false
	}
	r.Jobs = r.Jobs[:limit]
	return true
}
