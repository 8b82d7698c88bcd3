package core

type Segment struct {
	ProcessId int
	Start     int
	End       int
}

// Timeline is the append-only execution history. Once capacity is reached
// further segments are dropped and Truncated reports it.
type Timeline struct {
	segments  []Segment
	capacity  int
	truncated bool
}

// NewTimeline returns a recorder holding at most capacity segments; capacity
// <= 0 means unbounded.
func NewTimeline(capacity int) *Timeline {
	return &Timeline{capacity: capacity}
}

func (t *Timeline) Append(s Segment) bool {
	if t.capacity > 0 && len(t.segments) >= t.capacity {
		t.truncated = true
		return false
	}
	t.segments = append(t.segments, s)
	return true
}

func (t *Timeline) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

func (t *Timeline) Len() int {
	return len(t.segments)
}

func (t *Timeline) Truncated() bool {
	return t.truncated
}
