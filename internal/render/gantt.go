package render

import (
	"fmt"
	"io"
	"strings"

	"cpu-scheduler/internal/responses"
)

// WriteGantt draws the timeline as an ASCII chart: one "P<id> |" cell per
// segment between dashed borders, then the start time and each segment end.
func WriteGantt(w io.Writer, timeline []responses.TimelineSegment) error {
	var b strings.Builder
	b.WriteString("\nGantt Chart:\n")
	if len(timeline) == 0 {
		b.WriteString("(no segments)\n\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	border := strings.Repeat("----", len(timeline)) + "-\n"
	b.WriteString(border)
	b.WriteString("|")
	for _, s := range timeline {
		fmt.Fprintf(&b, "P%d |", s.ProcessId)
	}
	b.WriteString("\n")
	b.WriteString(border)

	fmt.Fprintf(&b, "%-2d", timeline[0].Start)
	for _, s := range timeline {
		fmt.Fprintf(&b, "  %-2d", s.End)
	}
	b.WriteString("\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}
