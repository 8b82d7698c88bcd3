package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"cpu-scheduler/internal/responses"
)

// WriteTimelineDump writes one "process_id,start,end" line per segment, no header.
func WriteTimelineDump(w io.Writer, timeline []responses.TimelineSegment) error {
	writer := csv.NewWriter(w)
	for _, s := range timeline {
		record := []string{strconv.Itoa(s.ProcessId), strconv.Itoa(s.Start), strconv.Itoa(s.End)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func DumpTimelineFile(path string, timeline []responses.TimelineSegment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating timeline dump %s: %w", path, err)
	}
	if err := WriteTimelineDump(f, timeline); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing timeline dump %s: %w", path, err)
	}
	return f.Close()
}
