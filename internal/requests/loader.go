package requests

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrInputUnavailable = errors.New("process list unavailable")

// LoadResult is a parsed process list. Truncated is set when the record cap
// stopped the loader before the end of the input.
type LoadResult struct {
	Request   ScheduleRequests
	Truncated bool
}

// LoadProcesses reads a header line followed by "id arrival burst priority"
// records. Blank lines are skipped; reading stops quietly at the first line
// that is not exactly four integers. maxProcesses <= 0 disables the cap.
func LoadProcesses(r io.Reader, maxProcesses int) (LoadResult, error) {
	var result LoadResult
	scanner := bufio.NewScanner(r)

	// header
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return result, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
		}
		return result, nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		job, ok := parseJob(line)
		if !ok {
			break
		}
		if maxProcesses > 0 && len(result.Request.Jobs) >= maxProcesses {
			result.Truncated = true
			break
		}
		result.Request.Jobs = append(result.Request.Jobs, job)
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	return result, nil
}

func LoadProcessesFile(path string, maxProcesses int) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadProcesses(f, maxProcesses)
}

func parseJob(line string) (Job, bool) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Job{}, false
	}
	var values [4]int
	for i := range values {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return Job{}, false
		}
		values[i] = v
	}
	return Job{
		ProcessId:   values[0],
		ArrivalTime: values[1],
		BurstTime:   values[2],
		Priority:    values[3],
	}, true
}
