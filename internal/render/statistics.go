package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// WriteStatistics prints the per-process table with averages in the footer.
// The final queue column is shown when any process carries one.
func WriteStatistics(w io.Writer, response responses.ScheduleResponse) {
	withQueue := false
	for _, d := range response.Details {
		if d.FinalQueue != nil {
			withQueue = true
			break
		}
	}

	_, _ = fmt.Fprintln(w, "Process Statistics:")
	table := tablewriter.NewWriter(w)
	header := []string{"PID", "Arrival", "Burst", "Waiting", "Turnaround"}
	if withQueue {
		header = append(header, "Final Queue")
	}
	table.SetHeader(header)

	for _, d := range response.Details {
		row := []string{
			"P" + strconv.Itoa(d.ProcessId),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		}
		if withQueue {
			queue := "-"
			if d.FinalQueue != nil {
				queue = "Q" + strconv.Itoa(*d.FinalQueue)
			}
			row = append(row, queue)
		}
		table.Append(row)
	}

	footer := []string{"", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
	}
	if withQueue {
		footer = append(footer, "")
	}
	table.SetFooter(footer)
	table.Render()

	_, _ = fmt.Fprintf(w, "\nAverage Waiting Time: %.2f\n", response.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", response.AverageTurnAroundTime)
	_, _ = fmt.Fprintf(w, "Average Response Time: %.2f\n", response.AverageResponseTime)
	_, _ = fmt.Fprintf(w, "CPU Utilization: %.2f%%\n", response.CpuUtilization*100)
	_, _ = fmt.Fprintf(w, "Throughput: %.2f/t\n", response.CpuThroughput)
}

// WriteProcesses prints the loaded input list.
func WriteProcesses(w io.Writer, jobs []requests.Job) {
	_, _ = fmt.Fprintln(w, "Input Processes:")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst"})
	for _, job := range jobs {
		table.Append([]string{"P" + strconv.Itoa(job.ProcessId), strconv.Itoa(job.ArrivalTime), strconv.Itoa(job.BurstTime)})
	}
	table.Render()
}
