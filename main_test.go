package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/client"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

func testRunConfig(t *testing.T, input string) *config.SchedulerConfig {
	t.Helper()
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "processes.txt")
	require.NoError(t, os.WriteFile(inputFile, []byte(input), 0o644))
	return &config.SchedulerConfig{
		InputFile:                                inputFile,
		MaxProcesses:                             100,
		MaxTimelineEntries:                       1000,
		RoundRobinTimeQuantum:                    2,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{4, 8},
		FirstComeFirstServeOutputFile:            filepath.Join(dir, "fcfs.txt"),
		RoundRobinOutputFile:                     filepath.Join(dir, "gantt_data.txt"),
		MultilevelFeedbackQueueOutputFile:        filepath.Join(dir, "mlfq.txt"),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const processList = "PID Arrival Burst Priority\n1 0 5 1\n2 1 3 2\n3 2 1 3\n"

func TestRun_AllAlgorithms(t *testing.T) {
	cfg := testRunConfig(t, processList)
	var out bytes.Buffer

	code := run(&out, discardLogger(), cfg, localSimulator{config: cfg}, "all")
	require.Equal(t, 0, code)

	ass := assert.New(t)
	ass.Contains(out.String(), "Round Robin Scheduling Simulation")
	ass.Contains(out.String(), "Multilevel Feedback Queue Scheduling Simulation")
	ass.Contains(out.String(), "First-Come-First-Served Scheduling Simulation")
	ass.Contains(out.String(), "Q1 Quantum = 4, Q2 Quantum = 8, Q3 = FCFS")
	ass.Contains(out.String(), "|P1 |P2 |P3 |P1 |P2 |P1 |")

	data, err := os.ReadFile(cfg.RoundRobinOutputFile)
	require.NoError(t, err)
	ass.Equal("1,0,2\n2,2,4\n3,4,5\n1,5,7\n2,7,8\n1,8,9\n", string(data))

	data, err = os.ReadFile(cfg.FirstComeFirstServeOutputFile)
	require.NoError(t, err)
	ass.Equal("1,0,5\n2,5,8\n3,8,9\n", string(data))

	_, err = os.Stat(cfg.MultilevelFeedbackQueueOutputFile)
	ass.NoError(err)
}

func TestRun_SingleAlgorithm(t *testing.T) {
	cfg := testRunConfig(t, processList)
	var out bytes.Buffer

	require.Equal(t, 0, run(&out, discardLogger(), cfg, localSimulator{config: cfg}, "mlfq"))
	assert.NotContains(t, out.String(), "Round Robin")
	_, err := os.Stat(cfg.RoundRobinOutputFile)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_MissingInput(t *testing.T) {
	cfg := testRunConfig(t, processList)
	cfg.InputFile = filepath.Join(t.TempDir(), "missing.txt")
	var out bytes.Buffer

	assert.Equal(t, 1, run(&out, discardLogger(), cfg, localSimulator{config: cfg}, "all"))
	assert.Empty(t, out.String())
}

func TestRun_EmptyInput(t *testing.T) {
	cfg := testRunConfig(t, "PID Arrival Burst Priority\n")
	var out bytes.Buffer
	assert.Equal(t, 1, run(&out, discardLogger(), cfg, localSimulator{config: cfg}, "all"))
}

func TestRun_UnwritableDumpIsNotFatal(t *testing.T) {
	cfg := testRunConfig(t, processList)
	cfg.RoundRobinOutputFile = filepath.Join(t.TempDir(), "missing", "gantt_data.txt")
	var out bytes.Buffer

	assert.Equal(t, 0, run(&out, discardLogger(), cfg, localSimulator{config: cfg}, "rr"))
	assert.Contains(t, out.String(), "Average Waiting Time: 3.33")
	assert.NotContains(t, out.String(), "has been written")
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	cfg := testRunConfig(t, processList)
	var out bytes.Buffer
	assert.Equal(t, 1, run(&out, discardLogger(), cfg, localSimulator{config: cfg}, "sjf"))
}

const remoteURL = "http://scheduler.test:9095"

func newRemoteSimulator(t *testing.T) remoteSimulator {
	t.Helper()
	c := client.New(remoteURL, discardLogger())
	httpmock.ActivateNonDefault(c.HTTPClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return remoteSimulator{client: c}
}

func TestRun_RemoteAllUsesOneRequest(t *testing.T) {
	cfg := testRunConfig(t, processList)
	loaded, err := requests.LoadProcessesFile(cfg.InputFile, cfg.MaxProcesses)
	require.NoError(t, err)
	results, err := schedulers.ScheduleAll(&loaded.Request, cfg)
	require.NoError(t, err)

	runner := newRemoteSimulator(t)
	httpmock.RegisterResponder("POST", remoteURL+"/api/v1/all", httpmock.NewJsonResponderOrPanic(200, results))

	var out bytes.Buffer
	require.Equal(t, 0, run(&out, discardLogger(), cfg, runner, "all"))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.Equal(t, 1, httpmock.GetCallCountInfo()["POST "+remoteURL+"/api/v1/all"])
	assert.Contains(t, out.String(), "First-Come-First-Served Scheduling Simulation")
	assert.Contains(t, out.String(), "|P1 |P2 |P3 |P1 |P2 |P1 |")

	data, err := os.ReadFile(cfg.RoundRobinOutputFile)
	require.NoError(t, err)
	assert.Equal(t, "1,0,2\n2,2,4\n3,4,5\n1,5,7\n2,7,8\n1,8,9\n", string(data))
}

func TestRun_RemoteAllMissingAlgorithm(t *testing.T) {
	cfg := testRunConfig(t, processList)
	runner := newRemoteSimulator(t)
	httpmock.RegisterResponder("POST", remoteURL+"/api/v1/all",
		httpmock.NewStringResponder(200, `{"fcfs":{"algorithm":"fcfs"},"rr":{"algorithm":"rr"}}`))

	var out bytes.Buffer
	assert.Equal(t, 1, run(&out, discardLogger(), cfg, runner, "all"))
	assert.Empty(t, out.String())
}

func TestRun_RemoteSingleAlgorithm(t *testing.T) {
	cfg := testRunConfig(t, processList)
	runner := newRemoteSimulator(t)
	httpmock.RegisterResponder("POST", remoteURL+"/api/v1/fcfs",
		httpmock.NewStringResponder(200, `{"algorithm":"fcfs","timeline":[{"process_id":1,"start_time":0,"end_time":5}]}`))

	var out bytes.Buffer
	require.Equal(t, 0, run(&out, discardLogger(), cfg, runner, "fcfs"))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.NotContains(t, out.String(), "Round Robin")
}
