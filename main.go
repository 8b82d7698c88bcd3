package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/client"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

var titles = map[string]string{
	schedulers.FirstComeFirstServe:     "First-Come-First-Served Scheduling Simulation",
	schedulers.RoundRobin:              "Round Robin Scheduling Simulation",
	schedulers.MultilevelFeedbackQueue: "Multilevel Feedback Queue Scheduling Simulation",
}

func main() {
	configPath := flag.String("config", "", "path to the YAML config (default ./config.yaml)")
	serve := flag.Bool("serve", false, "serve the HTTP API instead of simulating the input file")
	remote := flag.String("remote", "", "base URL of a scheduler server to run the simulation on")
	algorithm := flag.String("algorithm", "all", "fcfs, rr, mlfq or all")
	input := flag.String("input", "", "process list file, overrides input_file")
	flag.Parse()

	var schedulerConfig *config.SchedulerConfig
	if *configPath == "" {
		schedulerConfig = config.GetSchedulerConfig()
	} else {
		c, err := config.LoadSchedulerConfig(*configPath)
		if err != nil {
			log.Fatalln(err)
		}
		schedulerConfig = c
	}
	if *input != "" {
		schedulerConfig.InputFile = *input
	}

	logger := logging.BuildLogger(schedulerConfig.LogLevel)
	slog.SetDefault(logger)

	if *serve {
		app := fiber.New()
		api.Register(app, api.NewSchedulerHandlerImpl(schedulerConfig))
		log.Fatalln(app.Listen(fmt.Sprintf(":%d", schedulerConfig.Port)))
	}

	var runner simulator = localSimulator{config: schedulerConfig}
	if *remote != "" {
		runner = remoteSimulator{client: client.New(*remote, logger)}
	}
	os.Exit(run(os.Stdout, logger, schedulerConfig, runner, *algorithm))
}

type simulator interface {
	simulate(algorithm string, request *requests.ScheduleRequests) (responses.ScheduleResponse, error)
	simulateAll(request *requests.ScheduleRequests) (map[string]responses.ScheduleResponse, error)
}

type localSimulator struct {
	config *config.SchedulerConfig
}

func (l localSimulator) simulate(algorithm string, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return schedulers.Schedule(algorithm, request, l.config)
}

func (l localSimulator) simulateAll(request *requests.ScheduleRequests) (map[string]responses.ScheduleResponse, error) {
	return schedulers.ScheduleAll(request, l.config)
}

type remoteSimulator struct {
	client *client.Client
}

func (r remoteSimulator) simulate(algorithm string, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return r.client.Simulate(ctx, algorithm, request)
}

func (r remoteSimulator) simulateAll(request *requests.ScheduleRequests) (map[string]responses.ScheduleResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return r.client.SimulateAll(ctx, request)
}

// simulateSelected runs one algorithm, or every algorithm in a single call
// when algorithm is "all".
func simulateSelected(runner simulator, algorithm string, request *requests.ScheduleRequests) ([]string, map[string]responses.ScheduleResponse, error) {
	if algorithm == "all" {
		results, err := runner.simulateAll(request)
		if err != nil {
			return nil, nil, err
		}
		for _, name := range schedulers.Algorithms() {
			if _, ok := results[name]; !ok {
				return nil, nil, fmt.Errorf("%w: no %s result", client.ErrServer, name)
			}
		}
		return schedulers.Algorithms(), results, nil
	}
	response, err := runner.simulate(algorithm, request)
	if err != nil {
		return nil, nil, err
	}
	return []string{algorithm}, map[string]responses.ScheduleResponse{algorithm: response}, nil
}

// run loads the process list, simulates the selected algorithms and writes
// their charts, tables and dumps. It returns the process exit status.
func run(w io.Writer, logger *slog.Logger, cfg *config.SchedulerConfig, runner simulator, algorithm string) int {
	loaded, err := requests.LoadProcessesFile(cfg.InputFile, cfg.MaxProcesses)
	if err != nil {
		logger.Error("cannot load processes", slog.String("file", cfg.InputFile), logging.ErrAttr(err))
		return 1
	}
	if loaded.Truncated {
		logger.Warn("maximum number of processes reached, remaining records ignored", slog.Int("max_processes", cfg.MaxProcesses))
	}
	if len(loaded.Request.Jobs) == 0 {
		logger.Error("no processes loaded", slog.String("file", cfg.InputFile))
		return 1
	}

	algorithms, results, err := simulateSelected(runner, algorithm, &loaded.Request)
	if err != nil {
		logger.Error("simulation failed", slog.String("algorithm", algorithm), logging.ErrAttr(err))
		return 1
	}

	for _, name := range algorithms {
		response := results[name]

		_, _ = fmt.Fprintln(w, titles[name])
		switch name {
		case schedulers.RoundRobin:
			_, _ = fmt.Fprintf(w, "Time Quantum = %d\n\n", cfg.RoundRobinTimeQuantum)
		case schedulers.MultilevelFeedbackQueue:
			q := cfg.MultilevelFeedbackQueueLevelsTimeQuantum
			if len(q) == 2 {
				_, _ = fmt.Fprintf(w, "Q1 Quantum = %d, Q2 Quantum = %d, Q3 = FCFS\n\n", q[0], q[1])
			}
		default:
			_, _ = fmt.Fprintln(w)
		}
		render.WriteProcesses(w, loaded.Request.Jobs)

		if err := render.WriteGantt(w, response.Timeline); err != nil {
			logger.Warn("cannot render gantt chart", logging.ErrAttr(err))
		}
		if response.TimelineTruncated {
			logger.Warn("timeline truncated", slog.String("algorithm", name), slog.Int("max_timeline_entries", cfg.MaxTimelineEntries))
		}
		render.WriteStatistics(w, response)

		path := cfg.OutputFile(name)
		if path == "" {
			continue
		}
		if err := render.DumpTimelineFile(path, response.Timeline); err != nil {
			logger.Warn("could not create gantt chart data file", logging.ErrAttr(err))
			continue
		}
		_, _ = fmt.Fprintf(w, "\nGantt chart data has been written to '%s'.\n\n", path)
	}
	return 0
}
