package config

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port     int
	LogLevel string

	InputFile          string
	MaxProcesses       int
	MaxBurstTime       int
	MaxTimelineEntries int

	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int

	FirstComeFirstServeOutputFile     string
	RoundRobinOutputFile              string
	MultilevelFeedbackQueueOutputFile string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once. A missing file falls back to
// the defaults; a malformed one is fatal.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = LoadSchedulerConfig("")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// LoadSchedulerConfig reads the YAML file at path, or config.yaml in the
// working directory when path is empty.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	} else {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading scheduler config: %w", err)
		}
	}

	return &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		LogLevel:                                 v.GetString("log_level"),
		InputFile:                                v.GetString("input_file"),
		MaxProcesses:                             v.GetInt("max_processes"),
		MaxBurstTime:                             v.GetInt("max_burst_time"),
		MaxTimelineEntries:                       v.GetInt("max_timeline_entries"),
		RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
		FirstComeFirstServeOutputFile:            v.GetString("scheduler.first_come_first_serve.output_file"),
		RoundRobinOutputFile:                     v.GetString("scheduler.round_robin.output_file"),
		MultilevelFeedbackQueueOutputFile:        v.GetString("scheduler.multilevel_feedback_queue.output_file"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("input_file", "processes.txt")
	v.SetDefault("max_processes", 100)
	v.SetDefault("max_burst_time", 100000)
	v.SetDefault("max_timeline_entries", 1000)
	v.SetDefault("scheduler.round_robin.time_quantum", 4)
	v.SetDefault("scheduler.round_robin.output_file", "gantt_data.txt")
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{4, 8})
	v.SetDefault("scheduler.multilevel_feedback_queue.output_file", "mlfq.txt")
	v.SetDefault("scheduler.first_come_first_serve.output_file", "fcfs.txt")
}

// OutputFile is the timeline dump path for an algorithm name, empty when
// none is configured.
func (c *SchedulerConfig) OutputFile(algorithm string) string {
	switch algorithm {
	case "fcfs":
		return c.FirstComeFirstServeOutputFile
	case "rr":
		return c.RoundRobinOutputFile
	case "mlfq":
		return c.MultilevelFeedbackQueueOutputFile
	}
	return ""
}
