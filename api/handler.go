package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Register mounts the handlers under /api/v1.
func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, truncated, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	results, err := schedulers.ScheduleAll(request, s.config)
	if err != nil {
		return scheduleError(ctx, err)
	}
	for algorithm, response := range results {
		response.JobsTruncated = truncated
		results[algorithm] = response
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	request, truncated, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	response, err := schedulers.Schedule(algorithm, request, s.config)
	if err != nil {
		return scheduleError(ctx, err)
	}
	response.JobsTruncated = truncated
	return ctx.JSON(response)
}

// parseRequest decodes the body and keeps at most MaxProcesses jobs,
// reporting whether the rest were dropped.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, bool, bool) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		slog.Warn("invalid schedule request", logging.ErrAttr(err))
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
		return nil, false, false
	}
	received := len(request.Jobs)
	truncated := request.Limit(s.config.MaxProcesses)
	if truncated {
		slog.Warn("maximum number of processes reached, remaining jobs ignored", slog.Int("received", received), slog.Int("max_processes", s.config.MaxProcesses))
	}
	return request, truncated, true
}

func scheduleError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, core.ErrNoProcesses) || errors.Is(err, core.ErrInvalidProcess) || errors.Is(err, schedulers.ErrInvalidQuantum) || errors.Is(err, schedulers.ErrBurstTooLarge) {
		status = fiber.StatusUnprocessableEntity
	}
	slog.Error("can not process request", logging.ErrAttr(err))
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
