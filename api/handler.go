package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpusim/config"
	"cpusim/internal/core"
	"cpusim/internal/procload"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
	"cpusim/internal/schedulers"
	"cpusim/internal/store"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTime(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	LiveProcesses(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	store   store.Store
	sampler *procload.Sampler
	logger  *slog.Logger
}

// NewSchedulerHandlerImpl wires the handler. store may be nil, in which
// case runs are not persisted.
func NewSchedulerHandlerImpl(cfg *config.SchedulerConfig, st store.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:  cfg,
		store:   st,
		sampler: procload.NewSampler(cfg.LiveSampleInterval, cfg.LiveBurstScale),
		logger:  logger.With("component", "api"),
	}
}

func (s *SchedulerHandlerImpl) defaults() core.Config {
	return core.Config{
		ContextSwitchOverhead: s.config.ContextSwitchOverhead,
		TimeQuantum:           s.config.RoundRobinTimeQuantum,
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTime(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTime)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	cfg := request.Config(s.defaults())
	results, err := schedulers.ScheduleAll(request, cfg)
	if err != nil {
		return s.scheduleError(ctx, err)
	}
	for i := range results {
		s.saveRun(ctx.UserContext(), cfg, results[i])
	}
	return ctx.JSON(results)
}

// LiveProcesses samples the OS and returns the derived job list without
// running a simulation; clients feed it back into a schedule endpoint.
func (s *SchedulerHandlerImpl) LiveProcesses(ctx *fiber.Ctx) error {
	jobs, err := s.sampler.Sample()
	if err != nil {
		s.logger.Error("live sample failed", "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not sample processes"})
	}
	return ctx.JSON(requests.ScheduleRequest{Jobs: jobs})
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.JSON([]store.Run{})
	}
	runs, err := s.store.ListRuns(ctx.UserContext(), ctx.QueryInt("limit", 50))
	if err != nil {
		s.logger.Error("list runs failed", "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not list runs"})
	}
	if runs == nil {
		runs = []store.Run{}
	}
	return ctx.JSON(runs)
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "run not found"})
	}
	run, err := s.store.GetRun(ctx.UserContext(), ctx.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "run not found"})
	}
	if err != nil {
		s.logger.Error("get run failed", "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not load run"})
	}
	return ctx.JSON(run)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	cfg := request.Config(s.defaults())
	response, err := schedulers.Schedule(alg, request, cfg)
	if err != nil {
		return s.scheduleError(ctx, err)
	}
	s.saveRun(ctx.UserContext(), cfg, response)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) scheduleError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, core.ErrInvalidConfig) || errors.Is(err, core.ErrInvalidProcess) {
		return badRequest(ctx, err.Error())
	}
	s.logger.Error("schedule failed", "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

// saveRun persists the run when a store is configured. Persistence
// failures are logged, never surfaced: the response is already computed.
func (s *SchedulerHandlerImpl) saveRun(ctx context.Context, cfg core.Config, response responses.ScheduleResponse) {
	if s.store == nil {
		return
	}
	payload, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("marshal run", "error", err)
		return
	}
	run := &store.Run{
		Algorithm:             response.Algorithm,
		ProcessCount:          len(response.Details),
		ContextSwitchOverhead: cfg.ContextSwitchOverhead,
		TimeQuantum:           cfg.TimeQuantum,
		TotalTime:             response.TotalTime,
		CpuUtilization:        response.CpuUtilization,
		AverageWaitingTime:    response.AverageWaitingTime,
		AverageTurnAroundTime: response.AverageTurnAroundTime,
		Response:              string(payload),
	}
	if err := s.store.SaveRun(ctx, run); err != nil {
		s.logger.Error("save run", "error", err)
	}
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

func badRequest(ctx *fiber.Ctx, msg string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
