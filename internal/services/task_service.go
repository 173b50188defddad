package services

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/taskgate/internal/models"
	"github.com/adanyl0v/taskgate/internal/remote"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	remote remote.Caller
}

func NewTaskService(
	logger zerolog.Logger,
	caller remote.Caller,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		remote: caller,
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, filter models.TaskFilter) (*remote.Envelope, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	params := remote.Params{"limit": limit}
	setString(params, "status", filter.Status)
	setString(params, "repoURL", filter.RepoURL)
	if filter.Ready {
		params["ready"] = true
	}

	envelope, err := s.remote.Call(ctx, MethodListTasks, params)
	if err != nil {
		s.logger.Error().Ctx(ctx).
			Err(err).
			Int("limit", limit).
			Msg("failed to list tasks")
		return nil, err
	}

	s.logger.Info().Ctx(ctx).
		Int("limit", limit).
		Bool("ready", filter.Ready).
		Msg("listed tasks")
	return envelope, nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, taskID string) (*remote.Envelope, error) {
	envelope, err := s.remote.Call(ctx, MethodGetTask, remote.Params{"taskID": taskID})
	if err != nil {
		s.logger.Error().Ctx(ctx).
			Err(err).
			Str("task_id", taskID).
			Msg("failed to get task")
		return nil, err
	}

	s.logger.Info().Ctx(ctx).
		Str("task_id", taskID).
		Msg("got task")
	return envelope, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, fields models.TaskFields) (*remote.Envelope, error) {
	params := fieldParams(fields)
	if _, ok := params["status"]; !ok {
		params["status"] = models.StatusOpen
	}

	envelope, err := s.remote.Call(ctx, MethodCreateTask, params)
	if err != nil {
		s.logger.Error().Ctx(ctx).
			Err(err).
			Msg("failed to create task")
		return nil, err
	}
	s.logger.Debug().Ctx(ctx).
		Int("fields", len(params)).
		Msg("sent create task")

	s.logger.Info().Ctx(ctx).Msg("created task")
	return envelope, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, taskID string, fields models.TaskFields) (*remote.Envelope, error) {
	params := fieldParams(fields)
	params["taskID"] = taskID

	if len(params) == 1 {
		s.logger.Warn().Ctx(ctx).
			Str("task_id", taskID).
			Msg("no fields to update")
	}

	envelope, err := s.remote.Call(ctx, MethodUpdateTask, params)
	if err != nil {
		s.logger.Error().Ctx(ctx).
			Err(err).
			Str("task_id", taskID).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().Ctx(ctx).
		Str("task_id", taskID).
		Msg("updated task")
	return envelope, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID string) (*remote.Envelope, error) {
	envelope, err := s.remote.Call(ctx, MethodDeleteTask, remote.Params{"taskID": taskID})
	if err != nil {
		s.logger.Error().Ctx(ctx).
			Err(err).
			Str("task_id", taskID).
			Msg("failed to delete task")
		return nil, err
	}

	s.logger.Info().Ctx(ctx).
		Str("task_id", taskID).
		Msg("deleted task")
	return envelope, nil
}

// fieldParams copies only the present, non-null fields.
func fieldParams(fields models.TaskFields) remote.Params {
	params := remote.Params{}
	setRaw(params, "title", fields.Title)
	setRaw(params, "description", fields.Description)
	setRaw(params, "status", fields.Status)
	setRaw(params, "repoURL", fields.RepoURL)
	setRaw(params, "dependsOn", fields.DependsOn)
	setRaw(params, "parentID", fields.ParentID)
	return params
}

func setRaw(params remote.Params, key string, value json.RawMessage) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return
	}
	params[key] = value
}

func setString(params remote.Params, key string, value *string) {
	if value != nil {
		params[key] = *value
	}
}
