package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"workhub/internal/models"
)

// SetProjectStatus moves a project to status. Any status may follow any
// other; only the status and updatedAt fields change.
func (s *Service) SetProjectStatus(ctx context.Context, id, status string) (models.Project, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return models.Project{}, &models.MissingFieldError{Fields: []string{"status"}}
	}
	next, err := models.ParseProjectStatus(status)
	if err != nil {
		return models.Project{}, err
	}

	current, err := s.store.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	updated, err := s.store.UpdateProjectStatus(ctx, id, next)
	if err != nil {
		return models.Project{}, err
	}
	s.logger.Info("project status changed",
		slog.String("id", id),
		slog.String("from", string(current.Status)),
		slog.String("to", string(updated.Status)))
	return updated, nil
}

// SetTaskStatus moves a task to status and writes the whole task back
// after re-validating it.
func (s *Service) SetTaskStatus(ctx context.Context, id, status string) (models.Task, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return models.Task{}, &models.MissingFieldError{Fields: []string{"status"}}
	}
	next, err := models.ParseTaskStatus(status)
	if err != nil {
		return models.Task{}, err
	}

	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	prev := task.Status
	task.Status = next
	if err := task.Validate(); err != nil {
		return models.Task{}, fmt.Errorf("task %s: %w", id, err)
	}

	saved, err := s.store.SaveTask(ctx, task)
	if err != nil {
		return models.Task{}, err
	}
	s.logger.Info("task status changed",
		slog.String("id", id),
		slog.String("from", string(prev)),
		slog.String("to", string(saved.Status)))
	return saved, nil
}
