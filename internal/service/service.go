// Package service applies validation, status transitions and statistics
// on top of a storage.Store.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"workhub/internal/models"
	"workhub/internal/storage"
)

// Service is the business layer used by the HTTP handlers.
type Service struct {
	store  storage.Store
	logger *slog.Logger
}

// New wraps store. A nil logger falls back to slog.Default.
func New(store storage.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// CreateProject validates in and persists the project.
func (s *Service) CreateProject(ctx context.Context, in models.ProjectInput) (models.Project, error) {
	p, err := in.Build()
	if err != nil {
		return models.Project{}, err
	}
	created, err := s.store.CreateProject(ctx, p)
	if err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}
	s.logger.Debug("project created", slog.String("id", created.ID))
	return created, nil
}

// ListProjects returns all projects, newest first.
func (s *Service) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.store.ListProjects(ctx)
}

// DeleteProject removes a project. Its tasks are kept.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	return s.store.DeleteProject(ctx, id)
}

// CreateTask validates in and persists the task. The employee and
// project it names are not looked up.
func (s *Service) CreateTask(ctx context.Context, in models.TaskInput) (models.Task, error) {
	t, err := in.Build()
	if err != nil {
		return models.Task{}, err
	}
	created, err := s.store.CreateTask(ctx, t)
	if err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}
	s.logger.Debug("task created", slog.String("id", created.ID))
	return created, nil
}

// ListTasks returns all tasks with their references expanded.
func (s *Service) ListTasks(ctx context.Context) ([]models.TaskView, error) {
	return s.store.ListTasks(ctx)
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	return s.store.DeleteTask(ctx, id)
}

// CreateEmployee validates in and persists the employee.
func (s *Service) CreateEmployee(ctx context.Context, in models.EmployeeInput) (models.Employee, error) {
	e, err := in.Build()
	if err != nil {
		return models.Employee{}, err
	}
	created, err := s.store.CreateEmployee(ctx, e)
	if err != nil {
		return models.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return created, nil
}

// ListEmployees returns all employees, newest first.
func (s *Service) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return s.store.ListEmployees(ctx)
}

// DeleteEmployee removes an employee.
func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	return s.store.DeleteEmployee(ctx, id)
}

// CreateTimesheet validates in and persists the timesheet.
func (s *Service) CreateTimesheet(ctx context.Context, in models.TimesheetInput) (models.Timesheet, error) {
	ts, err := in.Build()
	if err != nil {
		return models.Timesheet{}, err
	}
	created, err := s.store.CreateTimesheet(ctx, ts)
	if err != nil {
		return models.Timesheet{}, fmt.Errorf("create timesheet: %w", err)
	}
	return created, nil
}

// ListTimesheets returns all timesheets, newest first.
func (s *Service) ListTimesheets(ctx context.Context) ([]models.Timesheet, error) {
	return s.store.ListTimesheets(ctx)
}

// RecordAttendance validates in, derives working hours and persists it.
func (s *Service) RecordAttendance(ctx context.Context, in models.AttendanceInput) (models.Attendance, error) {
	a, err := in.Build()
	if err != nil {
		return models.Attendance{}, err
	}
	created, err := s.store.CreateAttendance(ctx, a)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("record attendance: %w", err)
	}
	return created, nil
}

// ListAttendance returns all attendance records, newest first.
func (s *Service) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	return s.store.ListAttendance(ctx)
}
