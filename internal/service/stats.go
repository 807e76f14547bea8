package service

import (
	"context"
	"fmt"

	"workhub/internal/models"
)

// CountProjects partitions projects by status.
func CountProjects(projects []models.Project) models.ProjectStats {
	st := models.ProjectStats{Total: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case models.ProjectCompleted:
			st.Completed++
		case models.ProjectInProgress:
			st.InProgress++
		case models.ProjectPending:
			st.Pending++
		case models.ProjectTesting:
			st.Testing++
		}
	}
	return st
}

// CountTasks partitions tasks by status.
func CountTasks(tasks []models.TaskView) models.TaskStats {
	st := models.TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.TaskCompleted:
			st.Completed++
		case models.TaskInProgress:
			st.InProgress++
		case models.TaskPending:
			st.Pending++
		}
	}
	return st
}

// CountTimesheets partitions timesheets by type.
func CountTimesheets(timesheets []models.Timesheet) models.TimesheetStats {
	st := models.TimesheetStats{TotalTimesheets: len(timesheets)}
	for _, ts := range timesheets {
		switch ts.Type {
		case models.TimesheetDevelopment:
			st.DevelopmentType++
		case models.TimesheetTest:
			st.TestType++
		case models.TimesheetOther:
			st.OtherType++
		}
	}
	return st
}

// CountEmployees partitions employees by status.
func CountEmployees(employees []models.Employee) models.EmployeeStats {
	st := models.EmployeeStats{TotalEmployees: len(employees)}
	for _, e := range employees {
		switch e.Status {
		case models.EmployeeActive:
			st.ActiveEmployees++
		case models.EmployeeInactive:
			st.InActiveEmployees++
		case models.EmployeeTerminated:
			st.TerminatedEmployees++
		}
	}
	return st
}

// ProjectStats counts the projects currently stored.
func (s *Service) ProjectStats(ctx context.Context) (models.ProjectStats, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return models.ProjectStats{}, fmt.Errorf("project stats: %w", err)
	}
	return CountProjects(projects), nil
}

// TaskStats counts the tasks currently stored.
func (s *Service) TaskStats(ctx context.Context) (models.TaskStats, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return models.TaskStats{}, fmt.Errorf("task stats: %w", err)
	}
	return CountTasks(tasks), nil
}

// TimesheetStats counts the timesheets currently stored.
func (s *Service) TimesheetStats(ctx context.Context) (models.TimesheetStats, error) {
	timesheets, err := s.store.ListTimesheets(ctx)
	if err != nil {
		return models.TimesheetStats{}, fmt.Errorf("timesheet stats: %w", err)
	}
	return CountTimesheets(timesheets), nil
}

// EmployeeStats counts the employees currently stored.
func (s *Service) EmployeeStats(ctx context.Context) (models.EmployeeStats, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return models.EmployeeStats{}, fmt.Errorf("employee stats: %w", err)
	}
	return CountEmployees(employees), nil
}
