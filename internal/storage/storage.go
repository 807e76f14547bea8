// Package storage defines the persistence contract shared by the
// database engines.
package storage

import (
	"context"
	"errors"

	"workhub/internal/models"
)

// ErrNotFound is returned, wrapped with the record kind, when an id has
// no matching record.
var ErrNotFound = errors.New("not found")

// Store persists the tracked records. Implementations assign ids and
// timestamps, and list every kind newest first.
type Store interface {
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	// UpdateProjectStatus changes only the status and updatedAt fields.
	UpdateProjectStatus(ctx context.Context, id string, status models.ProjectStatus) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	CreateTask(ctx context.Context, t models.Task) (models.Task, error)
	// ListTasks expands each task's employee and project references.
	ListTasks(ctx context.Context) ([]models.TaskView, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	// SaveTask writes back a full task document.
	SaveTask(ctx context.Context, t models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	CreateEmployee(ctx context.Context, e models.Employee) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	CreateTimesheet(ctx context.Context, ts models.Timesheet) (models.Timesheet, error)
	ListTimesheets(ctx context.Context) ([]models.Timesheet, error)

	CreateAttendance(ctx context.Context, a models.Attendance) (models.Attendance, error)
	ListAttendance(ctx context.Context) ([]models.Attendance, error)

	Close() error
}
