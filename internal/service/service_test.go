package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhub/internal/models"
	"workhub/internal/storage"
	"workhub/internal/storage/sqlite"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "workhub.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return New(store, logger)
}

func siteRedesign() models.ProjectInput {
	return models.ProjectInput{
		Title:       "Site Redesign",
		Description: "Revamp UI",
		ClientName:  "Acme",
		StartDate:   "2024-01-10",
	}
}

func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p, err := svc.CreateProject(ctx, siteRedesign())
	require.NoError(t, err)
	assert.Equal(t, models.ProjectPending, p.Status)
	assert.Equal(t, models.PriorityImportant, p.Priority)

	updated, err := svc.SetProjectStatus(ctx, p.ID, "Testing")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTesting, updated.Status)
	assert.Equal(t, "Site Redesign", updated.Title)

	stats, err := svc.ProjectStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStats{Total: 1, Testing: 1}, stats)
}

func TestSetProjectStatus_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p, err := svc.CreateProject(ctx, siteRedesign())
	require.NoError(t, err)

	first, err := svc.SetProjectStatus(ctx, p.ID, "Completed")
	require.NoError(t, err)
	second, err := svc.SetProjectStatus(ctx, p.ID, "Completed")
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.StartDate, second.StartDate)

	// Completed back to Pending is allowed.
	back, err := svc.SetProjectStatus(ctx, p.ID, "Pending")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectPending, back.Status)
}

func TestSetProjectStatus_Errors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p, err := svc.CreateProject(ctx, siteRedesign())
	require.NoError(t, err)

	tests := []struct {
		name   string
		id     string
		status string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "empty status",
			id:     p.ID,
			status: "  ",
			check: func(t *testing.T, err error) {
				var missing *models.MissingFieldError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, []string{"status"}, missing.Fields)
			},
		},
		{
			name:   "unknown status",
			id:     p.ID,
			status: "Archived",
			check: func(t *testing.T, err error) {
				var enum *models.InvalidEnumError
				require.ErrorAs(t, err, &enum)
				assert.Equal(t, "status", enum.Field)
			},
		},
		{
			name:   "missing project",
			id:     "missing",
			status: "Completed",
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, storage.ErrNotFound))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetProjectStatus(ctx, tt.id, tt.status)
			require.Error(t, err)
			tt.check(t, err)
		})
	}

	list, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.ProjectPending, list[0].Status)
}

func TestSetTaskStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	task, err := svc.CreateTask(ctx, models.TaskInput{
		Title:       "Wireframes",
		Description: "Landing page",
		AssignTo:    "no-such-employee",
		Project:     "no-such-project",
		StartDate:   "2024-01-11",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, task.Status)

	updated, err := svc.SetTaskStatus(ctx, task.ID, "In Progress")
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, updated.Status)
	assert.Equal(t, task.Title, updated.Title)

	_, err = svc.SetTaskStatus(ctx, task.ID, "Testing")
	var enum *models.InvalidEnumError
	require.ErrorAs(t, err, &enum)

	_, err = svc.SetTaskStatus(ctx, task.ID, "")
	var missing *models.MissingFieldError
	require.ErrorAs(t, err, &missing)

	_, err = svc.SetTaskStatus(ctx, "missing", "Completed")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	views, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, models.TaskInProgress, views[0].Status)
	assert.Nil(t, views[0].AssignTo)
	assert.Nil(t, views[0].Project)

	stats, err := svc.TaskStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStats{Total: 1, InProgress: 1}, stats)
}

func TestCreate_ValidationPersistsNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateProject(ctx, models.ProjectInput{Title: "Only title"})
	assert.True(t, models.IsValidationError(err))

	_, err = svc.CreateTask(ctx, models.TaskInput{
		Title: "t", Description: "d", AssignTo: "e", Project: "p",
		StartDate: "2024-01-11", DueDate: "someday",
	})
	var date *models.InvalidDateError
	require.ErrorAs(t, err, &date)
	assert.Equal(t, "dueDate", date.Field)

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDelete_MissingLeavesCollection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateProject(ctx, siteRedesign())
	require.NoError(t, err)

	err = svc.DeleteProject(ctx, "missing")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	list, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPeopleAndTime(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	emp, err := svc.CreateEmployee(ctx, models.EmployeeInput{Name: "Ada", Email: "Ada@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", emp.Email)
	_, err = svc.CreateEmployee(ctx, models.EmployeeInput{Name: "Bob", Email: "bob@example.com", Status: "Terminated"})
	require.NoError(t, err)

	est, err := svc.EmployeeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.EmployeeStats{TotalEmployees: 2, ActiveEmployees: 1, TerminatedEmployees: 1}, est)

	_, err = svc.CreateTimesheet(ctx, models.TimesheetInput{Employee: emp.ID, Project: "p1", Date: "2024-03-01"})
	require.NoError(t, err)
	_, err = svc.CreateTimesheet(ctx, models.TimesheetInput{Employee: emp.ID, Project: "p1", Date: "2024-03-02", Type: "Test"})
	require.NoError(t, err)

	tst, err := svc.TimesheetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TimesheetStats{TotalTimesheets: 2, DevelopmentType: 1, TestType: 1}, tst)

	a, err := svc.RecordAttendance(ctx, models.AttendanceInput{
		Employee: emp.ID, Day: "2024-03-01", TimeIn: "09:00", TimeOut: "17:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "8h 30m", a.WorkingHours)

	records, err := svc.ListAttendance(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	require.NoError(t, svc.DeleteEmployee(ctx, emp.ID))
	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}
