package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"workhub/internal/models"
)

func TestCountProjects_Partition(t *testing.T) {
	tests := []struct {
		name     string
		statuses []models.ProjectStatus
		want     models.ProjectStats
	}{
		{name: "empty", want: models.ProjectStats{}},
		{
			name:     "one of each",
			statuses: models.ProjectStatuses,
			want:     models.ProjectStats{Total: 4, Completed: 1, InProgress: 1, Pending: 1, Testing: 1},
		},
		{
			name: "skewed",
			statuses: []models.ProjectStatus{
				models.ProjectTesting, models.ProjectTesting, models.ProjectCompleted,
				models.ProjectPending, models.ProjectTesting,
			},
			want: models.ProjectStats{Total: 5, Completed: 1, Pending: 1, Testing: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := make([]models.Project, len(tt.statuses))
			for i, s := range tt.statuses {
				projects[i] = models.Project{Status: s}
			}
			got := CountProjects(projects)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Total, got.Completed+got.InProgress+got.Pending+got.Testing)
		})
	}
}

func TestCountTasks_Partition(t *testing.T) {
	tasks := []models.TaskView{
		{Status: models.TaskPending},
		{Status: models.TaskPending},
		{Status: models.TaskInProgress},
		{Status: models.TaskCompleted},
	}
	got := CountTasks(tasks)
	assert.Equal(t, models.TaskStats{Total: 4, Completed: 1, InProgress: 1, Pending: 2}, got)
	assert.Equal(t, got.Total, got.Completed+got.InProgress+got.Pending)
}

func TestCountTimesheets_Partition(t *testing.T) {
	sheets := []models.Timesheet{
		{Type: models.TimesheetDevelopment},
		{Type: models.TimesheetTest},
		{Type: models.TimesheetOther},
		{Type: models.TimesheetOther},
	}
	got := CountTimesheets(sheets)
	assert.Equal(t, models.TimesheetStats{TotalTimesheets: 4, DevelopmentType: 1, TestType: 1, OtherType: 2}, got)
	assert.Equal(t, got.TotalTimesheets, got.DevelopmentType+got.TestType+got.OtherType)
}

func TestCountEmployees_Partition(t *testing.T) {
	employees := []models.Employee{
		{Status: models.EmployeeActive},
		{Status: models.EmployeeInactive},
		{Status: models.EmployeeTerminated},
		{Status: models.EmployeeActive},
	}
	got := CountEmployees(employees)
	assert.Equal(t, models.EmployeeStats{TotalEmployees: 4, ActiveEmployees: 2, InActiveEmployees: 1, TerminatedEmployees: 1}, got)
	assert.Equal(t, got.TotalEmployees, got.ActiveEmployees+got.InActiveEmployees+got.TerminatedEmployees)
}
