package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProjectInput() ProjectInput {
	return ProjectInput{
		Title:       "Site Redesign",
		Description: "Revamp UI",
		ClientName:  "Acme",
		StartDate:   "2024-01-10",
	}
}

func validTaskInput() TaskInput {
	return TaskInput{
		Title:       "Wireframes",
		Description: "Draft the landing page",
		AssignTo:    "emp-1",
		Project:     "proj-1",
		StartDate:   "2024-01-11",
	}
}

func TestProjectInput_Build(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ProjectInput)
		wantMissing []string
		wantEnum    string
		wantDate    string
		check       func(t *testing.T, p Project)
	}{
		{
			name: "defaults applied",
			check: func(t *testing.T, p Project) {
				assert.Equal(t, ProjectPending, p.Status)
				assert.Equal(t, PriorityImportant, p.Priority)
				assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), p.StartDate)
			},
		},
		{
			name: "explicit values kept and trimmed",
			mutate: func(in *ProjectInput) {
				in.Title = "  Site Redesign  "
				in.Status = "Testing"
				in.Priority = "Most Important"
			},
			check: func(t *testing.T, p Project) {
				assert.Equal(t, "Site Redesign", p.Title)
				assert.Equal(t, ProjectTesting, p.Status)
				assert.Equal(t, PriorityMostImportant, p.Priority)
			},
		},
		{
			name: "all required fields missing",
			mutate: func(in *ProjectInput) {
				*in = ProjectInput{}
			},
			wantMissing: []string{"title", "description", "clientName", "startDate"},
		},
		{
			name: "whitespace counts as missing",
			mutate: func(in *ProjectInput) {
				in.ClientName = "   "
			},
			wantMissing: []string{"clientName"},
		},
		{
			name: "unknown status",
			mutate: func(in *ProjectInput) {
				in.Status = "On Hold"
			},
			wantEnum: "status",
		},
		{
			name: "unknown priority",
			mutate: func(in *ProjectInput) {
				in.Priority = "Urgent"
			},
			wantEnum: "priority",
		},
		{
			name: "unparseable start date",
			mutate: func(in *ProjectInput) {
				in.StartDate = "next tuesday"
			},
			wantDate: "startDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProjectInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			p, err := in.Build()

			switch {
			case tt.wantMissing != nil:
				var missing *MissingFieldError
				require.True(t, errors.As(err, &missing), "got %v", err)
				assert.Equal(t, tt.wantMissing, missing.Fields)
			case tt.wantEnum != "":
				var enum *InvalidEnumError
				require.True(t, errors.As(err, &enum), "got %v", err)
				assert.Equal(t, tt.wantEnum, enum.Field)
			case tt.wantDate != "":
				var date *InvalidDateError
				require.True(t, errors.As(err, &date), "got %v", err)
				assert.Equal(t, tt.wantDate, date.Field)
			default:
				require.NoError(t, err)
				tt.check(t, p)
			}
		})
	}
}

func TestTaskInput_Build(t *testing.T) {
	t.Run("defaults applied and due date optional", func(t *testing.T) {
		task, err := validTaskInput().Build()
		require.NoError(t, err)
		assert.Equal(t, TaskPending, task.Status)
		assert.Equal(t, PriorityImportant, task.Priority)
		assert.Nil(t, task.DueDate)
	})

	t.Run("due date parsed", func(t *testing.T) {
		in := validTaskInput()
		in.DueDate = "2024-02-01T17:30:00Z"
		task, err := in.Build()
		require.NoError(t, err)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, time.Date(2024, 2, 1, 17, 30, 0, 0, time.UTC), *task.DueDate)
	})

	t.Run("due date before start date is accepted", func(t *testing.T) {
		in := validTaskInput()
		in.DueDate = "2023-12-01"
		_, err := in.Build()
		assert.NoError(t, err)
	})

	t.Run("invalid due date rejected", func(t *testing.T) {
		in := validTaskInput()
		in.DueDate = "soon"
		_, err := in.Build()
		var date *InvalidDateError
		require.True(t, errors.As(err, &date))
		assert.Equal(t, "dueDate", date.Field)
	})

	t.Run("testing is not a task status", func(t *testing.T) {
		in := validTaskInput()
		in.Status = string(ProjectTesting)
		_, err := in.Build()
		var enum *InvalidEnumError
		require.True(t, errors.As(err, &enum))
		assert.Equal(t, "status", enum.Field)
		assert.Equal(t, []string{"Pending", "In Progress", "Completed"}, enum.Allowed)
	})

	t.Run("missing references", func(t *testing.T) {
		in := validTaskInput()
		in.AssignTo = ""
		in.Project = ""
		_, err := in.Build()
		var missing *MissingFieldError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []string{"assignTo", "project"}, missing.Fields)
		assert.True(t, IsValidationError(err))
	})
}

func TestTask_Validate(t *testing.T) {
	task, err := validTaskInput().Build()
	require.NoError(t, err)
	require.NoError(t, task.Validate())

	task.Status = TaskStatus("Testing")
	assert.True(t, IsValidationError(task.Validate()))

	task.Status = TaskCompleted
	task.Title = ""
	var missing *MissingFieldError
	require.True(t, errors.As(task.Validate(), &missing))
	assert.Equal(t, []string{"title"}, missing.Fields)
}

func TestEmployeeInput_Build(t *testing.T) {
	e, err := EmployeeInput{Name: "Ada", Email: " Ada@Example.com "}.Build()
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", e.Email)
	assert.Equal(t, EmployeeActive, e.Status)

	_, err = EmployeeInput{Name: "Ada", Email: "not-an-email"}.Build()
	var value *InvalidValueError
	require.True(t, errors.As(err, &value))
	assert.Equal(t, "email", value.Field)

	_, err = EmployeeInput{Name: "Ada", Email: "ada@example.com", Status: "Retired"}.Build()
	assert.True(t, IsValidationError(err))
}

func TestTimesheetInput_Build(t *testing.T) {
	progress := 40
	ts, err := TimesheetInput{Employee: "e", Project: "p", Date: "2024-03-01", Progress: &progress}.Build()
	require.NoError(t, err)
	assert.Equal(t, TimesheetDevelopment, ts.Type)
	assert.Equal(t, 40, *ts.Progress)

	over := 140
	_, err = TimesheetInput{Employee: "e", Project: "p", Date: "2024-03-01", Progress: &over}.Build()
	var value *InvalidValueError
	require.True(t, errors.As(err, &value))
	assert.Equal(t, "progress", value.Field)
	assert.Equal(t, "max=100", value.Rule)

	_, err = TimesheetInput{Employee: "e", Project: "p", Date: "2024-03-01", Type: "Design"}.Build()
	var enum *InvalidEnumError
	require.True(t, errors.As(err, &enum))
	assert.Equal(t, "type", enum.Field)
}

func TestAttendanceInput_Build(t *testing.T) {
	a, err := AttendanceInput{Employee: "e", Day: "2024-03-01", TimeIn: "09:00", TimeOut: "17:45"}.Build()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), a.TimeIn)
	assert.Equal(t, "8h 45m", a.WorkingHours)

	open, err := AttendanceInput{Employee: "e", Day: "2024-03-01", TimeIn: "2024-03-01T08:15:00Z"}.Build()
	require.NoError(t, err)
	assert.Nil(t, open.TimeOut)
	assert.Equal(t, "0h 0m", open.WorkingHours)

	_, err = AttendanceInput{Employee: "e", Day: "2024-03-01", TimeIn: "17:00", TimeOut: "09:00"}.Build()
	var value *InvalidValueError
	require.True(t, errors.As(err, &value))
	assert.Equal(t, "timeOut", value.Field)
}

func TestParseDate(t *testing.T) {
	for _, raw := range []string{"2024-01-10", "2024-01-10T00:00:00Z", "2024-01-10T00:00:00.000Z", "2024-01-10T00:00"} {
		got, ok := ParseDate(raw)
		require.True(t, ok, raw)
		assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), got, raw)
	}
	for _, raw := range []string{"", "  ", "2024-13-40", "yesterday"} {
		_, ok := ParseDate(raw)
		assert.False(t, ok, raw)
	}
}
