package models

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so errors match the payload.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkFields runs the struct tags of in. All absent required fields are
// reported together; otherwise the first broken rule is returned.
func checkFields(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}

	fe := verrs[0]
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return &InvalidValueError{Field: fe.Field(), Rule: rule}
}

// ProjectInput is the payload for creating a project.
type ProjectInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ClientName  string `json:"clientName" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

// Build validates the input and returns the project to persist.
func (in ProjectInput) Build() (Project, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.Status = strings.TrimSpace(in.Status)
	in.Priority = strings.TrimSpace(in.Priority)

	if err := checkFields(in); err != nil {
		return Project{}, err
	}
	start, ok := ParseDate(in.StartDate)
	if !ok {
		return Project{}, &InvalidDateError{Field: "startDate", Value: in.StartDate}
	}
	status, err := ParseProjectStatus(in.Status)
	if err != nil {
		return Project{}, err
	}
	priority, err := ParsePriority(in.Priority)
	if err != nil {
		return Project{}, err
	}

	return Project{
		Title:       in.Title,
		Description: in.Description,
		ClientName:  in.ClientName,
		StartDate:   start,
		Status:      status,
		Priority:    priority,
	}, nil
}

// TaskInput is the payload for creating a task.
type TaskInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	AssignTo    string `json:"assignTo" validate:"required"`
	Project     string `json:"project" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// Build validates the input and returns the task to persist.
func (in TaskInput) Build() (Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.AssignTo = strings.TrimSpace(in.AssignTo)
	in.Project = strings.TrimSpace(in.Project)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.DueDate = strings.TrimSpace(in.DueDate)
	in.Priority = strings.TrimSpace(in.Priority)
	in.Status = strings.TrimSpace(in.Status)

	if err := checkFields(in); err != nil {
		return Task{}, err
	}
	start, ok := ParseDate(in.StartDate)
	if !ok {
		return Task{}, &InvalidDateError{Field: "startDate", Value: in.StartDate}
	}
	var due *time.Time
	if in.DueDate != "" {
		d, ok := ParseDate(in.DueDate)
		if !ok {
			return Task{}, &InvalidDateError{Field: "dueDate", Value: in.DueDate}
		}
		due = &d
	}
	priority, err := ParsePriority(in.Priority)
	if err != nil {
		return Task{}, err
	}
	status, err := ParseTaskStatus(in.Status)
	if err != nil {
		return Task{}, err
	}

	return Task{
		Title:       in.Title,
		Description: in.Description,
		AssignTo:    in.AssignTo,
		Project:     in.Project,
		StartDate:   start,
		DueDate:     due,
		Priority:    priority,
		Status:      status,
	}, nil
}

// Validate checks a complete task before it is written back.
func (t Task) Validate() error {
	var missing []string
	for _, f := range []struct {
		name  string
		empty bool
	}{
		{"title", strings.TrimSpace(t.Title) == ""},
		{"description", strings.TrimSpace(t.Description) == ""},
		{"assignTo", t.AssignTo == ""},
		{"project", t.Project == ""},
		{"startDate", t.StartDate.IsZero()},
	} {
		if f.empty {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}
	if !t.Status.Valid() {
		return &InvalidEnumError{Field: "status", Value: string(t.Status), Allowed: names(TaskStatuses)}
	}
	if !t.Priority.Valid() {
		return &InvalidEnumError{Field: "priority", Value: string(t.Priority), Allowed: names(Priorities)}
	}
	return nil
}

// EmployeeInput is the payload for creating an employee.
type EmployeeInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Position string `json:"position"`
	Status   string `json:"status"`
}

// Build validates the input and returns the employee to persist.
func (in EmployeeInput) Build() (Employee, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Position = strings.TrimSpace(in.Position)
	in.Status = strings.TrimSpace(in.Status)

	if err := checkFields(in); err != nil {
		return Employee{}, err
	}
	status, err := ParseEmployeeStatus(in.Status)
	if err != nil {
		return Employee{}, err
	}
	return Employee{
		Name:     in.Name,
		Email:    in.Email,
		Position: in.Position,
		Status:   status,
	}, nil
}

// TimesheetInput is the payload for creating a timesheet.
type TimesheetInput struct {
	Employee  string `json:"employee" validate:"required"`
	Project   string `json:"project" validate:"required"`
	Task      string `json:"task"`
	Notes     string `json:"notes"`
	Progress  *int   `json:"progress" validate:"omitempty,min=0,max=100"`
	TimeSpent string `json:"timeSpent"`
	Date      string `json:"date" validate:"required"`
	Type      string `json:"type"`
}

// Build validates the input and returns the timesheet to persist.
func (in TimesheetInput) Build() (Timesheet, error) {
	in.Employee = strings.TrimSpace(in.Employee)
	in.Project = strings.TrimSpace(in.Project)
	in.Task = strings.TrimSpace(in.Task)
	in.Notes = strings.TrimSpace(in.Notes)
	in.TimeSpent = strings.TrimSpace(in.TimeSpent)
	in.Date = strings.TrimSpace(in.Date)
	in.Type = strings.TrimSpace(in.Type)

	if err := checkFields(in); err != nil {
		return Timesheet{}, err
	}
	date, ok := ParseDate(in.Date)
	if !ok {
		return Timesheet{}, &InvalidDateError{Field: "date", Value: in.Date}
	}
	kind, err := ParseTimesheetType(in.Type)
	if err != nil {
		return Timesheet{}, err
	}
	return Timesheet{
		Employee:  in.Employee,
		Project:   in.Project,
		Task:      in.Task,
		Notes:     in.Notes,
		Progress:  in.Progress,
		TimeSpent: in.TimeSpent,
		Date:      date,
		Type:      kind,
	}, nil
}

// AttendanceInput is the payload for recording attendance. TimeIn and
// TimeOut may be full timestamps or wall clock times on Day.
type AttendanceInput struct {
	Employee string `json:"employee" validate:"required"`
	Day      string `json:"day" validate:"required"`
	TimeIn   string `json:"timeIn" validate:"required"`
	TimeOut  string `json:"timeOut"`
}

// Build validates the input and derives the working hours.
func (in AttendanceInput) Build() (Attendance, error) {
	in.Employee = strings.TrimSpace(in.Employee)
	in.Day = strings.TrimSpace(in.Day)
	in.TimeIn = strings.TrimSpace(in.TimeIn)
	in.TimeOut = strings.TrimSpace(in.TimeOut)

	if err := checkFields(in); err != nil {
		return Attendance{}, err
	}
	day, ok := ParseDate(in.Day)
	if !ok {
		return Attendance{}, &InvalidDateError{Field: "day", Value: in.Day}
	}
	day = day.Truncate(24 * time.Hour)
	timeIn, ok := parseInstant(day, in.TimeIn)
	if !ok {
		return Attendance{}, &InvalidDateError{Field: "timeIn", Value: in.TimeIn}
	}

	a := Attendance{
		Employee:     in.Employee,
		Day:          day,
		TimeIn:       timeIn,
		WorkingHours: FormatWorkingHours(0),
	}
	if in.TimeOut != "" {
		timeOut, ok := parseInstant(day, in.TimeOut)
		if !ok {
			return Attendance{}, &InvalidDateError{Field: "timeOut", Value: in.TimeOut}
		}
		if timeOut.Before(timeIn) {
			return Attendance{}, &InvalidValueError{Field: "timeOut", Rule: "gtefield=timeIn"}
		}
		a.TimeOut = &timeOut
		a.WorkingHours = FormatWorkingHours(timeOut.Sub(timeIn))
	}
	return a, nil
}
