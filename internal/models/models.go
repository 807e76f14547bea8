package models

import "time"

// Project is a client engagement tracked on the dashboard.
type Project struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ClientName  string        `json:"clientName"`
	StartDate   time.Time     `json:"startDate"`
	Status      ProjectStatus `json:"status"`
	Priority    Priority      `json:"priority"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Task is a unit of work assigned to an employee within a project.
// AssignTo and Project hold ids only; nothing guarantees they resolve.
type Task struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignTo    string     `json:"assignTo"`
	Project     string     `json:"project"`
	StartDate   time.Time  `json:"startDate"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// EmployeeRef is the part of an employee shown next to a task.
type EmployeeRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProjectRef is the part of a project shown next to a task.
type ProjectRef struct {
	ID         string `json:"_id"`
	Title      string `json:"title"`
	ClientName string `json:"clientName"`
}

// TaskView is a task with its references expanded for listing.
// A reference that no longer resolves is nil.
type TaskView struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AssignTo    *EmployeeRef `json:"assignTo"`
	Project     *ProjectRef  `json:"project"`
	StartDate   time.Time    `json:"startDate"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	Priority    Priority     `json:"priority"`
	Status      TaskStatus   `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Employee is a person tasks, timesheets and attendance refer to.
type Employee struct {
	ID        string         `json:"_id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Position  string         `json:"position,omitempty"`
	Status    EmployeeStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Timesheet records time an employee spent on a project.
type Timesheet struct {
	ID        string        `json:"_id"`
	Employee  string        `json:"employee"`
	Project   string        `json:"project"`
	Task      string        `json:"task,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	Progress  *int          `json:"progress,omitempty"`
	TimeSpent string        `json:"timeSpent,omitempty"`
	Date      time.Time     `json:"date"`
	Type      TimesheetType `json:"type"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Attendance is one working day of an employee.
type Attendance struct {
	ID           string     `json:"_id"`
	Employee     string     `json:"employee"`
	Day          time.Time  `json:"day"`
	TimeIn       time.Time  `json:"timeIn"`
	TimeOut      *time.Time `json:"timeOut,omitempty"`
	WorkingHours string     `json:"workingHours"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ProjectStats partitions projects by status.
type ProjectStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
	Testing    int `json:"testing"`
}

// TaskStats partitions tasks by status.
type TaskStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
}

// TimesheetStats partitions timesheets by type.
type TimesheetStats struct {
	TotalTimesheets int `json:"totalTimesheets"`
	DevelopmentType int `json:"developmentType"`
	TestType        int `json:"testType"`
	OtherType       int `json:"otherType"`
}

// EmployeeStats partitions employees by status.
type EmployeeStats struct {
	TotalEmployees      int `json:"totalEmployees"`
	ActiveEmployees     int `json:"activeEmployees"`
	InActiveEmployees   int `json:"inActiveEmployees"`
	TerminatedEmployees int `json:"terminatedEmployees"`
}
