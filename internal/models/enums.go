package models

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "Pending"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectTesting    ProjectStatus = "Testing"
	ProjectCompleted  ProjectStatus = "Completed"
)

// ProjectStatuses lists every valid project status.
var ProjectStatuses = []ProjectStatus{ProjectPending, ProjectInProgress, ProjectTesting, ProjectCompleted}

// TaskStatus is the lifecycle state of a task. Unlike projects, tasks
// have no testing stage.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// TaskStatuses lists every valid task status.
var TaskStatuses = []TaskStatus{TaskPending, TaskInProgress, TaskCompleted}

// Priority is shared by projects and tasks.
type Priority string

const (
	PriorityMostImportant  Priority = "Most Important"
	PriorityImportant      Priority = "Important"
	PriorityLeastImportant Priority = "Least Important"
)

// Priorities lists every valid priority.
var Priorities = []Priority{PriorityMostImportant, PriorityImportant, PriorityLeastImportant}

// EmployeeStatus is the employment state of an employee.
type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "Active"
	EmployeeInactive   EmployeeStatus = "Inactive"
	EmployeeTerminated EmployeeStatus = "Terminated"
)

// EmployeeStatuses lists every valid employee status.
var EmployeeStatuses = []EmployeeStatus{EmployeeActive, EmployeeInactive, EmployeeTerminated}

// TimesheetType classifies the work a timesheet records.
type TimesheetType string

const (
	TimesheetDevelopment TimesheetType = "Development"
	TimesheetTest        TimesheetType = "Test"
	TimesheetOther       TimesheetType = "Other"
)

// TimesheetTypes lists every valid timesheet type.
var TimesheetTypes = []TimesheetType{TimesheetDevelopment, TimesheetTest, TimesheetOther}

// ParseProjectStatus maps raw input to a project status. Empty input
// yields the default.
func ParseProjectStatus(raw string) (ProjectStatus, error) {
	return parseEnum("status", raw, ProjectPending, ProjectStatuses)
}

// ParseTaskStatus maps raw input to a task status. Empty input yields
// the default.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	return parseEnum("status", raw, TaskPending, TaskStatuses)
}

// ParsePriority maps raw input to a priority. Empty input yields the
// default.
func ParsePriority(raw string) (Priority, error) {
	return parseEnum("priority", raw, PriorityImportant, Priorities)
}

// ParseEmployeeStatus maps raw input to an employee status.
func ParseEmployeeStatus(raw string) (EmployeeStatus, error) {
	return parseEnum("status", raw, EmployeeActive, EmployeeStatuses)
}

// ParseTimesheetType maps raw input to a timesheet type.
func ParseTimesheetType(raw string) (TimesheetType, error) {
	return parseEnum("type", raw, TimesheetDevelopment, TimesheetTypes)
}

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool { return contains(ProjectStatuses, s) }

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool { return contains(TaskStatuses, s) }

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool { return contains(Priorities, p) }

// Valid reports whether s is a known employee status.
func (s EmployeeStatus) Valid() bool { return contains(EmployeeStatuses, s) }

// Valid reports whether t is a known timesheet type.
func (t TimesheetType) Valid() bool { return contains(TimesheetTypes, t) }

func parseEnum[T ~string](field, raw string, def T, allowed []T) (T, error) {
	if raw == "" {
		return def, nil
	}
	v := T(raw)
	if !contains(allowed, v) {
		return "", &InvalidEnumError{Field: field, Value: raw, Allowed: names(allowed)}
	}
	return v, nil
}

func names[T ~string](set []T) []string {
	out := make([]string, len(set))
	for i, v := range set {
		out[i] = string(v)
	}
	return out
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
