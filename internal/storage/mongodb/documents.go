package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"workhub/internal/models"
)

// Collection names.
const (
	projectsColl   = "projects"
	tasksColl      = "tasks"
	employeesColl  = "employees"
	timesheetsColl = "timesheets"
	attendanceColl = "attendances"
)

type projectDoc struct {
	ID          primitive.ObjectID   `bson:"_id"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	ClientName  string               `bson:"clientName"`
	StartDate   time.Time            `bson:"startDate"`
	Status      models.ProjectStatus `bson:"status"`
	Priority    models.Priority      `bson:"priority"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

func (d projectDoc) model() models.Project {
	return models.Project{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		ClientName:  d.ClientName,
		StartDate:   d.StartDate,
		Status:      d.Status,
		Priority:    d.Priority,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Task references are stored as the id strings the client sent, so a
// reference that is not an ObjectID still round-trips.
type taskDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	AssignTo    string             `bson:"assignTo"`
	Project     string             `bson:"project"`
	StartDate   time.Time          `bson:"startDate"`
	DueDate     *time.Time         `bson:"dueDate,omitempty"`
	Priority    models.Priority    `bson:"priority"`
	Status      models.TaskStatus  `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func newTaskDoc(id primitive.ObjectID, t models.Task) taskDoc {
	return taskDoc{
		ID:          id,
		Title:       t.Title,
		Description: t.Description,
		AssignTo:    t.AssignTo,
		Project:     t.Project,
		StartDate:   t.StartDate,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (d taskDoc) model() models.Task {
	return models.Task{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		AssignTo:    d.AssignTo,
		Project:     d.Project,
		StartDate:   d.StartDate,
		DueDate:     d.DueDate,
		Priority:    d.Priority,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type employeeDoc struct {
	ID        primitive.ObjectID    `bson:"_id"`
	Name      string                `bson:"name"`
	Email     string                `bson:"email"`
	Position  string                `bson:"position,omitempty"`
	Status    models.EmployeeStatus `bson:"status"`
	CreatedAt time.Time             `bson:"createdAt"`
	UpdatedAt time.Time             `bson:"updatedAt"`
}

func (d employeeDoc) model() models.Employee {
	return models.Employee{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Position:  d.Position,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type timesheetDoc struct {
	ID        primitive.ObjectID   `bson:"_id"`
	Employee  string               `bson:"employee"`
	Project   string               `bson:"project"`
	Task      string               `bson:"task,omitempty"`
	Notes     string               `bson:"notes,omitempty"`
	Progress  *int                 `bson:"progress,omitempty"`
	TimeSpent string               `bson:"timeSpent,omitempty"`
	Date      time.Time            `bson:"date"`
	Type      models.TimesheetType `bson:"type"`
	CreatedAt time.Time            `bson:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

func (d timesheetDoc) model() models.Timesheet {
	return models.Timesheet{
		ID:        d.ID.Hex(),
		Employee:  d.Employee,
		Project:   d.Project,
		Task:      d.Task,
		Notes:     d.Notes,
		Progress:  d.Progress,
		TimeSpent: d.TimeSpent,
		Date:      d.Date,
		Type:      d.Type,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type attendanceDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Employee     string             `bson:"employee"`
	Day          time.Time          `bson:"day"`
	TimeIn       time.Time          `bson:"timeIn"`
	TimeOut      *time.Time         `bson:"timeOut,omitempty"`
	WorkingHours string             `bson:"workingHours"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d attendanceDoc) model() models.Attendance {
	return models.Attendance{
		ID:           d.ID.Hex(),
		Employee:     d.Employee,
		Day:          d.Day,
		TimeIn:       d.TimeIn,
		TimeOut:      d.TimeOut,
		WorkingHours: d.WorkingHours,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
