package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"workhub/internal/models"
)

// ListEmployees returns all employees, newest first.
func (s *Store) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, email, position, status, created_at, updated_at
        FROM employees ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// CreateEmployee inserts a new employee.
func (s *Store) CreateEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	now := s.now()
	e.ID = uuid.NewString()
	e.CreatedAt, e.UpdatedAt = now, now

	_, err := s.db.ExecContext(ctx, `INSERT INTO employees(id, name, email, position, status, created_at, updated_at)
        VALUES(?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Email, e.Position, e.Status, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return models.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return e, nil
}

// DeleteEmployee removes an employee. Tasks and timesheets keep the id.
func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "employees", "employee", id)
}

// ListTimesheets returns all timesheets, newest first.
func (s *Store) ListTimesheets(ctx context.Context) ([]models.Timesheet, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, employee_id, project_id, task_id, notes, progress, time_spent, date, type, created_at, updated_at
        FROM timesheets ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list timesheets: %w", err)
	}
	defer rows.Close()

	timesheets := []models.Timesheet{}
	for rows.Next() {
		var (
			ts       models.Timesheet
			progress sql.NullInt64
		)
		if err := rows.Scan(&ts.ID, &ts.Employee, &ts.Project, &ts.Task, &ts.Notes, &progress, &ts.TimeSpent, &ts.Date, &ts.Type, &ts.CreatedAt, &ts.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan timesheet: %w", err)
		}
		if progress.Valid {
			v := int(progress.Int64)
			ts.Progress = &v
		}
		timesheets = append(timesheets, ts)
	}
	return timesheets, rows.Err()
}

// CreateTimesheet inserts a new timesheet.
func (s *Store) CreateTimesheet(ctx context.Context, ts models.Timesheet) (models.Timesheet, error) {
	now := s.now()
	ts.ID = uuid.NewString()
	ts.CreatedAt, ts.UpdatedAt = now, now

	var progress sql.NullInt64
	if ts.Progress != nil {
		progress = sql.NullInt64{Int64: int64(*ts.Progress), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO timesheets(id, employee_id, project_id, task_id, notes, progress, time_spent, date, type, created_at, updated_at)
        VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ts.ID, ts.Employee, ts.Project, ts.Task, ts.Notes, progress, ts.TimeSpent, ts.Date, ts.Type, ts.CreatedAt, ts.UpdatedAt)
	if err != nil {
		return models.Timesheet{}, fmt.Errorf("insert timesheet: %w", err)
	}
	return ts, nil
}

// ListAttendance returns all attendance records, newest first.
func (s *Store) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, employee_id, day, time_in, time_out, working_hours, created_at, updated_at
        FROM attendance ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	records := []models.Attendance{}
	for rows.Next() {
		var (
			a       models.Attendance
			timeOut sql.NullTime
		)
		if err := rows.Scan(&a.ID, &a.Employee, &a.Day, &a.TimeIn, &timeOut, &a.WorkingHours, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		if timeOut.Valid {
			a.TimeOut = &timeOut.Time
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// CreateAttendance inserts a new attendance record.
func (s *Store) CreateAttendance(ctx context.Context, a models.Attendance) (models.Attendance, error) {
	now := s.now()
	a.ID = uuid.NewString()
	a.CreatedAt, a.UpdatedAt = now, now

	_, err := s.db.ExecContext(ctx, `INSERT INTO attendance(id, employee_id, day, time_in, time_out, working_hours, created_at, updated_at)
        VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Employee, a.Day, a.TimeIn, nullTime(a.TimeOut), a.WorkingHours, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}
	return a, nil
}
