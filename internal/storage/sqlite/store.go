package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"workhub/internal/models"
	"workhub/internal/storage"
)

// Store wraps access to the SQLite database and exposes high level helpers.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

var _ storage.Store = (*Store)(nil)

// Open initializes a new SQLite store and runs the required migrations.
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("empty database path")
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := ensureDir(dbPath); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	s := &Store{db: conn, logger: logger, now: func() time.Time { return time.Now().UTC() }}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	logger.Debug("sqlite store ready", slog.String("path", dbPath))
	return s, nil
}

// Close releases the database resources.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ensureDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Tables carry no foreign keys; a task may name a project or employee
// that does not exist.
func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS projects (
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL CHECK (title <> ''),
            description TEXT NOT NULL CHECK (description <> ''),
            client_name TEXT NOT NULL CHECK (client_name <> ''),
            start_date DATETIME NOT NULL,
            status TEXT NOT NULL DEFAULT 'Pending'
                CHECK (status IN ('Pending', 'In Progress', 'Testing', 'Completed')),
            priority TEXT NOT NULL DEFAULT 'Important'
                CHECK (priority IN ('Most Important', 'Important', 'Least Important')),
            created_at DATETIME NOT NULL,
            updated_at DATETIME NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS tasks (
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL CHECK (title <> ''),
            description TEXT NOT NULL CHECK (description <> ''),
            assign_to TEXT NOT NULL,
            project_id TEXT NOT NULL,
            start_date DATETIME NOT NULL,
            due_date DATETIME,
            priority TEXT NOT NULL DEFAULT 'Important'
                CHECK (priority IN ('Most Important', 'Important', 'Least Important')),
            status TEXT NOT NULL DEFAULT 'Pending'
                CHECK (status IN ('Pending', 'In Progress', 'Completed')),
            created_at DATETIME NOT NULL,
            updated_at DATETIME NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS employees (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL CHECK (name <> ''),
            email TEXT NOT NULL CHECK (email <> ''),
            position TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'Active'
                CHECK (status IN ('Active', 'Inactive', 'Terminated')),
            created_at DATETIME NOT NULL,
            updated_at DATETIME NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS timesheets (
            id TEXT PRIMARY KEY,
            employee_id TEXT NOT NULL,
            project_id TEXT NOT NULL,
            task_id TEXT NOT NULL DEFAULT '',
            notes TEXT NOT NULL DEFAULT '',
            progress INTEGER CHECK (progress BETWEEN 0 AND 100),
            time_spent TEXT NOT NULL DEFAULT '',
            date DATETIME NOT NULL,
            type TEXT NOT NULL DEFAULT 'Development'
                CHECK (type IN ('Development', 'Test', 'Other')),
            created_at DATETIME NOT NULL,
            updated_at DATETIME NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS attendance (
            id TEXT PRIMARY KEY,
            employee_id TEXT NOT NULL,
            day DATETIME NOT NULL,
            time_in DATETIME NOT NULL,
            time_out DATETIME,
            working_hours TEXT NOT NULL DEFAULT '0h 0m',
            created_at DATETIME NOT NULL,
            updated_at DATETIME NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_projects_created ON projects(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_created ON tasks(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id);`,
		`CREATE INDEX IF NOT EXISTS idx_timesheets_created ON timesheets(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_employee ON attendance(employee_id);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
}

// deleteByID removes one row and reports ErrNotFound when none matched.
func (s *Store) deleteByID(ctx context.Context, table, kind, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound(kind, id)
	}
	return nil
}

const projectColumns = `id, title, description, client_name, start_date, status, priority, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ClientName, &p.StartDate, &p.Status, &p.Priority, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// ListProjects retrieves all projects, newest first.
func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CreateProject persists a new project and returns it with id and timestamps.
func (s *Store) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	now := s.now()
	p.ID = uuid.NewString()
	p.CreatedAt, p.UpdatedAt = now, now

	_, err := s.db.ExecContext(ctx, `INSERT INTO projects(`+projectColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.ClientName, p.StartDate, p.Status, p.Priority, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return models.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return s.GetProject(ctx, p.ID)
}

// GetProject fetches a single project by id.
func (s *Store) GetProject(ctx context.Context, id string) (models.Project, error) {
	p, err := scanProject(s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, notFound("project", id)
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// UpdateProjectStatus sets the status of a project and refreshes updated_at.
func (s *Store) UpdateProjectStatus(ctx context.Context, id string, status models.ProjectStatus) (models.Project, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE projects SET status = ?, updated_at = ? WHERE id = ?`, status, s.now(), id)
	if err != nil {
		return models.Project{}, fmt.Errorf("update project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Project{}, err
	}
	if affected == 0 {
		return models.Project{}, notFound("project", id)
	}
	return s.GetProject(ctx, id)
}

// DeleteProject removes a project. Tasks referring to it are kept.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "projects", "project", id)
}

const taskColumns = `id, title, description, assign_to, project_id, start_date, due_date, priority, status, created_at, updated_at`

func scanTask(row rowScanner) (models.Task, error) {
	var (
		t   models.Task
		due sql.NullTime
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.AssignTo, &t.Project, &t.StartDate, &due, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if due.Valid {
		t.DueDate = &due.Time
	}
	return t, err
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// ListTasks returns all tasks newest first with their assignee and
// project summarized.
func (s *Store) ListTasks(ctx context.Context) ([]models.TaskView, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT t.id, t.title, t.description, t.start_date, t.due_date, t.priority, t.status, t.created_at, t.updated_at,
               e.id, e.name, e.email, p.id, p.title, p.client_name
        FROM tasks t
        LEFT JOIN employees e ON e.id = t.assign_to
        LEFT JOIN projects p ON p.id = t.project_id
        ORDER BY t.created_at DESC, t.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.TaskView{}
	for rows.Next() {
		var (
			t                     models.TaskView
			due                   sql.NullTime
			empID, empName, email sql.NullString
			projID, title, client sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.StartDate, &due, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt,
			&empID, &empName, &email, &projID, &title, &client); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if due.Valid {
			t.DueDate = &due.Time
		}
		if empID.Valid {
			t.AssignTo = &models.EmployeeRef{ID: empID.String, Name: empName.String, Email: email.String}
		}
		if projID.Valid {
			t.Project = &models.ProjectRef{ID: projID.String, Title: title.String, ClientName: client.String}
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CreateTask inserts a new task.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	now := s.now()
	t.ID = uuid.NewString()
	t.CreatedAt, t.UpdatedAt = now, now

	_, err := s.db.ExecContext(ctx, `INSERT INTO tasks(`+taskColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, t.AssignTo, t.Project, t.StartDate, nullTime(t.DueDate), t.Priority, t.Status, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return s.GetTask(ctx, t.ID)
}

// GetTask retrieves a task by id.
func (s *Store) GetTask(ctx context.Context, id string) (models.Task, error) {
	t, err := scanTask(s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, notFound("task", id)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// SaveTask overwrites every mutable column of an existing task.
func (s *Store) SaveTask(ctx context.Context, t models.Task) (models.Task, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE tasks
        SET title = ?, description = ?, assign_to = ?, project_id = ?, start_date = ?, due_date = ?,
            priority = ?, status = ?, updated_at = ?
        WHERE id = ?`,
		t.Title, t.Description, t.AssignTo, t.Project, t.StartDate, nullTime(t.DueDate), t.Priority, t.Status, s.now(), t.ID)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, err
	}
	if affected == 0 {
		return models.Task{}, notFound("task", t.ID)
	}
	return s.GetTask(ctx, t.ID)
}

// DeleteTask removes a task by id.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "tasks", "task", id)
}
