// Package mongodb stores records in MongoDB, one collection per kind.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"workhub/internal/models"
	"workhub/internal/storage"
)

// Store implements storage.Store on a MongoDB database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
	now    func() time.Time
}

var _ storage.Store = (*Store)(nil)

// Open connects to uri, verifies the connection and prepares indexes.
func Open(ctx context.Context, uri, database string, logger *slog.Logger) (*Store, error) {
	if uri == "" || database == "" {
		return nil, fmt.Errorf("mongo uri and database are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(database),
		logger: logger,
		// BSON dates keep millisecond precision.
		now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Debug("mongo store ready", slog.String("database", database))
	return s, nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Drop removes every collection of the store's database.
func (s *Store) Drop(ctx context.Context) error {
	return s.db.Drop(ctx)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	for _, name := range []string{projectsColl, tasksColl, employeesColl, timesheetsColl, attendanceColl} {
		_, err := s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		})
		if err != nil {
			return fmt.Errorf("index %s: %w", name, err)
		}
	}
	return nil
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
}

// objectID parses id; a malformed id can match nothing.
func objectID(kind, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound(kind, id)
	}
	return oid, nil
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

func findAll[D any](ctx context.Context, coll *mongo.Collection, kind string) ([]D, error) {
	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	docs := []D{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return docs, nil
}

func findOne[D any](ctx context.Context, coll *mongo.Collection, kind, id string) (D, error) {
	var doc D
	oid, err := objectID(kind, id)
	if err != nil {
		return doc, err
	}
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, notFound(kind, id)
	}
	if err != nil {
		return doc, fmt.Errorf("get %s: %w", kind, err)
	}
	return doc, nil
}

func (s *Store) deleteByID(ctx context.Context, coll, kind, id string) error {
	oid, err := objectID(kind, id)
	if err != nil {
		return err
	}
	res, err := s.db.Collection(coll).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	if res.DeletedCount == 0 {
		return notFound(kind, id)
	}
	return nil
}

// CreateProject inserts a project document.
func (s *Store) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	now := s.now()
	doc := projectDoc{
		ID:          primitive.NewObjectID(),
		Title:       p.Title,
		Description: p.Description,
		ClientName:  p.ClientName,
		StartDate:   p.StartDate,
		Status:      p.Status,
		Priority:    p.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.db.Collection(projectsColl).InsertOne(ctx, doc); err != nil {
		return models.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return doc.model(), nil
}

// ListProjects returns all projects, newest first.
func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	docs, err := findAll[projectDoc](ctx, s.db.Collection(projectsColl), "projects")
	if err != nil {
		return nil, err
	}
	projects := make([]models.Project, len(docs))
	for i, d := range docs {
		projects[i] = d.model()
	}
	return projects, nil
}

// GetProject fetches one project.
func (s *Store) GetProject(ctx context.Context, id string) (models.Project, error) {
	doc, err := findOne[projectDoc](ctx, s.db.Collection(projectsColl), "project", id)
	if err != nil {
		return models.Project{}, err
	}
	return doc.model(), nil
}

// UpdateProjectStatus sets status and updatedAt in a single atomic update.
func (s *Store) UpdateProjectStatus(ctx context.Context, id string, status models.ProjectStatus) (models.Project, error) {
	oid, err := objectID("project", id)
	if err != nil {
		return models.Project{}, err
	}
	var doc projectDoc
	err = s.db.Collection(projectsColl).FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "updatedAt": s.now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Project{}, notFound("project", id)
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("update project: %w", err)
	}
	return doc.model(), nil
}

// DeleteProject removes a project; its tasks are left in place.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return s.deleteByID(ctx, projectsColl, "project", id)
}

// CreateTask inserts a task document.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	now := s.now()
	t.CreatedAt, t.UpdatedAt = now, now
	doc := newTaskDoc(primitive.NewObjectID(), t)
	if _, err := s.db.Collection(tasksColl).InsertOne(ctx, doc); err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return doc.model(), nil
}

// GetTask fetches one task.
func (s *Store) GetTask(ctx context.Context, id string) (models.Task, error) {
	doc, err := findOne[taskDoc](ctx, s.db.Collection(tasksColl), "task", id)
	if err != nil {
		return models.Task{}, err
	}
	return doc.model(), nil
}

// SaveTask replaces the whole task document.
func (s *Store) SaveTask(ctx context.Context, t models.Task) (models.Task, error) {
	oid, err := objectID("task", t.ID)
	if err != nil {
		return models.Task{}, err
	}
	t.UpdatedAt = s.now()

	var doc taskDoc
	err = s.db.Collection(tasksColl).FindOneAndReplace(ctx,
		bson.M{"_id": oid},
		newTaskDoc(oid, t),
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Task{}, notFound("task", t.ID)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("replace task: %w", err)
	}
	return doc.model(), nil
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.deleteByID(ctx, tasksColl, "task", id)
}

// ListTasks returns all tasks newest first, with assignee and project
// summaries looked up by id.
func (s *Store) ListTasks(ctx context.Context) ([]models.TaskView, error) {
	docs, err := findAll[taskDoc](ctx, s.db.Collection(tasksColl), "tasks")
	if err != nil {
		return nil, err
	}

	var empIDs, projIDs []string
	for _, d := range docs {
		empIDs = append(empIDs, d.AssignTo)
		projIDs = append(projIDs, d.Project)
	}

	employees := map[string]*models.EmployeeRef{}
	var empDocs []struct {
		ID    primitive.ObjectID `bson:"_id"`
		Name  string             `bson:"name"`
		Email string             `bson:"email"`
	}
	if err := s.lookup(ctx, employeesColl, empIDs, bson.M{"name": 1, "email": 1}, &empDocs); err != nil {
		return nil, err
	}
	for _, e := range empDocs {
		employees[e.ID.Hex()] = &models.EmployeeRef{ID: e.ID.Hex(), Name: e.Name, Email: e.Email}
	}

	projects := map[string]*models.ProjectRef{}
	var projDocs []struct {
		ID         primitive.ObjectID `bson:"_id"`
		Title      string             `bson:"title"`
		ClientName string             `bson:"clientName"`
	}
	if err := s.lookup(ctx, projectsColl, projIDs, bson.M{"title": 1, "clientName": 1}, &projDocs); err != nil {
		return nil, err
	}
	for _, p := range projDocs {
		projects[p.ID.Hex()] = &models.ProjectRef{ID: p.ID.Hex(), Title: p.Title, ClientName: p.ClientName}
	}

	views := make([]models.TaskView, len(docs))
	for i, d := range docs {
		views[i] = models.TaskView{
			ID:          d.ID.Hex(),
			Title:       d.Title,
			Description: d.Description,
			AssignTo:    employees[d.AssignTo],
			Project:     projects[d.Project],
			StartDate:   d.StartDate,
			DueDate:     d.DueDate,
			Priority:    d.Priority,
			Status:      d.Status,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		}
	}
	return views, nil
}

// lookup decodes the projected documents of coll whose ids are in ids.
// Ids that are not ObjectIDs are skipped.
func (s *Store) lookup(ctx context.Context, coll string, ids []string, projection bson.M, out any) error {
	seen := map[primitive.ObjectID]struct{}{}
	oids := bson.A{}
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		if _, ok := seen[oid]; ok {
			continue
		}
		seen[oid] = struct{}{}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil
	}

	cur, err := s.db.Collection(coll).Find(ctx,
		bson.M{"_id": bson.M{"$in": oids}},
		options.Find().SetProjection(projection),
	)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", coll, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", coll, err)
	}
	return nil
}

// CreateEmployee inserts an employee document.
func (s *Store) CreateEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	now := s.now()
	doc := employeeDoc{
		ID:        primitive.NewObjectID(),
		Name:      e.Name,
		Email:     e.Email,
		Position:  e.Position,
		Status:    e.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.db.Collection(employeesColl).InsertOne(ctx, doc); err != nil {
		return models.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return doc.model(), nil
}

// ListEmployees returns all employees, newest first.
func (s *Store) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	docs, err := findAll[employeeDoc](ctx, s.db.Collection(employeesColl), "employees")
	if err != nil {
		return nil, err
	}
	out := make([]models.Employee, len(docs))
	for i, d := range docs {
		out[i] = d.model()
	}
	return out, nil
}

// DeleteEmployee removes an employee.
func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	return s.deleteByID(ctx, employeesColl, "employee", id)
}

// CreateTimesheet inserts a timesheet document.
func (s *Store) CreateTimesheet(ctx context.Context, ts models.Timesheet) (models.Timesheet, error) {
	now := s.now()
	doc := timesheetDoc{
		ID:        primitive.NewObjectID(),
		Employee:  ts.Employee,
		Project:   ts.Project,
		Task:      ts.Task,
		Notes:     ts.Notes,
		Progress:  ts.Progress,
		TimeSpent: ts.TimeSpent,
		Date:      ts.Date,
		Type:      ts.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.db.Collection(timesheetsColl).InsertOne(ctx, doc); err != nil {
		return models.Timesheet{}, fmt.Errorf("insert timesheet: %w", err)
	}
	return doc.model(), nil
}

// ListTimesheets returns all timesheets, newest first.
func (s *Store) ListTimesheets(ctx context.Context) ([]models.Timesheet, error) {
	docs, err := findAll[timesheetDoc](ctx, s.db.Collection(timesheetsColl), "timesheets")
	if err != nil {
		return nil, err
	}
	out := make([]models.Timesheet, len(docs))
	for i, d := range docs {
		out[i] = d.model()
	}
	return out, nil
}

// CreateAttendance inserts an attendance document.
func (s *Store) CreateAttendance(ctx context.Context, a models.Attendance) (models.Attendance, error) {
	now := s.now()
	doc := attendanceDoc{
		ID:           primitive.NewObjectID(),
		Employee:     a.Employee,
		Day:          a.Day,
		TimeIn:       a.TimeIn,
		TimeOut:      a.TimeOut,
		WorkingHours: a.WorkingHours,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.db.Collection(attendanceColl).InsertOne(ctx, doc); err != nil {
		return models.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}
	return doc.model(), nil
}

// ListAttendance returns all attendance records, newest first.
func (s *Store) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	docs, err := findAll[attendanceDoc](ctx, s.db.Collection(attendanceColl), "attendances")
	if err != nil {
		return nil, err
	}
	out := make([]models.Attendance, len(docs))
	for i, d := range docs {
		out[i] = d.model()
	}
	return out, nil
}
