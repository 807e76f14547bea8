package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"workhub/internal/auth"
	"workhub/internal/models"
	"workhub/internal/service"
	"workhub/internal/storage"
)

// Server provides the HTTP handlers of the workhub API.
type Server struct {
	engine    *gin.Engine
	svc       *service.Service
	verifier  auth.Verifier
	logger    *slog.Logger
	staticDir string
}

// Options configure optional parts of the server.
type Options struct {
	// StaticDir holds a built frontend; empty serves the API only.
	StaticDir string
	// Verifier checks bearer tokens; nil leaves the API open.
	Verifier auth.Verifier
}

// New constructs the HTTP server with routes and middleware configured.
func New(svc *service.Service, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api/healthz"))

	srv := &Server{
		engine:    router,
		svc:       svc,
		verifier:  opts.Verifier,
		logger:    logger,
		staticDir: opts.StaticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	s.engine.GET("/api/healthz", s.handleHealth)

	api := s.engine.Group("/api")
	if s.verifier != nil {
		api.Use(s.requireBearer)
	} else {
		s.logger.Warn("bearer token check disabled; set auth.jwt_secret to enable it")
	}
	{
		api.POST("/project", s.handleCreateProject)
		api.GET("/projects", s.handleListProjects)
		api.PUT("/projects/:id/status", s.handleUpdateProjectStatus)
		api.DELETE("/projects/:id", s.handleDeleteProject)
		api.GET("/projects-stats", s.handleProjectStats)

		api.POST("/task", s.handleCreateTask)
		api.GET("/tasks", s.handleListTasks)
		api.PUT("/tasks/:id/status", s.handleUpdateTaskStatus)
		api.DELETE("/tasks/:id", s.handleDeleteTask)
		api.GET("/tasks-stats", s.handleTaskStats)

		api.POST("/employee", s.handleCreateEmployee)
		api.GET("/employees", s.handleListEmployees)
		api.DELETE("/employees/:id", s.handleDeleteEmployee)
		api.GET("/employees-stats", s.handleEmployeeStats)

		api.POST("/timesheet", s.handleCreateTimesheet)
		api.GET("/timesheets", s.handleListTimesheets)
		api.GET("/timesheets-stats", s.handleTimesheetStats)

		api.POST("/attendance", s.handleCreateAttendance)
		api.GET("/attendances", s.handleListAttendance)
	}

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requireBearer rejects requests without a valid bearer token.
func (s *Server) requireBearer(c *gin.Context) {
	token, err := auth.ExtractBearer(c.GetHeader("Authorization"))
	if err == nil {
		_, err = s.verifier.Verify(token)
	}
	if err != nil {
		s.respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		c.Abort()
		return
	}
	c.Next()
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	switch {
	case models.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// bindJSON decodes the request body into dst, answering 400 on failure.
func (s *Server) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		s.respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

// fail answers with the status matching err. Client errors get a
// message naming the problem; anything else keeps message.
func (s *Server) fail(c *gin.Context, kind, message string, err error) {
	var missing *models.MissingFieldError
	switch {
	case errors.As(err, &missing) && len(missing.Fields) == 1 && missing.Fields[0] == "status":
		message = "Status is required"
	case errors.As(err, &missing):
		message = "Missing required fields"
	case errors.Is(err, storage.ErrNotFound):
		message = kind + " not found"
	case models.IsValidationError(err):
		message = "Invalid " + strings.ToLower(kind) + " data"
	}
	s.respondError(c, statusFor(err), message, err)
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, message string, err error) {
	detail := message
	if err != nil {
		detail = err.Error()
	}
	s.logger.Error("request failed",
		slog.String("path", c.FullPath()),
		slog.Int("status", status),
		slog.String("error", detail))
	c.JSON(status, gin.H{"message": message, "error": detail})
}

// respondSuccess writes payload as JSON.
func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}
