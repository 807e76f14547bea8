package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhub/internal/models"
)

// handleCreateTask stores a new task. Referenced ids are not checked.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req models.TaskInput
	if !s.bindJSON(c, &req) {
		return
	}

	task, err := s.svc.CreateTask(c.Request.Context(), req)
	if err != nil {
		s.fail(c, "Task", "Failed to add task", err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"message": "Task added successfully", "task": task})
}

// handleListTasks returns all tasks with assignee and project expanded.
func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.svc.ListTasks(c.Request.Context())
	if err != nil {
		s.fail(c, "Task", "Failed to fetch tasks", err)
		return
	}
	respondSuccess(c, http.StatusOK, tasks)
}

// handleUpdateTaskStatus moves a task to another status.
func (s *Server) handleUpdateTaskStatus(c *gin.Context) {
	var req statusRequest
	if !s.bindJSON(c, &req) {
		return
	}

	task, err := s.svc.SetTaskStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		s.fail(c, "Task", "Failed to update task status", err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Task status updated successfully", "task": task})
}

// handleDeleteTask removes a task.
func (s *Server) handleDeleteTask(c *gin.Context) {
	if err := s.svc.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, "Task", "Failed to delete task", err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (s *Server) handleTaskStats(c *gin.Context) {
	stats, err := s.svc.TaskStats(c.Request.Context())
	if err != nil {
		s.fail(c, "Task", "Failed to fetch task stats", err)
		return
	}
	respondSuccess(c, http.StatusOK, stats)
}
