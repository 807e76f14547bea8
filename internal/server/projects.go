package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhub/internal/models"
)

type statusRequest struct {
	Status string `json:"status"`
}

// handleCreateProject validates and stores a new project.
func (s *Server) handleCreateProject(c *gin.Context) {
	var req models.ProjectInput
	if !s.bindJSON(c, &req) {
		return
	}

	project, err := s.svc.CreateProject(c.Request.Context(), req)
	if err != nil {
		s.fail(c, "Project", "Failed to add project", err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"message": "Project added successfully", "project": project})
}

// handleListProjects returns all projects, newest first.
func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.svc.ListProjects(c.Request.Context())
	if err != nil {
		s.fail(c, "Project", "Failed to fetch projects", err)
		return
	}
	respondSuccess(c, http.StatusOK, projects)
}

// handleUpdateProjectStatus moves a project to another status.
func (s *Server) handleUpdateProjectStatus(c *gin.Context) {
	var req statusRequest
	if !s.bindJSON(c, &req) {
		return
	}

	project, err := s.svc.SetProjectStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		s.fail(c, "Project", "Failed to update status", err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Project status updated successfully", "project": project})
}

// handleDeleteProject removes a project. Its tasks stay.
func (s *Server) handleDeleteProject(c *gin.Context) {
	if err := s.svc.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, "Project", "Failed to delete project", err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func (s *Server) handleProjectStats(c *gin.Context) {
	stats, err := s.svc.ProjectStats(c.Request.Context())
	if err != nil {
		s.fail(c, "Project", "Failed to fetch project stats", err)
		return
	}
	respondSuccess(c, http.StatusOK, stats)
}
