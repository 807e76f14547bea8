package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhub/internal/models"
)

func (s *Server) handleCreateEmployee(c *gin.Context) {
	var req models.EmployeeInput
	if !s.bindJSON(c, &req) {
		return
	}

	employee, err := s.svc.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		s.fail(c, "Employee", "Failed to add employee", err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"message": "Employee added successfully", "employee": employee})
}

func (s *Server) handleListEmployees(c *gin.Context) {
	employees, err := s.svc.ListEmployees(c.Request.Context())
	if err != nil {
		s.fail(c, "Employee", "Failed to fetch employees", err)
		return
	}
	respondSuccess(c, http.StatusOK, employees)
}

func (s *Server) handleDeleteEmployee(c *gin.Context) {
	if err := s.svc.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, "Employee", "Failed to delete employee", err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

func (s *Server) handleEmployeeStats(c *gin.Context) {
	stats, err := s.svc.EmployeeStats(c.Request.Context())
	if err != nil {
		s.fail(c, "Employee", "Failed to fetch employee stats", err)
		return
	}
	respondSuccess(c, http.StatusOK, stats)
}

func (s *Server) handleCreateTimesheet(c *gin.Context) {
	var req models.TimesheetInput
	if !s.bindJSON(c, &req) {
		return
	}

	timesheet, err := s.svc.CreateTimesheet(c.Request.Context(), req)
	if err != nil {
		s.fail(c, "Timesheet", "Failed to add timesheet", err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"message": "Timesheet added successfully", "timesheet": timesheet})
}

func (s *Server) handleListTimesheets(c *gin.Context) {
	timesheets, err := s.svc.ListTimesheets(c.Request.Context())
	if err != nil {
		s.fail(c, "Timesheet", "Failed to fetch timesheets", err)
		return
	}
	respondSuccess(c, http.StatusOK, timesheets)
}

func (s *Server) handleTimesheetStats(c *gin.Context) {
	stats, err := s.svc.TimesheetStats(c.Request.Context())
	if err != nil {
		s.fail(c, "Timesheet", "Failed to fetch timesheet stats", err)
		return
	}
	respondSuccess(c, http.StatusOK, stats)
}

// handleCreateAttendance records a working day and derives its hours.
func (s *Server) handleCreateAttendance(c *gin.Context) {
	var req models.AttendanceInput
	if !s.bindJSON(c, &req) {
		return
	}

	attendance, err := s.svc.RecordAttendance(c.Request.Context(), req)
	if err != nil {
		s.fail(c, "Attendance", "Failed to add attendance", err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"message": "Attendance added successfully", "attendance": attendance})
}

func (s *Server) handleListAttendance(c *gin.Context) {
	records, err := s.svc.ListAttendance(c.Request.Context())
	if err != nil {
		s.fail(c, "Attendance", "Failed to fetch attendance", err)
		return
	}
	respondSuccess(c, http.StatusOK, records)
}
