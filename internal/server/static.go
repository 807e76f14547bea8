package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// mountStatic serves the built dashboard from staticDir and answers
// unknown routes. Unknown /api paths always get a JSON 404; other paths
// fall back to index.html when a bundle is present.
func (s *Server) mountStatic() {
	index := s.findIndex()

	s.engine.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if index == "" || path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Endpoint not found", "error": path})
			return
		}
		c.File(index)
	})
	if index == "" {
		return
	}

	s.engine.GET("/", func(c *gin.Context) {
		c.File(index)
	})
	for _, dir := range []string{"assets", "static"} {
		full := filepath.Join(s.staticDir, dir)
		if info, err := os.Stat(full); err == nil && info.IsDir() {
			s.engine.StaticFS("/"+dir, gin.Dir(full, false))
		}
	}
	for _, file := range []string{"favicon.ico", "manifest.json", "robots.txt"} {
		full := filepath.Join(s.staticDir, file)
		if _, err := os.Stat(full); err == nil {
			s.engine.StaticFile("/"+file, full)
		}
	}
}

// findIndex returns the path of index.html in staticDir, or "".
func (s *Server) findIndex() string {
	if s.staticDir == "" {
		s.logger.Info("no static directory configured; serving the API only")
		return ""
	}
	index := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		s.logger.Warn("dashboard bundle not found", "path", index, "error", err)
		return ""
	}
	return index
}
