// Package web serves the history of archived runs as go-echarts pages.
package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/components"

	arithbench "github.com/varex83/acs-lab-1"
	"github.com/varex83/acs-lab-1/internal/chart"
)

// Server holds the archived runs of one data directory and the pages
// rendered from them.
type Server struct {
	dir    string
	logger *slog.Logger

	mu          sync.RWMutex
	data        []arithbench.BenchOutput
	ratePage    *components.Page
	percentPage *components.Page
}

// NewServer loads every run in dir, creating dir when it does not exist.
func NewServer(dir string, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	data, err := arithbench.LoadDataDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}

	s := &Server{dir: dir, logger: logger, data: data}
	if err := s.regenerate(data); err != nil {
		return nil, err
	}
	logger.Info("history loaded", "dir", dir, "runs", len(data))
	return s, nil
}

// Router returns the gin engine serving the pages.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/", s.handleRate)
	r.GET("/percent", s.handlePercent)
	r.POST("/upload", s.handleUpload)
	r.GET("/healthz", s.handleHealth)
	return r
}

func (s *Server) handleRate(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.render(c, s.ratePage)
}

func (s *Server) handlePercent(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.render(c, s.percentPage)
}

func (s *Server) render(c *gin.Context, page *components.Page) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := page.Render(c.Writer); err != nil {
		s.logger.Error("render page failed", "error", err)
	}
}

func (s *Server) handleUpload(c *gin.Context) {
	var b arithbench.BenchOutput
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tm, err := arithbench.UnixDateToTime(b.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := arithbench.FileName(tm, b.Toolchain)
	if err := arithbench.WriteJSONFile(filepath.Join(s.dir, name), b); err != nil {
		s.logger.Error("write upload failed", "file", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	data := append(append([]arithbench.BenchOutput(nil), s.data...), b)
	sort.SliceStable(data, func(i, j int) bool {
		ti, _ := arithbench.UnixDateToTime(data[i].Date)
		tj, _ := arithbench.UnixDateToTime(data[j].Date)
		return ti.Before(tj)
	})
	if err := s.regenerateLocked(data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.data = data
	s.logger.Info("run uploaded", "file", name, "results", len(b.Result))
	c.JSON(http.StatusCreated, gin.H{"file": name})
}

func (s *Server) handleHealth(c *gin.Context) {
	s.mu.RLock()
	n := len(s.data)
	s.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "runs": n})
}

func (s *Server) regenerate(data []arithbench.BenchOutput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regenerateLocked(data)
}

func (s *Server) regenerateLocked(data []arithbench.BenchOutput) error {
	ratePage, err := chart.HistoryPage(data, chart.MetricRate)
	if err != nil {
		return err
	}
	percentPage, err := chart.HistoryPage(data, chart.MetricPercent)
	if err != nil {
		return err
	}
	s.ratePage = ratePage
	s.percentPage = percentPage
	return nil
}
