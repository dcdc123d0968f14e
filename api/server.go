// Package api exposes the prediction engine over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"golca/domain/core"
	"golca/domain/lca"
	"golca/internal"
	"golca/internal/engine"
	"golca/ports"
)

// Server wires the prediction engine, the benchmark tables, and the optional
// history repository into a JSON API.
type Server struct {
	router  *gin.Engine
	engine  *engine.Engine
	history ports.PredictionRepository // nil when no database is configured
	log     *internal.Logger
}

// NewServer creates a new API server around a constructed engine.
func NewServer(eng *engine.Engine, history ports.PredictionRepository, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	s := &Server{
		router:  gin.Default(),
		engine:  eng,
		history: history,
		log:     logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	apiGroup := s.router.Group("/api")
	{
		apiGroup.POST("/predict", s.handlePredict)
		apiGroup.GET("/model", s.handleModelInfo)
		apiGroup.GET("/benchmarks", s.handleBenchmarkList)
		apiGroup.GET("/benchmarks/:metal", s.handleBenchmark)
		apiGroup.GET("/history", s.handleHistory)
	}
}

// Run starts the HTTP server on the given port.
func (s *Server) Run(port string) error {
	s.log.Info("starting API server on :%s", port)
	return s.router.Run(":" + port)
}

// Handler exposes the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "mode": s.engine.Mode().String()})
}

func (s *Server) handlePredict(c *gin.Context) {
	var req lca.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON input"})
		return
	}

	result, err := s.engine.Predict(req)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsInputError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	s.recordHistory(req, result)
	c.JSON(http.StatusOK, result)
}

// recordHistory persists the prediction when a repository is wired in.
// Storage failures only log; the response already succeeded.
func (s *Server) recordHistory(req lca.Request, result *lca.PredictionResult) {
	if s.history == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec := &ports.PredictionRecord{
		MetalType:       req.String(lca.FieldMetalType),
		ProductionRoute: req.String(lca.FieldProductionRoute),
		Region:          req.String(lca.FieldRegion),
		Request:         req,
		Result:          result.Predictions,
		ModelVersion:    result.ModelInfo.Version,
	}
	if err := s.history.Save(ctx, rec); err != nil {
		s.log.Warn("failed to save prediction history: %v", err)
	}
}

func (s *Server) handleModelInfo(c *gin.Context) {
	meta := s.engine.Metadata()
	c.JSON(http.StatusOK, gin.H{
		"mode":          s.engine.Mode().String(),
		"metadata":      meta,
		"feature_order": s.engine.FeatureOrder(),
	})
}

func (s *Server) handleBenchmarkList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"metals": lca.BenchmarkMetals()})
}

func (s *Server) handleBenchmark(c *gin.Context) {
	metal := c.Param("metal")
	benchmark, ok := lca.BenchmarkFor(metal)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no benchmark bands published for " + metal})
		return
	}
	c.JSON(http.StatusOK, gin.H{"metal": metal, "benchmark": benchmark})
}

func (s *Server) handleHistory(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "prediction history is not configured"})
		return
	}
	records, err := s.history.Recent(c.Request.Context(), 20)
	if err != nil {
		s.log.Error("failed to load prediction history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": records})
}
