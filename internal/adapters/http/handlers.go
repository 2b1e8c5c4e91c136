// Package http exposes the solving and generation use cases over a small
// JSON API.
package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/sudoku-logic/internal/domain"
	"svw.info/sudoku-logic/internal/grid"
	"svw.info/sudoku-logic/internal/usecase"
)

type Handler struct {
	svc    *usecase.Service
	logger *slog.Logger
}

func NewHandler(svc *usecase.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{svc: svc, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLog())

	api := r.Group("/api")
	api.POST("/solve", h.solve)
	api.POST("/search", h.search)
	api.POST("/validate", h.validate)
	api.POST("/generate", h.generate)
	api.POST("/puzzles", h.save)
	api.GET("/puzzles", h.list)
	api.GET("/puzzles/:id", h.load)
	api.POST("/snapshots", h.snapshot)
	api.GET("/snapshots", h.snapshotNames)
	api.GET("/snapshots/:name", h.restoreSnapshot)
	return r
}

func (h *Handler) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

type gridRequest struct {
	Grid string `json:"grid" binding:"required"`
}

type candidateEntry struct {
	Row     int             `json:"row"`
	Col     int             `json:"col"`
	Symbols []domain.Symbol `json:"symbols"`
}

type solveResponse struct {
	Status     string           `json:"status"`
	Grid       string           `json:"grid"`
	Steps      int              `json:"steps"`
	DurationMS int64            `json:"duration_ms"`
	Candidates []candidateEntry `json:"candidates,omitempty"`
}

func (h *Handler) solve(c *gin.Context) {
	var req gridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ded, stats, err := h.svc.Deduce(c.Request.Context(), req.Grid)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := solveResponse{
		Status:     ded.Status.String(),
		Grid:       ded.Grid.Encode(),
		Steps:      ded.Steps,
		DurationMS: stats.Duration.Milliseconds(),
	}
	for _, at := range ded.Vacancies {
		resp.Candidates = append(resp.Candidates, candidateEntry{
			Row: at.Row, Col: at.Col, Symbols: ded.Candidates[at].Symbols(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

type searchResponse struct {
	Grid       string `json:"grid"`
	Nodes      int    `json:"nodes"`
	DurationMS int64  `json:"duration_ms"`
}

func (h *Handler) search(c *gin.Context) {
	var req gridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sol, stats, err := h.svc.SearchFirst(c.Request.Context(), req.Grid)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, searchResponse{
		Grid:       sol,
		Nodes:      stats.Nodes,
		DurationMS: stats.Duration.Milliseconds(),
	})
}

type validateResponse struct {
	Valid     bool               `json:"valid"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) validate(c *gin.Context) {
	var req gridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, conflicts, err := h.svc.Validate(c.Request.Context(), req.Grid)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, validateResponse{Valid: ok, Conflicts: conflicts})
}

type generateRequest struct {
	Seed       int64  `json:"seed"`
	Difficulty string `json:"difficulty"`
}

type generateResponse struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	DurationMS int64          `json:"duration_ms"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, stats, err := h.svc.Generate(c.Request.Context(), seed, domain.ParseDifficulty(req.Difficulty))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, generateResponse{Puzzle: p, DurationMS: stats.Duration.Milliseconds()})
}

func (h *Handler) save(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Save(c.Request.Context(), &p); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": p.ID})
}

func (h *Handler) load(c *gin.Context) {
	p, err := h.svc.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) list(c *gin.Context) {
	metas, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, metas)
}

type snapshotRequest struct {
	Name string `json:"name" binding:"required"`
	Grid string `json:"grid" binding:"required"`
}

func (h *Handler) snapshot(c *gin.Context) {
	var req snapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Snapshot(req.Name, req.Grid); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

func (h *Handler) restoreSnapshot(c *gin.Context) {
	flat, err := h.svc.RestoreSnapshot(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"grid": flat})
}

func (h *Handler) snapshotNames(c *gin.Context) {
	names, err := h.svc.SnapshotNames()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// fail maps domain errors to HTTP status codes.
func (h *Handler) fail(c *gin.Context, err error) {
	var conflict *grid.ConflictError
	switch {
	case errors.Is(err, grid.ErrBadLength), errors.Is(err, grid.ErrBadSymbol):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"row":   conflict.At.Row,
			"col":   conflict.At.Col,
		})
	default:
		h.logger.Error("request failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
