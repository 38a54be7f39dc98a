// Package server exposes the transcription HTTP API. The contract is a
// single multipart endpoint: POST /transcribe/ with a "file" field
// answers {"text": "..."} on success and {"error": "..."} on failure,
// always as JSON.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/speakpipe/speakpipe/internal/asr"
	"github.com/speakpipe/speakpipe/internal/version"
	"github.com/speakpipe/speakpipe/internal/zhconv"
)

type Options struct {
	Addr string
	// APIKey enables X-API-Key auth on the transcription endpoint when
	// non-empty. The health endpoint stays open.
	APIKey string
	// Simplify converts transcripts to simplified Chinese before they
	// leave the server.
	Simplify bool
	Logger   *zap.Logger
}

type Server struct {
	opts   Options
	engine asr.Engine
	logger *zap.Logger
	server *http.Server
}

func New(engine asr.Engine, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Addr == "" {
		opts.Addr = ":8000"
	}

	s := &Server{opts: opts, engine: engine, logger: opts.Logger}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.loggingMiddleware())

	router.GET("/healthz", s.handleHealth)

	transcribe := router.Group("/")
	if opts.APIKey != "" {
		transcribe.Use(s.authMiddleware())
	}
	transcribe.POST("/transcribe/", s.handleTranscribe)
	transcribe.POST("/transcribe", s.handleTranscribe)

	s.server = &http.Server{
		Addr:        opts.Addr,
		Handler:     router,
		ReadTimeout: 5 * time.Minute,
		IdleTimeout: 120 * time.Second,
	}

	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.logger.Info("starting transcription server",
		zap.String("addr", s.opts.Addr),
		zap.String("engine", s.engine.Name()),
		zap.Bool("auth", s.opts.APIKey != ""),
	)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)
		c.Next()
		s.logger.Info("request",
			zap.String("id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-API-Key") != s.opts.APIKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			return
		}
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"engine":  s.engine.Name(),
		"version": version.Version,
	})
}

func (s *Server) handleTranscribe(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field \"file\" is required"})
		return
	}

	// Spool the upload to a temp file so engines can work from a path;
	// removed as soon as the request is answered.
	spoolPath := filepath.Join(os.TempDir(), fmt.Sprintf("speakpipe-upload-%s%s", uuid.NewString(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, spoolPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("save upload: %v", err)})
		return
	}
	defer os.Remove(spoolPath)

	result, err := s.engine.Transcribe(c.Request.Context(), asr.Request{
		AudioPath: spoolPath,
		Language:  c.Query("language"),
	})
	if err != nil {
		s.logger.Error("transcription failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	text := result.Text
	if s.opts.Simplify && zhconv.HasTraditional(text) {
		text = zhconv.Convert(text)
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}
