// Package api exposes the journal service over HTTP.
package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mindmate/mindmate/internal/journal"
	"github.com/mindmate/mindmate/internal/logger"
)

// Server handles HTTP requests for the journal API.
type Server struct {
	svc  *journal.Service
	log  *logger.Logger
	addr string
}

// New creates an API server around the journal service.
func New(svc *journal.Service, log *logger.Logger, addr string) *Server {
	return &Server{svc: svc, log: log, addr: addr}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(s.log))

	// The frontend is served from a separate origin during development.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	router.GET("/health", s.health)
	router.POST("/journal", s.submitJournal)
	router.GET("/journal-history", s.journalHistory)
	router.GET("/journal-insights", s.journalInsights)
	router.DELETE("/journal/:id", s.deleteJournal)

	return router
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	s.log.Info("starting server", "addr", s.addr)
	return s.Router().Run(s.addr)
}
