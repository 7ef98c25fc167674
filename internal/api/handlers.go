package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mindmate/mindmate/internal/domain"
	"github.com/mindmate/mindmate/internal/journal"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SubmitRequest is the body for POST /journal.
type SubmitRequest struct {
	Text string `json:"text"`
}

func (s *Server) submitJournal(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := s.svc.Submit(c.Request.Context(), req.Text)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (s *Server) journalHistory(c *gin.Context) {
	start, err := journal.ParseDate(c.Query("start_date"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	end, err := journal.ParseDate(c.Query("end_date"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	entries, err := s.svc.History(c.Request.Context(), journal.Filter{
		Emotion:   c.Query("emotion"),
		Sentiment: c.Query("sentiment"),
		Start:     start,
		End:       end,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (s *Server) journalInsights(c *gin.Context) {
	insights, err := s.svc.Insights(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

func (s *Server) deleteJournal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := s.svc.Delete(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeError maps the error taxonomy onto HTTP statuses: validation
// errors are 400, unknown ids 404, classifier failures 502, and
// anything else (storage, corrupt data) 500.
func (s *Server) writeError(c *gin.Context, err error) {
	var clfErr *domain.ClassificationError

	switch {
	case errors.Is(err, domain.ErrEmptyText), errors.Is(err, domain.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNotFound.Error()})
	case errors.As(err, &clfErr):
		s.log.Error("classification failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "classification failed"})
	default:
		s.log.Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
