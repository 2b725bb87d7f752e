package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/feedback-platform/internal/application"
	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	"github.com/oksasatya/feedback-platform/internal/interface/middleware"
	"github.com/oksasatya/feedback-platform/pkg/response"
)

type FeedbackHandler struct {
	Service *application.FeedbackService
	Logger  *logrus.Logger
}

func NewFeedbackHandler(svc *application.FeedbackService, logger *logrus.Logger) *FeedbackHandler {
	return &FeedbackHandler{Service: svc, Logger: logger}
}

type createFeedbackRequest struct {
	EmployeeID   int64  `json:"employee_id" binding:"required,gt=0"`
	Strengths    string `json:"strengths"`
	Improvements string `json:"improvements"`
	Sentiment    string `json:"sentiment" binding:"required"`
}

type createFeedbackResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Omitted fields stay nil and leave the stored value untouched
type updateFeedbackRequest struct {
	Strengths    *string `json:"strengths"`
	Improvements *string `json:"improvements"`
	Sentiment    *string `json:"sentiment"`
}

func (r updateFeedbackRequest) patch() entity.FeedbackPatch {
	p := entity.FeedbackPatch{Strengths: r.Strengths, Improvements: r.Improvements}
	if r.Sentiment != nil {
		s := entity.Sentiment(*r.Sentiment)
		p.Sentiment = &s
	}
	return p
}

func feedbackID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Abort(c, http.StatusBadRequest, "invalid feedback id", map[string]string{"id": "must be a positive integer"})
		return 0, false
	}
	return id, true
}

// List GET /api/feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toFeedbackResponses(items))
}

// Create POST /api/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req createFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	f, err := h.Service.Create(c.Request.Context(), middleware.CurrentUser(c), application.CreateFeedbackInput{
		EmployeeID:   req.EmployeeID,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Sentiment:    entity.Sentiment(req.Sentiment),
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, createFeedbackResponse{ID: f.ID, Message: "feedback created successfully"})
}

// Update PUT /api/feedback/:id
func (h *FeedbackHandler) Update(c *gin.Context) {
	id, ok := feedbackID(c)
	if !ok {
		return
	}
	var req updateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.Service.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.patch()); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "feedback updated successfully"})
}

// Acknowledge POST /api/feedback/:id/acknowledge
func (h *FeedbackHandler) Acknowledge(c *gin.Context) {
	id, ok := feedbackID(c)
	if !ok {
		return
	}
	if err := h.Service.Acknowledge(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "feedback acknowledged successfully"})
}
