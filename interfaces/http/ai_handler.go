package http

import (
	"net/http"

	"granitereply/domain/dto"
	"granitereply/infrastructure/logger"
	"granitereply/usecase"

	"github.com/gin-gonic/gin"
)

type IAIHandler interface {
	Generate(c *gin.Context)
	Sentiment(c *gin.Context)
	Improve(c *gin.Context)
}

type AIHandler struct {
	aiUsecase usecase.IAIUsecase
}

func NewAIHandler(aiUsecase usecase.IAIUsecase) IAIHandler {
	return &AIHandler{aiUsecase: aiUsecase}
}

// Generate drafts a response for a review. The body is always an envelope:
// {success, data} on 200, {success:false, error} otherwise.
func (h *AIHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.ReviewText == "" || req.BusinessName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "reviewText and businessName are required"})
		return
	}
	if req.OrganizationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "organizationId is required"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "rating must be between 1 and 5"})
		return
	}

	result, err := h.aiUsecase.Generate(c.Request.Context(), &req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate response"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// Sentiment scores a review text.
func (h *AIHandler) Sentiment(c *gin.Context) {
	var req dto.SentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.ReviewText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reviewText is required"})
		return
	}

	analysis, err := h.aiUsecase.AnalyzeSentiment(c.Request.Context(), req.ReviewText)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Sentiment analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze sentiment"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// Improve rewrites a response according to editor feedback.
func (h *AIHandler) Improve(c *gin.Context) {
	var req dto.ImproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.OriginalResponse == "" || req.Feedback == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "originalResponse and feedback are required"})
		return
	}

	result, err := h.aiUsecase.Improve(c.Request.Context(), &req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Improve failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to improve response"})
		return
	}
	c.JSON(http.StatusOK, result)
}
