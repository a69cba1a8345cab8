package http

import (
	"errors"
	"net/http"

	"granitereply/domain/dto"
	"granitereply/infrastructure/logger"
	"granitereply/usecase"

	"github.com/gin-gonic/gin"
)

type IReviewHandler interface {
	Sync(c *gin.Context)
	Respond(c *gin.Context)
}

type ReviewHandler struct {
	syncUsecase    usecase.ISyncUsecase
	respondUsecase usecase.IRespondUsecase
}

func NewReviewHandler(syncUsecase usecase.ISyncUsecase, respondUsecase usecase.IRespondUsecase) IReviewHandler {
	return &ReviewHandler{syncUsecase: syncUsecase, respondUsecase: respondUsecase}
}

// Sync pulls reviews for every active connection. The response always
// enumerates per-location results; partial failure is not an HTTP error.
func (h *ReviewHandler) Sync(c *gin.Context) {
	result := h.syncUsecase.SyncAll(c.Request.Context())
	if !result.Success {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Respond posts (or drafts) a reply to a review.
func (h *ReviewHandler) Respond(c *gin.Context) {
	var req dto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.ReviewID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reviewId is required"})
		return
	}

	result, err := h.respondUsecase.Respond(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Respond failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to respond to review"})
		return
	}
	if !result.Success {
		c.JSON(http.StatusBadGateway, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
