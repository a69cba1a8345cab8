package http

import (
	"net/http"
	"strings"

	"granitereply/domain/dto"
	"granitereply/infrastructure/logger"
	"granitereply/usecase"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the unauthenticated marketing-site endpoints: the chat
// widget, the demo generator and lead submission.
type ISiteHandler interface {
	Chat(c *gin.Context)
	Demo(c *gin.Context)
	SubmitLead(c *gin.Context)
}

type SiteHandler struct {
	chatUsecase usecase.IChatUsecase
	demoUsecase usecase.IDemoUsecase
	leadUsecase usecase.ILeadUsecase
}

func NewSiteHandler(chatUsecase usecase.IChatUsecase, demoUsecase usecase.IDemoUsecase, leadUsecase usecase.ILeadUsecase) ISiteHandler {
	return &SiteHandler{chatUsecase: chatUsecase, demoUsecase: demoUsecase, leadUsecase: leadUsecase}
}

func (h *SiteHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Messages array is required"})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Messages array is required"})
		return
	}

	resp, err := h.chatUsecase.Chat(c.Request.Context(), &req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Chat failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat message"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SiteHandler) Demo(c *gin.Context) {
	var req dto.DemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.BusinessDescription == "" || req.Review == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Business description and review are required"})
		return
	}

	resp, err := h.demoUsecase.GenerateDemo(c.Request.Context(), &req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Demo generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate response. Please try again."})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SiteHandler) SubmitLead(c *gin.Context) {
	var req dto.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.FullName == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fullName and email are required"})
		return
	}
	if !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is invalid"})
		return
	}

	lead, err := h.leadUsecase.Submit(c.Request.Context(), &req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Lead submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit lead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": lead.ID})
}
