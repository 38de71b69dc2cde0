package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatRequest is the body of a chat API call. Message is the user's text,
// CropType optionally pins the conversation to one crop and must match a
// knowledge base key exactly.
type ChatRequest struct {
	Message  string `json:"message" binding:"required"`
	CropType string `json:"crop_type"`
}

// chat godoc
// @Summary chat answers a single farming question
// @Schemes
// @Description chat runs the message through the keyword pipeline and responds with the reply, the crop it is about, and follow-up suggestions as JSON.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Message to answer"
// @Failure 400 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Success 200 {object} cropchat.Response
// @Router /api/chat [post]
func (s *Server) chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	c.JSON(http.StatusOK, s.bot.Process(req.Message, req.CropType))
}

// crops godoc
// @Summary crops lists every crop in the knowledge base
// @Schemes
// @Description crops responds with the names of all known crops as JSON, in knowledge base order.
// @Tags Crops
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/crops [get]
func (s *Server) crops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"crops": s.bot.Crops()})
}

// health godoc
// @Summary health reports service liveness
// @Schemes
// @Description health responds with a static status document.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
