package handler

import (
	"net/http"

	"ticket-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// GetUsage
// @Summary Get AI chat token usage
// @Tags ai-chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.TokenUsage
// @Router /ai-chat/usage [get]
func (h *Handler) GetUsage(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Usage(token(c)))
}

// ConvertCredits
// @Summary Convert credits into AI chat tokens
// @Tags ai-chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.TokenUsage
// @Failure 402 {object} model.ErrorResponse "Insufficient credits"
// @Router /ai-chat/convert-credits [post]
func (h *Handler) ConvertCredits(c *gin.Context) {
	usage, err := h.store.ConvertCredits(token(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, usage)
}

// ChatHistory
// @Summary Get the conversation for a match
// @Tags ai-chat
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Success 200 {array} model.ChatMessage
// @Failure 403 {object} model.ErrorResponse "Expert tier required"
// @Router /ai-chat/match/{matchId}/history [get]
func (h *Handler) ChatHistory(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	msgs, err := h.store.ChatHistory(token(c), matchID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// SendMessage
// @Summary Ask the assistant about a match
// @Description Returns the assistant reply. Replies may carry a ticket proposal.
// @Tags ai-chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Param message body model.SendMessageRequest true "User message"
// @Success 200 {object} model.ChatMessage
// @Failure 403 {object} model.ErrorResponse "Expert tier required"
// @Failure 422 {object} model.ErrorResponse "Empty message"
// @Failure 429 {object} model.ErrorResponse "Token limit reached"
// @Router /ai-chat/match/{matchId}/message [post]
func (h *Handler) SendMessage(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	reply, err := h.store.SendMessage(token(c), matchID, req.Message)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// DeleteConversation
// @Summary Delete the conversation for a match
// @Tags ai-chat
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Success 204
// @Failure 403 {object} model.ErrorResponse "Expert tier required"
// @Router /ai-chat/match/{matchId} [delete]
func (h *Handler) DeleteConversation(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteConversation(token(c), matchID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateProposalStatus
// @Summary Accept or decline a ticket proposal
// @Tags ai-chat
// @Accept json
// @Security BearerAuth
// @Param messageId path string true "Message carrying the proposal"
// @Param request body model.ProposalStatusRequest true "New status"
// @Success 204
// @Failure 404 {object} model.ErrorResponse "Message not found"
// @Failure 409 {object} model.ErrorResponse "Proposal already finalized"
// @Router /ai-chat/ticket-proposal/{messageId}/status [put]
func (h *Handler) UpdateProposalStatus(c *gin.Context) {
	var req model.ProposalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	status, err := model.ParseProposalStatus(req.Status.String())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.store.UpdateProposalStatus(token(c), c.Param("messageId"), status); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
