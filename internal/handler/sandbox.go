package handler

import (
	"net/http"

	"ticket-engine/internal/model"

	"github.com/gin-gonic/gin"
)

type SettleRequest struct {
	Status string `json:"status" example:"won"`
}

// SettleTicket
// @Summary Settle a ticket
// @Description Moves a pending ticket to won, lost or void and pushes the update to the owner's feed
// @Tags sandbox
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param request body SettleRequest true "Final status"
// @Success 200 {object} model.TicketStatusUpdate
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Failure 409 {object} model.ErrorResponse "Already settled"
// @Failure 422 {object} model.ErrorResponse "Invalid status"
// @Router /sandbox/tickets/{id}/settle [post]
func (h *Handler) SettleTicket(c *gin.Context) {
	var req SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	status, err := model.ParseTicketStatus(req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	owner, update, err := h.store.Settle(c.Param("id"), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	delivered := h.hub.Publish(owner, update)
	h.logger.Info().
		Str("ticket_id", update.TicketID).
		Str("status", update.Status.String()).
		Int("delivered", delivered).
		Msg("Ticket settled")

	c.JSON(http.StatusOK, update)
}
