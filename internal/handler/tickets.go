package handler

import (
	"net/http"

	"ticket-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// ListTickets
// @Summary List saved tickets
// @Description Returns the caller's tickets, newest first
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Ticket
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Router /tickets [get]
func (h *Handler) ListTickets(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Tickets(token(c)))
}

// CreateTicket
// @Summary Save a ticket
// @Description Stores a pending ticket. Combined odds and payout are recomputed server-side.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays the first response for a repeated key"
// @Param ticket body model.CreateTicketRequest true "Ticket details"
// @Success 201 {object} model.Ticket
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Request with this key in progress"
// @Failure 422 {object} model.ErrorResponse "Invalid ticket"
// @Router /tickets [post]
func (h *Handler) CreateTicket(c *gin.Context) {
	var req model.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	ticket, err := h.store.CreateTicket(token(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.logger.Info().
		Str("ticket_id", ticket.ID).
		Int("selections", len(ticket.Selections)).
		Str("stake", ticket.Stake.String()).
		Msg("Ticket saved")

	c.JSON(http.StatusCreated, ticket)
}

// DeleteTicket
// @Summary Delete a ticket
// @Tags tickets
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 204
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /tickets/{id} [delete]
func (h *Handler) DeleteTicket(c *gin.Context) {
	if err := h.store.DeleteTicket(token(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
