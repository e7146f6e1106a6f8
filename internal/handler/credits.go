package handler

import (
	"net/http"

	"ticket-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// GetBalance
// @Summary Get the credit balance
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CreditBalance
// @Router /credits/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Balance(token(c)))
}

// Spend
// @Summary Spend credits on content
// @Description Unlocks content for the caller. Subscription credits are used before purchased ones.
// @Tags credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays the first response for a repeated key"
// @Param request body model.ContentRef true "Content to unlock"
// @Success 200 {object} model.CreditBalance
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 402 {object} model.ErrorResponse "Insufficient credits"
// @Failure 422 {object} model.ErrorResponse "Unknown content type"
// @Router /credits/spend [post]
func (h *Handler) Spend(c *gin.Context) {
	var req model.ContentRef
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}
	if req.ContentID == "" {
		h.badRequest(c, "contentId is required")
		return
	}

	contentType, err := model.ParseContentType(req.ContentType.String())
	if err != nil {
		h.handleError(c, err)
		return
	}
	req.ContentType = contentType

	balance, err := h.store.Spend(token(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// CheckUnlock
// @Summary Check whether content is unlocked
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Param contentType path string true "Content type" Enums(match_prediction, tip, parlay, ai_chat, value_bet, team_analysis, player_analysis)
// @Param contentId path string true "Content ID"
// @Success 200 {object} model.UnlockStatus
// @Failure 422 {object} model.ErrorResponse "Unknown content type"
// @Router /credits/check/{contentType}/{contentId} [get]
func (h *Handler) CheckUnlock(c *gin.Context) {
	contentType, err := model.ParseContentType(c.Param("contentType"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	ref := model.ContentRef{ContentType: contentType, ContentID: c.Param("contentId")}
	c.JSON(http.StatusOK, h.store.CheckUnlock(token(c), ref))
}

// GetPacks
// @Summary List credit packs
// @Tags credits
// @Produce json
// @Success 200 {array} model.CreditPack
// @Router /credits/packs [get]
func (h *Handler) GetPacks(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Packs())
}

// GetHistory
// @Summary List credit transactions
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CreditTransaction
// @Router /credits/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.History(token(c)))
}

// GetCosts
// @Summary Get per-content credit costs
// @Tags credits
// @Produce json
// @Success 200 {object} model.CreditCosts
// @Router /credits/costs [get]
func (h *Handler) GetCosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Costs())
}
