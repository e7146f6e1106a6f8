package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UnlockPrediction
// @Summary Unlock a match prediction
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Success 200 {object} model.Prediction
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 402 {object} model.ErrorResponse "Insufficient credits"
// @Router /predictions/{matchId}/unlock [post]
func (h *Handler) UnlockPrediction(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	prediction, err := h.store.UnlockPrediction(token(c), matchID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, prediction)
}

// UnlockTip
// @Summary Unlock a tip
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tip ID"
// @Success 200 {object} model.Tip
// @Failure 402 {object} model.ErrorResponse "Insufficient credits"
// @Router /tips/{id}/unlock [post]
func (h *Handler) UnlockTip(c *gin.Context) {
	tip, err := h.store.UnlockTip(token(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tip)
}

func (h *Handler) matchID(c *gin.Context) (int64, bool) {
	matchID, err := strconv.ParseInt(c.Param("matchId"), 10, 64)
	if err != nil || matchID <= 0 {
		h.badRequest(c, "matchId must be a positive integer")
		return 0, false
	}
	return matchID, true
}
