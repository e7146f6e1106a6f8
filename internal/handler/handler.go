package handler

import (
	"errors"
	"net/http"

	"ticket-engine/internal/model"
	"ticket-engine/internal/sandbox"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler serves the sandbox implementation of the remote betting API.
type Handler struct {
	store       *sandbox.Store
	hub         *sandbox.Hub
	idempotency *sandbox.IdempotencyCache
	limiter     *sandbox.RateLimiter
	requireAuth bool
	logger      zerolog.Logger
}

type Option func(*Handler)

// WithRateLimit throttles every wallet to rps requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(h *Handler) {
		h.limiter = sandbox.NewRateLimiter(rps, burst)
	}
}

func NewHandler(store *sandbox.Store, hub *sandbox.Hub, requireAuth bool, logger zerolog.Logger, opts ...Option) *Handler {
	h := &Handler{
		store:       store,
		hub:         hub,
		idempotency: sandbox.NewIdempotencyCache(),
		limiter:     sandbox.NewRateLimiter(0, 1),
		requireAuth: requireAuth,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api", AuthMiddleware(h.requireAuth), RateLimitMiddleware(h.limiter))

	tickets := api.Group("/tickets")
	tickets.GET("", h.ListTickets)
	tickets.POST("", IdempotencyMiddleware(h.idempotency), h.CreateTicket)
	tickets.DELETE("/:id", h.DeleteTicket)
	tickets.GET("/feed", h.TicketFeed)

	credits := api.Group("/credits")
	credits.GET("/balance", h.GetBalance)
	credits.POST("/spend", IdempotencyMiddleware(h.idempotency), h.Spend)
	credits.GET("/check/:contentType/:contentId", h.CheckUnlock)
	credits.GET("/packs", h.GetPacks)
	credits.GET("/history", h.GetHistory)
	credits.GET("/costs", h.GetCosts)

	api.POST("/predictions/:matchId/unlock", h.UnlockPrediction)
	api.POST("/tips/:id/unlock", h.UnlockTip)

	chat := api.Group("/ai-chat")
	chat.GET("/usage", h.GetUsage)
	chat.POST("/convert-credits", h.ConvertCredits)
	chat.GET("/match/:matchId/history", h.ChatHistory)
	chat.POST("/match/:matchId/message", h.SendMessage)
	chat.DELETE("/match/:matchId", h.DeleteConversation)
	chat.PUT("/ticket-proposal/:messageId/status", h.UpdateProposalStatus)

	// Operator endpoint for driving ticket outcomes
	api.POST("/sandbox/tickets/:id/settle", h.SettleTicket)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := string(model.KindServer)

	resp := model.ErrorResponse{Message: err.Error()}

	var apiErr *model.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Kind == model.KindInsufficientCredits:
		status = http.StatusPaymentRequired
		code = string(model.KindInsufficientCredits)
		resp.Message = apiErr.Message
		resp.Required = &apiErr.Required
		resp.Available = &apiErr.Available
	case errors.Is(err, sandbox.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = string(model.KindUnauthorized)
	case errors.Is(err, sandbox.ErrExpertRequired):
		status = http.StatusForbidden
		code = "EXPERT_REQUIRED"
	case errors.Is(err, sandbox.ErrTicketNotFound),
		errors.Is(err, sandbox.ErrMessageNotFound):
		status = http.StatusNotFound
		code = string(model.KindNotFound)
	case errors.Is(err, sandbox.ErrTicketSettled),
		errors.Is(err, sandbox.ErrIdempotencyInUse),
		errors.Is(err, model.ErrProposalFinalized):
		status = http.StatusConflict
		code = string(model.KindConflict)
	case errors.Is(err, sandbox.ErrInvalidTicket),
		errors.Is(err, sandbox.ErrEmptyMessage),
		errors.Is(err, sandbox.ErrNoProposal),
		errors.Is(err, sandbox.ErrInvalidSettlement),
		errors.Is(err, model.ErrInvalidContentType),
		errors.Is(err, model.ErrInvalidProposalStatus),
		errors.Is(err, model.ErrInvalidTicketStatus):
		status = http.StatusUnprocessableEntity
		code = string(model.KindValidation)
	case errors.Is(err, sandbox.ErrTokensExhausted):
		status = http.StatusTooManyRequests
		code = string(model.KindRateLimit)
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}

func (h *Handler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Message: message,
		Code:    string(model.KindBadRequest),
	})
}

func token(c *gin.Context) string {
	return c.GetString(tokenKey)
}
