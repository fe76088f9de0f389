package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	portssvc "github.com/SscSPs/remittance_pricing/internal/core/ports/services"
	"github.com/SscSPs/remittance_pricing/internal/dto"
	"github.com/SscSPs/remittance_pricing/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(svc portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{
		orderService: svc,
	}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("/:orderID", h.getOrder)
	}
}

// actorFromContext reads the authenticated caller set by AuthMiddleware.
func actorFromContext(c *gin.Context) (portssvc.Actor, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return portssvc.Actor{}, false
	}
	accountType, ok := middleware.GetAccountTypeFromContext(c)
	if !ok {
		return portssvc.Actor{}, false
	}
	return portssvc.Actor{UserID: userID, AccountType: accountType}, true
}

// createOrder godoc
// @Summary Price and place an order
// @Description Validates the quoted rate against the caller's tier bid, computes fees, tax and amounts and stores the order
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency pair or priority not found"
// @Failure 422 {object} dto.FieldErrorsResponse "The quoted rate is no longer current"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		logger.Error("Caller not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", actor.UserID), slog.Int64("pair_id", req.PairID))
	logger.Info("Received request to create order",
		slog.String("payment_amount", req.PaymentAmount.String()),
		slog.String("rate", req.Rate.String()),
	)

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, actor)
	if err != nil {
		var appErr *apperrors.AppError
		switch {
		case errors.Is(err, apperrors.ErrStaleQuote):
			msg := apperrors.ErrStaleQuote.Error()
			if errors.As(err, &appErr) {
				msg = appErr.Message
			}
			logger.Info("Rejected order with stale rate")
			c.JSON(http.StatusUnprocessableEntity, dto.FieldErrorsResponse{Errors: map[string]string{"rate": msg}})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		return
	}

	logger.Info("Order created successfully", slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// getOrder godoc
// @Summary Get an order
// @Description Retrieves a priced order owned by the caller
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve order"
// @Security BearerAuth
// @Router /orders/{orderID} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	actor, ok := actorFromContext(c)
	if !ok {
		logger.Error("Caller not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			logger.Error("Failed to get order from service", slog.String("error", err.Error()), slog.String("order_id", orderID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
