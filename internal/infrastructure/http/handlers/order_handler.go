package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"restaurant/internal/domain/model"
	"restaurant/internal/domain/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	addOrderUC    repository.AddOrderUseCaseProvider
	getOrderUC    repository.GetOrderUseCaseProvider
	deleteOrderUC repository.DeleteOrderUseCaseProvider
	listOrdersUC  repository.ListTableOrdersUseCaseProvider
	logger        *zap.Logger
}

func NewOrderHandler(
	addOrderUC repository.AddOrderUseCaseProvider,
	getOrderUC repository.GetOrderUseCaseProvider,
	deleteOrderUC repository.DeleteOrderUseCaseProvider,
	listOrdersUC repository.ListTableOrdersUseCaseProvider,
	logger *zap.Logger,
) *OrderHandler {
	return &OrderHandler{
		addOrderUC:    addOrderUC,
		getOrderUC:    getOrderUC,
		deleteOrderUC: deleteOrderUC,
		listOrdersUC:  listOrdersUC,
		logger:        logger,
	}
}

// AddOrder handles PUT /table/:table/meal/:meal.
func (h *OrderHandler) AddOrder(c *gin.Context) {
	tableID, mealID, ok := h.tableAndMeal(c)
	if !ok {
		return
	}

	order, err := h.addOrderUC.Execute(c.Request.Context(), tableID, mealID)
	if err != nil {
		h.writeError(c, err, "failed to add order", zap.Uint32("table_id", uint32(tableID)), zap.Uint32("meal_id", uint32(mealID)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetTableMealOrders handles GET /table/:table/meal/:meal.
func (h *OrderHandler) GetTableMealOrders(c *gin.Context) {
	tableID, mealID, ok := h.tableAndMeal(c)
	if !ok {
		return
	}

	orders, err := h.listOrdersUC.ExecuteForMeal(c.Request.Context(), tableID, mealID)
	if err != nil {
		h.writeError(c, err, "failed to list orders", zap.Uint32("table_id", uint32(tableID)), zap.Uint32("meal_id", uint32(mealID)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetTableOrders handles GET /table/:table/orders.
func (h *OrderHandler) GetTableOrders(c *gin.Context) {
	tableID, ok := h.tableParam(c)
	if !ok {
		return
	}

	orders, err := h.listOrdersUC.Execute(c.Request.Context(), tableID)
	if err != nil {
		h.writeError(c, err, "failed to list orders", zap.Uint32("table_id", uint32(tableID)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder handles GET /order/:id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := h.orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.getOrderUC.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed to get order", zap.Int64("order_id", int64(id)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// DeleteOrder handles DELETE /order/:id.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := h.orderIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteOrderUC.Execute(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "failed to delete order", zap.Int64("order_id", int64(id)))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) tableAndMeal(c *gin.Context) (model.TableID, model.MealID, bool) {
	tableID, ok := h.tableParam(c)
	if !ok {
		return 0, 0, false
	}

	raw := c.Param("meal")
	mealID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		h.logger.Warn("Invalid meal parameter", zap.String("meal", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal must be a non-negative integer"})
		return 0, 0, false
	}
	return tableID, model.MealID(mealID), true
}

func (h *OrderHandler) tableParam(c *gin.Context) (model.TableID, bool) {
	raw := c.Param("table")
	tableID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		h.logger.Warn("Invalid table parameter", zap.String("table", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "table must be a non-negative integer"})
		return 0, false
	}
	return model.TableID(tableID), true
}

func (h *OrderHandler) orderIDParam(c *gin.Context) (model.OrderID, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.logger.Warn("Invalid order id parameter", zap.String("id", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return model.OrderID(id), true
}

func (h *OrderHandler) writeError(c *gin.Context, err error, msg string, fields ...zap.Field) {
	switch {
	case errors.Is(err, model.ErrUnknownMeal):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal"})
	case errors.Is(err, model.ErrInvalidOrderData):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order"})
	case errors.Is(err, model.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	default:
		h.logger.Error(msg, append(fields, zap.Error(err))...)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "detail": failureKind(err)})
	}
}

// failureKind classifies a server-side failure without exposing driver messages.
func failureKind(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "request timed out or was canceled"
	case errors.Is(err, model.ErrStorageFailure):
		return "order storage unavailable"
	default:
		return "internal error"
	}
}
