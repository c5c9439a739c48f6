package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmlink-ke/farm_market/internal/models"
	"github.com/farmlink-ke/farm_market/internal/mykafka"
	"github.com/farmlink-ke/farm_market/internal/repo"
)

type OrderHandler struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

type createOrderRequest struct {
	CustomerID      uint   `json:"customer_id"`
	ProductID       uint   `json:"product_id"`
	QuantityOrdered int    `json:"quantity_ordered"`
	OrderStatus     string `json:"order_status"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := models.ValidateQuantityOrdered(req.QuantityOrdered); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	ctx := c.Request().Context()
	if _, err := h.Repo.GetUserByID(ctx, req.CustomerID); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	product, err := h.Repo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	status := req.OrderStatus
	if status == "" {
		status = "pending"
	}
	order := models.Order{
		CustomerID:      req.CustomerID,
		ProductID:       req.ProductID,
		QuantityOrdered: req.QuantityOrdered,
		TotalPrice:      product.Price * req.QuantityOrdered,
		OrderStatus:     status,
	}
	if err := h.Repo.CreateOrder(ctx, &order); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":        "order_created",
		"order_id":    order.ID,
		"customer_id": order.CustomerID,
		"total_price": order.TotalPrice,
	})

	return c.JSON(http.StatusCreated, order.Serialize())
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	order, err := h.Repo.GetOrderByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.JSON(http.StatusOK, order.Serialize())
}

type orderStatusRequest struct {
	OrderStatus string `json:"order_status"`
}

func (h *OrderHandler) PatchOrder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	order, err := h.Repo.GetOrderByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if req.OrderStatus != "" {
		order.OrderStatus = req.OrderStatus
	}

	if err := h.Repo.UpdateOrder(c.Request().Context(), order); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":         "order_status_changed",
		"order_id":     order.ID,
		"order_status": order.OrderStatus,
	})

	return c.JSON(http.StatusOK, order.Serialize())
}

type addProductRequest struct {
	ProductID uint `json:"product_id"`
}

func (h *OrderHandler) AddProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()
	order, err := h.Repo.GetOrderByID(ctx, id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	if _, err := h.Repo.GetProductByID(ctx, req.ProductID); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	if err := h.Repo.AddProductToOrder(ctx, order, req.ProductID); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) ListProducts(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()
	order, err := h.Repo.GetOrderByID(ctx, id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	products, err := h.Repo.ListOrderProducts(ctx, order)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	views := make([]models.ProductView, len(products))
	for i := range products {
		views[i] = products[i].Public()
	}
	return c.JSON(http.StatusOK, views)
}

func (h *OrderHandler) ListPayments(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	payments, err := h.Repo.ListOrderPayments(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	views := make([]models.PaymentView, len(payments))
	for i := range payments {
		views[i] = payments[i].Public()
	}
	return c.JSON(http.StatusOK, views)
}
