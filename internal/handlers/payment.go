package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farmlink-ke/farm_market/internal/models"
	"github.com/farmlink-ke/farm_market/internal/mykafka"
	"github.com/farmlink-ke/farm_market/internal/repo"
)

type PaymentHandler struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

type createPaymentRequest struct {
	OrderID       uint   `json:"order_id"`
	PaymentAmount int    `json:"payment_amount"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	TransactionID int    `json:"transaction_id"`
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := models.ValidatePaymentAmount(req.PaymentAmount); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	ctx := c.Request().Context()
	if _, err := h.Repo.GetOrderByID(ctx, req.OrderID); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	payment := models.Payment{
		OrderID:       req.OrderID,
		PaymentAmount: req.PaymentAmount,
		PaymentDate:   time.Now().UTC(),
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		TransactionID: req.TransactionID,
	}
	if err := h.Repo.CreatePayment(ctx, &payment); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(payment.OrderID), map[string]any{
		"type":           "payment_recorded",
		"payment_id":     payment.ID,
		"order_id":       payment.OrderID,
		"payment_amount": payment.PaymentAmount,
	})

	return c.JSON(http.StatusCreated, payment.Public())
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	payment, err := h.Repo.GetPaymentByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.JSON(http.StatusOK, payment.Public())
}
