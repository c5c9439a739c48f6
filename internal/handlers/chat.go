package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmlink-ke/farm_market/internal/models"
	"github.com/farmlink-ke/farm_market/internal/mykafka"
	"github.com/farmlink-ke/farm_market/internal/repo"
)

type ChatHandler struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

type sendMessageRequest struct {
	SenderID    uint   `json:"sender_id"`
	ReceiverID  uint   `json:"receiver_id"`
	MessageText string `json:"message_text"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := models.ValidateMessageText(req.MessageText); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	ctx := c.Request().Context()
	if _, err := h.Repo.GetUserByID(ctx, req.SenderID); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	if _, err := h.Repo.GetUserByID(ctx, req.ReceiverID); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	msg := models.ChatMessage{
		SenderID:    req.SenderID,
		ReceiverID:  req.ReceiverID,
		MessageText: req.MessageText,
	}
	if err := h.Repo.CreateMessage(ctx, &msg); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(msg.SenderID), map[string]any{
		"type":        "message_sent",
		"message_id":  msg.ID,
		"sender_id":   msg.SenderID,
		"receiver_id": msg.ReceiverID,
	})

	return c.JSON(http.StatusCreated, msg.Public())
}

// GetConversation serves GET /messages/:a/:b, every message between the two
// users in either direction.
func (h *ChatHandler) GetConversation(c echo.Context) error {
	a, err := parseIDParam(c, "a")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	b, err := parseIDParam(c, "b")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	msgs, err := h.Repo.ListConversation(c.Request().Context(), a, b)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	views := make([]models.ChatMessageView, len(msgs))
	for i := range msgs {
		views[i] = msgs[i].Public()
	}
	return c.JSON(http.StatusOK, views)
}
