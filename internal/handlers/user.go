package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmlink-ke/farm_market/internal/models"
	"github.com/farmlink-ke/farm_market/internal/mykafka"
	"github.com/farmlink-ke/farm_market/internal/repo"
)

type UserHandler struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Image    string `json:"image"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	// The save hook re-runs these; checking here rejects bad payloads
	// before the password is hashed.
	if err := models.ValidateEmail(req.Email); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	if err := models.ValidateRole(req.Role); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	password, err := models.NewPassword(req.Password)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: password,
		Role:     req.Role,
		Image:    req.Image,
	}
	if err := h.Repo.CreateUser(c.Request().Context(), &user); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	})

	return c.JSON(http.StatusCreated, user.Public())
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and returns the user. Session and token
// handling live outside this service.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	user, err := h.Repo.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return errorResponse(c, http.StatusUnauthorized, err)
	}
	return c.JSON(http.StatusOK, user.Public())
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	user, err := h.Repo.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.JSON(http.StatusOK, user.Public())
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.Repo.DeleteUser(c.Request().Context(), id); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(id), map[string]any{
		"type":    "user_deleted",
		"user_id": id,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) ListOrders(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	orders, err := h.Repo.ListUserOrders(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	views := make([]models.OrderView, len(orders))
	for i := range orders {
		views[i] = orders[i].Serialize()
	}
	return c.JSON(http.StatusOK, views)
}

func (h *UserHandler) ListReviews(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	reviews, err := h.Repo.ListUserReviews(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	views := make([]models.ReviewView, len(reviews))
	for i := range reviews {
		views[i] = reviews[i].Public()
	}
	return c.JSON(http.StatusOK, views)
}
