package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmlink-ke/farm_market/internal/models"
	"github.com/farmlink-ke/farm_market/internal/repo"
)

type ReviewHandler struct {
	Repo *repo.GormRepo
}

type createReviewRequest struct {
	CustomerID uint   `json:"customer_id"`
	ProductID  uint   `json:"product_id"`
	Rating     int    `json:"rating"`
	Comments   string `json:"comments"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := models.ValidateRating(req.Rating); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	ctx := c.Request().Context()
	if _, err := h.Repo.GetUserByID(ctx, req.CustomerID); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	if _, err := h.Repo.GetProductByID(ctx, req.ProductID); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	review := models.Review{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Rating:     req.Rating,
		Comments:   req.Comments,
	}
	if err := h.Repo.CreateReview(ctx, &review); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.JSON(http.StatusCreated, review.Public())
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	review, err := h.Repo.GetReviewByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.JSON(http.StatusOK, review.Public())
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.Repo.DeleteReview(c.Request().Context(), id); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListProductReviews serves GET /products/:id/reviews.
func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	reviews, err := h.Repo.ListProductReviews(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	views := make([]models.ReviewView, len(reviews))
	for i := range reviews {
		views[i] = reviews[i].Public()
	}
	return c.JSON(http.StatusOK, views)
}
