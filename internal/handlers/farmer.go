package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmlink-ke/farm_market/internal/models"
	"github.com/farmlink-ke/farm_market/internal/repo"
)

type FarmerHandler struct {
	Repo *repo.GormRepo
}

type farmerRequest struct {
	FarmName string `json:"farm_name"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
	UserID   uint   `json:"user_id"`
}

func (h *FarmerHandler) CreateFarmer(c echo.Context) error {
	var req farmerRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	// The linked user must exist and the farm_name/user_id uniqueness is
	// the database's to enforce.
	if _, err := h.Repo.GetUserByID(c.Request().Context(), req.UserID); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	farmer := models.Farmer{
		FarmName: req.FarmName,
		Location: req.Location,
		Contact:  req.Contact,
		UserID:   req.UserID,
	}
	if err := h.Repo.CreateFarmer(c.Request().Context(), &farmer); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.JSON(http.StatusCreated, farmer.Public())
}

func (h *FarmerHandler) GetFarmer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	farmer, err := h.Repo.GetFarmerByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.JSON(http.StatusOK, farmer.Public())
}

func (h *FarmerHandler) PatchFarmer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	farmer, err := h.Repo.GetFarmerByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	var req farmerRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if req.FarmName != "" {
		farmer.FarmName = req.FarmName
	}
	if req.Location != "" {
		farmer.Location = req.Location
	}
	if req.Contact != "" {
		farmer.Contact = req.Contact
	}

	if err := h.Repo.UpdateFarmer(c.Request().Context(), farmer); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.JSON(http.StatusOK, farmer.Public())
}

func (h *FarmerHandler) DeleteFarmer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.Repo.DeleteFarmer(c.Request().Context(), id); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *FarmerHandler) ListProducts(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	products, err := h.Repo.ListFarmerProducts(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	views := make([]models.ProductView, len(products))
	for i := range products {
		views[i] = products[i].Public()
	}
	return c.JSON(http.StatusOK, views)
}
