package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/farmlink-ke/farm_market/internal/models"
	"github.com/farmlink-ke/farm_market/internal/mykafka"
	"github.com/farmlink-ke/farm_market/internal/repo"
	"github.com/farmlink-ke/farm_market/internal/service/search"
	"github.com/farmlink-ke/farm_market/internal/util"
)

type ProductHandler struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

type productRequest struct {
	Name              string `json:"name"`
	Price             int    `json:"price"`
	Description       string `json:"description"`
	QuantityAvailable int    `json:"quantity_available"`
	Category          string `json:"category"`
	Image             string `json:"image"`
	FarmerID          *uint  `json:"farmer_id"`
}

// index mirrors the product into the search index. Best effort: the store is
// the source of truth and a stale index is repaired on the next write.
func (h *ProductHandler) index(c echo.Context, p *models.Product) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.IndexProduct(ctx, h.ES, h.Index, p); err != nil {
		c.Logger().Errorf("es index error: %v", err)
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	product := models.Product{
		Name:              req.Name,
		Price:             req.Price,
		Description:       req.Description,
		QuantityAvailable: req.QuantityAvailable,
		Category:          req.Category,
		Image:             req.Image,
		FarmerID:          req.FarmerID,
	}
	if err := h.Repo.CreateProduct(c.Request().Context(), &product); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	h.index(c, &product)
	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]any{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
	})

	return c.JSON(http.StatusCreated, product.Public())
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	product, err := h.Repo.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}
	return c.JSON(http.StatusOK, product.Public())
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	products, total, err := h.Repo.ListProducts(c.Request().Context(), offset, limit)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	views := make([]models.ProductView, len(products))
	for i := range products {
		views[i] = products[i].Public()
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": views,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}

func (h *ProductHandler) PatchProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	product, err := h.Repo.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Price != 0 {
		product.Price = req.Price
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.QuantityAvailable != 0 {
		product.QuantityAvailable = req.QuantityAvailable
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Image != "" {
		product.Image = req.Image
	}
	if req.FarmerID != nil {
		product.FarmerID = req.FarmerID
	}

	if err := h.Repo.UpdateProduct(c.Request().Context(), product); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	h.index(c, product)
	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]any{
		"type":       "product_updated",
		"product_id": product.ID,
		"name":       product.Name,
	})

	return c.JSON(http.StatusOK, product.Public())
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.Repo.DeleteProduct(c.Request().Context(), id); err != nil {
		return errorResponse(c, statusFromErr(err), err)
	}

	if h.ES != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		if err := search.DeleteProduct(ctx, h.ES, h.Index, id); err != nil {
			c.Logger().Errorf("es delete error: %v", err)
		}
	}
	publish(c, h.Producer, "product_events", fmt.Sprint(id), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})

	return c.NoContent(http.StatusNoContent)
}
