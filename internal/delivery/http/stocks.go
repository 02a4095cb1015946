package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"rkcp-score/internal/dto"
	"rkcp-score/internal/repository"
)

func (h *HttpAPIHandler) SetupStocks(base *echo.Group) {
	v1 := base.Group("/v1/stocks")
	{
		v1.GET("", h.ListStocks)
		v1.GET("/top", h.TopStocks)
		v1.GET("/suggest", h.SuggestStocks)
		v1.GET("/search", h.SearchStocks)
		v1.GET("/:ticker", h.GetStock)
	}
}

func (h *HttpAPIHandler) ListStocks(c echo.Context) error {
	var req dto.ListStocksRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	page, err := h.service.StockService.List(c.Request().Context(), req.Limit, req.Skip)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", page))
}

func (h *HttpAPIHandler) TopStocks(c echo.Context) error {
	ranked, err := h.service.StockService.Top(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", ranked))
}

// SuggestStocks never surfaces an error; a failed suggestion computation is
// an empty list.
func (h *HttpAPIHandler) SuggestStocks(c echo.Context) error {
	var req dto.SuggestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", []interface{}{}))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", []interface{}{}))
	}

	suggestions := h.service.StockService.Suggest(c.Request().Context(), req.Query, req.Limit)
	if suggestions == nil {
		return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", []interface{}{}))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", suggestions))
}

func (h *HttpAPIHandler) SearchStocks(c echo.Context) error {
	var req dto.SearchStocksRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	detail, err := h.service.StockService.SearchByName(c.Request().Context(), req.Name)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", detail))
}

func (h *HttpAPIHandler) GetStock(c echo.Context) error {
	ticker := c.Param("ticker")
	if ticker == "" {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("ticker is required"))
	}

	detail, err := h.service.StockService.GetByTicker(c.Request().Context(), ticker)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", detail))
}

func (h *HttpAPIHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse distinguishes a negative lookup from an upstream fault.
func (h *HttpAPIHandler) errorResponse(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("Stock not found"))
	}
	return c.JSON(http.StatusBadGateway, dto.NewBaseResponse(http.StatusBadGateway, err.Error(), nil))
}
