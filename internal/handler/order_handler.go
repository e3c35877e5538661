package handler

import (
	"net/http"

	"shopcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/order/submit/:username", h.submit)
	g.GET("/order/history/:username", h.history)
}

func (h *OrderHandler) submit(c echo.Context) error {
	out, err := h.uc.Submit(c.Request().Context(), c.Param("username"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) history(c echo.Context) error {
	out, err := h.uc.History(c.Request().Context(), c.Param("username"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
