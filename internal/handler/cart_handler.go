package handler

import (
	"net/http"

	"shopcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type ModifyCartRequest struct {
	Username string `json:"username"`
	ItemID   int64  `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/cart/addToCart", h.addToCart)
	g.POST("/cart/removeFromCart", h.removeFromCart)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	in, ok := bindModifyCart(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeFromCart(c echo.Context) error {
	in, ok := bindModifyCart(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.RemoveFromCart(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func bindModifyCart(c echo.Context) (usecase.ModifyCartInput, bool) {
	var req ModifyCartRequest
	if err := c.Bind(&req); err != nil {
		return usecase.ModifyCartInput{}, false
	}
	return usecase.ModifyCartInput{
		Username: req.Username,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	}, true
}
