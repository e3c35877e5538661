package handler

import (
	"net/http"
	"strconv"

	"shopcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// パスの:idを数値に。失敗なら400
func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// /api/item のHTTP
type ItemHandler struct {
	uc *usecase.ItemUsecase
}

// DI
func NewItemHandler(uc *usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// /item, /item/{id}, /item/name/{name} を登録
func (h *ItemHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/item", h.list)
	g.GET("/item/:id", h.detail)
	g.GET("/item/name/:name", h.byName)
}

func (h *ItemHandler) list(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) detail(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	it, err := h.uc.GetItem(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, it)
}

func (h *ItemHandler) byName(c echo.Context) error {
	items, err := h.uc.FindItemsByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}
