package server

import (
	"net/http"

	"shopcart/internal/handler"

	"github.com/labstack/echo/v4"
)

// ルーティングに必要なハンドラ一式
type Handlers struct {
	User  *handler.UserHandler
	Item  *handler.ItemHandler
	Cart  *handler.CartHandler
	Order *handler.OrderHandler
	Auth  *handler.AuthHandler
}

// /api/* はapiMWを通す（AuthJWT, PrincipalGuard）。/login と /health は素通し。
func RegisterRoutes(e *echo.Echo, h Handlers, apiMW ...echo.MiddlewareFunc) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Auth.RegisterRoutes(e)

	api := e.Group("/api", apiMW...)
	h.User.RegisterRoutes(api)
	h.Item.RegisterRoutes(api)
	h.Cart.RegisterRoutes(api)
	h.Order.RegisterRoutes(api)
}
