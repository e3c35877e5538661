package middleware

import (
	"context"
	"net/http"

	auth "shopcart/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// usernameから本人情報を引ける物（auth.UserDetailsService）
type PrincipalLoader interface {
	LoadUserByUsername(ctx context.Context, username string) (auth.Principal, error)
}

// JWTのsubがまだ存在するユーザーか確認。消えていれば401。
func PrincipalGuard(loader PrincipalLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isPublic(c.Request()) {
				return next(c)
			}

			//AuthJWTが入れたusernameを取得する
			username, ok := c.Get(CtxUsernameKey).(string)
			if !ok || username == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//DBから最新のユーザーを取得する
			p, err := loader.LoadUserByUsername(c.Request().Context(), username)
			if err != nil || p.Username == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			return next(c)
		}
	}
}
