package middleware

import (
	"errors"
	"net/http"
	"strings"

	"shopcart/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	TokenPrefix  = "Bearer "
	HeaderString = "Authorization"
	SignUpURL    = "/api/user/create"
	LoginURL     = "/login"

	CtxUsernameKey = "username" // string
)

// bearerAuth用のJWT検証ミドルウェア。
// 会員登録(POST SignUpURL)とログインは素通し。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isPublic(c.Request()) {
				return next(c)
			}

			//Authorizationヘッダを取得
			authz := c.Request().Header.Get(HeaderString)
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//Bearer形式か確認してtokenを抜く
			if len(authz) < len(TokenPrefix) || !strings.EqualFold(authz[:len(TokenPrefix)], TokenPrefix) {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(authz[len(TokenPrefix):])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//JWTをパースして検証する（expもここで見る）
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				c.Logger().Debugf("AuthJWT - rejected token: %v", err)
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//claimsを取り出す
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//subがusername
			username, err := parseString(claims["sub"])
			if err != nil || username == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxUsernameKey, username)

			return next(c)
		}
	}
}

func isPublic(r *http.Request) bool {
	if r.Method == http.MethodPost && r.URL.Path == SignUpURL {
		return true
	}
	return r.URL.Path == LoginURL
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

func parseString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New("invalid string")
	}
	return s, nil
}
