package handler

import (
	"errors"
	"net/http"

	"shopcart/internal/middleware"
	auth "shopcart/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	loginUC *auth.LoginUsecase // ログインusecase
}

// DIコンストラクタ
func NewAuthHandler(loginUC *auth.LoginUsecase) *AuthHandler {
	return &AuthHandler{loginUC: loginUC}
}

// /login のリクエストボディ。
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// /login は/apiの外（JWT不要）
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST(middleware.LoginURL, h.login)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		}
		c.Logger().Errorf("AuthHandler::login - %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	//ヘッダーにもBearerで載せる
	c.Response().Header().Set(middleware.HeaderString, middleware.TokenPrefix+out.Token.AccessToken)

	return c.JSON(http.StatusOK, out.Token)
}
