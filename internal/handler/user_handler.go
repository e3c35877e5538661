package handler

import (
	"errors"
	"net/http"

	"shopcart/internal/usecase"
	auth "shopcart/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// /api/user のHTTP
type UserHandler struct {
	uc         *usecase.UserUsecase
	registerUC *auth.RegisterUserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase, registerUC *auth.RegisterUserUsecase) *UserHandler {
	return &UserHandler{uc: uc, registerUC: registerUC}
}

// 会員登録のリクエストボディ。
type CreateUserRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/user/id/:id", h.findByID)
	g.GET("/user/:username", h.findByUsername)
	g.POST("/user/create", h.create)
}

func (h *UserHandler) findByID(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	user, err := h.uc.FindByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) findByUsername(c echo.Context) error {
	user, err := h.uc.FindByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameRequired),
			errors.Is(err, auth.ErrPasswordTooShort),
			errors.Is(err, auth.ErrPasswordMismatch):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, auth.ErrUsernameAlreadyExists):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusOK, out.User)
}
